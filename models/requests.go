package models

import "time"

// QuickSaveRequest is the body of the legacy quick-save function:
// a bare URL plus the surface that produced it ("web-dashboard",
// "extension", "share-sheet").
type QuickSaveRequest struct {
	URL    string `json:"url"`
	Source string `json:"source"`
}

// FetchMetadataRequest is the body of the fetch-metadata function.
type FetchMetadataRequest struct {
	URL string `json:"url"`
}

// CreateReminderRequest is the body of the create-reminder function.
// FireAt is an ISO8601 UTC instant; Timezone is the IANA zone captured
// on the client at creation time.
type CreateReminderRequest struct {
	SavedItemID string    `json:"savedItemId"`
	FireAt      time.Time `json:"fireAt"`
	Timezone    string    `json:"timezone"`
}

// SaveItemRequest is the direct-insert save used by the quick-save
// composition: the URL plus whatever the user or the metadata prefetch
// filled in.
type SaveItemRequest struct {
	URL         string   `json:"url"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Thumbnail   string   `json:"thumbnail_url,omitempty"`
	Notes       string   `json:"notes,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// ItemPatch is a partial update of the editable item fields. Nil fields
// are left untouched; Tags replaces the whole tag set when non-nil.
type ItemPatch struct {
	Title *string   `json:"title,omitempty"`
	Notes *string   `json:"notes,omitempty"`
	Tags  *[]string `json:"tags,omitempty"`
}

// Empty reports whether the patch would change nothing.
func (p ItemPatch) Empty() bool {
	return p.Title == nil && p.Notes == nil && p.Tags == nil
}

// ProfilePatch is the onboarding-completion update.
type ProfilePatch struct {
	Username       string   `json:"username"`
	DisplayName    string   `json:"display_name"`
	Interests      []string `json:"interests"`
	OnboardingDone bool     `json:"onboarding_done"`
}
