package models

import "time"

// Profile holds the onboarding state and public identity of a user.
type Profile struct {
	UserID string `json:"user_id"`

	// Username is the unique public handle, lowercase letters, digits
	// and underscores only, 3-20 characters.
	Username string `json:"username"`

	// DisplayName is shown on shared items and collections.
	DisplayName string `json:"display_name,omitempty"`

	// Interests are the topics picked during onboarding; each one may
	// seed an interest collection.
	Interests []string `json:"interests,omitempty"`

	// OnboardingDone gates the dashboard: users with an incomplete
	// profile are redirected to the complete-profile flow.
	OnboardingDone bool `json:"onboarding_done"`

	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "profiles"
}
