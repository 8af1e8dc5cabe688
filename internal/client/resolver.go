package client

import (
	"context"
	"sort"

	"github.com/savedit/savedit/internal/adapter"
	"github.com/savedit/savedit/internal/logger"
	"github.com/savedit/savedit/models"
)

// MembershipResolver produces the list of collections visible to the
// current user and, for a given item, the subset it belongs to.
//
// The primary path is the accessible-collections RPC, which returns
// owned plus shared collections with role and is_shared annotated. When
// the RPC fails the resolver falls back to the plain collections listing
// restricted to owned rows: the result is still sorted and renderable,
// but shared collections are missing and every row reports
// is_shared=false. The fallback surfaces a warning instead of blocking
// rendering.
type MembershipResolver struct {
	backend adapter.Backend
	logger  *logger.Logger
}

func NewMembershipResolver(backend adapter.Backend, logger *logger.Logger) *MembershipResolver {
	return &MembershipResolver{backend: backend, logger: logger}
}

// CollectionsResult is the outcome of ListAccessibleCollections.
type CollectionsResult struct {
	Collections []models.Collection

	// Degraded is true when the owned-only fallback produced the list.
	Degraded bool

	// Warning is set on any partial failure.
	Warning *Warning
}

// ListAccessibleCollections returns the collections the user may see,
// most recently updated first.
func (r *MembershipResolver) ListAccessibleCollections(ctx context.Context, userID string) CollectionsResult {
	collections, err := r.backend.ListAccessibleCollections(ctx)
	if err == nil {
		sortByUpdatedAt(collections)
		return CollectionsResult{Collections: collections}
	}

	r.logger.Warn().Err(err).Msg("accessible collections rpc failed, falling back to owned collections")

	owned, fallbackErr := r.backend.ListCollections(ctx)
	if fallbackErr != nil {
		r.logger.Err(fallbackErr).Msg("owned collections fallback failed")
		return CollectionsResult{
			Collections: []models.Collection{},
			Degraded:    true,
			Warning:     newWarning("collections are temporarily unavailable", fallbackErr),
		}
	}

	result := make([]models.Collection, 0, len(owned))
	for _, c := range owned {
		if c.OwnerID != userID {
			continue
		}
		// Shared visibility requires the RPC; on this path nothing is
		// known to be shared.
		c.Role = models.RoleOwner
		c.Shared = false
		result = append(result, c)
	}
	sortByUpdatedAt(result)

	return CollectionsResult{
		Collections: result,
		Degraded:    true,
		Warning:     newWarning("shared collections are temporarily unavailable", err),
	}
}

// CollectionsContainingItem returns the set of collection IDs the item
// is currently a member of. Used to pre-check membership state when
// opening the add-to-collection control.
func (r *MembershipResolver) CollectionsContainingItem(ctx context.Context, itemID string) (map[string]struct{}, error) {
	ids, err := r.backend.ListItemCollections(ctx, itemID)
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

// ToggleMembership flips the item's membership in the collection:
// deletes the join row if currently a member, inserts it otherwise.
// Adding is duplicate-ignoring, so a stale currentlyMember value cannot
// produce an error.
//
// The derived item count shown elsewhere is eventually consistent:
// callers re-fetch it rather than adjusting it locally.
func (r *MembershipResolver) ToggleMembership(ctx context.Context, collectionID, itemID string, currentlyMember bool) error {
	if currentlyMember {
		return r.backend.DetachItem(ctx, collectionID, itemID)
	}
	return r.backend.AttachItem(ctx, collectionID, itemID)
}

func sortByUpdatedAt(collections []models.Collection) {
	sort.SliceStable(collections, func(i, j int) bool {
		return collections[i].UpdatedAt.After(collections[j].UpdatedAt)
	})
}
