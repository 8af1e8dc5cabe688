package service

import (
	"context"
	"fmt"

	"github.com/savedit/savedit/internal/logger"
	"github.com/savedit/savedit/internal/store"
	"github.com/savedit/savedit/internal/utils"
	"github.com/savedit/savedit/models"
)

// collectionService is the concrete implementation of CollectionService.
// Role checks happen here: repositories answer "who can see what", the
// service decides what each role may do with it.
type collectionService struct {
	collectionRepository store.CollectionRepository
	membershipRepository store.MembershipRepository
	ids                  *utils.UUIDGenerator
	logger               *logger.Logger
}

func NewCollectionService(collections store.CollectionRepository, memberships store.MembershipRepository, logger *logger.Logger) CollectionService {
	return &collectionService{
		collectionRepository: collections,
		membershipRepository: memberships,
		ids:                  utils.NewUUIDGenerator(),
		logger:               logger,
	}
}

// CreateCollection creates a new empty collection owned by the caller.
func (s *collectionService) CreateCollection(ctx context.Context, userID, name string) (models.Collection, error) {
	log := logger.FromContext(ctx)

	if name == "" {
		log.Error().Msg("create collection: empty name")
		return models.Collection{}, ErrInvalidDataProvided
	}

	collection := models.Collection{
		ID:      s.ids.Generate(),
		Name:    name,
		OwnerID: userID,
	}

	created, err := s.collectionRepository.CreateCollection(ctx, collection)
	if err != nil {
		log.Err(err).Str("name", name).Msg("collection creation failed")
		return models.Collection{}, fmt.Errorf("collection creation failed: %w", err)
	}

	return created, nil
}

// GetCollection returns one accessible collection annotated with the
// caller's role and the derived card fields.
func (s *collectionService) GetCollection(ctx context.Context, userID, collectionID string) (models.Collection, error) {
	return s.collectionRepository.GetCollection(ctx, userID, collectionID)
}

// ListAccessible returns every collection the caller owns or was invited
// to, most recently updated first, each annotated with role and
// is_shared.
func (s *collectionService) ListAccessible(ctx context.Context, userID string) ([]models.Collection, error) {
	return s.collectionRepository.ListAccessibleCollections(ctx, userID)
}

// ListContainingItem returns the IDs of the collections the item is a
// member of. Used to pre-check membership state before a toggle.
func (s *collectionService) ListContainingItem(ctx context.Context, userID, itemID string) ([]string, error) {
	return s.membershipRepository.ListItemCollectionIDs(ctx, itemID)
}

// DeleteCollection removes a collection and its membership rows. Only
// the owner may delete; shared members lose access but keep their own
// saved items.
func (s *collectionService) DeleteCollection(ctx context.Context, userID, collectionID string) error {
	log := logger.FromContext(ctx)

	collection, err := s.collectionRepository.GetCollection(ctx, userID, collectionID)
	if err != nil {
		return err
	}
	if collection.Role != models.RoleOwner {
		log.Error().Str("collectionID", collectionID).Str("role", collection.Role).Msg("delete collection: caller is not the owner")
		return ErrForbidden
	}

	return s.collectionRepository.DeleteCollection(ctx, userID, collectionID)
}

// AttachItem adds an item to a collection after checking the caller may
// modify it (owner or editor). Re-attaching is a no-op.
func (s *collectionService) AttachItem(ctx context.Context, userID, collectionID, itemID string) error {
	if err := s.requireEditor(ctx, userID, collectionID); err != nil {
		return err
	}

	return s.membershipRepository.AttachItem(ctx, collectionID, itemID)
}

// DetachItem removes an item from a collection after the same role check
// as AttachItem. Detaching a non-member is a no-op.
func (s *collectionService) DetachItem(ctx context.Context, userID, collectionID, itemID string) error {
	if err := s.requireEditor(ctx, userID, collectionID); err != nil {
		return err
	}

	return s.membershipRepository.DetachItem(ctx, collectionID, itemID)
}

// ShareCollection grants another user access to a collection. Only the
// owner may share; role must be editor or viewer.
func (s *collectionService) ShareCollection(ctx context.Context, userID, collectionID, memberID, role string) error {
	log := logger.FromContext(ctx)

	if role != models.RoleEditor && role != models.RoleViewer {
		log.Error().Str("role", role).Msg("share collection: unknown role")
		return ErrInvalidDataProvided
	}

	collection, err := s.collectionRepository.GetCollection(ctx, userID, collectionID)
	if err != nil {
		return err
	}
	if collection.Role != models.RoleOwner {
		log.Error().Str("collectionID", collectionID).Str("role", collection.Role).Msg("share collection: caller is not the owner")
		return ErrForbidden
	}

	return s.collectionRepository.AddMember(ctx, collectionID, memberID, role)
}

// requireEditor resolves the caller's role on the collection and rejects
// viewers. A missing or inaccessible collection surfaces as
// store.ErrNotFound from the lookup.
func (s *collectionService) requireEditor(ctx context.Context, userID, collectionID string) error {
	collection, err := s.collectionRepository.GetCollection(ctx, userID, collectionID)
	if err != nil {
		return err
	}

	if collection.Role != models.RoleOwner && collection.Role != models.RoleEditor {
		logger.FromContext(ctx).Error().
			Str("collectionID", collectionID).
			Str("role", collection.Role).
			Msg("membership change rejected for role")
		return ErrForbidden
	}

	return nil
}
