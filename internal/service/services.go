package service

import (
	"github.com/savedit/savedit/internal/config"
	"github.com/savedit/savedit/internal/logger"
	"github.com/savedit/savedit/internal/store"
)

type Services struct {
	AuthService       AuthService
	ItemService       ItemService
	CollectionService CollectionService
	ReminderService   ReminderService
	ProfileService    ProfileService
	MetadataService   MetadataService
}

func NewServices(repos *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	metadata := NewMetadataService(cfg.Functions, logger)
	collections := NewCollectionService(repos.CollectionRepository, repos.MembershipRepository, logger)

	return &Services{
		AuthService:       NewAuthService(repos.UserRepository, cfg.Auth, logger),
		ItemService:       NewItemService(repos.SavedItemRepository, repos.CollectionRepository, metadata, logger),
		CollectionService: collections,
		ReminderService:   NewReminderService(repos.ReminderRepository, logger),
		ProfileService:    NewProfileService(repos.ProfileRepository, repos.CollectionRepository, logger),
		MetadataService:   metadata,
	}
}
