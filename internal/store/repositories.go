package store

import "github.com/savedit/savedit/internal/logger"

// Repositories bundles every PostgreSQL-backed repository behind their
// interfaces so the service layer depends on a single constructor.
type Repositories struct {
	UserRepository       UserRepository
	ProfileRepository    ProfileRepository
	SavedItemRepository  SavedItemRepository
	CollectionRepository CollectionRepository
	MembershipRepository MembershipRepository
	ReminderRepository   ReminderRepository
}

func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db, log),
		ProfileRepository:    NewProfileRepository(db, log),
		SavedItemRepository:  NewSavedItemRepository(db, log),
		CollectionRepository: NewCollectionRepository(db, log),
		MembershipRepository: NewMembershipRepository(db, log),
		ReminderRepository:   NewReminderRepository(db, log),
	}
}
