package repositories

import (
	"github.com/siwes/interntrack/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	Users         UserStore
	Tokens        TokenStore
	Codes         VerificationCodeStore
	Assignments   AssignmentStore
	Logbooks      LogbookStore
	Gradings      GradingStore
	Notifications NotificationStore
}

// NewRepositories initializes the PostgreSQL repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(database),
		Tokens:        NewTokenRepository(database.Pool),
		Codes:         NewVerificationCodeRepository(database.Pool),
		Assignments:   NewAssignmentRepository(database),
		Logbooks:      NewLogbookRepository(database.Pool),
		Gradings:      NewGradingRepository(database.Pool),
		Notifications: NewNotificationRepository(database.Pool),
	}
}
