package repositories

import (
	"context"
	"time"

	"github.com/siwes/interntrack/internal/app/models"
)

// UserStore defines user and student account persistence
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error
	ListUsersByRole(ctx context.Context, role models.Role, department *string) ([]*models.User, error)

	// RegisterStudent marks the verification code used and creates the user and
	// student rows in one unit. A code consumed concurrently yields ErrCodeAlreadyUsed.
	RegisterStudent(ctx context.Context, codeID int64, student *models.Student) error
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
}

// TokenStore defines refresh token persistence
type TokenStore interface {
	CreateToken(ctx context.Context, token string, userID int64, expiryDate time.Time) error
	GetTokenByValue(ctx context.Context, token string, now time.Time) (int64, error)
	RevokeToken(ctx context.Context, token string) error
	CleanupExpiredTokens(ctx context.Context, now time.Time) (int64, error)
}

// VerificationCodeStore defines verification code persistence
type VerificationCodeStore interface {
	// CreateCode fails with apperrors.ErrConflict when the code string is taken.
	CreateCode(ctx context.Context, code *models.VerificationCode) error
	FindCode(ctx context.Context, email, code string) (*models.VerificationCode, error)
	ListCodes(ctx context.Context) ([]*models.VerificationCode, error)
	DeleteUnusedExpiredBefore(ctx context.Context, before time.Time) (int64, error)
}

// AssignmentStore defines the assignment ledger
type AssignmentStore interface {
	// UpsertAssignment creates or overwrites the student's assignment and mirrors
	// the supervisor onto the student row atomically. Status is kept on update.
	UpsertAssignment(ctx context.Context, assignment *models.Assignment) (*models.Assignment, error)
	GetAssignmentByStudent(ctx context.Context, studentID int64) (*models.Assignment, error)
	ListAssignmentsBySupervisor(ctx context.Context, supervisorID int64) ([]*models.SupervisedAssignment, error)
	ListDepartmentStudents(ctx context.Context, department string) ([]*models.DepartmentStudent, error)
}

// LogbookFilter narrows logbook listings. Zero values do not filter.
type LogbookFilter struct {
	StudentID    *int64
	Department   *string
	SupervisorID *int64
}

// LogbookStore defines the logbook journal
type LogbookStore interface {
	// CreateEntry fails with apperrors.ErrDuplicateWeek if (student, week) exists.
	CreateEntry(ctx context.Context, entry *models.LogbookEntry) error
	GetEntryByID(ctx context.Context, id int64) (*models.LogbookEntry, error)
	// UpdateEntry writes the entry only while its stored status is still from,
	// otherwise it fails with apperrors.ErrLogbookChanged.
	UpdateEntry(ctx context.Context, entry *models.LogbookEntry, from models.LogbookStatus) error
	// ListEntries returns entries ordered by week then student.
	ListEntries(ctx context.Context, filter LogbookFilter) ([]*models.LogbookEntry, error)
	ApprovedWeeks(ctx context.Context, studentID int64) ([]int, error)
}

// GradingStore defines defense scheduling and grading persistence
type GradingStore interface {
	// UpsertSchedule creates a PENDING record or overwrites defense date and assessor only.
	UpsertSchedule(ctx context.Context, record *models.GradingRecord) (*models.GradingRecord, error)
	GetByStudent(ctx context.Context, studentID int64) (*models.GradingRecord, error)
	UpdateGrade(ctx context.Context, record *models.GradingRecord) (*models.GradingRecord, error)
	ListDefenses(ctx context.Context) ([]*models.DefenseInfo, error)
}

// NotificationStore defines in-app notification persistence
type NotificationStore interface {
	CreateNotification(ctx context.Context, notification *models.Notification) error
	ListNotifications(ctx context.Context, recipientID int64, limit int) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id, recipientID int64) error
}
