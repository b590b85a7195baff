package repositories

import (
	"context"
	"time"

	"github.com/siwes/interntrack/internal/app/models"
	"github.com/siwes/interntrack/internal/app/repositories/user"
	"github.com/siwes/interntrack/internal/db"
)

// UserRepository combines the users and students tables
type UserRepository struct {
	common  *user.Repository
	student *user.StudentRepository
}

var _ UserStore = (*UserRepository)(nil)

// NewUserRepository creates a new UserRepository
func NewUserRepository(database *db.PostgresDB) *UserRepository {
	common := user.NewRepository(database)
	return &UserRepository{
		common:  common,
		student: user.NewStudentRepository(common),
	}
}

// CreateUser creates a new user
func (r *UserRepository) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	return r.common.CreateUser(ctx, u)
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return r.common.GetUserByID(ctx, id)
}

// GetUserByEmail retrieves a user by email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.common.GetUserByEmail(ctx, email)
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.common.EmailExists(ctx, email)
}

// UpdateLastLogin updates the last login time
func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error {
	return r.common.UpdateLastLogin(ctx, userID, at)
}

// ListUsersByRole lists active users of a role
func (r *UserRepository) ListUsersByRole(ctx context.Context, role models.Role, department *string) ([]*models.User, error) {
	return r.common.ListUsersByRole(ctx, role, department)
}

// RegisterStudent consumes a code and creates a student
func (r *UserRepository) RegisterStudent(ctx context.Context, codeID int64, student *models.Student) error {
	return r.student.RegisterStudent(ctx, codeID, student)
}

// GetStudentByID retrieves a student by user ID
func (r *UserRepository) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return r.student.GetStudentByID(ctx, id)
}
