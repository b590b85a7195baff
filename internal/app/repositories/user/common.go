package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/siwes/interntrack/internal/app/models"
	"github.com/siwes/interntrack/internal/db"
	"github.com/siwes/interntrack/internal/pkg/apperrors"
	"github.com/siwes/interntrack/internal/pkg/dberrors"
	"github.com/siwes/interntrack/internal/pkg/logger"
)

var userColumns = []string{
	"u.id", "u.email", "u.password", "u.full_name", "u.role_type", "u.department",
	"u.is_active", "u.last_login_at", "u.created_at", "u.updated_at",
}

// Repository handles common user database operations
type Repository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewRepository creates a new Repository
func NewRepository(database *db.PostgresDB) *Repository {
	return &Repository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanUser(row pgx.Row, user *models.User, extra ...any) error {
	dest := []any{
		&user.ID, &user.Email, &user.Password, &user.FullName, &user.Role, &user.Department,
		&user.IsActive, &user.LastLoginAt, &user.CreatedAt, &user.UpdatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

// CreateUser creates a new user and returns its id
func (r *Repository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	return r.createUser(ctx, r.db.Pool, user)
}

func (r *Repository) createUser(ctx context.Context, q db.DBTX, user *models.User) (int64, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("email", "password", "full_name", "role_type", "department", "is_active", "created_at", "updated_at").
		Values(user.Email, user.Password, user.FullName, string(user.Role), user.Department, user.IsActive, user.CreatedAt, user.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create user SQL")
		return 0, fmt.Errorf("failed to build create user query: %w", err)
	}

	var id int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			logger.Warn().Str("email", user.Email).Msg("Attempted to create user with duplicate email")
			return 0, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("email", user.Email).Msg("Error executing create user query")
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

func (r *Repository) getUser(ctx context.Context, where squirrel.Sqlizer) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users u").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user := &models.User{}
	if err := scanUser(r.db.Pool.QueryRow(ctx, sql, args...), user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error scanning user row")
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetUserByEmail retrieves a user by email
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getUser(ctx, squirrel.Eq{"u.email": email})
}

// GetUserByID retrieves a user by ID
func (r *Repository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getUser(ctx, squirrel.Eq{"u.id": id})
}

// EmailExists checks if an email already exists
func (r *Repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return exists, nil
}

// UpdateLastLogin updates the last login time
func (r *Repository) UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error {
	_, err := r.db.Pool.Exec(ctx, `UPDATE users SET last_login_at = $1 WHERE id = $2`, at, userID)
	if err != nil {
		return fmt.Errorf("failed to update last login time: %w", err)
	}
	return nil
}

// ListUsersByRole lists active users of a role, optionally within one department
func (r *Repository) ListUsersByRole(ctx context.Context, role models.Role, department *string) ([]*models.User, error) {
	query := r.sb.Select(userColumns...).
		From("users u").
		Where(squirrel.Eq{"u.role_type": string(role), "u.is_active": true}).
		OrderBy("u.full_name", "u.id")
	if department != nil {
		query = query.Where(squirrel.Eq{"u.department": *department})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("role", role.String()).Msg("Error listing users")
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := scanUser(rows, user); err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}
