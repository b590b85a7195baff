package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/siwes/interntrack/internal/app/models"
	"github.com/siwes/interntrack/internal/pkg/apperrors"
	"github.com/siwes/interntrack/internal/pkg/logger"
)

// StudentRepository handles student database operations
type StudentRepository struct {
	users *Repository
	sb    squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(users *Repository) *StudentRepository {
	return &StudentRepository{
		users: users,
		sb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *StudentRepository) selectStudents() squirrel.SelectBuilder {
	return r.sb.Select(userColumns...).
		Columns("s.assigned_supervisor_id", "s.verification_code_used").
		From("users u").
		Join("students s ON s.user_id = u.id")
}

// RegisterStudent consumes the verification code and creates the student account in one transaction
func (r *StudentRepository) RegisterStudent(ctx context.Context, codeID int64, student *models.Student) error {
	return r.users.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE verification_codes SET is_used = TRUE WHERE id = $1 AND is_used = FALSE`, codeID)
		if err != nil {
			return fmt.Errorf("error consuming verification code: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrCodeAlreadyUsed
		}

		id, err := r.users.createUser(ctx, tx, &student.User)
		if err != nil {
			if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
				return apperrors.ErrDuplicateRegistration
			}
			return err
		}

		sql, args, err := r.sb.Insert("students").
			Columns("user_id", "assigned_supervisor_id", "verification_code_used").
			Values(id, nil, true).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create student query: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			logger.Error().Err(err).Int64("userID", id).Msg("Error executing create student query")
			return fmt.Errorf("error creating student: %w", err)
		}

		student.ID = id
		student.VerificationCodeUsed = true
		return nil
	})
}

// GetStudentByID retrieves a student by user ID
func (r *StudentRepository) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.selectStudents().
		Where(squirrel.Eq{"u.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student := &models.Student{}
	row := r.users.db.Pool.QueryRow(ctx, sql, args...)
	if err := scanUser(row, &student.User, &student.AssignedSupervisorID, &student.VerificationCodeUsed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}
