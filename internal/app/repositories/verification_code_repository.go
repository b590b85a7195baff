package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/siwes/interntrack/internal/app/models"
	"github.com/siwes/interntrack/internal/pkg/apperrors"
	"github.com/siwes/interntrack/internal/pkg/dberrors"
	"github.com/siwes/interntrack/internal/pkg/logger"
)

var codeColumns = []string{"id", "code", "email", "department", "issued_by", "expires_at", "is_used", "created_at"}

// VerificationCodeRepository handles verification code database operations
type VerificationCodeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

var _ VerificationCodeStore = (*VerificationCodeRepository)(nil)

// NewVerificationCodeRepository creates a new VerificationCodeRepository
func NewVerificationCodeRepository(db *pgxpool.Pool) *VerificationCodeRepository {
	return &VerificationCodeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanCode(row pgx.Row) (*models.VerificationCode, error) {
	c := &models.VerificationCode{}
	err := row.Scan(&c.ID, &c.Code, &c.Email, &c.Department, &c.IssuedBy, &c.ExpiresAt, &c.IsUsed, &c.CreatedAt)
	return c, err
}

// CreateCode inserts a verification code
func (r *VerificationCodeRepository) CreateCode(ctx context.Context, code *models.VerificationCode) error {
	sql, args, err := r.sb.Insert("verification_codes").
		Columns("code", "email", "department", "issued_by", "expires_at", "is_used", "created_at").
		Values(code.Code, code.Email, code.Department, code.IssuedBy, code.ExpiresAt, code.IsUsed, code.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create code query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&code.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "verification_codes_code_key") {
			return apperrors.NewConflictError("verification code already exists")
		}
		logger.Error().Err(err).Str("email", code.Email).Msg("Error executing create code query")
		return fmt.Errorf("error creating verification code: %w", err)
	}

	return nil
}

// FindCode looks up a code issued to an email
func (r *VerificationCodeRepository) FindCode(ctx context.Context, email, code string) (*models.VerificationCode, error) {
	sql, args, err := r.sb.Select(codeColumns...).
		From("verification_codes").
		Where(squirrel.Eq{"email": email, "code": code}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build find code query: %w", err)
	}

	c, err := scanCode(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCodeNotFound
		}
		return nil, fmt.Errorf("error retrieving verification code: %w", err)
	}

	return c, nil
}

// ListCodes returns all codes, newest first
func (r *VerificationCodeRepository) ListCodes(ctx context.Context) ([]*models.VerificationCode, error) {
	sql, args, err := r.sb.Select(codeColumns...).
		From("verification_codes").
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list codes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing verification codes: %w", err)
	}
	defer rows.Close()

	var codes []*models.VerificationCode
	for rows.Next() {
		c, err := scanCode(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning verification code row: %w", err)
		}
		codes = append(codes, c)
	}

	return codes, rows.Err()
}

// DeleteUnusedExpiredBefore removes unused codes that expired before the cutoff
func (r *VerificationCodeRepository) DeleteUnusedExpiredBefore(ctx context.Context, before time.Time) (int64, error) {
	sql, args, err := r.sb.Delete("verification_codes").
		Where(squirrel.Eq{"is_used": false}).
		Where(squirrel.Lt{"expires_at": before}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build purge codes query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing purge codes query")
		return 0, fmt.Errorf("error purging verification codes: %w", err)
	}

	return tag.RowsAffected(), nil
}
