package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/siwes/interntrack/internal/app/models"
	"github.com/siwes/interntrack/internal/pkg/apperrors"
	"github.com/siwes/interntrack/internal/pkg/logger"
)

var gradingColumns = []string{
	"g.id", "g.student_id", "g.defense_date", "g.assessor", "g.score",
	"g.remarks", "g.verdict", "g.created_at", "g.updated_at",
}

// GradingRepository handles grading record database operations
type GradingRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

var _ GradingStore = (*GradingRepository)(nil)

// NewGradingRepository creates a new GradingRepository
func NewGradingRepository(db *pgxpool.Pool) *GradingRepository {
	return &GradingRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanGrading(row pgx.Row, g *models.GradingRecord, extra ...any) error {
	dest := []any{&g.ID, &g.StudentID, &g.DefenseDate, &g.Assessor, &g.Score, &g.Remarks, &g.Verdict, &g.CreatedAt, &g.UpdatedAt}
	return row.Scan(append(dest, extra...)...)
}

func (r *GradingRepository) scheduleQuery(record *models.GradingRecord) squirrel.InsertBuilder {
	return r.sb.Insert("grading_records AS g").
		Columns("student_id", "defense_date", "assessor", "score", "remarks", "verdict", "created_at", "updated_at").
		Values(record.StudentID, record.DefenseDate, record.Assessor, record.Score, record.Remarks, string(record.Verdict), record.CreatedAt, record.UpdatedAt).
		Suffix(`ON CONFLICT (student_id) DO UPDATE SET
			defense_date = EXCLUDED.defense_date,
			assessor = EXCLUDED.assessor,
			updated_at = EXCLUDED.updated_at`).
		Suffix("RETURNING " + strings.Join(gradingColumns, ", "))
}

func (r *GradingRepository) gradeQuery(record *models.GradingRecord) squirrel.UpdateBuilder {
	return r.sb.Update("grading_records AS g").
		Set("score", record.Score).
		Set("remarks", record.Remarks).
		Set("verdict", string(record.Verdict)).
		Set("updated_at", record.UpdatedAt).
		Where(squirrel.Eq{"student_id": record.StudentID}).
		Suffix("RETURNING " + strings.Join(gradingColumns, ", "))
}

// UpsertSchedule creates the record or moves the defense; score and verdict survive a reschedule
func (r *GradingRepository) UpsertSchedule(ctx context.Context, record *models.GradingRecord) (*models.GradingRecord, error) {
	sql, args, err := r.scheduleQuery(record).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build schedule defense query: %w", err)
	}

	saved := &models.GradingRecord{}
	if err := scanGrading(r.db.QueryRow(ctx, sql, args...), saved); err != nil {
		logger.Error().Err(err).Int64("studentID", record.StudentID).Msg("Error executing schedule defense query")
		return nil, fmt.Errorf("error scheduling defense: %w", err)
	}

	return saved, nil
}

// GetByStudent returns the student's grading record
func (r *GradingRepository) GetByStudent(ctx context.Context, studentID int64) (*models.GradingRecord, error) {
	sql, args, err := r.sb.Select(gradingColumns...).
		From("grading_records g").
		Where(squirrel.Eq{"g.student_id": studentID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get grading record query: %w", err)
	}

	record := &models.GradingRecord{}
	if err := scanGrading(r.db.QueryRow(ctx, sql, args...), record); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGradingRecordNotFound
		}
		return nil, fmt.Errorf("error retrieving grading record: %w", err)
	}

	return record, nil
}

// UpdateGrade overwrites score, remarks and verdict of an existing record
func (r *GradingRepository) UpdateGrade(ctx context.Context, record *models.GradingRecord) (*models.GradingRecord, error) {
	sql, args, err := r.gradeQuery(record).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build grade query: %w", err)
	}

	saved := &models.GradingRecord{}
	if err := scanGrading(r.db.QueryRow(ctx, sql, args...), saved); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGradingRecordNotFound
		}
		logger.Error().Err(err).Int64("studentID", record.StudentID).Msg("Error executing grade query")
		return nil, fmt.Errorf("error recording grade: %w", err)
	}

	return saved, nil
}

// ListDefenses returns every grading record with student fields, soonest defense first
func (r *GradingRepository) ListDefenses(ctx context.Context) ([]*models.DefenseInfo, error) {
	sql, args, err := r.sb.Select(gradingColumns...).
		Columns("u.id", "u.full_name", "u.email", "COALESCE(u.department, '')").
		From("grading_records g").
		Join("users u ON u.id = g.student_id").
		OrderBy("g.defense_date", "g.student_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list defenses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing defenses: %w", err)
	}
	defer rows.Close()

	defenses := []*models.DefenseInfo{}
	for rows.Next() {
		info := &models.DefenseInfo{Student: &models.StudentSummary{}}
		s := info.Student
		if err := scanGrading(rows, &info.GradingRecord, &s.ID, &s.FullName, &s.Email, &s.Department); err != nil {
			return nil, fmt.Errorf("error scanning defense row: %w", err)
		}
		defenses = append(defenses, info)
	}

	return defenses, rows.Err()
}
