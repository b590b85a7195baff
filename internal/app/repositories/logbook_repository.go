package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/siwes/interntrack/internal/app/models"
	"github.com/siwes/interntrack/internal/pkg/apperrors"
	"github.com/siwes/interntrack/internal/pkg/dberrors"
	"github.com/siwes/interntrack/internal/pkg/logger"
)

var logbookColumns = []string{
	"l.id", "l.student_id", "l.week_number", "l.activity_description", "l.images",
	"l.date_submitted", "l.status", "l.supervisor_comment", "l.signed_at", "l.updated_at",
}

// LogbookRepository handles logbook entry database operations
type LogbookRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

var _ LogbookStore = (*LogbookRepository)(nil)

// NewLogbookRepository creates a new LogbookRepository
func NewLogbookRepository(db *pgxpool.Pool) *LogbookRepository {
	return &LogbookRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanLogbook(row pgx.Row) (*models.LogbookEntry, error) {
	e := &models.LogbookEntry{}
	err := row.Scan(&e.ID, &e.StudentID, &e.WeekNumber, &e.ActivityDescription, &e.Images,
		&e.DateSubmitted, &e.Status, &e.SupervisorComment, &e.SignedAt, &e.UpdatedAt)
	if e.Images == nil {
		e.Images = []string{}
	}
	return e, err
}

// CreateEntry inserts a logbook entry. The (student_id, week_number) unique key rejects a second submission.
func (r *LogbookRepository) CreateEntry(ctx context.Context, entry *models.LogbookEntry) error {
	sql, args, err := r.sb.Insert("logbook_entries").
		Columns("student_id", "week_number", "activity_description", "images", "date_submitted", "status", "updated_at").
		Values(entry.StudentID, entry.WeekNumber, entry.ActivityDescription, entry.Images, entry.DateSubmitted, string(entry.Status), entry.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create logbook query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&entry.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "logbook_entries_student_week_key") {
			return apperrors.ErrDuplicateWeek
		}
		logger.Error().Err(err).Int64("studentID", entry.StudentID).Int("week", entry.WeekNumber).Msg("Error executing create logbook query")
		return fmt.Errorf("error creating logbook entry: %w", err)
	}

	return nil
}

// GetEntryByID retrieves a logbook entry
func (r *LogbookRepository) GetEntryByID(ctx context.Context, id int64) (*models.LogbookEntry, error) {
	sql, args, err := r.sb.Select(logbookColumns...).
		From("logbook_entries l").
		Where(squirrel.Eq{"l.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get logbook query: %w", err)
	}

	entry, err := scanLogbook(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLogbookNotFound
		}
		return nil, fmt.Errorf("error retrieving logbook entry: %w", err)
	}

	return entry, nil
}

func (r *LogbookRepository) updateEntryQuery(entry *models.LogbookEntry, from models.LogbookStatus) squirrel.UpdateBuilder {
	return r.sb.Update("logbook_entries").
		Set("activity_description", entry.ActivityDescription).
		Set("images", entry.Images).
		Set("date_submitted", entry.DateSubmitted).
		Set("status", string(entry.Status)).
		Set("supervisor_comment", entry.SupervisorComment).
		Set("signed_at", entry.SignedAt).
		Set("updated_at", entry.UpdatedAt).
		Where(squirrel.Eq{"id": entry.ID, "status": string(from)})
}

// UpdateEntry persists the mutable fields of an entry whose status is still from
func (r *LogbookRepository) UpdateEntry(ctx context.Context, entry *models.LogbookEntry, from models.LogbookStatus) error {
	sql, args, err := r.updateEntryQuery(entry, from).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update logbook query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("logbookID", entry.ID).Msg("Error executing update logbook query")
		return fmt.Errorf("error updating logbook entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// either gone or moved on since it was read
		if _, err := r.GetEntryByID(ctx, entry.ID); err != nil {
			return err
		}
		return apperrors.ErrLogbookChanged
	}

	return nil
}

// ListEntries lists entries matching the filter ordered by week then student
func (r *LogbookRepository) ListEntries(ctx context.Context, filter LogbookFilter) ([]*models.LogbookEntry, error) {
	query := r.sb.Select(logbookColumns...).
		From("logbook_entries l").
		OrderBy("l.week_number", "l.student_id")

	if filter.StudentID != nil {
		query = query.Where(squirrel.Eq{"l.student_id": *filter.StudentID})
	}
	if filter.Department != nil {
		query = query.Join("users u ON u.id = l.student_id").
			Where(squirrel.Eq{"u.department": *filter.Department})
	}
	if filter.SupervisorID != nil {
		query = query.Join("students s ON s.user_id = l.student_id").
			Where(squirrel.Eq{"s.assigned_supervisor_id": *filter.SupervisorID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list logbooks query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing logbook entries: %w", err)
	}
	defer rows.Close()

	entries := []*models.LogbookEntry{}
	for rows.Next() {
		entry, err := scanLogbook(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning logbook row: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// ApprovedWeeks returns the week numbers of a student's approved entries
func (r *LogbookRepository) ApprovedWeeks(ctx context.Context, studentID int64) ([]int, error) {
	sql, args, err := r.sb.Select("week_number").
		From("logbook_entries").
		Where(squirrel.Eq{"student_id": studentID, "status": string(models.LogbookApproved)}).
		OrderBy("week_number").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build approved weeks query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing approved weeks: %w", err)
	}

	weeks, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, fmt.Errorf("error scanning approved weeks: %w", err)
	}

	return weeks, nil
}
