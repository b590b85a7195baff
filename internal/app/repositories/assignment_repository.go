package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/siwes/interntrack/internal/app/models"
	"github.com/siwes/interntrack/internal/db"
	"github.com/siwes/interntrack/internal/pkg/apperrors"
	"github.com/siwes/interntrack/internal/pkg/logger"
)

var assignmentColumns = []string{"a.id", "a.student_id", "a.institution_supervisor_id", "a.hod_id", "a.assigned_at", "a.status"}

// AssignmentRepository handles the assignment ledger
type AssignmentRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

var _ AssignmentStore = (*AssignmentRepository)(nil)

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(database *db.PostgresDB) *AssignmentRepository {
	return &AssignmentRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanAssignment(row pgx.Row, a *models.Assignment, extra ...any) error {
	dest := []any{&a.ID, &a.StudentID, &a.InstitutionSupervisorID, &a.HODID, &a.AssignedAt, &a.Status}
	return row.Scan(append(dest, extra...)...)
}

func (r *AssignmentRepository) upsertQuery(assignment *models.Assignment) squirrel.InsertBuilder {
	return r.sb.Insert("assignments AS a").
		Columns("student_id", "institution_supervisor_id", "hod_id", "assigned_at", "status").
		Values(assignment.StudentID, assignment.InstitutionSupervisorID, assignment.HODID, assignment.AssignedAt, string(assignment.Status)).
		Suffix(`ON CONFLICT (student_id) DO UPDATE SET
			institution_supervisor_id = EXCLUDED.institution_supervisor_id,
			hod_id = EXCLUDED.hod_id`).
		Suffix("RETURNING " + strings.Join(assignmentColumns, ", "))
}

// UpsertAssignment writes the assignment row and the student's supervisor mirror in one transaction
func (r *AssignmentRepository) UpsertAssignment(ctx context.Context, assignment *models.Assignment) (*models.Assignment, error) {
	saved := &models.Assignment{}

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.upsertQuery(assignment).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build upsert assignment query: %w", err)
		}

		if err := scanAssignment(tx.QueryRow(ctx, sql, args...), saved); err != nil {
			return fmt.Errorf("error upserting assignment: %w", err)
		}

		tag, err := tx.Exec(ctx, `UPDATE students SET assigned_supervisor_id = $1 WHERE user_id = $2`,
			saved.InstitutionSupervisorID, saved.StudentID)
		if err != nil {
			return fmt.Errorf("error updating student supervisor: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrStudentNotFound
		}
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Int64("studentID", assignment.StudentID).Msg("Error saving assignment")
		return nil, err
	}

	return saved, nil
}

// GetAssignmentByStudent returns the student's assignment
func (r *AssignmentRepository) GetAssignmentByStudent(ctx context.Context, studentID int64) (*models.Assignment, error) {
	sql, args, err := r.sb.Select(assignmentColumns...).
		From("assignments a").
		Where(squirrel.Eq{"a.student_id": studentID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get assignment query: %w", err)
	}

	a := &models.Assignment{}
	if err := scanAssignment(r.db.Pool.QueryRow(ctx, sql, args...), a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("assignment not found")
		}
		return nil, fmt.Errorf("error retrieving assignment: %w", err)
	}

	return a, nil
}

// ListAssignmentsBySupervisor lists a supervisor's assignments joined to student fields
func (r *AssignmentRepository) ListAssignmentsBySupervisor(ctx context.Context, supervisorID int64) ([]*models.SupervisedAssignment, error) {
	sql, args, err := r.sb.Select(assignmentColumns...).
		Columns("u.id", "u.full_name", "u.email", "COALESCE(u.department, '')").
		From("assignments a").
		Join("users u ON u.id = a.student_id").
		Where(squirrel.Eq{"a.institution_supervisor_id": supervisorID}).
		OrderBy("u.full_name", "u.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list supervised assignments query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing supervised assignments: %w", err)
	}
	defer rows.Close()

	var result []*models.SupervisedAssignment
	for rows.Next() {
		item := &models.SupervisedAssignment{Student: &models.StudentSummary{}}
		s := item.Student
		if err := scanAssignment(rows, &item.Assignment, &s.ID, &s.FullName, &s.Email, &s.Department); err != nil {
			return nil, fmt.Errorf("error scanning supervised assignment row: %w", err)
		}
		result = append(result, item)
	}

	return result, rows.Err()
}

// ListDepartmentStudents lists every student of a department with their assignment and supervisor, if any
func (r *AssignmentRepository) ListDepartmentStudents(ctx context.Context, department string) ([]*models.DepartmentStudent, error) {
	sql, args, err := r.sb.Select(
		"u.id", "u.full_name", "u.email", "COALESCE(u.department, '')",
		"a.id", "a.student_id", "a.institution_supervisor_id", "a.hod_id", "a.assigned_at", "a.status",
		"sup.id", "sup.full_name", "sup.email",
	).
		From("users u").
		Join("students s ON s.user_id = u.id").
		LeftJoin("assignments a ON a.student_id = u.id").
		LeftJoin("users sup ON sup.id = a.institution_supervisor_id").
		Where(squirrel.Eq{"u.department": department}).
		OrderBy("u.full_name", "u.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list department students query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing department students: %w", err)
	}
	defer rows.Close()

	var result []*models.DepartmentStudent
	for rows.Next() {
		var (
			student                 models.StudentSummary
			assignmentID, studentID *int64
			supervisorID, hodID     *int64
			assignedAt              *time.Time
			status                  *string
			supID                   *int64
			supName, supEmail       *string
		)
		if err := rows.Scan(
			&student.ID, &student.FullName, &student.Email, &student.Department,
			&assignmentID, &studentID, &supervisorID, &hodID, &assignedAt, &status,
			&supID, &supName, &supEmail,
		); err != nil {
			return nil, fmt.Errorf("error scanning department student row: %w", err)
		}

		item := &models.DepartmentStudent{Student: &student}
		if assignmentID != nil {
			item.Assignment = &models.Assignment{
				ID:                      *assignmentID,
				StudentID:               *studentID,
				InstitutionSupervisorID: *supervisorID,
				HODID:                   *hodID,
				AssignedAt:              *assignedAt,
				Status:                  models.AssignmentStatus(*status),
			}
		}
		if supID != nil {
			item.Supervisor = &models.UserSummary{ID: *supID, FullName: *supName, Email: *supEmail}
		}
		result = append(result, item)
	}

	return result, rows.Err()
}
