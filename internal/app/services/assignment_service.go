package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/siwes/interntrack/internal/app/auth"
	"github.com/siwes/interntrack/internal/app/models"
	"github.com/siwes/interntrack/internal/app/models/dto"
	"github.com/siwes/interntrack/internal/app/repositories"
	"github.com/siwes/interntrack/internal/pkg/apperrors"
)

// AssignmentService maintains the student to institution supervisor ledger
type AssignmentService struct {
	assignments repositories.AssignmentStore
	users       repositories.UserStore
	authz       *auth.AuthorizationService
	notifier    Notifier
	now         func() time.Time
	logger      zerolog.Logger
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(
	assignments repositories.AssignmentStore,
	users repositories.UserStore,
	authz *auth.AuthorizationService,
	notifier Notifier,
	logger zerolog.Logger,
) *AssignmentService {
	return &AssignmentService{
		assignments: assignments,
		users:       users,
		authz:       authz,
		notifier:    notifier,
		now:         time.Now,
		logger:      logger,
	}
}

// Assign sets the student's institution supervisor, replacing any previous one
func (s *AssignmentService) Assign(ctx context.Context, id auth.Identity, req *dto.AssignStudentRequest) (*models.Assignment, error) {
	if err := id.Require(models.OpAssignStudent); err != nil {
		return nil, err
	}
	if req.StudentID <= 0 {
		return nil, apperrors.NewValidationError("studentId", "studentId must be positive")
	}
	if req.SupervisorID <= 0 {
		return nil, apperrors.NewValidationError("supervisorId", "supervisorId must be positive")
	}

	student, err := s.users.GetStudentByID(ctx, req.StudentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error loading student: %w", err)
	}

	supervisor, err := s.users.GetUserByID(ctx, req.SupervisorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrSupervisorNotFound
		}
		return nil, fmt.Errorf("error loading supervisor: %w", err)
	}
	if supervisor.Role != models.RoleInstitutionSupervisor || !supervisor.IsActive {
		return nil, apperrors.ErrSupervisorNotFound
	}

	if err := s.authz.RequireSameDepartment(ctx, id, student); err != nil {
		return nil, err
	}

	assignment, err := s.assignments.UpsertAssignment(ctx, &models.Assignment{
		StudentID:               student.ID,
		InstitutionSupervisorID: supervisor.ID,
		HODID:                   id.UserID,
		AssignedAt:              s.now(),
		Status:                  models.AssignmentActive,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error saving assignment: %w", err)
	}

	s.logger.Info().
		Int64("studentID", student.ID).
		Int64("supervisorID", supervisor.ID).
		Int64("hodID", id.UserID).
		Msg("Student assigned to supervisor")

	s.notifier.Publish(Event{
		RecipientID: student.ID,
		Kind:        models.NotificationSupervisorAssigned,
		Title:       "Supervisor assigned",
		Message:     fmt.Sprintf("%s is now your institution supervisor.", supervisor.FullName),
	})
	s.notifier.Publish(Event{
		RecipientID: supervisor.ID,
		Kind:        models.NotificationSupervisorAssigned,
		Title:       "New student assigned",
		Message:     fmt.Sprintf("%s has been assigned to you for supervision.", student.FullName),
	})

	return assignment, nil
}

// ListDepartmental returns every student of the caller's department with their assignment
func (s *AssignmentService) ListDepartmental(ctx context.Context, id auth.Identity) ([]*models.DepartmentStudent, error) {
	if err := id.Require(models.OpListDepartmental); err != nil {
		return nil, err
	}

	department, err := s.authz.ActorDepartment(ctx, id)
	if err != nil {
		return nil, err
	}

	students, err := s.assignments.ListDepartmentStudents(ctx, department)
	if err != nil {
		return nil, fmt.Errorf("error listing department students: %w", err)
	}
	return students, nil
}

// ListMine returns the assignments of the calling supervisor
func (s *AssignmentService) ListMine(ctx context.Context, id auth.Identity) ([]*models.SupervisedAssignment, error) {
	if err := id.Require(models.OpListMyAssigned); err != nil {
		return nil, err
	}

	assignments, err := s.assignments.ListAssignmentsBySupervisor(ctx, id.UserID)
	if err != nil {
		return nil, fmt.Errorf("error listing assignments: %w", err)
	}
	return assignments, nil
}
