package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/siwes/interntrack/internal/app/auth"
	"github.com/siwes/interntrack/internal/app/models"
	"github.com/siwes/interntrack/internal/app/models/dto"
	"github.com/siwes/interntrack/internal/app/repositories"
	"github.com/siwes/interntrack/internal/pkg/apperrors"
)

// GradingService schedules defenses and records their outcome
type GradingService struct {
	gradings repositories.GradingStore
	logbooks repositories.LogbookStore
	users    repositories.UserStore
	notifier Notifier
	now      func() time.Time
	logger   zerolog.Logger
}

// NewGradingService creates a new GradingService
func NewGradingService(
	gradings repositories.GradingStore,
	logbooks repositories.LogbookStore,
	users repositories.UserStore,
	notifier Notifier,
	logger zerolog.Logger,
) *GradingService {
	return &GradingService{
		gradings: gradings,
		logbooks: logbooks,
		users:    users,
		notifier: notifier,
		now:      time.Now,
		logger:   logger,
	}
}

// Schedule books or moves a student's defense. All 13 weeks must be approved.
func (s *GradingService) Schedule(ctx context.Context, id auth.Identity, req *dto.ScheduleDefenseRequest) (*models.GradingRecord, error) {
	if err := id.Require(models.OpScheduleDefense); err != nil {
		return nil, err
	}
	if req.StudentID <= 0 {
		return nil, apperrors.NewValidationError("studentId", "studentId must be positive")
	}
	if req.DefenseDate.IsZero() {
		return nil, apperrors.NewValidationError("defenseDate", "defense date is required")
	}
	assessor := strings.TrimSpace(req.Assessor)
	if assessor == "" {
		return nil, apperrors.NewValidationError("assessor", "assessor is required")
	}

	student, err := s.student(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}

	weeks, err := s.logbooks.ApprovedWeeks(ctx, student.ID)
	if err != nil {
		return nil, fmt.Errorf("error loading approved weeks: %w", err)
	}
	if !models.CompleteWeeks(weeks) {
		return nil, apperrors.ErrIncompleteLogbook
	}

	now := s.now()
	record, err := s.gradings.UpsertSchedule(ctx, &models.GradingRecord{
		StudentID:   student.ID,
		DefenseDate: req.DefenseDate,
		Assessor:    assessor,
		Score:       0,
		Verdict:     models.VerdictPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("error scheduling defense: %w", err)
	}

	s.logger.Info().Int64("studentID", student.ID).Time("defenseDate", record.DefenseDate).Msg("Defense scheduled")

	s.notifier.Publish(Event{
		RecipientID: student.ID,
		Kind:        models.NotificationDefenseScheduled,
		Title:       "Defense scheduled",
		Message: fmt.Sprintf("Your SIWES defense is scheduled for %s with %s.",
			record.DefenseDate.Format("Monday, 2 January 2006 15:04 MST"), record.Assessor),
	})

	return record, nil
}

// Grade records the score and verdict of a scheduled defense
func (s *GradingService) Grade(ctx context.Context, id auth.Identity, studentID int64, req *dto.SubmitGradeRequest) (*models.GradingRecord, error) {
	if err := id.Require(models.OpSubmitGrade); err != nil {
		return nil, err
	}
	if req.Score == nil {
		return nil, apperrors.NewValidationError("score", "score is required")
	}
	if *req.Score < models.MinScore || *req.Score > models.MaxScore {
		return nil, apperrors.ErrScoreOutOfRange
	}
	verdict := models.Verdict(strings.ToUpper(strings.TrimSpace(req.Verdict)))
	if !verdict.IsFinal() {
		return nil, apperrors.ErrInvalidVerdict
	}

	record, err := s.gradings.GetByStudent(ctx, studentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrGradingRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error loading grading record: %w", err)
	}

	record.Score = *req.Score
	record.Verdict = verdict
	record.Remarks = strings.TrimSpace(req.Remarks)
	record.UpdatedAt = s.now()

	record, err = s.gradings.UpdateGrade(ctx, record)
	if err != nil {
		if errors.Is(err, apperrors.ErrGradingRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error saving grade: %w", err)
	}

	s.logger.Info().Int64("studentID", studentID).Int("score", record.Score).Str("verdict", string(record.Verdict)).Msg("Defense graded")

	s.notifier.Publish(Event{
		RecipientID: studentID,
		Kind:        models.NotificationGradeRecorded,
		Title:       "Defense result available",
		Message:     fmt.Sprintf("Your defense result is %s with a score of %d.", record.Verdict, record.Score),
	})

	return record, nil
}

// ListDefenses returns every grading record with its student
func (s *GradingService) ListDefenses(ctx context.Context, id auth.Identity) ([]*models.DefenseInfo, error) {
	if err := id.Require(models.OpListDefenses); err != nil {
		return nil, err
	}

	defenses, err := s.gradings.ListDefenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing defenses: %w", err)
	}
	return defenses, nil
}

// GetDefenseInfo returns a student's grading record. Students only see their own;
// a nil studentID means the caller.
func (s *GradingService) GetDefenseInfo(ctx context.Context, id auth.Identity, studentID *int64) (*models.DefenseInfo, error) {
	target := id.UserID
	switch {
	case id.Role.Can(models.OpViewAnyDefense):
		if studentID == nil {
			return nil, apperrors.NewValidationError("studentId", "studentId is required")
		}
		target = *studentID
	case id.Role.Can(models.OpViewOwnDefense):
		if studentID != nil && *studentID != id.UserID {
			return nil, apperrors.ErrForbidden
		}
	default:
		return nil, apperrors.ErrForbidden
	}

	student, err := s.student(ctx, target)
	if err != nil {
		return nil, err
	}

	record, err := s.gradings.GetByStudent(ctx, student.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrGradingRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error loading grading record: %w", err)
	}

	return &models.DefenseInfo{GradingRecord: *record, Student: student.Summary()}, nil
}

func (s *GradingService) student(ctx context.Context, studentID int64) (*models.Student, error) {
	student, err := s.users.GetStudentByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error loading student: %w", err)
	}
	return student, nil
}
