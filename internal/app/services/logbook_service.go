package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/siwes/interntrack/internal/app/auth"
	"github.com/siwes/interntrack/internal/app/models"
	"github.com/siwes/interntrack/internal/app/models/dto"
	"github.com/siwes/interntrack/internal/app/repositories"
	"github.com/siwes/interntrack/internal/pkg/apperrors"
	"github.com/siwes/interntrack/internal/pkg/filestorage"
)

// LogbookService runs the weekly logbook submission and review workflow
type LogbookService struct {
	logbooks repositories.LogbookStore
	users    repositories.UserStore
	authz    *auth.AuthorizationService
	storage  filestorage.FileStorage
	notifier Notifier
	now      func() time.Time
	logger   zerolog.Logger
}

// NewLogbookService creates a new LogbookService
func NewLogbookService(
	logbooks repositories.LogbookStore,
	users repositories.UserStore,
	authz *auth.AuthorizationService,
	storage filestorage.FileStorage,
	notifier Notifier,
	logger zerolog.Logger,
) *LogbookService {
	return &LogbookService{
		logbooks: logbooks,
		users:    users,
		authz:    authz,
		storage:  storage,
		notifier: notifier,
		now:      time.Now,
		logger:   logger,
	}
}

// Submit records the caller's entry for a week. A week can be submitted once.
func (s *LogbookService) Submit(ctx context.Context, id auth.Identity, req *dto.SubmitLogbookRequest) (*models.LogbookEntry, error) {
	if err := id.Require(models.OpSubmitLogbook); err != nil {
		return nil, err
	}
	if !models.ValidWeek(req.WeekNumber) {
		return nil, apperrors.ErrInvalidWeek
	}
	description, images, err := cleanLogbookContent(req.ActivityDescription, req.Images)
	if err != nil {
		return nil, err
	}

	student, err := s.caller(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	entry := &models.LogbookEntry{
		StudentID:           student.ID,
		WeekNumber:          req.WeekNumber,
		ActivityDescription: description,
		Images:              images,
		DateSubmitted:       now,
		Status:              models.LogbookPending,
		UpdatedAt:           now,
	}

	if err := s.logbooks.CreateEntry(ctx, entry); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateWeek) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating logbook entry: %w", err)
	}

	s.logger.Info().Int64("studentID", student.ID).Int("week", entry.WeekNumber).Int64("logbookID", entry.ID).Msg("Logbook entry submitted")

	if student.AssignedSupervisorID != nil {
		s.notifier.Publish(Event{
			RecipientID: *student.AssignedSupervisorID,
			Kind:        models.NotificationLogbookSubmitted,
			Title:       "Logbook submitted",
			Message:     fmt.Sprintf("%s submitted the logbook for week %d.", student.FullName, entry.WeekNumber),
		})
	}

	return entry, nil
}

// Resubmit replaces the content of an entry sent back for review and returns it to PENDING
func (s *LogbookService) Resubmit(ctx context.Context, id auth.Identity, logbookID int64, req *dto.ResubmitLogbookRequest) (*models.LogbookEntry, error) {
	if err := id.Require(models.OpResubmitLogbook); err != nil {
		return nil, err
	}
	description, images, err := cleanLogbookContent(req.ActivityDescription, req.Images)
	if err != nil {
		return nil, err
	}

	entry, err := s.entry(ctx, logbookID)
	if err != nil {
		return nil, err
	}
	if !id.Is(entry.StudentID) {
		return nil, apperrors.ErrForbidden
	}
	if entry.Status != models.LogbookNeedsReview {
		return nil, apperrors.ErrResubmitNotAllowed
	}

	student, err := s.caller(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	entry.ActivityDescription = description
	entry.Images = images
	entry.Status = models.LogbookPending
	entry.SignedAt = nil
	entry.DateSubmitted = now
	entry.UpdatedAt = now

	if err := s.logbooks.UpdateEntry(ctx, entry, models.LogbookNeedsReview); err != nil {
		return nil, fmt.Errorf("error updating logbook entry: %w", err)
	}

	if student.AssignedSupervisorID != nil {
		s.notifier.Publish(Event{
			RecipientID: *student.AssignedSupervisorID,
			Kind:        models.NotificationLogbookResubmitted,
			Title:       "Logbook resubmitted",
			Message:     fmt.Sprintf("%s resubmitted the logbook for week %d.", student.FullName, entry.WeekNumber),
		})
	}

	return entry, nil
}

// Review records the assigned supervisor's decision on an entry
func (s *LogbookService) Review(ctx context.Context, id auth.Identity, logbookID int64, req *dto.ReviewLogbookRequest) (*models.LogbookEntry, error) {
	if err := id.Require(models.OpReviewLogbook); err != nil {
		return nil, err
	}
	status := models.LogbookStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	if !status.IsReviewOutcome() {
		return nil, apperrors.ErrInvalidStatus
	}

	entry, err := s.entry(ctx, logbookID)
	if err != nil {
		return nil, err
	}

	student, err := s.users.GetStudentByID(ctx, entry.StudentID)
	if err != nil {
		return nil, fmt.Errorf("error loading logbook owner: %w", err)
	}
	if !student.IsSupervisedBy(id.UserID) {
		return nil, apperrors.ErrForbidden
	}

	from := entry.Status
	entry.ApplyReview(status, strings.TrimSpace(req.Comment), s.now())
	if err := s.logbooks.UpdateEntry(ctx, entry, from); err != nil {
		return nil, fmt.Errorf("error updating logbook entry: %w", err)
	}

	s.logger.Info().Int64("logbookID", entry.ID).Str("status", string(status)).Int64("supervisorID", id.UserID).Msg("Logbook entry reviewed")

	message := fmt.Sprintf("Your logbook for week %d was approved.", entry.WeekNumber)
	if status == models.LogbookNeedsReview {
		message = fmt.Sprintf("Your logbook for week %d needs changes.", entry.WeekNumber)
	}
	if comment := *entry.SupervisorComment; comment != "" {
		message += " Comment: " + comment
	}
	s.notifier.Publish(Event{
		RecipientID: student.ID,
		Kind:        models.NotificationLogbookReviewed,
		Title:       "Logbook reviewed",
		Message:     message,
	})

	return entry, nil
}

// UploadImage stores an image for the caller and returns its URI
func (s *LogbookService) UploadImage(ctx context.Context, id auth.Identity, file *multipart.FileHeader) (string, error) {
	if err := id.Require(models.OpUploadLogbookImage); err != nil {
		return "", err
	}
	if err := filestorage.ValidateImage(file); err != nil {
		return "", apperrors.NewValidationError("file", err.Error())
	}
	if _, err := s.caller(ctx, id); err != nil {
		return "", err
	}

	uri, err := s.storage.SaveFileWithPath(file, "logbooks/"+strconv.FormatInt(id.UserID, 10))
	if err != nil {
		return "", fmt.Errorf("error storing image: %w", err)
	}
	return uri, nil
}

// ListAll lists entries for a coordinator (every student) or a HOD (own department)
func (s *LogbookService) ListAll(ctx context.Context, id auth.Identity, studentID *int64) ([]*models.LogbookEntry, error) {
	if err := id.Require(models.OpListAllLogbooks); err != nil {
		return nil, err
	}

	filter := repositories.LogbookFilter{StudentID: studentID}
	if id.Role == models.RoleHOD {
		department, err := s.authz.ActorDepartment(ctx, id)
		if err != nil {
			return nil, err
		}
		filter.Department = &department
	}

	return s.list(ctx, filter)
}

// ListOwn lists the calling student's entries
func (s *LogbookService) ListOwn(ctx context.Context, id auth.Identity) ([]*models.LogbookEntry, error) {
	if err := id.Require(models.OpListOwnLogbook); err != nil {
		return nil, err
	}
	studentID := id.UserID
	return s.list(ctx, repositories.LogbookFilter{StudentID: &studentID})
}

// ListForStudent lists one student's entries if the caller may view that student
func (s *LogbookService) ListForStudent(ctx context.Context, id auth.Identity, studentID int64) ([]*models.LogbookEntry, error) {
	if id.Role == models.RoleStudent {
		if !id.Is(studentID) {
			return nil, apperrors.ErrForbidden
		}
		return s.ListOwn(ctx, id)
	}
	if err := id.Require(models.OpListStudentLogbook); err != nil {
		return nil, err
	}

	student, err := s.users.GetStudentByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error loading student: %w", err)
	}
	if err := s.authz.CanViewStudent(ctx, id, student); err != nil {
		return nil, err
	}

	return s.list(ctx, repositories.LogbookFilter{StudentID: &studentID})
}

// ListSupervised lists every entry of the calling supervisor's assignees
func (s *LogbookService) ListSupervised(ctx context.Context, id auth.Identity) ([]*models.LogbookEntry, error) {
	if err := id.Require(models.OpListSupervised); err != nil {
		return nil, err
	}
	supervisorID := id.UserID
	return s.list(ctx, repositories.LogbookFilter{SupervisorID: &supervisorID})
}

// Get returns one entry if the caller may view its student
func (s *LogbookService) Get(ctx context.Context, id auth.Identity, logbookID int64) (*models.LogbookEntry, error) {
	entry, err := s.entry(ctx, logbookID)
	if err != nil {
		return nil, err
	}

	student, err := s.users.GetStudentByID(ctx, entry.StudentID)
	if err != nil {
		return nil, fmt.Errorf("error loading logbook owner: %w", err)
	}
	if err := s.authz.CanViewStudent(ctx, id, student); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *LogbookService) list(ctx context.Context, filter repositories.LogbookFilter) ([]*models.LogbookEntry, error) {
	entries, err := s.logbooks.ListEntries(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing logbook entries: %w", err)
	}
	return entries, nil
}

func (s *LogbookService) entry(ctx context.Context, logbookID int64) (*models.LogbookEntry, error) {
	if logbookID <= 0 {
		return nil, apperrors.ErrLogbookNotFound
	}
	entry, err := s.logbooks.GetEntryByID(ctx, logbookID)
	if err != nil {
		if errors.Is(err, apperrors.ErrLogbookNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error loading logbook entry: %w", err)
	}
	return entry, nil
}

// caller loads the calling student's record
func (s *LogbookService) caller(ctx context.Context, id auth.Identity) (*models.Student, error) {
	student, err := s.users.GetStudentByID(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrForbidden
		}
		return nil, fmt.Errorf("error loading student: %w", err)
	}
	if !student.IsActive {
		return nil, apperrors.ErrForbidden
	}
	return student, nil
}

func cleanLogbookContent(description string, images []string) (string, []string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", nil, apperrors.NewValidationError("activityDescription", "activity description is required")
	}

	cleaned := make([]string, 0, len(images))
	for _, uri := range images {
		uri = strings.TrimSpace(uri)
		if uri == "" {
			return "", nil, apperrors.NewValidationError("images", "image URIs must not be empty")
		}
		cleaned = append(cleaned, uri)
	}
	return description, cleaned, nil
}
