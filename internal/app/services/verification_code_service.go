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
	pkgAuth "github.com/siwes/interntrack/internal/pkg/auth"
	"github.com/siwes/interntrack/internal/pkg/validation"
)

const (
	// DefaultCodeTTL is how long an issued registration code stays valid
	DefaultCodeTTL = 24 * time.Hour
	// DefaultCodePurgeAfter is how long an expired, unused code is kept
	DefaultCodePurgeAfter = 7 * 24 * time.Hour

	maxCodeAttempts = 5
)

// VerificationCodeConfig controls code issuance
type VerificationCodeConfig struct {
	TTL        time.Duration
	Length     int
	PurgeAfter time.Duration
}

// VerificationCodeService issues and checks single-use registration codes
type VerificationCodeService struct {
	codes    repositories.VerificationCodeStore
	users    repositories.UserStore
	notifier Notifier
	config   VerificationCodeConfig
	generate func(length int) (string, error)
	now      func() time.Time
	logger   zerolog.Logger
}

// NewVerificationCodeService creates a new VerificationCodeService
func NewVerificationCodeService(
	codes repositories.VerificationCodeStore,
	users repositories.UserStore,
	notifier Notifier,
	config VerificationCodeConfig,
	logger zerolog.Logger,
) *VerificationCodeService {
	if config.TTL <= 0 {
		config.TTL = DefaultCodeTTL
	}
	if config.Length <= 0 {
		config.Length = pkgAuth.DefaultCodeLength
	}
	if config.PurgeAfter <= 0 {
		config.PurgeAfter = DefaultCodePurgeAfter
	}

	return &VerificationCodeService{
		codes:    codes,
		users:    users,
		notifier: notifier,
		config:   config,
		generate: pkgAuth.GenerateVerificationCode,
		now:      time.Now,
		logger:   logger,
	}
}

// Issue creates a registration code for an email that has no account yet and emails it
func (s *VerificationCodeService) Issue(ctx context.Context, id auth.Identity, req *dto.IssueCodeRequest) (*models.VerificationCode, error) {
	if err := id.Require(models.OpIssueVerificationCode); err != nil {
		return nil, err
	}

	email := validation.NormalizeEmail(req.Email)
	department := strings.TrimSpace(req.Department)
	if department == "" {
		return nil, apperrors.NewValidationError("department", "department is required")
	}

	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateRegistration
	}

	now := s.now()
	code := &models.VerificationCode{
		Email:      email,
		Department: department,
		IssuedBy:   id.UserID,
		ExpiresAt:  now.Add(s.config.TTL),
		CreatedAt:  now,
	}

	for attempt := 1; ; attempt++ {
		code.Code, err = s.generate(s.config.Length)
		if err != nil {
			return nil, err
		}

		err = s.codes.CreateCode(ctx, code)
		if err == nil {
			break
		}
		if !errors.Is(err, apperrors.ErrConflict) || attempt >= maxCodeAttempts {
			return nil, fmt.Errorf("error storing verification code: %w", err)
		}
		s.logger.Debug().Int("attempt", attempt).Msg("Verification code collision, regenerating")
	}

	s.logger.Info().Str("email", email).Str("department", department).Int64("issuedBy", id.UserID).Msg("Verification code issued")

	s.notifier.Publish(Event{
		RecipientEmail: email,
		Kind:           models.NotificationCodeIssued,
		Title:          "Your InternTrack registration code",
		Message: fmt.Sprintf(
			"Your registration code is %s. It expires in %s. Do not share it with anyone.",
			code.Code, humanizeDuration(s.config.TTL),
		),
	})

	return code, nil
}

// Validate checks a code against an email without consuming it
func (s *VerificationCodeService) Validate(ctx context.Context, req *dto.ValidateCodeRequest) (*models.VerificationCode, error) {
	return s.check(ctx, req.Email, req.Code)
}

// check returns the code if it matches the email, is unused and not expired.
// Codes are issued in upper case, so lower-case input is accepted.
func (s *VerificationCodeService) check(ctx context.Context, email, code string) (*models.VerificationCode, error) {
	record, err := s.codes.FindCode(ctx, validation.NormalizeEmail(email), strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if errors.Is(err, apperrors.ErrCodeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error looking up verification code: %w", err)
	}

	if record.IsUsed {
		return nil, apperrors.ErrCodeAlreadyUsed
	}
	if record.IsExpired(s.now()) {
		return nil, apperrors.ErrCodeExpired
	}

	return record, nil
}

// List returns every issued code, newest first
func (s *VerificationCodeService) List(ctx context.Context, id auth.Identity) ([]*models.VerificationCode, error) {
	if err := id.Require(models.OpListVerificationCodes); err != nil {
		return nil, err
	}

	codes, err := s.codes.ListCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing verification codes: %w", err)
	}
	return codes, nil
}

// PurgeExpired deletes unused codes that expired longer ago than the retention period
func (s *VerificationCodeService) PurgeExpired(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.config.PurgeAfter)
	n, err := s.codes.DeleteUnusedExpiredBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("error purging verification codes: %w", err)
	}
	if n > 0 {
		s.logger.Info().Int64("deleted", n).Time("cutoff", cutoff).Msg("Purged expired verification codes")
	}
	return n, nil
}

func humanizeDuration(d time.Duration) string {
	if d%time.Hour == 0 {
		hours := int(d / time.Hour)
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}
	return d.String()
}
