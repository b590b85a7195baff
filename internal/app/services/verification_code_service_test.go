package services

import (
	"strings"
	"testing"
	"time"

	"github.com/siwes/interntrack/internal/app/models"
	"github.com/siwes/interntrack/internal/app/models/dto"
	"github.com/siwes/interntrack/internal/pkg/apperrors"
	pkgAuth "github.com/siwes/interntrack/internal/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerificationCode(t *testing.T) {
	f := newFixture(t)

	code, err := f.codes.Issue(f.ctx, f.coordinator, &dto.IssueCodeRequest{Email: " Alice@Uni.edu ", Department: computerScience})
	require.NoError(t, err)

	assert.Len(t, code.Code, 8)
	for _, r := range code.Code {
		assert.True(t, strings.ContainsRune(pkgAuth.CodeAlphabet, r))
	}
	assert.Equal(t, "alice@uni.edu", code.Email)
	assert.Equal(t, computerScience, code.Department)
	assert.Equal(t, f.coordinator.UserID, code.IssuedBy)
	assert.Equal(t, f.clock.Now().Add(24*time.Hour), code.ExpiresAt)
	assert.False(t, code.IsUsed)

	events := f.notifier.OfKind(models.NotificationCodeIssued)
	require.Len(t, events, 1)
	assert.Equal(t, "alice@uni.edu", events[0].RecipientEmail)
	assert.Zero(t, events[0].RecipientID)
	assert.Contains(t, events[0].Message, code.Code)
	assert.Contains(t, events[0].Message, "24 hours")
}

func TestIssueVerificationCodeRequiresCoordinator(t *testing.T) {
	f := newFixture(t)

	_, err := f.codes.Issue(f.ctx, f.hod, &dto.IssueCodeRequest{Email: "x@uni.edu", Department: computerScience})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = f.codes.List(f.ctx, f.bob)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.Empty(t, f.notifier.Events())
}

func TestIssueVerificationCodeRejectsRegisteredEmail(t *testing.T) {
	f := newFixture(t)
	f.registerStudent("alice@uni.edu", "Alice Okafor", computerScience)

	_, err := f.codes.Issue(f.ctx, f.coordinator, &dto.IssueCodeRequest{Email: "ALICE@uni.edu", Department: computerScience})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateRegistration)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestIssueVerificationCodeRetriesCollisions(t *testing.T) {
	f := newFixture(t)

	sequence := []string{"AAAAAAAA", "AAAAAAAA", "BBBBBBBB"}
	f.codes.generate = func(int) (string, error) {
		next := sequence[0]
		sequence = sequence[1:]
		return next, nil
	}

	first, err := f.codes.Issue(f.ctx, f.coordinator, &dto.IssueCodeRequest{Email: "a@uni.edu", Department: computerScience})
	require.NoError(t, err)
	assert.Equal(t, "AAAAAAAA", first.Code)

	second, err := f.codes.Issue(f.ctx, f.coordinator, &dto.IssueCodeRequest{Email: "b@uni.edu", Department: computerScience})
	require.NoError(t, err)
	assert.Equal(t, "BBBBBBBB", second.Code)

	calls := 0
	f.codes.generate = func(int) (string, error) {
		calls++
		return "AAAAAAAA", nil
	}
	_, err = f.codes.Issue(f.ctx, f.coordinator, &dto.IssueCodeRequest{Email: "c@uni.edu", Department: computerScience})
	assert.Error(t, err)
	assert.Equal(t, maxCodeAttempts, calls)
}

func TestValidateVerificationCodeLifecycle(t *testing.T) {
	f := newFixture(t)

	code, err := f.codes.Issue(f.ctx, f.coordinator, &dto.IssueCodeRequest{Email: "alice@uni.edu", Department: computerScience})
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		got, err := f.codes.Validate(f.ctx, &dto.ValidateCodeRequest{Email: "Alice@uni.edu", Code: strings.ToLower(code.Code)})
		require.NoError(t, err)
		assert.Equal(t, computerScience, got.Department)
	})

	t.Run("email mismatch", func(t *testing.T) {
		_, err := f.codes.Validate(f.ctx, &dto.ValidateCodeRequest{Email: "mallory@uni.edu", Code: code.Code})
		assert.ErrorIs(t, err, apperrors.ErrCodeNotFound)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := f.codes.Validate(f.ctx, &dto.ValidateCodeRequest{Email: "alice@uni.edu", Code: "ZZZZZZZZ"})
		assert.ErrorIs(t, err, apperrors.ErrCodeNotFound)
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	})

	t.Run("valid at exact expiry", func(t *testing.T) {
		f.clock.Advance(24 * time.Hour)
		_, err := f.codes.Validate(f.ctx, &dto.ValidateCodeRequest{Email: "alice@uni.edu", Code: code.Code})
		assert.NoError(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		f.clock.Advance(time.Second)
		_, err := f.codes.Validate(f.ctx, &dto.ValidateCodeRequest{Email: "alice@uni.edu", Code: code.Code})
		assert.ErrorIs(t, err, apperrors.ErrCodeExpired)
	})
}

func TestVerificationCodeMatchIgnoresCaseAndPadding(t *testing.T) {
	f := newFixture(t)

	code, err := f.codes.Issue(f.ctx, f.coordinator, &dto.IssueCodeRequest{Email: "alice@uni.edu", Department: computerScience})
	require.NoError(t, err)
	typed := "  " + strings.ToLower(code.Code) + " "

	_, err = f.codes.Validate(f.ctx, &dto.ValidateCodeRequest{Email: "alice@uni.edu", Code: typed})
	require.NoError(t, err)

	// any other glyph is a different code
	last := code.Code[len(code.Code)-1]
	other := "A"
	if last == 'A' {
		other = "B"
	}
	_, err = f.codes.Validate(f.ctx, &dto.ValidateCodeRequest{Email: "alice@uni.edu", Code: code.Code[:len(code.Code)-1] + other})
	assert.ErrorIs(t, err, apperrors.ErrCodeNotFound)

	_, err = f.auth.RegisterStudent(f.ctx, &dto.RegisterStudentRequest{
		FullName: "Alice Okafor",
		Email:    "alice@uni.edu",
		Code:     typed,
		Password: testPassword,
	})
	require.NoError(t, err)

	_, err = f.codes.Validate(f.ctx, &dto.ValidateCodeRequest{Email: "alice@uni.edu", Code: code.Code})
	assert.ErrorIs(t, err, apperrors.ErrCodeAlreadyUsed)
}

func TestValidateUsedCodeReportsAlreadyUsed(t *testing.T) {
	f := newFixture(t)

	code, err := f.codes.Issue(f.ctx, f.coordinator, &dto.IssueCodeRequest{Email: "alice@uni.edu", Department: computerScience})
	require.NoError(t, err)

	_, err = f.auth.RegisterStudent(f.ctx, &dto.RegisterStudentRequest{
		FullName: "Alice Okafor", Email: "alice@uni.edu", Code: code.Code, Password: testPassword,
	})
	require.NoError(t, err)

	_, err = f.codes.Validate(f.ctx, &dto.ValidateCodeRequest{Email: "alice@uni.edu", Code: code.Code})
	assert.ErrorIs(t, err, apperrors.ErrCodeAlreadyUsed)

	// used wins over expired
	f.clock.Advance(48 * time.Hour)
	_, err = f.codes.Validate(f.ctx, &dto.ValidateCodeRequest{Email: "alice@uni.edu", Code: code.Code})
	assert.ErrorIs(t, err, apperrors.ErrCodeAlreadyUsed)
}

func TestListAndPurgeVerificationCodes(t *testing.T) {
	f := newFixture(t)

	old, err := f.codes.Issue(f.ctx, f.coordinator, &dto.IssueCodeRequest{Email: "old@uni.edu", Department: computerScience})
	require.NoError(t, err)
	f.clock.Advance(time.Hour)
	fresh, err := f.codes.Issue(f.ctx, f.coordinator, &dto.IssueCodeRequest{Email: "new@uni.edu", Department: mathematics})
	require.NoError(t, err)

	codes, err := f.codes.List(f.ctx, f.coordinator)
	require.NoError(t, err)
	require.Len(t, codes, 2)
	assert.Equal(t, fresh.Code, codes[0].Code, "newest first")
	assert.Equal(t, old.Code, codes[1].Code)

	n, err := f.codes.PurgeExpired(f.ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	// old expired 24h after issue and is purged 7 days after that
	f.clock.Advance(24*time.Hour + 7*24*time.Hour - 30*time.Minute)
	n, err = f.codes.PurgeExpired(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	codes, err = f.codes.List(f.ctx, f.coordinator)
	require.NoError(t, err)
	require.Len(t, codes, 1)
	assert.Equal(t, fresh.Code, codes[0].Code)
}
