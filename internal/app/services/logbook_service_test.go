package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/siwes/interntrack/internal/app/models"
	"github.com/siwes/interntrack/internal/app/models/dto"
	"github.com/siwes/interntrack/internal/app/repositories"
	"github.com/siwes/interntrack/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitLogbook(t *testing.T) {
	f := newFixture(t)
	alice := f.registerStudent("alice@uni.edu", "Alice Okafor", computerScience)
	f.notifier.Reset()

	entry, err := f.logbooks.Submit(f.ctx, alice, &dto.SubmitLogbookRequest{
		WeekNumber:          1,
		ActivityDescription: "  Onboarding and environment setup ",
		Images:              []string{"http://localhost:8080/uploads/a.png", "http://localhost:8080/uploads/b.png"},
	})
	require.NoError(t, err)
	assert.NotZero(t, entry.ID)
	assert.Equal(t, models.LogbookPending, entry.Status)
	assert.Equal(t, "Onboarding and environment setup", entry.ActivityDescription)
	assert.Equal(t, []string{"http://localhost:8080/uploads/a.png", "http://localhost:8080/uploads/b.png"}, entry.Images)
	assert.Equal(t, f.clock.Now(), entry.DateSubmitted)
	assert.Nil(t, entry.SignedAt)

	assert.Empty(t, f.notifier.OfKind(models.NotificationLogbookSubmitted), "no supervisor, no notification")

	f.assign(alice, f.bob)
	f.notifier.Reset()
	f.submit(alice, 2)

	events := f.notifier.OfKind(models.NotificationLogbookSubmitted)
	require.Len(t, events, 1)
	assert.Equal(t, f.bob.UserID, events[0].RecipientID)
	assert.Contains(t, events[0].Message, "week 2")
}

func TestSubmitLogbookRejectsDuplicateWeek(t *testing.T) {
	f := newFixture(t)
	alice := f.registerStudent("alice@uni.edu", "Alice Okafor", computerScience)
	original := f.submit(alice, 1)

	_, err := f.logbooks.Submit(f.ctx, alice, &dto.SubmitLogbookRequest{WeekNumber: 1, ActivityDescription: "Overwrite attempt"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateWeek)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	stored, err := f.repos.Logbooks.GetEntryByID(f.ctx, original.ID)
	require.NoError(t, err)
	assert.Equal(t, original.ActivityDescription, stored.ActivityDescription)

	entries, err := f.logbooks.ListOwn(f.ctx, alice)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSubmitLogbookConcurrentSameWeek(t *testing.T) {
	f := newFixture(t)
	alice := f.registerStudent("alice@uni.edu", "Alice Okafor", computerScience)

	const attempts = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		dupes     int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.logbooks.Submit(f.ctx, alice, &dto.SubmitLogbookRequest{WeekNumber: 4, ActivityDescription: "race"})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case assert.ErrorIs(t, err, apperrors.ErrDuplicateWeek):
				dupes++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, dupes)
}

func TestSubmitLogbookValidation(t *testing.T) {
	f := newFixture(t)
	alice := f.registerStudent("alice@uni.edu", "Alice Okafor", computerScience)

	for _, week := range []int{0, -1, 14, 100} {
		_, err := f.logbooks.Submit(f.ctx, alice, &dto.SubmitLogbookRequest{WeekNumber: week, ActivityDescription: "x"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidWeek, "week %d", week)
	}

	_, err := f.logbooks.Submit(f.ctx, alice, &dto.SubmitLogbookRequest{WeekNumber: 1, ActivityDescription: "   "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = f.logbooks.Submit(f.ctx, f.bob, &dto.SubmitLogbookRequest{WeekNumber: 1, ActivityDescription: "x"})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	entries, err := f.logbooks.ListOwn(f.ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReviewLogbook(t *testing.T) {
	f := newFixture(t)
	alice := f.registerStudent("alice@uni.edu", "Alice Okafor", computerScience)
	f.assign(alice, f.bob)
	entry := f.submit(alice, 1)
	f.notifier.Reset()

	f.clock.Advance(time.Hour)
	approved, err := f.logbooks.Review(f.ctx, f.bob, entry.ID, &dto.ReviewLogbookRequest{Status: "approved", Comment: " Well done "})
	require.NoError(t, err)
	assert.Equal(t, models.LogbookApproved, approved.Status)
	require.NotNil(t, approved.SignedAt)
	assert.Equal(t, f.clock.Now(), *approved.SignedAt)
	require.NotNil(t, approved.SupervisorComment)
	assert.Equal(t, "Well done", *approved.SupervisorComment)

	events := f.notifier.OfKind(models.NotificationLogbookReviewed)
	require.Len(t, events, 1)
	assert.Equal(t, alice.UserID, events[0].RecipientID)
	assert.Contains(t, events[0].Message, "approved")

	revoked, err := f.logbooks.Review(f.ctx, f.bob, entry.ID, &dto.ReviewLogbookRequest{Status: "NEEDS_REVIEW", Comment: "Add detail"})
	require.NoError(t, err)
	assert.Equal(t, models.LogbookNeedsReview, revoked.Status)
	assert.Nil(t, revoked.SignedAt, "signedAt is cleared when the entry is not approved")

	stored, err := f.repos.Logbooks.GetEntryByID(f.ctx, entry.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.SignedAt)
	assert.Equal(t, "Add detail", *stored.SupervisorComment)
}

func TestReviewLogbookRejections(t *testing.T) {
	f := newFixture(t)
	alice := f.registerStudent("alice@uni.edu", "Alice Okafor", computerScience)
	f.assign(alice, f.bob)
	entry := f.submit(alice, 1)

	t.Run("other supervisor", func(t *testing.T) {
		_, err := f.logbooks.Review(f.ctx, f.carol, entry.ID, &dto.ReviewLogbookRequest{Status: "APPROVED"})
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("hod cannot review", func(t *testing.T) {
		_, err := f.logbooks.Review(f.ctx, f.hod, entry.ID, &dto.ReviewLogbookRequest{Status: "APPROVED"})
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("reset to pending", func(t *testing.T) {
		_, err := f.logbooks.Review(f.ctx, f.bob, entry.ID, &dto.ReviewLogbookRequest{Status: "PENDING"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
	})

	t.Run("status is validated before lookup", func(t *testing.T) {
		_, err := f.logbooks.Review(f.ctx, f.bob, 99999, &dto.ReviewLogbookRequest{Status: "DONE"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
	})

	t.Run("unknown entry", func(t *testing.T) {
		_, err := f.logbooks.Review(f.ctx, f.bob, 99999, &dto.ReviewLogbookRequest{Status: "APPROVED"})
		assert.ErrorIs(t, err, apperrors.ErrLogbookNotFound)
	})

	stored, err := f.repos.Logbooks.GetEntryByID(f.ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LogbookPending, stored.Status)
	assert.Nil(t, stored.SupervisorComment)
}

func TestReviewFollowsReassignment(t *testing.T) {
	f := newFixture(t)
	alice := f.registerStudent("alice@uni.edu", "Alice Okafor", computerScience)
	f.assign(alice, f.bob)
	entry := f.submit(alice, 1)

	f.assign(alice, f.carol)

	_, err := f.logbooks.Review(f.ctx, f.bob, entry.ID, &dto.ReviewLogbookRequest{Status: "APPROVED"})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	f.review(f.carol, entry.ID, models.LogbookApproved)
}

func TestResubmitLogbook(t *testing.T) {
	f := newFixture(t)
	alice := f.registerStudent("alice@uni.edu", "Alice Okafor", computerScience)
	f.assign(alice, f.bob)
	entry := f.submit(alice, 3)

	_, err := f.logbooks.Resubmit(f.ctx, alice, entry.ID, &dto.ResubmitLogbookRequest{ActivityDescription: "early edit"})
	assert.ErrorIs(t, err, apperrors.ErrResubmitNotAllowed, "pending entries cannot be resubmitted")

	f.review(f.bob, entry.ID, models.LogbookNeedsReview)
	f.notifier.Reset()

	ben := f.registerStudent("ben@uni.edu", "Ben Nwosu", computerScience)
	_, err = f.logbooks.Resubmit(f.ctx, ben, entry.ID, &dto.ResubmitLogbookRequest{ActivityDescription: "not mine"})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	f.clock.Advance(24 * time.Hour)
	updated, err := f.logbooks.Resubmit(f.ctx, alice, entry.ID, &dto.ResubmitLogbookRequest{
		ActivityDescription: "Expanded description of the week",
		Images:              []string{"http://localhost:8080/uploads/c.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, entry.ID, updated.ID)
	assert.Equal(t, 3, updated.WeekNumber)
	assert.Equal(t, models.LogbookPending, updated.Status)
	assert.Equal(t, "Expanded description of the week", updated.ActivityDescription)
	assert.Equal(t, f.clock.Now(), updated.DateSubmitted)
	assert.Nil(t, updated.SignedAt)
	require.NotNil(t, updated.SupervisorComment, "previous comment is kept")

	events := f.notifier.OfKind(models.NotificationLogbookResubmitted)
	require.Len(t, events, 1)
	assert.Equal(t, f.bob.UserID, events[0].RecipientID)

	f.review(f.bob, entry.ID, models.LogbookApproved)
	_, err = f.logbooks.Resubmit(f.ctx, alice, entry.ID, &dto.ResubmitLogbookRequest{ActivityDescription: "after approval"})
	assert.ErrorIs(t, err, apperrors.ErrResubmitNotAllowed)
}

// interleavedLogbooks runs between once, right after the first entry read
type interleavedLogbooks struct {
	repositories.LogbookStore
	mu      sync.Mutex
	between func()
}

func (s *interleavedLogbooks) GetEntryByID(ctx context.Context, id int64) (*models.LogbookEntry, error) {
	entry, err := s.LogbookStore.GetEntryByID(ctx, id)
	s.mu.Lock()
	between := s.between
	s.between = nil
	s.mu.Unlock()
	if between != nil {
		between()
	}
	return entry, err
}

func (f *fixture) interleavedLogbookService(between func()) *LogbookService {
	f.t.Helper()
	store := &interleavedLogbooks{LogbookStore: f.repos.Logbooks, between: between}
	svc := NewLogbookService(store, f.repos.Users, f.authz, f.storage, f.notifier, zerolog.Nop())
	svc.now = f.clock.Now
	return svc
}

func TestReviewKeepsConcurrentResubmission(t *testing.T) {
	f := newFixture(t)
	alice := f.registerStudent("alice@uni.edu", "Alice Okafor", computerScience)
	f.assign(alice, f.bob)
	entry := f.submit(alice, 4)
	f.review(f.bob, entry.ID, models.LogbookNeedsReview)

	reviewer := f.interleavedLogbookService(func() {
		_, err := f.logbooks.Resubmit(f.ctx, alice, entry.ID, &dto.ResubmitLogbookRequest{ActivityDescription: "Rewritten account of the week"})
		require.NoError(t, err)
	})
	f.notifier.Reset()

	_, err := reviewer.Review(f.ctx, f.bob, entry.ID, &dto.ReviewLogbookRequest{Status: "APPROVED"})
	assert.ErrorIs(t, err, apperrors.ErrLogbookChanged)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Empty(t, f.notifier.OfKind(models.NotificationLogbookReviewed))

	stored, err := f.repos.Logbooks.GetEntryByID(f.ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LogbookPending, stored.Status)
	assert.Equal(t, "Rewritten account of the week", stored.ActivityDescription)
	assert.Nil(t, stored.SignedAt)

	// a review after reloading signs the new content
	approved := f.review(f.bob, entry.ID, models.LogbookApproved)
	assert.Equal(t, "Rewritten account of the week", approved.ActivityDescription)
	assert.NotNil(t, approved.SignedAt)
}

func TestResubmitKeepsConcurrentReview(t *testing.T) {
	f := newFixture(t)
	alice := f.registerStudent("alice@uni.edu", "Alice Okafor", computerScience)
	f.assign(alice, f.bob)
	entry := f.submit(alice, 5)
	f.review(f.bob, entry.ID, models.LogbookNeedsReview)

	student := f.interleavedLogbookService(func() {
		f.review(f.bob, entry.ID, models.LogbookApproved)
	})

	_, err := student.Resubmit(f.ctx, alice, entry.ID, &dto.ResubmitLogbookRequest{ActivityDescription: "Late rewrite"})
	assert.ErrorIs(t, err, apperrors.ErrLogbookChanged)

	stored, err := f.repos.Logbooks.GetEntryByID(f.ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LogbookApproved, stored.Status)
	assert.Equal(t, entry.ActivityDescription, stored.ActivityDescription)
	assert.NotNil(t, stored.SignedAt)
}

func TestLogbookListings(t *testing.T) {
	f := newFixture(t)
	alice := f.registerStudent("alice@uni.edu", "Alice Okafor", computerScience)
	ben := f.registerStudent("ben@uni.edu", "Ben Nwosu", computerScience)
	mary := f.registerStudent("mary@uni.edu", "Mary Math", mathematics)
	f.assign(alice, f.bob)
	f.assign(ben, f.carol)

	for _, week := range []int{3, 1, 2} {
		f.submit(alice, week)
	}
	f.submit(ben, 1)
	f.submit(mary, 1)

	t.Run("own entries ordered by week", func(t *testing.T) {
		entries, err := f.logbooks.ListOwn(f.ctx, alice)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		for i, e := range entries {
			assert.Equal(t, i+1, e.WeekNumber)
		}
	})

	t.Run("coordinator sees everything", func(t *testing.T) {
		entries, err := f.logbooks.ListAll(f.ctx, f.coordinator, nil)
		require.NoError(t, err)
		assert.Len(t, entries, 5)
		assert.Equal(t, 1, entries[0].WeekNumber)
		assert.Equal(t, 3, entries[len(entries)-1].WeekNumber)

		filtered, err := f.logbooks.ListAll(f.ctx, f.coordinator, int64Ptr(ben.UserID))
		require.NoError(t, err)
		assert.Len(t, filtered, 1)
	})

	t.Run("hod sees own department", func(t *testing.T) {
		entries, err := f.logbooks.ListAll(f.ctx, f.hod, nil)
		require.NoError(t, err)
		assert.Len(t, entries, 4)

		entries, err = f.logbooks.ListAll(f.ctx, f.hod, int64Ptr(mary.UserID))
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("supervisor sees assignees only", func(t *testing.T) {
		entries, err := f.logbooks.ListSupervised(f.ctx, f.bob)
		require.NoError(t, err)
		assert.Len(t, entries, 3)

		entries, err = f.logbooks.ListForStudent(f.ctx, f.bob, alice.UserID)
		require.NoError(t, err)
		assert.Len(t, entries, 3)

		_, err = f.logbooks.ListForStudent(f.ctx, f.bob, ben.UserID)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("hod student listing is department scoped", func(t *testing.T) {
		_, err := f.logbooks.ListForStudent(f.ctx, f.hod, mary.UserID)
		assert.ErrorIs(t, err, apperrors.ErrCrossDepartmentDenied)

		entries, err := f.logbooks.ListForStudent(f.ctx, f.mathHOD, mary.UserID)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("students only see themselves", func(t *testing.T) {
		_, err := f.logbooks.ListForStudent(f.ctx, alice, ben.UserID)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)

		entries, err := f.logbooks.ListForStudent(f.ctx, alice, alice.UserID)
		require.NoError(t, err)
		assert.Len(t, entries, 3)

		_, err = f.logbooks.ListAll(f.ctx, alice, nil)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("get entry", func(t *testing.T) {
		own, err := f.logbooks.ListOwn(f.ctx, ben)
		require.NoError(t, err)
		require.Len(t, own, 1)

		got, err := f.logbooks.Get(f.ctx, f.carol, own[0].ID)
		require.NoError(t, err)
		assert.Equal(t, ben.UserID, got.StudentID)

		_, err = f.logbooks.Get(f.ctx, f.bob, own[0].ID)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		_, err = f.logbooks.Get(f.ctx, alice, own[0].ID)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		_, err = f.logbooks.Get(f.ctx, f.coordinator, 424242)
		assert.ErrorIs(t, err, apperrors.ErrLogbookNotFound)
	})
}

func TestUploadLogbookImage(t *testing.T) {
	f := newFixture(t)
	alice := f.registerStudent("alice@uni.edu", "Alice Okafor", computerScience)

	uri, err := f.logbooks.UploadImage(f.ctx, alice, imageHeader(t, "site-visit.jpg"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "http://localhost:8080/uploads/logbooks/"))
	assert.True(t, strings.HasSuffix(uri, ".jpg"))

	_, err = f.logbooks.UploadImage(f.ctx, alice, imageHeader(t, "report.exe"))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = f.logbooks.UploadImage(f.ctx, f.bob, imageHeader(t, "site-visit.jpg"))
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func imageHeader(t *testing.T, filename string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("image-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	_, header, err := req.FormFile("file")
	require.NoError(t, err)
	return header
}
