package services

import (
	"testing"
	"time"

	"github.com/siwes/interntrack/internal/app/models"
	"github.com/siwes/interntrack/internal/app/models/dto"
	"github.com/siwes/interntrack/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defenseDate = time.Date(2025, 7, 14, 10, 0, 0, 0, time.UTC)

func TestScheduleRequiresCompleteLogbook(t *testing.T) {
	f := newFixture(t)
	alice := f.registerStudent("alice@uni.edu", "Alice Okafor", computerScience)
	f.assign(alice, f.bob)

	req := &dto.ScheduleDefenseRequest{StudentID: alice.UserID, DefenseDate: defenseDate, Assessor: "Dr. X"}

	entries := make([]*models.LogbookEntry, 0, models.LogbookWeeks)
	for week := 1; week < models.LogbookWeeks; week++ {
		entry := f.submit(alice, week)
		entries = append(entries, f.review(f.bob, entry.ID, models.LogbookApproved))
	}

	_, err := f.gradings.Schedule(f.ctx, f.coordinator, req)
	assert.ErrorIs(t, err, apperrors.ErrIncompleteLogbook, "twelve approved weeks")
	assert.ErrorIs(t, err, apperrors.ErrPreconditionFailed)

	last := f.submit(alice, models.LogbookWeeks)
	_, err = f.gradings.Schedule(f.ctx, f.coordinator, req)
	assert.ErrorIs(t, err, apperrors.ErrIncompleteLogbook, "week 13 still pending")

	f.review(f.bob, last.ID, models.LogbookNeedsReview)
	_, err = f.gradings.Schedule(f.ctx, f.coordinator, req)
	assert.ErrorIs(t, err, apperrors.ErrIncompleteLogbook, "week 13 needs review")

	_, err = f.logbooks.Resubmit(f.ctx, alice, last.ID, &dto.ResubmitLogbookRequest{ActivityDescription: "Final week wrap-up"})
	require.NoError(t, err)
	f.review(f.bob, last.ID, models.LogbookApproved)

	f.notifier.Reset()
	record, err := f.gradings.Schedule(f.ctx, f.coordinator, req)
	require.NoError(t, err)
	assert.Equal(t, alice.UserID, record.StudentID)
	assert.Equal(t, models.VerdictPending, record.Verdict)
	assert.Zero(t, record.Score)
	assert.Equal(t, "Dr. X", record.Assessor)
	assert.True(t, defenseDate.Equal(record.DefenseDate))

	events := f.notifier.OfKind(models.NotificationDefenseScheduled)
	require.Len(t, events, 1)
	assert.Equal(t, alice.UserID, events[0].RecipientID)
	assert.Contains(t, events[0].Message, "Dr. X")

	// un-approving a week closes the gate again for new schedules
	f.review(f.bob, entries[4].ID, models.LogbookNeedsReview)
	_, err = f.gradings.Schedule(f.ctx, f.coordinator, req)
	assert.ErrorIs(t, err, apperrors.ErrIncompleteLogbook)
}

func TestScheduleValidation(t *testing.T) {
	f := newFixture(t)
	alice := f.registerStudent("alice@uni.edu", "Alice Okafor", computerScience)

	tests := []struct {
		name    string
		caller  string
		req     dto.ScheduleDefenseRequest
		wantErr error
	}{
		{
			name:    "hod cannot schedule",
			caller:  "hod",
			req:     dto.ScheduleDefenseRequest{StudentID: alice.UserID, DefenseDate: defenseDate, Assessor: "Dr. X"},
			wantErr: apperrors.ErrForbidden,
		},
		{
			name:    "missing assessor",
			req:     dto.ScheduleDefenseRequest{StudentID: alice.UserID, DefenseDate: defenseDate, Assessor: "  "},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "missing date",
			req:     dto.ScheduleDefenseRequest{StudentID: alice.UserID, Assessor: "Dr. X"},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "unknown student",
			req:     dto.ScheduleDefenseRequest{StudentID: 9999, DefenseDate: defenseDate, Assessor: "Dr. X"},
			wantErr: apperrors.ErrStudentNotFound,
		},
		{
			name:    "no logbook",
			req:     dto.ScheduleDefenseRequest{StudentID: alice.UserID, DefenseDate: defenseDate, Assessor: "Dr. X"},
			wantErr: apperrors.ErrIncompleteLogbook,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caller := f.coordinator
			if tt.caller == "hod" {
				caller = f.hod
			}
			_, err := f.gradings.Schedule(f.ctx, caller, &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGradeDefense(t *testing.T) {
	f := newFixture(t)
	alice := f.registerStudent("alice@uni.edu", "Alice Okafor", computerScience)
	f.assign(alice, f.bob)
	f.completeLogbook(alice, f.bob)

	_, err := f.gradings.Grade(f.ctx, f.coordinator, alice.UserID, &dto.SubmitGradeRequest{Score: intPtr(70), Verdict: "PASS"})
	assert.ErrorIs(t, err, apperrors.ErrGradingRecordNotFound, "nothing scheduled yet")

	_, err = f.gradings.Schedule(f.ctx, f.coordinator, &dto.ScheduleDefenseRequest{StudentID: alice.UserID, DefenseDate: defenseDate, Assessor: "Dr. X"})
	require.NoError(t, err)
	f.notifier.Reset()

	f.clock.Advance(time.Hour)
	graded, err := f.gradings.Grade(f.ctx, f.coordinator, alice.UserID, &dto.SubmitGradeRequest{Score: intPtr(78), Verdict: "pass", Remarks: " Solid presentation "})
	require.NoError(t, err)
	assert.Equal(t, 78, graded.Score)
	assert.Equal(t, models.VerdictPass, graded.Verdict)
	assert.Equal(t, "Solid presentation", graded.Remarks)
	assert.Equal(t, f.clock.Now(), graded.UpdatedAt)

	events := f.notifier.OfKind(models.NotificationGradeRecorded)
	require.Len(t, events, 1)
	assert.Equal(t, alice.UserID, events[0].RecipientID)
	assert.Contains(t, events[0].Message, "PASS")

	info, err := f.gradings.GetDefenseInfo(f.ctx, alice, nil)
	require.NoError(t, err)
	assert.Equal(t, 78, info.Score)
	assert.Equal(t, models.VerdictPass, info.Verdict)
	assert.Equal(t, "Alice Okafor", info.Student.FullName)

	// moving the defense keeps the recorded result
	moved := defenseDate.Add(48 * time.Hour)
	rescheduled, err := f.gradings.Schedule(f.ctx, f.coordinator, &dto.ScheduleDefenseRequest{StudentID: alice.UserID, DefenseDate: moved, Assessor: "Dr. Y"})
	require.NoError(t, err)
	assert.Equal(t, graded.ID, rescheduled.ID)
	assert.True(t, moved.Equal(rescheduled.DefenseDate))
	assert.Equal(t, "Dr. Y", rescheduled.Assessor)
	assert.Equal(t, 78, rescheduled.Score)
	assert.Equal(t, models.VerdictPass, rescheduled.Verdict)

	regraded, err := f.gradings.Grade(f.ctx, f.coordinator, alice.UserID, &dto.SubmitGradeRequest{Score: intPtr(40), Verdict: "FAIL"})
	require.NoError(t, err)
	assert.Equal(t, models.VerdictFail, regraded.Verdict)
	assert.Empty(t, regraded.Remarks)
}

func TestGradeValidation(t *testing.T) {
	f := newFixture(t)
	alice := f.registerStudent("alice@uni.edu", "Alice Okafor", computerScience)
	f.assign(alice, f.bob)
	f.completeLogbook(alice, f.bob)
	_, err := f.gradings.Schedule(f.ctx, f.coordinator, &dto.ScheduleDefenseRequest{StudentID: alice.UserID, DefenseDate: defenseDate, Assessor: "Dr. X"})
	require.NoError(t, err)

	for _, score := range []int{models.MinScore, models.MaxScore} {
		graded, err := f.gradings.Grade(f.ctx, f.coordinator, alice.UserID, &dto.SubmitGradeRequest{Score: intPtr(score), Verdict: "PASS"})
		require.NoError(t, err, "score %d", score)
		assert.Equal(t, score, graded.Score)
	}

	tests := []struct {
		name    string
		req     dto.SubmitGradeRequest
		wantErr error
	}{
		{name: "below range", req: dto.SubmitGradeRequest{Score: intPtr(-1), Verdict: "PASS"}, wantErr: apperrors.ErrScoreOutOfRange},
		{name: "above range", req: dto.SubmitGradeRequest{Score: intPtr(101), Verdict: "PASS"}, wantErr: apperrors.ErrScoreOutOfRange},
		{name: "pending verdict", req: dto.SubmitGradeRequest{Score: intPtr(50), Verdict: "PENDING"}, wantErr: apperrors.ErrInvalidVerdict},
		{name: "unknown verdict", req: dto.SubmitGradeRequest{Score: intPtr(50), Verdict: "MAYBE"}, wantErr: apperrors.ErrInvalidVerdict},
		{name: "missing score", req: dto.SubmitGradeRequest{Verdict: "PASS"}, wantErr: apperrors.ErrValidationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.gradings.Grade(f.ctx, f.coordinator, alice.UserID, &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err = f.gradings.Grade(f.ctx, f.bob, alice.UserID, &dto.SubmitGradeRequest{Score: intPtr(50), Verdict: "PASS"})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	record, err := f.repos.Gradings.GetByStudent(f.ctx, alice.UserID)
	require.NoError(t, err)
	assert.Equal(t, models.MaxScore, record.Score, "rejected grades change nothing")
}

func TestGetDefenseInfo(t *testing.T) {
	f := newFixture(t)
	alice := f.registerStudent("alice@uni.edu", "Alice Okafor", computerScience)
	ben := f.registerStudent("ben@uni.edu", "Ben Nwosu", computerScience)
	f.assign(alice, f.bob)
	f.completeLogbook(alice, f.bob)
	_, err := f.gradings.Schedule(f.ctx, f.coordinator, &dto.ScheduleDefenseRequest{StudentID: alice.UserID, DefenseDate: defenseDate, Assessor: "Dr. X"})
	require.NoError(t, err)

	info, err := f.gradings.GetDefenseInfo(f.ctx, f.coordinator, int64Ptr(alice.UserID))
	require.NoError(t, err)
	assert.Equal(t, alice.UserID, info.StudentID)
	assert.Equal(t, models.VerdictPending, info.Verdict)

	_, err = f.gradings.GetDefenseInfo(f.ctx, f.coordinator, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = f.gradings.GetDefenseInfo(f.ctx, f.coordinator, int64Ptr(ben.UserID))
	assert.ErrorIs(t, err, apperrors.ErrGradingRecordNotFound)

	_, err = f.gradings.GetDefenseInfo(f.ctx, f.coordinator, int64Ptr(9999))
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	_, err = f.gradings.GetDefenseInfo(f.ctx, ben, int64Ptr(alice.UserID))
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = f.gradings.GetDefenseInfo(f.ctx, ben, nil)
	assert.ErrorIs(t, err, apperrors.ErrGradingRecordNotFound)

	own, err := f.gradings.GetDefenseInfo(f.ctx, alice, int64Ptr(alice.UserID))
	require.NoError(t, err)
	assert.Equal(t, "Dr. X", own.Assessor)

	_, err = f.gradings.GetDefenseInfo(f.ctx, f.bob, int64Ptr(alice.UserID))
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestListDefenses(t *testing.T) {
	f := newFixture(t)
	alice := f.registerStudent("alice@uni.edu", "Alice Okafor", computerScience)
	ben := f.registerStudent("ben@uni.edu", "Ben Nwosu", computerScience)
	f.assign(alice, f.bob)
	f.assign(ben, f.carol)
	f.completeLogbook(alice, f.bob)
	f.completeLogbook(ben, f.carol)

	_, err := f.gradings.Schedule(f.ctx, f.coordinator, &dto.ScheduleDefenseRequest{StudentID: alice.UserID, DefenseDate: defenseDate.Add(24 * time.Hour), Assessor: "Dr. X"})
	require.NoError(t, err)
	_, err = f.gradings.Schedule(f.ctx, f.coordinator, &dto.ScheduleDefenseRequest{StudentID: ben.UserID, DefenseDate: defenseDate, Assessor: "Dr. Y"})
	require.NoError(t, err)

	defenses, err := f.gradings.ListDefenses(f.ctx, f.coordinator)
	require.NoError(t, err)
	require.Len(t, defenses, 2)
	assert.Equal(t, ben.UserID, defenses[0].StudentID, "soonest defense first")
	assert.Equal(t, "Ben Nwosu", defenses[0].Student.FullName)
	assert.Equal(t, alice.UserID, defenses[1].StudentID)

	_, err = f.gradings.ListDefenses(f.ctx, f.hod)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}
