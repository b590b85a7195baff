package repositories

import (
	"strings"
	"testing"
	"time"

	"github.com/siwes/interntrack/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func normalizeSQL(sql string) string {
	return strings.Join(strings.Fields(sql), " ")
}

func TestUpdateEntryQueryIsConditionalOnStatus(t *testing.T) {
	r := NewLogbookRepository(nil)
	comment := "looks good"
	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	entry := &models.LogbookEntry{
		ID:                  9,
		ActivityDescription: "Worked on the billing service",
		Images:              []string{},
		DateSubmitted:       now,
		Status:              models.LogbookApproved,
		SupervisorComment:   &comment,
		SignedAt:            &now,
		UpdatedAt:           now,
	}

	sql, args, err := r.updateEntryQuery(entry, models.LogbookNeedsReview).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE logbook_entries SET activity_description = $1, images = $2, date_submitted = $3, "+
		"status = $4, supervisor_comment = $5, signed_at = $6, updated_at = $7 WHERE id = $8 AND status = $9", sql)
	require.Len(t, args, 9)
	assert.Equal(t, "APPROVED", args[3])
	assert.Equal(t, []interface{}{int64(9), "NEEDS_REVIEW"}, args[7:])
}

func TestUpsertAssignmentQuery(t *testing.T) {
	r := NewAssignmentRepository(nil)
	assignment := &models.Assignment{
		StudentID:               3,
		InstitutionSupervisorID: 7,
		HODID:                   2,
		AssignedAt:              time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC),
		Status:                  models.AssignmentActive,
	}

	sql, args, err := r.upsertQuery(assignment).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO assignments AS a (student_id,institution_supervisor_id,hod_id,assigned_at,status) "+
		"VALUES ($1,$2,$3,$4,$5) "+
		"ON CONFLICT (student_id) DO UPDATE SET institution_supervisor_id = EXCLUDED.institution_supervisor_id, hod_id = EXCLUDED.hod_id "+
		"RETURNING a.id, a.student_id, a.institution_supervisor_id, a.hod_id, a.assigned_at, a.status", normalizeSQL(sql))
	assert.Equal(t, []interface{}{int64(3), int64(7), int64(2), assignment.AssignedAt, "ACTIVE"}, args)
}

func TestScheduleQueryKeepsGradeOnConflict(t *testing.T) {
	r := NewGradingRepository(nil)
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	record := &models.GradingRecord{
		StudentID:   3,
		DefenseDate: now.Add(72 * time.Hour),
		Assessor:    "Dr. X",
		Verdict:     models.VerdictPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	sql, args, err := r.scheduleQuery(record).ToSql()
	require.NoError(t, err)
	sql = normalizeSQL(sql)
	assert.True(t, strings.HasPrefix(sql, "INSERT INTO grading_records AS g "+
		"(student_id,defense_date,assessor,score,remarks,verdict,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8) "), sql)
	assert.True(t, strings.HasSuffix(sql, "RETURNING "+strings.Join(gradingColumns, ", ")), sql)
	assert.Len(t, args, 8)

	_, onConflict, found := strings.Cut(sql, "ON CONFLICT (student_id) DO UPDATE SET ")
	require.True(t, found, sql)
	onConflict, _, _ = strings.Cut(onConflict, " RETURNING")
	assert.Equal(t, "defense_date = EXCLUDED.defense_date, assessor = EXCLUDED.assessor, updated_at = EXCLUDED.updated_at", onConflict)
}

func TestGradeQuery(t *testing.T) {
	r := NewGradingRepository(nil)
	record := &models.GradingRecord{StudentID: 3, Score: 74, Remarks: "Solid", Verdict: models.VerdictPass, UpdatedAt: time.Now()}

	sql, args, err := r.gradeQuery(record).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE grading_records AS g SET score = $1, remarks = $2, verdict = $3, updated_at = $4 "+
		"WHERE student_id = $5 RETURNING "+strings.Join(gradingColumns, ", "), sql)
	assert.Equal(t, []interface{}{74, "Solid", "PASS", record.UpdatedAt, int64(3)}, args)
}

func TestCreateNotificationQueryIgnoresRepeatedEvent(t *testing.T) {
	r := NewNotificationRepository(nil)
	n := &models.Notification{
		EventID:     "evt-1",
		RecipientID: 5,
		Kind:        models.NotificationLogbookReviewed,
		Title:       "Logbook reviewed",
		Message:     "Your logbook for week 1 was approved.",
		CreatedAt:   time.Now(),
	}

	sql, args, err := r.createQuery(n).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO notifications (event_id,recipient_id,kind,title,message,is_read,created_at) "+
		"VALUES ($1,$2,$3,$4,$5,$6,$7) ON CONFLICT (event_id, recipient_id) DO NOTHING RETURNING id", sql)
	assert.Equal(t, []interface{}{"evt-1", int64(5), "LOGBOOK_REVIEWED", "Logbook reviewed", "Your logbook for week 1 was approved.", false, n.CreatedAt}, args)
}
