package models

import "time"

// NotificationKind identifies the transition that produced a notification
type NotificationKind string

const (
	NotificationCodeIssued         NotificationKind = "CODE_ISSUED"
	NotificationSupervisorAssigned NotificationKind = "SUPERVISOR_ASSIGNED"
	NotificationLogbookSubmitted   NotificationKind = "LOGBOOK_SUBMITTED"
	NotificationLogbookResubmitted NotificationKind = "LOGBOOK_RESUBMITTED"
	NotificationLogbookReviewed    NotificationKind = "LOGBOOK_REVIEWED"
	NotificationDefenseScheduled   NotificationKind = "DEFENSE_SCHEDULED"
	NotificationGradeRecorded      NotificationKind = "GRADE_RECORDED"
)

// Notification is an in-app message for a user
type Notification struct {
	ID          int64            `json:"id" db:"id"`
	EventID     string           `json:"eventId" db:"event_id"`
	RecipientID int64            `json:"recipientId" db:"recipient_id"`
	Kind        NotificationKind `json:"kind" db:"kind"`
	Title       string           `json:"title" db:"title"`
	Message     string           `json:"message" db:"message"`
	IsRead      bool             `json:"isRead" db:"is_read"`
	CreatedAt   time.Time        `json:"createdAt" db:"created_at"`
}
