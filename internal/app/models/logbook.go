package models

import "time"

// LogbookWeeks is the number of weekly entries in a SIWES logbook
const LogbookWeeks = 13

// LogbookStatus is the review state of a logbook entry
type LogbookStatus string

const (
	LogbookPending     LogbookStatus = "PENDING"
	LogbookApproved    LogbookStatus = "APPROVED"
	LogbookNeedsReview LogbookStatus = "NEEDS_REVIEW"
)

// IsReviewOutcome reports whether a supervisor may set this status
func (s LogbookStatus) IsReviewOutcome() bool {
	return s == LogbookApproved || s == LogbookNeedsReview
}

// ValidWeek reports whether week is within the programme
func ValidWeek(week int) bool {
	return week >= 1 && week <= LogbookWeeks
}

// LogbookEntry is one student's activity report for one week
type LogbookEntry struct {
	ID                  int64         `json:"id" db:"id"`
	StudentID           int64         `json:"studentId" db:"student_id"`
	WeekNumber          int           `json:"weekNumber" db:"week_number" example:"1"`
	ActivityDescription string        `json:"activityDescription" db:"activity_description"`
	Images              []string      `json:"images" db:"images"`
	DateSubmitted       time.Time     `json:"dateSubmitted" db:"date_submitted"`
	Status              LogbookStatus `json:"status" db:"status" example:"PENDING"`
	SupervisorComment   *string       `json:"supervisorComment,omitempty" db:"supervisor_comment"`
	SignedAt            *time.Time    `json:"signedAt,omitempty" db:"signed_at"`
	UpdatedAt           time.Time     `json:"updatedAt" db:"updated_at"`
}

// ApplyReview sets the review outcome. SignedAt is set only on approval.
func (e *LogbookEntry) ApplyReview(status LogbookStatus, comment string, now time.Time) {
	e.Status = status
	e.SupervisorComment = &comment
	if status == LogbookApproved {
		signed := now
		e.SignedAt = &signed
	} else {
		e.SignedAt = nil
	}
	e.UpdatedAt = now
}

// CompleteWeeks reports whether weeks is exactly {1..LogbookWeeks}.
func CompleteWeeks(weeks []int) bool {
	seen := make(map[int]bool, len(weeks))
	for _, w := range weeks {
		if !ValidWeek(w) || seen[w] {
			return false
		}
		seen[w] = true
	}
	return len(seen) == LogbookWeeks
}
