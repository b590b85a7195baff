package models

import "time"

// Verdict is the outcome of a defense
type Verdict string

const (
	VerdictPending Verdict = "PENDING"
	VerdictPass    Verdict = "PASS"
	VerdictFail    Verdict = "FAIL"
)

// IsFinal reports whether v may be submitted as a grade
func (v Verdict) IsFinal() bool {
	return v == VerdictPass || v == VerdictFail
}

const (
	MinScore = 0
	MaxScore = 100
)

// GradingRecord is a student's defense schedule and result. One row per student.
type GradingRecord struct {
	ID          int64     `json:"id" db:"id"`
	StudentID   int64     `json:"studentId" db:"student_id"`
	DefenseDate time.Time `json:"defenseDate" db:"defense_date"`
	Assessor    string    `json:"assessor" db:"assessor" example:"Dr. X"`
	Score       int       `json:"score" db:"score" example:"0"`
	Remarks     string    `json:"remarks" db:"remarks"`
	Verdict     Verdict   `json:"verdict" db:"verdict" example:"PENDING"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// DefenseInfo is a grading record joined to the student's public fields
type DefenseInfo struct {
	GradingRecord
	Student *StudentSummary `json:"student"`
}
