package dto

import (
	"time"
)

// IssueCodeRequest asks for a registration code for a prospective student
type IssueCodeRequest struct {
	Email      string `json:"email" binding:"required,email" example:"alice@uni.edu"`
	Department string `json:"department" binding:"required,max=120" example:"Computer Science"`
}

// ValidateCodeRequest checks a code without consuming it
type ValidateCodeRequest struct {
	Email string `json:"email" binding:"required,email" example:"alice@uni.edu"`
	Code  string `json:"code" binding:"required" example:"K7MPQ2XR"`
}

// ValidateCodeResponse is returned for a usable code
type ValidateCodeResponse struct {
	Department string    `json:"department" example:"Computer Science"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

// IssuedCodeResponse is the code handed back to the coordinator
type IssuedCodeResponse struct {
	Code       string    `json:"code" example:"K7MPQ2XR"`
	Email      string    `json:"email" example:"alice@uni.edu"`
	Department string    `json:"department" example:"Computer Science"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

// AssignStudentRequest assigns an institution supervisor to a student
type AssignStudentRequest struct {
	StudentID    int64 `json:"studentId" binding:"required,min=1" example:"3"`
	SupervisorID int64 `json:"supervisorId" binding:"required,min=1" example:"7"`
}

// SubmitLogbookRequest is a student's weekly report
type SubmitLogbookRequest struct {
	WeekNumber          int      `json:"weekNumber" example:"1"`
	ActivityDescription string   `json:"activityDescription" binding:"required,max=5000" example:"Set up the CI pipeline"`
	Images              []string `json:"images" binding:"omitempty,max=10,dive,required,max=500"`
}

// ResubmitLogbookRequest replaces the content of an entry sent back for review
type ResubmitLogbookRequest struct {
	ActivityDescription string   `json:"activityDescription" binding:"required,max=5000"`
	Images              []string `json:"images" binding:"omitempty,max=10,dive,required,max=500"`
}

// ReviewLogbookRequest is a supervisor's decision on an entry
type ReviewLogbookRequest struct {
	Status  string `json:"status" binding:"required" example:"APPROVED"`
	Comment string `json:"comment" binding:"max=2000" example:"Well documented"`
}

// UploadImageResponse carries the URI to reference from a logbook entry
type UploadImageResponse struct {
	URL string `json:"url" example:"http://localhost:8080/uploads/logbooks/3/6f1c.png"`
}

// ScheduleDefenseRequest schedules or reschedules a student's defense
type ScheduleDefenseRequest struct {
	StudentID   int64     `json:"studentId" binding:"required,min=1" example:"3"`
	DefenseDate time.Time `json:"defenseDate" binding:"required" example:"2025-06-01T09:00:00Z"`
	Assessor    string    `json:"assessor" binding:"required,max=120" example:"Dr. X"`
}

// SubmitGradeRequest records the outcome of a defense.
// Score is a pointer so that a zero score is distinguishable from a missing one.
type SubmitGradeRequest struct {
	Score   *int   `json:"score" binding:"required" example:"78"`
	Verdict string `json:"verdict" binding:"required" example:"PASS"`
	Remarks string `json:"remarks" binding:"max=2000" example:"Good work"`
}
