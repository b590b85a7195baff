package models

// Student is a user with the STUDENT role plus its row in the 'students' table
type Student struct {
	User
	AssignedSupervisorID *int64 `json:"assignedSupervisorId,omitempty" db:"assigned_supervisor_id"`
	VerificationCodeUsed bool   `json:"verificationCodeUsed" db:"verification_code_used"`
}

// IsSupervisedBy reports whether supervisorID is the student's current institution supervisor
func (s *Student) IsSupervisedBy(supervisorID int64) bool {
	return s.AssignedSupervisorID != nil && *s.AssignedSupervisorID == supervisorID
}

// StudentSummary is the public projection of a student
type StudentSummary struct {
	ID         int64  `json:"id" example:"3"`
	FullName   string `json:"fullName" example:"Alice Okafor"`
	Email      string `json:"email" example:"alice@uni.edu"`
	Department string `json:"department" example:"Computer Science"`
}

// Summary returns the student's public fields
func (s *Student) Summary() *StudentSummary {
	return &StudentSummary{
		ID:         s.ID,
		FullName:   s.FullName,
		Email:      s.Email,
		Department: s.DepartmentName(),
	}
}
