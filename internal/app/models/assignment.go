package models

import "time"

// AssignmentStatus is the lifecycle state of an assignment
type AssignmentStatus string

const (
	AssignmentActive     AssignmentStatus = "ACTIVE"
	AssignmentCompleted  AssignmentStatus = "COMPLETED"
	AssignmentTerminated AssignmentStatus = "TERMINATED"
)

// Assignment links a student to their institution supervisor. One row per student.
type Assignment struct {
	ID                      int64            `json:"id" db:"id"`
	StudentID               int64            `json:"studentId" db:"student_id"`
	InstitutionSupervisorID int64            `json:"institutionSupervisorId" db:"institution_supervisor_id"`
	HODID                   int64            `json:"hodId" db:"hod_id"`
	AssignedAt              time.Time        `json:"assignedAt" db:"assigned_at"`
	Status                  AssignmentStatus `json:"status" db:"status" example:"ACTIVE"`
}

// DepartmentStudent is a student of a department with their assignment, if any
type DepartmentStudent struct {
	Student    *StudentSummary `json:"student"`
	Assignment *Assignment     `json:"assignment,omitempty"`
	Supervisor *UserSummary    `json:"supervisor,omitempty"`
}

// SupervisedAssignment is an assignment joined to the student's public fields
type SupervisedAssignment struct {
	Assignment
	Student *StudentSummary `json:"student"`
}
