package models

import (
	"fmt"
	"strings"
)

// Role is the closed set of account roles. The zero value is not a valid role.
type Role string

const (
	RoleStudent               Role = "STUDENT"
	RoleInstitutionSupervisor Role = "INSTITUTION_SUPERVISOR"
	RoleIndustrySupervisor    Role = "INDUSTRY_SUPERVISOR"
	RoleHOD                   Role = "HOD"
	RoleCoordinator           Role = "COORDINATOR"
)

// Roles lists every valid role.
var Roles = []Role{
	RoleStudent,
	RoleInstitutionSupervisor,
	RoleIndustrySupervisor,
	RoleHOD,
	RoleCoordinator,
}

// Operation names a guarded workflow transition or query.
type Operation string

const (
	OpIssueVerificationCode Operation = "issue_verification_code"
	OpListVerificationCodes Operation = "list_verification_codes"
	OpCreateStaff           Operation = "create_staff"
	OpListSupervisors       Operation = "list_supervisors"
	OpAssignStudent         Operation = "assign_student"
	OpListDepartmental      Operation = "list_department_assignments"
	OpListMyAssigned        Operation = "list_my_assigned_students"
	OpSubmitLogbook         Operation = "submit_logbook"
	OpResubmitLogbook       Operation = "resubmit_logbook"
	OpUploadLogbookImage    Operation = "upload_logbook_image"
	OpReviewLogbook         Operation = "review_logbook"
	OpListAllLogbooks       Operation = "list_all_logbooks"
	OpListOwnLogbook        Operation = "list_own_logbook"
	OpListStudentLogbook    Operation = "list_student_logbook"
	OpListSupervised        Operation = "list_supervised_logbooks"
	OpScheduleDefense       Operation = "schedule_defense"
	OpSubmitGrade           Operation = "submit_grade"
	OpListDefenses          Operation = "list_defenses"
	OpViewOwnDefense        Operation = "view_own_defense"
	OpViewAnyDefense        Operation = "view_any_defense"
)

var permissions = map[Role]map[Operation]bool{
	RoleStudent: {
		OpSubmitLogbook:      true,
		OpResubmitLogbook:    true,
		OpUploadLogbookImage: true,
		OpListOwnLogbook:     true,
		OpViewOwnDefense:     true,
	},
	RoleInstitutionSupervisor: {
		OpListMyAssigned:     true,
		OpReviewLogbook:      true,
		OpListStudentLogbook: true,
		OpListSupervised:     true,
	},
	RoleIndustrySupervisor: {},
	RoleHOD: {
		OpListSupervisors:    true,
		OpAssignStudent:      true,
		OpListDepartmental:   true,
		OpListAllLogbooks:    true,
		OpListStudentLogbook: true,
	},
	RoleCoordinator: {
		OpIssueVerificationCode: true,
		OpListVerificationCodes: true,
		OpCreateStaff:           true,
		OpListSupervisors:       true,
		OpListAllLogbooks:       true,
		OpListStudentLogbook:    true,
		OpScheduleDefense:       true,
		OpSubmitGrade:           true,
		OpListDefenses:          true,
		OpViewAnyDefense:        true,
	},
}

// Can reports whether the role is permitted to perform op.
func (r Role) Can(op Operation) bool {
	return permissions[r][op]
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := permissions[r]
	return ok
}

// IsStaff reports whether accounts of this role are provisioned by a coordinator.
func (r Role) IsStaff() bool {
	return r.Valid() && r != RoleStudent
}

// RequiresDepartment reports whether accounts of this role must belong to a department.
func (r Role) RequiresDepartment() bool {
	return r == RoleStudent || r == RoleHOD || r == RoleInstitutionSupervisor
}

func (r Role) String() string {
	return string(r)
}

// ParseRole converts a role string (case-insensitive, '-' or '_' separated) into a Role.
func ParseRole(s string) (Role, error) {
	normalized := Role(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_")))
	if !normalized.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return normalized, nil
}
