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

func TestAssignStudentThenListMine(t *testing.T) {
	f := newFixture(t)
	alice := f.registerStudent("alice@uni.edu", "Alice Okafor", computerScience)
	f.notifier.Reset()

	assignment, err := f.assignments.Assign(f.ctx, f.hod, &dto.AssignStudentRequest{StudentID: alice.UserID, SupervisorID: f.bob.UserID})
	require.NoError(t, err)
	assert.Equal(t, alice.UserID, assignment.StudentID)
	assert.Equal(t, f.bob.UserID, assignment.InstitutionSupervisorID)
	assert.Equal(t, f.hod.UserID, assignment.HODID)
	assert.Equal(t, models.AssignmentActive, assignment.Status)

	mine, err := f.assignments.ListMine(f.ctx, f.bob)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, alice.UserID, mine[0].Student.ID)
	assert.Equal(t, "Alice Okafor", mine[0].Student.FullName)

	events := f.notifier.OfKind(models.NotificationSupervisorAssigned)
	require.Len(t, events, 2)
	assert.ElementsMatch(t, []int64{alice.UserID, f.bob.UserID}, []int64{events[0].RecipientID, events[1].RecipientID})
}

func TestReassignKeepsOneAssignment(t *testing.T) {
	f := newFixture(t)
	alice := f.registerStudent("alice@uni.edu", "Alice Okafor", computerScience)

	first, err := f.assignments.Assign(f.ctx, f.hod, &dto.AssignStudentRequest{StudentID: alice.UserID, SupervisorID: f.bob.UserID})
	require.NoError(t, err)

	f.clock.Advance(48 * time.Hour)
	second, err := f.assignments.Assign(f.ctx, f.hod, &dto.AssignStudentRequest{StudentID: alice.UserID, SupervisorID: f.carol.UserID})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "reassignment updates the existing row")
	assert.Equal(t, f.carol.UserID, second.InstitutionSupervisorID)
	assert.Equal(t, first.AssignedAt, second.AssignedAt)

	student, err := f.repos.Users.GetStudentByID(f.ctx, alice.UserID)
	require.NoError(t, err)
	require.NotNil(t, student.AssignedSupervisorID)
	assert.Equal(t, f.carol.UserID, *student.AssignedSupervisorID)

	bobs, err := f.assignments.ListMine(f.ctx, f.bob)
	require.NoError(t, err)
	assert.Empty(t, bobs)

	carols, err := f.assignments.ListMine(f.ctx, f.carol)
	require.NoError(t, err)
	assert.Len(t, carols, 1)
}

func TestAssignRejections(t *testing.T) {
	f := newFixture(t)
	alice := f.registerStudent("alice@uni.edu", "Alice Okafor", computerScience)

	tests := []struct {
		name    string
		run     func() error
		wantErr error
	}{
		{
			name: "hod of another department",
			run: func() error {
				_, err := f.assignments.Assign(f.ctx, f.mathHOD, &dto.AssignStudentRequest{StudentID: alice.UserID, SupervisorID: f.bob.UserID})
				return err
			},
			wantErr: apperrors.ErrCrossDepartmentDenied,
		},
		{
			name: "coordinator is not a hod",
			run: func() error {
				_, err := f.assignments.Assign(f.ctx, f.coordinator, &dto.AssignStudentRequest{StudentID: alice.UserID, SupervisorID: f.bob.UserID})
				return err
			},
			wantErr: apperrors.ErrForbidden,
		},
		{
			name: "unknown student",
			run: func() error {
				_, err := f.assignments.Assign(f.ctx, f.hod, &dto.AssignStudentRequest{StudentID: 9999, SupervisorID: f.bob.UserID})
				return err
			},
			wantErr: apperrors.ErrStudentNotFound,
		},
		{
			name: "unknown supervisor",
			run: func() error {
				_, err := f.assignments.Assign(f.ctx, f.hod, &dto.AssignStudentRequest{StudentID: alice.UserID, SupervisorID: 9999})
				return err
			},
			wantErr: apperrors.ErrSupervisorNotFound,
		},
		{
			name: "supervisor id names a non-supervisor",
			run: func() error {
				_, err := f.assignments.Assign(f.ctx, f.hod, &dto.AssignStudentRequest{StudentID: alice.UserID, SupervisorID: f.industry.UserID})
				return err
			},
			wantErr: apperrors.ErrSupervisorNotFound,
		},
		{
			name: "student id names a staff member",
			run: func() error {
				_, err := f.assignments.Assign(f.ctx, f.hod, &dto.AssignStudentRequest{StudentID: f.carol.UserID, SupervisorID: f.bob.UserID})
				return err
			},
			wantErr: apperrors.ErrStudentNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.run(), tt.wantErr)
		})
	}

	student, err := f.repos.Users.GetStudentByID(f.ctx, alice.UserID)
	require.NoError(t, err)
	assert.Nil(t, student.AssignedSupervisorID, "rejected assignments leave no trace")
}

func TestListDepartmental(t *testing.T) {
	f := newFixture(t)
	alice := f.registerStudent("alice@uni.edu", "Alice Okafor", computerScience)
	f.registerStudent("ben@uni.edu", "Ben Nwosu", computerScience)
	f.registerStudent("mary@uni.edu", "Mary Math", mathematics)
	f.assign(alice, f.bob)

	students, err := f.assignments.ListDepartmental(f.ctx, f.hod)
	require.NoError(t, err)
	require.Len(t, students, 2)

	assert.Equal(t, "Alice Okafor", students[0].Student.FullName)
	require.NotNil(t, students[0].Assignment)
	require.NotNil(t, students[0].Supervisor)
	assert.Equal(t, f.bob.UserID, students[0].Supervisor.ID)
	assert.Equal(t, "bob@uni.edu", students[0].Supervisor.Email)

	assert.Equal(t, "Ben Nwosu", students[1].Student.FullName)
	assert.Nil(t, students[1].Assignment)
	assert.Nil(t, students[1].Supervisor)

	_, err = f.assignments.ListDepartmental(f.ctx, f.bob)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	_, err = f.assignments.ListMine(f.ctx, f.hod)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}
