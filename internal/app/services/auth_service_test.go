package services

import (
	"testing"
	"time"

	"github.com/siwes/interntrack/internal/app/auth"
	"github.com/siwes/interntrack/internal/app/models"
	"github.com/siwes/interntrack/internal/app/models/dto"
	"github.com/siwes/interntrack/internal/pkg/apperrors"
	pkgAuth "github.com/siwes/interntrack/internal/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterStudentWithIssuedCode(t *testing.T) {
	f := newFixture(t)

	code, err := f.codes.Issue(f.ctx, f.coordinator, &dto.IssueCodeRequest{Email: "alice@uni.edu", Department: computerScience})
	require.NoError(t, err)

	resp, err := f.auth.RegisterStudent(f.ctx, &dto.RegisterStudentRequest{
		FullName: "Alice Okafor",
		Email:    "alice@uni.edu",
		Code:     code.Code,
		Password: testPassword,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.NotEmpty(t, resp.Token.RefreshToken)
	assert.Equal(t, "Bearer", resp.Token.TokenType)
	assert.Equal(t, models.RoleStudent, resp.User.Role)
	assert.Equal(t, computerScience, resp.User.Department)

	student, err := f.repos.Users.GetStudentByID(f.ctx, resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, computerScience, student.DepartmentName())
	assert.True(t, student.VerificationCodeUsed)
	assert.Nil(t, student.AssignedSupervisorID)
	assert.NotEqual(t, testPassword, student.Password)

	stored, err := f.repos.Codes.FindCode(f.ctx, "alice@uni.edu", code.Code)
	require.NoError(t, err)
	assert.True(t, stored.IsUsed, "registration consumes the code")

	_, err = f.auth.RegisterStudent(f.ctx, &dto.RegisterStudentRequest{
		FullName: "Alice Again", Email: "alice@uni.edu", Code: code.Code, Password: testPassword,
	})
	assert.ErrorIs(t, err, apperrors.ErrCodeAlreadyUsed)
}

func TestRegisterStudentRejections(t *testing.T) {
	f := newFixture(t)

	code, err := f.codes.Issue(f.ctx, f.coordinator, &dto.IssueCodeRequest{Email: "alice@uni.edu", Department: computerScience})
	require.NoError(t, err)

	tests := []struct {
		name    string
		req     dto.RegisterStudentRequest
		advance time.Duration
		wantErr error
	}{
		{
			name:    "weak password",
			req:     dto.RegisterStudentRequest{FullName: "Alice", Email: "alice@uni.edu", Code: code.Code, Password: "password"},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "blank name",
			req:     dto.RegisterStudentRequest{FullName: "  ", Email: "alice@uni.edu", Code: code.Code, Password: testPassword},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "code issued to another email",
			req:     dto.RegisterStudentRequest{FullName: "Mallory", Email: "mallory@uni.edu", Code: code.Code, Password: testPassword},
			wantErr: apperrors.ErrCodeNotFound,
		},
		{
			name:    "expired code",
			req:     dto.RegisterStudentRequest{FullName: "Alice", Email: "alice@uni.edu", Code: code.Code, Password: testPassword},
			advance: 25 * time.Hour,
			wantErr: apperrors.ErrCodeExpired,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f.clock.Advance(tt.advance)
			_, err := f.auth.RegisterStudent(f.ctx, &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	exists, err := f.repos.Users.EmailExists(f.ctx, "alice@uni.edu")
	require.NoError(t, err)
	assert.False(t, exists, "no account is created by a rejected registration")
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	alice := f.registerStudent("alice@uni.edu", "Alice Okafor", computerScience)

	resp, err := f.auth.Login(f.ctx, &dto.LoginRequest{Email: "ALICE@uni.edu", Password: testPassword})
	require.NoError(t, err)
	assert.Equal(t, alice.UserID, resp.User.ID)

	user, err := f.repos.Users.GetUserByID(f.ctx, alice.UserID)
	require.NoError(t, err)
	require.NotNil(t, user.LastLoginAt)
	assert.Equal(t, f.clock.Now(), *user.LastLoginAt)

	_, err = f.auth.Login(f.ctx, &dto.LoginRequest{Email: "alice@uni.edu", Password: "wrong-pass1"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = f.auth.Login(f.ctx, &dto.LoginRequest{Email: "nobody@uni.edu", Password: testPassword})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginRejectsDisabledAccount(t *testing.T) {
	f := newFixture(t)

	_, err := f.repos.Users.CreateUser(f.ctx, &models.User{
		Email: "gone@uni.edu", Password: mustHash(t, testPassword), FullName: "Gone", Role: models.RoleCoordinator, IsActive: false,
	})
	require.NoError(t, err)

	_, err = f.auth.Login(f.ctx, &dto.LoginRequest{Email: "gone@uni.edu", Password: testPassword})
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}

func TestRefreshTokenRotates(t *testing.T) {
	f := newFixture(t)

	login, err := f.auth.Login(f.ctx, &dto.LoginRequest{Email: "bob@uni.edu", Password: testPassword})
	require.NoError(t, err)

	refreshed, err := f.auth.RefreshToken(f.ctx, login.Token.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, login.Token.RefreshToken, refreshed.RefreshToken)

	_, err = f.auth.RefreshToken(f.ctx, login.Token.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)

	_, err = f.auth.RefreshToken(f.ctx, "unknown")
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)

	_, err = f.auth.RefreshToken(f.ctx, " ")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestGetProfile(t *testing.T) {
	f := newFixture(t)
	alice := f.registerStudent("alice@uni.edu", "Alice Okafor", computerScience)

	unassigned, err := f.auth.GetProfile(f.ctx, alice)
	require.NoError(t, err)
	assert.Nil(t, unassigned.Assignment)
	assert.Nil(t, unassigned.AssignedSupervisor)

	f.assign(alice, f.bob)

	profile, err := f.auth.GetProfile(f.ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, "Alice Okafor", profile.FullName)
	assert.Equal(t, computerScience, profile.Department)
	require.NotNil(t, profile.VerificationCodeUsed)
	assert.True(t, *profile.VerificationCodeUsed)
	require.NotNil(t, profile.AssignedSupervisor)
	assert.Equal(t, f.bob.UserID, profile.AssignedSupervisor.ID)
	assert.Equal(t, "Bob Adeyemi", profile.AssignedSupervisor.FullName)
	require.NotNil(t, profile.Assignment)
	assert.Equal(t, f.bob.UserID, profile.Assignment.InstitutionSupervisorID)
	assert.Equal(t, f.hod.UserID, profile.Assignment.HODID)
	assert.Equal(t, models.AssignmentActive, profile.Assignment.Status)

	f.assign(alice, f.carol)
	reassigned, err := f.auth.GetProfile(f.ctx, alice)
	require.NoError(t, err)
	require.NotNil(t, reassigned.AssignedSupervisor)
	assert.Equal(t, f.carol.UserID, reassigned.AssignedSupervisor.ID)
	assert.Equal(t, profile.Assignment.ID, reassigned.Assignment.ID)

	hodProfile, err := f.auth.GetProfile(f.ctx, f.hod)
	require.NoError(t, err)
	assert.Nil(t, hodProfile.VerificationCodeUsed)
	assert.Equal(t, models.RoleHOD, hodProfile.Role)

	forged := auth.Identity{UserID: alice.UserID, Email: alice.Email, Role: models.RoleCoordinator}
	_, err = f.auth.GetProfile(f.ctx, forged)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestCreateStaff(t *testing.T) {
	f := newFixture(t)

	staff, err := f.auth.CreateStaff(f.ctx, f.coordinator, &dto.CreateStaffRequest{
		FullName: "Dan Supervisor", Email: "Dan@uni.edu", Password: testPassword, Role: "institution_supervisor", Department: computerScience,
	})
	require.NoError(t, err)
	assert.Equal(t, "dan@uni.edu", staff.Email)
	assert.Equal(t, models.RoleInstitutionSupervisor, staff.Role)
	assert.Equal(t, computerScience, staff.Department)

	_, err = f.auth.Login(f.ctx, &dto.LoginRequest{Email: "dan@uni.edu", Password: testPassword})
	assert.NoError(t, err)

	tests := []struct {
		name    string
		caller  auth.Identity
		req     dto.CreateStaffRequest
		wantErr error
	}{
		{
			name:    "hod cannot provision",
			caller:  f.hod,
			req:     dto.CreateStaffRequest{FullName: "X", Email: "x@uni.edu", Password: testPassword, Role: "HOD", Department: computerScience},
			wantErr: apperrors.ErrForbidden,
		},
		{
			name:    "student role",
			caller:  f.coordinator,
			req:     dto.CreateStaffRequest{FullName: "X", Email: "x@uni.edu", Password: testPassword, Role: "STUDENT"},
			wantErr: apperrors.ErrInvalidRole,
		},
		{
			name:    "hod needs department",
			caller:  f.coordinator,
			req:     dto.CreateStaffRequest{FullName: "X", Email: "x@uni.edu", Password: testPassword, Role: "HOD"},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "duplicate email",
			caller:  f.coordinator,
			req:     dto.CreateStaffRequest{FullName: "X", Email: "bob@uni.edu", Password: testPassword, Role: "INDUSTRY_SUPERVISOR"},
			wantErr: apperrors.ErrEmailAlreadyExists,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.auth.CreateStaff(f.ctx, tt.caller, &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	industry, err := f.auth.CreateStaff(f.ctx, f.coordinator, &dto.CreateStaffRequest{
		FullName: "Ina Industry", Email: "ina@acme.com", Password: testPassword, Role: "INDUSTRY_SUPERVISOR",
	})
	require.NoError(t, err)
	assert.Empty(t, industry.Department)
}

func TestListSupervisors(t *testing.T) {
	f := newFixture(t)
	f.createUser("zed@uni.edu", "Zed Math", models.RoleInstitutionSupervisor, mathematics)

	forHOD, err := f.auth.ListSupervisors(f.ctx, f.hod, nil)
	require.NoError(t, err)
	require.Len(t, forHOD, 2)
	assert.Equal(t, "Bob Adeyemi", forHOD[0].FullName)
	assert.Equal(t, "Carol Eze", forHOD[1].FullName)

	// a HOD cannot widen the listing to another department
	other := mathematics
	forHOD, err = f.auth.ListSupervisors(f.ctx, f.hod, &other)
	require.NoError(t, err)
	assert.Len(t, forHOD, 2)

	all, err := f.auth.ListSupervisors(f.ctx, f.coordinator, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	math, err := f.auth.ListSupervisors(f.ctx, f.coordinator, &other)
	require.NoError(t, err)
	require.Len(t, math, 1)
	assert.Equal(t, "zed@uni.edu", math[0].Email)

	_, err = f.auth.ListSupervisors(f.ctx, f.bob, nil)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := pkgAuth.HashPassword(password)
	require.NoError(t, err)
	return hash
}

func TestCleanupTokens(t *testing.T) {
	f := newFixture(t)
	now := f.clock.Now()

	require.NoError(t, f.repos.Tokens.CreateToken(f.ctx, "expired", f.bob.UserID, now.Add(-time.Minute)))
	require.NoError(t, f.repos.Tokens.CreateToken(f.ctx, "revoked", f.bob.UserID, now.Add(time.Hour)))
	require.NoError(t, f.repos.Tokens.CreateToken(f.ctx, "live", f.bob.UserID, now.Add(time.Hour)))
	require.NoError(t, f.repos.Tokens.RevokeToken(f.ctx, "revoked"))

	removed, err := f.auth.CleanupTokens(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	owner, err := f.repos.Tokens.GetTokenByValue(f.ctx, "live", now)
	require.NoError(t, err)
	assert.Equal(t, f.bob.UserID, owner)

	_, err = f.repos.Tokens.GetTokenByValue(f.ctx, "expired", now)
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
}
