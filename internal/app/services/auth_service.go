package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/siwes/interntrack/internal/app/auth"
	"github.com/siwes/interntrack/internal/app/models"
	"github.com/siwes/interntrack/internal/app/models/dto"
	"github.com/siwes/interntrack/internal/app/repositories"
	"github.com/siwes/interntrack/internal/pkg/apperrors"
	pkgAuth "github.com/siwes/interntrack/internal/pkg/auth"
	"github.com/siwes/interntrack/internal/pkg/validation"
)

// AuthService handles registration, login and account provisioning
type AuthService struct {
	users       repositories.UserStore
	tokens      repositories.TokenStore
	assignments repositories.AssignmentStore
	codes       *VerificationCodeService
	authz       *auth.AuthorizationService
	jwtService  *pkgAuth.JWTService
	now         func() time.Time
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	users repositories.UserStore,
	tokens repositories.TokenStore,
	assignments repositories.AssignmentStore,
	codes *VerificationCodeService,
	authz *auth.AuthorizationService,
	jwtService *pkgAuth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:       users,
		tokens:      tokens,
		assignments: assignments,
		codes:       codes,
		authz:       authz,
		jwtService:  jwtService,
		now:         time.Now,
		logger:      logger,
	}
}

// RegisterStudent creates a student account from a valid verification code.
// The code is marked used in the same unit of work that creates the account.
func (s *AuthService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*dto.AuthResponse, error) {
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, apperrors.NewValidationError("fullName", "full name is required")
	}
	if err := validation.CheckPassword(req.Password); err != nil {
		return nil, apperrors.NewValidationError("password", err.Error())
	}

	code, err := s.codes.check(ctx, req.Email, req.Code)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := pkgAuth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	now := s.now()
	department := code.Department
	student := &models.Student{
		User: models.User{
			Email:      code.Email,
			Password:   hashedPassword,
			FullName:   fullName,
			Role:       models.RoleStudent,
			Department: &department,
			IsActive:   true,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}

	if err := s.users.RegisterStudent(ctx, code.ID, student); err != nil {
		if apperrors.Is(err, apperrors.ErrCodeAlreadyUsed, apperrors.ErrDuplicateRegistration) {
			return nil, err
		}
		return nil, fmt.Errorf("student registration error: %w", err)
	}

	s.logger.Info().Int64("userID", student.ID).Str("department", department).Msg("Student registered")

	return s.authResponse(ctx, &student.User)
}

// Login authenticates a user by email and password
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if req.Password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.users.GetUserByEmail(ctx, validation.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	if !pkgAuth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID, s.now()); err != nil {
		s.logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to update last login")
	}

	return s.authResponse(ctx, user)
}

// RefreshToken rotates a refresh token and issues a new token pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	userID, err := s.tokens.GetTokenByValue(ctx, refreshToken, s.now())
	if err != nil {
		if apperrors.Is(err, apperrors.ErrTokenNotFound, apperrors.ErrTokenExpired, apperrors.ErrTokenRevoked) {
			return nil, err
		}
		return nil, fmt.Errorf("token validation error: %w", err)
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	// revoke before issuing so a token cannot be replayed
	if err := s.tokens.RevokeToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke old token: %w", err)
	}

	return s.generateTokenResponse(ctx, user)
}

// GetProfile returns the caller's own profile
func (s *AuthService) GetProfile(ctx context.Context, id auth.Identity) (*dto.UserProfile, error) {
	user, err := s.authz.Actor(ctx, id)
	if err != nil {
		return nil, err
	}

	profile := newUserProfile(user)
	if user.Role != models.RoleStudent {
		return profile, nil
	}

	student, err := s.users.GetStudentByID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get student information: %w", err)
	}
	used := student.VerificationCodeUsed
	profile.VerificationCodeUsed = &used

	assignment, err := s.assignments.GetAssignmentByStudent(ctx, user.ID)
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return profile, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	profile.Assignment = assignment

	supervisor, err := s.users.GetUserByID(ctx, assignment.InstitutionSupervisorID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("supervisorID", assignment.InstitutionSupervisorID).Msg("Could not load assigned supervisor for profile")
	} else {
		profile.AssignedSupervisor = supervisor.Summary()
	}

	return profile, nil
}

// CreateStaff provisions a non-student account
func (s *AuthService) CreateStaff(ctx context.Context, id auth.Identity, req *dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	if err := id.Require(models.OpCreateStaff); err != nil {
		return nil, err
	}

	role, err := models.ParseRole(req.Role)
	if err != nil || !role.IsStaff() {
		return nil, apperrors.ErrInvalidRole
	}
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, apperrors.NewValidationError("fullName", "full name is required")
	}
	department := strings.TrimSpace(req.Department)
	if role.RequiresDepartment() && department == "" {
		return nil, apperrors.NewValidationError("department", fmt.Sprintf("department is required for %s accounts", role))
	}
	if err := validation.CheckPassword(req.Password); err != nil {
		return nil, apperrors.NewValidationError("password", err.Error())
	}

	hashedPassword, err := pkgAuth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	now := s.now()
	user := &models.User{
		Email:     validation.NormalizeEmail(req.Email),
		Password:  hashedPassword,
		FullName:  fullName,
		Role:      role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if department != "" {
		user.Department = &department
	}

	userID, err := s.users.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("user creation error: %w", err)
	}
	user.ID = userID

	s.logger.Info().Int64("userID", userID).Str("role", role.String()).Int64("createdBy", id.UserID).Msg("Staff account created")

	return dto.NewStaffResponse(user), nil
}

// ListSupervisors lists institution supervisors. A HOD only sees their own department.
func (s *AuthService) ListSupervisors(ctx context.Context, id auth.Identity, department *string) ([]*dto.StaffResponse, error) {
	if err := id.Require(models.OpListSupervisors); err != nil {
		return nil, err
	}

	if id.Role == models.RoleHOD {
		own, err := s.authz.ActorDepartment(ctx, id)
		if err != nil {
			return nil, err
		}
		department = &own
	}

	users, err := s.users.ListUsersByRole(ctx, models.RoleInstitutionSupervisor, department)
	if err != nil {
		return nil, fmt.Errorf("error listing supervisors: %w", err)
	}

	supervisors := make([]*dto.StaffResponse, 0, len(users))
	for _, u := range users {
		supervisors = append(supervisors, dto.NewStaffResponse(u))
	}
	return supervisors, nil
}

// CleanupTokens removes expired and long-revoked refresh tokens
func (s *AuthService) CleanupTokens(ctx context.Context) (int64, error) {
	n, err := s.tokens.CleanupExpiredTokens(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("error cleaning up tokens: %w", err)
	}
	return n, nil
}

// Helper functions

func (s *AuthService) authResponse(ctx context.Context, user *models.User) (*dto.AuthResponse, error) {
	token, err := s.generateTokenResponse(ctx, user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: *token, User: newUserProfile(user)}, nil
}

// generateTokenResponse creates and stores a token pair
func (s *AuthService) generateTokenResponse(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	pair, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	if err := s.tokens.CreateToken(ctx, pair.RefreshToken, user.ID, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, fmt.Errorf("token saving error: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:      pair.AccessToken,
		RefreshToken:     pair.RefreshToken,
		TokenType:        "Bearer",
		ExpiresIn:        int64(pair.ExpiresIn),
		RefreshExpiresIn: int64(pair.RefreshExpiresIn),
	}, nil
}

func newUserProfile(user *models.User) *dto.UserProfile {
	return &dto.UserProfile{
		ID:         user.ID,
		Email:      user.Email,
		FullName:   user.FullName,
		Role:       user.Role,
		Department: user.DepartmentName(),
	}
}
