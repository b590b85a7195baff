package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/siwes/interntrack/internal/app/models"
	"github.com/siwes/interntrack/internal/app/repositories"
	"github.com/siwes/interntrack/internal/pkg/apperrors"
	"github.com/siwes/interntrack/internal/pkg/logger"
)

// Identity is the authenticated caller of a workflow operation
type Identity struct {
	UserID int64
	Email  string
	Role   models.Role
}

// Require fails with ErrForbidden unless the identity's role permits op
func (i Identity) Require(op models.Operation) error {
	if !i.Role.Can(op) {
		return apperrors.ErrForbidden
	}
	return nil
}

// Is reports whether the identity is the given user
func (i Identity) Is(userID int64) bool {
	return i.UserID == userID
}

// AuthorizationService performs the ownership and department scoping checks
// that need stored state
type AuthorizationService struct {
	users repositories.UserStore
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(users repositories.UserStore) *AuthorizationService {
	return &AuthorizationService{users: users}
}

// Actor loads the caller's account. A token for a deleted or disabled account is forbidden.
func (s *AuthorizationService) Actor(ctx context.Context, id Identity) (*models.User, error) {
	user, err := s.users.GetUserByID(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrForbidden
		}
		return nil, fmt.Errorf("error loading caller: %w", err)
	}
	if !user.IsActive || user.Role != id.Role {
		logger.Warn().Int64("userID", id.UserID).Str("tokenRole", id.Role.String()).Msg("Token role does not match account")
		return nil, apperrors.ErrForbidden
	}
	return user, nil
}

// ActorDepartment returns the caller's department, failing when the account has none
func (s *AuthorizationService) ActorDepartment(ctx context.Context, id Identity) (string, error) {
	user, err := s.Actor(ctx, id)
	if err != nil {
		return "", err
	}
	if user.DepartmentName() == "" {
		return "", apperrors.ErrForbidden
	}
	return user.DepartmentName(), nil
}

// RequireSameDepartment fails with ErrCrossDepartmentDenied unless the caller belongs to the student's department
func (s *AuthorizationService) RequireSameDepartment(ctx context.Context, id Identity, student *models.Student) error {
	department, err := s.ActorDepartment(ctx, id)
	if err != nil {
		return err
	}
	if department != student.DepartmentName() {
		return apperrors.ErrCrossDepartmentDenied
	}
	return nil
}

// CanViewStudent checks the caller may read a student's logbook and defense data
func (s *AuthorizationService) CanViewStudent(ctx context.Context, id Identity, student *models.Student) error {
	switch id.Role {
	case models.RoleCoordinator:
		return nil
	case models.RoleStudent:
		if id.Is(student.ID) {
			return nil
		}
	case models.RoleInstitutionSupervisor:
		if student.IsSupervisedBy(id.UserID) {
			return nil
		}
	case models.RoleHOD:
		return s.RequireSameDepartment(ctx, id, student)
	}
	return apperrors.ErrForbidden
}
