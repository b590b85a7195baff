package seed

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	appModels "github.com/siwes/interntrack/internal/app/models"
	appRepos "github.com/siwes/interntrack/internal/app/repositories"
	"github.com/siwes/interntrack/internal/pkg/apperrors"
	pkgAuth "github.com/siwes/interntrack/internal/pkg/auth"
	"github.com/siwes/interntrack/internal/pkg/validation"
)

// Coordinator describes the bootstrap coordinator account
type Coordinator struct {
	FullName string
	Email    string
	Password string
}

// CreateDefaultData creates the coordinator account if it doesn't exist.
// Coordinators cannot be created through the API, so a fresh install needs one.
func CreateDefaultData(ctx context.Context, users appRepos.UserStore, coordinator Coordinator, lgr zerolog.Logger) error {
	email := validation.NormalizeEmail(coordinator.Email)
	if email == "" {
		lgr.Info().Msg("No seed coordinator configured, skipping default data")
		return nil
	}

	lgr.Info().Msg("Checking/Creating default data (Coordinator)...")

	exists, err := users.EmailExists(ctx, email)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if coordinator exists")
		return err
	}
	if exists {
		lgr.Info().Str("email", email).Msg("Coordinator already exists, skipping creation")
		return nil
	}

	hashedPassword, err := pkgAuth.HashPassword(coordinator.Password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing coordinator password")
		return err
	}

	now := time.Now()
	user := &appModels.User{
		Email:     email,
		Password:  hashedPassword,
		FullName:  coordinator.FullName,
		Role:      appModels.RoleCoordinator,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := users.CreateUser(ctx, user)
	if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		// another instance seeded it first
		return nil
	}
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating coordinator")
		return err
	}

	lgr.Info().Int64("coordinatorID", id).Str("email", email).Msg("Default coordinator created successfully")
	return nil
}
