package services

import (
	"github.com/rs/zerolog"
	"github.com/siwes/interntrack/internal/app/auth"
	"github.com/siwes/interntrack/internal/app/repositories"
	pkgAuth "github.com/siwes/interntrack/internal/pkg/auth"
	"github.com/siwes/interntrack/internal/pkg/email"
	"github.com/siwes/interntrack/internal/pkg/filestorage"
)

// Services groups the workflow services
type Services struct {
	Authz         *auth.AuthorizationService
	Auth          *AuthService
	Codes         *VerificationCodeService
	Assignments   *AssignmentService
	Logbooks      *LogbookService
	Gradings      *GradingService
	Notifications *NotificationService
}

// Options carries the collaborators the services need besides the stores
type Options struct {
	JWT           *pkgAuth.JWTService
	Storage       filestorage.FileStorage
	Mailer        email.EmailService
	Pusher        Pusher
	Notifications NotificationConfig
	Verification  VerificationCodeConfig
	Logger        zerolog.Logger
}

// NewServices wires every service over one set of stores.
// The notification workers are not started.
func NewServices(repos *repositories.Repositories, opts Options) *Services {
	lgr := opts.Logger
	authz := auth.NewAuthorizationService(repos.Users)

	notifications := NewNotificationService(
		repos.Notifications,
		repos.Users,
		opts.Pusher,
		opts.Mailer,
		opts.Notifications,
		lgr.With().Str("service", "notifications").Logger(),
	)

	codes := NewVerificationCodeService(repos.Codes, repos.Users, notifications, opts.Verification,
		lgr.With().Str("service", "verification").Logger())

	return &Services{
		Authz:         authz,
		Auth:          NewAuthService(repos.Users, repos.Tokens, repos.Assignments, codes, authz, opts.JWT, lgr.With().Str("service", "auth").Logger()),
		Codes:         codes,
		Assignments:   NewAssignmentService(repos.Assignments, repos.Users, authz, notifications, lgr.With().Str("service", "assignments").Logger()),
		Logbooks:      NewLogbookService(repos.Logbooks, repos.Users, authz, opts.Storage, notifications, lgr.With().Str("service", "logbooks").Logger()),
		Gradings:      NewGradingService(repos.Gradings, repos.Logbooks, repos.Users, notifications, lgr.With().Str("service", "gradings").Logger()),
		Notifications: notifications,
	}
}
