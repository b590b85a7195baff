package email

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/rs/zerolog"
)

// Message is a single outbound email
type Message struct {
	ToEmail string
	ToName  string
	Subject string
	Body    string
}

// EmailService defines the interface for email delivery
type EmailService interface {
	Send(ctx context.Context, msg Message) error
}

// Config selects and configures a provider
type Config struct {
	Provider       string
	SMTPHost       string
	SMTPPort       int
	SMTPUsername   string
	SMTPPassword   string
	SMTPUseTLS     bool
	SendGridAPIKey string
	FromName       string
	FromEmail      string
}

// NewEmailService returns the provider named in cfg. Missing credentials fall back to logging.
func NewEmailService(cfg Config, logger zerolog.Logger) EmailService {
	switch strings.ToLower(cfg.Provider) {
	case "smtp":
		if cfg.SMTPHost != "" {
			return NewSMTPService(SMTPConfig{
				Host:      cfg.SMTPHost,
				Port:      cfg.SMTPPort,
				Username:  cfg.SMTPUsername,
				Password:  cfg.SMTPPassword,
				FromName:  cfg.FromName,
				FromEmail: cfg.FromEmail,
				UseTLS:    cfg.SMTPUseTLS,
			}, logger)
		}
	case "sendgrid":
		if cfg.SendGridAPIKey != "" {
			return NewSendGridService(cfg.SendGridAPIKey, cfg.FromName, cfg.FromEmail, logger)
		}
	}

	logger.Warn().Str("provider", cfg.Provider).Msg("Email provider not configured - emails will only be logged")
	return NewLogService(logger)
}

// renderHTML wraps a plain-text body in the standard InternTrack layout
func renderHTML(toName, subject, body string) string {
	paragraphs := strings.Split(strings.TrimSpace(body), "\n")
	var sb strings.Builder
	for _, p := range paragraphs {
		if p = strings.TrimSpace(p); p != "" {
			fmt.Fprintf(&sb, "<p>%s</p>\n", html.EscapeString(p))
		}
	}

	greeting := "Hello,"
	if toName != "" {
		greeting = fmt.Sprintf("Hello %s,", html.EscapeString(toName))
	}

	return fmt.Sprintf(`<html>
<body>
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<h2 style="color: #333;">%s</h2>
		<p>%s</p>
		%s
		<p>Best regards,<br>The InternTrack Team</p>
	</div>
</body>
</html>`, html.EscapeString(subject), greeting, sb.String())
}

// LogService writes emails to the log instead of sending them
type LogService struct {
	logger zerolog.Logger
}

// NewLogService creates a LogService
func NewLogService(logger zerolog.Logger) *LogService {
	return &LogService{logger: logger}
}

// Send logs the message
func (s *LogService) Send(_ context.Context, msg Message) error {
	s.logger.Info().
		Str("toEmail", msg.ToEmail).
		Str("subject", msg.Subject).
		Str("body", msg.Body).
		Msg("Email delivery disabled - message logged")
	return nil
}
