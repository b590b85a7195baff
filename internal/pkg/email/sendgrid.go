package email

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	sendGridHost     = "https://api.sendgrid.com"
	sendGridEndpoint = "/v3/mail/send"
)

// SendGridService delivers email through the SendGrid v3 API
type SendGridService struct {
	key        string
	from       *sgmail.Email
	subjPrefix string
	logger     zerolog.Logger
}

// NewSendGridService creates a SendGridService
func NewSendGridService(key, fromName, fromEmail string, logger zerolog.Logger) *SendGridService {
	return &SendGridService{
		key:        key,
		from:       sgmail.NewEmail(fromName, fromEmail),
		subjPrefix: "[" + fromName + "] ",
		logger:     logger,
	}
}

func (s *SendGridService) prepare(msg Message) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = s.subjPrefix + msg.Subject
	p.AddTos(sgmail.NewEmail(msg.ToName, msg.ToEmail))

	m := sgmail.NewV3Mail()
	m.SetFrom(s.from)
	m.AddPersonalizations(p)
	m.AddContent(
		sgmail.NewContent("text/plain", msg.Body),
		sgmail.NewContent("text/html", renderHTML(msg.ToName, msg.Subject, msg.Body)),
	)
	return m
}

// Send delivers the message
func (s *SendGridService) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	req := sendgrid.GetRequest(s.key, sendGridEndpoint, sendGridHost)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(s.prepare(msg))

	res, err := sendgrid.API(req)
	if err != nil {
		s.logger.Error().Err(err).Str("toEmail", msg.ToEmail).Msg("SendGrid request failed")
		return fmt.Errorf("sendgrid request failed: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		s.logger.Error().Int("status", res.StatusCode).Str("body", res.Body).Msg("SendGrid rejected message")
		return fmt.Errorf("sendgrid rejected message with status %d", res.StatusCode)
	}

	return nil
}
