package mailer

import (
	"context"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// Service delivers the three notifications the app emits. Every send is
// synchronous and best-effort: callers treat a failed delivery as a warning,
// never as a reason to roll anything back.
type Service struct {
	client     *resend.Client
	from       string
	adminEmail string
	isDev      bool
}

func New(apiKey, from, adminEmail string, isDev bool) *Service {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &Service{
		client:     client,
		from:       from,
		adminEmail: adminEmail,
		isDev:      isDev,
	}
}

func (s *Service) send(kind, to, subject, body string) error {
	if s.isDev {
		zap.L().Info("email sent (dev mode)",
			zap.String("type", kind),
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return nil
	}

	if s.client == nil {
		return errNotConfigured
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(context.Background(), params)
	if err == nil {
		zap.L().Info("email sent", zap.String("type", kind), zap.String("to", to))
	}
	return err
}

// SendActivationRequest tells the administrator a new applicant is waiting.
func (s *Service) SendActivationRequest(firstName, lastName, email, phone string) error {
	subject, body := activationRequestTemplate(firstName, lastName, email, phone)
	return s.send("activation_request", s.adminEmail, subject, body)
}

// SendWelcome tells a freshly activated worker their account is live.
func (s *Service) SendWelcome(email, firstName string) error {
	subject, body := welcomeTemplate(firstName)
	return s.send("welcome", email, subject, body)
}

// SendResetNotice routes a password-reset token to the administrator, who
// relays it to the worker (admin-mediated reset workflow).
func (s *Service) SendResetNotice(firstName, lastName, email, token string) error {
	subject, body := resetNoticeTemplate(firstName, lastName, email, token)
	return s.send("password_reset", s.adminEmail, subject, body)
}
