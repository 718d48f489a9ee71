package email

import (
	"fmt"
	"html"
	"os"

	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"
)

type EmailService struct {
	client   *resend.Client
	from     string
	fromName string
	logger   *zap.SugaredLogger
}

func NewEmailService(logger *zap.SugaredLogger) *EmailService {
	return &EmailService{
		client:   resend.NewClient(os.Getenv("RESEND_API_KEY")),
		from:     os.Getenv("EMAIL_FROM_ADDRESS"),
		fromName: os.Getenv("EMAIL_FROM_NAME"),
		logger:   logger,
	}
}

// SendRSVPNotification tells the invitation owner a guest has replied.
// Callers treat a failure as log-only; the RSVP itself already succeeded.
func (s *EmailService) SendRSVPNotification(to, customerName, guestName, attendance, wishes string) error {
	if s.from == "" {
		s.logger.Debugw("email sender not configured, skipping RSVP notification")
		return nil
	}

	body := fmt.Sprintf(
		`<p>Thiệp <strong>%s</strong> vừa nhận được phản hồi mới:</p>
<p><strong>%s</strong> — %s</p>
<p>%s</p>`,
		html.EscapeString(customerName),
		html.EscapeString(guestName),
		html.EscapeString(attendance),
		html.EscapeString(wishes),
	)

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{to},
		Subject: fmt.Sprintf("Phản hồi mới cho thiệp %s", customerName),
		Html:    body,
	}

	if _, err := s.client.Emails.Send(params); err != nil {
		return fmt.Errorf("send RSVP notification: %w", err)
	}

	s.logger.Infow("RSVP notification sent", "to", to, "customer", customerName)
	return nil
}
