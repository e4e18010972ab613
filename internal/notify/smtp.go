package notify

import (
	"context"
	"fmt"

	"spg-be/internal/logger"

	"go.uber.org/zap"
	gopkgmail "gopkg.in/gomail.v2"
)

// Dialer is satisfied by *gomail.Dialer.
type Dialer interface {
	DialAndSend(m ...*gopkgmail.Message) error
}

type SMTPSender struct {
	dialer Dialer
	from   string
}

func NewSMTPSender(host string, port int, user, password, from string) *SMTPSender {
	d := gopkgmail.NewDialer(host, port, user, password)
	d.SSL = port == 465
	return &SMTPSender{dialer: d, from: from}
}

func NewSMTPSenderWithDialer(d Dialer, from string) *SMTPSender {
	return &SMTPSender{dialer: d, from: from}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	msg, err := Render(msg)
	if err != nil {
		return err
	}

	m := gopkgmail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	if err := s.dialer.DialAndSend(m); err != nil {
		logger.FromCtx(ctx).Error("smtp: failed to send email",
			zap.String("to", msg.To),
			zap.Error(err),
		)
		return fmt.Errorf("send email: %w", err)
	}

	logger.FromCtx(ctx).Info("email sent", zap.String("to", msg.To))
	return nil
}
