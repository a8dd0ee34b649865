package mailer

import (
	"fmt"
	"net/smtp"

	"go.uber.org/zap"
)

type Config struct {
	Host     string
	Port     string
	From     string
	Password string
}

// SMTPNotifier delivers mail over SMTP with STARTTLS. Send reports
// success as a bool because delivery failure is degraded, not fatal:
// the reset flow falls back to returning the code inline.
type SMTPNotifier struct {
	cfg    Config
	logger *zap.Logger
}

func NewSMTPNotifier(cfg Config, logger ...*zap.Logger) *SMTPNotifier {
	l := zap.L().Named("mailer.smtp")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("mailer.smtp")
	}
	return &SMTPNotifier{cfg: cfg, logger: l}
}

func (n *SMTPNotifier) Send(to, subject, body string) bool {
	if n.cfg.Host == "" || n.cfg.From == "" {
		n.logger.Warn("smtp not configured, skipping delivery", zap.String("to", to))
		return false
	}

	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n%s",
		n.cfg.From, to, subject, body,
	)

	addr := n.cfg.Host + ":" + n.cfg.Port
	auth := smtp.PlainAuth("", n.cfg.From, n.cfg.Password, n.cfg.Host)

	if err := smtp.SendMail(addr, auth, n.cfg.From, []string{to}, []byte(msg)); err != nil {
		n.logger.Error("send mail failed", zap.String("to", to), zap.Error(err))
		return false
	}

	n.logger.Info("mail sent", zap.String("to", to), zap.String("subject", subject))
	return true
}
