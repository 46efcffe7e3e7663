package email

import (
	"fmt"
	"net/smtp"

	"github.com/Dan9191/investment-calculator/internal/config"
	"github.com/Dan9191/investment-calculator/internal/models"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// NewSummaryEmail builds the message carrying a text investment summary
func NewSummaryEmail(from string, to []string, inv *models.Investment, summary string) *email.Email {
	e := email.NewEmail()
	e.From = from
	e.To = to
	e.Subject = fmt.Sprintf("Investment Summary: %s", inv.IssuerName)

	body := "Dear Investor,\n\n"
	body += fmt.Sprintf(
		"Please find below the terms of the investment issued by %s, maturing on %s.\n\n",
		inv.IssuerName, inv.MaturityDate.Format("2006-01-02"),
	)
	body += summary
	body += "\nBest regards,\nInvestment Desk"
	e.Text = []byte(body)
	return e
}

// SendSummary mails the text summary of inv to the given recipients
func (s *Sender) SendSummary(to []string, inv *models.Investment, summary string) error {
	if !s.cfg.EmailEnabled() {
		return fmt.Errorf("email delivery is not configured: SMTP_HOST is empty")
	}
	e := NewSummaryEmail(s.cfg.SenderEmail, to, inv, summary)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send summary to %v: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %v: %s", to, e.Subject)
	return nil
}
