package email

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/Dan9191/investment-calculator/internal/config"
	"github.com/Dan9191/investment-calculator/internal/models"
	"github.com/sirupsen/logrus"
)

func TestNewSummaryEmail(t *testing.T) {
	inv := &models.Investment{
		IssuerName:   "Acme Bank",
		MaturityDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	e := NewSummaryEmail("desk@example.com", []string{"jane@example.com"}, inv, "SUMMARY BODY\n")

	if e.Subject != "Investment Summary: Acme Bank" {
		t.Errorf("unexpected subject: %s", e.Subject)
	}
	if e.From != "desk@example.com" || len(e.To) != 1 || e.To[0] != "jane@example.com" {
		t.Errorf("unexpected addressing: from=%s to=%v", e.From, e.To)
	}
	body := string(e.Text)
	if !strings.Contains(body, "SUMMARY BODY") || !strings.Contains(body, "2026-01-01") {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestSendSummary_NotConfigured(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	s := NewSender(&config.Config{}, logger)

	if err := s.SendSummary([]string{"jane@example.com"}, &models.Investment{}, ""); err == nil {
		t.Error("expected error when SMTP_HOST is empty")
	}
}
