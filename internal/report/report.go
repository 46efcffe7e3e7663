package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Dan9191/investment-calculator/internal/models"
)

// Format selects the output rendering of a summary
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// ParseFormat accepts text, json or xml (case-insensitive)
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatXML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q (use text, json or xml)", s)
	}
}

// ContentType returns the HTTP content type of the format
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatXML:
		return "application/xml; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Render produces the complete summary in the given format
func Render(inv *models.Investment, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		b, err := json.MarshalIndent(newSummaryView(inv), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode JSON summary: %w", err)
		}
		return append(b, '\n'), nil
	case FormatXML:
		s, err := XML(inv)
		if err != nil {
			return nil, err
		}
		return []byte(s), nil
	default:
		return []byte(FormatSummary(inv)), nil
	}
}

// Write renders the summary and writes it to w in a single call, so a render
// failure leaves w untouched
func Write(w io.Writer, inv *models.Investment, format Format) error {
	b, err := Render(inv, format)
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
