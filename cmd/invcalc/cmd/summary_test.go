package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Dan9191/investment-calculator/internal/models"
)

func setTestEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CURRENCY", "USD")
	t.Setenv("DAY_COUNT", "ACT/365F")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("SMTP_HOST", "")
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

var scenarioA = []string{
	"summary",
	"--principal", "100000",
	"--issuer", "Acme Bank",
	"--lender", "Jane Doe",
	"--guarantor", "Acme Holdings",
	"--advisor", "Rex Advisory",
	"--tenor", "1y",
	"--effective-date", "2025-01-01",
	"--maturity-date", "2026-01-01",
	"--rate", "0.10",
}

const scenarioAText = `--- Investment Details Summary ---
Principal Amount: USD 100,000.00
Issuer Name: Acme Bank
Lender Name: Jane Doe
Guarantor Name: Acme Holdings
Advisor Name: Rex Advisory
Investment Tenor: 1 year
Effective Date: 2025-01-01
Maturity Date: 2026-01-01
Effective Rate: 10.00%
------------------------------
Calculated Maturity Value: USD 110,000.00
Amount Due: USD 110,000.00
10% Withholding tax in the sum of USD 1,000.00 which shall be deducted from the Maturity Value
Net Amount Payable: USD 109,000.00
------------------------------
`

func TestSummary_Flags(t *testing.T) {
	setTestEnv(t)

	out, _, err := run(t, "", scenarioA...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != scenarioAText {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestSummary_ScenarioB(t *testing.T) {
	setTestEnv(t)

	out, _, err := run(t, "", "summary",
		"--principal", "50000", "--issuer", "I", "--lender", "L", "--guarantor", "G", "--advisor", "A",
		"--tenor", "2", "--effective-date", "2025-01-01", "--maturity-date", "2027-01-01", "--rate", "5%")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Calculated Maturity Value: USD 55,000.00") {
		t.Errorf("unexpected maturity value:\n%s", out)
	}
	if !strings.Contains(out, "in the sum of USD 500.00 which") {
		t.Errorf("unexpected tax:\n%s", out)
	}
}

func TestSummary_InvalidInputProducesNoOutput(t *testing.T) {
	setTestEnv(t)

	tests := map[string][]string{
		"zero principal": {"--principal", "0"},
		"same dates":     {"--maturity-date", "2025-01-01"},
	}
	for name, override := range tests {
		t.Run(name, func(t *testing.T) {
			args := append([]string{}, scenarioA...)
			args = append(args, override...)

			out, _, err := run(t, "", args...)
			var invalid *models.InvalidInputError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidInputError, got %v", err)
			}
			if out != "" {
				t.Errorf("expected no output, got %q", out)
			}
		})
	}
}

func TestSummary_Interactive(t *testing.T) {
	setTestEnv(t)
	answers := strings.Join([]string{
		"", "100000", "Acme Bank", "Jane Doe", "Acme Holdings", "Rex Advisory",
		"1y", "2025-01-01", "2026-01-01", "10%",
	}, "\n") + "\n"

	out, prompts, err := run(t, answers, "summary", "-i")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != scenarioAText {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.Contains(prompts, "Enter Principal amount: ") || !strings.Contains(prompts, "Input cannot be empty") {
		t.Errorf("unexpected prompts: %s", prompts)
	}
}

func TestSummary_InteractiveSkipsFlaggedFields(t *testing.T) {
	setTestEnv(t)
	args := append([]string{}, scenarioA...)
	args = append(args[:len(args)-2], "-i")

	out, prompts, err := run(t, "10%\n", args...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(prompts, "Enter Issuer Name") {
		t.Errorf("issuer should not be prompted: %s", prompts)
	}
	if out != scenarioAText {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestSummary_XMLFormat(t *testing.T) {
	setTestEnv(t)
	args := append(append([]string{}, scenarioA...), "--format", "xml")

	out, _, err := run(t, "", args...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "<maturity_value>110000.00</maturity_value>") {
		t.Errorf("unexpected XML:\n%s", out)
	}
}

func TestSummary_EmailRequiresSMTP(t *testing.T) {
	setTestEnv(t)
	args := append(append([]string{}, scenarioA...), "--email-to", "jane@example.com")

	out, _, err := run(t, "", args...)
	if err == nil || !strings.Contains(err.Error(), "SMTP_HOST") {
		t.Fatalf("expected SMTP configuration error, got %v", err)
	}
	if out != "" {
		t.Errorf("expected no output, got %q", out)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "invcalc v"+Version) {
		t.Errorf("unexpected version output: %s", out)
	}
}
