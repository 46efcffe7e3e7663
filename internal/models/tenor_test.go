package models

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseTenor(t *testing.T) {
	tests := []struct {
		in    string
		value string
		unit  TenorUnit
	}{
		{"1", "1", Years},
		{"1y", "1", Years},
		{"1.5 years", "1.5", Years},
		{"2 Year", "2", Years},
		{"18m", "18", Months},
		{"6 months", "6", Months},
		{"3mo", "3", Months},
		{"90d", "90", Days},
		{"1 day", "1", Days},
		{" 30 days ", "30", Days},
	}

	for _, tt := range tests {
		got, err := ParseTenor(tt.in)
		if err != nil {
			t.Errorf("ParseTenor(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if !got.Value.Equal(decimal.RequireFromString(tt.value)) || got.Unit != tt.unit {
			t.Errorf("ParseTenor(%q) = %s %s, want %s %s", tt.in, got.Value, got.Unit, tt.value, tt.unit)
		}
	}
}

func TestParseTenor_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "-1y", "ten years", "1e200000000d"} {
		_, err := ParseTenor(in)
		var invalid *InvalidInputError
		if !errors.As(err, &invalid) || invalid.Field != "tenor" {
			t.Errorf("ParseTenor(%q): expected tenor InvalidInputError, got %v", in, err)
		}
	}
}

func TestTenor_InYears(t *testing.T) {
	tests := []struct {
		tenor Tenor
		basis int64
		want  string
	}{
		{Tenor{Value: decimal.NewFromInt(2), Unit: Years}, 365, "2"},
		{Tenor{Value: decimal.NewFromInt(18), Unit: Months}, 365, "1.5"},
		{Tenor{Value: decimal.NewFromInt(365), Unit: Days}, 365, "1"},
		{Tenor{Value: decimal.NewFromInt(180), Unit: Days}, 360, "0.5"},
	}
	for _, tt := range tests {
		if got := tt.tenor.InYears(tt.basis); !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("%s in years (basis %d) = %s, want %s", tt.tenor, tt.basis, got, tt.want)
		}
	}
}

func TestTenor_String(t *testing.T) {
	if got := (Tenor{Value: decimal.NewFromInt(1), Unit: Years}).String(); got != "1 year" {
		t.Errorf("expected 1 year, got %s", got)
	}
	if got := (Tenor{Value: decimal.NewFromInt(90), Unit: Days}).String(); got != "90 days" {
		t.Errorf("expected 90 days, got %s", got)
	}
}
