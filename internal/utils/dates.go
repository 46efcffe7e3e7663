package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the YYYY-MM-DD layout used for every input and output date
const DateLayout = "2006-01-02"

// ParseDate converts YYYY-MM-DD to a UTC time.Time
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("is empty")
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not a YYYY-MM-DD date", s)
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
