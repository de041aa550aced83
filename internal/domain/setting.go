package domain

import (
	"strconv"
	"strings"
	"time"
)

// Setting is a persisted key plus raw value and declared type. Values are
// resolved into a SettingValue once at read time, not re-parsed ad hoc.
type Setting struct {
	Key         string
	RawValue    string
	Type        SettingType
	Description string
	UpdatedAt   time.Time
}

// SettingValue is the tagged variant a raw setting resolves to.
type SettingValue struct {
	Type    SettingType
	Number  float64
	Boolean bool
	Text    string
}

// Resolve parses the raw value according to the declared type. Unparseable
// numbers resolve to 0 and unparseable booleans to false; the string form is
// always retained in Text.
func (s *Setting) Resolve() SettingValue {
	v := SettingValue{Type: s.Type, Text: s.RawValue}
	switch s.Type {
	case SettingNumber:
		if n, err := strconv.ParseFloat(s.RawValue, 64); err == nil {
			v.Number = n
		}
	case SettingBoolean:
		switch strings.ToLower(s.RawValue) {
		case "true", "1", "yes":
			v.Boolean = true
		}
	}
	return v
}

// Int returns the numeric value truncated to an int.
func (v SettingValue) Int() int {
	return int(v.Number)
}

// Well-known setting keys consumed by the schedule engine and progress
// metrics.
const (
	SettingSkipWeekends       = "skip_weekends"
	SettingOverdueWarningDays = "overdue_warning_days"
	SettingProgressLagPercent = "progress_lag_threshold"
)
