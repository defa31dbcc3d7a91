package validation

import (
	"strings"
	"time"
)

// Earliest start time accepted anywhere in the tracker. Nothing useful was
// recorded before this and it catches zero values and garbled imports alike.
var earliestSessionDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Validator provides common validation utilities shared by the
// entity-specific validators.
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidSessionID checks if a session ID is valid (positive)
func (v *Validator) IsValidSessionID(id int64) bool {
	return id > 0
}

// IsValidTimeRange checks that a session ends at or after it starts.
// Equal timestamps are allowed; zero-length sessions are filtered out
// higher up, not rejected here.
func (v *Validator) IsValidTimeRange(startTime, endTime time.Time) bool {
	return !endTime.Before(startTime)
}

// IsReasonableDate checks if a timestamp is within the bounds the tracker
// accepts: after the epoch cutoff and no more than a day into the future.
func (v *Validator) IsReasonableDate(t time.Time) bool {
	if t.Before(earliestSessionDate) {
		return false
	}
	return t.Before(time.Now().AddDate(0, 0, 1))
}

// IsValidMinutes checks that a minute count for manual entry or adjustment
// is positive and no longer than a full day.
func (v *Validator) IsValidMinutes(minutes int64) bool {
	return minutes > 0 && minutes <= 24*60
}

// IsValidYear checks that a heatmap year is within the range the store can
// plausibly contain.
func (v *Validator) IsValidYear(year int) bool {
	return year >= earliestSessionDate.Year() && year <= time.Now().Year()+1
}

// ParseDay parses a YYYY-MM-DD calendar date in the given location.
func (v *Validator) ParseDay(date string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", strings.TrimSpace(date), loc)
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
