package validation

import (
	"fmt"
	"time"
)

// ImportValidator provides validation for records decoded from a JSON
// import payload. Every record is checked before any row is written.
type ImportValidator struct {
	validator *Validator
}

// NewImportValidator creates a new import validator
func NewImportValidator() *ImportValidator {
	return &ImportValidator{
		validator: NewValidator(),
	}
}

// ValidateRecord checks a single decoded record and returns the parsed
// start and end times when the record is well formed. The index is only
// used to name the offending field in error messages.
func (iv *ImportValidator) ValidateRecord(index int, startTime, endTime string, durationSeconds *int64) (time.Time, time.Time, error) {
	validationError := NewValidationError()
	field := func(name string) string { return fmt.Sprintf("records[%d].%s", index, name) }

	var start, end time.Time
	var err error

	if !iv.validator.IsNonEmptyString(startTime) {
		validationError.AddRequiredError(field("start_time"))
	} else if start, err = time.Parse(time.RFC3339, startTime); err != nil {
		validationError.AddInvalidFormatError(field("start_time"), startTime, "RFC3339 timestamp")
	}

	if !iv.validator.IsNonEmptyString(endTime) {
		validationError.AddRequiredError(field("end_time"))
	} else if end, err = time.Parse(time.RFC3339, endTime); err != nil {
		validationError.AddInvalidFormatError(field("end_time"), endTime, "RFC3339 timestamp")
	}

	if durationSeconds == nil {
		validationError.AddRequiredError(field("duration_seconds"))
	} else if *durationSeconds < 0 {
		validationError.AddInvalidValueError(field("duration_seconds"), *durationSeconds, "must not be negative")
	}

	if !start.IsZero() && !end.IsZero() && !iv.validator.IsValidTimeRange(start, end) {
		validationError.AddInvalidRangeError(field("time_range"), map[string]string{
			"start": startTime,
			"end":   endTime,
		}, "end time must not be before start time")
	}

	if validationError.HasErrors() {
		return time.Time{}, time.Time{}, validationError
	}

	return start, end, nil
}
