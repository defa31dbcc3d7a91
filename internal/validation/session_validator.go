package validation

import (
	"time"

	"github.com/sajee05/effortless-time-tracker/internal/domain"
)

// SessionValidator provides validation for session-related operations
type SessionValidator struct {
	validator *Validator
}

// NewSessionValidator creates a new session validator
func NewSessionValidator() *SessionValidator {
	return &SessionValidator{
		validator: NewValidator(),
	}
}

// ValidateSessionID validates a session identifier
func (sv *SessionValidator) ValidateSessionID(id int64) error {
	validationError := NewValidationError()

	if !sv.validator.IsValidSessionID(id) {
		validationError.AddInvalidValueError("session_id", id, "must be a positive integer")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTimeRange validates the start/end pair of a recorded session.
// An end before the start is the only rejection; equal timestamps pass.
func (sv *SessionValidator) ValidateTimeRange(startTime, endTime time.Time) error {
	validationError := NewValidationError()

	if startTime.IsZero() {
		validationError.AddRequiredError("start_time")
	}
	if endTime.IsZero() {
		validationError.AddRequiredError("end_time")
	}

	if !startTime.IsZero() && !endTime.IsZero() && !sv.validator.IsValidTimeRange(startTime, endTime) {
		validationError.AddInvalidRangeError("time_range", map[string]time.Time{
			"start": startTime,
			"end":   endTime,
		}, "end time must not be before start time")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateManualEntry validates the day and minute count for a manual
// session entry or deduction.
func (sv *SessionValidator) ValidateManualEntry(day time.Time, minutes int64) error {
	validationError := NewValidationError()

	if day.IsZero() {
		validationError.AddRequiredError("date")
	} else if !sv.validator.IsReasonableDate(day) {
		validationError.AddInvalidValueError("date", day, "must not be in the far past or future")
	}

	if !sv.validator.IsValidMinutes(minutes) {
		validationError.AddInvalidValueError("minutes", minutes, "must be between 1 and 1440")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateAdjustment validates the signed minute delta applied to a session.
func (sv *SessionValidator) ValidateAdjustment(deltaMinutes int64) error {
	validationError := NewValidationError()

	if deltaMinutes == 0 {
		validationError.AddInvalidValueError("minutes", deltaMinutes, "must not be zero")
	} else {
		abs := deltaMinutes
		if abs < 0 {
			abs = -abs
		}
		if !sv.validator.IsValidMinutes(abs) {
			validationError.AddInvalidValueError("minutes", deltaMinutes, "must be between -1440 and 1440")
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateYear validates a heatmap year
func (sv *SessionValidator) ValidateYear(year int) error {
	validationError := NewValidationError()

	if !sv.validator.IsValidYear(year) {
		validationError.AddInvalidValueError("year", year, "is outside the range the tracker stores")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateSession validates a domain.Session object
func (sv *SessionValidator) ValidateSession(session domain.Session) error {
	validationError := NewValidationError()

	if !session.IsValid() {
		validationError.AddInvalidValueError("session", session, "fails basic validation")
	}

	if rangeErr := sv.ValidateTimeRange(session.StartTime, session.EndTime); rangeErr != nil {
		if rangeValidationErr, ok := rangeErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, rangeValidationErr.Errors...)
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}
