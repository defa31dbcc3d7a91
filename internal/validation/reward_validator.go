package validation

import (
	"fmt"

	"github.com/sajee05/effortless-time-tracker/internal/domain"
)

// RewardValidator provides validation for reward thresholds loaded from
// the rewards file.
type RewardValidator struct {
	validator *Validator
}

// NewRewardValidator creates a new reward validator
func NewRewardValidator() *RewardValidator {
	return &RewardValidator{
		validator: NewValidator(),
	}
}

// ValidateThreshold checks a single threshold entry. The index names the
// offending entry in error messages.
func (rv *RewardValidator) ValidateThreshold(index int, threshold domain.RewardThreshold) error {
	validationError := NewValidationError()
	field := func(name string) string { return fmt.Sprintf("rewards[%d].%s", index, name) }

	if !rv.validator.IsNonEmptyString(threshold.Description) {
		validationError.AddRequiredError(field("description"))
	}

	switch threshold.Kind {
	case domain.RewardKindCoin:
		if threshold.CoinCost <= 0 {
			validationError.AddInvalidValueError(field("coins"), threshold.CoinCost, "must be a positive integer")
		}
	case domain.RewardKindStreak:
		// Streak thresholds unlock on streak length alone.
	default:
		validationError.AddInvalidValueError(field("kind"), string(threshold.Kind), "must be coin or streak")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateThresholds checks a whole rewards file worth of entries and
// collects every error rather than stopping at the first.
func (rv *RewardValidator) ValidateThresholds(thresholds []domain.RewardThreshold) error {
	validationError := NewValidationError()

	for i, threshold := range thresholds {
		if err := rv.ValidateThreshold(i, threshold); err != nil {
			if thresholdErr, ok := err.(*ValidationError); ok {
				validationError.Errors = append(validationError.Errors, thresholdErr.Errors...)
			}
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}
