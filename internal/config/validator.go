package config

import (
	"github.com/gookit/validate"
)

// CnfValidator checks a loaded configuration against the validate tags on
// its sections.
type CnfValidator struct {
	conf *Config
}

// NewCnfValidator creates a validator for the given configuration.
func NewCnfValidator(conf *Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

// Validate runs every section through gookit/validate and returns the first
// failing section's errors.
func (cv *CnfValidator) Validate() error {
	sections := []interface{}{
		&cv.conf.Data,
		&cv.conf.Server,
		&cv.conf.Logger,
		&cv.conf.Application,
	}

	for _, section := range sections {
		v := validate.Struct(section)
		if !v.Validate() {
			return v.Errors
		}
	}

	return nil
}
