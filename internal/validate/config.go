// Package validate provides input validation utilities for workerctl.
//
// This file implements common validation patterns shared by CLI flag handling
// and interactive prompt processing. All functions leverage the
// go-playground/validator library for standardized validation behavior.
//
// VALIDATION UTILITIES:
//   - Field validation: Tag-based validation for single values
//   - String validation: Required field and non-empty string checking
//
// These utilities replace ad-hoc validation code with centralized, consistent
// validation using the validator library's built-in tags and error handling.
package validate

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	// Global validator instance using built-in validations
	validate *validator.Validate
)

func init() {
	validate = validator.New()
	// Using built-in validators: required, numeric, min, max - no custom registration needed
}

// ValidateField validates individual values against specified validation
// rules using the go-playground/validator library. Provides flexible
// validation for single fields without requiring struct definitions.
//
// Example: ValidateField("42", "required,numeric")
func ValidateField(value interface{}, tag string) error {
	return validate.Var(value, tag)
}

// ValidateRequiredString validates that a string field is not empty.
// Uses the validator library for consistent error handling.
//
// Critical for ensuring required inputs like the API key and base directory
// are specified before any file is created on disk.
func ValidateRequiredString(value, fieldName string) error {
	if err := ValidateField(value, "required"); err != nil {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}
