package validation

import (
	"strings"

	"farmportal.app/models"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// IsValidEmail validates email format
func IsValidEmail(email string) bool {
	return validate.Var(strings.TrimSpace(email), "required,email") == nil
}

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidSoilType validates a soil type against the supported set
func IsValidSoilType(soilType string) bool {
	switch soilType {
	case models.SoilLoam, models.SoilClay, models.SoilSandy:
		return true
	}
	return false
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}
