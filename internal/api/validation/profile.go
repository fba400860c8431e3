package validation

import (
	"github.com/go-playground/validator/v10"

	"internmatch/pkg/models"
)

// ValidateEducationLevel checks that the field holds one of the known
// education level enum values.
func ValidateEducationLevel(fl validator.FieldLevel) bool {
	return models.EducationLevel(fl.Field().String()).IsValid()
}

// RegisterProfileValidators registers all profile-related custom validators
func RegisterProfileValidators(v *validator.Validate) {
	v.RegisterValidation("education_level", ValidateEducationLevel)
}
