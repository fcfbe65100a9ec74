package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/skillsage/skillsage-service/internal/models"
)

// Validator wraps go-playground struct validation plus the custom
// domain rules (closed enums).
type Validator struct {
	validate *validator.Validate
}

// ValidationError represents a single failed field.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	if len(ve) == 1 {
		return fmt.Sprintf("validation failed: %s %s", ve[0].Field, ve[0].Message)
	}
	return fmt.Sprintf("validation failed: %d field errors", len(ve))
}

// New creates a validator with the domain rules registered.
func New() *Validator {
	validate := validator.New()

	_ = validate.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		return models.UserRole(fl.Field().String()).Valid()
	})
	_ = validate.RegisterValidation("difficulty_level", func(fl validator.FieldLevel) bool {
		return models.DifficultyLevel(fl.Field().String()).Valid()
	})
	_ = validate.RegisterValidation("activity_type", func(fl validator.FieldLevel) bool {
		return models.ActivityType(fl.Field().String()).Valid()
	})
	_ = validate.RegisterValidation("interview_type", func(fl validator.FieldLevel) bool {
		return models.InterviewType(fl.Field().String()).Valid()
	})

	return &Validator{validate: validate}
}

// Validate checks a request struct and returns field errors, or nil.
func (v *Validator) Validate(s interface{}) ValidationErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return ValidationErrors{{Field: "request", Message: err.Error()}}
	}

	var out ValidationErrors
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			Field:   strings.ToLower(fe.Field()),
			Message: messageFor(fe),
			Value:   fe.Value(),
		})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "user_role":
		return "must be one of admin, user, student, mentor"
	case "difficulty_level":
		return "must be one of Beginner, Intermediate, Advanced"
	case "activity_type":
		return "is not a recognized activity type"
	case "interview_type":
		return "must be one of technical, behavioral, case_study"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
