package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"sourdough-tracker/internal/domain"
)

// RatioFormat describes the accepted --ratio syntax
const RatioFormat = "starter:flour:water (e.g. 1:2:2)"

// Validator provides common validation utilities
type Validator struct {
	structs *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their command line flag name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("flag")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return &Validator{structs: v}
}

// Struct validates tagged struct fields and converts failures into a ValidationError
func (v *Validator) Struct(s interface{}) error {
	err := v.structs.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	validationError := NewValidationError()
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			validationError.AddRequiredError(fe.Field())
		case "gt":
			if fe.Param() == "0" {
				validationError.AddInvalidValueError(fe.Field(), fe.Value(), "must be a positive number")
			} else {
				validationError.AddInvalidValueError(fe.Field(), fe.Value(), "must be greater than "+fe.Param())
			}
		case "gte":
			validationError.AddInvalidRangeError(fe.Field(), fe.Value(), "must be at least "+fe.Param())
		default:
			validationError.AddInvalidValueError(fe.Field(), fe.Value(), "failed the "+fe.Tag()+" check")
		}
	}
	return validationError
}

// ParseRatio parses a starter:flour:water string into a ratio of positive integers
func (v *Validator) ParseRatio(s string) (domain.Ratio, error) {
	validationError := NewValidationError()

	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		validationError.AddInvalidFormatError("ratio", s, RatioFormat)
		return domain.Ratio{}, validationError
	}

	var ratio domain.Ratio
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			validationError.AddInvalidFormatError("ratio", s, RatioFormat)
			return domain.Ratio{}, validationError
		}
		ratio[i] = n
	}

	for i, name := range []string{"starter", "flour", "water"} {
		if ratio[i] <= 0 {
			validationError.AddInvalidValueError("ratio", s, fmt.Sprintf("%s component must be a positive number", name))
		}
	}
	if validationError.HasErrors() {
		return domain.Ratio{}, validationError
	}

	return ratio, nil
}
