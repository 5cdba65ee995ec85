package utils

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var ssnPattern = regexp.MustCompile(`^\d{3}-?\d{2}-?\d{4}$`)

// ValidationError carries one message per offending field. It is returned
// before any store call is made.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewFieldError builds a ValidationError for a single field.
func NewFieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// IsValidationError reports whether err wraps a ValidationError.
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// fieldLabels overrides the label derived from a JSON field name.
var fieldLabels = map[string]string{
	"full_name":     "Name",
	"name":          "Name",
	"state_id":      "State ID",
	"date_of_birth": "Date of birth",
	"ssn":           "SSN",
}

// Validator returns the shared validator with the project's custom rules.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = validate.RegisterValidation("ssn", func(fl validator.FieldLevel) bool {
			v := fl.Field().String()
			return v == "" || ssnPattern.MatchString(v)
		})
	})
	return validate
}

// MatchesSSN reports whether v is an accepted SSN (XXX-XX-XXXX, dashes optional).
func MatchesSSN(v string) bool {
	return ssnPattern.MatchString(v)
}

// ValidateStruct runs the struct's validate tags and converts failures into
// a ValidationError with human readable messages.
func ValidateStruct(v any) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	out := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields[fe.Field()] = fieldMessage(fe)
	}
	return out
}

func fieldLabel(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	label := strings.ReplaceAll(field, "_", " ")
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

func fieldMessage(fe validator.FieldError) string {
	label := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "max":
		return fmt.Sprintf("%s must be less than %s characters", label, fe.Param())
	case "email":
		return "Invalid email address"
	case "ssn":
		return "Invalid SSN format (XXX-XX-XXXX)"
	case "datetime":
		return label + " must be a date (YYYY-MM-DD)"
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
