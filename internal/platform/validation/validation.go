// Package validation registers the custom binding rules used by request DTOs.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	// emailPattern accepts a local@domain.tld shape with a TLD of two or more characters.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

	registerOnce sync.Once
	registerErr  error
)

// IsEmail reports whether s has the basic local@domain.tld shape.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsPhone reports whether s is exactly ten ASCII digits.
func IsPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// Register installs the custom rules on gin's default validator:
//
//	notblank - string is non-empty after trimming whitespace
//	mailaddr - IsEmail on the trimmed value
//	phone10  - IsPhone
//
// It is safe to call more than once.
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		registerErr = RegisterOn(v)
	})
	return registerErr
}

// RegisterOn installs the custom rules on v and reports field errors by
// their JSON name.
func RegisterOn(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonName)
	rules := map[string]validator.Func{
		"notblank": validators.NotBlank,
		"mailaddr": func(fl validator.FieldLevel) bool {
			return IsEmail(strings.TrimSpace(fl.Field().String()))
		},
		"phone10": func(fl validator.FieldLevel) bool {
			return IsPhone(fl.Field().String())
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

// Describe turns a binding error into a short message that is safe to show
// to clients. Only the first failing field is reported.
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request body"
	}

	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required", "required_without", "notblank":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "mailaddr", "email":
		return field + " must be a valid email address"
	case "phone10":
		return field + " must be 10 digits"
	default:
		return field + " is invalid"
	}
}
