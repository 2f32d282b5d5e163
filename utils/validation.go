package utils

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"locker-booking/models"
)

var (
	streetnamePattern = regexp.MustCompile(`^[A-Za-z0-9 .'-]+$`)
	postalcodePattern = regexp.MustCompile(`^[A-Za-z0-9 -]+$`)
	countryPattern    = regexp.MustCompile(`^[A-Za-z .'-]+$`)
	// Dutch or German numbers once reduced to digits: national 0 prefix or
	// the 31/49 country code.
	phonePattern = regexp.MustCompile(`^(0|31|49)[0-9]+$`)
)

var registerOnce sync.Once

// RegisterValidators installs the custom tags used by request DTOs on gin's
// validator engine and makes field errors report JSON names.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("moment", validMoment)
		_ = v.RegisterValidation("phone", validPhone)
		_ = v.RegisterValidation("notblank", validators.NotBlank)
		_ = v.RegisterValidation("streetname", matches(streetnamePattern))
		_ = v.RegisterValidation("postalcode", matches(postalcodePattern))
		_ = v.RegisterValidation("country", matches(countryPattern))
	})
}

func validMoment(fl validator.FieldLevel) bool {
	_, err := time.ParseInLocation(models.MomentLayout, fl.Field().String(), time.Local)
	return err == nil
}

func validPhone(fl validator.FieldLevel) bool {
	digits := models.DigitsOnly(fl.Field().String())
	return len(digits) >= 10 && len(digits) <= 15 && phonePattern.MatchString(digits)
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// FieldErrors turns a binding error into per-field messages. ok is false
// when err is not a validation failure (malformed JSON, wrong types).
func FieldErrors(err error) (errs []FieldError, ok bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	errs = make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return errs, true
}

func message(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.ActualTag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Invalid email format"
	case "phone":
		return "Invalid phone number format. Please enter a valid Dutch or German phone number."
	case "moment":
		return fmt.Sprintf("%s must be in MySQL DATETIME format (YYYY-MM-DD HH:MM:SS)", field)
	case "notblank":
		return fmt.Sprintf("%s cannot be blank", field)
	case "streetname", "postalcode", "country":
		return fmt.Sprintf("%s contains invalid characters", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s cannot exceed %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is not valid", field)
	}
}
