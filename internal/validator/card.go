package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/baditaflorin/go_card_input/internal/core/domain"
	"github.com/baditaflorin/go_card_input/internal/core/field"
)

var (
	reCardNumber = regexp.MustCompile(`^\d{4} \d{4} \d{4} \d{4}$`)
	reExpiry     = regexp.MustCompile(`^(\d{2})/\d{2}$`)
	reCode       = regexp.MustCompile(`^\d{3,4}$`)
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	return fmt.Sprintf("validation failed: %d error(s)", len(v))
}

func (v ValidationErrors) Unwrap() error {
	return domain.ErrIncompleteRecord
}

// CardValidator checks that every field of a card record is complete and well formed.
// It does not run a Luhn check and does not compare the expiry date with today.
type CardValidator struct {
	validate *validator.Validate
}

func NewCardValidator() *CardValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their payload key.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	mustRegister(v, "cardnumber", isCardNumber)
	mustRegister(v, "cardname", isCardName)
	mustRegister(v, "cardexpiry", isCardExpiry)
	mustRegister(v, "cardcode", isCardCode)

	return &CardValidator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn func(string) bool) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return fn(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

func (v *CardValidator) Validate(record domain.CardRecord) error {
	if err := v.validate.Struct(record); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func (v *CardValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: messageFor(err.Tag()),
		})
	}

	return validationErrors
}

func messageFor(tag string) string {
	switch tag {
	case "cardnumber":
		return "must contain 16 digits"
	case "cardname":
		return fmt.Sprintf("must contain letters only, up to %d characters", domain.MaxNameLength)
	case "cardexpiry":
		return "must be a complete MM/YY date"
	case "cardcode":
		return fmt.Sprintf("must contain %d or %d digits", domain.MinSecurityCodeDigits, domain.MaxSecurityCodeDigits)
	}
	return "is invalid"
}

func isCardNumber(s string) bool {
	return reCardNumber.MatchString(s)
}

func isCardName(s string) bool {
	if s == "" || utf8.RuneCountInString(s) > domain.MaxNameLength {
		return false
	}
	letters := 0
	for _, r := range s {
		if !field.IsNameRune(r) {
			return false
		}
		if !unicode.IsSpace(r) {
			letters++
		}
	}
	return letters > 0
}

func isCardExpiry(s string) bool {
	m := reExpiry.FindStringSubmatch(s)
	return m != nil && field.ValidMonth(m[1])
}

func isCardCode(s string) bool {
	return reCode.MatchString(s)
}
