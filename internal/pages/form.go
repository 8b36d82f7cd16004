package pages

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// QuoteForm is the add-quote form
type QuoteForm struct {
	Phrase string `json:"phrase" validate:"required,min=5"`
	Author string `json:"author" validate:"required,min=2"`
}

// Normalize trims surrounding whitespace from both fields
func (f QuoteForm) Normalize() QuoteForm {
	return QuoteForm{
		Phrase: strings.TrimSpace(f.Phrase),
		Author: strings.TrimSpace(f.Author),
	}
}

// Validate checks the form, returning FormErrors when a rule fails
func (f QuoteForm) Validate() error {
	err := formValidator().Struct(f)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fields := make(FormErrors, len(validationErrors))
	for _, e := range validationErrors {
		fields[e.Field()] = fieldMessage(e)
	}
	return fields
}

// FormErrors maps a form field to the message shown next to it
type FormErrors map[string]string

func (e FormErrors) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidForm, strings.Join(e.Messages(), "; "))
}

// Messages returns the messages ordered by field name
func (e FormErrors) Messages() []string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)

	msgs := make([]string, 0, len(names))
	for _, name := range names {
		msgs = append(msgs, e[name])
	}
	return msgs
}

func (e FormErrors) Unwrap() error {
	return ErrInvalidForm
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// formValidator reports fields by their json names
func formValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
