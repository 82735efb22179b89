package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrValidation = errors.New("validation failed")

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// FieldError describes one failed rule.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

// Errors collects every failed rule of one struct. It matches ErrValidation.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, f := range e {
		msgs = append(msgs, fmt.Sprintf("Field: %s, Tag: %s, Param: %s", f.Field, f.Tag, f.Param))
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(msgs, "; "))
}

func (e Errors) Is(target error) bool {
	return target == ErrValidation
}

func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	out := make(Errors, 0, len(verrs))
	for _, f := range verrs {
		out = append(out, FieldError{Field: f.Field(), Tag: f.Tag(), Param: f.Param()})
	}
	return out
}
