package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"rental-agent/apperrors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON name.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateInput checks the validate tags of input. An unknown tax regime is
// reported as ErrUnsupportedRegime, any other violation as ErrInvalidInput
// listing the offending fields.
func validateInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.Wrap(apperrors.ErrInvalidInput, err)
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Field() == "regime" && fe.Tag() == "oneof" {
			return apperrors.WithMessage(apperrors.ErrUnsupportedRegime,
				fmt.Sprintf("unsupported tax regime %q, expected one of %s", fe.Value(), fe.Param()))
		}
		fields = append(fields, describeFieldError(fe))
	}
	return apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid fields: "+strings.Join(fields, ", "))
}

func describeFieldError(fe validator.FieldError) string {
	// Drop the root struct name from the namespace.
	_, field, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		field = fe.Field()
	}
	if fe.Param() == "" {
		return fmt.Sprintf("%s (%s)", field, fe.Tag())
	}
	return fmt.Sprintf("%s (%s=%s)", field, fe.Tag(), fe.Param())
}
