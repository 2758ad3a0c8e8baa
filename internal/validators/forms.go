package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/MKhiriev/go-kita-inventory/models"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// engine returns the shared validator. Field names in errors are the
// `form` tag values so messages can be keyed by input name.
func engine() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")
			if name == "-" || name == "" {
				return strings.ToLower(fld.Name)
			}
			return name
		})
	})
	return validate
}

// FormValidator validates the models.*Form types with go-playground/validator.
type FormValidator struct{}

// NewFormValidator returns a FormValidator as the Validator interface.
func NewFormValidator() Validator {
	return &FormValidator{}
}

// Validate checks a supported form. When fields are given only those struct
// fields (Go names, e.g. "Password") are validated.
func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch obj.(type) {
	case models.LoginForm, *models.LoginForm,
		models.ForgotPasswordForm, *models.ForgotPasswordForm,
		models.ResetPasswordForm, *models.ResetPasswordForm,
		models.ManualBanForm, *models.ManualBanForm,
		models.NewUserForm, *models.NewUserForm:
	default:
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		err = engine().StructPartialCtx(ctx, obj, fields...)
	} else {
		err = engine().StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	formErr := &FormError{Fields: make(map[string]string, len(validationErrs))}
	for _, fe := range validationErrs {
		formErr.Fields[fe.Field()] = translateError(fe)
	}
	return formErr
}

var errorMessageTemplates = map[string]string{
	"required": "%s is required",
	"ip":       "%s must be a valid IP address",
	"email":    "%s must be a valid email address",
}

func translateError(fe validator.FieldError) string {
	field := strings.ReplaceAll(fe.Field(), "_", " ")

	if template, ok := errorMessageTemplates[fe.Tag()]; ok {
		return fmt.Sprintf(template, field)
	}

	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "eqfield":
		return fmt.Sprintf("%s does not match", field)
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
