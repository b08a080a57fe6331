package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aleister1102/embedkit/internal/common/errorwrapper"
	"github.com/aleister1102/embedkit/internal/discord"
	"github.com/go-playground/validator/v10"
)

// ValidateConfig performs validation on the Config structure.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return errorwrapper.WrapError(errorwrapper.ErrInvalidConfiguration, "config is nil")
	}

	validate := newConfigValidator()
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("configuration validation error: %w", err)
	}

	var validationErrorMessages []string
	for _, e := range errs {
		fieldName := strings.TrimPrefix(e.StructNamespace(), "Config.")
		msg := fmt.Sprintf("Validation failed for '%s': rule '%s'", fieldName, e.Tag())
		if e.Param() != "" {
			msg += fmt.Sprintf(" (expected: %s)", e.Param())
		}
		if e.Value() != nil && e.Value() != "" {
			msg += fmt.Sprintf(", actual: '%v'", e.Value())
		}
		validationErrorMessages = append(validationErrorMessages, msg)
	}
	return fmt.Errorf("%w: configuration validation failed:\n  %s",
		errorwrapper.ErrInvalidConfiguration, strings.Join(validationErrorMessages, "\n  "))
}

func newConfigValidator() *validator.Validate {
	validate := validator.New()

	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "trace", "debug", "info", "warn", "error", "fatal", "panic":
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "console", "text", "json":
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("colorname", func(fl validator.FieldLevel) bool {
		_, ok := discord.ResolveColor(fl.Field().String())
		return ok
	})

	return validate
}
