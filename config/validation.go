package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rediwo/tweenlog/registry"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("store_uri", validateStoreURI); err != nil {
		panic(err)
	}

	// Report fields by their yaml name
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateStoreURI(fl validator.FieldLevel) bool {
	scheme, rest, ok := strings.Cut(fl.Field().String(), "://")
	if !ok || rest == "" {
		return false
	}
	_, err := registry.Get(scheme)
	return err == nil
}

// FieldError is one invalid setting
type FieldError struct {
	Field   string
	Message string
}

// ValidationErrors is returned by Validate
type ValidationErrors []FieldError

func (ve ValidationErrors) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "validation failed with %d error(s):", len(ve))
	for i, e := range ve {
		fmt.Fprintf(&sb, "\n  %d. %s: %s", i+1, e.Field, e.Message)
	}
	return sb.String()
}

// Validate checks the settings
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(ValidationErrors, 0, len(verrs))
	for _, e := range verrs {
		// drop the leading "Config."
		field := e.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}
		out = append(out, FieldError{Field: field, Message: validationMessage(e)})
	}
	return out
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "gte":
		return fmt.Sprintf("must be >= %s", e.Param())
	case "hostname_port":
		return "must be in format 'host:port'"
	case "store_uri":
		return fmt.Sprintf("must be a URI with one of the schemes: %s", strings.Join(registry.Schemes(), ", "))
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}
