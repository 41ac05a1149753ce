package storefront

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/storefront-backend/internal/domain"
	"github.com/heartmarshall/storefront-backend/internal/theme"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator for section settings.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("layout", func(fl validator.FieldLevel) bool {
			return domain.LayoutVariant(fl.Field().String()).IsValid()
		})

		_ = v.RegisterValidation("status", func(fl validator.FieldLevel) bool {
			return domain.Status(fl.Field().String()).IsValid()
		})

		// Only #rrggbb resolves to a colour; shorter forms would fall back to gray.
		_ = v.RegisterValidation("hex6", func(fl validator.FieldLevel) bool {
			c := fl.Field().String()
			return c == strings.TrimSpace(c) && theme.BaseHex(c) != ""
		})

		_ = v.RegisterValidation("fontfamily", func(fl validator.FieldLevel) bool {
			return theme.IsFontFamily(fl.Field().String())
		})

		_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			_, ok := theme.Lookup(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// validateSettings checks roadmap settings and reports every failing field.
func validateSettings(prefix string, s domain.RoadmapSettings) []domain.FieldError {
	err := validatorInstance().Struct(s)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return []domain.FieldError{{Field: prefix, Message: err.Error()}}
	}

	out := make([]domain.FieldError, 0, len(ves))
	for _, fe := range ves {
		out = append(out, domain.FieldError{
			Field:   prefix + "." + fieldName(fe),
			Message: tagMessage(fe),
		})
	}
	return out
}

// fieldName drops the struct name from the namespace: "RoadmapSettings.cardOpacity" -> "cardOpacity".
func fieldName(fe validator.FieldError) string {
	_, rest, ok := strings.Cut(fe.Namespace(), ".")
	if !ok {
		return fe.Field()
	}
	return rest
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "hex6":
		return "must be a #rrggbb colour"
	case "fontfamily":
		return "must be a list of font names"
	case "layout":
		return "unknown layout"
	case "status":
		return "unknown status"
	case "theme":
		return "unknown theme"
	case "url":
		return "must be a URL"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	}
	return "failed " + fe.Tag() + " validation"
}
