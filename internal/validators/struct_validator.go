package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-family-tree/models"
	"github.com/go-playground/validator/v10"
)

// Custom tags registered by NewStructValidator.
const (
	TagRelationshipType = "relationship_type"
	TagProjectStatus    = "project_status"
	TagGender           = "gender"
)

// StructValidator validates structs by their `validate` tags.
// It is safe for concurrent use.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator returns a validator that reports fields by their JSON
// names and knows the domain enum tags.
func NewStructValidator() *StructValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation(TagRelationshipType, func(fl validator.FieldLevel) bool {
		_, err := models.ParseRelationshipType(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation(TagProjectStatus, func(fl validator.FieldLevel) bool {
		_, err := models.ParseProjectStatus(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation(TagGender, func(fl validator.FieldLevel) bool {
		_, err := models.ParseGender(fl.Field().String())
		return err == nil
	})

	return &StructValidator{validate: v}
}

// Validate checks value (a struct or pointer to struct). When fields are
// given only those top-level fields are checked.
func (v *StructValidator) Validate(ctx context.Context, value any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, value, fields...)
	} else {
		err = v.validate.StructCtx(ctx, value)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	out := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields[fieldPath(fe)] = message(fe)
	}
	return out
}

// fieldPath strips the root struct name from the error namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must contain at least %s items", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must contain at most %s items", fe.Param())
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "nefield":
		return "must differ from " + fe.Param()
	case TagRelationshipType:
		return "must be a known relationship type"
	case TagProjectStatus:
		return "must be one of: ACTIVE, ON_HOLD, COMPLETED, ARCHIVED"
	case TagGender:
		return "must be one of: MALE, FEMALE, OTHER, UNKNOWN"
	default:
		return "is invalid (" + fe.Tag() + ")"
	}
}
