package dto

import (
	"errors"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen/recipe-service/internal/domain"
)

// FieldErrors maps request fields, by their query or JSON name, to what is
// wrong with them. It matches domain.ErrValidation.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	parts := make([]string, 0, len(f))
	for _, name := range slices.Sorted(maps.Keys(f)) {
		parts = append(parts, name+" "+f[name])
	}

	return "invalid request: " + strings.Join(parts, "; ")
}

func (FieldErrors) Unwrap() error {
	return domain.ErrValidation
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(paramName)

	_ = v.RegisterValidation("sortmode", func(fl validator.FieldLevel) bool {
		return domain.SortMode(fl.Field().String()).Valid()
	})

	return v
}

// paramName names a field by its query parameter, falling back to its JSON key.
func paramName(fld reflect.StructField) string {
	for _, key := range [...]string{"form", "json"} {
		name, _, _ := strings.Cut(fld.Tag.Get(key), ",")

		switch name {
		case "":
			continue
		case "-":
			return ""
		default:
			return name
		}
	}

	return fld.Name
}

// Validate checks v against its validate tags. Failures come back as FieldErrors.
func Validate(v any) error {
	err := validate.Struct(v)

	var failures validator.ValidationErrors
	if !errors.As(err, &failures) {
		return err
	}

	fields := make(FieldErrors, len(failures))
	for _, fe := range failures {
		fields[fe.Field()] = describe(fe)
	}

	return fields
}

// BindQuery decodes the query string into v and validates it. A parameter
// that does not parse fails the request as a whole.
func BindQuery(c *gin.Context, v any) error {
	if err := c.ShouldBindQuery(v); err != nil {
		return domain.Invalid("", "malformed query parameters")
	}

	return Validate(v)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte", "min":
		return "must be at least " + fe.Param()
	case "lte", "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "sortmode":
		return "must be one of: " + strings.Join(sortModeNames(), ", ")
	default:
		return "fails " + fe.Tag()
	}
}

func sortModeNames() []string {
	modes := domain.SortModes()

	names := make([]string, 0, len(modes))
	for _, m := range modes {
		names = append(names, string(m))
	}

	return names
}
