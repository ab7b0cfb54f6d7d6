package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// StructOption customises a struct schema.
type StructOption func(*structSchema)

// WithValidation registers a custom validator tag for the schema. message is
// a template where {field} and {param} are substituted.
func WithValidation(tag string, fn validator.Func, message string) StructOption {
	return func(s *structSchema) {
		s.custom[tag] = fn
		if message != "" {
			s.messages[tag] = message
		}
	}
}

// WithMessage overrides the message template for a built-in tag.
func WithMessage(tag, message string) StructOption {
	return func(s *structSchema) {
		s.messages[tag] = message
	}
}

type structSchema struct {
	v        *validator.Validate
	custom   map[string]validator.Func
	messages map[string]string
	initErr  error
}

// Struct builds a schema validating structs annotated with `validate` tags.
// Issue paths use yaml field names when present.
func Struct(opts ...StructOption) Schema {
	s := &structSchema{
		custom:   map[string]validator.Func{},
		messages: map[string]string{},
	}
	for _, opt := range opts {
		opt(s)
	}
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)
	for tag, fn := range s.custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			s.initErr = errors.Wrapf(err, "register %q", tag)
			break
		}
	}
	s.v = v
	return s
}

func (s *structSchema) SafeParse(value any) (result Result) {
	if s.initErr != nil {
		return Result{Issues: []Issue{{Code: "invalid_schema", Message: s.initErr.Error()}}}
	}
	defer func() {
		if r := recover(); r != nil {
			result = Result{Issues: []Issue{{Code: "invalid_schema", Message: fmt.Sprintf("validation panicked: %v", r)}}}
		}
	}()
	err := s.v.Struct(value)
	if err == nil {
		return Result{Success: true}
	}
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return Result{Issues: []Issue{{Code: "invalid_type", Message: fmt.Sprintf("expected a struct, got %T", value)}}}
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Result{Issues: []Issue{{Code: "unknown", Message: err.Error()}}}
	}
	issues := make([]Issue, 0, len(verrs))
	for _, fe := range verrs {
		path := trimRoot(fe.Namespace())
		issues = append(issues, Issue{
			Path:    path,
			Code:    fe.Tag(),
			Message: s.message(path, fe.Tag(), fe.Param()),
		})
	}
	return Result{Issues: issues}
}

func (s *structSchema) message(field, tag, param string) string {
	if tmpl, ok := s.messages[tag]; ok {
		return strings.NewReplacer("{field}", field, "{param}", param).Replace(tmpl)
	}
	return describe(field, tag, param)
}

func fieldName(fld reflect.StructField) string {
	for _, key := range []string{"yaml", "toml"} {
		name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			continue
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

func trimRoot(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}
