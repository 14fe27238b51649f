// Package validation turns request bodies into typed DTOs and reports every
// violated field at once.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Mayuushi/freedom-wall-music/internal/models"
)

var ErrInvalidJSON = errors.New("invalid JSON body")

// Error is a field-keyed validation failure. Nested fields use dotted paths
// ("youtube.url"); problems with the body as a whole go to FormErrors.
type Error struct {
	FormErrors  []string            `json:"formErrors"`
	FieldErrors map[string][]string `json:"fieldErrors"`
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.FormErrors)+len(e.FieldErrors))
	parts = append(parts, e.FormErrors...)
	keys := make([]string, 0, len(e.FieldErrors))
	for k := range e.FieldErrors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.FieldErrors[k], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *Error) AddField(field, msg string) {
	if e.FieldErrors == nil {
		e.FieldErrors = map[string][]string{}
	}
	e.FieldErrors[field] = append(e.FieldErrors[field], msg)
}

func (e *Error) AddForm(msg string) {
	e.FormErrors = append(e.FormErrors, msg)
}

func (e *Error) empty() bool {
	return len(e.FormErrors) == 0 && len(e.FieldErrors) == 0
}

func newError() *Error {
	return &Error{FormErrors: []string{}, FieldErrors: map[string][]string{}}
}

// messages overrides the generic text for a specific field and tag.
var messages = map[string]string{
	"name.required_if": "Name is required when not posting anonymously.",
	"message.required": "Message is required",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("reaction", func(fl validator.FieldLevel) bool {
		return models.IsReactionType(fl.Field().String())
	})
	return v
}

type trimmer interface {
	Trim()
}

// Bind decodes body into dst, trims it and validates it. The result is
// ErrInvalidJSON (wrapped) for unparseable input, *Error for shape problems,
// or nil.
func Bind(body []byte, dst any) error {
	verr := newError()
	if err := decode(body, dst, verr); err != nil {
		return err
	}
	if t, ok := dst.(trimmer); ok {
		t.Trim()
	}
	collect(validate.Struct(dst), verr)
	if verr.empty() {
		return nil
	}
	return verr
}

func decode(body []byte, dst any, verr *Error) error {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil
	}
	err := json.Unmarshal(body, dst)
	if err == nil {
		return nil
	}
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		msg := fmt.Sprintf("Expected %s, received %s", jsonKind(te.Type), jsonValueKind(te.Value))
		if te.Field == "" {
			verr.AddForm(msg)
		} else {
			verr.AddField(te.Field, msg)
		}
		return nil
	}
	return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
}

func collect(err error, verr *Error) {
	if err == nil {
		return
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		verr.AddForm(err.Error())
		return
	}
	if isTypeMessage(verr.FormErrors) {
		return
	}
	for _, fe := range ves {
		field := fieldPath(fe.Namespace())
		if hasTypeError(verr, field) {
			continue
		}
		verr.AddField(field, message(field, fe))
	}
}

// hasTypeError reports whether field or one of its parents failed to decode.
// Rules below a mistyped value describe a zero value nobody sent.
func hasTypeError(verr *Error, field string) bool {
	for p := field; ; {
		if isTypeMessage(verr.FieldErrors[p]) {
			return true
		}
		i := strings.LastIndex(p, ".")
		if i < 0 {
			return false
		}
		p = p[:i]
	}
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	_, rest, ok := strings.Cut(ns, ".")
	if !ok {
		return ns
	}
	return rest
}

func message(field string, fe validator.FieldError) string {
	if m, ok := messages[field+"."+fe.Tag()]; ok {
		return m
	}
	switch fe.Tag() {
	case "required", "required_if":
		return "Required"
	case "min":
		return fmt.Sprintf("String must contain at least %s character(s)", fe.Param())
	case "max":
		return fmt.Sprintf("String must contain at most %s character(s)", fe.Param())
	case "url":
		return "Invalid url"
	case "reaction":
		opts := make([]string, 0, len(models.ReactionTypes))
		for _, t := range models.ReactionTypes {
			opts = append(opts, "'"+string(t)+"'")
		}
		return "Invalid enum value. Expected " + strings.Join(opts, " | ")
	}
	return "Invalid value"
}

func isTypeMessage(msgs []string) bool {
	for _, m := range msgs {
		if strings.HasPrefix(m, "Expected ") {
			return true
		}
	}
	return false
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "unknown"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct, reflect.Map:
		return "object"
	}
	return t.Kind().String()
}

func jsonValueKind(v string) string {
	if v == "bool" {
		return "boolean"
	}
	return v
}
