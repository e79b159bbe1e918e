// Package validation turns binding failures into the ordered field errors the
// API reports. Only the first error reaches the client.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"blog/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const atLeastOneTag = "at_least_one"

type FieldError struct {
	Field   string
	Message string
}

// Error is a validation failure with one entry per failing field, in the
// order the validator reported them.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return "Validation error"
	}
	first := e.Fields[0]
	return fmt.Sprintf("Error in %s: %s", first.Field, first.Message)
}

func NewError(field, message string) *Error {
	return &Error{Fields: []FieldError{{Field: field, Message: message}}}
}

// Setup registers the JSON field naming and struct level rules on gin's
// validator engine. Call it once before serving requests.
func Setup() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("validation: gin validator engine is not go-playground/validator")
	}
	Register(v)
	return nil
}

func Register(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonFieldName)
	v.RegisterStructValidation(postUpdateAtLeastOne, models.PostUpdate{})
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func postUpdateAtLeastOne(sl validator.StructLevel) {
	req := sl.Current().Interface().(models.PostUpdate)
	if req.Title == nil && req.Content == nil {
		sl.ReportError(req.Title, "body", "Body", atLeastOneTag, "")
	}
}

// Translate converts an error returned by gin's ShouldBind* into *Error.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := &Error{Fields: make([]FieldError, 0, len(verrs))}
		for _, fe := range verrs {
			out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: message(fe)})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return NewError(field, "Input should be a valid "+typeName(typeErr.Type))
	}

	if errors.Is(err, io.EOF) {
		return NewError("body", "Field required")
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return NewError("body", "Input should be a valid JSON object")
	}

	return NewError("body", err.Error())
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Field required"
	case "min":
		return fmt.Sprintf("String should have at least %s %s", fe.Param(), plural(fe.Param(), "character"))
	case "max":
		return fmt.Sprintf("String should have at most %s %s", fe.Param(), plural(fe.Param(), "character"))
	case atLeastOneTag:
		return "At least one of 'title' or 'content' must be provided."
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

func plural(n, word string) string {
	if n == "1" {
		return word
	}
	return word + "s"
}

func typeName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Struct, reflect.Map:
		return "dictionary"
	default:
		return t.String()
	}
}
