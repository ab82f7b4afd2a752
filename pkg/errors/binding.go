package errors

import (
	"encoding/json"
	stdErrors "errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const msgInvalidRequest = "invalid request"

var fieldNamesOnce sync.Once

// UseRequestFieldNames makes gin's validator report fields by their json or
// form name instead of the Go field name. Safe to call more than once.
func UseRequestFieldNames() {
	fieldNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(requestFieldName)
	})
}

func requestFieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return ""
}

// NewBindingError turns a gin bind failure into a validation error naming
// every offending field. Failures that carry no field, like malformed JSON,
// are reported against source ("body" or "query").
func NewBindingError(err error, source string) *HTTPError {
	var vErrs validator.ValidationErrors
	if stdErrors.As(err, &vErrs) {
		fields := make([]string, 0, len(vErrs))
		for _, fe := range vErrs {
			fields = append(fields, fe.Field())
		}
		return NewValidationError(msgInvalidRequest, fields)
	}

	var typeErr *json.UnmarshalTypeError
	if stdErrors.As(err, &typeErr) && typeErr.Field != "" {
		return NewValidationError(msgInvalidRequest, []string{typeErr.Field})
	}

	return NewValidationError(msgInvalidRequest+" "+source, []string{source})
}
