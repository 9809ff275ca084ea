package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/foodandhunger/backend/internal/system/error/serviceerror"
)

var registerTagNames sync.Once

// useJSONFieldNames makes validation errors report the JSON field name
// ("organizationName") instead of the Go field name.
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})
	})
}

// BindJSON decodes and validates the request body into dest.
func BindJSON(c *gin.Context, dest interface{}) *serviceerror.ServiceError {
	useJSONFieldNames()

	if err := c.ShouldBindJSON(dest); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return serviceerror.CustomServiceError(
				serviceerror.ValidationError,
				FormatValidationErrors(validationErrs),
			)
		}
		return serviceerror.CustomServiceError(
			serviceerror.InvalidRequestError,
			"invalid request body",
		)
	}
	return nil
}

// FormatValidationErrors turns validator errors into a single readable sentence.
func FormatValidationErrors(errs validator.ValidationErrors) string {
	messages := make([]string, 0, len(errs))
	for _, fe := range errs {
		messages = append(messages, describeFieldError(fe))
	}
	return strings.Join(messages, "; ")
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
