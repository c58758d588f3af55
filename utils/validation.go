package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ValidateRequest checks obj against its `binding` tags with gin's validator, the same rules
// ShouldBindJSON applies, and reports the first failing field as a validation error.
func ValidateRequest(obj interface{}) error {
	err := binding.Validator.ValidateStruct(obj)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &AppError{Kind: KindValidation, Message: fieldMessage(verrs[0]), Err: err}
	}
	return &AppError{Kind: KindValidation, Message: "Invalid request", Err: err}
}

// ValidationMessage renders a binding failure for clients.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fieldMessage(verrs[0])
	}
	return "Invalid request body"
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Please provide a valid email"
	case "len":
		return fmt.Sprintf("%s must be %s characters long", field, fe.Param())
	case "numeric":
		return fmt.Sprintf("%s must contain only digits", field)
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), "'", ""))
	}
	return fmt.Sprintf("%s is invalid", field)
}
