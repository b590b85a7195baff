package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/siwes/interntrack/internal/app/models/dto"
)

// HandleValidationError converts a binding error into an error detail. The first failing field is reported.
func HandleValidationError(err error) *dto.ErrorDetail {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fields := make(map[string]string, len(validationErrors))
		for _, fe := range validationErrors {
			fields[fe.Field()] = formatValidationError(fe)
		}
		first := validationErrors[0]
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, formatValidationError(first)).
			WithField(first.Field()).
			WithDetails(fields)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type)).
			WithField(typeErr.Field)
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Malformed JSON body")
	}

	return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
}

// AbortWithValidationError writes a 400 for a binding error
func AbortWithValidationError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(HandleValidationError(err)))
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gte":
		return e.Field() + " must be greater than or equal to " + e.Param()
	case "lte":
		return e.Field() + " must be less than or equal to " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "role":
		return e.Field() + " must be a staff role"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
