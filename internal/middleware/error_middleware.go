package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/siwes/interntrack/internal/app/models/dto"
	"github.com/siwes/interntrack/internal/pkg/apperrors"
	"github.com/siwes/interntrack/internal/pkg/logger"
)

type errorKind struct {
	kind    error
	status  int
	code    dto.ErrorCode
	message string
}

// kinds in match order
var errorKinds = []errorKind{
	{apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"},
	{apperrors.ErrBadRequest, http.StatusBadRequest, dto.ErrorCodeBadRequest, "Bad request"},
	{apperrors.ErrResourceNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"},
	{apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied"},
	{apperrors.ErrConflict, http.StatusConflict, dto.ErrorCodeConflict, "Conflict"},
	{apperrors.ErrPreconditionFailed, http.StatusPreconditionFailed, dto.ErrorCodePrecondition, "Precondition failed"},
}

// HandleAPIError writes the error envelope for err. Domain errors keep their own code and message.
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorResponse(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Str("method", c.Request.Method).Msg("Unhandled error")
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func errorResponse(err error) (int, *dto.ErrorDetail) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid email or password")
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenNotFound):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeTokenNotFound, "Token not found")
	case errors.Is(err, apperrors.ErrTokenRevoked):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Token revoked")
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrAccountDisabled):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeAccountDisabled, "Account is disabled")
	}

	for _, k := range errorKinds {
		if !errors.Is(err, k.kind) {
			continue
		}
		detail := dto.NewErrorDetail(k.code, k.message)

		var custom *apperrors.CustomError
		if errors.As(err, &custom) {
			if custom.Code != "" {
				detail.Code = dto.ErrorCode(custom.Code)
			}
			if custom.Message != "" {
				detail.Message = custom.Message
			}
			if field, ok := custom.Details["field"].(string); ok {
				detail.Field = field
			}
		}
		return k.status, detail
	}

	return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
}
