package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainerrors "bookrack.backend/internal/domain/errors"
	"bookrack.backend/pkg/logger"
)

// CodeSuccess is the envelope code for successful responses
const CodeSuccess = "success"

// Success sends the uniform envelope {code, message, value}
func Success(c *gin.Context, status int, message string, value interface{}) {
	body := gin.H{
		"code":    CodeSuccess,
		"message": message,
	}
	if value != nil {
		body["value"] = value
	}
	c.JSON(status, body)
}

// Error maps an error to the envelope via a fixed kind-to-status table.
// Unknown errors collapse to a generic 500 and are logged with context.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		switch {
		case errors.Is(err, domainerrors.ErrNotFound):
			appErr = domainerrors.NotFound("resource not found")
		case errors.Is(err, domainerrors.ErrAlreadyExists), errors.Is(err, domainerrors.ErrInvalidInput):
			appErr = domainerrors.UnprocessableEntity(err.Error())
		case errors.Is(err, domainerrors.ErrInvalidCredentials), errors.Is(err, domainerrors.ErrUnauthorized):
			appErr = domainerrors.Unauthorized("unauthorized")
		case errors.Is(err, domainerrors.ErrEmailNotVerified):
			appErr = domainerrors.EmailNotVerified(err.Error())
		case errors.Is(err, domainerrors.ErrAlreadyVerified):
			appErr = domainerrors.AlreadyVerified(err.Error())
		default:
			appErr = domainerrors.InternalError(err)
		}
	}

	if appErr.Status == http.StatusInternalServerError {
		logger.Error(c.Request.Context(), "request failed with internal error",
			zap.String("path", c.Request.URL.Path), zap.Error(appErr))
	}

	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}
