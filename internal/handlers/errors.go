package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/fx_wallet_backend/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError writes {"error": ...} with the status mapped from err.
func respondError(c *gin.Context, logger *slog.Logger, err error, msg string) {
	status := apperrors.StatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Error(msg, slog.String("error", err.Error()))
	} else {
		logger.Warn(msg, slog.String("error", err.Error()))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// bindingMessage turns a binding failure into a short message naming the field.
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request format: " + err.Error()
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "currency_code":
		return fe.Field() + " must be a 3-letter currency code"
	case "nefield":
		return fe.Field() + " must differ from " + fe.Param()
	case "min", "max":
		return fe.Field() + " is out of range"
	default:
		return "Invalid request format: " + err.Error()
	}
}
