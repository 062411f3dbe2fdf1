package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/telshop/backoffice/internal/auth"
	catalogdomain "github.com/telshop/backoffice/internal/catalog/domain"
	ordersdomain "github.com/telshop/backoffice/internal/orders/domain"
)

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNotFound        = errors.New("not_found")
	ErrTooManyAttempts = errors.New("too_many_attempts")
)

// BadRequestError carries a caller-facing message for a 400 response.
type BadRequestError struct {
	Msg string
}

func (e *BadRequestError) Error() string { return e.Msg }

func badRequest(msg string) error {
	return &BadRequestError{Msg: msg}
}

// ErrorHandlingMiddleware maps errors recorded on the context to the wire
// format after the handler chain runs. Bodies are flat {"error": ...} objects.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, message := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, gin.H{"error": message})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, string) {
	var badReq *BadRequestError
	switch {
	case errors.As(err, &badReq):
		return http.StatusBadRequest, badReq.Msg
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidSession),
		errors.Is(err, auth.ErrSessionExpired):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, ErrTooManyAttempts):
		return http.StatusTooManyRequests, "too many attempts"
	case errors.Is(err, ErrNotFound),
		errors.Is(err, catalogdomain.ErrNotFound),
		errors.Is(err, ordersdomain.ErrNotFound):
		return http.StatusNotFound, "not found"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
