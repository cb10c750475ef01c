package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	creditDomain "loanbridge/internal/domain/credit"
	loanDomain "loanbridge/internal/domain/loan"
	userDomain "loanbridge/internal/domain/user"
	"loanbridge/internal/usecase/auth"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// writeError maps domain errors to transport codes per the taxonomy:
// validation / invalid state / incomplete profile → 400, bad credentials
// → 401, wrong party → 403, missing record → 404, everything else → 500
// with a generic body (details go to the log only).
func writeError(c echo.Context, log *logrus.Logger, err error) error {
	var stateErr *loanDomain.StateError
	switch {
	case errors.Is(err, loanDomain.ErrValidation),
		errors.Is(err, userDomain.ErrProfileIncomplete),
		errors.Is(err, userDomain.ErrEmailTaken),
		errors.Is(err, userDomain.ErrInvalidRole):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.As(err, &stateErr):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: stateErr.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loanDomain.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, userDomain.ErrNotFound),
		errors.Is(err, creditDomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	}
	log.WithError(err).WithField("path", c.Path()).Error("internal error")
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// parseDate parses an optional YYYY-MM-DD field already checked by the
// validator; empty input yields nil.
func parseDate(s string) *time.Time {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}
