package v1

import (
	"errors"
	"net/http"

	"github.com/centsible/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no transaction matching your query"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrNotOwned):
		return http.StatusForbidden
	case errors.Is(err, models.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, errNoSession), errors.Is(err, errSessionInvalid), errors.Is(err, errCredentialsInvalid):
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}

// Session errors
var (
	errNoSession          = errors.New("you must be logged in for this request")
	errSessionInvalid     = errors.New("your session is invalid or expired, please log in again")
	errCredentialsInvalid = errors.New("the email or password is incorrect")
)

// Import errors
var (
	errNoFilePost = errors.New("you must send a file to this endpoint")
)
