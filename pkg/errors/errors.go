package errors

import (
	"net/http"

	"github.com/tsel-ticketmaster/tm-catalog/pkg/status"
)

// ApplicationError carries the HTTP status code and status word alongside
// the message so handlers can map failures without type switching.
type ApplicationError struct {
	HTTPStatusCode int
	Status         string
	Message        string
}

func (e ApplicationError) Error() string {
	return e.Message
}

func New(httpStatusCode int, status string, message string) error {
	return ApplicationError{
		HTTPStatusCode: httpStatusCode,
		Status:         status,
		Message:        message,
	}
}

// Destruct unwraps err into an ApplicationError, defaulting to an internal
// server error for anything unrecognized.
func Destruct(err error) ApplicationError {
	if ae, ok := err.(ApplicationError); ok {
		return ae
	}

	return ApplicationError{
		HTTPStatusCode: http.StatusInternalServerError,
		Status:         status.INTERNAL_SERVER_ERROR,
		Message:        err.Error(),
	}
}
