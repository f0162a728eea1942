package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotLoggedIn    = http.StatusUnauthorized
	ErrStatusNoPermission   = http.StatusUnauthorized
	ErrStatusNotFound       = http.StatusBadRequest
)

// Error messages are an exact wire contract, down to punctuation. The two
// not-found messages really do differ between the read and write paths, and
// not-found is surfaced as 400 rather than 404.
var (
	ErrInternalServer = errors.New("Internal server error")
	ErrClient         = errors.New("Bad request")
	ErrNotLoggedIn    = errors.New("Unauthorized access")
	ErrUserIDNotFound = errors.New("User ID doesn't exist")
	ErrUserNotFound   = errors.New("User ID does not exist.")
	ErrNoPermission   = errors.New("You don't have permission to perform this request.")
	ErrDeleteDenied   = errors.New("Permission error")
)

var errorMap = map[error]int{
	ErrInternalServer: ErrStatusInternalServer,
	ErrClient:         ErrStatusClient,
	ErrNotLoggedIn:    ErrStatusNotLoggedIn,
	ErrUserIDNotFound: ErrStatusNotFound,
	ErrUserNotFound:   ErrStatusNotFound,
	ErrNoPermission:   ErrStatusNoPermission,
	ErrDeleteDenied:   ErrStatusNoPermission,
}

func GetErrorStatusCode(err error) int {
	if errStatusCode, ok := errorMap[err]; ok {
		return errStatusCode
	}
	for sentinel, errStatusCode := range errorMap {
		if errors.Is(err, sentinel) {
			return errStatusCode
		}
	}
	return ErrStatusInternalServer
}
