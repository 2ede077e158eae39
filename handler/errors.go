package handler

import (
	"errors"
	"job-dashboard/service"
	"net/http"
)

// ErrStatusMap maps service errors to HTTP status codes. Anything not listed
// is a 500.
var ErrStatusMap = map[error]int{
	service.ErrInvalidInput:         http.StatusBadRequest,
	service.ErrUnauthenticated:      http.StatusUnauthorized,
	service.ErrForbidden:            http.StatusForbidden,
	service.ErrJobNotFound:          http.StatusNotFound,
	service.ErrStatusNotFound:       http.StatusNotFound,
	service.ErrUserNotFound:         http.StatusNotFound,
	service.ErrMemberNotFound:       http.StatusNotFound,
	service.ErrNotificationNotFound: http.StatusNotFound,
	service.ErrStatusConflict:       http.StatusConflict,
	service.ErrPreferenceConflict:   http.StatusConflict,
	service.ErrJobNumberConflict:    http.StatusConflict,
	service.ErrTransitionNotAllowed: http.StatusUnprocessableEntity,
}

func StatusOf(err error) int {
	for knownErr, statusCode := range ErrStatusMap {
		if errors.Is(err, knownErr) {
			return statusCode
		}
	}
	return http.StatusInternalServerError
}
