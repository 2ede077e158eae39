package service

import (
	"errors"
	"gorm.io/gorm"
)

var (
	ErrNonRetryable         = errors.New("non-retryable error")
	ErrInvalidInput         = errors.New("invalid input")
	ErrUnauthenticated      = errors.New("unauthenticated")
	ErrForbidden            = errors.New("forbidden")
	ErrJobNotFound          = errors.New("job not found")
	ErrStatusNotFound       = errors.New("job status not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrMemberNotFound       = errors.New("user is not assigned to the job")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrStatusConflict       = errors.New("job status was changed by someone else")
	ErrPreferenceConflict   = errors.New("preference was changed by someone else")
	ErrJobNumberConflict    = errors.New("job number is taken")
	ErrTransitionNotAllowed = errors.New("status transition not allowed")
	ErrInvalidStatusGraph   = errors.New("invalid job status graph")
)

// notFound maps gorm's missing-row error to the domain error and passes
// anything else through.
func notFound(err error, domainErr error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr
	}
	return err
}
