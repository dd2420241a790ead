package apperrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors for the service. Handlers never map status codes themselves;
// the Fiber error handler translates these into HTTP responses.
var (
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateEntity    = errors.New("duplicate entity")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUpstream           = errors.New("upstream provider failure")
)

// Validation returns a field-level validation error.
func Validation(format string, args ...interface{}) error {
	return errors.Wrap(ErrValidation, fmt.Sprintf(format, args...))
}

// Duplicate reports a uniqueness-constraint violation on the named field.
func Duplicate(entity, field string) error {
	return errors.Wrapf(ErrDuplicateEntity, "%s with this %s already exists", entity, field)
}

// NotFound reports a lookup miss for the named entity.
func NotFound(entity string) error {
	return errors.Wrapf(ErrNotFound, "%s not found", entity)
}

// Upstream wraps a third-party provider failure.
func Upstream(provider string, err error) error {
	return errors.Wrapf(ErrUpstream, "%s: %v", provider, err)
}

func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

func IsDuplicate(err error) bool { return errors.Is(err, ErrDuplicateEntity) }

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrInvalidToken)
}

func IsUpstream(err error) bool { return errors.Is(err, ErrUpstream) }
