package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
var ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource"}

// Reservation error kinds. Services return these sentinels (possibly
// wrapped); handlers translate them into coded failures for the response
// envelope. Business rejections and contention are deliberately distinct:
// ErrVersionConflict means retries were exhausted under load, not that the
// slot is unavailable.
var (
	ErrInvalidParameters    = errors.New("invalid parameters")
	ErrInsufficientCapacity = errors.New("insufficient capacity")
	ErrVersionConflict      = errors.New("slot version conflict")
	ErrSlotVersion          = errors.New("slot version storage error")
	ErrNoPlanFound          = errors.New("no table plan found")
	ErrAssignmentConflict   = errors.New("table assignment conflict")
)

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// Unimplemented returns a new Failure with code for unimplemented method.
func Unimplemented(methodName string) error {
	return &Failure{
		Code:    http.StatusNotImplemented,
		Message: methodName,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// UnprocessableEntity returns a new Failure for requests that are well
// formed but cannot be satisfied, such as a full slot.
func UnprocessableEntity(message string) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// FromReservationError maps the reservation sentinels onto coded failures.
// Unknown errors pass through unchanged so chains built with %w keep their
// HTTP code when one is already attached.
func FromReservationError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrInvalidParameters):
		return BadRequestFromString(err.Error())
	case errors.Is(err, ErrInsufficientCapacity), errors.Is(err, ErrNoPlanFound):
		return UnprocessableEntity(err.Error())
	case errors.Is(err, ErrVersionConflict), errors.Is(err, ErrAssignmentConflict):
		return Conflict(err.Error())
	case errors.Is(err, ErrSlotVersion):
		return InternalError(fmt.Errorf("capacity ledger unavailable: %w", err))
	default:
		return err
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
