package service

import (
	"errors"
	"net/http"
)

// Error is a service failure with the HTTP status it should surface as.
// Anything a handler receives that is not an *Error becomes a generic 500.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

func NewError(status int, msg string) *Error { return &Error{Status: status, Message: msg} }

func BadRequest(msg string) *Error   { return NewError(http.StatusBadRequest, msg) }
func Unauthorized(msg string) *Error { return NewError(http.StatusUnauthorized, msg) }
func Forbidden(msg string) *Error    { return NewError(http.StatusForbidden, msg) }
func NotFound(msg string) *Error     { return NewError(http.StatusNotFound, msg) }
func Conflict(msg string) *Error     { return NewError(http.StatusConflict, msg) }

// StatusOf returns the HTTP status for err and whether it carried one.
func StatusOf(err error) (int, bool) {
	var se *Error
	if errors.As(err, &se) {
		return se.Status, true
	}
	return 0, false
}
