package apperrors

import "errors"

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrEventFull           = errors.New("event is fully booked")
	ErrInvalidInput        = errors.New("invalid input")
	ErrEventDateNotFuture  = errors.New("event date must be in the future")
	ErrNotificationFailed  = errors.New("failed to send confirmation email")
	ErrInternalServerError = errors.New("internal server error")
)
