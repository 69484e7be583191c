package domain

import "errors"

var (
	ErrSubmitInFlight  = errors.New("submission already in flight")
	ErrSubmitFailed    = errors.New("submission failed")
	ErrUnknownField    = errors.New("unknown form field")
	ErrInvalidFieldVal = errors.New("invalid value for form field")
)
