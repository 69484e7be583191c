package relay

import "net/http"

// StatusPolicy turns the external endpoint's response status into an outcome.
// A nil return means the submission was accepted.
type StatusPolicy func(status int) error

// DefaultStatusPolicy accepts explicit success and redirect statuses. The Apps Script
// web app answers a processed POST with a 302 to its content URL.
func DefaultStatusPolicy(status int) error {
	switch {
	case status >= http.StatusOK && status < http.StatusMultipleChoices:
		return nil
	case status >= http.StatusMultipleChoices && status < http.StatusBadRequest:
		return nil
	case status >= http.StatusInternalServerError:
		return &StatusError{StatusCode: status, kind: ErrExternalServer}
	default:
		return &StatusError{StatusCode: status, kind: ErrUnexpectedStatus}
	}
}
