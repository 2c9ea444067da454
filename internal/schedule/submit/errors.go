package submit

import "errors"

var (
	ErrDraftInvalid       = errors.New("draft failed validation")
	ErrSubmissionInFlight = errors.New("submission already in flight")
	ErrClosed             = errors.New("submission controller is closed")
)
