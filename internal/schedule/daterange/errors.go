package daterange

import "errors"

var (
	ErrPastDay         = errors.New("day is before the minimum selectable day")
	ErrUnknownEndpoint = errors.New("unknown range endpoint")
)
