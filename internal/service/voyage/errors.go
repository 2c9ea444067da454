package voyage

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidPort           = errors.New("invalid port")
	ErrSamePorts             = errors.New("port of discharge equals port of loading")

	ErrUnknownVessel   = errors.New("unknown vessel")
	ErrUnknownUnitType = errors.New("unknown unit type")
)
