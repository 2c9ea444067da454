package form

import "errors"

var (
	ErrReferenceDataNotLoaded = errors.New("reference data not loaded")
	ErrUnknownVessel          = errors.New("vessel id is not in the loaded reference data")
	ErrUnknownUnitType        = errors.New("unit type id is not in the loaded reference data")
)
