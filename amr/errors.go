package amr

import "errors"

// Conversion failures. All of them are fatal to a run; callers match with errors.Is.
var (
	ErrInvalidThickness        = errors.New("thickness must be a positive cell count")
	ErrAlreadyThreeDimensional = errors.New("source hierarchy is already three dimensional")
	ErrInconsistentHierarchy   = errors.New("inconsistent hierarchy")
	ErrSourceRead              = errors.New("source read failure")
	ErrDestinationWrite        = errors.New("destination write failure")
	ErrInvalidOption           = errors.New("invalid option")
	ErrNotOwner                = errors.New("box is not owned by this unit")
)
