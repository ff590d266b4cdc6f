package core

import "errors"

// Error kinds raised by the pipeline. Callers match them with errors.Is;
// producers wrap them with the violated precondition.
var (
	// ErrInvalidCylinderCount is returned when a cylinder count is below the
	// layout's minimum or the bank cylinder indices leave gaps.
	ErrInvalidCylinderCount = errors.New("invalid cylinder count")

	// ErrInvalidLayoutStyle is returned for an unrecognized layout token.
	ErrInvalidLayoutStyle = errors.New("invalid layout style")

	// ErrUnknownFuelType is returned when a fuel name is not in the table.
	ErrUnknownFuelType = errors.New("unknown fuel type")

	// ErrOrphanCylinder is returned when a firing-order entry is not owned
	// by any bank.
	ErrOrphanCylinder = errors.New("cylinder not assigned to any bank")

	// ErrDuplicateCylinder is returned when a cylinder is listed in more
	// than one bank, or twice in the same bank.
	ErrDuplicateCylinder = errors.New("cylinder assigned to more than one bank")

	// ErrMalformedFiringOrder is returned when a firing order is not a
	// permutation of 0..N-1.
	ErrMalformedFiringOrder = errors.New("malformed firing order")

	// ErrInvalidParams is returned when scalar engine parameters are out of range.
	ErrInvalidParams = errors.New("invalid engine parameters")

	// ErrOutputWrite is returned when the output artifact could not be
	// written. No usable artifact exists when it is returned.
	ErrOutputWrite = errors.New("output write failure")
)
