package adev

import (
	"errors"

	"github.com/sartorproj/goallan/phase"
)

var (
	// ErrInsufficientData indicates that no second difference can be formed
	// for the requested averaging factor.
	ErrInsufficientData = errors.New("adev: insufficient data for averaging factor")

	// ErrInvalidArgument indicates an averaging factor or stride below one.
	ErrInvalidArgument = errors.New("adev: averaging factor and stride must be positive")

	// ErrLengthMismatch indicates parallel result slices of different lengths.
	ErrLengthMismatch = errors.New("adev: result slices differ in length")

	// ErrUnknownMethod indicates a method name ParseMethod does not know.
	ErrUnknownMethod = errors.New("adev: unknown method")
)

// Errors raised by the conversion and tau stages, re-exported.
var (
	ErrInvalidRate     = phase.ErrInvalidRate
	ErrInvalidDataType = phase.ErrInvalidDataType
	ErrDegenerateInput = phase.ErrDegenerateInput
)
