package ml

import "errors"

var (
	// InvalidTopologyErr is returned when the layer sizes cannot describe a network.
	InvalidTopologyErr = errors.New("invalid topology")
	// DimensionMismatchErr is returned when a vector or a data set does not fit the network layers.
	DimensionMismatchErr = errors.New("dimension mismatch")
	// InvalidArgumentErr is returned for non-positive training parameters or unknown layers.
	InvalidArgumentErr = errors.New("invalid argument")
)
