package dataset

import "github.com/gomlx/gomlx/pkg/core/tensors"

// This package presents SVMLight files as datasets suitable for gomlx
// training loops.
//
// Both dataset implementations stream rows lazily from a single file: nothing
// is held in memory beyond the batch being assembled, and Restart reopens the
// source for the next epoch. Inputs are always dense-expanded sparse feature
// vectors of a caller-fixed dimension; the label shape depends on the dataset
// kind (a length-1 vector for regression, a multi-hot vector for multi-label
// classification).
//
// Tensor conversion goes through flat contiguous float32 buffers (BatchFlat)
// so the gomlx-facing step stays a small, well-defined boundary.

// Dataset is the surface shared by the SVMLight-backed datasets in this
// package. Yield and Restart follow the gomlx train.Dataset contract: Yield
// returns io.EOF once the source is exhausted, and Restart begins a new
// epoch.
type Dataset interface {
	Name() string
	Yield() (spec any, inputs []*tensors.Tensor, labels []*tensors.Tensor, err error)
	Restart() error

	// Close releases the underlying source.
	Close() error
}
