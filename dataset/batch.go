package dataset

import (
	"fmt"

	"github.com/gomlx/gomlx/pkg/core/tensors"
)

// BatchFlat stores one batch in flat contiguous buffers.
type BatchFlat struct {
	Inputs    []float32
	Labels    []float32
	BatchSize int
	InputDim  int
	LabelDim  int
}

// MakeBatchFlat flattens a batch into contiguous buffers, validating that
// every example shares the same input and label dimensions.
func MakeBatchFlat(inputs, labels [][]float32) (*BatchFlat, error) {
	if len(inputs) != len(labels) {
		return nil, fmt.Errorf("inputs and labels batch sizes don't match: %d != %d", len(inputs), len(labels))
	}
	if len(inputs) == 0 {
		return &BatchFlat{}, nil
	}

	b := &BatchFlat{
		BatchSize: len(inputs),
		InputDim:  len(inputs[0]),
		LabelDim:  len(labels[0]),
	}
	var err error
	if b.Inputs, err = flatten(inputs, b.InputDim, "input"); err != nil {
		return nil, err
	}
	if b.Labels, err = flatten(labels, b.LabelDim, "label"); err != nil {
		return nil, err
	}
	return b, nil
}

// flatten concatenates rows of a fixed dimension into one buffer.
func flatten(rows [][]float32, dim int, kind string) ([]float32, error) {
	flat := make([]float32, 0, len(rows)*dim)
	for i, row := range rows {
		if len(row) != dim {
			return nil, fmt.Errorf("inconsistent %s dimensions at example %d: expected %d, got %d",
				kind, i, dim, len(row))
		}
		flat = append(flat, row...)
	}
	return flat, nil
}

// ToGomlxTensors converts the flat buffers into a pair of rank-2 gomlx
// tensors. Empty batches yield empty tensors.
func (b *BatchFlat) ToGomlxTensors() (*tensors.Tensor, *tensors.Tensor, error) {
	return b.tensor(b.Inputs, b.InputDim), b.tensor(b.Labels, b.LabelDim), nil
}

func (b *BatchFlat) tensor(flat []float32, dim int) *tensors.Tensor {
	rows := make([][]float32, 0, b.BatchSize)
	if dim > 0 {
		for i := range b.BatchSize {
			rows = append(rows, flat[i*dim:(i+1)*dim])
		}
	}
	return tensors.FromAnyValue(rows)
}
