package dataset

import (
	"fmt"
	"io"

	"github.com/gomlx/gomlx/pkg/core/tensors"

	"github.com/Noofbiz/svmlight"
)

// MultiLabel streams multi-label SVMLight rows, extreme-classification
// style, as (inputs, labels) tensor batches. Inputs are dense-expanded
// sparse feature vectors of dimension Dim; labels are multi-hot vectors of
// length NumLabels with a 1 at every class id the row carries. Ids at or
// beyond NumLabels are dropped.
type MultiLabel struct {
	// Path of the SVMLight file (plain, .gz or .zst).
	Path string

	// Dim is the feature dimension used for sparse decoding and dense
	// expansion.
	Dim int

	// NumLabels is the length of the multi-hot label vectors.
	NumLabels int

	// BatchSize for yielding batches.
	BatchSize int

	reader *svmlight.Reader[map[int]struct{}, svmlight.SparseVector]
}

// NewMultiLabel opens path and returns a streaming multi-label dataset.
func NewMultiLabel(path string, dim, numLabels, batchSize int) (*MultiLabel, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("feature dimension must be positive, got %d", dim)
	}
	if numLabels <= 0 {
		return nil, fmt.Errorf("label count must be positive, got %d", numLabels)
	}
	if batchSize <= 0 {
		batchSize = 32
	}

	r, err := svmlight.Open(path, svmlight.MultiLabel{}, svmlight.Sparse{Dim: dim})
	if err != nil {
		return nil, err
	}

	return &MultiLabel{
		Path:      path,
		Dim:       dim,
		NumLabels: numLabels,
		BatchSize: batchSize,
		reader:    r,
	}, nil
}

// Name returns the name of the dataset.
func (d *MultiLabel) Name() string {
	return "svmlight.MultiLabel"
}

// Yield reads up to BatchSize rows and returns them as gomlx tensors. It
// returns io.EOF once the source is exhausted; a short final batch is still
// yielded.
func (d *MultiLabel) Yield() (spec any, inputs, labels []*tensors.Tensor, err error) {
	in := make([][]float32, 0, d.BatchSize)
	lab := make([][]float32, 0, d.BatchSize)
	for len(in) < d.BatchSize && d.reader.Scan() {
		row := d.reader.Row()
		in = append(in, row.Features.ToDense())
		lab = append(lab, d.multiHot(row.Target))
	}
	if err := d.reader.Err(); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to read %s: %w", d.Path, err)
	}
	if len(in) == 0 {
		return nil, nil, nil, io.EOF
	}

	flat, err := MakeBatchFlat(in, lab)
	if err != nil {
		return nil, nil, nil, err
	}
	inT, labT, err := flat.ToGomlxTensors()
	if err != nil {
		return nil, nil, nil, err
	}
	return nil, []*tensors.Tensor{inT}, []*tensors.Tensor{labT}, nil
}

// multiHot expands a class id set into a multi-hot vector of length
// NumLabels.
func (d *MultiLabel) multiHot(classes map[int]struct{}) []float32 {
	v := make([]float32, d.NumLabels)
	for id := range classes {
		if id < d.NumLabels {
			v[id] = 1
		}
	}
	return v
}

// Restart reopens the source for another pass.
func (d *MultiLabel) Restart() error {
	if err := d.reader.Close(); err != nil {
		return err
	}
	r, err := svmlight.Open(d.Path, svmlight.MultiLabel{}, svmlight.Sparse{Dim: d.Dim})
	if err != nil {
		return err
	}
	d.reader = r
	return nil
}

// Close releases the underlying file.
func (d *MultiLabel) Close() error {
	return d.reader.Close()
}
