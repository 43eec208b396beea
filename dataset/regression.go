package dataset

import (
	"fmt"
	"io"

	"github.com/gomlx/gomlx/pkg/core/tensors"

	"github.com/Noofbiz/svmlight"
)

// Regression streams regression-target SVMLight rows as (inputs, labels)
// tensor batches. Inputs are dense-expanded sparse feature vectors of
// dimension Dim; labels are length-1 vectors holding the regression target.
type Regression struct {
	// Path of the SVMLight file (plain, .gz or .zst).
	Path string

	// Dim is the feature dimension used for sparse decoding and dense
	// expansion.
	Dim int

	// BatchSize for yielding batches.
	BatchSize int

	reader *svmlight.Reader[float32, svmlight.SparseVector]
}

// NewRegression opens path and returns a streaming regression dataset.
func NewRegression(path string, dim, batchSize int) (*Regression, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("feature dimension must be positive, got %d", dim)
	}
	if batchSize <= 0 {
		batchSize = 32
	}

	r, err := svmlight.Open(path, svmlight.Regression{}, svmlight.Sparse{Dim: dim})
	if err != nil {
		return nil, err
	}

	return &Regression{
		Path:      path,
		Dim:       dim,
		BatchSize: batchSize,
		reader:    r,
	}, nil
}

// Name returns the name of the dataset.
func (d *Regression) Name() string {
	return "svmlight.Regression"
}

// Yield reads up to BatchSize rows and returns them as gomlx tensors. It
// returns io.EOF once the source is exhausted; a short final batch is still
// yielded.
func (d *Regression) Yield() (spec any, inputs, labels []*tensors.Tensor, err error) {
	in := make([][]float32, 0, d.BatchSize)
	lab := make([][]float32, 0, d.BatchSize)
	for len(in) < d.BatchSize && d.reader.Scan() {
		row := d.reader.Row()
		in = append(in, row.Features.ToDense())
		lab = append(lab, []float32{row.Target})
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

// Restart reopens the source for another pass.
func (d *Regression) Restart() error {
	if err := d.reader.Close(); err != nil {
		return err
	}
	r, err := svmlight.Open(d.Path, svmlight.Regression{}, svmlight.Sparse{Dim: d.Dim})
	if err != nil {
		return err
	}
	d.reader = r
	return nil
}

// Close releases the underlying file.
func (d *Regression) Close() error {
	return d.reader.Close()
}
