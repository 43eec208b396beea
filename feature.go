package svmlight

import (
	"sort"
	"strconv"
	"strings"
)

// FeatureDecoder materializes the feature tokens of a line into F. Failure is
// all-or-nothing: a single bad token voids the whole line and no partial
// vector is ever produced.
type FeatureDecoder[F any] interface {
	Decode(tokens []string) (F, bool)
}

// Dimensioned is implemented by feature containers that expose their nominal
// dimension.
type Dimensioned interface {
	Dims() int
}

// DenseVector is a feature vector with one entry per feature token, in token
// order. It carries no index information.
type DenseVector []float32

// Dims returns the vector length.
func (v DenseVector) Dims() int { return len(v) }

// SparseVector stores the non-zero, in-range entries of a feature vector of
// nominal dimension Dim. Indices are strictly increasing, hold no duplicates,
// and are parallel to Values.
type SparseVector struct {
	Dim     int
	Indices []int
	Values  []float32
}

// ToDense expands the vector to a dense slice of length Dim with zeros at
// every unlisted position.
func (v SparseVector) ToDense() []float32 {
	dense := make([]float32, v.Dim)
	for i, idx := range v.Indices {
		dense[idx] = v.Values[i]
	}
	return dense
}

// Nnz returns the number of stored entries.
func (v SparseVector) Nnz() int { return len(v.Indices) }

// Dims returns the nominal dimension.
func (v SparseVector) Dims() int { return v.Dim }

// Dense decodes each feature token as either a bare float or an idx:value
// pair; in both cases only the segment after the last ':' is parsed as the
// value. The result preserves token order and has exactly one entry per
// token.
type Dense struct{}

func (Dense) Decode(tokens []string) (DenseVector, bool) {
	out := make(DenseVector, len(tokens))
	for i, tok := range tokens {
		if j := strings.LastIndexByte(tok, ':'); j >= 0 {
			tok = tok[j+1:]
		}
		v, err := strconv.ParseFloat(tok, 32)
		if err != nil {
			return nil, false
		}
		out[i] = float32(v)
	}
	return out, true
}

// Sparse decodes idx:value feature tokens into a SparseVector of the fixed
// dimension Dim. Every token must carry a parsable non-negative index and a
// parsable value; segments after a second ':' are ignored. Entries are sorted
// by index, duplicate indices keep only their first occurrence after the
// stable sort, and entries with index >= Dim or a value of exactly zero are
// dropped.
type Sparse struct {
	Dim int
}

func (s Sparse) Decode(tokens []string) (SparseVector, bool) {
	type pair struct {
		idx int
		val float32
	}
	pairs := make([]pair, len(tokens))
	for i, tok := range tokens {
		parts := strings.Split(tok, ":")
		if len(parts) < 2 {
			return SparseVector{}, false
		}
		idx, err := strconv.ParseUint(parts[0], 10, 63)
		if err != nil {
			return SparseVector{}, false
		}
		val, err := strconv.ParseFloat(parts[1], 32)
		if err != nil {
			return SparseVector{}, false
		}
		pairs[i] = pair{idx: int(idx), val: float32(val)}
	}

	// Stable, so the first occurrence of a duplicated index is the survivor.
	sort.SliceStable(pairs, func(a, b int) bool { return pairs[a].idx < pairs[b].idx })

	out := SparseVector{Dim: s.Dim}
	prev := -1
	for _, p := range pairs {
		if p.idx == prev {
			continue
		}
		prev = p.idx
		if p.idx >= s.Dim || p.val == 0 {
			continue
		}
		out.Indices = append(out.Indices, p.idx)
		out.Values = append(out.Values, p.val)
	}
	return out, true
}
