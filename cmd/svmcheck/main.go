// svmcheck scans an SVMLight file under a chosen target/feature
// configuration and reports how many lines parse, how many are dropped, and
// how many carry qid or comment tokens.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Noofbiz/svmlight"
)

var (
	input    = flag.String("input", "", "path to the SVMLight file (plain, .gz or .zst)")
	target   = flag.String("target", "regression", "target shape: regression, binary, disjoint, multilabel or tags")
	features = flag.String("features", "sparse", "feature shape: dense or sparse")
	dim      = flag.Int("dim", 0, "feature dimension (required for sparse features)")
)

type stats struct {
	total       int
	parsed      int
	dropped     int
	withQID     int
	withComment int
}

func main() {
	flag.Parse()

	if *input == "" {
		log.Fatal("missing -input")
	}
	if *features == "sparse" && *dim <= 0 {
		log.Fatal("sparse features require a positive -dim")
	}

	s, err := collect(*input, *target, *features, *dim)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("lines:        %d\n", s.total)
	fmt.Printf("parsed:       %d\n", s.parsed)
	fmt.Printf("dropped:      %d\n", s.dropped)
	fmt.Printf("with qid:     %d\n", s.withQID)
	fmt.Printf("with comment: %d\n", s.withComment)
}

// collect instantiates the decoder pair matching the requested shapes and
// gathers per-line statistics.
func collect(path, target, features string, dim int) (stats, error) {
	dense := features == "dense"
	if !dense && features != "sparse" {
		return stats{}, fmt.Errorf("unknown feature shape %q", features)
	}

	switch target {
	case "regression":
		if dense {
			return count(path, svmlight.Regression{}, svmlight.Dense{})
		}
		return count(path, svmlight.Regression{}, svmlight.Sparse{Dim: dim})
	case "binary":
		if dense {
			return count(path, svmlight.Binary{}, svmlight.Dense{})
		}
		return count(path, svmlight.Binary{}, svmlight.Sparse{Dim: dim})
	case "disjoint":
		if dense {
			return count(path, svmlight.Disjoint{}, svmlight.Dense{})
		}
		return count(path, svmlight.Disjoint{}, svmlight.Sparse{Dim: dim})
	case "multilabel":
		if dense {
			return count(path, svmlight.MultiLabel{}, svmlight.Dense{})
		}
		return count(path, svmlight.MultiLabel{}, svmlight.Sparse{Dim: dim})
	case "tags":
		if dense {
			return count(path, svmlight.Tags{}, svmlight.Dense{})
		}
		return count(path, svmlight.Tags{}, svmlight.Sparse{Dim: dim})
	default:
		return stats{}, fmt.Errorf("unknown target shape %q", target)
	}
}

// count scans the whole file and tallies outcomes. Dropped lines are the
// ones the reader consumed but never yielded.
func count[T, F any](path string, target svmlight.TargetDecoder[T], features svmlight.FeatureDecoder[F]) (stats, error) {
	r, err := svmlight.Open(path, target, features)
	if err != nil {
		return stats{}, err
	}
	defer r.Close()

	var s stats
	for r.Scan() {
		s.parsed++
		row := r.Row()
		if row.QID != nil {
			s.withQID++
		}
		if row.Comment != nil {
			s.withComment++
		}
	}
	if err := r.Err(); err != nil {
		return stats{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	s.total = r.LineNumber()
	s.dropped = s.total - s.parsed
	return s, nil
}
