// Package svmlight parses the SVMLight/libsvm line-oriented
// labeled-feature-vector text format into strongly typed rows.
//
// Each input line carries a target (label), an optional qid grouping token, a
// feature vector in sparse index:value form, and an optional trailing comment:
//
//	-1 qid:1234 0:-13 11:10 # hello
//
// The pipeline is generic along two independent axes: how the leading target
// token is decoded (TargetDecoder: Regression, Binary, Disjoint, MultiLabel,
// Tags) and how the feature tokens are materialized (FeatureDecoder: Dense,
// Sparse). Reader wires one decoder of each kind over a line source and yields
// one Row per successfully parsed line, silently skipping malformed lines so a
// corrupt row never aborts a dataset load.
package svmlight

// Row is one fully decoded record. Its target and feature shapes depend on
// the decoder pair chosen for the parsing session. A Row is constructed once
// per successfully parsed line and never mutated afterwards.
type Row[T, F any] struct {
	// Target is the decoded label.
	Target T

	// Features is the decoded feature container.
	Features F

	// QID is the group identifier carried by a qid:<n> token, or nil when
	// the line had none.
	QID *int

	// Comment holds everything after the first '#' on the line, verbatim
	// (leading whitespace included), or nil when the line had no '#'.
	Comment *string
}
