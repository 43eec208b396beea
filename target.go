package svmlight

import (
	"strconv"
	"strings"
)

// TargetDecoder decodes the leading label token of a line into T.
//
// Decode is called with an empty token when the line starts with a space
// character, which marks a line without a target; a decoder may legitimately
// fail on "" and the line is then skipped. Decoders are stateless and freely
// shareable.
type TargetDecoder[T any] interface {
	Decode(token string) (T, bool)
}

// Regression decodes the target as a single float32.
type Regression struct{}

func (Regression) Decode(token string) (float32, bool) {
	v, err := strconv.ParseFloat(token, 32)
	if err != nil {
		return 0, false
	}
	return float32(v), true
}

// Binary decodes the literal token "1" as true and "-1" as false. Any other
// token, including "0", "+1" and the empty string, fails.
type Binary struct{}

func (Binary) Decode(token string) (bool, bool) {
	switch token {
	case "1":
		return true, true
	case "-1":
		return false, true
	}
	return false, false
}

// Disjoint decodes the target as a single non-negative class id.
type Disjoint struct{}

func (Disjoint) Decode(token string) (int, bool) {
	id, err := strconv.ParseUint(token, 10, 63)
	if err != nil {
		return 0, false
	}
	return int(id), true
}

// MultiLabel decodes a comma-separated list of class ids into a set.
// Duplicates collapse, pieces that do not parse as non-negative integers are
// dropped, and the decode itself never fails; the result may be empty.
type MultiLabel struct{}

func (MultiLabel) Decode(token string) (map[int]struct{}, bool) {
	classes := make(map[int]struct{})
	for _, piece := range strings.Split(token, ",") {
		if id, err := strconv.ParseUint(piece, 10, 63); err == nil {
			classes[int(id)] = struct{}{}
		}
	}
	return classes, true
}

// Tags decodes a comma-separated list of string tags into a set. Empty
// pieces are excluded and the decode never fails.
type Tags struct{}

func (Tags) Decode(token string) (map[string]struct{}, bool) {
	tags := make(map[string]struct{})
	for _, piece := range strings.Split(token, ",") {
		if piece != "" {
			tags[piece] = struct{}{}
		}
	}
	return tags, true
}
