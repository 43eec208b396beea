package svmlight

import (
	"strconv"
	"strings"
)

// Parser assembles Rows from raw lines using one target and one feature
// decoding strategy. Both decoders are stateless, so a Parser is freely
// reusable and parsing the same line twice yields structurally equal Rows.
type Parser[T, F any] struct {
	Target   TargetDecoder[T]
	Features FeatureDecoder[F]
}

// ParseLine decodes a single line, given without its trailing newline.
//
// The line is split on the first '#' into data and verbatim comment; the data
// portion is tokenized on whitespace. Unless the line starts with a space
// character, the first token is the target. A following qid:<digits> token
// sets the group id; any other token at that position is the first feature
// token. The returned ok is false when the target or feature decode fails —
// a failed line carries no partial data and is meant to be skipped, not
// treated as an error.
func (p Parser[T, F]) ParseLine(line string) (Row[T, F], bool) {
	var row Row[T, F]

	hasTarget := !strings.HasPrefix(line, " ")

	data, comment, hasComment := strings.Cut(line, "#")
	if hasComment {
		row.Comment = &comment
	}

	tokens := strings.Fields(data)

	targetTok := ""
	if hasTarget {
		if len(tokens) == 0 {
			return Row[T, F]{}, false
		}
		targetTok = tokens[0]
		tokens = tokens[1:]
	}
	target, ok := p.Target.Decode(targetTok)
	if !ok {
		return Row[T, F]{}, false
	}
	row.Target = target

	if len(tokens) > 0 {
		if qid, ok := parseQID(tokens[0]); ok {
			row.QID = &qid
			tokens = tokens[1:]
		}
	}

	features, ok := p.Features.Decode(tokens)
	if !ok {
		return Row[T, F]{}, false
	}
	row.Features = features

	return row, true
}

// parseQID matches a qid:<digits> token.
func parseQID(tok string) (int, bool) {
	digits, found := strings.CutPrefix(tok, "qid:")
	if !found {
		return 0, false
	}
	id, err := strconv.ParseUint(digits, 10, 63)
	if err != nil {
		return 0, false
	}
	return int(id), true
}
