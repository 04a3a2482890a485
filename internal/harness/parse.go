package harness

import (
	"fmt"
	"regexp"
	"strconv"
)

// timingRegex matches the timing lines the executable prints, e.g.
// "Time = 12.5 ms". The number may be a signed decimal or integer.
var timingRegex = regexp.MustCompile(`Time = ([-+]?\d*\.\d+|[-+]?\d+) ms`)

// ParseError indicates that a trial's output did not contain exactly the
// two expected timing lines.
type ParseError struct {
	Found int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expected 2 timing lines, found %d", e.Found)
}

// ParseTimings extracts the (generate, copy) timing pair from one trial's
// captured output. Matches are taken in order of appearance: the first is
// the generate time, the second the copy time. Any other match count is a
// *ParseError. All non-matching output is ignored.
func ParseTimings(output string) (Pair, error) {
	matches := timingRegex.FindAllStringSubmatch(output, -1)
	if len(matches) != 2 {
		return Pair{}, &ParseError{Found: len(matches)}
	}

	gen, err := strconv.ParseFloat(matches[0][1], 64)
	if err != nil {
		return Pair{}, fmt.Errorf("invalid generate time %q: %w", matches[0][1], err)
	}
	cp, err := strconv.ParseFloat(matches[1][1], 64)
	if err != nil {
		return Pair{}, fmt.Errorf("invalid copy time %q: %w", matches[1][1], err)
	}

	return Pair{Generate: gen, Copy: cp}, nil
}
