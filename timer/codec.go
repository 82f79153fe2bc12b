package timer

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrTooManySegments is the kind of a ParseError for more than three groups.
	ErrTooManySegments = errors.New("too many segments")

	// ErrInvalidSegment is the kind of a ParseError for a group that is not a
	// non-negative integer, or whose total would not fit in an int.
	ErrInvalidSegment = errors.New("invalid segment")
)

// ParseError describes why a time string could not be parsed.
type ParseError struct {
	Kind    error
	Segment string
	Msg     string
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Kind }

// TimeSpec is an hours/minutes/seconds triple. Parse output is not normalized.
type TimeSpec struct {
	Hours   int
	Minutes int
	Seconds int
}

// TotalSeconds returns the spec's magnitude in seconds.
func (s TimeSpec) TotalSeconds() int {
	return s.Seconds + s.Minutes*60 + s.Hours*3600
}

func (s TimeSpec) String() string {
	return Format(s.TotalSeconds())
}

// Parse reads "[[H:]M:]S". Segments are assigned right to left, so "90" is
// ninety seconds and "1:30" is one minute thirty. Empty segments count as 0.
func Parse(text string) (TimeSpec, error) {
	parts := strings.Split(text, ":")
	if len(parts) > 3 {
		return TimeSpec{}, &ParseError{
			Kind: ErrTooManySegments,
			Msg:  fmt.Sprintf("%q has %d segments, at most 3 allowed", text, len(parts)),
		}
	}

	// seconds, minutes, hours
	var values [3]int
	for i, j := len(parts)-1, 0; i >= 0; i, j = i-1, j+1 {
		v, err := parseSegment(parts[i])
		if err != nil {
			return TimeSpec{}, err
		}
		values[j] = v
	}
	if !fitsInSeconds(values) {
		return TimeSpec{}, &ParseError{
			Kind:    ErrInvalidSegment,
			Segment: strings.TrimSpace(text),
			Msg:     fmt.Sprintf("%q is too long to count in seconds", text),
		}
	}

	return TimeSpec{Hours: values[2], Minutes: values[1], Seconds: values[0]}, nil
}

// fitsInSeconds reports whether seconds + 60*minutes + 3600*hours fits in an int.
func fitsInSeconds(values [3]int) bool {
	total := values[0]
	if values[1] > (math.MaxInt-total)/60 {
		return false
	}
	total += values[1] * 60
	return values[2] <= (math.MaxInt-total)/3600
}

func parseSegment(raw string) (int, error) {
	segment := strings.TrimSpace(raw)
	if segment == "" {
		return 0, nil
	}
	for _, r := range segment {
		if r < '0' || r > '9' {
			return 0, &ParseError{Kind: ErrInvalidSegment, Segment: segment, Msg: fmt.Sprintf("%q is not a number", segment)}
		}
	}
	v, err := strconv.Atoi(segment)
	if err != nil {
		return 0, &ParseError{Kind: ErrInvalidSegment, Segment: segment, Msg: err.Error()}
	}
	return v, nil
}

// Normalize carries overflow so that minutes and seconds are in [0,60).
// 90 minutes becomes 1 hour 30 minutes.
func Normalize(spec TimeSpec) TimeSpec {
	return decompose(spec.TotalSeconds())
}

func decompose(total int) TimeSpec {
	hours := total / 3600
	remaining := total - hours*3600
	minutes := remaining / 60
	return TimeSpec{Hours: hours, Minutes: minutes, Seconds: remaining - minutes*60}
}

// ToSeconds parses text and returns its total in seconds.
func ToSeconds(text string) (int, error) {
	spec, err := Parse(text)
	if err != nil {
		return 0, err
	}
	return Normalize(spec).TotalSeconds(), nil
}

// Format renders seconds as the shortest string that keeps its magnitude:
// "H:MM:SS" once there are hours, "M:SS" once there are minutes, else "S".
func Format(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	spec := decompose(totalSeconds)

	switch {
	case spec.Hours > 0:
		return fmt.Sprintf("%d:%02d:%02d", spec.Hours, spec.Minutes, spec.Seconds)
	case spec.Minutes > 0:
		return fmt.Sprintf("%d:%02d", spec.Minutes, spec.Seconds)
	default:
		return strconv.Itoa(spec.Seconds)
	}
}
