package timeutil

import (
	"fmt"
	"strconv"
)

// Shape identifies which timestamp layout a string was parsed with.
type Shape int

const (
	// ShapeHours is H:MM:SS[.fraction] with a 1-2 digit hour field.
	ShapeHours Shape = iota + 1
	// ShapeMinutes is M:SS[.fraction] with a 1-2 digit minute field.
	ShapeMinutes
	// ShapeSeconds is S[.fraction] with a 1-2 digit second field.
	ShapeSeconds
)

// maxField is the inclusive upper bound for every hour, minute and second field.
const maxField = 60

// weights returns the multiplier of each field, most significant first.
func (s Shape) weights() []float64 {
	switch s {
	case ShapeHours:
		return []float64{3600, 60, 1}
	case ShapeMinutes:
		return []float64{60, 1}
	case ShapeSeconds:
		return []float64{1}
	}
	return nil
}

// DurationParseError is returned when a timestamp matches none of the accepted
// shapes or one of its fields is out of range.
type DurationParseError struct {
	Text string
}

func (e *DurationParseError) Error() string {
	return fmt.Sprintf("invalid timestamp %q: expected HH:MM:SS, MM:SS or SS (fields up to 60)", e.Text)
}

// shapeOrder is the order shapes are tried in. Longer shapes go first because
// a shorter shape always matches a prefix of a longer one.
var shapeOrder = []Shape{ShapeHours, ShapeMinutes, ShapeSeconds}

// ParseDuration converts a timestamp in H:MM:SS, M:SS or S form, each with an
// optional .fraction suffix, to seconds.
//
// Only the start of the string has to match; anything after a complete match
// is ignored, so "22abc" parses as 22 seconds.
func ParseDuration(text string) (float64, error) {
	seconds, _, err := ParseShape(text)
	return seconds, err
}

// ParseShape is ParseDuration that also reports which shape matched.
func ParseShape(text string) (float64, Shape, error) {
	for _, shape := range shapeOrder {
		fields, frac, ok := matchShape(text, shape)
		if !ok {
			continue
		}
		total := 0.0
		for i, w := range shape.weights() {
			if fields[i] > maxField {
				return 0, 0, &DurationParseError{Text: text}
			}
			total += float64(fields[i]) * w
		}
		return total + frac, shape, nil
	}
	return 0, 0, &DurationParseError{Text: text}
}

// matchShape scans the leading fields of text for the given shape. The first
// field takes one or two digits, every later field exactly two, separated by
// colons. An optional fraction of a dot and one or more digits may follow.
func matchShape(text string, shape Shape) ([]int, float64, bool) {
	sc := scanner{s: text}
	n := len(shape.weights())
	fields := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if i > 0 && !sc.colon() {
			return nil, 0, false
		}
		minDigits := 2
		if i == 0 {
			minDigits = 1
		}
		v, ok := sc.digits(minDigits, 2)
		if !ok {
			return nil, 0, false
		}
		fields = append(fields, v)
	}
	return fields, sc.fraction(), true
}

type scanner struct {
	s   string
	pos int
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// digits consumes between min and max decimal digits, as many as available.
func (sc *scanner) digits(min, max int) (int, bool) {
	start := sc.pos
	for sc.pos < len(sc.s) && sc.pos-start < max && isDigit(sc.s[sc.pos]) {
		sc.pos++
	}
	if sc.pos-start < min {
		sc.pos = start
		return 0, false
	}
	v, err := strconv.Atoi(sc.s[start:sc.pos])
	if err != nil {
		sc.pos = start
		return 0, false
	}
	return v, true
}

func (sc *scanner) colon() bool {
	if sc.pos < len(sc.s) && sc.s[sc.pos] == ':' {
		sc.pos++
		return true
	}
	return false
}

// fraction consumes ".ddd" and returns its value. A dot with no digit after it
// is left unconsumed and counts as zero.
func (sc *scanner) fraction() float64 {
	if sc.pos+1 >= len(sc.s) || sc.s[sc.pos] != '.' || !isDigit(sc.s[sc.pos+1]) {
		return 0
	}
	start := sc.pos
	sc.pos++
	for sc.pos < len(sc.s) && isDigit(sc.s[sc.pos]) {
		sc.pos++
	}
	v, err := strconv.ParseFloat("0"+sc.s[start:sc.pos], 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatTime formats seconds as H:MM:SS (e.g. 0:01:30, 1:11:22).
func FormatTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	totalSeconds := int(seconds)
	hours := totalSeconds / 3600
	mins := (totalSeconds % 3600) / 60
	secs := totalSeconds % 60
	return fmt.Sprintf("%d:%02d:%02d", hours, mins, secs)
}

// FormatLength formats a clip length with exactly four decimals, e.g. 12.3450.
func FormatLength(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', 4, 64)
}

// FormatShape writes seconds back in the given shape with four decimals, carrying
// whole minutes and hours into the higher fields (3723.5 as ShapeHours is
// "1:02:03.5000"). A leading field never goes above 60; the rest stays in the
// lower fields, so 3660 as ShapeMinutes is "60:60.0000".
func FormatShape(seconds float64, shape Shape) string {
	if seconds < 0 {
		seconds = 0
	}
	switch shape {
	case ShapeHours:
		h, rest := splitField(seconds, 3600)
		m, s := splitField(rest, 60)
		return fmt.Sprintf("%d:%02d:%07.4f", h, m, s)
	case ShapeMinutes:
		m, s := splitField(seconds, 60)
		return fmt.Sprintf("%d:%07.4f", m, s)
	default:
		return FormatLength(seconds)
	}
}

// splitField takes as many whole units out of seconds as fit, up to maxField,
// and returns them with the remaining seconds.
func splitField(seconds, unit float64) (int, float64) {
	n := int(seconds / unit)
	if n > maxField {
		n = maxField
	}
	return n, seconds - float64(n)*unit
}
