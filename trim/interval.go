// Package trim validates clip intervals and builds the encoder invocation that
// cuts them out of a source video.
package trim

// Interval is a validated clip range in seconds with Start <= End.
type Interval struct {
	Start float64
	End   float64
}

// Length returns the clip duration in seconds.
func (i Interval) Length() float64 {
	return i.End - i.Start
}

// Validate builds an Interval from start and end. Equal values are accepted and
// give a zero-length interval; start after end is an *InvalidIntervalError.
func Validate(start, end float64) (Interval, error) {
	if start > end {
		return Interval{}, &InvalidIntervalError{Start: start, End: end}
	}
	return Interval{Start: start, End: end}, nil
}
