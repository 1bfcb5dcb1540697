package trim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		wantLength float64
		wantErr    bool
	}{
		{"Equal bounds", 10.0, 10.0, 0.0, false},
		{"Ordered bounds", 10.0, 25.5, 15.5, false},
		{"Zero start", 0, 3, 3, false},
		{"Start after end", 10.0, 9.9, 0, true},
		{"Large gap reversed", 3600, 1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interval, err := Validate(tt.start, tt.end)
			if tt.wantErr {
				var ivErr *InvalidIntervalError
				require.True(t, errors.As(err, &ivErr), "expected *InvalidIntervalError, got %v", err)
				assert.Equal(t, tt.start, ivErr.Start)
				assert.Equal(t, tt.end, ivErr.End)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.start, interval.Start)
			assert.Equal(t, tt.end, interval.End)
			assert.InDelta(t, tt.wantLength, interval.Length(), 1e-9)
		})
	}
}

func TestInvalidIntervalError_Message(t *testing.T) {
	err := &InvalidIntervalError{Start: 90, End: 30}
	assert.Equal(t, "end time (0:00:30) must be after start time (0:01:30)", err.Error())
}
