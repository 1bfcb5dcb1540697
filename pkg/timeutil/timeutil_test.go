package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"Minutes with fraction", "22:45.2", 22*60 + 45.2},
		{"Minutes", "22:45", 1365},
		{"Seconds", "22", 22},
		{"Seconds with fraction", "22.9", 22.9},
		{"Hours", "1:02:03", 3723},
		{"Two digit hours", "10:00:00", 36000},
		{"Hours with fraction", "0:00:01.25", 1.25},
		{"Single digit minute", "5:07", 307},
		{"Single digit second", "7", 7},
		{"Zero", "0", 0},
		{"Boundary hours", "60:60:60", 219660},
		{"Boundary minutes", "60:60", 3660},
		{"Boundary seconds", "60", 60},
		{"Long fraction", "1.123456", 1.123456},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestParseDuration_HourFormIsExact(t *testing.T) {
	for _, h := range []int{0, 1, 9, 23, 60} {
		for _, m := range []int{0, 7, 59, 60} {
			for _, s := range []int{0, 30, 60} {
				for _, frac := range []string{"", ".5", ".125", ".999"} {
					text := fmt.Sprintf("%d:%02d:%02d%s", h, m, s, frac)
					want := float64(h*3600 + m*60 + s)
					if frac != "" {
						f, err := strconv.ParseFloat("0"+frac, 64)
						require.NoError(t, err)
						want += f
					}

					got, err := ParseDuration(text)
					require.NoError(t, err, text)
					assert.Equal(t, want, got, text)
				}
			}
		}
	}
}

func TestParseDuration_ShapePriority(t *testing.T) {
	got, shape, err := ParseShape("1:02:03")
	require.NoError(t, err)
	assert.Equal(t, ShapeHours, shape)
	assert.Equal(t, 3723.0, got)

	got, shape, err = ParseShape("22:45.2")
	require.NoError(t, err)
	assert.Equal(t, ShapeMinutes, shape)
	assert.InDelta(t, 1365.2, got, 1e-9)

	got, shape, err = ParseShape("22.9")
	require.NoError(t, err)
	assert.Equal(t, ShapeSeconds, shape)
	assert.InDelta(t, 22.9, got, 1e-9)
}

func TestParseDuration_PrefixTolerant(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"Trailing letters", "22abc", 22},
		{"Third digit ignored", "123", 12},
		{"Dangling dot", "5.", 5},
		{"Dot then letters", "5.x", 5},
		{"Short minute field falls back to seconds", "1:2", 1},
		{"Short second field falls back to minutes", "1:02:3", 62},
		{"Trailing space", "1:30 ", 90},
		{"Extra field", "1:02:03:04", 3723},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestParseDuration_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"Letters", "abc"},
		{"Leading space", " 12"},
		{"Leading colon", ":30"},
		{"Negative", "-5"},
		{"Minute over bound", "61:00"},
		{"Second over bound", "10:61"},
		{"Hour over bound", "61:00:00"},
		{"Hour-form minute over bound", "1:61:00"},
		{"Hour-form second over bound", "1:00:61"},
		{"Seconds over bound", "61"},
		{"Seconds over bound with fraction", "99.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDuration(tt.input)
			require.Error(t, err)

			var parseErr *DurationParseError
			require.True(t, errors.As(err, &parseErr), "error should be a *DurationParseError")
			assert.Equal(t, tt.input, parseErr.Text)
		})
	}
}

func TestFormatShape_RoundTrip(t *testing.T) {
	inputs := []string{
		"1:02:03",
		"1:02:03.5",
		"0:00:00.0001",
		"12:34:56.789",
		"22:45.2",
		"59:59",
		"3:07.25",
		"22.9",
		"0",
		"45.1234",
		"60:60",
		"60:60.5",
		"60:60:60",
		"60:59:60",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			seconds, shape, err := ParseShape(in)
			require.NoError(t, err)

			formatted := FormatShape(seconds, shape)
			again, againShape, err := ParseShape(formatted)
			require.NoError(t, err, formatted)
			assert.Equal(t, shape, againShape, formatted)
			assert.InDelta(t, seconds, again, 1e-4, formatted)
		})
	}
}

func TestFormatShape(t *testing.T) {
	assert.Equal(t, "1:02:03.5000", FormatShape(3723.5, ShapeHours))
	assert.Equal(t, "22:45.2000", FormatShape(1365.2, ShapeMinutes))
	assert.Equal(t, "22.9000", FormatShape(22.9, ShapeSeconds))
	assert.Equal(t, "0:00:00.0000", FormatShape(-1, ShapeHours))
	assert.Equal(t, "60:60.0000", FormatShape(3660, ShapeMinutes))
	assert.Equal(t, "60:60:60.0000", FormatShape(219660, ShapeHours))
	assert.Equal(t, "60:60:00.0000", FormatShape(219600, ShapeHours))
}

func TestFormatLength(t *testing.T) {
	tests := []struct {
		seconds  float64
		expected string
	}{
		{12.345, "12.3450"},
		{0, "0.0000"},
		{1365.2, "1365.2000"},
		{219660, "219660.0000"},
		{0.00004, "0.0000"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatLength(tt.seconds))
		})
	}
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "0:01:30", FormatTime(90))
	assert.Equal(t, "1:11:22", FormatTime(4282))
	assert.Equal(t, "0:00:00", FormatTime(-3))
}
