package forms

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/user/trim-cli/trim"
)

func TestValidateTimestamp(t *testing.T) {
	for _, ok := range []string{"1:02:03", "22:45.2", "22", "60:60:60", "22abc"} {
		assert.NoError(t, ValidateTimestamp(ok), ok)
	}
	for _, bad := range []string{"", "abc", "61:00", "99"} {
		assert.Error(t, ValidateTimestamp(bad), bad)
	}
}

func TestValidateEnd(t *testing.T) {
	assert.NoError(t, ValidateEnd("10", "10"))
	assert.NoError(t, ValidateEnd("1:00", "1:00:00"))
	assert.NoError(t, ValidateEnd("", "5"), "a missing start is reported by its own field")
	assert.Error(t, ValidateEnd("10", "nope"))

	err := ValidateEnd("10", "9.9")
	var ivErr *trim.InvalidIntervalError
	assert.True(t, errors.As(err, &ivErr))
}

func TestNewIntervalForm(t *testing.T) {
	result := &IntervalResult{Start: "1:00"}
	form := NewIntervalForm("/videos/match.mp4", result)
	assert.NotNil(t, form)
	assert.Equal(t, "1:00", result.Start)
}

func TestTheme(t *testing.T) {
	assert.NotNil(t, Theme())
}
