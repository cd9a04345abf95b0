package streamerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  error
		is   func(error) bool
	}{
		{"transient", NewTransient("lagged-broadcast", cause), IsTransient},
		{"config drift", NewConfigDrift("fps-change", cause), IsConfigDrift},
		{"refusal", NewRefusal("appsrc-flushing", cause), IsRefusal},
		{"fatal", NewFatal("appsrc-unlinked", cause), IsFatal},
		{"driver", NewDriver("activate", cause), IsDriver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.is(tt.err))
			assert.True(t, Is(tt.err))
			assert.ErrorIs(t, fmt.Errorf("wrapped: %w", tt.err), cause)
			assert.Equal(t, cause, errors.Unwrap(tt.err))
		})
	}
}

func TestCrossClassificationIsFalse(t *testing.T) {
	err := NewTransient("op", nil)
	assert.False(t, IsFatal(err))
	assert.False(t, IsConfigDrift(err))
	assert.False(t, IsDriver(err))
	assert.False(t, IsRefusal(err))
}

func TestNilErrIsFalse(t *testing.T) {
	assert.False(t, Is(nil))
}
