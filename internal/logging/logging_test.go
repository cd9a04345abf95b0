package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupParsesValidLevel(t *testing.T) {
	Setup("warn", true)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestSetupFallsBackToInfoOnInvalidLevel(t *testing.T) {
	Setup("not-a-level", true)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestSetupFallsBackToInfoOnEmptyLevel(t *testing.T) {
	Setup("", true)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
