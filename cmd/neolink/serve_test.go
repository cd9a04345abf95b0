package neolink

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeFailsWithNoCamerasConfigured(t *testing.T) {
	t.Setenv("NEOLINK_CAMERAS", "")
	err := serve(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NEOLINK_CAMERAS")
}

func TestServeFailsWhenNoDriverRegistered(t *testing.T) {
	t.Setenv("NEOLINK_CAMERAS", "frontdoor")

	err := serve(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no camera driver registered")
}

func TestServeFailsWhenCameraConfigInvalid(t *testing.T) {
	t.Setenv("NEOLINK_CAMERAS", "frontdoor")
	t.Setenv("NEOLINK_CAM_FRONTDOOR_STREAM", "bogus")

	err := serve(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stream:")
}

