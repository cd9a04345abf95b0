package rtsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryAddGetRemove(t *testing.T) {
	r := NewRegistry()
	s := &ClientSession{ID: "abc", MountPath: "/cam1/mainStream"}
	r.Add(s)

	got, ok := r.Get("abc")
	assert.True(t, ok)
	assert.Equal(t, s, got)
	assert.Equal(t, 1, r.Len())

	r.Remove("abc")
	_, ok = r.Get("abc")
	assert.False(t, ok)
	assert.Equal(t, 0, r.Len())
}

func TestRegistryLenCountsMultiple(t *testing.T) {
	r := NewRegistry()
	r.Add(&ClientSession{ID: "a"})
	r.Add(&ClientSession{ID: "b"})
	r.Add(&ClientSession{ID: "c"})
	assert.Equal(t, 3, r.Len())
}
