package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBar_DefaultState(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Equal(t, StateReady, bar.State())
	assert.Contains(t, bar.View(), "Ready")
}

func TestBar_SubmittingState(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateSubmitting)

	assert.Contains(t, bar.View(), "Thinking")
}

func TestBar_ErrorState(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("server unreachable")

	assert.Contains(t, bar.View(), "server unreachable")
}

func TestBar_DocCount(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetDocCount(7)

	assert.Contains(t, bar.View(), "7 documents")
}

func TestBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("boom")

	bar.Clear()
	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
}
