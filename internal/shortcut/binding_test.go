package shortcut

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBindings(t *testing.T) {
	bs := DefaultBindings()
	require.Len(t, bs, 2)

	assert.Equal(t, "super+shift+v", bs[0].String())
	assert.Equal(t, ActionReveal, bs[0].Action)
	assert.Equal(t, "super+c", bs[1].String())
	assert.Equal(t, ActionCapture, bs[1].Action)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "pressed", Pressed.String())
	assert.Equal(t, "released", Released.String())
	assert.Equal(t, "unknown", State(0).String())
}
