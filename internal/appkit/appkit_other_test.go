//go:build !darwin

package appkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.klb.dev/floatclip/internal/panel"
)

func TestLookupMissing(t *testing.T) {
	_, err := New().Lookup(panel.MainWindow)
	require.ErrorIs(t, err, panel.ErrWindowNotFound)
}

func TestPanelOnMemoryDesktop(t *testing.T) {
	d := New()
	require.NoError(t, d.CreatePanel(panel.MainWindow))
	require.NoError(t, d.CreatePanel(panel.MainWindow))

	c := panel.New(d, panel.MainWindow)
	require.NoError(t, c.Configure())
	require.NoError(t, c.Show())

	w := d.windows[panel.MainWindow]
	assert.True(t, w.visible)
	assert.Equal(t, 4, w.level)
	assert.Equal(t, uint(1<<7), w.styleMask)
	assert.Equal(t, uint(1<<8|1), w.collection)

	require.NoError(t, c.Hide())
	assert.False(t, w.visible)
	assert.Len(t, d.windows, 1)
}

func TestHideApplication(t *testing.T) {
	d := New()
	require.NoError(t, d.HideApplication())
	assert.True(t, d.hidden)
}
