package shortcut

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.klb.dev/floatclip/internal/clip"
	"go.klb.dev/floatclip/internal/panel"
)

type fakeClip struct {
	text string
	err  error
}

func (c *fakeClip) Name() string { return "fake" }

func (c *fakeClip) ReadText() (string, error) {
	if c.err != nil {
		return "", c.err
	}
	if c.text == "" {
		return "", clip.ErrNoText
	}
	return c.text, nil
}

type recorder struct{ clips []string }

func (r *recorder) Append(text string) { r.clips = append(r.clips, text) }

type fakePanel struct {
	visible bool
	err     error
	shows   int
	hides   int
}

func (p *fakePanel) Show() error {
	if p.err != nil {
		return p.err
	}
	p.visible = true
	p.shows++
	return nil
}

func (p *fakePanel) Hide() error {
	if p.err != nil {
		return p.err
	}
	p.visible = false
	p.hides++
	return nil
}

func newTestDispatcher() (*Dispatcher, *fakeClip, *recorder, *fakePanel) {
	c, r, p := &fakeClip{}, &recorder{}, &fakePanel{}
	return NewDispatcher(c, r, p), c, r, p
}

func press(a Action) Event   { return Event{Action: a, State: Pressed} }
func release(a Action) Event { return Event{Action: a, State: Released} }

func TestScenarioRevealCaptureReveal(t *testing.T) {
	d, c, r, p := newTestDispatcher()

	mustHandle(t, d, press(ActionReveal), Shown)
	mustHandle(t, d, release(ActionReveal), Ignored)
	assert.True(t, p.visible)

	c.text = "hello"
	mustHandle(t, d, press(ActionCapture), Captured)
	mustHandle(t, d, release(ActionCapture), Ignored)
	assert.Equal(t, []string{"hello"}, r.clips)
	assert.False(t, p.visible)

	c.text = "world"
	mustHandle(t, d, press(ActionCapture), Captured)
	mustHandle(t, d, release(ActionCapture), Ignored)
	assert.Equal(t, []string{"hello", "world"}, r.clips)
	assert.False(t, p.visible)

	mustHandle(t, d, press(ActionReveal), Shown)
	assert.True(t, p.visible)
	assert.Equal(t, []string{"hello", "world"}, r.clips)
}

func TestCaptureWithoutTextSkipsButHides(t *testing.T) {
	d, _, r, p := newTestDispatcher()
	p.visible = true

	mustHandle(t, d, press(ActionCapture), Skipped)
	assert.Empty(t, r.clips)
	assert.False(t, p.visible)
	assert.Equal(t, 1, p.hides)
}

func TestCaptureReadErrorSkips(t *testing.T) {
	d, c, r, p := newTestDispatcher()
	c.err = errors.New("pasteboard busy")

	mustHandle(t, d, press(ActionCapture), Skipped)
	assert.Empty(t, r.clips)
	assert.Equal(t, 1, p.hides)
}

func TestHistoryGrowsByAtMostOnePerCapture(t *testing.T) {
	d, c, r, _ := newTestDispatcher()
	texts := []string{"a", "", "b", "", "", "c"}

	want := 0
	for _, text := range texts {
		c.text = text
		before := len(r.clips)
		_, err := d.Handle(press(ActionCapture))
		require.NoError(t, err)
		_, err = d.Handle(press(ActionReveal))
		require.NoError(t, err)
		if text != "" {
			want++
		}
		assert.LessOrEqual(t, len(r.clips)-before, 1)
	}
	assert.Len(t, r.clips, want)
	assert.Equal(t, []string{"a", "b", "c"}, r.clips)
}

func TestRevealIdempotent(t *testing.T) {
	d, _, _, p := newTestDispatcher()
	for range 3 {
		mustHandle(t, d, press(ActionReveal), Shown)
		assert.True(t, p.visible)
	}
}

func TestReleaseWithoutPressIgnored(t *testing.T) {
	d, _, _, p := newTestDispatcher()
	mustHandle(t, d, release(ActionCapture), Ignored)
	mustHandle(t, d, release(ActionReveal), Ignored)
	assert.Zero(t, p.shows)
	assert.Zero(t, p.hides)
}

func TestShortcutsAreIndependent(t *testing.T) {
	d, c, r, p := newTestDispatcher()
	c.text = "x"

	mustHandle(t, d, press(ActionReveal), Shown)
	mustHandle(t, d, press(ActionCapture), Captured)
	// Releasing reveal must not release capture.
	mustHandle(t, d, release(ActionReveal), Ignored)
	assert.Equal(t, held, d.phases[ActionCapture])
	assert.Equal(t, idle, d.phases[ActionReveal])
	mustHandle(t, d, release(ActionCapture), Ignored)
	assert.Equal(t, idle, d.phases[ActionCapture])

	assert.Equal(t, []string{"x"}, r.clips)
	assert.False(t, p.visible)
}

func TestUnknownEventsIgnored(t *testing.T) {
	d, _, _, p := newTestDispatcher()
	mustHandle(t, d, Event{Action: "paste", State: Pressed}, Ignored)
	mustHandle(t, d, Event{Action: ActionReveal, State: 9}, Ignored)
	assert.Zero(t, p.shows)
}

func TestPanelFailureIsFatal(t *testing.T) {
	d, c, r, p := newTestDispatcher()
	p.err = panel.ErrWindowNotFound
	c.text = "kept"

	out, err := d.Handle(press(ActionCapture))
	require.ErrorIs(t, err, panel.ErrWindowNotFound)
	assert.Equal(t, Captured, out)
	assert.Equal(t, []string{"kept"}, r.clips)

	_, err = d.Handle(press(ActionReveal))
	require.ErrorIs(t, err, panel.ErrWindowNotFound)
}

func TestRunStopsOnClosedChannel(t *testing.T) {
	d, c, r, p := newTestDispatcher()
	c.text = "hello"

	events := make(chan Event, 4)
	events <- press(ActionReveal)
	events <- release(ActionReveal)
	events <- press(ActionCapture)
	events <- release(ActionCapture)
	close(events)

	require.NoError(t, d.Run(context.Background(), events))
	assert.Equal(t, []string{"hello"}, r.clips)
	assert.False(t, p.visible)
}

func TestRunReturnsFatal(t *testing.T) {
	d, _, _, p := newTestDispatcher()
	p.err = panel.ErrWindowNotFound

	events := make(chan Event, 1)
	events <- press(ActionReveal)

	require.ErrorIs(t, d.Run(context.Background(), events), panel.ErrWindowNotFound)
}

func TestRunStopsOnCancel(t *testing.T) {
	d, _, _, _ := newTestDispatcher()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- d.Run(ctx, make(chan Event)) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunIgnoresBufferedEventsAfterCancel(t *testing.T) {
	d, c, r, p := newTestDispatcher()
	c.text = "late"
	p.visible = true

	events := make(chan Event, 16)
	for range 16 {
		events <- press(ActionCapture)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, d.Run(ctx, events))
	assert.Empty(t, r.clips)
	assert.Zero(t, p.hides)
	assert.True(t, p.visible)
}

func mustHandle(t *testing.T, d *Dispatcher, e Event, want Outcome) {
	t.Helper()
	got, err := d.Handle(e)
	require.NoError(t, err)
	assert.Equal(t, want, got, "%s %s", e.Action, e.State)
}
