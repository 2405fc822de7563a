package shortcut

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.klb.dev/floatclip/internal/clip"
)

// Outcome says what Handle did with an event. Fatal faults are reported as
// errors instead.
type Outcome uint8

const (
	// Ignored events changed nothing (releases, stray events).
	Ignored Outcome = iota
	// Captured means clipboard text was appended and the panel hidden.
	Captured
	// Skipped means the clipboard had no text; the panel was still hidden.
	Skipped
	// Shown means the panel was revealed.
	Shown
)

func (o Outcome) String() string {
	switch o {
	case Ignored:
		return "ignored"
	case Captured:
		return "captured"
	case Skipped:
		return "skipped"
	case Shown:
		return "shown"
	default:
		return "unknown"
	}
}

// Appender stores captured clipboard text.
type Appender interface {
	Append(text string)
}

// Panel is the floating panel as seen by the dispatcher.
type Panel interface {
	Show() error
	Hide() error
}

type phase uint8

const (
	idle phase = iota
	held
)

// Dispatcher tracks an Idle → Pressed → Idle machine per action and runs the
// action on each press. The two actions never affect each other.
//
// Handle is not safe for concurrent use; Run serialises events.
type Dispatcher struct {
	clip    clip.Backend
	history Appender
	panel   Panel

	phases map[Action]phase
}

// NewDispatcher returns a Dispatcher with both actions idle.
func NewDispatcher(cb clip.Backend, history Appender, p Panel) *Dispatcher {
	return &Dispatcher{
		clip:    cb,
		history: history,
		panel:   p,
		phases: map[Action]phase{
			ActionCapture: idle,
			ActionReveal:  idle,
		},
	}
}

// Handle applies one event. A non-nil error is fatal: the panel window is
// gone and nothing further can be shown or hidden.
func (d *Dispatcher) Handle(e Event) (Outcome, error) {
	cur, known := d.phases[e.Action]
	if !known {
		slog.Warn("event for unknown shortcut ignored", "action", e.Action, "state", e.State)
		return Ignored, nil
	}

	switch e.State {
	case Pressed:
		if cur == held {
			slog.Debug("shortcut repeated", "action", e.Action)
		} else {
			slog.Debug("shortcut pressed", "action", e.Action)
		}
		d.phases[e.Action] = held
		return d.press(e.Action)

	case Released:
		if cur != held {
			slog.Debug("release without press ignored", "action", e.Action)
			return Ignored, nil
		}
		d.phases[e.Action] = idle
		slog.Debug("shortcut released", "action", e.Action)
		return Ignored, nil

	default:
		slog.Warn("unknown shortcut state ignored", "action", e.Action, "state", e.State)
		return Ignored, nil
	}
}

func (d *Dispatcher) press(a Action) (Outcome, error) {
	switch a {
	case ActionCapture:
		return d.capture()
	case ActionReveal:
		if err := d.panel.Show(); err != nil {
			return Ignored, fmt.Errorf("reveal: %w", err)
		}
		return Shown, nil
	}
	return Ignored, nil
}

func (d *Dispatcher) capture() (Outcome, error) {
	out := Captured
	text, err := d.clip.ReadText()
	switch {
	case err == nil:
		d.history.Append(text)
	case errors.Is(err, clip.ErrNoText):
		slog.Warn("capture skipped: clipboard holds no text")
		out = Skipped
	default:
		slog.Warn("capture skipped: clipboard read failed", "backend", d.clip.Name(), "err", err)
		out = Skipped
	}

	if err := d.panel.Hide(); err != nil {
		return out, fmt.Errorf("capture: %w", err)
	}
	return out, nil
}

// Run handles events until ctx is done, events is closed, or Handle reports
// a fatal error, which Run returns.
func (d *Dispatcher) Run(ctx context.Context, events <-chan Event) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-events:
			if !ok {
				return nil
			}
			// Events still buffered after cancellation are dropped.
			if ctx.Err() != nil {
				return nil
			}
			out, err := d.Handle(e)
			if err != nil {
				return err
			}
			if out != Ignored {
				slog.Info("shortcut handled", "action", e.Action, "outcome", out)
			}
		}
	}
}
