package shortcut

// Relay turns receives on down and up into Pressed and Released events for
// action a, passing each to emit. It returns when done is closed, when
// either channel is closed, or when emit reports false. A closed channel
// never produces an event.
func Relay[T any](done <-chan struct{}, a Action, down, up <-chan T, emit func(Event) bool) {
	for {
		select {
		case <-done:
			return
		case _, ok := <-down:
			if !ok || !emitOpen(done, emit, Event{Action: a, State: Pressed}) {
				return
			}
		case _, ok := <-up:
			if !ok || !emitOpen(done, emit, Event{Action: a, State: Released}) {
				return
			}
		}
	}
}

// emitOpen drops e once done is closed, even if a receive raced with the close.
func emitOpen(done <-chan struct{}, emit func(Event) bool, e Event) bool {
	select {
	case <-done:
		return false
	default:
	}
	return emit(e)
}
