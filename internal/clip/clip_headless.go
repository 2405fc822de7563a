package clip

// headless is a clipboard backend for environments without a display server
// (CI, containers). It never holds text.
type headless struct{}

func (headless) Name() string               { return "headless (no-op)" }
func (headless) ReadText() (string, error) { return "", ErrNoText }
