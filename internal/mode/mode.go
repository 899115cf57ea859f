// Package mode implements the two-state light/dark toggle.
package mode

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMode is returned when a label does not name a known mode.
var ErrInvalidMode = errors.New("invalid mode")

// Mode is one of the two visual states. The zero value is Light.
type Mode struct {
	dark bool
}

var (
	// Light is the initial mode.
	Light = Mode{}
	// Dark is the alternate mode.
	Dark = Mode{dark: true}
)

const (
	labelLight = "light"
	labelDark  = "dark"
)

// Modes returns the ordered mode labels.
func Modes() []string {
	return []string{labelLight, labelDark}
}

// Parse resolves a label into a Mode.
func Parse(label string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case labelLight:
		return Light, nil
	case labelDark:
		return Dark, nil
	default:
		return Mode{}, fmt.Errorf("%w: %q", ErrInvalidMode, label)
	}
}

// String returns the mode label.
func (m Mode) String() string {
	if m.dark {
		return labelDark
	}
	return labelLight
}

// Other returns the opposite mode.
func (m Mode) Other() Mode {
	return Mode{dark: !m.dark}
}

// Toggle tracks the active mode. The zero value starts in Light.
type Toggle struct {
	current Mode
}

// New returns a toggle in Light mode.
func New() *Toggle {
	return &Toggle{current: Light}
}

// Current returns the active mode.
func (t *Toggle) Current() Mode {
	return t.current
}

// CurrentLabel returns the label of the active mode.
func (t *Toggle) CurrentLabel() string {
	return t.current.String()
}

// NextLabel returns the label the next Toggle call switches to.
func (t *Toggle) NextLabel() string {
	return t.current.Other().String()
}

// Toggle flips the active mode and returns the labels before and after.
func (t *Toggle) Toggle() (previous, next string) {
	previous = t.current.String()
	t.current = t.current.Other()
	return previous, t.current.String()
}
