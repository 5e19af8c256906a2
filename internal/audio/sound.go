// Package audio selects and plays ambient loops and breathing cues.
package audio

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownSound = errors.New("unknown sound")

// Sound is one of the selectable ambient tracks.
type Sound int

const (
	Silence Sound = iota
	Rain
	Forest
	Ocean
)

var soundNames = [...]string{
	Silence: "silence",
	Rain:    "rain",
	Forest:  "forest",
	Ocean:   "ocean",
}

var soundLabels = [...]string{
	Silence: "Silence 🕊",
	Rain:    "Rain 🌧",
	Forest:  "Forest 🌲",
	Ocean:   "Ocean 🌊",
}

// Sounds lists every ambient track in selection order.
func Sounds() []Sound {
	return []Sound{Silence, Rain, Forest, Ocean}
}

// ParseSound rejects anything outside the closed set.
func ParseSound(name string) (Sound, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range soundNames {
		if n == key {
			return Sound(i), nil
		}
	}
	return Silence, fmt.Errorf("%w: %q", ErrUnknownSound, name)
}

func (s Sound) String() string {
	if s < 0 || int(s) >= len(soundNames) {
		return fmt.Sprintf("sound(%d)", int(s))
	}
	return soundNames[s]
}

// Label is the display name.
func (s Sound) Label() string {
	if s < 0 || int(s) >= len(soundLabels) {
		return s.String()
	}
	return soundLabels[s]
}

// Asset is the loop file for s; Silence has none.
func (s Sound) Asset() string {
	if s == Silence || s < 0 || int(s) >= len(soundNames) {
		return ""
	}
	return soundNames[s] + ".mp3"
}

// Next cycles through Sounds.
func (s Sound) Next() Sound {
	return Sound((int(s) + 1) % len(soundNames))
}

// Cue is a one-shot breathing prompt.
type Cue int

const (
	Inhale Cue = iota
	Hold
	Exhale
)

func (c Cue) String() string {
	switch c {
	case Inhale:
		return "inhale"
	case Hold:
		return "hold"
	case Exhale:
		return "exhale"
	}
	return fmt.Sprintf("cue(%d)", int(c))
}

// Asset is the cue file for c.
func (c Cue) Asset() string {
	return c.String() + ".mp3"
}
