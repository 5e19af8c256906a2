// Package breathing paces guided breathing alongside a session.
package breathing

import (
	"fmt"

	"github.com/akyairhashvil/meditimer/internal/audio"
)

// Phase is one step of a technique.
type Phase struct {
	Action  string
	Cue     audio.Cue
	Seconds int
}

// Technique is a repeating sequence of phases.
type Technique struct {
	ID       string
	Name     string
	Sequence []Phase
}

func inhale(n int) Phase { return Phase{Action: "Inhale", Cue: audio.Inhale, Seconds: n} }
func hold(n int) Phase { return Phase{Action: "Hold", Cue: audio.Hold, Seconds: n} }
func exhale(n int) Phase { return Phase{Action: "Exhale", Cue: audio.Exhale, Seconds: n} }

// Techniques in menu order.
var Techniques = []Technique{
	{ID: "4-4-4-4", Name: "Square breathing", Sequence: []Phase{inhale(4), hold(4), exhale(4), hold(4)}},
	{ID: "4-7-8", Name: "4-7-8 technique", Sequence: []Phase{inhale(4), hold(7), exhale(8)}},
	{ID: "box", Name: "Box breathing", Sequence: []Phase{inhale(5), hold(5), exhale(5), hold(5)}},
}

// Lookup finds a technique by id.
func Lookup(id string) (Technique, error) {
	for _, t := range Techniques {
		if t.ID == id {
			return t, nil
		}
	}
	return Technique{}, fmt.Errorf("unknown breathing technique %q", id)
}

// Guide walks a technique one second at a time.
type Guide struct {
	technique Technique
	step      int
	left      int
}

func NewGuide(t Technique) *Guide {
	return &Guide{technique: t, left: t.Sequence[0].Seconds}
}

func (g *Guide) Technique() Technique { return g.technique }

// Current returns the active phase and the seconds left in it.
func (g *Guide) Current() (Phase, int) {
	return g.technique.Sequence[g.step], g.left
}

// Tick advances one second. changed is true when a new phase began.
func (g *Guide) Tick() (phase Phase, changed bool) {
	g.left--
	if g.left < 0 {
		g.step = (g.step + 1) % len(g.technique.Sequence)
		g.left = g.technique.Sequence[g.step].Seconds
		changed = true
	}
	return g.technique.Sequence[g.step], changed
}

// Prompt is the on-screen text, e.g. "Inhale (3)".
func (g *Guide) Prompt() string {
	p, left := g.Current()
	return fmt.Sprintf("%s (%d)", p.Action, left)
}

// NextID cycles through technique ids; "" means off.
func NextID(current string) string {
	if current == "" {
		return Techniques[0].ID
	}
	for i, t := range Techniques {
		if t.ID == current {
			if i+1 < len(Techniques) {
				return Techniques[i+1].ID
			}
			return ""
		}
	}
	return ""
}
