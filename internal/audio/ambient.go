package audio

import (
	"context"

	"github.com/akyairhashvil/meditimer/internal/util"
)

// Ambient tracks the selected loop, its volume and whether it is playing.
// Pausing stops the loop outright; resuming starts it from the top.
type Ambient struct {
	loop    Player
	cues    Player
	sound   Sound
	volume  float64
	playing bool
}

func NewAmbient(loop, cues Player, volume float64) *Ambient {
	return &Ambient{loop: loop, cues: cues, volume: util.ClampFloat(volume, 0, 1)}
}

func (a *Ambient) Sound() Sound { return a.sound }
func (a *Ambient) Volume() float64 { return a.volume }
func (a *Ambient) Playing() bool { return a.playing }

// Select changes the track. When active, the new track plays straight away,
// even if the previous one was Silence.
func (a *Ambient) Select(ctx context.Context, s Sound, active bool) error {
	if s == a.sound && (a.playing || !active) {
		return nil
	}
	a.Stop()
	a.sound = s
	if active {
		return a.Start(ctx)
	}
	return nil
}

// Start loops the selected track. Silence is a no-op.
func (a *Ambient) Start(ctx context.Context) error {
	if a.sound == Silence {
		return nil
	}
	if err := a.loop.Play(ctx, a.sound.Asset(), true, a.volume); err != nil {
		a.playing = false
		return err
	}
	a.playing = true
	return nil
}

// Stop halts the loop.
func (a *Ambient) Stop() {
	if !a.playing {
		return
	}
	a.playing = false
	util.LogError("stop ambient", a.loop.Stop())
}

// SetVolume clamps v into [0,1] and reapplies it to a running loop.
func (a *Ambient) SetVolume(ctx context.Context, v float64) error {
	a.volume = util.ClampFloat(v, 0, 1)
	if !a.playing {
		return nil
	}
	a.Stop()
	return a.Start(ctx)
}

// Cue plays a one-shot breathing prompt over the loop.
func (a *Ambient) Cue(ctx context.Context, c Cue) error {
	if a.cues == nil {
		return nil
	}
	return a.cues.Play(ctx, c.Asset(), false, a.volume)
}

// StopCues silences any breathing prompt.
func (a *Ambient) StopCues() {
	if a.cues != nil {
		util.LogError("stop cue", a.cues.Stop())
	}
}
