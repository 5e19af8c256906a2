// Package app owns the running meditation state: the session clock, audio,
// breathing guide, stats and reminder. One App is built at startup and
// driven by a presenter (the TUI or the headless runner).
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/akyairhashvil/meditimer/internal/audio"
	"github.com/akyairhashvil/meditimer/internal/breathing"
	"github.com/akyairhashvil/meditimer/internal/config"
	"github.com/akyairhashvil/meditimer/internal/database"
	"github.com/akyairhashvil/meditimer/internal/models"
	"github.com/akyairhashvil/meditimer/internal/reminder"
	"github.com/akyairhashvil/meditimer/internal/session"
	"github.com/akyairhashvil/meditimer/internal/stats"
	"github.com/akyairhashvil/meditimer/internal/util"
)

// App is safe for concurrent use.
type App struct {
	mu sync.Mutex

	cfg       config.Config
	store     database.StatsStore
	presenter Presenter
	ambient   *audio.Ambient
	clock     *session.Clock
	loc       *time.Location
	now       func() time.Time

	minutes     int
	touched     bool
	orientation session.Orientation

	breathingID string
	guide       *breathing.Guide

	stats        models.Stats
	achievements models.Achievements
	reminder     models.Reminder
	lastReminder time.Time
}

// Status is a read-only view for presenters.
type Status struct {
	Session      session.Snapshot
	Minutes      int
	Touched      bool
	Orientation  session.Orientation
	Angle        float64
	Sound        audio.Sound
	Volume       float64
	Playing      bool
	Breathing    string
	Prompt       string
	Stats        models.Stats
	Achievements models.Achievements
	Reminder     models.Reminder
}

// New wires the context. loop plays the ambient track, cues plays breathing
// prompts; cues may be nil.
func New(cfg config.Config, store database.StatsStore, loop, cues audio.Player, p Presenter) *App {
	loc, err := cfg.Location()
	if err != nil {
		util.LogError("load timezone", err)
		loc = time.Local
	}
	orientation, err := session.ParseOrientation(cfg.Session.Orientation)
	if err != nil {
		orientation = session.Fill
	}
	if p == nil {
		p = PresenterFunc(func(models.Notice) {})
	}
	a := &App{
		cfg:          cfg,
		store:        store,
		presenter:    p,
		ambient:      audio.NewAmbient(loop, cues, cfg.Audio.Volume),
		clock:        session.NewClock(),
		loc:          loc,
		now:          time.Now,
		minutes:      session.ClampMinutes(cfg.Session.DefaultMinutes),
		orientation:  orientation,
		stats:        models.DefaultStats(),
		achievements: models.Achievements{},
		reminder:     models.DefaultReminder(),
	}
	if s, err := audio.ParseSound(cfg.Audio.DefaultSound); err == nil {
		util.LogError("select default sound", a.ambient.Select(context.Background(), s, false))
	}
	return a
}

// WithClock overrides the wall clock used for stats and reminders.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// Init loads persisted state. A corrupt key is reset to its default and
// written back; any other store error aborts.
func (a *App) Init(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, err := a.store.LoadStats(ctx)
	if err = a.recoverCorrupt(err, func() error { return a.store.SaveStats(ctx, s) }); err != nil {
		return err
	}
	ach, err := a.store.LoadAchievements(ctx)
	if err = a.recoverCorrupt(err, func() error { return a.store.SaveAchievements(ctx, ach) }); err != nil {
		return err
	}
	rem, err := a.store.LoadReminder(ctx)
	if err = a.recoverCorrupt(err, func() error { return a.store.SaveReminder(ctx, rem) }); err != nil {
		return err
	}
	stats.Refresh(&s, a.now().In(a.loc))
	a.stats, a.achievements, a.reminder = s, ach, rem
	return nil
}

func (a *App) recoverCorrupt(err error, reset func() error) error {
	var perr *database.ParseError
	if err == nil {
		return nil
	}
	if !errors.As(err, &perr) {
		return err
	}
	log.Printf("stored %s is corrupt, resetting: %v", perr.Key, perr.Err)
	if err := reset(); err != nil {
		return fmt.Errorf("reset %s: %w", perr.Key, err)
	}
	return nil
}

// Teardown stops any session and flushes state.
func (a *App) Teardown(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopLocked()
	stats.Refresh(&a.stats, a.now().In(a.loc))
	return errors.Join(
		a.store.SaveStats(ctx, a.stats),
		a.store.SaveAchievements(ctx, a.achievements),
		a.store.SaveReminder(ctx, a.reminder),
	)
}

func (a *App) Status() Status {
	a.mu.Lock()
	defer a.mu.Unlock()
	st := Status{
		Session:      a.clock.Snapshot(),
		Minutes:      a.minutes,
		Touched:      a.touched,
		Orientation:  a.orientation,
		Angle:        a.clock.Angle(a.orientation),
		Sound:        a.ambient.Sound(),
		Volume:       a.ambient.Volume(),
		Playing:      a.ambient.Playing(),
		Breathing:    a.breathingID,
		Stats:        a.stats,
		Achievements: make(models.Achievements, len(a.achievements)),
		Reminder:     a.reminder,
	}
	st.Stats.MeditationDays = append([]string(nil), a.stats.MeditationDays...)
	for k, v := range a.achievements {
		st.Achievements[k] = v
	}
	if a.guide != nil && st.Session.Active() {
		st.Prompt = a.guide.Prompt()
	}
	return st
}

// SelectDuration sets the next session length. Ignored while a session is active.
func (a *App) SelectDuration(minutes int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.clock.Snapshot().Active() {
		return false
	}
	a.minutes = session.ClampMinutes(minutes)
	a.touched = true
	return true
}

// AdjustDuration moves the selection by delta minutes.
func (a *App) AdjustDuration(delta int) bool {
	a.mu.Lock()
	m := a.minutes
	a.mu.Unlock()
	return a.SelectDuration(m + delta)
}

// SelectSound switches the ambient track by name.
func (a *App) SelectSound(ctx context.Context, name string) error {
	s, err := audio.ParseSound(name)
	if err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.selectSoundLocked(ctx, s)
	return nil
}

// CycleSound advances to the next track.
func (a *App) CycleSound(ctx context.Context) audio.Sound {
	a.mu.Lock()
	defer a.mu.Unlock()
	next := a.ambient.Sound().Next()
	a.selectSoundLocked(ctx, next)
	return next
}

func (a *App) selectSoundLocked(ctx context.Context, s audio.Sound) {
	if err := a.ambient.Select(ctx, s, a.clock.State() == session.Running); err != nil {
		a.audioFailedLocked(err)
	}
}

func (a *App) SetVolume(ctx context.Context, v float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.ambient.SetVolume(ctx, v); err != nil {
		a.audioFailedLocked(err)
	}
}

func (a *App) AdjustVolume(ctx context.Context, delta float64) {
	a.mu.Lock()
	v := a.ambient.Volume()
	a.mu.Unlock()
	a.SetVolume(ctx, v+delta)
}

func (a *App) SetOrientation(o session.Orientation) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.orientation = o
}

func (a *App) ToggleOrientation() session.Orientation {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.orientation == session.Fill {
		a.orientation = session.Drain
	} else {
		a.orientation = session.Fill
	}
	return a.orientation
}

// Start begins a session of the selected length. A second Start while a
// session is active does nothing. Audio failure does not stop the session.
func (a *App) Start(ctx context.Context) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.clock.Start(a.minutes) {
		return false
	}
	a.touched = true
	log.Printf("session %s: started %d min", a.clock.ID(), a.clock.Minutes())
	if err := a.ambient.Start(ctx); err != nil {
		a.audioFailedLocked(err)
	}
	if a.breathingID != "" {
		a.beginBreathingLocked(ctx)
	}
	return true
}

// Tick advances a running session by one second.
func (a *App) Tick(ctx context.Context, now time.Time) session.TickResult {
	a.mu.Lock()
	defer a.mu.Unlock()
	res := a.clock.Tick()
	if a.clock.State() == session.Running && a.guide != nil {
		if phase, changed := a.guide.Tick(); changed {
			util.LogError("breathing cue", a.ambient.Cue(ctx, phase.Cue))
		}
	}
	if res.Completed {
		a.completeLocked(ctx, now)
	}
	return res
}

func (a *App) Pause() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.clock.Pause() {
		return false
	}
	a.ambient.Stop()
	a.ambient.StopCues()
	return true
}

func (a *App) Resume(ctx context.Context) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.clock.Resume() {
		return false
	}
	if err := a.ambient.Start(ctx); err != nil {
		a.audioFailedLocked(err)
	}
	return true
}

// Stop cancels the session without recording it. Idempotent.
func (a *App) Stop() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stopLocked()
}

func (a *App) stopLocked() bool {
	id := a.clock.ID()
	stopped := a.clock.Stop()
	a.ambient.Stop()
	a.ambient.StopCues()
	a.guide = nil
	if stopped {
		log.Printf("session %s: stopped", id)
	}
	return stopped
}

func (a *App) completeLocked(ctx context.Context, now time.Time) {
	minutes := a.clock.Minutes()
	id := a.clock.ID()
	a.stopLocked()

	stats.RecordSession(&a.stats, minutes, now.In(a.loc))
	fresh := stats.Evaluate(a.stats, a.achievements)
	log.Printf("session %s: completed %d min, streak %d", id, minutes, a.stats.Streak)

	if err := errors.Join(
		a.store.SaveStats(ctx, a.stats),
		a.store.SaveAchievements(ctx, a.achievements),
	); err != nil {
		util.LogError("save session", err)
		a.presenter.Notify(models.Notice{Kind: models.NoticeError, Title: "Could not save", Message: err.Error(), At: now})
	}

	a.presenter.Notify(models.Notice{
		Kind:    models.NoticeCompleted,
		Title:   "Session complete",
		Message: fmt.Sprintf("You meditated for %d min. Streak: %d days.", minutes, a.stats.Streak),
		At:      now,
	})
	for _, aid := range fresh {
		ach, ok := stats.Lookup(aid)
		if !ok {
			continue
		}
		a.presenter.Notify(models.Notice{
			Kind:    models.NoticeAchievement,
			Title:   ach.Icon + " " + ach.Title,
			Message: ach.Description,
			At:      now,
		})
	}
}

func (a *App) audioFailedLocked(err error) {
	util.LogError("ambient audio", err)
	a.presenter.Notify(models.Notice{
		Kind:    models.NoticeError,
		Title:   "Sound unavailable",
		Message: "Continuing in silence.",
		At:      a.now(),
	})
}

// StartBreathing selects a technique; it starts with the next session or
// immediately if one is running.
func (a *App) StartBreathing(ctx context.Context, id string) error {
	if _, err := breathing.Lookup(id); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.breathingID = id
	if a.clock.Snapshot().Active() {
		a.beginBreathingLocked(ctx)
	}
	return nil
}

func (a *App) StopBreathing() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.breathingID = ""
	a.guide = nil
	a.ambient.StopCues()
}

// CycleBreathing steps through the techniques and then off.
func (a *App) CycleBreathing(ctx context.Context) string {
	a.mu.Lock()
	next := breathing.NextID(a.breathingID)
	a.mu.Unlock()
	if next == "" {
		a.StopBreathing()
		return ""
	}
	util.LogError("start breathing", a.StartBreathing(ctx, next))
	return next
}

func (a *App) beginBreathingLocked(ctx context.Context) {
	t, err := breathing.Lookup(a.breathingID)
	if err != nil {
		return
	}
	a.guide = breathing.NewGuide(t)
	phase, _ := a.guide.Current()
	if a.clock.State() == session.Running {
		util.LogError("breathing cue", a.ambient.Cue(ctx, phase.Cue))
	}
}

// SetReminder validates and persists the daily reminder.
func (a *App) SetReminder(ctx context.Context, r models.Reminder) error {
	if err := reminder.Validate(r); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.store.SaveReminder(ctx, r); err != nil {
		return err
	}
	a.reminder = r
	return nil
}

// CheckReminder raises the reminder notice once per day at the set time.
// The streak is refreshed on every check so it lapses at local midnight.
func (a *App) CheckReminder(now time.Time) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	stats.Refresh(&a.stats, now.In(a.loc))
	if !reminder.Due(a.reminder, a.lastReminder, now, a.loc) {
		return false
	}
	a.lastReminder = now
	a.presenter.Notify(models.Notice{
		Kind:    models.NoticeReminder,
		Title:   "Time to meditate",
		Message: fmt.Sprintf("Your daily practice is set for %s.", reminder.Format(a.reminder)),
		At:      now,
	})
	return true
}
