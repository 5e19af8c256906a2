// Package tui is the terminal presenter: a countdown dial, ambient sound and
// breathing controls, practice stats and one-button notices.
package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/meditimer/internal/app"
	"github.com/akyairhashvil/meditimer/internal/config"
	"github.com/akyairhashvil/meditimer/internal/models"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// headerLines is the height of the title block above the dial.
const headerLines = 2

type Model struct {
	ctx      context.Context
	app      *app.App
	notices  *NoticeQueue
	registry *HandlerRegistry
	timer    TimerManager
	progress progress.Model
	presets  []int

	reminderInput   textinput.Model
	editingReminder bool

	modal    []models.Notice
	dial     dialGeometry
	dragging bool

	err           error
	Message       string
	width, height int
}

// NewModel builds the presenter. notices must be the Presenter the app was
// constructed with.
func NewModel(ctx context.Context, a *app.App, notices *NoticeQueue, presets []int) Model {
	ri := textinput.New()
	ri.Placeholder = "HH:MM or off"
	ri.CharLimit = 5
	ri.Width = 12

	if len(presets) == 0 {
		presets = config.DurationPresets
	}
	m := Model{
		ctx:           ctx,
		app:           a,
		notices:       notices,
		registry:      NewHandlerRegistry(),
		timer:         NewTimerManager(),
		progress:      progress.New(progress.WithDefaultGradient()),
		presets:       presets,
		reminderInput: ri,
		dial: dialGeometry{
			radius:  config.DialRadius,
			originX: CurrentTheme.Base.GetMarginLeft(),
			originY: CurrentTheme.Base.GetMarginTop() + headerLines,
		},
	}
	m.progress.Width = 30
	registerKeys(m.registry, len(presets))
	m.collectNotices()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return ReminderTickMsg(time.Now()) },
		reminderTickCmd(),
	)
}

func (m Model) mode() Mode {
	if m.app.Status().Session.Active() {
		return ModeActive
	}
	return ModeIdle
}

func (m *Model) collectNotices() {
	if m.notices == nil {
		return
	}
	m.modal = append(m.modal, m.notices.Drain()...)
}

func registerKeys(r *HandlerRegistry, presets int) {
	idle := []Mode{ModeIdle}
	active := []Mode{ModeActive}

	r.Register(KeyBinding{Key: " ", Handler: handleStartStop, Description: "start/stop", Priority: 10})
	r.Register(KeyBinding{Key: "p", Handler: handlePause, Description: "pause", Modes: active, Priority: 9})
	r.Register(KeyBinding{Key: "left", Handler: handleAdjust, Description: "-1 min", Modes: idle, Priority: 8})
	r.Register(KeyBinding{Key: "right", Handler: handleAdjust, Description: "+1 min", Modes: idle, Priority: 8})
	for i := 0; i < presets && i < 9; i++ {
		desc := ""
		if i == 0 {
			desc = "presets"
		}
		r.Register(KeyBinding{Key: string(rune('1' + i)), Handler: handlePreset, Description: desc, Modes: idle, Priority: 7})
	}
	r.Register(KeyBinding{Key: "s", Handler: handleSound, Description: "sound", Priority: 6})
	r.Register(KeyBinding{Key: "+", Handler: handleVolume, Description: "vol+", Priority: 5})
	r.Register(KeyBinding{Key: "=", Handler: handleVolume, Priority: 5})
	r.Register(KeyBinding{Key: "-", Handler: handleVolume, Description: "vol-", Priority: 5})
	r.Register(KeyBinding{Key: "b", Handler: handleBreathing, Description: "breathing", Priority: 4})
	r.Register(KeyBinding{Key: "o", Handler: handleOrientation, Description: "orientation", Priority: 3})
	r.Register(KeyBinding{Key: "r", Handler: handleReminder, Description: "reminder", Priority: 2})
	r.Register(KeyBinding{Key: "q", Handler: handleQuit, Description: "quit", Priority: 1})
	r.Register(KeyBinding{Key: "ctrl+c", Handler: handleQuit, Priority: 1})
}
