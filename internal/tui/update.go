package tui

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/meditimer/internal/config"
	"github.com/akyairhashvil/meditimer/internal/reminder"
	"github.com/akyairhashvil/meditimer/internal/session"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.collectNotices()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case TickMsg:
		return m.handleTick(msg)
	case ReminderTickMsg:
		m.app.CheckReminder(time.Time(msg))
		return m, reminderTickCmd()
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleTick(msg TickMsg) (Model, tea.Cmd) {
	if !m.timer.Accepts(msg) {
		return m, nil
	}
	res := m.app.Tick(m.ctx, msg.At)
	if res.Completed {
		m.timer.Halt()
		return m, nil
	}
	return m, m.timer.Next()
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return handleQuitModel(m)
	}
	if len(m.modal) > 0 {
		switch key {
		case "enter", "esc", " ":
			m.modal = m.modal[1:]
		}
		return m, nil
	}
	if m.editingReminder {
		return m.handleReminderInput(msg)
	}
	// Clear transient messages on keypress
	m.err = nil
	m.Message = ""

	next, cmd, _ := m.registry.Handle(m, key)
	return next, cmd
}

func (m Model) handleReminderInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editingReminder = false
		m.reminderInput.Blur()
		return m, nil
	case "enter":
		cur := m.app.Status().Reminder
		r, err := reminder.Parse(m.reminderInput.Value(), cur)
		if err == nil {
			err = m.app.SetReminder(m.ctx, r)
		}
		if err != nil {
			m.err = err
			return m, nil
		}
		m.editingReminder = false
		m.reminderInput.Blur()
		m.err = nil
		if r.Enabled {
			m.Message = "Reminder set for " + reminder.Format(r)
		} else {
			m.Message = "Reminder off"
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.reminderInput, cmd = m.reminderInput.Update(msg)
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if len(m.modal) > 0 || m.editingReminder || m.mode() == ModeActive {
		m.dragging = false
		return m, nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.dial.contains(msg.X, msg.Y) {
			return m, nil
		}
		m.dragging = true
	case tea.MouseActionMotion:
		if !m.dragging {
			return m, nil
		}
	case tea.MouseActionRelease:
		if !m.dragging {
			return m, nil
		}
		m.dragging = false
	default:
		return m, nil
	}
	angle := m.dial.angleAt(msg.X, msg.Y)
	m.app.SelectDuration(session.MinutesFromAngle(angle, config.MaxMinutes))
	return m, nil
}

func handleStartStop(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.app.Status().Session.Active() {
		m.app.Stop()
		m.timer.Halt()
		m.Message = "Session stopped"
		return m, nil, true
	}
	if !m.app.Start(m.ctx) {
		return m, nil, true
	}
	return m, m.timer.Begin(), true
}

func handlePause(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.app.Status().Session.Paused() {
		if m.app.Resume(m.ctx) {
			return m, m.timer.Begin(), true
		}
		return m, nil, true
	}
	if m.app.Pause() {
		m.timer.Halt()
	}
	return m, nil, true
}

func handleAdjust(m Model, key string) (Model, tea.Cmd, bool) {
	delta := 1
	if key == "left" {
		delta = -1
	}
	m.app.AdjustDuration(delta)
	return m, nil, true
}

func handlePreset(m Model, key string) (Model, tea.Cmd, bool) {
	idx := int(key[0] - '1')
	if idx < 0 || idx >= len(m.presets) {
		return m, nil, false
	}
	m.app.SelectDuration(m.presets[idx])
	return m, nil, true
}

func handleSound(m Model, _ string) (Model, tea.Cmd, bool) {
	s := m.app.CycleSound(m.ctx)
	m.Message = "Sound: " + s.Label()
	return m, nil, true
}

func handleVolume(m Model, key string) (Model, tea.Cmd, bool) {
	step := config.VolumeStep
	if key == "-" {
		step = -step
	}
	m.app.AdjustVolume(m.ctx, step)
	m.Message = "Volume: " + FormatVolume(m.app.Status().Volume)
	return m, nil, true
}

func handleBreathing(m Model, _ string) (Model, tea.Cmd, bool) {
	if id := m.app.CycleBreathing(m.ctx); id != "" {
		m.Message = "Breathing: " + id
	} else {
		m.Message = "Breathing off"
	}
	return m, nil, true
}

func handleOrientation(m Model, _ string) (Model, tea.Cmd, bool) {
	o := m.app.ToggleOrientation()
	m.Message = fmt.Sprintf("Dial: %s", o)
	return m, nil, true
}

func handleReminder(m Model, _ string) (Model, tea.Cmd, bool) {
	r := m.app.Status().Reminder
	m.reminderInput.SetValue("")
	if r.Enabled {
		m.reminderInput.SetValue(reminder.Format(r))
	}
	m.reminderInput.Focus()
	m.editingReminder = true
	return m, textinput.Blink, true
}

func handleQuit(m Model, _ string) (Model, tea.Cmd, bool) {
	next, cmd := handleQuitModel(m)
	return next, cmd, true
}

func handleQuitModel(m Model) (Model, tea.Cmd) {
	m.app.Stop()
	m.timer.Halt()
	return m, tea.Quit
}
