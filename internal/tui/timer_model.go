package tui

import (
	"time"

	"github.com/akyairhashvil/meditimer/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is one elapsed second. Gen ties it to the schedule that asked for it.
type TickMsg struct {
	Gen int
	At  time.Time
}

// ReminderTickMsg polls the daily reminder.
type ReminderTickMsg time.Time

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg { return TickMsg{Gen: gen, At: t} })
}

func reminderTickCmd() tea.Cmd {
	return tea.Tick(config.ReminderCheckInterval, func(t time.Time) tea.Msg { return ReminderTickMsg(t) })
}

// TimerManager owns the tick schedule. Halting bumps the generation so any
// tick already in flight is dropped on arrival.
type TimerManager struct {
	gen     int
	running bool
}

func NewTimerManager() TimerManager {
	return TimerManager{}
}

// Begin starts a fresh schedule.
func (t *TimerManager) Begin() tea.Cmd {
	t.gen++
	t.running = true
	return tickCmd(t.gen)
}

func (t *TimerManager) Halt() {
	t.gen++
	t.running = false
}

// Accepts reports whether msg belongs to the live schedule.
func (t TimerManager) Accepts(msg TickMsg) bool {
	return t.running && msg.Gen == t.gen
}

func (t TimerManager) Next() tea.Cmd {
	return tickCmd(t.gen)
}

func (t TimerManager) Running() bool { return t.running }
