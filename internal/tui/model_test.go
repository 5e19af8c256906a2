package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/meditimer/internal/app"
	"github.com/akyairhashvil/meditimer/internal/config"
	"github.com/akyairhashvil/meditimer/internal/database"
	"github.com/akyairhashvil/meditimer/internal/mocks"
	"github.com/akyairhashvil/meditimer/internal/models"
	"github.com/akyairhashvil/meditimer/internal/session"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/mock/gomock"
)

func setupTestModel(t *testing.T) Model {
	t.Helper()
	ctx := context.Background()
	db, err := database.Open(ctx, filepath.Join(t.TempDir(), "tui.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	cfg := config.Default()
	cfg.Audio.DefaultSound = "silence"
	cfg.Reminder.Timezone = "UTC"
	queue := NewNoticeQueue()
	a := app.New(cfg, db, mocks.NewMockPlayer(gomock.NewController(t)), nil, queue)
	if err := a.Init(ctx); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return NewModel(ctx, a, queue, cfg.Session.Presets)
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return out, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInitialViewShowsInfinity(t *testing.T) {
	m := setupTestModel(t)
	if !strings.Contains(m.View(), Infinity) {
		t.Fatalf("expected %s before any interaction", Infinity)
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	st := m.app.Status()
	if !st.Touched || st.Minutes != config.DefaultMinutes+1 {
		t.Fatalf("expected %d minutes selected, got %+v", config.DefaultMinutes+1, st)
	}
	if strings.Contains(m.View(), Infinity) {
		t.Fatalf("expected minutes instead of %s after interaction", Infinity)
	}
}

func TestPresetKeys(t *testing.T) {
	m := setupTestModel(t)
	m, _ = send(t, m, runes("2"))
	if got := m.app.Status().Minutes; got != config.DurationPresets[1] {
		t.Fatalf("expected preset %d, got %d", config.DurationPresets[1], got)
	}
}

func TestStartStopDropsStaleTicks(t *testing.T) {
	m := setupTestModel(t)
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if cmd == nil {
		t.Fatalf("expected tick command after start")
	}
	if !m.app.Status().Session.Active() {
		t.Fatalf("expected active session")
	}
	live := TickMsg{Gen: m.timer.gen, At: time.Now()}
	m, cmd = send(t, m, live)
	if cmd == nil {
		t.Fatalf("expected next tick to be scheduled")
	}
	want := config.DefaultMinutes*60 - 1
	if got := m.app.Status().Session.Remaining; got != want {
		t.Fatalf("expected %d remaining, got %d", want, got)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.app.Status().Session.State != session.Idle {
		t.Fatalf("expected idle after stop")
	}
	m, cmd = send(t, m, live)
	if cmd != nil {
		t.Fatalf("expected stale tick to be dropped")
	}
	if got := m.app.Status().Session.Remaining; got != 0 {
		t.Fatalf("stale tick changed remaining to %d", got)
	}
}

func TestPauseHaltsTicks(t *testing.T) {
	m := setupTestModel(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	gen := m.timer.gen
	m, _ = send(t, m, runes("p"))
	if !m.app.Status().Session.Paused() {
		t.Fatalf("expected paused session")
	}
	if _, cmd := send(t, m, TickMsg{Gen: gen}); cmd != nil {
		t.Fatalf("expected tick while paused to be dropped")
	}
	m, cmd := send(t, m, runes("p"))
	if cmd == nil || m.app.Status().Session.State != session.Running {
		t.Fatalf("expected resume to restart ticking")
	}
}

func TestCompletionShowsModal(t *testing.T) {
	m := setupTestModel(t)
	m.app.SelectDuration(1)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	at := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		m, _ = send(t, m, TickMsg{Gen: m.timer.gen, At: at})
	}
	if m.timer.Running() {
		t.Fatalf("expected timer halted after completion")
	}
	if len(m.modal) != 2 || m.modal[0].Kind != models.NoticeCompleted {
		t.Fatalf("expected completion and achievement notices, got %+v", m.modal)
	}
	if !strings.Contains(m.View(), "Session complete") {
		t.Fatalf("expected completion modal in view")
	}
	m, _ = send(t, m, runes("q"))
	if len(m.modal) != 2 {
		t.Fatalf("expected keys other than OK to be ignored by the modal")
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.modal) != 0 {
		t.Fatalf("expected modal queue drained")
	}
	if got := m.app.Status().Stats.TotalMinutes; got != 1 {
		t.Fatalf("expected 1 minute recorded, got %d", got)
	}
}

func TestMouseDragSetsMinutes(t *testing.T) {
	m := setupTestModel(t)
	cx, cy := m.dial.center()
	m, _ = send(t, m, tea.MouseMsg{X: cx + 10, Y: cy, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := m.app.Status().Minutes; got != 15 {
		t.Fatalf("expected 15 minutes at three o'clock, got %d", got)
	}
	m, _ = send(t, m, tea.MouseMsg{X: cx, Y: cy + 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if got := m.app.Status().Minutes; got != 30 {
		t.Fatalf("expected 30 minutes at six o'clock, got %d", got)
	}
	m, _ = send(t, m, tea.MouseMsg{X: cx, Y: cy + 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m, _ = send(t, m, tea.MouseMsg{X: cx + 10, Y: cy, Action: tea.MouseActionMotion})
	if got := m.app.Status().Minutes; got != 30 {
		t.Fatalf("motion after release changed minutes to %d", got)
	}
}

func TestMouseIgnoredWhileActive(t *testing.T) {
	m := setupTestModel(t)
	m.app.SelectDuration(10)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	cx, cy := m.dial.center()
	m, _ = send(t, m, tea.MouseMsg{X: cx + 10, Y: cy, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := m.app.Status().Session.Minutes; got != 10 {
		t.Fatalf("dial changed active session to %d", got)
	}
}

func TestReminderEditor(t *testing.T) {
	m := setupTestModel(t)
	m, _ = send(t, m, runes("r"))
	if !m.editingReminder {
		t.Fatalf("expected reminder editor open")
	}
	for _, r := range "07:30" {
		m, _ = send(t, m, runes(string(r)))
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.editingReminder {
		t.Fatalf("expected editor closed, err=%v", m.err)
	}
	got := m.app.Status().Reminder
	if got != (models.Reminder{Hour: 7, Minute: 30, Enabled: true}) {
		t.Fatalf("unexpected reminder %+v", got)
	}

	m, _ = send(t, m, runes("r"))
	m.reminderInput.SetValue("99:99")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.editingReminder || m.err == nil {
		t.Fatalf("expected invalid time to keep the editor open with an error")
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.editingReminder {
		t.Fatalf("expected esc to close the editor")
	}
}

func TestOrientationAndSoundKeys(t *testing.T) {
	m := setupTestModel(t)
	m, _ = send(t, m, runes("o"))
	if m.app.Status().Orientation != session.Drain {
		t.Fatalf("expected drain orientation")
	}
	m, _ = send(t, m, runes("-"))
	if got := m.app.Status().Volume; got > config.DefaultVolume-config.VolumeStep+1e-9 || got < config.DefaultVolume-config.VolumeStep-1e-9 {
		t.Fatalf("unexpected volume %v", got)
	}
	m, _ = send(t, m, runes("b"))
	if m.app.Status().Breathing == "" {
		t.Fatalf("expected breathing technique selected")
	}
}

func TestQuitStopsSession(t *testing.T) {
	m := setupTestModel(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, cmd := send(t, m, runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if m.app.Status().Session.Active() {
		t.Fatalf("expected session stopped on quit")
	}
}
