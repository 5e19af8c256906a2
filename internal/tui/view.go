package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/meditimer/internal/app"
	"github.com/akyairhashvil/meditimer/internal/config"
	"github.com/akyairhashvil/meditimer/internal/models"
	"github.com/akyairhashvil/meditimer/internal/reminder"
	"github.com/akyairhashvil/meditimer/internal/session"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m Model) View() string {
	st := m.app.Status()
	if len(m.modal) > 0 {
		return m.renderModal(m.modal[0])
	}

	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render(fmt.Sprintf("%s v%s", config.AppName, versionLabel())))
	b.WriteString("\n\n")
	b.WriteString(m.renderDial(st))
	b.WriteString("\n\n")

	for _, line := range m.statusLines(st) {
		b.WriteString(m.fit(line))
		b.WriteByte('\n')
	}
	if m.editingReminder {
		b.WriteString(CurrentTheme.Input.Render(m.reminderInput.View()))
		b.WriteByte('\n')
	}
	switch {
	case m.err != nil:
		b.WriteString(m.fit(CurrentTheme.Error.Render("Error: " + m.err.Error())))
		b.WriteByte('\n')
	case m.Message != "":
		b.WriteString(m.fit(CurrentTheme.Highlight.Render(m.Message)))
		b.WriteByte('\n')
	}
	b.WriteString(m.fit(CurrentTheme.Dim.Render(m.registry.HelpFor(m.mode()))))
	return CurrentTheme.Base.Render(b.String())
}

func (m Model) renderDial(st app.Status) string {
	active := st.Session.Active()
	label := FormatCountdown(active, st.Session.Remaining, st.Minutes, st.Touched)
	if active {
		return renderDial(m.dial.radius, st.Angle, st.Angle, true, label)
	}
	handle := session.AngleForMinutes(st.Minutes, config.MaxMinutes)
	return renderDial(m.dial.radius, 0, handle, st.Touched, label)
}

func (m Model) statusLines(st app.Status) []string {
	var lines []string

	switch st.Session.State {
	case session.Running:
		lines = append(lines, CurrentTheme.Focused.Render("Meditating")+"  "+m.progress.ViewAs(st.Session.Fraction))
	case session.Paused:
		lines = append(lines, CurrentTheme.Dim.Render("Paused")+"  "+m.progress.ViewAs(st.Session.Fraction))
	default:
		lines = append(lines, CurrentTheme.Dim.Render("Choose a duration and press space"))
	}

	sound := fmt.Sprintf("Sound: %s  Volume: %s", st.Sound.Label(), FormatVolume(st.Volume))
	if st.Playing {
		sound += "  ♪"
	}
	lines = append(lines, sound)

	breath := "Breathing: off"
	if st.Breathing != "" {
		breath = "Breathing: " + st.Breathing
		if st.Prompt != "" {
			breath += "  " + CurrentTheme.Breath.Render(st.Prompt)
		}
	}
	lines = append(lines, breath)

	total := FormatDuration(time.Duration(st.Stats.TotalMinutes) * time.Minute)
	lines = append(lines, fmt.Sprintf("Streak: %d days  Total: %s  Sessions: %d  ★ %d",
		st.Stats.Streak, total, st.Stats.CompletedSessions, st.Stats.Stars))

	rem := "Reminder: off"
	if st.Reminder.Enabled {
		rem = "Reminder: " + reminder.Format(st.Reminder)
	}
	lines = append(lines, rem+"  Dial: "+st.Orientation.String())
	return lines
}

func (m Model) renderModal(n models.Notice) string {
	var content strings.Builder
	title := n.Title
	if n.Kind == models.NoticeError {
		content.WriteString(CurrentTheme.Error.Render(title))
	} else {
		content.WriteString(CurrentTheme.Focused.Render(title))
	}
	content.WriteString("\n\n")
	content.WriteString(n.Message)
	content.WriteString("\n\n")
	content.WriteString(CurrentTheme.Highlight.Render("[ OK ]"))
	if more := len(m.modal) - 1; more > 0 {
		content.WriteString(CurrentTheme.Dim.Render(fmt.Sprintf("  (+%d more)", more)))
	}
	box := CurrentTheme.Modal.Render(content.String())
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// fit truncates a rendered line to the terminal width.
func (m Model) fit(line string) string {
	max := m.width - CurrentTheme.Base.GetHorizontalMargins()
	if m.width == 0 || max <= 0 {
		return line
	}
	return ansi.Truncate(line, max, "…")
}
