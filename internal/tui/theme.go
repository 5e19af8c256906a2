package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Countdown lipgloss.Style
	Ring      lipgloss.Style
	RingDone  lipgloss.Style
	Handle    lipgloss.Style
	Breath    lipgloss.Style
	Modal     lipgloss.Style
	Input     lipgloss.Style
	Error     lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Countdown: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Ring:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		RingDone:  lipgloss.NewStyle().Foreground(lipgloss.Color("79")),
		Handle:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Breath:    lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Italic(true),
		Modal:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(1, 2).Width(44),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(30),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Countdown: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Ring:      lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		RingDone:  lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		Handle:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Breath:    lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Italic(true),
		Modal:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(1, 2).Width(44),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(30),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
	},
}

// CurrentTheme holds the active theme.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}
