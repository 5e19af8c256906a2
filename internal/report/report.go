// Package report renders the practice statistics as a PDF.
package report

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/akyairhashvil/meditimer/internal/models"
	"github.com/akyairhashvil/meditimer/internal/stats"
	"github.com/go-pdf/fpdf"
)

// CalendarDays is how many recent days the practice calendar shows.
const CalendarDays = 28

// FileName is the default report name for now.
func FileName(now time.Time) string {
	return fmt.Sprintf("meditation_report_%s.pdf", now.Format(models.DateLayout))
}

// WriteStatsPDF writes the report to path and returns its absolute form.
func WriteStatsPDF(path string, s models.Stats, unlocked models.Achievements, now time.Time) (string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Meditation Report", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Meditation Report: %s", now.Format(models.DateLayout)))
	pdf.Ln(12)

	// Summary
	pdf.SetFont("Arial", "", 12)
	rows := []struct {
		label string
		value string
	}{
		{"Total time", formatMinutes(s.TotalMinutes)},
		{"Sessions completed", fmt.Sprint(s.CompletedSessions)},
		{"Current streak", fmt.Sprintf("%d days", s.Streak)},
		{"Days practised", fmt.Sprint(len(s.MeditationDays))},
		{"Morning sessions", fmt.Sprint(s.MorningMeditations)},
		{"Night sessions", fmt.Sprint(s.NightMeditations)},
		{"Stars", fmt.Sprint(s.Stars)},
	}
	if s.LastMeditation != nil {
		rows = append(rows, struct {
			label string
			value string
		}{"Last session", *s.LastMeditation})
	}
	for _, r := range rows {
		pdf.CellFormat(60, 8, tr(r.label), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, tr(r.value), "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Achievements")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	for _, a := range stats.Catalogue {
		mark := "[ ]"
		if unlocked.Unlocked(a.ID) {
			mark = "[x]"
		}
		pdf.Cell(0, 8, tr(fmt.Sprintf("  %s %s - %s", mark, a.Title, a.Description)))
		pdf.Ln(6)
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Last %d days", CalendarDays))
	pdf.Ln(10)
	drawCalendar(pdf, s, now)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return filepath.Abs(path)
}

func drawCalendar(pdf *fpdf.Fpdf, s models.Stats, now time.Time) {
	const cell = 8.0
	pdf.SetFont("Arial", "", 8)
	x0, y := pdf.GetX(), pdf.GetY()
	start := now.AddDate(0, 0, -(CalendarDays - 1))
	for i := 0; i < CalendarDays; i++ {
		day := start.AddDate(0, 0, i)
		col, row := i%7, i/7
		x := x0 + float64(col)*(cell+2)
		yy := y + float64(row)*(cell+2)
		style := "D"
		if s.HasDay(day.Format(models.DateLayout)) {
			pdf.SetFillColor(120, 170, 140)
			style = "FD"
		}
		pdf.Rect(x, yy, cell, cell, style)
		pdf.SetXY(x, yy)
		pdf.CellFormat(cell, cell, fmt.Sprint(day.Day()), "", 0, "C", false, 0, "")
	}
	pdf.SetXY(x0, y+float64((CalendarDays+6)/7)*(cell+2)+4)
}

func formatMinutes(total int) string {
	if total < 60 {
		return fmt.Sprintf("%d min", total)
	}
	return fmt.Sprintf("%dh %02dm", total/60, total%60)
}

// RecentDays returns up to n practised days, newest first.
func RecentDays(s models.Stats, n int) []string {
	days := append([]string(nil), s.MeditationDays...)
	sort.Sort(sort.Reverse(sort.StringSlice(days)))
	if n >= 0 && len(days) > n {
		days = days[:n]
	}
	return days
}
