package tui

import (
	"math"
	"strings"

	"github.com/akyairhashvil/meditimer/internal/session"
	"github.com/charmbracelet/x/ansi"
)

const (
	ringFilled = "●"
	ringEmpty  = "·"
	ringHandle = "◉"
)

// dialGeometry places the dial on screen so mouse events can be mapped back
// onto it. Columns are doubled to keep the ring round in a terminal.
type dialGeometry struct {
	radius  int
	originX int
	originY int
}

func (g dialGeometry) width() int { return 4*g.radius + 1 }
func (g dialGeometry) height() int { return 2*g.radius + 1 }

func (g dialGeometry) center() (int, int) {
	return g.originX + 2*g.radius, g.originY + g.radius
}

// contains reports whether the screen cell (x, y) lies within the dial box.
func (g dialGeometry) contains(x, y int) bool {
	return x >= g.originX && x < g.originX+g.width() && y >= g.originY && y < g.originY+g.height()
}

// angleAt converts a screen cell into a dial angle.
func (g dialGeometry) angleAt(x, y int) float64 {
	cx, cy := g.center()
	return session.AngleFromPoint(float64(x-cx)/2, float64(y-cy))
}

// renderDial draws the ring with everything up to progress filled, the handle
// at handle degrees, and label centred inside.
func renderDial(radius int, progress, handle float64, showHandle bool, label string) string {
	r := float64(radius)
	handleCell := [2]int{math.MaxInt, math.MaxInt}
	if showHandle {
		rad := (handle - 90) * math.Pi / 180
		handleCell = [2]int{int(math.Round(2 * r * math.Cos(rad))), int(math.Round(r * math.Sin(rad)))}
	}

	var b strings.Builder
	for row := -radius; row <= radius; row++ {
		if row == 0 {
			b.WriteString(renderLabelRow(radius, progress, handleCell, label))
		} else {
			for col := -2 * radius; col <= 2*radius; col++ {
				b.WriteString(dialCell(col, row, r, progress, handleCell))
			}
		}
		if row < radius {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func dialCell(col, row int, r, progress float64, handle [2]int) string {
	if col == handle[0] && row == handle[1] {
		return CurrentTheme.Handle.Render(ringHandle)
	}
	dx, dy := float64(col)/2, float64(row)
	if math.Abs(math.Hypot(dx, dy)-r) >= 0.5 {
		return " "
	}
	if progress > 0 && session.AngleFromPoint(dx, dy) <= progress {
		return CurrentTheme.RingDone.Render(ringFilled)
	}
	return CurrentTheme.Ring.Render(ringEmpty)
}

func renderLabelRow(radius int, progress float64, handle [2]int, label string) string {
	inner := 4*radius - 3
	label = ansi.Truncate(label, inner, "")
	w := ansi.StringWidth(label)
	left := 2*radius - w/2
	var b strings.Builder
	for col := -2 * radius; col <= 2*radius; {
		idx := col + 2*radius
		if idx == left && w > 0 {
			b.WriteString(CurrentTheme.Countdown.Render(label))
			col += w
			continue
		}
		b.WriteString(dialCell(col, 0, float64(radius), progress, handle))
		col++
	}
	return b.String()
}
