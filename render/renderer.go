package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hippo-arena/arena"
	"github.com/lixenwraith/hippo-arena/parameter"
)

// HUD carries host state shown alongside the board
type HUD struct {
	FPS        float64
	Paused     bool
	Muted      bool
	Spectators int64
	ShowStatus bool
}

// Renderer draws arena snapshots onto a tcell screen
// It never mutates the arena; everything comes from the snapshot
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders one frame and shows it
func (r *Renderer) Draw(snap arena.Snapshot, hud HUD) {
	s := r.screen
	s.Clear()

	w, h := s.Size()
	l := NewLayout(w, h)

	r.drawFrame(l)
	r.drawSpheres(l, snap)
	r.drawHippos(l, snap)

	if snap.Phase != "countdown" {
		r.drawScores(l, snap)
	}
	r.drawOverlays(l, snap)

	if hud.ShowStatus {
		r.drawStatus(l, snap, hud)
	}
	s.Show()
}

func (r *Renderer) drawFrame(l Layout) {
	s := r.screen
	x0, y0 := l.X, l.Y
	x1, y1 := l.X+l.Cols+1, l.Y+l.Rows+1

	for x := x0 + 1; x < x1; x++ {
		s.SetContent(x, y0, '─', nil, styleFrame)
		s.SetContent(x, y1, '─', nil, styleFrame)
	}
	for y := y0 + 1; y < y1; y++ {
		s.SetContent(x0, y, '│', nil, styleFrame)
		s.SetContent(x1, y, '│', nil, styleFrame)
	}
	s.SetContent(x0, y0, '┌', nil, styleFrame)
	s.SetContent(x1, y0, '┐', nil, styleFrame)
	s.SetContent(x0, y1, '└', nil, styleFrame)
	s.SetContent(x1, y1, '┘', nil, styleFrame)

	cx, cy := l.Center()
	s.SetContent(cx, cy, '+', nil, styleCenter)
}

func (r *Renderer) drawSpheres(l Layout, snap arena.Snapshot) {
	for _, sp := range snap.Spheres {
		x, y := l.Cell(sp.X, sp.Y)
		switch {
		case sp.PowerUp != "":
			glyph, color := powerUpGlyph(sp.PowerUp)
			style := styleDefault.Foreground(color)
			if Pulse(snap.GameTimeMs-sp.SpawnMs) > 0.7 {
				style = style.Bold(true)
			} else {
				style = style.Dim(true)
			}
			r.screen.SetContent(x, y, glyph, nil, style)
		case sp.Bonus:
			r.screen.SetContent(x, y, '@', nil, styleBonus)
		default:
			r.screen.SetContent(x, y, 'o', nil, styleSphere)
		}
	}
}

// MouthOpen reports whether the strike animation shows an open mouth
func MouthOpen(progress float64) bool {
	return progress > 0.3 && progress < 0.7
}

func (r *Renderer) drawHippos(l Layout, snap arena.Snapshot) {
	for _, hp := range snap.Hippos {
		style := styleDefault.Foreground(hippoColor(hp.ID))
		if hp.Buff != "" {
			style = style.Bold(true)
		}

		// Neck from body to head
		bx, by := l.Cell(hp.X, hp.Y)
		hx, hy := l.Cell(hp.HeadX, hp.HeadY)
		steps := max(abs(hx-bx), abs(hy-by))
		for i := 1; i < steps; i++ {
			t := float64(i) / float64(steps)
			x := bx + int(math.Round(float64(hx-bx)*t))
			y := by + int(math.Round(float64(hy-by)*t))
			r.screen.SetContent(x, y, '·', nil, style)
		}

		r.screen.SetContent(bx, by, 'H', nil, style)

		head := '◆'
		if hp.Eating && MouthOpen(hp.Progress) {
			head = '◇'
		}
		r.screen.SetContent(hx, hy, head, nil, style)

		label := hp.Personality
		if hp.Buff != "" {
			glyph, _ := powerUpGlyph(hp.Buff)
			label += " [" + string(glyph) + "]"
		}
		lx := bx - len([]rune(label))/2
		ly := by + 1
		if hp.Direction == "S" {
			ly = by - 1
		}
		r.text(lx, ly, label, style)
	}
}

func (r *Renderer) drawScores(l Layout, snap arena.Snapshot) {
	corners := [4][2]int{
		{l.X + 2, l.Y + 1},
		{l.X + l.Cols, l.Y + 1},
		{l.X + 2, l.Y + l.Rows},
		{l.X + l.Cols, l.Y + l.Rows},
	}
	for i, hp := range snap.Hippos {
		if i >= len(corners) {
			break
		}
		name := hp.Direction
		if hp.Personality == "player" {
			name = "You"
		}
		line := fmt.Sprintf("%s: %d", name, hp.Score)
		x, y := corners[i][0], corners[i][1]
		if i%2 == 1 {
			x -= len(line) - 1
		}
		r.text(x, y, line, styleDefault.Foreground(hippoColor(hp.ID)).Bold(true))
	}
}

// CountdownLabel is the overlay text during countdown: remaining whole seconds, then GO!
func CountdownLabel(elapsedMs, totalMs int64) string {
	remaining := int(math.Ceil(float64(totalMs-elapsedMs) / 1000))
	if remaining > 0 {
		return fmt.Sprintf("%d", remaining)
	}
	return "GO!"
}

// StuckWarning returns the shake warning, empty while the episode is short
func StuckWarning(stuckMs, limitMs int64) string {
	if stuckMs <= parameter.StuckWarningAfter.Milliseconds() {
		return ""
	}
	left := int(math.Ceil(float64(limitMs-stuckMs) / 1000))
	if left < 0 {
		left = 0
	}
	return fmt.Sprintf(" Balls stuck! Shaking in %d seconds... ", left)
}

func (r *Renderer) drawOverlays(l Layout, snap arena.Snapshot) {
	cx, cy := l.Center()

	switch snap.Phase {
	case "countdown":
		r.centered(cx, cy-2, " Get ready! ", styleBanner)
		r.centered(cx, cy, " "+CountdownLabel(snap.CountdownMs, snap.CountdownTotalMs)+" ", styleBanner)
	case "playing":
		if snap.GameTimeMs < parameter.GoBannerDuration.Milliseconds() {
			r.centered(cx, cy, " GO! ", styleBanner)
		}
	case "gameover":
		r.centered(cx, cy-2, " Game Over! ", styleBanner)
		if snap.Winner != nil {
			r.centered(cx, cy, fmt.Sprintf(" Winner: %s ", snap.Winner.Name), styleBanner)
			r.centered(cx, cy+1, fmt.Sprintf(" Score: %d ", snap.Winner.Score), styleBanner)
		}
		r.centered(cx, cy+3, " r: play again   q: quit ", styleBanner)
	}

	if warn := StuckWarning(snap.StuckMs, snap.StuckLimitMs); warn != "" {
		r.centered(cx, l.Y+2, warn, styleWarning)
	}
}

func (r *Renderer) drawStatus(l Layout, snap arena.Snapshot, hud HUD) {
	line := fmt.Sprintf("tick %d  live %d  fps %.0f  spectators %d", snap.Tick, len(snap.Spheres), hud.FPS, hud.Spectators)
	if hud.Paused {
		line += "  [PAUSED]"
	}
	if hud.Muted {
		line += "  [MUTED]"
	}
	r.text(l.X, l.StatusRow(), line, styleStatus)
}

func (r *Renderer) centered(cx, y int, s string, style tcell.Style) {
	r.text(cx-len([]rune(s))/2, y, s, style)
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
