package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hippo-arena/parameter"
)

// Hippo colours by seat: N, E, S, W
var hippoColors = [4]tcell.Color{
	tcell.NewHexColor(0x8B4513),
	tcell.NewHexColor(0x9370DB),
	tcell.NewHexColor(0xFF6347),
	tcell.NewHexColor(0x4169E1),
}

var (
	styleDefault = tcell.StyleDefault
	styleFrame   = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x333333))
	styleCenter  = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x666666))
	styleSphere  = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xDDDDDD))
	styleBonus   = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xDDDD11)).Bold(true)
	styleBanner  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack).Bold(true)
	styleWarning = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// powerUpGlyph returns the rune and colour of a power-up type name
func powerUpGlyph(kind string) (rune, tcell.Color) {
	switch kind {
	case "speed":
		return 'S', tcell.NewHexColor(0x00FF00)
	case "range":
		return 'R', tcell.NewHexColor(0xFF00FF)
	default:
		return 'X', tcell.NewHexColor(0xFF0000)
	}
}

// Pulse is the power-up highlight factor in [0.4, 1.0] for a given age in ms
func Pulse(ageMs int64) float64 {
	return math.Sin(float64(ageMs)/float64(parameter.PowerUpPulsePeriod.Milliseconds()))*0.3 + 0.7
}

func hippoColor(id int) tcell.Color {
	return hippoColors[id&3]
}
