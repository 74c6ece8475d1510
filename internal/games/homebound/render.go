package homebound

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/homebound/internal/core"
)

// Visual characters for rendering
const (
	RunnerChar   = '█'
	ObstacleChar = '▓'
	HeartChar    = '♥'
	EmptyHeart   = '♡'
	ClockChar    = '◷'
	GroundChar   = '▔'
	DirtChar     = '░'
	HatchChar    = '╲'
	StarChar     = '·'
	MoonChar     = '●'
	CloudChar    = '≈'
	WallChar     = '▒'
	RoofChar     = '▲'
	WindowChar   = '■'
	DoorChar     = '▌'
)

var catFrames = [...]string{"=^.^=", "=^-^=", "=^.^=", "=^o^="}

// viewport maps world pixels onto screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen, snap Snapshot) viewport {
	return viewport{
		sx: float64(dst.Width()) / snap.WorldW,
		sy: float64(dst.Height()) / snap.WorldH,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return int(math.Floor(y * v.sy))
}

// rect converts a world rectangle to the cells it covers, at least one cell.
func (v viewport) rect(r core.RectF) core.Rect {
	x0, y0 := v.col(r.X), v.row(r.Y)
	x1 := int(math.Ceil(r.Right() * v.sx))
	y1 := int(math.Ceil(r.Bottom() * v.sy))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Render draws the current session to the screen, scaled to its size.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()
	if snap.WorldW <= 0 || snap.WorldH <= 0 || dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	v := newViewport(dst, snap)

	drawSky(dst, v, snap)
	drawGround(dst, v, snap)

	if snap.Phase == PhaseCleared {
		g.catTicks++
		g.drawHome(dst, v, snap)
	}

	dst.SetColor(core.ColorBrown)
	for _, o := range snap.Obstacles {
		dst.DrawRect(v.rect(o), ObstacleChar)
	}

	for _, it := range snap.Items {
		drawItem(dst, v, it)
	}

	drawRunner(dst, v, snap)
	drawHUD(dst, snap)
	drawOverlay(dst, snap)
}

func drawSky(dst *core.Screen, v viewport, snap Snapshot) {
	tod := snap.TimeOfDay

	if tod.Stars {
		dst.SetColor(core.ColorBrightWhite)
		for i := range 50 {
			x := float64((i * 73) % int(snap.WorldW))
			y := float64((i * 47) % 300)
			dst.Set(v.col(x), v.row(y), StarChar)
		}
	}

	if tod.Moon {
		dst.SetColor(core.ColorBrightYellow)
		dst.Set(v.col(snap.WorldW-100), v.row(100), MoonChar)
	}

	if tod.Clouds {
		dst.SetColor(core.ColorWhite)
		span := snap.WorldW + 200
		for i := range 3 {
			x := math.Mod(snap.BgScroll*0.5+float64(i)*300, span) - 100
			y := 80 + float64(i)*50
			r := v.rect(core.NewRectF(x, y, 100, 1))
			dst.DrawHLine(r.X, r.Y, r.W, CloudChar)
		}
	}
}

func drawGround(dst *core.Screen, v viewport, snap Snapshot) {
	top := v.row(snap.FloorY)

	dst.SetColor(core.ColorGreen)
	dst.DrawHLine(0, top, dst.Width(), GroundChar)
	dst.DrawRect(core.NewRect(0, top+1, dst.Width(), dst.Height()-top-1), DirtChar)

	// Scrolling hatch marks every 50 world pixels
	dst.SetColor(core.ColorBrightGreen)
	offset := math.Mod(snap.BgScroll, 50)
	for x := -offset; x < snap.WorldW; x += 50 {
		dst.Set(v.col(x), top+1, HatchChar)
	}
}

func (g *Game) drawHome(dst *core.Screen, v viewport, snap Snapshot) {
	hx := snap.WorldW - 200
	hy := snap.FloorY - 80

	walls := v.rect(core.NewRectF(hx, hy, 80, 60))
	dst.SetColor(core.ColorBrown)
	dst.DrawRect(walls, WallChar)

	roof := v.rect(core.NewRectF(hx-10, hy-30, 100, 30))
	dst.SetColor(core.ColorRed)
	for dy := range roof.H {
		inset := (roof.H - 1 - dy) * roof.W / (2 * roof.H)
		dst.DrawHLine(roof.X+inset, roof.Y+dy, roof.W-2*inset, RoofChar)
	}

	dst.SetColor(core.ColorBrightYellow)
	dst.DrawRect(v.rect(core.NewRectF(hx+10, hy+15, 15, 15)), WindowChar)
	dst.DrawRect(v.rect(core.NewRectF(hx+55, hy+15, 15, 15)), WindowChar)

	dst.SetColor(core.ColorGray)
	dst.DrawRect(v.rect(core.NewRectF(hx+30, hy+25, 20, 35)), DoorChar)

	// Cat sits by the door, changing pose every ten renders
	cat := catFrames[(g.catTicks/10)%len(catFrames)]
	dst.SetColor(core.ColorOrange)
	dst.DrawText(v.col(hx+30), v.row(snap.FloorY-1), cat)
}

func drawItem(dst *core.Screen, v viewport, it ItemView) {
	cx := it.Rect.X + it.Rect.W/2
	cy := it.Rect.Y + it.Rect.H/2

	switch it.Kind {
	case ItemHeart:
		dst.SetColor(core.ColorBrightRed)
		dst.Set(v.col(cx), v.row(cy), HeartChar)
	case ItemClock:
		dst.SetColor(core.ColorBrightBlue)
		dst.Set(v.col(cx), v.row(cy), ClockChar)
	}
}

func drawRunner(dst *core.Screen, v viewport, snap Snapshot) {
	a := snap.Actor
	if !a.Visible {
		return
	}

	r := a.Rect
	if snap.Phase == PhaseCleared {
		// Standing in front of the house
		r.X = snap.WorldW - 250
	}
	cells := v.rect(r)

	dst.SetColor(core.ColorPink)
	if snap.Actor.Charging {
		dst.SetColor(core.ColorMagenta)
	}
	dst.DrawRect(cells, RunnerChar)

	if a.Charging {
		filled := int(math.Round(a.Charge * float64(cells.W)))
		dst.SetColor(core.ColorYellow)
		dst.DrawHLine(cells.X, cells.Y-1, filled, '▬')
	}
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	dst.SetColor(core.ColorBrightWhite)
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d  Level: %d  %s", snap.Score, snap.Level, snap.TimeOfDay.Phase))

	if snap.Target > 0 {
		dst.DrawText(1, 1, fmt.Sprintf("Home in: %d", snap.Remaining))
	} else {
		dst.DrawText(1, 1, "Endless")
	}

	lives := strings.Repeat(string(HeartChar), snap.Lives) +
		strings.Repeat(string(EmptyHeart), max(snap.MaxLives-snap.Lives, 0))
	dst.SetColor(core.ColorBrightRed)
	dst.DrawText(dst.Width()-len([]rune(lives))-1, 0, lives)

	if snap.SlowActive {
		dst.SetColor(core.ColorBrightCyan)
		dst.DrawTextCentered(0, fmt.Sprintf("%c SLOW MODE (%ds)", ClockChar, snap.SlowSeconds))
	}
}

func drawOverlay(dst *core.Screen, snap Snapshot) {
	switch snap.Phase {
	case PhaseNotStarted:
		drawCenteredMessage(dst, core.ColorBrightWhite,
			"HOMEBOUND",
			"Hold SPACE to charge, release to jump",
			"Press SPACE to start")
	case PhaseOver:
		drawCenteredMessage(dst, core.ColorBrightRed,
			"GAME OVER",
			fmt.Sprintf("Score: %d (%s)", snap.Score, snap.TimeOfDay.Phase),
			"The cat is waiting...",
			"Press ENTER to restart")
	case PhaseCleared:
		drawCenteredMessage(dst, core.ColorBrightYellow,
			"HOME AT LAST!",
			"Spending the night with the cat",
			fmt.Sprintf("Final score: %d", snap.Score),
			"Press ENTER to play again")
	}
}

// drawCenteredMessage draws a boxed block of lines in the center of the screen.
func drawCenteredMessage(dst *core.Screen, color core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}

	boxW := width + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.SetColor(core.ColorDefault)
	dst.DrawRect(box, ' ')
	dst.SetColor(color)
	dst.DrawBox(box)

	for i, l := range lines {
		x := box.X + (boxW-len([]rune(l)))/2
		dst.DrawText(x, box.Y+1+i, l)
	}
}
