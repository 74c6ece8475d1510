package gui

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/homebound/internal/core"
	"github.com/vovakirdan/homebound/internal/games/homebound"
)

// Debug font cell size in pixels
const (
	glyphW = 6
	glyphH = 16
)

var (
	groundColor   = color.RGBA{0x4a, 0x7c, 0x3f, 0xff}
	dirtColor     = color.RGBA{0x6b, 0x4f, 0x2a, 0xff}
	obstacleColor = color.RGBA{0x8b, 0x45, 0x13, 0xff}
	runnerColor   = color.RGBA{0xff, 0x69, 0xb4, 0xff}
	chargingColor = color.RGBA{0xc7, 0x15, 0x85, 0xff}
	chargeColor   = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	heartColor    = color.RGBA{0xe5, 0x3e, 0x3e, 0xff}
	clockColor    = color.RGBA{0x42, 0x99, 0xe1, 0xff}
	cloudColor    = color.RGBA{0xff, 0xff, 0xff, 0xc0}
	starColor     = color.RGBA{0xff, 0xff, 0xff, 0xff}
	moonColor     = color.RGBA{0xf6, 0xe0, 0x5e, 0xff}
	wallColor     = color.RGBA{0xa0, 0x52, 0x2d, 0xff}
	roofColor     = color.RGBA{0x9b, 0x2c, 0x2c, 0xff}
	windowColor   = color.RGBA{0xfa, 0xf0, 0x89, 0xff}
	doorColor     = color.RGBA{0x4a, 0x55, 0x68, 0xff}
	panelColor    = color.RGBA{0x00, 0x00, 0x00, 0xb4}
)

var catFrames = [...]string{"=^.^=", "=^-^=", "=^.^=", "=^o^="}

// skyColor converts the snapshot sky to an opaque RGBA.
func skyColor(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{r, g, b, 0xff}
}

func fillRect(dst *ebiten.Image, r core.RectF, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func drawScene(dst *ebiten.Image, snap homebound.Snapshot, catTicks int) {
	dst.Fill(skyColor(snap.TimeOfDay.Sky))

	drawSky(dst, snap)
	drawGround(dst, snap)
	if snap.Phase == homebound.PhaseCleared {
		drawHome(dst, snap, catTicks)
	}
	for _, o := range snap.Obstacles {
		fillRect(dst, o, obstacleColor)
	}
	for _, it := range snap.Items {
		drawItem(dst, it)
	}
	drawRunner(dst, snap)
	drawHUD(dst, snap)
	drawOverlay(dst, snap)
}

func drawSky(dst *ebiten.Image, snap homebound.Snapshot) {
	tod := snap.TimeOfDay

	if tod.Stars {
		for i := range 50 {
			x := float32((i * 73) % int(snap.WorldW))
			y := float32((i * 47) % 300)
			vector.DrawFilledRect(dst, x, y, 2, 2, starColor, false)
		}
	}

	if tod.Moon {
		vector.DrawFilledCircle(dst, float32(snap.WorldW-100), 100, 30, moonColor, true)
	}

	if tod.Clouds {
		span := snap.WorldW + 200
		for i := range 3 {
			x := math.Mod(snap.BgScroll*0.5+float64(i)*300, span) - 100
			y := 80 + float64(i)*50
			fillRect(dst, core.NewRectF(x, y, 100, 24), cloudColor)
			fillRect(dst, core.NewRectF(x+20, y-12, 60, 12), cloudColor)
		}
	}
}

func drawGround(dst *ebiten.Image, snap homebound.Snapshot) {
	fillRect(dst, core.NewRectF(0, snap.FloorY, snap.WorldW, snap.WorldH-snap.FloorY), dirtColor)
	fillRect(dst, core.NewRectF(0, snap.FloorY, snap.WorldW, 12), groundColor)

	// Scrolling tufts every 50 pixels
	offset := math.Mod(snap.BgScroll, 50)
	for x := -offset; x < snap.WorldW; x += 50 {
		fillRect(dst, core.NewRectF(x, snap.FloorY+12, 8, 4), groundColor)
	}
}

func drawHome(dst *ebiten.Image, snap homebound.Snapshot, catTicks int) {
	hx := snap.WorldW - 200
	hy := snap.FloorY - 80

	fillRect(dst, core.NewRectF(hx, hy, 80, 60), wallColor)

	// Stepped roof
	for i := range 6 {
		inset := float64(i) * 8
		fillRect(dst, core.NewRectF(hx-10+inset, hy-float64(i+1)*5, 100-2*inset, 5), roofColor)
	}

	fillRect(dst, core.NewRectF(hx+10, hy+15, 15, 15), windowColor)
	fillRect(dst, core.NewRectF(hx+55, hy+15, 15, 15), windowColor)
	fillRect(dst, core.NewRectF(hx+30, hy+25, 20, 35), doorColor)

	cat := catFrames[(catTicks/10)%len(catFrames)]
	ebitenutil.DebugPrintAt(dst, cat, int(hx)+25, int(snap.FloorY)-glyphH)
}

func drawItem(dst *ebiten.Image, it homebound.ItemView) {
	cx := float32(it.Rect.X + it.Rect.W/2)
	cy := float32(it.Rect.Y + it.Rect.H/2)
	r := float32(it.Rect.W / 2)

	switch it.Kind {
	case homebound.ItemHeart:
		vector.DrawFilledCircle(dst, cx-r/2, cy-r/4, r/2, heartColor, true)
		vector.DrawFilledCircle(dst, cx+r/2, cy-r/4, r/2, heartColor, true)
		vector.DrawFilledRect(dst, cx-r/2, cy-r/4, r, r, heartColor, false)
	case homebound.ItemClock:
		vector.DrawFilledCircle(dst, cx, cy, r, clockColor, true)
		vector.StrokeLine(dst, cx, cy, cx, cy-r*0.7, 2, starColor, true)
		vector.StrokeLine(dst, cx, cy, cx+r*0.5, cy, 2, starColor, true)
	}
}

func drawRunner(dst *ebiten.Image, snap homebound.Snapshot) {
	a := snap.Actor
	if !a.Visible {
		return
	}

	r := a.Rect
	if snap.Phase == homebound.PhaseCleared {
		r.X = snap.WorldW - 250
	}

	body := runnerColor
	if a.Charging {
		body = chargingColor
	}
	fillRect(dst, r, body)

	if a.Charging {
		fillRect(dst, core.NewRectF(r.X, r.Y-10, r.W*a.Charge, 5), chargeColor)
	}
}

func drawHUD(dst *ebiten.Image, snap homebound.Snapshot) {
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("Score: %d  Level: %d  %s", snap.Score, snap.Level, snap.TimeOfDay.Phase), 10, 10)

	if snap.Target > 0 {
		ebitenutil.DebugPrintAt(dst, fmt.Sprintf("Home in: %d", snap.Remaining), 10, 10+glyphH)
	} else {
		ebitenutil.DebugPrintAt(dst, "Endless", 10, 10+glyphH)
	}

	for i := range snap.MaxLives {
		x := float32(snap.WorldW) - 30 - float32(i)*22
		clr := color.Color(heartColor)
		if i >= snap.Lives {
			clr = panelColor
		}
		vector.DrawFilledCircle(dst, x, 20, 8, clr, true)
	}

	if snap.SlowActive {
		msg := fmt.Sprintf("SLOW MODE (%ds)", snap.SlowSeconds)
		ebitenutil.DebugPrintAt(dst, msg, (int(snap.WorldW)-len(msg)*glyphW)/2, 10)
	}
}

func drawOverlay(dst *ebiten.Image, snap homebound.Snapshot) {
	switch snap.Phase {
	case homebound.PhaseNotStarted:
		drawPanel(dst, snap,
			"HOMEBOUND",
			"Hold SPACE to charge, release to jump",
			"Press SPACE to start")
	case homebound.PhaseOver:
		drawPanel(dst, snap,
			"GAME OVER",
			fmt.Sprintf("Score: %d (%s)", snap.Score, snap.TimeOfDay.Phase),
			"The cat is waiting...",
			"Press ENTER to restart")
	case homebound.PhaseCleared:
		drawPanel(dst, snap,
			"HOME AT LAST!",
			"Spending the night with the cat",
			fmt.Sprintf("Final score: %d", snap.Score),
			"Press ENTER to play again")
	}
}

// drawPanel draws lines of text on a translucent box in the middle of the world.
func drawPanel(dst *ebiten.Image, snap homebound.Snapshot, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}

	w := float64(width*glyphW + 40)
	h := float64(len(lines)*glyphH + 30)
	x := (snap.WorldW - w) / 2
	y := (snap.WorldH - h) / 2
	fillRect(dst, core.NewRectF(x, y, w, h), panelColor)

	ebitenutil.DebugPrintAt(dst, strings.Join(lines, "\n"), int(x)+20, int(y)+15)
}
