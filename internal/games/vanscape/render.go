package vanscape

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/vanscape/internal/core"
)

var (
	playerFrames   = []rune("◐◓◑◒")
	fragmentFrames = []rune("|/-\\")
)

// Render draws the session to the screen. Entities are drawn as filled
// disks in screen cells; the HUD takes the top row.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.player == nil {
		return
	}

	for _, pk := range g.pickups {
		g.drawDisk(dst, pk.Circle(), '✿', core.ColorBrightGreen)
	}

	fill := playerFrames[g.player.Frame%len(playerFrames)]
	g.drawDisk(dst, g.player.Circle(), fill, core.ColorCyan)
	g.drawCenter(dst, g.player.Pos, core.DirectionGlyph(g.player.Facing*180/math.Pi+90), core.ColorBrightCyan)

	for _, p := range g.enemy.Projectiles {
		switch p.Kind {
		case KindBullet:
			g.drawDisk(dst, p.Circle(), '•', core.ColorGreen)
			g.drawCenter(dst, p.Pos, core.DirectionGlyph(p.Spin), core.ColorBrightGreen)
		case KindBomb:
			g.drawDisk(dst, p.Circle(), '◉', core.ColorMagenta)
			g.drawCenter(dst, p.Pos, spinner(p.Spin), core.ColorBrightMagenta)
		case KindFragment:
			g.drawDisk(dst, p.Circle(), spinner(p.Spin), core.ColorYellow)
		}
	}

	g.drawDisk(dst, g.enemy.Circle(), '█', core.ColorRed)
	g.drawCenter(dst, g.enemy.Pos, core.DirectionGlyph(core.DisplayAngle(g.enemy.Heading)), core.ColorBrightWhite)

	g.renderHUD(dst)

	switch {
	case g.phase == PhaseGameOver:
		g.drawCenteredMessage(dst, core.ColorBrightRed,
			"GAME OVER",
			fmt.Sprintf("Score: %d", g.score.Current),
			"Esc/Q: quit | any other key: try again")
	case g.paused:
		g.drawCenteredMessage(dst, core.ColorBrightYellow, "PAUSED", "Press P to continue")
	}
}

// renderHUD draws best, score and lives on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	w := dst.Width()

	best := fmt.Sprintf(" Best: %d", g.score.Best)
	dst.DrawText(0, 0, best)

	score := fmt.Sprintf("Score: %d", g.score.Current)
	dst.DrawTextColor((w-len(score))/2, 0, score, core.ColorBrightWhite)

	lives := fmt.Sprintf("Lives: %d  Lv: %d ", g.player.Lives, g.enemy.Level)
	dst.DrawTextColor(w-len(lives), 0, lives, core.ColorBrightGreen)
}

// drawDisk fills every cell whose center lies within c. Circles smaller
// than a cell still mark the cell holding their center.
func (g *Game) drawDisk(dst *core.Screen, c core.Circle, r rune, color core.Color) {
	x0, y0 := g.runtime.WorldToCell(core.V(c.Center.X-c.R, c.Center.Y-c.R))
	x1, y1 := g.runtime.WorldToCell(core.V(c.Center.X+c.R, c.Center.Y+c.R))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if core.Collides(core.Circle{Center: g.runtime.CellToWorld(x, y)}, c) {
				dst.SetColor(x, y, r, color)
			}
		}
	}
	g.drawCenter(dst, c.Center, r, color)
}

func (g *Game) drawCenter(dst *core.Screen, p core.Vec, r rune, color core.Color) {
	x, y := g.runtime.WorldToCell(p)
	dst.SetColor(x, y, r, color)
}

func spinner(degrees float64) rune {
	idx := int(math.Floor(degrees/45)) % len(fragmentFrames)
	if idx < 0 {
		idx += len(fragmentFrames)
	}
	return fragmentFrames[idx]
}

// drawCenteredMessage draws a boxed message in the middle of the screen.
// The first line is the title.
func (g *Game) drawCenteredMessage(dst *core.Screen, color core.Color, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := 0
	for _, line := range lines {
		boxW = core.Max(boxW, utf8.RuneCountInString(line))
	}
	boxW += 4
	boxH := len(lines)*2 + 1
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	for i, line := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = color
		}
		x := boxX + (boxW-utf8.RuneCountInString(line))/2
		dst.DrawTextColor(x, boxY+1+i*2, line, c)
	}
}
