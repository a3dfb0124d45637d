// Package window runs VanScape in a desktop window with Ebitengine.
// One pixel is one world unit and the mouse cursor is the player.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/vanscape/internal/config"
	"github.com/vovakirdan/vanscape/internal/core"
	"github.com/vovakirdan/vanscape/internal/games/vanscape"
	"github.com/vovakirdan/vanscape/internal/platform/session"
	"github.com/vovakirdan/vanscape/internal/storage"
)

var background = color.RGBA{R: 0, G: 40, B: 0, A: 255}

// Options configures a window session.
type Options struct {
	Config     config.Config
	TickRate   int
	Seed       int64
	Best       vanscape.BestStore // May be nil
	Store      *storage.Store     // Run history; may be nil
	Watcher    *config.Watcher    // Config hot reload; may be nil
	Logger     *log.Logger
	Player     string
	Difficulty string
}

// Game adapts a vanscape.Game to ebiten.Game.
type Game struct {
	game     *vanscape.Game
	runtime  core.RuntimeConfig
	input    core.InputFrame
	keys     []ebiten.Key
	recorder session.Recorder
	watcher  *config.Watcher
	logger   *log.Logger
	state    core.GameState
}

// New creates the window adapter and starts a session.
func New(opts Options) *Game {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	tickRate := opts.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	g := &Game{
		game: vanscape.New(opts.Config, opts.Best),
		runtime: core.RuntimeConfig{
			ScreenW:  opts.Config.Arena.WindowWidth,
			ScreenH:  opts.Config.Arena.WindowHeight,
			ScaleX:   1,
			ScaleY:   1,
			TickRate: tickRate,
			Seed:     seed,
		},
		input: core.NewInputFrame(),
		recorder: session.Recorder{
			Store:      opts.Store,
			Logger:     logger,
			Player:     opts.Player,
			Difficulty: opts.Difficulty,
		},
		watcher: opts.Watcher,
		logger:  logger,
	}
	g.game.Reset(g.runtime)
	g.state = g.game.State()
	return g
}

// Update advances the simulation by one tick.
func (g *Game) Update() error {
	g.pollConfig()

	x, y := ebiten.CursorPosition()
	g.input.SetPointer(core.V(float64(x), float64(y)))

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.input.Set(mapKey(k))
	}

	res := g.game.Step(g.input)
	g.input.Clear()
	g.state = res.State
	g.recorder.Record(res, g.game.Ticks())

	if res.Quit {
		g.logger.Info("session ended", "score", res.State.Score, "best", res.State.Best)
		return ebiten.Termination
	}
	return nil
}

// pollConfig applies a reloaded config without blocking the frame.
func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case cfg, ok := <-g.watcher.Updates:
		if ok {
			g.game.ApplyConfig(cfg)
			g.logger.Info("config reloaded, applies on next restart", "path", g.watcher.Path())
		}
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.logger.Warn("config reload failed", "error", err)
		}
	default:
	}
}

// mapKey translates a physical key to a game action.
func mapKey(k ebiten.Key) core.Action {
	switch k {
	case ebiten.KeyEscape, ebiten.KeyQ:
		return core.ActionQuit
	case ebiten.KeyP:
		return core.ActionPause
	default:
		return core.ActionOther
	}
}

// Draw renders the session.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	for _, pk := range g.game.Pickups() {
		fillCircle(screen, pk.Circle(), colornames.Hotpink)
	}

	p := g.game.Player()
	fillCircle(screen, p.Circle(), colornames.Deepskyblue)
	// Facing is a display rotation with 0 pointing up
	pointer(screen, p.Pos, p.Radius, p.Facing+math.Pi/2, colornames.White)

	e := g.game.Enemy()
	for _, pr := range e.Projectiles {
		switch pr.Kind {
		case vanscape.KindBullet:
			fillCircle(screen, pr.Circle(), colornames.Lime)
			pointer(screen, pr.Pos, pr.Radius, pr.Spin*math.Pi/180, colornames.Darkgreen)
		case vanscape.KindBomb:
			fillCircle(screen, pr.Circle(), colornames.Magenta)
			pointer(screen, pr.Pos, pr.Radius, pr.Spin*math.Pi/180, colornames.Black)
		case vanscape.KindFragment:
			fillCircle(screen, pr.Circle(), colornames.Gold)
			pointer(screen, pr.Pos, pr.Radius, pr.Spin*math.Pi/180, colornames.Orangered)
		}
	}

	fillCircle(screen, e.Circle(), colornames.Crimson)
	pointer(screen, e.Pos, e.Radius, core.DisplayAngle(e.Heading)*math.Pi/180, colornames.Black)

	g.drawHUD(screen)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	w, h := g.runtime.ScreenW, g.runtime.ScreenH

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Best: %d", g.state.Best), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", g.state.Score), w/2-30, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lives: %d  Lv: %d", g.state.Lives, g.state.Level), w-130, 10)

	switch {
	case g.state.GameOver:
		vector.FillRect(screen, float32(w/2-150), float32(h/2-40), 300, 80, color.RGBA{A: 200}, false)
		ebitenutil.DebugPrintAt(screen, "GAME OVER", w/2-27, h/2-30)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", g.state.Score), w/2-30, h/2-10)
		ebitenutil.DebugPrintAt(screen, "Esc/Q: quit | any other key: try again", w/2-114, h/2+10)
	case g.state.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", w/2-18, h/2)
	}
}

func fillCircle(dst *ebiten.Image, c core.Circle, clr color.Color) {
	vector.FillCircle(dst, float32(c.Center.X), float32(c.Center.Y), float32(c.R), clr, true)
}

// pointer draws a radius line at a counter-clockwise angle in radians.
func pointer(dst *ebiten.Image, center core.Vec, r, angle float64, clr color.Color) {
	x1 := center.X + r*math.Cos(angle)
	y1 := center.Y - r*math.Sin(angle)
	vector.StrokeLine(dst, float32(center.X), float32(center.Y), float32(x1), float32(y1), 2, clr, true)
}

// Layout fixes the logical screen to the configured window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.runtime.ScreenW, g.runtime.ScreenH
}

// Run opens the window and blocks until the player quits.
func Run(opts Options) error {
	g := New(opts)

	ebiten.SetWindowSize(g.runtime.ScreenW, g.runtime.ScreenH)
	ebiten.SetWindowTitle("VanScape")
	ebiten.SetTPS(g.runtime.TickRate)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
