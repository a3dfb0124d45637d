// Package vanscape implements the VanScape survival game: a pointer-driven
// player dodges a homing enemy, its bullets and bursting bombs, and collects
// bonus lives while the score counts ticks survived.
package vanscape

import (
	"math/rand"

	"github.com/vovakirdan/vanscape/internal/config"
	"github.com/vovakirdan/vanscape/internal/core"
)

// Phase is the top-level session state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "playing"
}

// Game is one VanScape session. It is pure simulation: the platform feeds it
// input frames, renders it and persists whatever its events ask for.
type Game struct {
	cfg     config.Config
	pending *config.Config // Applied at the next reset or restart
	runtime core.RuntimeConfig
	arena   Arena
	rng     *rand.Rand

	player  *Player
	enemy   *Enemy
	pickups []Pickup
	score   *Score
	best    BestStore

	phase   Phase
	paused  bool
	pointer core.Vec
	aimed   bool // pointer has been reported at least once
	ticks   int  // Simulation ticks in the current session

	events []core.Event
}

// New creates a game with the given tunables. best may be nil, in which
// case the best-ever score lives only in memory.
func New(cfg config.Config, best BestStore) *Game {
	return &Game{
		cfg:  cfg,
		best: best,
	}
}

// Reset (re)builds the session for a screen of the given size. It is called
// once at start and again whenever the screen is resized.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
	}
	g.runtime = runtime

	w, h := runtime.WorldSize()
	g.arena = Arena{Width: w, Height: h}
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	if !g.aimed || !g.arena.Contains(g.pointer) {
		g.pointer = g.arena.Center()
	}

	g.player = NewPlayer(g.cfg.Player, g.pointer)
	g.enemy = NewEnemy(g.cfg.Enemy, g.arena, g.rng)
	g.pickups = nil

	if g.score == nil {
		g.score = NewScore(g.best)
	} else {
		g.persistBest()
		g.score.Reset()
	}

	g.phase = PhasePlaying
	g.paused = false
	g.ticks = 0
}

// restart performs the full session reset from the game over screen.
// Entities are reset in place unless a new config is waiting.
func (g *Game) restart() {
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
		g.player = NewPlayer(g.cfg.Player, g.pointer)
		g.enemy = NewEnemy(g.cfg.Enemy, g.arena, g.rng)
	} else {
		g.player.Reset(g.pointer)
		g.enemy.Reset(0)
		g.enemy.ClearProjectiles()
	}
	g.pickups = nil

	g.persistBest()
	g.score.Reset()

	g.phase = PhasePlaying
	g.paused = false
	g.ticks = 0
	g.emit(core.EventRestart, 0)
}

// ApplyConfig stages cfg for the next reset or restart. A running session
// keeps its tunables so radii never change under live entities.
func (g *Game) ApplyConfig(cfg config.Config) {
	g.pending = &cfg
}

// Step advances the session by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if input.HasPointer {
		g.pointer = input.Pointer
		g.aimed = true
	}

	if input.Has(core.ActionQuit) {
		return g.result(true)
	}

	switch g.phase {
	case PhaseGameOver:
		if input.AnyKey() {
			g.restart()
		}
	case PhasePlaying:
		if input.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if !g.paused {
			g.tick()
		}
	}

	return g.result(false)
}

// tick runs one frame of the core loop: move, advance projectiles,
// resolve collisions, then fire score triggers. The enemy homes on the
// pointer, which is where the player lands this tick.
func (g *Game) tick() {
	g.enemy.Move(g.pointer)
	g.player.Move(g.pointer)
	g.score.Tick()
	g.ticks++

	g.advanceProjectiles()

	if g.resolveCollisions() {
		return
	}

	g.checkScore()
}

// advanceProjectiles moves every projectile, bursts bombs that reached
// their destination and drops anything that left the arena.
func (g *Game) advanceProjectiles() {
	live := make([]Projectile, 0, len(g.enemy.Projectiles))
	var fragments []Projectile

	for _, p := range g.enemy.Projectiles {
		if p.Advance(g.player.Pos) {
			burst := p.Burst(g.rng, g.cfg.Bomb.MinFragments, g.cfg.Bomb.MaxFragments)
			fragments = append(fragments, burst...)
			g.emit(core.EventDetonation, len(burst))
			continue
		}
		if !g.arena.Contains(p.Pos) {
			continue
		}
		live = append(live, p)
	}

	g.enemy.Projectiles = append(live, fragments...)
}

// resolveCollisions checks the player against the enemy body, every
// projectile and every pickup, in that order. It reports whether the
// session ended.
func (g *Game) resolveCollisions() bool {
	player := g.player.Circle()

	if core.Collides(player, g.enemy.Circle()) {
		if g.hit() {
			return true
		}
		g.enemy.Reset(g.enemy.Level)
	}

	// Iterate over a snapshot; the live set is rebuilt without the hits.
	snapshot := g.enemy.Projectiles
	kept := make([]Projectile, 0, len(snapshot))
	for i, p := range snapshot {
		if !core.Collides(player, p.Circle()) {
			kept = append(kept, p)
			continue
		}
		if g.hit() {
			g.enemy.Projectiles = append(kept, snapshot[i+1:]...)
			return true
		}
	}
	g.enemy.Projectiles = kept

	pickups := g.pickups[:0]
	for _, pk := range g.pickups {
		if core.Collides(player, pk.Circle()) {
			g.player.Lives += pk.Bonus
			g.emit(core.EventPickup, g.player.Lives)
			continue
		}
		pickups = append(pickups, pk)
	}
	g.pickups = pickups

	return false
}

// hit removes a life and enters the game over phase when none are left.
func (g *Game) hit() bool {
	dead := g.player.Hit()
	g.emit(core.EventHit, g.player.Lives)
	if !dead {
		return false
	}

	g.phase = PhaseGameOver
	g.emit(core.EventGameOver, g.score.Current)
	g.persistBest()
	return true
}

// checkScore fires the score threshold triggers. Each one is evaluated
// independently so several can fire on the same tick.
func (g *Game) checkScore() {
	score := g.score.Current
	if score <= 0 {
		return
	}
	t := g.cfg.Triggers

	if every(score, t.LevelEvery) {
		g.enemy.Level++
		g.emit(core.EventLevelUp, g.enemy.Level)
	}
	if every(score, t.BombEvery) {
		g.enemy.HamAttack(g.player.Pos)
		g.emit(core.EventBomb, len(g.enemy.Projectiles))
	}
	if every(score, t.PickupEvery) {
		g.pickups = append(g.pickups, NewPickup(g.cfg.Pickup, g.arena.RandomPoint(g.rng)))
		g.emit(core.EventPickupSpawn, len(g.pickups))
	}
}

func every(score, n int) bool {
	return n > 0 && score%n == 0
}

// persistBest writes the best score if it improved and reports the outcome.
func (g *Game) persistBest() {
	saved, err := g.score.Persist()
	switch {
	case err != nil:
		g.events = append(g.events, core.Event{
			Kind:  core.EventSaveFailed,
			Tick:  g.score.Current,
			Value: g.score.Best,
			Err:   err,
		})
	case saved:
		g.emit(core.EventBestSaved, g.score.Best)
	}
}

func (g *Game) emit(kind core.EventKind, value int) {
	tick := 0
	if g.score != nil {
		tick = g.score.Current
	}
	g.events = append(g.events, core.Event{Kind: kind, Tick: tick, Value: value})
}

// result flushes pending events into a StepResult.
func (g *Game) result(quit bool) core.StepResult {
	res := core.StepResult{
		State:  g.State(),
		Events: g.events,
		Quit:   quit,
	}
	g.events = nil
	return res
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.player == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.score.Current,
		Best:     g.score.Best,
		Lives:    g.player.Lives,
		Level:    g.enemy.Level,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Player returns the player entity.
func (g *Game) Player() *Player { return g.player }

// Enemy returns the enemy, which also owns all live projectiles.
func (g *Game) Enemy() *Enemy { return g.enemy }

// Pickups returns the pickups currently on the field.
func (g *Game) Pickups() []Pickup { return g.pickups }

// Phase returns the session phase.
func (g *Game) Phase() Phase { return g.phase }

// Arena returns the play field bounds.
func (g *Game) Arena() Arena { return g.arena }

// Config returns the tunables of the running session.
func (g *Game) Config() config.Config { return g.cfg }

// Ticks returns the number of simulated ticks in the current session.
func (g *Game) Ticks() int { return g.ticks }
