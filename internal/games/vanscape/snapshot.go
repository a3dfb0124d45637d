package vanscape

// Snapshot captures the observable session state for determinism testing.
type Snapshot struct {
	Ticks       int
	Score       int
	Best        int
	Lives       int
	Level       int
	Phase       Phase
	Paused      bool
	PlayerX     float64
	PlayerY     float64
	EnemyX      float64
	EnemyY      float64
	Projectiles int
	Pickups     int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.player == nil {
		return Snapshot{}
	}
	return Snapshot{
		Ticks:       g.ticks,
		Score:       g.score.Current,
		Best:        g.score.Best,
		Lives:       g.player.Lives,
		Level:       g.enemy.Level,
		Phase:       g.phase,
		Paused:      g.paused,
		PlayerX:     g.player.Pos.X,
		PlayerY:     g.player.Pos.Y,
		EnemyX:      g.enemy.Pos.X,
		EnemyY:      g.enemy.Pos.Y,
		Projectiles: len(g.enemy.Projectiles),
		Pickups:     len(g.pickups),
	}
}
