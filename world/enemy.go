package world

import (
	"fmt"
	"math/rand"
)

type EnemyState int

const (
	Descending EnemyState = iota
	Holding
)

type Enemy struct {
	Body
	State EnemyState
	// HoldAt is the y-center past which the enemy stops for good.
	HoldAt float64
	// Interval is the bomb drop period in ticks.
	Interval int64
	Look     int
}

func NewEnemy(center Vector, holdAt float64, interval int64) *Enemy {
	e := &Enemy{
		Body:     newBody(KindEnemy, center, Vector{X: EnemySize, Y: EnemySize}),
		HoldAt:   holdAt,
		Interval: interval,
	}
	e.Velocity = Vector{X: 0, Y: EnemySpeed}
	return e
}

// randInt returns a uniform integer in [lo, hi].
func randInt(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// SpawnEnemy places a new enemy on the top edge at a random column with
// randomized hold altitude and bomb interval.
func SpawnEnemy(rng *rand.Rand, cfg Config) *Enemy {
	center := Vector{X: float64(randInt(rng, 0, int(cfg.FieldWidth))), Y: 0}
	holdAt := float64(randInt(rng, EnemyMinHold, int(cfg.FieldHeight)/2))
	interval := int64(randInt(rng, EnemyMinInterval, EnemyMaxInterval))
	e := NewEnemy(center, holdAt, interval)
	e.Look = rng.Intn(EnemyLooks)
	return e
}

// Advance stops the enemy once it is past its hold altitude, then moves it.
func (e *Enemy) Advance() {
	if e.Center.Y > e.HoldAt {
		e.Velocity = Vector{}
		e.State = Holding
	}
	e.Center = e.Center.Add(e.Velocity)
}

// ShouldDrop reports whether a holding enemy drops a bomb on tick.
func (e *Enemy) ShouldDrop(tick int64) bool {
	return e.State == Holding && e.Interval > 0 && tick%e.Interval == 0
}

func (e *Enemy) Variant() string {
	return fmt.Sprintf("alien%d", e.Look+1)
}
