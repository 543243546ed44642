package world

import (
	"log"
	"math/rand"
	"time"
)

// Outcome is the result of one Step. Tick is the tick that was simulated.
type Outcome struct {
	Tick     int64
	GameOver bool
}

// Simulation advances a World one fixed tick at a time. It is not safe for
// concurrent use; there is exactly one caller driving Step.
type Simulation struct {
	cfg     Config
	rng     *rand.Rand
	world   *World
	history *StateBuffer
	over    bool
}

func NewSimulation(cfg Config) *Simulation {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Simulation{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)),
		history: NewStateBuffer(cfg.History),
	}
	s.Reset()
	return s
}

// Reset starts a new session on tick 0 with the initial score. The random
// source keeps going from where it was.
func (s *Simulation) Reset() {
	s.world = NewWorld(s.cfg)
	s.history.Clear()
	s.over = false
}

func (s *Simulation) Config() Config {
	return s.cfg
}

func (s *Simulation) World() *World {
	return s.world
}

func (s *Simulation) History() *StateBuffer {
	return s.history
}

func (s *Simulation) GameOver() bool {
	return s.over
}

func (s *Simulation) Score() int {
	return s.world.Ledger.Score
}

// Tick is the next tick Step will simulate.
func (s *Simulation) Tick() int64 {
	return s.world.Tick
}

// Frame is the most recent frame, or the current state if nothing has been
// stepped yet.
func (s *Simulation) Frame() Frame {
	if current := s.history.Current(); current != nil {
		return *current
	}
	return s.world.Frame(s.over)
}

// Step simulates one tick: commands, spawning, collisions, then motion. Once a
// step has reported game over, further calls change nothing and report it
// again.
func (s *Simulation) Step(input Input) Outcome {
	w := s.world
	if s.over {
		return Outcome{Tick: w.Tick, GameOver: true}
	}

	s.applyCommands(input)
	w.Ledger.Tick()
	s.schedule()

	if w.resolveCollisions() {
		s.over = true
		s.history.Add(w.Frame(true))
		return Outcome{Tick: w.Tick, GameOver: true}
	}

	s.advance(input.Held)
	s.history.Add(w.Frame(false))
	tick := w.Tick
	w.Tick++
	return Outcome{Tick: tick}
}

func (s *Simulation) applyCommands(input Input) {
	w := s.world
	if input.Pressed.Has(IntentFire) {
		if input.Held.Has(IntentBoost) {
			w.Beams = append(w.Beams, Volley(w.Player, VolleyCount)...)
		} else {
			w.Beams = append(w.Beams, NewBeam(w.Player, 0))
		}
	}
	if input.Pressed.Has(IntentHyper) && w.Ledger.Spend(HyperCost) {
		w.Player.ActivateHyper()
		w.Ledger.HyperDisplay = HyperDuration
	}
	if input.Pressed.Has(IntentGravity) && w.Ledger.Spend(GravityCost) {
		w.Fields = append(w.Fields, NewGravityField(s.cfg))
	}
}

// schedule spawns a new enemy every EnemySpawnInterval ticks and lets every
// holding enemy whose interval divides the tick drop a bomb. Tick 0 counts.
func (s *Simulation) schedule() {
	w := s.world
	if w.Tick%EnemySpawnInterval == 0 {
		w.Enemies = append(w.Enemies, SpawnEnemy(s.rng, s.cfg))
	}
	for _, e := range w.Enemies {
		if !e.ShouldDrop(w.Tick) {
			continue
		}
		bomb, ok := NewBomb(e, w.Player, s.rng)
		if !ok {
			log.Printf("tick %d: enemy %s sits on the player at %+v, no bomb dropped", w.Tick, e.ID, e.Center)
			continue
		}
		w.Bombs = append(w.Bombs, bomb)
	}
}

func (s *Simulation) advance(held Intents) {
	w := s.world

	fields := w.Fields[:0]
	for _, g := range w.Fields {
		if g.Advance() {
			fields = append(fields, g)
		}
	}
	w.Fields = fields

	w.Player.Move(held, s.cfg)
	w.Player.Advance()

	beams := w.Beams[:0]
	for _, b := range w.Beams {
		if b.Advance(s.cfg) {
			beams = append(beams, b)
		}
	}
	w.Beams = beams

	for _, e := range w.Enemies {
		e.Advance()
	}

	bombs := w.Bombs[:0]
	for _, b := range w.Bombs {
		if b.Advance(s.cfg) {
			bombs = append(bombs, b)
		}
	}
	w.Bombs = bombs

	explosions := w.Explosions[:0]
	for _, x := range w.Explosions {
		if x.Advance() {
			explosions = append(explosions, x)
		}
	}
	w.Explosions = explosions
}
