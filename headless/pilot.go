package headless

import (
	"math"
	"math/rand"
	"time"

	"musou/world"
)

// Pilot decides the input for the next tick from the last frame.
type Pilot interface {
	Next(f *world.Frame) world.Input
}

type PilotFunc func(f *world.Frame) world.Input

func (p PilotFunc) Next(f *world.Frame) world.Input {
	return p(f)
}

const (
	wanderTicks = 25
	fireTicks   = 10
	dangerRange = 150
)

var directions = [][]world.Intent{
	nil,
	{world.IntentUp},
	{world.IntentDown},
	{world.IntentLeft},
	{world.IntentRight},
	{world.IntentUp, world.IntentLeft},
	{world.IntentUp, world.IntentRight},
	{world.IntentDown, world.IntentLeft},
	{world.IntentDown, world.IntentRight},
}

// RandomPilot wanders in a random direction for a while, shoots on a fixed
// beat and spends its score when bombs get close.
type RandomPilot struct {
	rng  *rand.Rand
	held world.Intents
	tick int
}

func NewRandomPilot(seed int64) *RandomPilot {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomPilot{
		rng:  rand.New(rand.NewSource(seed)),
		held: world.NewIntents(),
	}
}

func (p *RandomPilot) Next(f *world.Frame) world.Input {
	defer func() { p.tick++ }()

	if p.tick%wanderTicks == 0 {
		p.held = world.NewIntents(directions[p.rng.Intn(len(directions))]...)
		if p.rng.Intn(5) == 0 {
			p.held[world.IntentBoost] = struct{}{}
		}
	}
	pressed := world.NewIntents()
	if p.tick%fireTicks == 0 {
		pressed[world.IntentFire] = struct{}{}
	}

	if f != nil {
		threats := nearbyBombs(f)
		if threats > 0 && f.HyperDisplay == 0 && f.Score >= world.HyperCost {
			pressed[world.IntentHyper] = struct{}{}
		} else if threats > 2 && f.Score >= world.GravityCost+world.HyperCost {
			pressed[world.IntentGravity] = struct{}{}
		}
	}
	return world.Input{Held: p.held, Pressed: pressed}
}

func nearbyBombs(f *world.Frame) int {
	var player *world.Sprite
	for i := range f.Sprites {
		if f.Sprites[i].Kind == world.KindPlayer {
			player = &f.Sprites[i]
			break
		}
	}
	if player == nil {
		return 0
	}
	n := 0
	for _, s := range f.Sprites {
		if s.Kind != world.KindBomb {
			continue
		}
		if math.Hypot(s.Center.X-player.Center.X, s.Center.Y-player.Center.Y) < dangerRange {
			n++
		}
	}
	return n
}
