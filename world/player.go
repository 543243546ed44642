package world

import (
	"fmt"
	"math"
)

type PlayerMode int

const (
	Normal PlayerMode = iota
	Hyper
)

func (m PlayerMode) String() string {
	if m == Hyper {
		return "hyper"
	}
	return "normal"
}

type Mood int

const (
	MoodNormal Mood = iota
	MoodJoy
	MoodSad
)

type Player struct {
	Body
	// Facing is one of the 8 headings, each component in {-1, 0, 1}. It keeps
	// the last non-zero move.
	Facing    Vector
	Speed     float64
	Mode      PlayerMode
	HyperLife int
	Mood      Mood
}

func NewPlayer(center Vector) *Player {
	return &Player{
		Body:   newBody(KindPlayer, center, Vector{X: PlayerSize, Y: PlayerSize}),
		Facing: Vector{X: +1, Y: 0},
		Speed:  PlayerSpeed,
	}
}

// Move applies one tick of held directions. A move that would leave the field
// on either axis is reverted on both.
func (p *Player) Move(held Intents, cfg Config) {
	delta := held.delta()
	p.Speed = PlayerSpeed
	if held.Has(IntentBoost) && !delta.IsZero() {
		p.Speed = PlayerBoostSpeed
	}
	p.Velocity = delta.Scale(p.Speed)
	if delta.IsZero() {
		return
	}

	p.Facing = delta
	if p.Mood == MoodJoy {
		p.Mood = MoodNormal
	}
	moved := p.Box().Translate(p.Velocity)
	if !cfg.inBounds(moved) {
		p.Velocity = Vector{}
		return
	}
	p.Center = p.Center.Add(p.Velocity)
}

// Advance counts hyper down. Hyper ends once the counter goes below zero.
func (p *Player) Advance() {
	if p.Mode != Hyper {
		return
	}
	p.HyperLife--
	if p.HyperLife < 0 {
		p.Mode = Normal
		p.HyperLife = 0
	}
}

// ActivateHyper (re)starts hyper for its full duration.
func (p *Player) ActivateHyper() {
	p.Mode = Hyper
	p.HyperLife = HyperDuration
}

// HeadingDegrees is the facing converted to a screen angle, counter-clockwise
// from +X with Y pointing down.
func (p *Player) HeadingDegrees() float64 {
	return math.Atan2(-p.Facing.Y, p.Facing.X) * 180 / math.Pi
}

var headingNames = map[Vector]string{
	{X: +1, Y: 0}:  "right",
	{X: +1, Y: -1}: "up-right",
	{X: 0, Y: -1}:  "up",
	{X: -1, Y: -1}: "up-left",
	{X: -1, Y: 0}:  "left",
	{X: -1, Y: +1}: "down-left",
	{X: 0, Y: +1}:  "down",
	{X: +1, Y: +1}: "down-right",
}

// Variant is e.g. "up-left", "hyper/right" or "joy/down". Hyper shows over
// joy.
func (p *Player) Variant() string {
	name := headingNames[p.Facing]
	switch {
	case p.Mood == MoodSad:
		return fmt.Sprintf("sad/%s", name)
	case p.Mode == Hyper:
		return fmt.Sprintf("hyper/%s", name)
	case p.Mood == MoodJoy:
		return fmt.Sprintf("joy/%s", name)
	}
	return name
}
