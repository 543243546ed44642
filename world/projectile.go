package world

import (
	"fmt"
	"math"
	"math/rand"
)

type Bomb struct {
	Body
	Radius float64
	Color  int
}

// NewBomb drops a bomb just below enemy, aimed at where player is now. ok is
// false if the two centers coincide, in which case there is nothing to aim at.
func NewBomb(enemy *Enemy, player *Player, rng *rand.Rand) (*Bomb, bool) {
	dir, ok := DirectionTo(enemy.Center, player.Center)
	if !ok {
		return nil, false
	}
	radius := float64(randInt(rng, BombMinRadius, BombMaxRadius))
	center := Vector{X: enemy.Center.X, Y: enemy.Center.Y + enemy.Size.Y/2}
	b := &Bomb{
		Body:   newBody(KindBomb, center, Vector{X: 2 * radius, Y: 2 * radius}),
		Radius: radius,
		Color:  rng.Intn(BombColors),
	}
	b.Velocity = dir.Scale(BombSpeed)
	return b, true
}

// Advance moves the bomb and reports whether it is still inside the field.
func (b *Bomb) Advance(cfg Config) bool {
	b.Center = b.Center.Add(b.Velocity)
	return cfg.inBounds(b.Box())
}

func (b *Bomb) Variant() string {
	return fmt.Sprintf("bomb%d", b.Color)
}

type Beam struct {
	Body
	// Angle in degrees, counter-clockwise from +X.
	Angle float64
}

// NewBeam fires a beam from player at its heading rotated by offset degrees.
func NewBeam(player *Player, offset float64) *Beam {
	angle := player.HeadingDegrees() + offset
	rad := angle * math.Pi / 180
	dir := Vector{X: math.Cos(rad), Y: -math.Sin(rad)}
	center := Vector{
		X: player.Center.X + player.Size.X/2*dir.X,
		Y: player.Center.Y + player.Size.Y/2*dir.Y,
	}
	b := &Beam{
		Body:  newBody(KindBeam, center, Vector{X: BeamSize, Y: BeamSize}),
		Angle: angle,
	}
	b.Velocity = dir.Scale(BeamSpeed)
	return b
}

// VolleyOffsets spreads count angles evenly over VolleySpreadDeg, centered on
// zero. A volley of one fires straight ahead.
func VolleyOffsets(count int) []float64 {
	if count <= 0 {
		return nil
	}
	if count == 1 {
		return []float64{0}
	}
	step := VolleySpreadDeg / float64(count-1)
	offsets := make([]float64, count)
	for i := range offsets {
		offsets[i] = -VolleySpreadDeg/2 + float64(i)*step
	}
	return offsets
}

func Volley(player *Player, count int) []*Beam {
	offsets := VolleyOffsets(count)
	beams := make([]*Beam, 0, len(offsets))
	for _, offset := range offsets {
		beams = append(beams, NewBeam(player, offset))
	}
	return beams
}

// Advance moves the beam and reports whether it is still inside the field.
func (b *Beam) Advance(cfg Config) bool {
	b.Center = b.Center.Add(b.Velocity)
	return cfg.inBounds(b.Box())
}

type Explosion struct {
	Body
	Life int
}

func NewExplosion(center Vector, life int) *Explosion {
	return &Explosion{
		Body: newBody(KindExplosion, center, Vector{X: ExplosionSize, Y: ExplosionSize}),
		Life: life,
	}
}

// Advance burns one tick of life and reports whether the explosion is still
// alive.
func (x *Explosion) Advance() bool {
	x.Life--
	return x.Life >= 0
}

func (x *Explosion) Variant() string {
	return fmt.Sprintf("frame%d", x.Life/10%2)
}

// GravityField covers the whole play field while it lasts.
type GravityField struct {
	Body
	Life int
}

func NewGravityField(cfg Config) *GravityField {
	center := Vector{X: cfg.FieldWidth / 2, Y: cfg.FieldHeight / 2}
	size := Vector{X: cfg.FieldWidth, Y: cfg.FieldHeight}
	return &GravityField{
		Body: newBody(KindGravityField, center, size),
		Life: GravityLife,
	}
}

func (g *GravityField) Advance() bool {
	g.Life--
	return g.Life >= 0
}
