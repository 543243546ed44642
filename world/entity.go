package world

import "github.com/segmentio/ksuid"

type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindBomb
	KindBeam
	KindExplosion
	KindGravityField
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindBomb:
		return "bomb"
	case KindBeam:
		return "beam"
	case KindExplosion:
		return "explosion"
	case KindGravityField:
		return "gravity"
	}
	return "unknown"
}

// Body is the state every entity kind shares. Collision code only ever looks
// at Box().
type Body struct {
	ID       string
	Kind     Kind
	Center   Vector
	Size     Vector
	Velocity Vector
}

func newBody(kind Kind, center, size Vector) Body {
	return Body{
		ID:     ksuid.New().String(),
		Kind:   kind,
		Center: center,
		Size:   size,
	}
}

func (b *Body) Box() Rect {
	return RectFromCenter(b.Center, b.Size)
}

func (b *Body) body() *Body {
	return b
}

// Collider is implemented by every entity kind through its embedded Body.
type Collider interface {
	Box() Rect
	body() *Body
}
