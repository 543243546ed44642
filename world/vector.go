package world

import "math"

type Vector struct {
	X, Y float64
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Scale(k float64) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// DirectionTo returns the unit vector pointing from origin to target.
// ok is false when the two points coincide and no direction exists.
func DirectionTo(origin, target Vector) (dir Vector, ok bool) {
	dx, dy := target.X-origin.X, target.Y-origin.Y
	norm := math.Hypot(dx, dy)
	if norm == 0 {
		return Vector{}, false
	}
	return Vector{X: dx / norm, Y: dy / norm}, true
}

// Rect is an axis-aligned box. Min is the top-left corner.
type Rect struct {
	Min, Max Vector
}

func RectFromCenter(center, size Vector) Rect {
	half := size.Scale(0.5)
	return Rect{
		Min: Vector{X: center.X - half.X, Y: center.Y - half.Y},
		Max: Vector{X: center.X + half.X, Y: center.Y + half.Y},
	}
}

func (r Rect) Translate(d Vector) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// Overlaps reports whether the interiors of r and o intersect. Boxes that only
// share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X < o.Max.X && o.Min.X < r.Max.X &&
		r.Min.Y < o.Max.Y && o.Min.Y < r.Max.Y
}

// InBounds reports per axis whether box lies entirely inside [0, width] x [0, height].
func InBounds(box Rect, width, height float64) (insideX, insideY bool) {
	insideX = box.Min.X >= 0 && box.Max.X <= width
	insideY = box.Min.Y >= 0 && box.Max.Y <= height
	return insideX, insideY
}
