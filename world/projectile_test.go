package world

import (
	"math"
	"math/rand"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

func TestVolleyOffsets(t *testing.T) {
	got := VolleyOffsets(5)
	want := []float64{-50, -25, 0, 25, 50}
	if len(got) != len(want) {
		t.Fatalf("VolleyOffsets(5) = %v, want %v", got, want)
	}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Fatalf("VolleyOffsets(5) = %v, want %v", got, want)
		}
	}

	if got := VolleyOffsets(1); len(got) != 1 || got[0] != 0 {
		t.Fatalf("VolleyOffsets(1) = %v, want [0]", got)
	}
	if got := VolleyOffsets(0); got != nil {
		t.Fatalf("VolleyOffsets(0) = %v, want nil", got)
	}
}

func TestVolleyFollowsHeading(t *testing.T) {
	p := NewPlayer(Vector{X: 500, Y: 300})
	p.Facing = Vector{X: 0, Y: -1}
	beams := Volley(p, VolleyCount)
	if len(beams) != VolleyCount {
		t.Fatalf("len(Volley) = %d, want %d", len(beams), VolleyCount)
	}
	for i, offset := range []float64{-50, -25, 0, 25, 50} {
		if !almostEqual(beams[i].Angle, 90+offset) {
			t.Errorf("beam %d angle = %v, want %v", i, beams[i].Angle, 90+offset)
		}
		speed := math.Hypot(beams[i].Velocity.X, beams[i].Velocity.Y)
		if !almostEqual(speed, BeamSpeed) {
			t.Errorf("beam %d speed = %v, want %v", i, speed, BeamSpeed)
		}
	}
	// The middle beam flies straight up.
	if mid := beams[2]; !almostEqual(mid.Velocity.X, 0) || !almostEqual(mid.Velocity.Y, -BeamSpeed) {
		t.Fatalf("middle beam velocity = %+v, want {0 -10}", mid.Velocity)
	}
}

func TestBeamSpawnsAheadOfPlayer(t *testing.T) {
	p := NewPlayer(Vector{X: 500, Y: 300})
	b := NewBeam(p, 0)
	if !almostEqual(b.Center.X, 500+PlayerSize/2) || !almostEqual(b.Center.Y, 300) {
		t.Fatalf("beam center = %+v, want {%v 300}", b.Center, 500+PlayerSize/2)
	}
	if !almostEqual(b.Velocity.X, BeamSpeed) || !almostEqual(b.Velocity.Y, 0) {
		t.Fatalf("beam velocity = %+v, want {10 0}", b.Velocity)
	}

	p.Facing = Vector{X: -1, Y: 1}
	b = NewBeam(p, 0)
	if !almostEqual(b.Angle, -135) {
		t.Fatalf("down-left beam angle = %v, want -135", b.Angle)
	}
	if b.Velocity.X >= 0 || b.Velocity.Y <= 0 {
		t.Fatalf("down-left beam velocity = %+v", b.Velocity)
	}
}

func TestBeamLeavesField(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPlayer(Vector{X: cfg.FieldWidth - PlayerSize, Y: 300})
	b := NewBeam(p, 0)
	ticks := 0
	for b.Advance(cfg) {
		ticks++
		if ticks > 1000 {
			t.Fatal("beam never left the field")
		}
	}
	if x, _ := InBounds(b.Box(), cfg.FieldWidth, cfg.FieldHeight); x {
		t.Fatalf("beam reported gone while still inside: %+v", b.Box())
	}
}

func TestNewBomb(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	e := NewEnemy(Vector{X: 100, Y: 100}, 50, 60)
	p := NewPlayer(Vector{X: 400, Y: 500})
	b, ok := NewBomb(e, p, rng)
	if !ok {
		t.Fatal("NewBomb reported not ok")
	}
	if b.Radius < BombMinRadius || b.Radius > BombMaxRadius {
		t.Fatalf("radius = %v, want within [%d, %d]", b.Radius, BombMinRadius, BombMaxRadius)
	}
	if b.Size != (Vector{X: 2 * b.Radius, Y: 2 * b.Radius}) {
		t.Fatalf("size = %+v for radius %v", b.Size, b.Radius)
	}
	if b.Center != (Vector{X: 100, Y: 100 + EnemySize/2}) {
		t.Fatalf("center = %+v, want just below the enemy", b.Center)
	}
	if !almostEqual(b.Velocity.X, 3.6) || !almostEqual(b.Velocity.Y, 4.8) {
		t.Fatalf("velocity = %+v, want {3.6 4.8}", b.Velocity)
	}

	p.Center = e.Center
	if _, ok := NewBomb(e, p, rng); ok {
		t.Fatal("NewBomb aimed at a player on top of the enemy")
	}
}

func TestExplosionLife(t *testing.T) {
	x := NewExplosion(Vector{X: 10, Y: 10}, BombExplosionLife)
	for i := 0; i < BombExplosionLife; i++ {
		if !x.Advance() {
			t.Fatalf("explosion died after %d ticks, want %d", i+1, BombExplosionLife+1)
		}
	}
	if x.Advance() {
		t.Fatal("explosion still alive with negative life")
	}
}

func TestExplosionVariant(t *testing.T) {
	x := NewExplosion(Vector{}, 100)
	x.Advance()
	if got := x.Variant(); got != "frame1" {
		t.Fatalf("Variant() at life 99 = %q, want frame1", got)
	}
	x.Life = 80
	if got := x.Variant(); got != "frame0" {
		t.Fatalf("Variant() at life 80 = %q, want frame0", got)
	}
}

func TestGravityFieldCoversField(t *testing.T) {
	cfg := DefaultConfig()
	g := NewGravityField(cfg)
	want := Rect{Max: Vector{X: cfg.FieldWidth, Y: cfg.FieldHeight}}
	if g.Box() != want {
		t.Fatalf("Box() = %+v, want %+v", g.Box(), want)
	}
	for i := 0; i < GravityLife; i++ {
		if !g.Advance() {
			t.Fatalf("field expired after %d ticks", i+1)
		}
	}
	if g.Advance() {
		t.Fatal("field outlived its life")
	}
}
