package world

// World owns every live entity. Membership in a collection is what makes an
// entity alive; removing it is destroying it.
type World struct {
	Tick       int64
	Player     *Player
	Enemies    []*Enemy
	Bombs      []*Bomb
	Beams      []*Beam
	Explosions []*Explosion
	Fields     []*GravityField
	Ledger     Ledger
}

func NewWorld(cfg Config) *World {
	return &World{
		Player: NewPlayer(cfg.PlayerStart),
		Ledger: Ledger{Score: cfg.InitialScore},
	}
}

// Sprite is what a renderer needs to place one entity: where, how big and a
// symbolic variant to pick an image by.
type Sprite struct {
	ID      string
	Kind    Kind
	Center  Vector
	Size    Vector
	Variant string
	// Angle is the heading of a beam in degrees, counter-clockwise from +X.
	Angle float64
}

// Frame is the observable state after a tick.
type Frame struct {
	Tick         int64
	Score        int
	HyperDisplay int
	GameOver     bool
	Sprites      []Sprite
}

func sprite(b *Body, variant string) Sprite {
	return Sprite{
		ID:      b.ID,
		Kind:    b.Kind,
		Center:  b.Center,
		Size:    b.Size,
		Variant: variant,
	}
}

// Frame snapshots w in draw order: fields, player, beams, enemies, bombs,
// explosions.
func (w *World) Frame(gameOver bool) Frame {
	n := 1 + len(w.Fields) + len(w.Beams) + len(w.Enemies) + len(w.Bombs) + len(w.Explosions)
	f := Frame{
		Tick:         w.Tick,
		Score:        w.Ledger.Score,
		HyperDisplay: w.Ledger.HyperDisplay,
		GameOver:     gameOver,
		Sprites:      make([]Sprite, 0, n),
	}
	for _, g := range w.Fields {
		f.Sprites = append(f.Sprites, sprite(&g.Body, "field"))
	}
	f.Sprites = append(f.Sprites, sprite(&w.Player.Body, w.Player.Variant()))
	for _, b := range w.Beams {
		s := sprite(&b.Body, "beam")
		s.Angle = b.Angle
		f.Sprites = append(f.Sprites, s)
	}
	for _, e := range w.Enemies {
		f.Sprites = append(f.Sprites, sprite(&e.Body, e.Variant()))
	}
	for _, b := range w.Bombs {
		f.Sprites = append(f.Sprites, sprite(&b.Body, b.Variant()))
	}
	for _, x := range w.Explosions {
		f.Sprites = append(f.Sprites, sprite(&x.Body, x.Variant()))
	}
	return f
}

// Sprite looks up a sprite by entity ID.
func (f *Frame) Sprite(ID string) (Sprite, bool) {
	for _, s := range f.Sprites {
		if s.ID == ID {
			return s, true
		}
	}
	return Sprite{}, false
}

// Count returns how many sprites of kind are in the frame.
func (f *Frame) Count(kind Kind) int {
	n := 0
	for _, s := range f.Sprites {
		if s.Kind == kind {
			n++
		}
	}
	return n
}
