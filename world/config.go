package world

// Config is everything a Simulation needs to know about its session.
type Config struct {
	FieldWidth   float64
	FieldHeight  float64
	TickRate     int
	InitialScore int
	PlayerStart  Vector
	// Seed of 0 picks a time based seed.
	Seed int64
	// History is how many recent frames the simulation keeps.
	History int
}

func DefaultConfig() Config {
	return Config{
		FieldWidth:   1100,
		FieldHeight:  650,
		TickRate:     50,
		InitialScore: 400,
		PlayerStart:  Vector{X: 900, Y: 400},
		History:      32,
	}
}

// inBounds applies InBounds against the configured play field.
func (c Config) inBounds(box Rect) bool {
	x, y := InBounds(box, c.FieldWidth, c.FieldHeight)
	return x && y
}
