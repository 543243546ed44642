package world

type Intent int

const (
	IntentUp Intent = iota
	IntentDown
	IntentLeft
	IntentRight
	IntentBoost
	IntentFire
	IntentHyper
	IntentGravity
)

// Intents is a set of intents.
type Intents map[Intent]struct{}

func NewIntents(intents ...Intent) Intents {
	set := make(Intents, len(intents))
	for _, intent := range intents {
		set[intent] = struct{}{}
	}
	return set
}

func (i Intents) Has(intent Intent) bool {
	_, ok := i[intent]
	return ok
}

// Input is what the outside world tells the simulation for one tick. Held is
// the set of keys currently down; Pressed holds the discrete commands that
// were triggered since the previous tick.
type Input struct {
	Held    Intents
	Pressed Intents
}

var headingDeltas = []struct {
	intent Intent
	delta  Vector
}{
	{IntentUp, Vector{X: 0, Y: -1}},
	{IntentDown, Vector{X: 0, Y: +1}},
	{IntentLeft, Vector{X: -1, Y: 0}},
	{IntentRight, Vector{X: +1, Y: 0}},
}

// delta sums the unit moves of every held direction. Opposite directions
// cancel out.
func (i Intents) delta() Vector {
	var sum Vector
	for _, h := range headingDeltas {
		if i.Has(h.intent) {
			sum = sum.Add(h.delta)
		}
	}
	return sum
}
