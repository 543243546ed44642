package world

// Ledger holds the score, which doubles as the currency for abilities.
type Ledger struct {
	Score int
	// HyperDisplay is the countdown shown to the player after hyper is
	// bought. It ticks down to zero and stays there.
	HyperDisplay int
}

func (l *Ledger) Award(points int) {
	l.Score += points
}

// Spend deducts cost if the balance covers it. It never leaves the score
// negative.
func (l *Ledger) Spend(cost int) bool {
	if l.Score < cost {
		return false
	}
	l.Score -= cost
	return true
}

func (l *Ledger) Tick() {
	if l.HyperDisplay != 0 {
		l.HyperDisplay--
	}
}
