package world

type idSet map[string]struct{}

// overlapping scans as against bs and returns the IDs on each side that take
// part in at least one overlapping pair. Nothing is mutated.
func overlapping[A, B Collider](as []A, bs []B) (hitA, hitB idSet) {
	hitA, hitB = make(idSet), make(idSet)
	for _, a := range as {
		box := a.Box()
		for _, b := range bs {
			if box.Overlaps(b.Box()) {
				hitA[a.body().ID] = struct{}{}
				hitB[b.body().ID] = struct{}{}
			}
		}
	}
	return hitA, hitB
}

// partition splits items into the ones whose ID is not in ids and the ones
// that are, keeping order.
func partition[T Collider](items []T, ids idSet) (kept, removed []T) {
	if len(ids) == 0 {
		return items, nil
	}
	kept = items[:0:0]
	for _, item := range items {
		if _, ok := ids[item.body().ID]; ok {
			removed = append(removed, item)
			continue
		}
		kept = append(kept, item)
	}
	return kept, removed
}

func (w *World) killEnemies(dead []*Enemy) {
	for _, e := range dead {
		w.Explosions = append(w.Explosions, NewExplosion(e.Center, EnemyExplosionLife))
		w.Ledger.Award(EnemyKillScore)
	}
}

func (w *World) killBombs(dead []*Bomb) {
	for _, b := range dead {
		w.Explosions = append(w.Explosions, NewExplosion(b.Center, BombExplosionLife))
		w.Ledger.Award(BombKillScore)
	}
}

// resolveCollisions runs the collision passes in their fixed order. Each pass
// collects its hits first and only then removes and spawns, so later passes
// see the survivors of earlier ones. It returns true when a bomb reached a
// player who was not in hyper; the remaining passes are skipped then.
func (w *World) resolveCollisions() (gameOver bool) {
	var dead []*Enemy
	var deadBombs []*Bomb

	hitEnemies, hitBeams := overlapping(w.Enemies, w.Beams)
	w.Enemies, dead = partition(w.Enemies, hitEnemies)
	w.Beams, _ = partition(w.Beams, hitBeams)
	w.killEnemies(dead)
	if len(dead) > 0 {
		w.Player.Mood = MoodJoy
	}

	hitBombs, hitBeams := overlapping(w.Bombs, w.Beams)
	w.Bombs, deadBombs = partition(w.Bombs, hitBombs)
	w.Beams, _ = partition(w.Beams, hitBeams)
	w.killBombs(deadBombs)

	hitBombs, _ = overlapping(w.Bombs, []*Player{w.Player})
	w.Bombs, deadBombs = partition(w.Bombs, hitBombs)
	if len(deadBombs) > 0 {
		if w.Player.Mode == Normal {
			w.Player.Mood = MoodSad
			return true
		}
		w.killBombs(deadBombs)
	}

	for _, field := range w.Fields {
		fieldSet := []*GravityField{field}
		hitBombs, _ = overlapping(w.Bombs, fieldSet)
		w.Bombs, deadBombs = partition(w.Bombs, hitBombs)
		w.killBombs(deadBombs)

		hitEnemies, _ = overlapping(w.Enemies, fieldSet)
		w.Enemies, dead = partition(w.Enemies, hitEnemies)
		w.killEnemies(dead)
	}
	return false
}
