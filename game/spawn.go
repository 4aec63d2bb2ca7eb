package game

// SpawnDirector drives time-based enemy creation: a repeating timer spawns
// bees, and destroyed worms get a one-shot delayed respawn at their original
// band. Discarding the director cancels everything it has scheduled.
type SpawnDirector struct {
	beeTimer     *Timer
	respawnDelay float64
	spawnWorm    func(band Rect)
	pending      []*respawn
}

// respawn binds one scheduled worm respawn to the band it will use.
type respawn struct {
	band  Rect
	timer *Timer
}

// NewSpawnDirector wires the periodic bee spawner (autostarted) and the worm
// respawn factory.
func NewSpawnDirector(beeInterval float64, spawnBee func(), respawnDelay float64, spawnWorm func(band Rect)) *SpawnDirector {
	return &SpawnDirector{
		beeTimer:     NewTimer(beeInterval, spawnBee, true, true),
		respawnDelay: respawnDelay,
		spawnWorm:    spawnWorm,
	}
}

// ScheduleRespawn queues exactly one worm respawn at the given band after the
// configured delay.
func (d *SpawnDirector) ScheduleRespawn(band Rect) {
	r := &respawn{band: band}
	r.timer = NewTimer(d.respawnDelay, func() { d.spawnWorm(r.band) }, true, false)
	d.pending = append(d.pending, r)
}

// Update advances the bee timer and all pending respawns, discarding each
// respawn after it fires.
func (d *SpawnDirector) Update(dt float64) {
	d.beeTimer.Update(dt)

	kept := d.pending[:0]
	for _, r := range d.pending {
		r.timer.Update(dt)
		if r.timer.Active() {
			kept = append(kept, r)
		}
	}
	d.pending = kept
}

// PendingRespawns returns the number of respawns not yet fired.
func (d *SpawnDirector) PendingRespawns() int { return len(d.pending) }
