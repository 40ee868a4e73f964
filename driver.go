package main

import (
	"context"
	"log"
	"time"

	"snake-classic/api"
	"snake-classic/game"
)

// Driver is the timer side of the game: it calls Advance once per tick
// while the snake is alive and hands every resulting snapshot to the hub.
type Driver struct {
	game       *game.Game
	hub        *api.Hub
	lastUpdate time.Time
}

func NewDriver(g *game.Game, hub *api.Hub) *Driver {
	return &Driver{
		game:       g,
		hub:        hub,
		lastUpdate: time.Now(),
	}
}

// Step advances the game if a full tick has elapsed since the previous
// one. It reports whether a tick ran; after game over it never does.
func (d *Driver) Step(now time.Time) bool {
	if !d.game.Alive() || now.Sub(d.lastUpdate) < d.game.TickRate {
		return false
	}
	d.tick()
	d.lastUpdate = now
	return true
}

func (d *Driver) tick() {
	d.game.Advance()
	snap := d.game.Snapshot()
	if d.hub != nil {
		d.hub.Publish(snap)
	}
	if !snap.Alive {
		log.Printf("game %s over after %s, length %d", d.game.UUID,
			d.game.ElapsedTime().Round(time.Millisecond), len(snap.Snake))
	}
}

// RunHeadless ticks on a time.Ticker until the game ends or ctx is done.
func (d *Driver) RunHeadless(ctx context.Context) {
	ticker := time.NewTicker(d.game.TickRate)
	defer ticker.Stop()

	for d.game.Alive() {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.tick()
		}
	}
}
