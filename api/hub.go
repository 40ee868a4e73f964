package api

import (
	"sync"

	"snake-classic/game"
)

// Hub fans snapshots out to WebSocket subscribers. Publish never blocks:
// a subscriber that has not consumed the previous frame gets it replaced,
// so the latest snapshot (game over included) is always the one pending.
type Hub struct {
	mutex sync.Mutex
	subs  map[chan game.Snapshot]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[chan game.Snapshot]struct{}),
	}
}

func (h *Hub) Subscribe() chan game.Snapshot {
	ch := make(chan game.Snapshot, 1)
	h.mutex.Lock()
	h.subs[ch] = struct{}{}
	h.mutex.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan game.Snapshot) {
	h.mutex.Lock()
	delete(h.subs, ch)
	h.mutex.Unlock()
}

func (h *Hub) Publish(s game.Snapshot) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for ch := range h.subs {
		select {
		case ch <- s:
		default:
			// Drop the stale frame. Only Publish sends and it holds the
			// mutex, so the second send always finds room.
			select {
			case <-ch:
			default:
			}
			ch <- s
		}
	}
}

func (h *Hub) Len() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.subs)
}
