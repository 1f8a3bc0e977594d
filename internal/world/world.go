// Package world holds items that have left a player's inventory and now lie
// on the ground. It is the sink the inventory hands dropped items to.
package world

import (
	"sync"

	"gridstash/internal/item"
)

// Position is a ground coordinate.
type Position struct {
	X, Y int
}

// DropID identifies one ground drop.
type DropID uint64

// Drop is an item lying at a position.
type Drop struct {
	ID   DropID
	Item *item.Item
	At   Position
}

// World is the shared ground store. It is safe for concurrent use.
type World struct {
	mu     sync.Mutex
	nextID DropID
	drops  map[DropID]Drop
	// piles keeps the drop order per position; the last entry is on top.
	piles map[Position][]DropID
}

// New creates an empty World.
func New() *World {
	return &World{
		nextID: 1,
		drops:  make(map[DropID]Drop),
		piles:  make(map[Position][]DropID),
	}
}

// Deposit takes ownership of it and leaves it at origin.
func (w *World) Deposit(it *item.Item, origin Position) {
	if it == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextID
	w.nextID++
	w.drops[id] = Drop{ID: id, Item: it, At: origin}
	w.piles[origin] = append(w.piles[origin], id)
}

// DropsAt returns the drops at pos, bottom of the pile first.
func (w *World) DropsAt(pos Position) []Drop {
	w.mu.Lock()
	defer w.mu.Unlock()
	pile := w.piles[pos]
	out := make([]Drop, 0, len(pile))
	for _, id := range pile {
		out = append(out, w.drops[id])
	}
	return out
}

// Take removes and returns the item on top of the pile at pos.
func (w *World) Take(pos Position) (*item.Item, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	pile := w.piles[pos]
	if len(pile) == 0 {
		return nil, false
	}
	id := pile[len(pile)-1]
	if len(pile) == 1 {
		delete(w.piles, pos)
	} else {
		w.piles[pos] = pile[:len(pile)-1]
	}
	d := w.drops[id]
	delete(w.drops, id)
	return d.Item, true
}

// Len reports how many items lie on the ground.
func (w *World) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.drops)
}
