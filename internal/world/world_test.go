package world

import (
	"sync"
	"testing"

	"gridstash/internal/item"
)

func TestDepositAndTakeIsLastInFirstOut(t *testing.T) {
	w := New()
	at := Position{X: 3, Y: 4}
	a := &item.Item{ID: 1, Name: "a"}
	b := &item.Item{ID: 2, Name: "b"}
	w.Deposit(a, at)
	w.Deposit(b, at)

	if w.Len() != 2 {
		t.Fatalf("Len = %d; want 2", w.Len())
	}
	got, ok := w.Take(at)
	if !ok || got.ID != 2 {
		t.Fatalf("first Take = %v, %v; want item 2", got, ok)
	}
	got, ok = w.Take(at)
	if !ok || got.ID != 1 {
		t.Fatalf("second Take = %v, %v; want item 1", got, ok)
	}
	if _, ok := w.Take(at); ok {
		t.Fatal("Take on an empty pile should report false")
	}
	if w.Len() != 0 {
		t.Errorf("Len = %d after emptying; want 0", w.Len())
	}
}

func TestDropsAtSeparatesPositions(t *testing.T) {
	w := New()
	w.Deposit(&item.Item{ID: 1}, Position{X: 0, Y: 0})
	w.Deposit(&item.Item{ID: 2}, Position{X: 1, Y: 0})
	w.Deposit(&item.Item{ID: 3}, Position{X: 0, Y: 0})

	drops := w.DropsAt(Position{X: 0, Y: 0})
	if len(drops) != 2 {
		t.Fatalf("len(DropsAt) = %d; want 2", len(drops))
	}
	if drops[0].Item.ID != 1 || drops[1].Item.ID != 3 {
		t.Errorf("pile order = [%d %d]; want [1 3]", drops[0].Item.ID, drops[1].Item.ID)
	}
	if drops[0].ID == drops[1].ID {
		t.Error("drop IDs must be distinct")
	}
}

func TestDepositNilIsNoop(t *testing.T) {
	w := New()
	w.Deposit(nil, Position{})
	if w.Len() != 0 {
		t.Errorf("Len = %d; want 0", w.Len())
	}
}

func TestConcurrentDeposits(t *testing.T) {
	w := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w.Deposit(&item.Item{ID: item.ID(i + 1)}, Position{X: i % 3})
		}(i)
	}
	wg.Wait()
	if w.Len() != 50 {
		t.Errorf("Len = %d; want 50", w.Len())
	}
}
