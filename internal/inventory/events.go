package inventory

import "fmt"

// EquipRef names one equipment slot. Index tells the artifact slots apart
// and is 0 for every other role.
type EquipRef struct {
	Role  Role
	Index int
}

func (r EquipRef) String() string {
	if r.Role == RoleArtifact {
		return fmt.Sprintf("%s[%d]", r.Role, r.Index)
	}
	return r.Role.String()
}

// Event is a change notification. Events carry only enough to identify
// what changed; observers read the current state back from the Grid.
type Event interface {
	event()
}

// CellChanged reports that the grid cell at (Row, Col) gained or lost an
// occupant.
type CellChanged struct {
	Row, Col int
}

// EquipmentRemoving is sent before an equipment slot's occupant is taken
// out, while the old occupant is still readable.
type EquipmentRemoving struct {
	Ref EquipRef
}

// EquipmentChanged is sent after an equipment slot's occupant changed.
type EquipmentChanged struct {
	Ref EquipRef
}

// HeldChanged is sent whenever the held item changes.
type HeldChanged struct{}

func (CellChanged) event()       {}
func (EquipmentRemoving) event() {}
func (EquipmentChanged) event()  {}
func (HeldChanged) event()       {}

type observer struct {
	id int
	fn func(Event)
}

// Subscribe registers fn to receive every event, synchronously and in
// emission order, before the mutating call returns. fn runs with the
// caller's locks held and must not mutate the Grid. The returned func
// cancels the subscription.
func (g *Grid) Subscribe(fn func(Event)) (cancel func()) {
	g.nextObserver++
	id := g.nextObserver
	g.observers = append(g.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range g.observers {
			if o.id == id {
				g.observers = append(g.observers[:i:i], g.observers[i+1:]...)
				return
			}
		}
	}
}

func (g *Grid) emit(ev Event) {
	for _, o := range g.observers {
		o.fn(ev)
	}
}
