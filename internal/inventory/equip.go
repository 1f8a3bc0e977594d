package inventory

import "gridstash/internal/item"

// EquipResult says what Equip did.
type EquipResult uint8

const (
	EquipNothing      EquipResult = iota // empty hand, empty slot
	EquipPicked                          // equipped item moved to the hand
	EquipPlaced                          // held item put into an empty slot
	EquipExchanged                       // held item and equipped item traded
	EquipIncompatible                    // slot does not accept the held item
	EquipUnknownSlot                     // no such slot
)

var equipResultNames = [...]string{
	EquipNothing:      "nothing",
	EquipPicked:       "picked",
	EquipPlaced:       "placed",
	EquipExchanged:    "exchanged",
	EquipIncompatible: "incompatible",
	EquipUnknownSlot:  "unknown slot",
}

func (r EquipResult) String() string {
	if int(r) < len(equipResultNames) {
		return equipResultNames[r]
	}
	return "unknown"
}

// Rejected reports whether the equip was refused.
func (r EquipResult) Rejected() bool {
	return r == EquipIncompatible || r == EquipUnknownSlot
}

// EquipRefs lists the equipment slots in display order: main hand, off
// hand, helmet, chest, boots, then the artifact slots.
func (g *Grid) EquipRefs() []EquipRef {
	out := make([]EquipRef, len(g.refs))
	copy(out, g.refs)
	return out
}

func (g *Grid) slotIndex(ref EquipRef) (int, bool) {
	for i, r := range g.refs {
		if r == ref {
			return i, true
		}
	}
	return 0, false
}

// Equipment returns a copy of the slot named by ref.
func (g *Grid) Equipment(ref EquipRef) (Slot, bool) {
	i, ok := g.slotIndex(ref)
	if !ok {
		return Slot{}, false
	}
	return g.equipment[i], true
}

// Equipped returns the occupied equipment slots' items in display order.
func (g *Grid) Equipped() []*item.Item {
	var out []*item.Item
	for i := range g.equipment {
		if it := g.equipment[i].Item(); it != nil {
			out = append(out, it)
		}
	}
	return out
}

// Equip is Swap for a single typed slot. With an empty hand it takes the
// equipped item. With a held item it equips it if the slot accepts it,
// handing back whatever was equipped before. EquipmentRemoving precedes any
// removal from the slot and EquipmentChanged follows the mutation.
func (g *Grid) Equip(ref EquipRef) EquipResult {
	i, ok := g.slotIndex(ref)
	if !ok {
		return EquipUnknownSlot
	}
	s := &g.equipment[i]

	if g.held == nil {
		if !s.Occupied() {
			return EquipNothing
		}
		g.emit(EquipmentRemoving{Ref: ref})
		it := s.Remove()
		g.emit(EquipmentChanged{Ref: ref})
		g.setHeld(it)
		return EquipPicked
	}

	if !s.Validate(g.held) {
		return EquipIncompatible
	}
	var prev *item.Item
	if s.Occupied() {
		g.emit(EquipmentRemoving{Ref: ref})
		prev = s.Remove()
	}
	s.Add(g.held)
	g.emit(EquipmentChanged{Ref: ref})
	g.setHeld(prev)
	if prev == nil {
		return EquipPlaced
	}
	return EquipExchanged
}
