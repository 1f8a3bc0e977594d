package inventory

import (
	"fmt"

	"gridstash/internal/item"
)

// Role decides which items a slot will hold.
type Role uint8

const (
	RoleInventory Role = iota
	RoleMainhand
	RoleOffhand
	RoleHelmet
	RoleChest
	RoleBoots
	RoleArtifact

	roleCount
)

type roleRule struct {
	name string
	any  bool
	cats []item.Category
}

// roleRules is the single compatibility table. Inventory cells take any
// item; every equipment role lists the categories it accepts.
var roleRules = [roleCount]roleRule{
	RoleInventory: {name: "inventory", any: true},
	RoleMainhand:  {name: "mainhand", cats: []item.Category{item.Sword}},
	RoleOffhand:   {name: "offhand", cats: []item.Category{item.Shield, item.Sword}},
	RoleHelmet:    {name: "helmet", cats: []item.Category{item.Helmet}},
	RoleChest:     {name: "chest", cats: []item.Category{item.Chest}},
	RoleBoots:     {name: "boots", cats: []item.Category{item.Boots}},
	RoleArtifact:  {name: "artifact", cats: []item.Category{item.Artifact}},
}

func (r Role) String() string {
	if r < roleCount {
		return roleRules[r].name
	}
	return fmt.Sprintf("role(%d)", uint8(r))
}

// Accepts reports whether a slot with role r may hold an item of category c.
func (r Role) Accepts(c item.Category) bool {
	if r >= roleCount || !c.Valid() {
		return false
	}
	rule := roleRules[r]
	if rule.any {
		return true
	}
	for _, ok := range rule.cats {
		if ok == c {
			return true
		}
	}
	return false
}

// Slot holds at most one item and refuses items its role does not accept.
type Slot struct {
	role Role
	item *item.Item
}

// NewSlot returns an empty slot with the given role.
func NewSlot(role Role) Slot { return Slot{role: role} }

func (s *Slot) Role() Role { return s.role }

// Item returns the occupant, or nil.
func (s *Slot) Item() *item.Item { return s.item }

func (s *Slot) Occupied() bool { return s.item != nil }

// Validate reports whether it is compatible with the slot's role.
func (s *Slot) Validate(it *item.Item) bool {
	return it != nil && s.role.Accepts(it.Category)
}

// Add stores it if the slot is empty and it is valid here. It never evicts:
// the caller must remove any previous occupant first.
func (s *Slot) Add(it *item.Item) bool {
	if s.item != nil || !s.Validate(it) {
		return false
	}
	s.item = it
	return true
}

// Remove empties the slot and returns what it held.
func (s *Slot) Remove() *item.Item {
	it := s.item
	s.item = nil
	return it
}

// InventorySlot is one grid cell. Besides the occupant it records how far
// the cell sits from the lead (top-left) cell of that occupant.
type InventorySlot struct {
	Slot
	rowOffset int
	colOffset int
}

// NewInventorySlot returns an empty grid cell.
func NewInventorySlot() InventorySlot {
	return InventorySlot{Slot: NewSlot(RoleInventory)}
}

// AddAt adds it and records the offsets. On failure the offsets are left
// as they were.
func (s *InventorySlot) AddAt(it *item.Item, rowOff, colOff int) bool {
	if !s.Slot.Add(it) {
		return false
	}
	s.rowOffset = rowOff
	s.colOffset = colOff
	return true
}

// Remove empties the cell and resets its offsets to (0,0).
func (s *InventorySlot) Remove() *item.Item {
	s.rowOffset = 0
	s.colOffset = 0
	return s.Slot.Remove()
}

// Offsets returns the cell's distance from its occupant's lead cell.
func (s *InventorySlot) Offsets() (row, col int) { return s.rowOffset, s.colOffset }

// IsLead reports whether the cell is occupied and is the occupant's
// top-left cell.
func (s *InventorySlot) IsLead() bool {
	return s.Occupied() && s.rowOffset == 0 && s.colOffset == 0
}
