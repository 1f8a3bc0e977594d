// Package inventory manages a player's item grid, equipment slots and the
// held item. Items may span several cells; all cells of an item are added
// and removed together, and every operation either applies in full or
// leaves the state untouched.
//
// A Grid is not safe for concurrent use. Callers serialise access with one
// lock per player.
package inventory

import (
	"gridstash/internal/item"
	"gridstash/internal/world"
)

const (
	DefaultRows          = 5
	DefaultCols          = 12
	DefaultArtifactSlots = 4
)

// Config sizes a Grid. Zero fields take the defaults.
type Config struct {
	Rows          int
	Cols          int
	ArtifactSlots int
}

// Sink accepts items dropped out of the inventory.
type Sink interface {
	Deposit(it *item.Item, origin world.Position)
}

// Grid is a player's inventory: a fixed rows×cols matrix of cells, a fixed
// set of equipment slots, and the held item.
type Grid struct {
	rows, cols int
	cells      []InventorySlot // row-major

	refs      []EquipRef
	equipment []Slot // parallel to refs

	held *item.Item
	sink Sink

	observers    []observer
	nextObserver int
}

// New builds an empty Grid. Dropped items go to sink.
func New(cfg Config, sink Sink) *Grid {
	if cfg.Rows <= 0 {
		cfg.Rows = DefaultRows
	}
	if cfg.Cols <= 0 {
		cfg.Cols = DefaultCols
	}
	if cfg.ArtifactSlots <= 0 {
		cfg.ArtifactSlots = DefaultArtifactSlots
	}
	g := &Grid{
		rows:  cfg.Rows,
		cols:  cfg.Cols,
		cells: make([]InventorySlot, cfg.Rows*cfg.Cols),
		sink:  sink,
	}
	for i := range g.cells {
		g.cells[i] = NewInventorySlot()
	}
	for _, r := range []Role{RoleMainhand, RoleOffhand, RoleHelmet, RoleChest, RoleBoots} {
		g.refs = append(g.refs, EquipRef{Role: r})
	}
	for i := 0; i < cfg.ArtifactSlots; i++ {
		g.refs = append(g.refs, EquipRef{Role: RoleArtifact, Index: i})
	}
	g.equipment = make([]Slot, len(g.refs))
	for i, ref := range g.refs {
		g.equipment[i] = NewSlot(ref.Role)
	}
	return g
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// Held returns the held item, or nil.
func (g *Grid) Held() *item.Item { return g.held }

// Cell returns a copy of the cell at (row, col).
func (g *Grid) Cell(row, col int) (InventorySlot, bool) {
	if !g.inBounds(row, col) {
		return InventorySlot{}, false
	}
	return *g.at(row, col), true
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) at(row, col int) *InventorySlot {
	return &g.cells[row*g.cols+col]
}

// leadOf maps any occupied cell to its occupant's lead cell using the
// stored offsets. Every lead lookup goes through here.
func (g *Grid) leadOf(row, col int) (int, int) {
	dr, dc := g.at(row, col).Offsets()
	return row - dr, col - dc
}

// FitsBounds reports whether footprint fp placed with its lead cell at
// (row, col) lies entirely inside the grid.
func (g *Grid) FitsBounds(row, col int, fp item.Footprint) bool {
	if row < 0 || col < 0 {
		return false
	}
	return row+fp.Rows <= g.rows && col+fp.Cols <= g.cols
}

// ScanRegion walks the fp rectangle at (row, col). available is true when
// every cell is empty; distinct counts the different items found, so an
// item covering several cells of the region counts once. A region that
// does not fit reports (false, 0).
func (g *Grid) ScanRegion(row, col int, fp item.Footprint) (available bool, distinct int) {
	if !g.FitsBounds(row, col, fp) {
		return false, 0
	}
	available = true
	var seen []item.ID
	for r := row; r < row+fp.Rows; r++ {
		for c := col; c < col+fp.Cols; c++ {
			it := g.at(r, c).Item()
			if it == nil {
				continue
			}
			available = false
			if !containsID(seen, it.ID) {
				seen = append(seen, it.ID)
			}
		}
	}
	return available, len(seen)
}

func containsID(ids []item.ID, id item.ID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// place writes it into every cell of its footprint at (row, col). The
// caller must already have checked that the region fits and is free.
func (g *Grid) place(row, col int, it *item.Item) {
	fp := it.Footprint()
	for dr := 0; dr < fp.Rows; dr++ {
		for dc := 0; dc < fp.Cols; dc++ {
			g.at(row+dr, col+dc).AddAt(it, dr, dc)
			g.emit(CellChanged{Row: row + dr, Col: col + dc})
		}
	}
}

// RemoveAt takes the item covering (row, col) out of the grid, clearing
// every cell it occupies, and returns it. An empty or out-of-range cell
// returns nil.
func (g *Grid) RemoveAt(row, col int) *item.Item {
	if !g.inBounds(row, col) || !g.at(row, col).Occupied() {
		return nil
	}
	lr, lc := g.leadOf(row, col)
	it := g.at(lr, lc).Item()
	fp := it.Footprint()
	for r := lr; r < lr+fp.Rows; r++ {
		for c := lc; c < lc+fp.Cols; c++ {
			g.at(r, c).Remove()
			g.emit(CellChanged{Row: r, Col: c})
		}
	}
	return it
}

// AddItem places it at the first free position, scanning lead positions
// row by row from the top-left. It reports false when nothing fits or when
// it is already held by this inventory.
func (g *Grid) AddItem(it *item.Item) bool {
	if it == nil || g.contains(it.ID) {
		return false
	}
	fp := it.Footprint()
	for row := 0; row <= g.rows-fp.Rows; row++ {
		for col := 0; col <= g.cols-fp.Cols; col++ {
			if ok, _ := g.ScanRegion(row, col, fp); ok {
				g.place(row, col, it)
				return true
			}
		}
	}
	return false
}

// SwapResult says what Swap did.
type SwapResult uint8

const (
	SwapNothing     SwapResult = iota // empty hand, empty cell
	SwapPicked                        // grid item moved to the hand
	SwapPlaced                        // held item placed on free cells
	SwapExchanged                     // held item and one grid item traded places
	SwapOutOfBounds                   // held item would not fit inside the grid
	SwapAmbiguous                     // region covers more than one item
)

var swapResultNames = [...]string{
	SwapNothing:     "nothing",
	SwapPicked:      "picked",
	SwapPlaced:      "placed",
	SwapExchanged:   "exchanged",
	SwapOutOfBounds: "out of bounds",
	SwapAmbiguous:   "ambiguous",
}

func (r SwapResult) String() string {
	if int(r) < len(swapResultNames) {
		return swapResultNames[r]
	}
	return "unknown"
}

// Rejected reports whether the swap was refused.
func (r SwapResult) Rejected() bool {
	return r == SwapOutOfBounds || r == SwapAmbiguous
}

// Swap is the pick-up/put-down transaction at (row, col).
//
// With an empty hand it picks up whatever covers the cell. With a held item
// it places the item with its lead cell at (row, col) if the region is
// free, trades it for the one item overlapping the region, or refuses when
// the region leaves the grid or overlaps two or more items.
func (g *Grid) Swap(row, col int) SwapResult {
	if !g.inBounds(row, col) {
		return SwapOutOfBounds
	}
	if g.held == nil {
		it := g.RemoveAt(row, col)
		if it == nil {
			return SwapNothing
		}
		g.setHeld(it)
		return SwapPicked
	}

	fp := g.held.Footprint()
	if !g.FitsBounds(row, col, fp) {
		return SwapOutOfBounds
	}
	available, distinct := g.ScanRegion(row, col, fp)
	switch {
	case available:
		it := g.held
		g.place(row, col, it)
		g.setHeld(nil)
		return SwapPlaced
	case distinct == 1:
		r, c := g.firstOccupied(row, col, fp)
		out := g.RemoveAt(r, c)
		in := g.held
		g.place(row, col, in)
		g.setHeld(out)
		return SwapExchanged
	default:
		return SwapAmbiguous
	}
}

func (g *Grid) firstOccupied(row, col int, fp item.Footprint) (int, int) {
	for r := row; r < row+fp.Rows; r++ {
		for c := col; c < col+fp.Cols; c++ {
			if g.at(r, c).Occupied() {
				return r, c
			}
		}
	}
	return row, col
}

func (g *Grid) setHeld(it *item.Item) {
	if g.held == it {
		return
	}
	g.held = it
	g.emit(HeldChanged{})
}

// Hold puts it into an empty hand, e.g. when picking it up from the
// ground. It reports false when the hand is full or it is already owned.
func (g *Grid) Hold(it *item.Item) bool {
	if it == nil || g.held != nil || g.contains(it.ID) {
		return false
	}
	g.setHeld(it)
	return true
}

// DropHeld hands the held item to the sink at origin. It reports false
// when nothing is held or there is no sink to take it.
func (g *Grid) DropHeld(origin world.Position) bool {
	if g.held == nil || g.sink == nil {
		return false
	}
	it := g.held
	g.sink.Deposit(it, origin)
	g.setHeld(nil)
	return true
}

// Items returns every item in the grid once, in row-major order of their
// lead cells.
func (g *Grid) Items() []*item.Item {
	var out []*item.Item
	for i := range g.cells {
		if g.cells[i].IsLead() {
			out = append(out, g.cells[i].Item())
		}
	}
	return out
}

// Locate returns the lead cell of the grid item with the given ID.
func (g *Grid) Locate(id item.ID) (row, col int, ok bool) {
	for i := range g.cells {
		s := &g.cells[i]
		if s.IsLead() && s.Item().ID == id {
			return i / g.cols, i % g.cols, true
		}
	}
	return 0, 0, false
}

// Count is the number of items owned by the inventory: grid items,
// equipped items and the held item.
func (g *Grid) Count() int {
	n := len(g.Items())
	for i := range g.equipment {
		if g.equipment[i].Occupied() {
			n++
		}
	}
	if g.held != nil {
		n++
	}
	return n
}

func (g *Grid) contains(id item.ID) bool {
	if g.held != nil && g.held.ID == id {
		return true
	}
	if _, _, ok := g.Locate(id); ok {
		return true
	}
	for i := range g.equipment {
		if it := g.equipment[i].Item(); it != nil && it.ID == id {
			return true
		}
	}
	return false
}
