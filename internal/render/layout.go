package render

// Layout translates between inventory positions and screen coordinates.
// Each grid cell is CellWidth terminal columns wide because emoji glyphs
// take two columns and a gap keeps neighbours readable.
type Layout struct {
	GridX, GridY int
	Rows, Cols   int
	EquipX       int
	EquipY       int
	EquipCount   int
}

const (
	CellWidth  = 3
	equipWidth = 34
)

// NewLayout places the grid in the top-left corner with the equipment
// panel to its right.
func NewLayout(rows, cols, equipCount int) Layout {
	l := Layout{GridX: 1, GridY: 2, Rows: rows, Cols: cols, EquipCount: equipCount}
	l.EquipX = l.GridX + cols*CellWidth + 3
	l.EquipY = l.GridY
	return l
}

// CellToScreen returns the screen position of the grid cell's first column.
func (l Layout) CellToScreen(row, col int) (x, y int) {
	return l.GridX + col*CellWidth, l.GridY + row
}

// ScreenToCell maps a screen position to a grid cell.
func (l Layout) ScreenToCell(x, y int) (row, col int, ok bool) {
	if x < l.GridX || y < l.GridY {
		return 0, 0, false
	}
	row = y - l.GridY
	col = (x - l.GridX) / CellWidth
	if row >= l.Rows || col >= l.Cols {
		return 0, 0, false
	}
	return row, col, true
}

// ScreenToEquip maps a screen position to an index into the equipment
// list.
func (l Layout) ScreenToEquip(x, y int) (int, bool) {
	if x < l.EquipX || x >= l.EquipX+equipWidth {
		return 0, false
	}
	i := y - l.EquipY
	if i < 0 || i >= l.EquipCount {
		return 0, false
	}
	return i, true
}

// BelowGrid is the first screen row under both panels.
func (l Layout) BelowGrid() int {
	bottom := l.GridY + l.Rows
	if e := l.EquipY + l.EquipCount; e > bottom {
		bottom = e
	}
	return bottom + 1
}
