// Package render draws an inventory onto a tcell screen. The Renderer is an
// inventory observer: grid notifications mark cells dirty, and Draw pulls
// the current state of just those cells back from the Grid.
package render

import (
	"gridstash/internal/inventory"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Panel is the part of the screen the selection is in.
type Panel uint8

const (
	PanelGrid Panel = iota
	PanelEquipment
)

// View is the per-frame UI state that the inventory does not own.
type View struct {
	Panel    Panel
	Row, Col int // grid selection
	Equip    int // index into Grid.EquipRefs
	Status   string
	Ground   int // items lying at the player's feet
	Title    string
}

type cellKey struct{ row, col int }

// Renderer draws one player's inventory.
type Renderer struct {
	screen tcell.Screen
	layout Layout
	dirty  map[cellKey]bool
	full   bool

	selected    cellKey
	hasSelected bool
}

// NewRenderer creates a Renderer for a rows×cols grid with equipCount
// equipment slots. The first Draw paints everything.
func NewRenderer(screen tcell.Screen, rows, cols, equipCount int) *Renderer {
	return &Renderer{
		screen: screen,
		layout: NewLayout(rows, cols, equipCount),
		dirty:  make(map[cellKey]bool),
		full:   true,
	}
}

// Layout returns the screen layout, for mapping mouse positions.
func (r *Renderer) Layout() Layout { return r.layout }

// Observe is the inventory subscription callback.
func (r *Renderer) Observe(ev inventory.Event) {
	if c, ok := ev.(inventory.CellChanged); ok {
		r.dirty[cellKey{c.Row, c.Col}] = true
	}
	// Equipment, hand and tooltip panels are redrawn on every frame.
}

// Pending reports how many grid cells wait to be redrawn.
func (r *Renderer) Pending() int { return len(r.dirty) }

// Invalidate forces the next Draw to repaint the whole screen, e.g. after
// a resize.
func (r *Renderer) Invalidate() { r.full = true }

// Draw repaints dirty grid cells and the side panels.
func (r *Renderer) Draw(g *inventory.Grid, v View) {
	if r.full {
		r.screen.Clear()
		r.drawTitle(v.Title)
		for row := 0; row < r.layout.Rows; row++ {
			for col := 0; col < r.layout.Cols; col++ {
				r.dirty[cellKey{row, col}] = true
			}
		}
		r.full = false
	}

	// Selection moves repaint the cell left behind and the new one.
	if r.hasSelected {
		r.dirty[r.selected] = true
	}
	r.hasSelected = v.Panel == PanelGrid
	if r.hasSelected {
		r.selected = cellKey{v.Row, v.Col}
		r.dirty[r.selected] = true
	}

	for k := range r.dirty {
		r.drawCell(g, k.row, k.col, r.hasSelected && k == r.selected)
	}
	clear(r.dirty)

	r.drawEquipment(g, v)
	r.drawPanels(g, v)
	r.screen.Show()
}

func (r *Renderer) drawCell(g *inventory.Grid, row, col int, selected bool) {
	cell, ok := g.Cell(row, col)
	if !ok {
		return
	}
	x, y := r.layout.CellToScreen(row, col)
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	if selected {
		style = style.Reverse(true)
	}
	r.fill(x, y, CellWidth, style)

	switch {
	case !cell.Occupied():
		r.putGlyph(x, y, glyphEmpty, style.Foreground(tcell.ColorGray))
	case cell.IsLead():
		r.putGlyph(x, y, Glyph(cell.Item()), style)
	default:
		fillStyle := style.Foreground(QualityColor(cell.Item().Quality))
		r.putGlyph(x, y, glyphFill, fillStyle)
		r.putGlyph(x+1, y, glyphFill, fillStyle)
	}
}

func (r *Renderer) fill(x, y, width int, style tcell.Style) {
	for i := 0; i < width; i++ {
		r.screen.SetContent(x+i, y, ' ', nil, style)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// drawText writes text from (x, y), advancing by each rune's display width,
// and returns the column after the last rune. It stops at the screen edge.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	sw, _ := r.screen.Size()
	col := x
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > sw {
			break
		}
		r.screen.SetContent(col, y, ch, nil, style)
		col += w
	}
	return col
}

func (r *Renderer) clearLine(x, y int) {
	sw, _ := r.screen.Size()
	for col := x; col < sw; col++ {
		r.screen.SetContent(col, y, ' ', nil, tcell.StyleDefault)
	}
}
