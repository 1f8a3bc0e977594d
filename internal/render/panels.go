package render

import (
	"fmt"

	"gridstash/internal/inventory"
	"gridstash/internal/item"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const helpLine = "[arrows] move  [tab] panel  [space] swap/equip  [d] drop  [g] pick up  [r] roll  [q] quit"

// tooltipLines is how many rows under the status block the tooltip may use.
const tooltipLines = 10

func (r *Renderer) drawTitle(title string) {
	if title == "" {
		title = "Inventory"
	}
	r.clearLine(0, 0)
	r.drawText(r.layout.GridX, 0, title, tcell.StyleDefault.Bold(true))
	r.clearLine(0, 1)
	r.drawText(r.layout.GridX, 1, helpLine, tcell.StyleDefault.Foreground(tcell.ColorGray))
}

func (r *Renderer) drawEquipment(g *inventory.Grid, v View) {
	for i, ref := range g.EquipRefs() {
		y := r.layout.EquipY + i
		r.clearLine(r.layout.EquipX, y)

		style := tcell.StyleDefault
		if v.Panel == PanelEquipment && v.Equip == i {
			style = style.Reverse(true)
		}
		label := fmt.Sprintf("%-12s", ref.String())
		x := r.drawText(r.layout.EquipX, y, label, style)

		slot, _ := g.Equipment(ref)
		it := slot.Item()
		if it == nil {
			r.drawText(x, y, "-", style.Foreground(tcell.ColorGray))
			continue
		}
		r.putGlyph(x, y, Glyph(it), style)
		name := runewidth.Truncate(it.Name, equipWidth-len(label)-4, "…")
		r.drawText(x+3, y, name, style.Foreground(QualityColor(it.Quality)))
	}
}

// drawPanels paints the hand, status and tooltip block under the grid.
func (r *Renderer) drawPanels(g *inventory.Grid, v View) {
	y := r.layout.BelowGrid()
	for i := 0; i < 3+tooltipLines; i++ {
		r.clearLine(0, y+i)
	}

	x := r.drawText(r.layout.GridX, y, "Hand: ", tcell.StyleDefault)
	if held := g.Held(); held != nil {
		r.putGlyph(x, y, Glyph(held), tcell.StyleDefault)
		r.drawText(x+3, y, held.Name, tcell.StyleDefault.Foreground(QualityColor(held.Quality)))
	} else {
		r.drawText(x, y, "empty", tcell.StyleDefault.Foreground(tcell.ColorGray))
	}

	r.drawText(r.layout.GridX, y+1, v.Status, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	if v.Ground > 0 {
		r.drawText(r.layout.GridX, y+2, fmt.Sprintf("%d item(s) on the ground", v.Ground),
			tcell.StyleDefault.Foreground(tcell.ColorGray))
	}

	if it, where := r.selectedItem(g, v); it != nil {
		r.drawTooltip(r.layout.GridX, y+3, it, where)
	}
}

// selectedItem returns the item under the selection and a short location
// label. Grid items are reported at their lead cell.
func (r *Renderer) selectedItem(g *inventory.Grid, v View) (*item.Item, string) {
	if v.Panel == PanelEquipment {
		refs := g.EquipRefs()
		if v.Equip < 0 || v.Equip >= len(refs) {
			return nil, ""
		}
		slot, _ := g.Equipment(refs[v.Equip])
		return slot.Item(), refs[v.Equip].String()
	}
	cell, ok := g.Cell(v.Row, v.Col)
	if !ok || !cell.Occupied() {
		return nil, ""
	}
	it := cell.Item()
	row, col, _ := g.Locate(it.ID)
	return it, fmt.Sprintf("at %d,%d", row, col)
}

func (r *Renderer) drawTooltip(x, y int, it *item.Item, where string) {
	header := fmt.Sprintf("%s (%s %s, %s)", it.Name, it.Quality, it.Size, where)
	r.drawText(x, y, header, tcell.StyleDefault.Foreground(QualityColor(it.Quality)).Bold(true))
	line := 1
	if it.Description != "" {
		r.drawText(x, y+line, it.Description, tcell.StyleDefault.Foreground(tcell.ColorGray))
		line++
	}
	for _, m := range it.Modifiers {
		if line >= tooltipLines {
			break
		}
		r.drawText(x+2, y+line, m.String(), tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue))
		line++
	}
}
