package render

import (
	"strings"
	"testing"

	"gridstash/internal/inventory"
	"gridstash/internal/item"

	"github.com/gdamore/tcell/v2"
)

// ─── helpers ──────────────────────────────────────────────────────────────────

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	ss.SetSize(100, 30)
	t.Cleanup(ss.Fini)
	return ss
}

func newTestRenderer(t *testing.T) (*Renderer, *inventory.Grid, tcell.SimulationScreen) {
	t.Helper()
	ss := newSimScreen(t)
	g := inventory.New(inventory.Config{}, nil)
	r := NewRenderer(ss, g.Rows(), g.Cols(), len(g.EquipRefs()))
	g.Subscribe(r.Observe)
	return r, g, ss
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		mainc, _, _, _ := s.GetContent(x, y)
		b.WriteRune(mainc)
	}
	return b.String()
}

func runeAt(s tcell.Screen, x, y int) rune {
	mainc, _, _, _ := s.GetContent(x, y)
	return mainc
}

func reversed(s tcell.Screen, x, y int) bool {
	_, _, style, _ := s.GetContent(x, y)
	_, _, attr := style.Decompose()
	return attr&tcell.AttrReverse != 0
}

func blade() *item.Item {
	return &item.Item{
		ID:        1,
		Name:      "Shard Blade",
		Category:  item.Sword,
		Size:      item.TwoByOne,
		Quality:   item.Rare,
		Modifiers: []item.Modifier{{Kind: item.Damage, Value: 4}},
	}
}

// ─── layout ───────────────────────────────────────────────────────────────────

func TestLayoutCellRoundTrip(t *testing.T) {
	l := NewLayout(5, 12, 9)
	for row := 0; row < 5; row++ {
		for col := 0; col < 12; col++ {
			x, y := l.CellToScreen(row, col)
			for dx := 0; dx < CellWidth; dx++ {
				r, c, ok := l.ScreenToCell(x+dx, y)
				if !ok || r != row || c != col {
					t.Fatalf("ScreenToCell(%d,%d) = %d,%d,%v; want %d,%d", x+dx, y, r, c, ok, row, col)
				}
			}
		}
	}
	if _, _, ok := l.ScreenToCell(0, 0); ok {
		t.Error("title row mapped to a cell")
	}
	x, y := l.CellToScreen(0, 12)
	if _, _, ok := l.ScreenToCell(x, y); ok {
		t.Error("column past the grid mapped to a cell")
	}
}

func TestLayoutEquipPanel(t *testing.T) {
	l := NewLayout(5, 12, 9)
	if i, ok := l.ScreenToEquip(l.EquipX, l.EquipY+3); !ok || i != 3 {
		t.Errorf("ScreenToEquip = %d,%v; want 3,true", i, ok)
	}
	if _, ok := l.ScreenToEquip(l.EquipX, l.EquipY+9); ok {
		t.Error("row past the last slot mapped to a slot")
	}
	if _, ok := l.ScreenToEquip(l.EquipX-1, l.EquipY); ok {
		t.Error("column left of the panel mapped to a slot")
	}
	if got, want := l.BelowGrid(), l.EquipY+9+1; got != want {
		t.Errorf("BelowGrid = %d; want %d (equipment panel is taller)", got, want)
	}
}

// ─── drawing ──────────────────────────────────────────────────────────────────

func TestDrawEmptyGrid(t *testing.T) {
	r, g, ss := newTestRenderer(t)
	r.Draw(g, View{Panel: PanelEquipment})

	empty := []rune(glyphEmpty)[0]
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			x, y := r.Layout().CellToScreen(row, col)
			if got := runeAt(ss, x, y); got != empty {
				t.Fatalf("cell (%d,%d) = %q; want %q", row, col, got, empty)
			}
		}
	}
	if !strings.Contains(rowText(ss, 0), "Inventory") {
		t.Errorf("title row = %q", rowText(ss, 0))
	}
	if !strings.Contains(rowText(ss, r.Layout().BelowGrid()), "Hand: empty") {
		t.Errorf("hand line = %q", rowText(ss, r.Layout().BelowGrid()))
	}
}

func TestObserveMarksFootprintDirty(t *testing.T) {
	r, g, ss := newTestRenderer(t)
	r.Draw(g, View{Panel: PanelEquipment})
	if r.Pending() != 0 {
		t.Fatalf("Pending after Draw = %d; want 0", r.Pending())
	}

	if !g.AddItem(blade()) {
		t.Fatal("AddItem failed on an empty grid")
	}
	if r.Pending() != 2 {
		t.Fatalf("Pending = %d; want 2 (one per covered cell)", r.Pending())
	}
	r.Draw(g, View{Panel: PanelEquipment})

	x, y := r.Layout().CellToScreen(0, 0)
	if got := runeAt(ss, x, y); got != '🗡' {
		t.Errorf("lead cell = %q; want sword glyph", got)
	}
	x, y = r.Layout().CellToScreen(1, 0)
	if got := runeAt(ss, x, y); got != []rune(glyphFill)[0] {
		t.Errorf("dependent cell = %q; want fill", got)
	}
}

func TestTooltipAnchoredToLead(t *testing.T) {
	r, g, ss := newTestRenderer(t)
	g.AddItem(blade())

	// Select the dependent cell; the tooltip still reports the lead.
	r.Draw(g, View{Panel: PanelGrid, Row: 1, Col: 0})

	top := r.Layout().BelowGrid() + 3
	header := rowText(ss, top)
	if !strings.Contains(header, "Shard Blade") || !strings.Contains(header, "at 0,0") {
		t.Errorf("tooltip header = %q; want name and lead position", header)
	}
	if line := rowText(ss, top+1); !strings.Contains(line, "+4 to Damage") {
		t.Errorf("tooltip modifier line = %q", line)
	}
}

func TestNoTooltipOnEmptyCell(t *testing.T) {
	r, g, ss := newTestRenderer(t)
	r.Draw(g, View{Panel: PanelGrid, Row: 4, Col: 11, Status: "ready"})

	below := r.Layout().BelowGrid()
	if !strings.Contains(rowText(ss, below+1), "ready") {
		t.Errorf("status line = %q", rowText(ss, below+1))
	}
	if got := strings.TrimSpace(rowText(ss, below+3)); got != "" {
		t.Errorf("tooltip row = %q; want blank", got)
	}
}

func TestEquipmentPanel(t *testing.T) {
	r, g, ss := newTestRenderer(t)
	g.AddItem(blade())
	if res := g.Swap(0, 0); res != inventory.SwapPicked {
		t.Fatalf("Swap = %v; want picked", res)
	}
	if res := g.Equip(inventory.EquipRef{Role: inventory.RoleMainhand}); res != inventory.EquipPlaced {
		t.Fatalf("Equip = %v; want placed", res)
	}

	r.Draw(g, View{Panel: PanelEquipment, Equip: 0})

	l := r.Layout()
	line := rowText(ss, l.EquipY)
	if !strings.Contains(line, "mainhand") || !strings.Contains(line, "Shard Blade") {
		t.Errorf("mainhand line = %q", line)
	}
	if !strings.Contains(rowText(ss, l.EquipY+1), "offhand") {
		t.Errorf("offhand line = %q", rowText(ss, l.EquipY+1))
	}
	if header := rowText(ss, l.BelowGrid()+3); !strings.Contains(header, "mainhand") {
		t.Errorf("tooltip header = %q; want slot name", header)
	}
}

func TestSelectionMoveRepaintsOldCell(t *testing.T) {
	r, g, ss := newTestRenderer(t)
	r.Draw(g, View{Panel: PanelGrid, Row: 0, Col: 0})

	x, y := r.Layout().CellToScreen(0, 0)
	if !reversed(ss, x, y) {
		t.Fatal("selected cell not highlighted")
	}

	r.Draw(g, View{Panel: PanelGrid, Row: 0, Col: 1})
	if reversed(ss, x, y) {
		t.Error("old selection still highlighted")
	}
}
