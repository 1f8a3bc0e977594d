package item

import "fmt"

// Size is the closed set of footprints an item can have, named rows by cols.
type Size uint8

const (
	OneByOne Size = iota
	OneByTwo
	TwoByOne
	TwoByTwo
	ThreeByOne
	ThreeByTwo

	sizeCount
)

// Footprint is the rows×cols rectangle an item covers in the grid.
type Footprint struct {
	Rows int
	Cols int
}

// Cells is the number of grid cells covered.
func (f Footprint) Cells() int { return f.Rows * f.Cols }

var footprints = [sizeCount]Footprint{
	OneByOne:   {Rows: 1, Cols: 1},
	OneByTwo:   {Rows: 1, Cols: 2},
	TwoByOne:   {Rows: 2, Cols: 1},
	TwoByTwo:   {Rows: 2, Cols: 2},
	ThreeByOne: {Rows: 3, Cols: 1},
	ThreeByTwo: {Rows: 3, Cols: 2},
}

// Sizes lists every declared size.
func Sizes() []Size {
	out := make([]Size, 0, sizeCount)
	for s := Size(0); s < sizeCount; s++ {
		out = append(out, s)
	}
	return out
}

// Footprint returns the rectangle for s. Undeclared sizes collapse to 1×1
// so a corrupt value can never claim zero cells.
func (s Size) Footprint() Footprint {
	if s < sizeCount {
		return footprints[s]
	}
	return Footprint{Rows: 1, Cols: 1}
}

func (s Size) String() string {
	f := s.Footprint()
	if s >= sizeCount {
		return fmt.Sprintf("size(%d)", uint8(s))
	}
	return fmt.Sprintf("%dx%d", f.Rows, f.Cols)
}
