package render

import (
	"gridstash/internal/item"

	"github.com/gdamore/tcell/v2"
)

// Category glyphs shown on an item's lead cell. Emoji are drawn by the
// terminal in their own colours, so quality is shown on the fill cells.
var categoryGlyphs = map[item.Category]string{
	item.Sword:    "🗡️",
	item.Shield:   "🛡️",
	item.Helmet:   "🪖",
	item.Chest:    "🦺",
	item.Boots:    "🥾",
	item.Artifact: "💎",
}

const (
	glyphEmpty   = "·"
	glyphFill    = "░"
	glyphUnknown = "?"
)

// Glyph returns the glyph for the item's category.
func Glyph(it *item.Item) string {
	if it == nil {
		return glyphEmpty
	}
	if g, ok := categoryGlyphs[it.Category]; ok {
		return g
	}
	return glyphUnknown
}

var qualityColors = map[item.Quality]tcell.Color{
	item.Normal: tcell.ColorWhite,
	item.Magic:  tcell.ColorDodgerBlue,
	item.Rare:   tcell.ColorYellow,
	item.Unique: tcell.ColorOrange,
}

// QualityColor returns the text colour used for items of quality q.
func QualityColor(q item.Quality) tcell.Color {
	if c, ok := qualityColors[q]; ok {
		return c
	}
	return tcell.ColorWhite
}
