package assets

import (
	"gridstash/internal/catalog"
	"gridstash/internal/item"
)

// ItemTemplates is the base item table. Order within a category matters:
// the first entry is what catalog.Spawn returns by default.
var ItemTemplates = []catalog.Template{
	// Swords
	{Name: "Shard Blade", Category: item.Sword, Size: item.TwoByOne,
		Description: "A sliver of crystal honed to a cutting edge."},
	{Name: "Echo Cutter", Category: item.Sword, Size: item.ThreeByOne,
		Description: "Hums a half-second after every swing."},
	{Name: "Abyssal Cleaver", Category: item.Sword, Size: item.ThreeByTwo,
		Description: "Heavy enough to need both arms and a reason."},
	// Shields
	{Name: "Phase Mirror", Category: item.Shield, Size: item.TwoByTwo,
		Description: "Reflects a moment ago rather than the present."},
	{Name: "Power Cell", Category: item.Shield, Size: item.TwoByOne,
		Description: "A humming barrier strapped to the forearm."},
	// Helmets
	{Name: "Crystal Helm", Category: item.Helmet, Size: item.TwoByTwo,
		Description: "Cold to the touch, even in the forge."},
	{Name: "Void Crown", Category: item.Helmet, Size: item.OneByTwo,
		Description: "Sits a finger's width above the head."},
	// Chest
	{Name: "Frost Weave", Category: item.Chest, Size: item.ThreeByTwo,
		Description: "Woven from threads of living ice."},
	{Name: "Prismatic Plate", Category: item.Chest, Size: item.ThreeByTwo,
		Description: "Splits incoming light, and blows, into colours."},
	// Boots
	{Name: "Flux Treads", Category: item.Boots, Size: item.TwoByTwo,
		Description: "Never quite touch the floor."},
	{Name: "Membrane Walkers", Category: item.Boots, Size: item.TwoByTwo,
		Description: "Soft soles that remember every step."},
	// Artifacts
	{Name: "Prism Shard", Category: item.Artifact, Size: item.OneByOne,
		Description: "A fragment of the spire's heart."},
	{Name: "Tesseract Cube", Category: item.Artifact, Size: item.OneByOne,
		Description: "Larger on the inside, lighter on the outside."},
	{Name: "Resonance Coil", Category: item.Artifact, Size: item.OneByTwo,
		Description: "Rings when danger is near."},
}
