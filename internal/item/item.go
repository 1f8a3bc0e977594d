// Package item describes the static identity of an inventory item: what it
// is, how much grid space it takes, and which stat modifiers it carries.
package item

import "fmt"

// ID uniquely identifies a spawned item for its whole lifetime.
type ID uint64

// NoID is the zero value; no spawned item carries it.
const NoID ID = 0

// Category decides which equipment slots accept an item.
type Category uint8

const (
	Sword Category = iota
	Shield
	Helmet
	Chest
	Boots
	Artifact

	categoryCount
)

// Categories lists every category in declaration order.
func Categories() []Category {
	out := make([]Category, 0, categoryCount)
	for c := Category(0); c < categoryCount; c++ {
		out = append(out, c)
	}
	return out
}

var categoryNames = [categoryCount]string{
	Sword:    "sword",
	Shield:   "shield",
	Helmet:   "helmet",
	Chest:    "chest",
	Boots:    "boots",
	Artifact: "artifact",
}

func (c Category) String() string {
	if c < categoryCount {
		return categoryNames[c]
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool { return c < categoryCount }

// Quality is the rarity tier rolled for an item.
type Quality uint8

const (
	Normal Quality = iota
	Magic
	Rare
	Unique

	qualityCount
)

// Qualities lists every quality tier from lowest to highest.
func Qualities() []Quality {
	out := make([]Quality, 0, qualityCount)
	for q := Quality(0); q < qualityCount; q++ {
		out = append(out, q)
	}
	return out
}

var qualityNames = [qualityCount]string{
	Normal: "normal",
	Magic:  "magic",
	Rare:   "rare",
	Unique: "unique",
}

func (q Quality) String() string {
	if q < qualityCount {
		return qualityNames[q]
	}
	return fmt.Sprintf("quality(%d)", uint8(q))
}

// StatKind names the character stat a modifier adjusts.
type StatKind uint8

const (
	Strength StatKind = iota
	Dexterity
	Intellect
	Vitality
	Armor
	Damage

	statKindCount
)

// StatKinds lists every stat kind in declaration order.
func StatKinds() []StatKind {
	out := make([]StatKind, 0, statKindCount)
	for k := StatKind(0); k < statKindCount; k++ {
		out = append(out, k)
	}
	return out
}

var statLabels = [statKindCount]string{
	Strength:  "Strength",
	Dexterity: "Dexterity",
	Intellect: "Intellect",
	Vitality:  "Vitality",
	Armor:     "Armor",
	Damage:    "Damage",
}

func (k StatKind) String() string {
	if k < statKindCount {
		return statLabels[k]
	}
	return fmt.Sprintf("stat(%d)", uint8(k))
}

// Modifier adds Value to one stat while the item is worn.
type Modifier struct {
	Kind  StatKind
	Value int
}

// String renders the modifier the way tooltips show it, e.g. "+3 to Armor".
func (m Modifier) String() string {
	return fmt.Sprintf("%+d to %s", m.Value, m.Kind)
}

// Item is one game object. Once spawned its fields are not mutated; the
// inventory passes *Item around and compares items by ID.
type Item struct {
	ID          ID
	Name        string
	Description string
	Category    Category
	Size        Size
	Quality     Quality
	Modifiers   []Modifier
}

// Footprint returns the grid rectangle the item occupies.
func (it *Item) Footprint() Footprint { return it.Size.Footprint() }

// Clone returns a deep copy. The modifier slice is not shared.
func (it *Item) Clone() *Item {
	c := *it
	if it.Modifiers != nil {
		c.Modifiers = make([]Modifier, len(it.Modifiers))
		copy(c.Modifiers, it.Modifiers)
	}
	return &c
}

func (it *Item) String() string {
	if it == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s#%d(%s %s %s)", it.Name, it.ID, it.Quality, it.Category, it.Size)
}
