// Package loot rolls random items: a uniformly chosen category, template
// and quality, plus a handful of random stat modifiers.
package loot

import (
	"fmt"
	"math/rand"

	"gridstash/internal/catalog"
	"gridstash/internal/item"
)

const (
	MinModifiers     = 2
	MaxModifiers     = 6
	MaxModifierValue = 9
)

// Generator is not safe for concurrent use; give each goroutine its own
// Generator with its own *rand.Rand.
type Generator struct {
	catalog *catalog.Catalog
	rng     *rand.Rand
}

// New returns a Generator that spawns through c and draws from rng.
func New(c *catalog.Catalog, rng *rand.Rand) *Generator {
	return &Generator{catalog: c, rng: rng}
}

// Roll spawns one random item.
func (g *Generator) Roll() (*item.Item, error) {
	cats := item.Categories()
	cat := cats[g.rng.Intn(len(cats))]
	n := g.catalog.Count(cat)
	if n == 0 {
		return nil, fmt.Errorf("loot: roll %s: %w", cat, catalog.ErrNoTemplate)
	}
	qualities := item.Qualities()
	q := qualities[g.rng.Intn(len(qualities))]

	it, err := g.catalog.Spawn(cat, catalog.WithTemplate(g.rng.Intn(n)), catalog.WithQuality(q))
	if err != nil {
		return nil, fmt.Errorf("loot: roll %s: %w", cat, err)
	}
	count := MinModifiers + g.rng.Intn(MaxModifiers-MinModifiers+1)
	it.Modifiers = make([]item.Modifier, 0, count)
	for i := 0; i < count; i++ {
		it.Modifiers = append(it.Modifiers, g.randomModifier())
	}
	return it, nil
}

func (g *Generator) randomModifier() item.Modifier {
	kinds := item.StatKinds()
	return item.Modifier{
		Kind:  kinds[g.rng.Intn(len(kinds))],
		Value: 1 + g.rng.Intn(MaxModifierValue),
	}
}
