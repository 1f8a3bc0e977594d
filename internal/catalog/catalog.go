// Package catalog stamps new items out of base templates and hands out the
// unique IDs they carry.
package catalog

import (
	"errors"
	"fmt"
	"sync/atomic"

	"gridstash/internal/item"
)

// ErrNoTemplate is returned when a category has no template at the
// requested index.
var ErrNoTemplate = errors.New("catalog: no template")

// Template is the base (normal quality) version of an item.
type Template struct {
	Name        string
	Description string
	Category    item.Category
	Size        item.Size
}

// Catalog is the item spawn service. One Catalog should back every
// inventory in a process so IDs never repeat; it is safe for concurrent
// use.
type Catalog struct {
	byCategory map[item.Category][]Template
	lastID     atomic.Uint64
}

// New builds a Catalog from templates. Template order within a category
// is kept; index 0 is the default for Spawn.
func New(templates []Template) *Catalog {
	c := &Catalog{byCategory: make(map[item.Category][]Template)}
	for _, t := range templates {
		c.byCategory[t.Category] = append(c.byCategory[t.Category], t)
	}
	return c
}

// AssignID returns the next unique ID. IDs start at 1 and only grow.
func (c *Catalog) AssignID() item.ID {
	return item.ID(c.lastID.Add(1))
}

// Count returns how many templates cat has.
func (c *Catalog) Count(cat item.Category) int {
	return len(c.byCategory[cat])
}

// Template returns the index-th template of cat.
func (c *Catalog) Template(cat item.Category, index int) (Template, error) {
	list := c.byCategory[cat]
	if index < 0 || index >= len(list) {
		return Template{}, fmt.Errorf("%w: %s #%d", ErrNoTemplate, cat, index)
	}
	return list[index], nil
}

type spawnOptions struct {
	index   int
	quality item.Quality
}

// SpawnOption adjusts Spawn.
type SpawnOption func(*spawnOptions)

// WithQuality overrides the default normal quality.
func WithQuality(q item.Quality) SpawnOption {
	return func(o *spawnOptions) { o.quality = q }
}

// WithTemplate picks the index-th template of the category instead of the
// first.
func WithTemplate(index int) SpawnOption {
	return func(o *spawnOptions) { o.index = index }
}

// Spawn creates a fresh item of category cat with a new unique ID.
func (c *Catalog) Spawn(cat item.Category, opts ...SpawnOption) (*item.Item, error) {
	o := spawnOptions{quality: item.Normal}
	for _, opt := range opts {
		opt(&o)
	}
	t, err := c.Template(cat, o.index)
	if err != nil {
		return nil, err
	}
	return &item.Item{
		ID:          c.AssignID(),
		Name:        t.Name,
		Description: t.Description,
		Category:    t.Category,
		Size:        t.Size,
		Quality:     o.quality,
	}, nil
}
