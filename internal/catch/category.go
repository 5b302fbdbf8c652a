// Package catch implements the motion and capture loop shared by the
// catcher games: actors cross the field, wobble or hop, wrap at the edges,
// and are collected by a pointer-driven net. Levels advance when the
// per-level quota has been caught.
//
// The package is pure simulation. Frontends feed it an Input per tick and
// read Stats, Draw and cue callbacks back out.
package catch

import "fmt"

// Behavior describes per-category motion on top of the horizontal walk.
// A zero Behavior walks in a straight line.
type Behavior struct {
	Wobble    float64 // Vertical oscillation amplitude in pixels
	Hop       float64 // Hop height as a multiple of the category size
	HopStride float64 // Forward push in pixels per tick at the top of a hop
}

// Wobbles reports whether the category oscillates vertically.
func (b Behavior) Wobbles() bool { return b.Wobble > 0 }

// Hops reports whether the category hops.
func (b Behavior) Hops() bool { return b.Hop > 0 }

// Category is a kind of actor with fixed size, speed and point value.
type Category struct {
	ID       string
	Name     string
	Size     float64 // Diameter in pixels
	Speed    float64 // Base pixels per tick before scaling
	Points   int
	Behavior Behavior
}

// Catalog is the ordered list of categories a session cycles through.
type Catalog struct {
	cats  []Category
	index map[string]int
}

// NewCatalog builds a catalog. Order is significant: level N plays the
// N-th category.
func NewCatalog(cats []Category) (*Catalog, error) {
	if len(cats) == 0 {
		return nil, fmt.Errorf("catch: catalog is empty")
	}
	c := &Catalog{
		cats:  make([]Category, len(cats)),
		index: make(map[string]int, len(cats)),
	}
	copy(c.cats, cats)
	for i, cat := range c.cats {
		if cat.ID == "" {
			return nil, fmt.Errorf("catch: category %d has no id", i)
		}
		if cat.Size <= 0 {
			return nil, fmt.Errorf("catch: category %q has non-positive size", cat.ID)
		}
		if _, dup := c.index[cat.ID]; dup {
			return nil, fmt.Errorf("catch: duplicate category %q", cat.ID)
		}
		c.index[cat.ID] = i
	}
	return c, nil
}

// Len returns the number of categories.
func (c *Catalog) Len() int { return len(c.cats) }

// At returns the category at position i.
func (c *Catalog) At(i int) Category { return c.cats[i] }

// Lookup finds a category by ID.
func (c *Catalog) Lookup(id string) (Category, int, bool) {
	i, ok := c.index[id]
	if !ok {
		return Category{}, -1, false
	}
	return c.cats[i], i, true
}

// Wobble and hop shapes used by the built-in animals.
const (
	animalWobble  = 20
	frogHop       = 1.6
	frogHopStride = 8
	rabbitHop     = 0.4
)

// Animals returns the default animal line-up, easiest first.
func Animals() []Category {
	wobble := Behavior{Wobble: animalWobble}
	return []Category{
		{ID: "snails", Name: "Snails", Size: 36, Speed: 0.6, Points: 11},
		{ID: "koalas", Name: "Koalas", Size: 46, Speed: 1.1, Points: 21},
		{ID: "gnomes", Name: "Gnomes", Size: 44, Speed: 1.2, Points: 16},
		{ID: "wombats", Name: "Wombats", Size: 44, Speed: 1.2, Points: 19},
		{ID: "fairies", Name: "Fairies", Size: 36, Speed: 1.3, Points: 22, Behavior: wobble},
		{ID: "echidnas", Name: "Echidnas", Size: 40, Speed: 1.3, Points: 17},
		{ID: "butterflies", Name: "Butterflies", Size: 40, Speed: 1.3, Points: 15, Behavior: wobble},
		{ID: "crabs", Name: "Crabs", Size: 42, Speed: 1.4, Points: 18},
		{ID: "fireflies", Name: "Fireflies", Size: 30, Speed: 1.5, Points: 16, Behavior: wobble},
		{ID: "fish", Name: "Fish", Size: 38, Speed: 1.6, Points: 12, Behavior: wobble},
		{ID: "ladybugs", Name: "Ladybugs", Size: 32, Speed: 1.6, Points: 13},
		{ID: "kookaburras", Name: "Kookaburras", Size: 42, Speed: 1.7, Points: 18},
		{ID: "ants", Name: "Ants", Size: 28, Speed: 1.5, Points: 8},
		{ID: "cats", Name: "Cats", Size: 45, Speed: 1.8, Points: 20},
		{ID: "mice", Name: "Mice", Size: 35, Speed: 2, Points: 10},
		{ID: "sugar_gliders", Name: "Sugar Gliders", Size: 34, Speed: 2.2, Points: 20, Behavior: wobble},
		{ID: "dogs", Name: "Dogs", Size: 48, Speed: 2.2, Points: 25},
		{ID: "dragonflies", Name: "Dragonflies", Size: 38, Speed: 2.4, Points: 17, Behavior: wobble},
		{ID: "frogs", Name: "Frogs", Size: 40, Speed: 0, Points: 14, Behavior: Behavior{Hop: frogHop, HopStride: frogHopStride}},
		{ID: "rabbits", Name: "Rabbits", Size: 38, Speed: 2.3, Points: 19, Behavior: Behavior{Wobble: animalWobble, Hop: rabbitHop}},
	}
}

// DefaultCatalog returns a catalog of Animals.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(Animals())
	if err != nil {
		panic(err) // built-in table is static
	}
	return c
}
