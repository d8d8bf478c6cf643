package rop

import (
	"errors"
	"fmt"
)

// ErrInvalidCatalog is returned when a taxonomy definition is inconsistent.
var ErrInvalidCatalog = errors.New("invalid code catalog")

// Definition declares one tag of a taxonomy.
type Definition[C Code] struct {
	Name     string
	Value    C
	Category bool
}

// Base declares a base or composite code.
func Base[C Code](name string, value C) Definition[C] {
	return Definition[C]{Name: name, Value: value}
}

// Category declares a category marker. Category markers are single bits that
// composite codes OR into their ordinal.
func Category[C Code](name string, value C) Definition[C] {
	return Definition[C]{Name: name, Value: value, Category: true}
}

// Catalog is a validated taxonomy. It is immutable after construction and
// safe for concurrent use.
type Catalog[C Code] struct {
	names      map[C]string
	values     map[string]C
	order      []Definition[C]
	categories C
}

// NewCatalog validates defs and builds a Catalog. It rejects empty or
// duplicate names, duplicate values, categories that are not a single bit or
// that overlap, and codes made of category bits only.
func NewCatalog[C Code](defs ...Definition[C]) (*Catalog[C], error) {
	c := &Catalog[C]{
		names:  make(map[C]string, len(defs)),
		values: make(map[string]C, len(defs)),
		order:  make([]Definition[C], 0, len(defs)),
	}

	for _, d := range defs {
		if !d.Category {
			continue
		}
		if d.Value == 0 || d.Value&(d.Value-1) != 0 {
			return nil, fmt.Errorf("%w: category %q (%d) must be a single bit", ErrInvalidCatalog, d.Name, d.Value)
		}
		if c.categories&d.Value != 0 {
			return nil, fmt.Errorf("%w: category %q (%d) is declared twice", ErrInvalidCatalog, d.Name, d.Value)
		}
		c.categories |= d.Value
	}

	for _, d := range defs {
		if d.Name == "" {
			return nil, fmt.Errorf("%w: code %d has no name", ErrInvalidCatalog, d.Value)
		}
		if _, dup := c.values[d.Name]; dup {
			return nil, fmt.Errorf("%w: name %q is declared twice", ErrInvalidCatalog, d.Name)
		}
		if prev, dup := c.names[d.Value]; dup {
			return nil, fmt.Errorf("%w: %q (%d) collides with %q", ErrInvalidCatalog, d.Name, d.Value, prev)
		}
		if !d.Category && d.Value&^c.categories == 0 {
			return nil, fmt.Errorf("%w: %q (%d) has no ordinal outside its category bits", ErrInvalidCatalog, d.Name, d.Value)
		}
		c.names[d.Value] = d.Name
		c.values[d.Name] = d.Value
		c.order = append(c.order, d)
	}

	return c, nil
}

// MustCatalog is like NewCatalog but panics on an invalid taxonomy. It is
// meant for package-level variables.
func MustCatalog[C Code](defs ...Definition[C]) *Catalog[C] {
	c, err := NewCatalog(defs...)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the declared name of code, or its decimal value when the code
// is not part of the catalog.
func (c *Catalog[C]) Name(code C) string {
	if name, ok := c.names[code]; ok {
		return name
	}
	return fmt.Sprintf("%d", code)
}

// Parse returns the code declared under name.
func (c *Catalog[C]) Parse(name string) (C, bool) {
	v, ok := c.values[name]
	return v, ok
}

// Categories returns the category markers code belongs to, in declaration order.
func (c *Catalog[C]) Categories(code C) []C {
	var out []C
	for _, d := range c.order {
		if d.Category && d.Value != code && HasFlag(code, d.Value) {
			out = append(out, d.Value)
		}
	}
	return out
}

// IsCategory reports whether code is declared as a category marker.
func (c *Catalog[C]) IsCategory(code C) bool {
	for _, d := range c.order {
		if d.Category && d.Value == code {
			return true
		}
	}
	return false
}

// Definitions returns the catalog entries in declaration order.
func (c *Catalog[C]) Definitions() []Definition[C] {
	out := make([]Definition[C], len(c.order))
	copy(out, c.order)
	return out
}
