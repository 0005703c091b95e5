package order

import "sort"

// Table is the nested quantity mapping: category -> size -> date key ->
// quantity. Categories and sizes keep their insertion order so projections
// and the grid render rows in a stable, human-chosen order.
//
// Table has value semantics: mutating operations return a new Table and
// leave the receiver untouched. A shared *Table reference is therefore safe
// to read while a replacement is being built.
type Table struct {
	cats  []string
	sizes map[string][]string
	qty   map[string]map[string]map[string]int
}

// Seed declares a category and its sizes for a fresh table.
type Seed struct {
	Category string
	Sizes    []string
}

// Item identifies one grid row: a category/size pair.
type Item struct {
	Category string
	Size     string
}

// New returns an empty table.
func New() Table {
	return Table{
		sizes: make(map[string][]string),
		qty:   make(map[string]map[string]map[string]int),
	}
}

// NewSeeded returns a table with the given categories and sizes registered,
// all quantities zero.
func NewSeeded(seed []Seed) Table {
	t := New()
	for _, s := range seed {
		if s.Category == "" {
			continue
		}
		for _, size := range s.Sizes {
			if size == "" {
				continue
			}
			t.register(s.Category, size)
		}
	}
	return t
}

// Get returns the stored quantity, or 0 when the category, size, or date is
// absent at any level.
func (t Table) Get(category, size, dateKey string) int {
	return t.qty[category][size][dateKey]
}

// Update returns a new table with exactly that one leaf replaced. Explicit
// zeros are stored as written; siblings are untouched. Unknown categories
// and sizes are appended in arrival order.
func (t Table) Update(category, size, dateKey string, quantity int) Table {
	next := t.clone()
	next.register(category, size)
	next.qty[category][size][dateKey] = quantity
	return next
}

// Items returns the category/size pairs in insertion order, one per grid
// row.
func (t Table) Items() []Item {
	var items []Item
	for _, cat := range t.cats {
		for _, size := range t.sizes[cat] {
			items = append(items, Item{Category: cat, Size: size})
		}
	}
	return items
}

// Categories returns the category names in insertion order.
func (t Table) Categories() []string {
	out := make([]string, len(t.cats))
	copy(out, t.cats)
	return out
}

// Sizes returns the size names for a category in insertion order.
func (t Table) Sizes(category string) []string {
	out := make([]string, len(t.sizes[category]))
	copy(out, t.sizes[category])
	return out
}

// Empty reports whether the table has no categories at all.
func (t Table) Empty() bool {
	return len(t.cats) == 0
}

// AllDateKeys returns the sorted union of every date key present anywhere in
// the table plus the caller-supplied must-include keys. With YYYY-MM-DD keys
// the lexicographic sort is chronological. The extras guarantee the active
// window's columns survive even when no quantities exist yet.
func (t Table) AllDateKeys(extra ...string) []string {
	seen := make(map[string]struct{})
	for _, sizes := range t.qty {
		for _, days := range sizes {
			for key := range days {
				seen[key] = struct{}{}
			}
		}
	}
	for _, key := range extra {
		if key != "" {
			seen[key] = struct{}{}
		}
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// register appends category/size bookkeeping in place. Callers own the
// receiver (fresh clone or a table still under construction).
func (t *Table) register(category, size string) {
	if t.sizes == nil {
		t.sizes = make(map[string][]string)
	}
	if t.qty == nil {
		t.qty = make(map[string]map[string]map[string]int)
	}
	if _, ok := t.qty[category]; !ok {
		t.cats = append(t.cats, category)
		t.qty[category] = make(map[string]map[string]int)
	}
	if _, ok := t.qty[category][size]; !ok {
		t.sizes[category] = append(t.sizes[category], size)
		t.qty[category][size] = make(map[string]int)
	}
}

// put stores a quantity in place, registering the item as needed.
func (t *Table) put(category, size, dateKey string, quantity int) {
	t.register(category, size)
	t.qty[category][size][dateKey] = quantity
}

func (t Table) clone() Table {
	next := New()
	next.cats = make([]string, len(t.cats))
	copy(next.cats, t.cats)
	for cat, sizes := range t.sizes {
		dup := make([]string, len(sizes))
		copy(dup, sizes)
		next.sizes[cat] = dup
	}
	for cat, sizes := range t.qty {
		next.qty[cat] = make(map[string]map[string]int, len(sizes))
		for size, days := range sizes {
			dup := make(map[string]int, len(days))
			for key, qty := range days {
				dup[key] = qty
			}
			next.qty[cat][size] = dup
		}
	}
	return next
}
