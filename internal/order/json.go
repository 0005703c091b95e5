package order

import "encoding/json"

// The local slot stores the table as ordered arrays rather than JSON
// objects, because object key order is not preserved by encoding/json and
// the grid depends on insertion order.

type tableDoc struct {
	Categories []categoryDoc `json:"categories"`
}

type categoryDoc struct {
	Name  string    `json:"name"`
	Sizes []sizeDoc `json:"sizes"`
}

type sizeDoc struct {
	Name       string         `json:"name"`
	Quantities map[string]int `json:"quantities,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (t Table) MarshalJSON() ([]byte, error) {
	doc := tableDoc{Categories: []categoryDoc{}}
	for _, cat := range t.cats {
		cd := categoryDoc{Name: cat, Sizes: []sizeDoc{}}
		for _, size := range t.sizes[cat] {
			sd := sizeDoc{Name: size}
			if days := t.qty[cat][size]; len(days) > 0 {
				sd.Quantities = make(map[string]int, len(days))
				for key, qty := range days {
					sd.Quantities[key] = qty
				}
			}
			cd.Sizes = append(cd.Sizes, sd)
		}
		doc.Categories = append(doc.Categories, cd)
	}
	return json.Marshal(doc)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Table) UnmarshalJSON(data []byte) error {
	var doc tableDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	next := New()
	for _, cd := range doc.Categories {
		if cd.Name == "" {
			continue
		}
		for _, sd := range cd.Sizes {
			if sd.Name == "" {
				continue
			}
			next.register(cd.Name, sd.Name)
			for key, qty := range sd.Quantities {
				next.put(cd.Name, sd.Name, key, qty)
			}
		}
	}
	*t = next
	return nil
}
