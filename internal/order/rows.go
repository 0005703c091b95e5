package order

import (
	"math"
	"strconv"
	"strings"
)

// Row is the flattened serialization unit used at the remote boundary: one
// category/size pair and its quantities for a list of date columns. Values
// are heterogeneous on import because spreadsheet cells arrive as numbers or
// strings.
type Row struct {
	Item   string `json:"item"`
	Values []any  `json:"values"`
}

// HeaderSentinel is the first header column; the remaining columns are date
// keys.
const HeaderSentinel = "Item"

// JoinItem encodes a category/size pair into a row item label.
func JoinItem(category, size string) string {
	return category + " " + size
}

// SplitItem splits a row item label on the first space into category and
// size. A category name containing a space will not survive the round trip;
// remote data follows the "category size..." convention set by the seed
// catalog.
func SplitItem(item string) (category, size string) {
	category, size, _ = strings.Cut(strings.TrimSpace(item), " ")
	return category, strings.TrimSpace(size)
}

// Rows projects the table onto the given date columns, one row per
// category/size pair in insertion order. Absent leaves project as 0.
func (t Table) Rows(dateKeys []string) []Row {
	var rows []Row
	for _, item := range t.Items() {
		values := make([]any, len(dateKeys))
		for i, key := range dateKeys {
			values[i] = t.Get(item.Category, item.Size, key)
		}
		rows = append(rows, Row{Item: JoinItem(item.Category, item.Size), Values: values})
	}
	return rows
}

// FromRows rebuilds a table from a header and rows fetched from the remote
// store. The first header column is the sentinel label; the rest are date
// keys. Rows whose item yields an empty category or size are skipped. Cells
// are coerced to numbers; zero and unparseable cells are omitted entirely,
// so explicit zeros stored remotely do not round-trip.
func FromRows(header []string, rows []Row) Table {
	t := New()
	if len(header) < 2 {
		return t
	}
	dateKeys := header[1:]

	for _, row := range rows {
		category, size := SplitItem(row.Item)
		if category == "" || size == "" {
			continue
		}
		t.register(category, size)
		for i, key := range dateKeys {
			if i >= len(row.Values) {
				break
			}
			qty, ok := coerceQuantity(row.Values[i])
			if !ok || qty == 0 {
				continue
			}
			t.put(category, size, key, qty)
		}
	}
	return t
}

// maxCellQuantity bounds coerced magnitudes. The int conversion of a
// float64 beyond the int range is undefined, and no real order comes close.
const maxCellQuantity = 1 << 31

// coerceQuantity turns a raw spreadsheet cell into an integer quantity.
// Numbers truncate toward zero; numeric strings parse the same way; empty,
// non-numeric, NaN, infinite, and absurdly large cells report false.
func coerceQuantity(v any) (int, bool) {
	switch val := v.(type) {
	case nil:
		return 0, false
	case int:
		return val, true
	case float64:
		return truncateQuantity(val)
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}
		return truncateQuantity(f)
	default:
		return 0, false
	}
}

func truncateQuantity(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > maxCellQuantity {
		return 0, false
	}
	return int(f), true
}
