package order

import (
	"math"
	"reflect"
	"testing"
)

func TestSplitItem(t *testing.T) {
	cases := []struct {
		item     string
		category string
		size     string
	}{
		{`tofu 9"`, "tofu", `9"`},
		{"spinach large deep", "spinach", "large deep"},
		{"tofu", "tofu", ""},
		{"", "", ""},
		{"  tofu  9\"  ", "tofu", `9"`},
	}
	for _, tc := range cases {
		category, size := SplitItem(tc.item)
		if category != tc.category || size != tc.size {
			t.Fatalf("SplitItem(%q) = (%q, %q), want (%q, %q)", tc.item, category, size, tc.category, tc.size)
		}
	}
}

func TestRows_ProjectsWindowInOrder(t *testing.T) {
	tbl := NewSeeded([]Seed{
		{Category: "tofu", Sizes: []string{`9"`, `11"`}},
	})
	tbl = tbl.Update("tofu", `9"`, "2025-01-15", 4)

	rows := tbl.Rows([]string{"2025-01-14", "2025-01-15"})
	want := []Row{
		{Item: `tofu 9"`, Values: []any{0, 4}},
		{Item: `tofu 11"`, Values: []any{0, 0}},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("Rows = %#v, want %#v", rows, want)
	}
}

func TestFromRows_RemoteScenario(t *testing.T) {
	tbl := FromRows(
		[]string{HeaderSentinel, "2025-01-15"},
		[]Row{{Item: `tofu 9"`, Values: []any{float64(4)}}},
	)

	if got := tbl.Get("tofu", `9"`, "2025-01-15"); got != 4 {
		t.Fatalf(`rebuilt quantity = %d, want 4`, got)
	}
	if got := tbl.Items(); !reflect.DeepEqual(got, []Item{{Category: "tofu", Size: `9"`}}) {
		t.Fatalf("rebuilt items = %v, want a single tofu row", got)
	}
	if keys := tbl.AllDateKeys(); !reflect.DeepEqual(keys, []string{"2025-01-15"}) {
		t.Fatalf("rebuilt date keys = %v, want only 2025-01-15", keys)
	}
}

func TestFromRows_DropsZeroAndInvalidCells(t *testing.T) {
	tbl := FromRows(
		[]string{HeaderSentinel, "2025-01-15", "2025-01-16", "2025-01-17", "2025-01-18"},
		[]Row{{Item: `tofu 9"`, Values: []any{float64(0), "", "n/a", "3"}}},
	)

	if keys := tbl.AllDateKeys(); !reflect.DeepEqual(keys, []string{"2025-01-18"}) {
		t.Fatalf("date keys = %v; zero, empty, and non-numeric cells must be omitted", keys)
	}
	if got := tbl.Get("tofu", `9"`, "2025-01-18"); got != 3 {
		t.Fatalf("numeric string cell = %d, want 3", got)
	}
	// The item itself is still registered even with every cell dropped.
	if len(tbl.Items()) != 1 {
		t.Fatalf("items = %v, want the tofu row registered", tbl.Items())
	}
}

func TestFromRows_DropsNonFiniteAndOverflowingCells(t *testing.T) {
	tbl := FromRows(
		[]string{HeaderSentinel, "2025-01-15", "2025-01-16", "2025-01-17", "2025-01-18"},
		[]Row{{Item: `tofu 9"`, Values: []any{"NaN", "Inf", "1e300", math.NaN()}}},
	)

	if keys := tbl.AllDateKeys(); len(keys) != 0 {
		t.Fatalf("date keys = %v; non-finite and overflowing cells must be omitted", keys)
	}
	for _, key := range []string{"2025-01-15", "2025-01-16", "2025-01-17", "2025-01-18"} {
		if got := tbl.Get("tofu", `9"`, key); got != 0 {
			t.Fatalf("cell %s = %d, want 0", key, got)
		}
	}
}

func TestFromRows_SkipsRowsWithoutCategoryOrSize(t *testing.T) {
	tbl := FromRows(
		[]string{HeaderSentinel, "2025-01-15"},
		[]Row{
			{Item: "tofu", Values: []any{float64(4)}},
			{Item: "", Values: []any{float64(4)}},
			{Item: `spinach 9"`, Values: []any{float64(2)}},
		},
	)

	if got := tbl.Items(); !reflect.DeepEqual(got, []Item{{Category: "spinach", Size: `9"`}}) {
		t.Fatalf("items = %v, want only the well-formed spinach row", got)
	}
}

func TestFromRows_ShortRowsAndShortHeader(t *testing.T) {
	// Fewer values than columns: missing cells read as absent.
	tbl := FromRows(
		[]string{HeaderSentinel, "2025-01-15", "2025-01-16"},
		[]Row{{Item: `tofu 9"`, Values: []any{float64(2)}}},
	)
	if got := tbl.Get("tofu", `9"`, "2025-01-16"); got != 0 {
		t.Fatalf("missing cell = %d, want 0", got)
	}

	// Header without date columns produces an empty table.
	if tbl := FromRows([]string{HeaderSentinel}, []Row{{Item: `tofu 9"`, Values: []any{1}}}); !tbl.Empty() {
		t.Fatalf("short header should yield an empty table, got %v", tbl.Items())
	}
}

func TestRowsThenFromRows_IdempotentForNonZero(t *testing.T) {
	tbl := New().
		Update("tofu", `9"`, "2025-01-15", 4).
		Update("tofu", `11"`, "2025-01-16", 2).
		Update("spinach", `9"`, "2025-01-13", 9)

	keys := tbl.AllDateKeys()
	header := append([]string{HeaderSentinel}, keys...)
	rebuilt := FromRows(header, tbl.Rows(keys))

	if !reflect.DeepEqual(rebuilt.Items(), tbl.Items()) {
		t.Fatalf("items after round trip = %v, want %v", rebuilt.Items(), tbl.Items())
	}
	for _, item := range tbl.Items() {
		for _, key := range keys {
			want := tbl.Get(item.Category, item.Size, key)
			if got := rebuilt.Get(item.Category, item.Size, key); got != want {
				t.Fatalf("%s %s %s = %d after round trip, want %d", item.Category, item.Size, key, got, want)
			}
		}
	}
}

func TestCoerceQuantity(t *testing.T) {
	cases := []struct {
		in   any
		want int
		ok   bool
	}{
		{float64(4), 4, true},
		{float64(4.9), 4, true},
		{float64(-2), -2, true},
		{3, 3, true},
		{"12", 12, true},
		{" 7 ", 7, true},
		{"", 0, false},
		{"abc", 0, false},
		{nil, 0, false},
		{true, 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"+Inf", 0, false},
		{"-Inf", 0, false},
		{"1e300", 0, false},
		{math.NaN(), 0, false},
		{math.Inf(1), 0, false},
		{math.Inf(-1), 0, false},
		{1e300, 0, false},
	}
	for _, tc := range cases {
		got, ok := coerceQuantity(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("coerceQuantity(%#v) = (%d, %v), want (%d, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
