package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"orderpad/internal/order"
)

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")

	tbl, ok, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if ok {
		t.Fatal("Load reported ok for a missing file")
	}
	if !tbl.Empty() {
		t.Fatalf("table from missing file = %v, want empty", tbl.Items())
	}
}

func TestSaveThenLoad_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "orders.json")

	tbl := order.NewSeeded([]order.Seed{
		{Category: "tofu", Sizes: []string{`9"`, `11"`}},
		{Category: "spinach", Sizes: []string{`9"`}},
	})
	tbl = tbl.Update("tofu", `9"`, "2025-01-15", 4)

	if err := Save(path, tbl); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, ok, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !ok {
		t.Fatal("Load reported ok=false for an existing slot")
	}
	if !reflect.DeepEqual(loaded.Items(), tbl.Items()) {
		t.Fatalf("items after round trip = %v, want %v", loaded.Items(), tbl.Items())
	}
	if got := loaded.Get("tofu", `9"`, "2025-01-15"); got != 4 {
		t.Fatalf("quantity after round trip = %d, want 4", got)
	}
}

func TestLoad_CorruptSlotReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	tbl, ok, err := Load(path)
	if err == nil {
		t.Fatal("Load accepted a corrupt slot")
	}
	if ok {
		t.Fatal("Load reported ok for a corrupt slot")
	}
	if !tbl.Empty() {
		t.Fatalf("table from corrupt slot = %v, want empty", tbl.Items())
	}
}

func TestSave_OverwritesPreviousSlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")

	first := order.New().Update("tofu", `9"`, "2025-01-15", 4)
	if err := Save(path, first); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	second := order.New().Update("leek", `11"`, "2025-01-16", 2)
	if err := Save(path, second); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := loaded.Get("tofu", `9"`, "2025-01-15"); got != 0 {
		t.Fatalf("old entry survived overwrite: %d", got)
	}
	if got := loaded.Get("leek", `11"`, "2025-01-16"); got != 2 {
		t.Fatalf("new entry = %d, want 2", got)
	}
}
