package session

import (
	"path/filepath"
	"testing"
	"time"

	"orderpad/internal/datewindow"
	"orderpad/internal/order"
	"orderpad/internal/store"
)

func testToday() time.Time {
	return time.Date(2025, time.January, 15, 10, 30, 0, 0, time.Local)
}

func TestController_WindowFollowsOffset(t *testing.T) {
	c := New(testToday(), order.New(), "")

	keys, labels := c.Window()
	if keys[datewindow.Center] != "2025-01-15" {
		t.Fatalf("center key = %q, want today", keys[datewindow.Center])
	}
	if labels[datewindow.Center] != "Jan 15" {
		t.Fatalf("center label = %q, want Jan 15", labels[datewindow.Center])
	}

	c.ShiftForward()
	c.ShiftForward()
	keys, _ = c.Window()
	if keys[datewindow.Center] != "2025-01-17" {
		t.Fatalf("center after two forward shifts = %q, want 2025-01-17", keys[datewindow.Center])
	}

	c.ShiftBack()
	c.ShiftBack()
	c.ShiftBack()
	keys, _ = c.Window()
	if keys[datewindow.Center] != "2025-01-14" {
		t.Fatalf("center after net -1 = %q, want 2025-01-14", keys[datewindow.Center])
	}
	if c.Offset() != -1 {
		t.Fatalf("offset = %d, want -1", c.Offset())
	}
}

func TestController_SetQuantityPersists(t *testing.T) {
	slot := filepath.Join(t.TempDir(), "orders.json")
	c := New(testToday(), order.New(), slot)

	c.SetQuantity("tofu", `9"`, "2025-01-15", 4)
	if got := c.Quantity("tofu", `9"`, "2025-01-15"); got != 4 {
		t.Fatalf("Quantity = %d, want 4", got)
	}

	loaded, ok, err := store.Load(slot)
	if err != nil || !ok {
		t.Fatalf("slot not written: ok=%v err=%v", ok, err)
	}
	if got := loaded.Get("tofu", `9"`, "2025-01-15"); got != 4 {
		t.Fatalf("persisted quantity = %d, want 4", got)
	}
}

func TestController_SnapshotIndependentOfLaterEdits(t *testing.T) {
	c := New(testToday(), order.New(), "")
	c.SetQuantity("tofu", `9"`, "2025-01-15", 4)

	snapshot := c.Table()
	c.SetQuantity("tofu", `9"`, "2025-01-15", 9)

	if got := snapshot.Get("tofu", `9"`, "2025-01-15"); got != 4 {
		t.Fatalf("snapshot changed under a later edit: %d, want 4", got)
	}
	if got := c.Quantity("tofu", `9"`, "2025-01-15"); got != 9 {
		t.Fatalf("live table = %d, want 9", got)
	}
}

func TestController_ReplaceTable(t *testing.T) {
	c := New(testToday(), order.New().Update("tofu", `9"`, "2025-01-15", 4), "")

	imported := order.New().Update("spinach", `11"`, "2025-01-16", 2)
	c.ReplaceTable(imported)

	if got := c.Quantity("tofu", `9"`, "2025-01-15"); got != 0 {
		t.Fatalf("old entry survived replacement: %d", got)
	}
	if got := c.Quantity("spinach", `11"`, "2025-01-16"); got != 2 {
		t.Fatalf("imported entry = %d, want 2", got)
	}
}
