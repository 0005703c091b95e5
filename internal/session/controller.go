// Package session owns the mutable state of one editing session: the fixed
// base date, the window offset, and the current order table. There are no
// package-level singletons; everything flows through a Controller.
package session

import (
	"log"
	"sync"
	"time"

	"orderpad/internal/datewindow"
	"orderpad/internal/order"
	"orderpad/internal/store"
)

// Controller coordinates edits, window shifts, and table replacement.
//
// The table is never mutated in place, only swapped for a new value under
// the lock, so a save that snapshots the table and a concurrent edit cannot
// corrupt each other; the save just ships a stale-but-consistent snapshot.
type Controller struct {
	mu       sync.RWMutex
	today    time.Time
	offset   int
	table    order.Table
	slotPath string
}

// New builds a Controller. today is fixed for the controller's lifetime;
// the window only moves through offset shifts. slotPath may be empty to
// disable local persistence (used by tests).
func New(today time.Time, table order.Table, slotPath string) *Controller {
	return &Controller{
		today:    today,
		table:    table,
		slotPath: slotPath,
	}
}

// Today returns the session's fixed base date.
func (c *Controller) Today() time.Time {
	return c.today
}

// Offset returns the current window offset in days.
func (c *Controller) Offset() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.offset
}

// ShiftBack moves the window one day earlier.
func (c *Controller) ShiftBack() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offset--
}

// ShiftForward moves the window one day later.
func (c *Controller) ShiftForward() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offset++
}

// Window returns the current window's date keys and display labels,
// index-aligned.
func (c *Controller) Window() (keys, labels [datewindow.Size]string) {
	c.mu.RLock()
	offset := c.offset
	c.mu.RUnlock()
	return datewindow.Keys(c.today, offset), datewindow.Labels(c.today, offset)
}

// Quantity reads one cell of the current table.
func (c *Controller) Quantity(category, size, dateKey string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.table.Get(category, size, dateKey)
}

// SetQuantity replaces one cell and persists the new table best-effort.
// Explicit zeros are stored as written.
func (c *Controller) SetQuantity(category, size, dateKey string, quantity int) {
	c.mu.Lock()
	c.table = c.table.Update(category, size, dateKey, quantity)
	next := c.table
	c.mu.Unlock()
	c.persist(next)
}

// ReplaceTable swaps in a whole new table (the remote import path) and
// persists it best-effort.
func (c *Controller) ReplaceTable(t order.Table) {
	c.mu.Lock()
	c.table = t
	c.mu.Unlock()
	c.persist(t)
}

// Table returns the current table value. Table has value semantics, so the
// caller's copy is immune to later edits.
func (c *Controller) Table() order.Table {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.table
}

// persist writes the table to the local slot. Failures are logged, never
// surfaced: the in-memory table stays authoritative for the session.
func (c *Controller) persist(t order.Table) {
	if c.slotPath == "" {
		return
	}
	if err := store.Save(c.slotPath, t); err != nil {
		log.Printf("persist slot: %v", err)
	}
}
