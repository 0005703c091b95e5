package sheetsync

import (
	"fmt"

	"orderpad/internal/order"
)

// Envelope is the wire format shared by both sync directions: a header whose
// first column is the item sentinel and remaining columns are date keys,
// plus one row per category/size pair.
type Envelope struct {
	Header []string    `json:"header"`
	Rows   []order.Row `json:"rows"`
}

// ExportWindow builds an envelope covering only the given date columns,
// typically the visible window.
func ExportWindow(t order.Table, dateKeys []string) Envelope {
	header := make([]string, 0, len(dateKeys)+1)
	header = append(header, order.HeaderSentinel)
	header = append(header, dateKeys...)
	return Envelope{Header: header, Rows: t.Rows(dateKeys)}
}

// ExportAll builds an envelope covering every date key known to the table
// plus the active window's keys, so saving never drops history and the
// current columns exist remotely even when empty. This is the save path's
// contract; ExportWindow remains for window-only pushes.
func ExportAll(t order.Table, windowKeys []string) Envelope {
	return ExportWindow(t, t.AllDateKeys(windowKeys...))
}

// Validate checks the structural invariants of a fetched envelope: at least
// one date column after the sentinel, and at least one row. Anything less is
// a malformed payload and must not replace local state.
func Validate(env Envelope) error {
	if len(env.Header) < 2 {
		return fmt.Errorf("%w: header has %d columns, need at least 2", ErrMalformedPayload, len(env.Header))
	}
	if len(env.Rows) == 0 {
		return fmt.Errorf("%w: no rows", ErrMalformedPayload)
	}
	return nil
}
