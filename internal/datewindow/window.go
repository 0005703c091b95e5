// Package datewindow computes the rolling five-day window of dates the
// order grid edits. The window is centered on today plus a signed offset;
// shifting the window is just incrementing or decrementing the offset.
package datewindow

import "time"

const (
	// Size is the number of days in a window.
	Size = 5

	// Center is the index of the anchor day (base + offset) within the
	// window. Callers highlight this column when the offset is zero.
	Center = 2

	// KeyLayout is the canonical storage and wire format for a calendar day.
	KeyLayout = "2006-01-02"

	labelLayout = "Jan 02"
)

// Keys returns the five date keys for the window anchored at
// base + offset days. Keys are YYYY-MM-DD, so lexicographic order equals
// calendar order. Index i holds base + offset + (i - Center) days.
func Keys(base time.Time, offset int) [Size]string {
	var keys [Size]string
	for i := 0; i < Size; i++ {
		keys[i] = day(base, offset, i).Format(KeyLayout)
	}
	return keys
}

// Labels returns short human-readable column headers ("Jan 02") aligned
// index-for-index with Keys. Labels are for display only; lookups always go
// through Keys.
func Labels(base time.Time, offset int) [Size]string {
	var labels [Size]string
	for i := 0; i < Size; i++ {
		labels[i] = day(base, offset, i).Format(labelLayout)
	}
	return labels
}

// Key formats a single date in the canonical key layout.
func Key(t time.Time) string {
	return t.Format(KeyLayout)
}

func day(base time.Time, offset, i int) time.Time {
	// AddDate handles month and year rollover; no string arithmetic.
	return base.AddDate(0, 0, offset+i-Center)
}
