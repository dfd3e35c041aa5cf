package profit

import "fmt"

// Range represents an inclusive range of dates. A zero From or To leaves that
// side unbounded, and the zero Range contains every date.
//
// The same predicate filters order rows and expense entries, so both views of
// a period always agree on what belongs to it.
type Range struct{ From, To Date }

// NewRange creates a new date range. If both bounds are set and 'from' is
// after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// IsZero reports whether the range has no bound at all.
func (r Range) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }

// Contains reports whether date is included in the range, boundaries
// included. Dates have day granularity, so a record stamped at any
// time-of-day on To is inside.
func (r Range) Contains(date Date) bool {
	if !r.From.IsZero() && date.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && date.After(r.To) {
		return false
	}
	return true
}

// admits reports whether a record carrying the raw date string passes the
// range filter. With no bound set every record passes; once a bound is set a
// missing or unparseable date excludes the record, never includes it.
func (r Range) admits(raw string) bool {
	if r.IsZero() {
		return true
	}
	on, err := parseRecordDate(raw)
	if err != nil {
		return false
	}
	return r.Contains(on)
}

// String names the range for report titles.
func (r Range) String() string {
	switch {
	case r.IsZero():
		return "all time"
	case r.From.IsZero():
		return fmt.Sprintf("through %s", r.To)
	case r.To.IsZero():
		return fmt.Sprintf("from %s", r.From)
	default:
		return fmt.Sprintf("%s to %s", r.From, r.To)
	}
}
