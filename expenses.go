package profit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// ExpenseCategory classifies an expense entry.
type ExpenseCategory string

const (
	ExpenseAdvertising ExpenseCategory = "advertising"
	ExpenseReturns     ExpenseCategory = "returns"
	ExpenseOther       ExpenseCategory = "other"
)

// Categories lists every expense category, in presentation order.
func Categories() []ExpenseCategory {
	return []ExpenseCategory{ExpenseAdvertising, ExpenseReturns, ExpenseOther}
}

// ParseExpenseCategory parses a user-supplied category name.
func ParseExpenseCategory(s string) (ExpenseCategory, error) {
	switch ExpenseCategory(strings.ToLower(strings.TrimSpace(s))) {
	case ExpenseAdvertising:
		return ExpenseAdvertising, nil
	case ExpenseReturns:
		return ExpenseReturns, nil
	case ExpenseOther, "":
		return ExpenseOther, nil
	default:
		return "", fmt.Errorf("unknown expense category %q, want advertising, returns or other", s)
	}
}

// ExpenseEntry is one dated, categorized business expense. The ID is a stable
// generated identifier; the description is free text and never used as a key.
type ExpenseEntry struct {
	ID          string
	Date        Date
	Category    ExpenseCategory
	Description string
	Amount      Money
}

// ExpenseLedger holds the expense entries of the business.
//
// Entries are kept in chronological order; same-day entries keep their
// insertion order. The ledger is owned by the configuration store, the report
// engine only ever reads it.
type ExpenseLedger struct {
	entries []ExpenseEntry
}

// NewExpenseLedger creates an empty ledger.
func NewExpenseLedger() *ExpenseLedger {
	return &ExpenseLedger{entries: make([]ExpenseEntry, 0)}
}

// Add appends an entry and returns it with its assigned identifier.
func (l *ExpenseLedger) Add(e ExpenseEntry) ExpenseEntry {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Category == "" {
		e.Category = ExpenseOther
	}
	l.entries = append(l.entries, e)
	l.stableSort()
	return e
}

// Update replaces the entry with the same id.
func (l *ExpenseLedger) Update(e ExpenseEntry) error {
	for i := range l.entries {
		if l.entries[i].ID == e.ID {
			l.entries[i] = e
			l.stableSort()
			return nil
		}
	}
	return fmt.Errorf("no expense entry with id %q", e.ID)
}

// Delete removes the entry with the given id.
func (l *ExpenseLedger) Delete(id string) error {
	for i := range l.entries {
		if l.entries[i].ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no expense entry with id %q", id)
}

// Get returns the entry with the given id.
func (l *ExpenseLedger) Get(id string) (ExpenseEntry, bool) {
	for _, e := range l.entries {
		if e.ID == id {
			return e, true
		}
	}
	return ExpenseEntry{}, false
}

// Entries returns a copy of the entries in chronological order.
func (l *ExpenseLedger) Entries() []ExpenseEntry {
	out := make([]ExpenseEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *ExpenseLedger) Len() int { return len(l.entries) }

// Total sums every entry inside the period, regardless of category. An entry
// without a date is excluded whenever the period has a bound.
func (l *ExpenseLedger) Total(period Range) Money {
	var total Money
	for _, e := range l.entries {
		if l.inPeriod(e, period) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// CategoryTotal sums the entries of one category inside the period. It is
// recomputed on every call, nothing is cached.
func (l *ExpenseLedger) CategoryTotal(cat ExpenseCategory, period Range) Money {
	var total Money
	for _, e := range l.entries {
		if e.Category == cat && l.inPeriod(e, period) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

func (*ExpenseLedger) inPeriod(e ExpenseEntry, period Range) bool {
	if period.IsZero() {
		return true
	}
	if e.Date.IsZero() {
		// fail closed: an undated entry never matches a bounded period
		return false
	}
	return period.Contains(e.Date)
}

func (l *ExpenseLedger) stableSort() {
	sort.SliceStable(l.entries, func(i, j int) bool {
		return l.entries[i].Date.Before(l.entries[j].Date)
	})
}
