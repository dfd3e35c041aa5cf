package profit

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// RoleClass partitions partners into the two profit-sharing groups.
type RoleClass int

const (
	// Worker is a labor partner, sharing the worker half of net profit.
	Worker RoleClass = iota
	// Investor is a capital partner, sharing the investor half of net profit.
	Investor
)

func (c RoleClass) String() string {
	switch c {
	case Investor:
		return "investor"
	case Worker:
		return "worker"
	default:
		return "unknown"
	}
}

// ParseRoleClass parses an explicit class name.
func ParseRoleClass(s string) (RoleClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "investor":
		return Investor, nil
	case "worker":
		return Worker, nil
	default:
		return Worker, fmt.Errorf("unknown role class %q, want investor or worker", s)
	}
}

// ClassifyRole derives the class from a free-text role description: any text
// containing "investor", in any case, is an Investor, everything else is a
// Worker. This is an import rule for legacy rosters where the role was free
// text; once a partner is created the stored Class is authoritative.
func ClassifyRole(role string) RoleClass {
	if strings.Contains(strings.ToLower(role), "investor") {
		return Investor
	}
	return Worker
}

// Deductions are the fixed personal deductions taken off a partner's gross
// share on the payslip. Absent values are zero.
type Deductions struct {
	Loan  Money
	EPF   Money
	ETF   Money
	Other Money
}

// Total sums the deduction lines.
func (d Deductions) Total() Money {
	return d.Loan.Add(d.EPF).Add(d.ETF).Add(d.Other)
}

// PartnerProfile identifies one profit-sharing partner. The ID is a stable
// generated identifier; names and role text are free text for display and are
// never used as keys.
type PartnerProfile struct {
	ID         string
	ShortName  string
	FullName   string
	Role       string // free-text role, e.g. "Founding Investor"
	Class      RoleClass
	Deductions Deductions

	// payroll identity
	Code    string
	Bank    string
	Account string
}

// Roster holds the partner profiles of the business, keyed by id.
type Roster struct {
	partners map[string]PartnerProfile
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{partners: make(map[string]PartnerProfile)}
}

// Add inserts a partner, assigning an id when missing, and returns the
// stored value.
func (r *Roster) Add(p PartnerProfile) PartnerProfile {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	r.partners[p.ID] = p
	return p
}

// Update replaces the partner with the same id.
func (r *Roster) Update(p PartnerProfile) error {
	if _, ok := r.partners[p.ID]; !ok {
		return fmt.Errorf("no partner with id %q", p.ID)
	}
	r.partners[p.ID] = p
	return nil
}

// Delete removes the partner with the given id.
func (r *Roster) Delete(id string) error {
	if _, ok := r.partners[id]; !ok {
		return fmt.Errorf("no partner with id %q", id)
	}
	delete(r.partners, id)
	return nil
}

// Get returns the partner with the given id.
func (r *Roster) Get(id string) (PartnerProfile, bool) {
	p, ok := r.partners[id]
	return p, ok
}

// Find resolves a partner by id or, failing that, by case-insensitive short
// name. Handy for the CLI where short names are what people type.
func (r *Roster) Find(query string) (PartnerProfile, bool) {
	if p, ok := r.partners[query]; ok {
		return p, true
	}
	for _, p := range r.Partners() {
		if strings.EqualFold(p.ShortName, query) {
			return p, true
		}
	}
	return PartnerProfile{}, false
}

// Len returns the number of partners.
func (r *Roster) Len() int { return len(r.partners) }

// Partners returns all partners sorted by id, for deterministic iteration.
func (r *Roster) Partners() []PartnerProfile {
	out := make([]PartnerProfile, 0, len(r.partners))
	for _, p := range r.partners {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b PartnerProfile) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Partition splits the roster into its two classes, each sorted by id.
func (r *Roster) Partition() (investors, workers []PartnerProfile) {
	for _, p := range r.Partners() {
		if p.Class == Investor {
			investors = append(investors, p)
		} else {
			workers = append(workers, p)
		}
	}
	return investors, workers
}
