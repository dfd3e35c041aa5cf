package profit

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// poolShare is each class's fixed share of net profit: 50% to investors, 50%
// to workers. There is no rule that these must sum to 100%, they just do.
var poolShare = decimal.New(5, -1)

// ReportInput is the full snapshot a profit report is computed from. The
// engine reads every field and mutates none of them: concurrent reports over
// different periods can share the same pricing, ledger and roster.
type ReportInput struct {
	Rows     []OrderRow
	Pricing  PricingTable
	Expenses *ExpenseLedger
	Roster   *Roster
	Period   Range
}

// ProfitReport is the derived, read-only result of one pipeline run. It is
// rebuilt in full on every call to ComputeReport and carries no state of its
// own.
type ProfitReport struct {
	Period       Range
	FilteredRows int
	Products     []ProductLine

	TotalRevenue  Money
	TotalCOGS     Money
	GrossProfit   Money
	TotalExpenses Money
	NetProfit     Money

	// Each class's half of net profit, computed even when the class is empty.
	InvestorPool Money
	WorkerPool   Money

	// Per-partner shares, keyed by partner id, partitioned by class.
	InvestorShares map[string]Money
	WorkerShares   map[string]Money

	// Partner ids per class, sorted, so iteration over the report is
	// deterministic.
	Investors []string
	Workers   []string

	// Warnings flags reportable conditions such as a pool with nobody to
	// receive it. Never fatal: the report around them is complete.
	Warnings []string
}

// ComputeReport runs the whole pipeline over one input snapshot.
//
// It never fails: degenerate inputs (no rows, no partners, all-zero pricing)
// yield a complete, internally consistent report. Net profit may be negative,
// there is no floor.
//
// When a partner class is empty its half of net profit is computed but paid
// to no one, and the gap is flagged in Warnings. The unpaid pool is
// deliberately not redistributed to the other class; whether it should be is
// an open product question, and guessing a rule here would hide it.
func ComputeReport(in ReportInput) *ProfitReport {
	pricing := in.Pricing
	if pricing == nil {
		pricing = PricingTable{}
	}

	lines, counted := AggregateOrders(in.Rows, pricing, in.Period)

	var revenue, cogs Money
	for _, line := range lines {
		revenue = revenue.Add(line.Revenue)
		cogs = cogs.Add(line.COGS)
	}
	gross := revenue.Sub(cogs)

	var expenses Money
	if in.Expenses != nil {
		expenses = in.Expenses.Total(in.Period)
	}
	net := gross.Sub(expenses)

	report := &ProfitReport{
		Period:         in.Period,
		FilteredRows:   counted,
		Products:       lines,
		TotalRevenue:   revenue,
		TotalCOGS:      cogs,
		GrossProfit:    gross,
		TotalExpenses:  expenses,
		NetProfit:      net,
		InvestorPool:   net.Mul(poolShare),
		WorkerPool:     net.Mul(poolShare),
		InvestorShares: make(map[string]Money),
		WorkerShares:   make(map[string]Money),
	}

	var investors, workers []PartnerProfile
	if in.Roster != nil {
		investors, workers = in.Roster.Partition()
	}

	report.Investors = distribute(report.InvestorPool, investors, report.InvestorShares)
	report.Workers = distribute(report.WorkerPool, workers, report.WorkerShares)

	if len(investors) == 0 && !report.InvestorPool.IsZero() {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("investor pool of %s is unpaid: the roster has no investor partners", report.InvestorPool))
	}
	if len(workers) == 0 && !report.WorkerPool.IsZero() {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("worker pool of %s is unpaid: the roster has no worker partners", report.WorkerPool))
	}

	return report
}

// distribute splits a class pool evenly over its members, filling shares and
// returning the sorted member ids. An empty class receives nothing.
func distribute(pool Money, members []PartnerProfile, shares map[string]Money) []string {
	ids := make([]string, 0, len(members))
	for _, p := range members {
		ids = append(ids, p.ID)
	}
	if len(members) == 0 {
		return ids
	}
	each := pool.DivInt(int64(len(members)))
	for _, id := range ids {
		shares[id] = each
	}
	return ids
}

// Share returns the computed share for one partner id, whichever class it
// belongs to.
func (r *ProfitReport) Share(partnerID string) (Money, bool) {
	if s, ok := r.InvestorShares[partnerID]; ok {
		return s, true
	}
	if s, ok := r.WorkerShares[partnerID]; ok {
		return s, true
	}
	return Money{}, false
}
