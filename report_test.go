package profit

import (
	"math"
	"reflect"
	"testing"
	"time"
)

// fourPartnerRoster builds the classic setup: one investor, three workers.
func fourPartnerRoster() (*Roster, PartnerProfile, []PartnerProfile) {
	r := NewRoster()
	inv := r.Add(PartnerProfile{ID: "p-samila", ShortName: "Samila", Role: "Investor", Class: Investor})
	w1 := r.Add(PartnerProfile{ID: "p-me", ShortName: "You", Class: Worker})
	w2 := r.Add(PartnerProfile{ID: "p-sandun", ShortName: "Sandun", Class: Worker})
	w3 := r.Add(PartnerProfile{ID: "p-krishan", ShortName: "Krishan", Class: Worker})
	return r, inv, []PartnerProfile{w1, w2, w3}
}

func TestComputeReport_EndToEnd(t *testing.T) {
	rows := make([]OrderRow, 0, 301)
	for i := 0; i < 301; i++ {
		rows = append(rows, OrderRow{DescriptionField: "Boom Wash (Blue)"})
	}
	roster, inv, workers := fourPartnerRoster()

	report := ComputeReport(ReportInput{
		Rows:    rows,
		Pricing: DefaultPricing(),
		Roster:  roster,
	})

	if report.FilteredRows != 301 {
		t.Errorf("FilteredRows = %d, want 301", report.FilteredRows)
	}
	if !report.TotalRevenue.Equal(M(301000, "LKR")) {
		t.Errorf("TotalRevenue = %v, want LKR 301000", report.TotalRevenue)
	}
	if !report.TotalCOGS.Equal(M(90100, "LKR")) {
		t.Errorf("TotalCOGS = %v, want LKR 90100", report.TotalCOGS)
	}
	if !report.GrossProfit.Equal(M(210900, "LKR")) {
		t.Errorf("GrossProfit = %v, want LKR 210900", report.GrossProfit)
	}
	if !report.TotalExpenses.IsZero() {
		t.Errorf("TotalExpenses = %v, want zero", report.TotalExpenses)
	}
	if !report.NetProfit.Equal(M(210900, "LKR")) {
		t.Errorf("NetProfit = %v, want LKR 210900", report.NetProfit)
	}

	if got, ok := report.Share(inv.ID); !ok || !got.Equal(M(105450, "LKR")) {
		t.Errorf("investor share = %v, %v, want LKR 105450", got, ok)
	}
	for _, w := range workers {
		if got, ok := report.Share(w.ID); !ok || !got.Equal(M(35150, "LKR")) {
			t.Errorf("worker %s share = %v, %v, want LKR 35150", w.ShortName, got, ok)
		}
	}
	if len(report.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", report.Warnings)
	}
}

func TestComputeReport_Conservation(t *testing.T) {
	rows := []OrderRow{
		{DescriptionField: "Boom Wash"},
		{DescriptionField: "Mini Fan"},
		{DescriptionField: "Foot Pump"},
	}
	expenses := NewExpenseLedger()
	expenses.Add(ExpenseEntry{Date: NewDate(2025, time.March, 5), Category: ExpenseAdvertising, Amount: M(333, "LKR")})

	roster, _, _ := fourPartnerRoster()
	report := ComputeReport(ReportInput{
		Rows:     rows,
		Pricing:  DefaultPricing(),
		Expenses: expenses,
		Roster:   roster,
	})

	var sum Money
	for _, id := range report.Investors {
		sum = sum.Add(report.InvestorShares[id])
	}
	for _, id := range report.Workers {
		sum = sum.Add(report.WorkerShares[id])
	}
	if diff := math.Abs(sum.AsFloat() - report.NetProfit.AsFloat()); diff > 1e-6 {
		t.Errorf("sum of shares %v != net profit %v (diff %g)", sum, report.NetProfit, diff)
	}
}

func TestComputeReport_EmptyInvestorClass(t *testing.T) {
	// net profit of exactly 1000: one unit selling at 1000 with zero cost
	pricing := PricingTable{
		"widget": {
			Name:    "Widget",
			Selling: M(1000, "LKR"),
			Tiers:   []CostTier{{Limit: Unbounded, UnitCost: M(0, "LKR")}},
		},
	}
	roster := NewRoster()
	w1 := roster.Add(PartnerProfile{ID: "w1", ShortName: "Sandun", Class: Worker})
	w2 := roster.Add(PartnerProfile{ID: "w2", ShortName: "Krishan", Class: Worker})

	report := ComputeReport(ReportInput{
		Rows:    []OrderRow{{DescriptionField: "Widget"}},
		Pricing: pricing,
		Roster:  roster,
	})

	if !report.NetProfit.Equal(M(1000, "LKR")) {
		t.Fatalf("NetProfit = %v, want LKR 1000", report.NetProfit)
	}
	for _, w := range []PartnerProfile{w1, w2} {
		if got, ok := report.Share(w.ID); !ok || !got.Equal(M(250, "LKR")) {
			t.Errorf("worker %s share = %v, %v, want LKR 250", w.ShortName, got, ok)
		}
	}
	// The investor half is computed, unpaid, and flagged, never redistributed.
	if !report.InvestorPool.Equal(M(500, "LKR")) {
		t.Errorf("InvestorPool = %v, want LKR 500", report.InvestorPool)
	}
	if len(report.InvestorShares) != 0 {
		t.Errorf("InvestorShares = %v, want empty", report.InvestorShares)
	}
	if len(report.Warnings) != 1 {
		t.Fatalf("Warnings = %v, want exactly one", report.Warnings)
	}
}

func TestComputeReport_Degenerate(t *testing.T) {
	// Zero rows, nil everything: still a complete, consistent report.
	report := ComputeReport(ReportInput{})
	if report == nil {
		t.Fatal("ComputeReport returned nil")
	}
	if report.FilteredRows != 0 || len(report.Products) != 0 {
		t.Errorf("degenerate report counted products: %+v", report)
	}
	if !report.NetProfit.IsZero() {
		t.Errorf("NetProfit = %v, want zero", report.NetProfit)
	}
	if len(report.Warnings) != 0 {
		// both pools are zero, so empty classes are not worth flagging
		t.Errorf("Warnings = %v, want none", report.Warnings)
	}

	// Negative net profit has no floor.
	expenses := NewExpenseLedger()
	expenses.Add(ExpenseEntry{Amount: M(5000, "LKR")})
	report = ComputeReport(ReportInput{Expenses: expenses})
	if !report.NetProfit.Equal(M(-5000, "LKR")) {
		t.Errorf("NetProfit = %v, want LKR -5000", report.NetProfit)
	}
	// and its unpaid halves are still flagged
	if len(report.Warnings) != 2 {
		t.Errorf("Warnings = %v, want two (both classes empty)", report.Warnings)
	}
}

func TestComputeReport_Deterministic(t *testing.T) {
	rows := []OrderRow{
		{DescriptionField: "Boom Wash (Blue)", OrderDateField: "2025-03-10"},
		{DescriptionField: "Mini Fan", OrderDateField: "2025-03-12"},
		{DescriptionField: "Mystery Gadget", OrderDateField: "2025-03-13"},
	}
	expenses := NewExpenseLedger()
	expenses.Add(ExpenseEntry{ID: "e1", Date: NewDate(2025, time.March, 11), Amount: M(100, "LKR")})
	roster, _, _ := fourPartnerRoster()

	in := ReportInput{
		Rows:     rows,
		Pricing:  DefaultPricing(),
		Expenses: expenses,
		Roster:   roster,
		Period:   NewRange(NewDate(2025, time.March, 1), NewDate(2025, time.March, 31)),
	}

	a := ComputeReport(in)
	b := ComputeReport(in)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("two runs over identical inputs differ:\n%+v\n%+v", a, b)
	}
}

func TestComputeReport_DoesNotMutateInputs(t *testing.T) {
	pricing := DefaultPricing()
	tiersBefore := len(pricing["boom wash"].Tiers)
	expenses := NewExpenseLedger()
	expenses.Add(ExpenseEntry{Date: NewDate(2025, time.March, 1), Amount: M(10, "LKR")})
	roster, _, _ := fourPartnerRoster()

	ComputeReport(ReportInput{
		Rows:     []OrderRow{{DescriptionField: "Boom Wash"}},
		Pricing:  pricing,
		Expenses: expenses,
		Roster:   roster,
	})

	if len(pricing) != 6 || len(pricing["boom wash"].Tiers) != tiersBefore {
		t.Error("ComputeReport mutated the pricing table")
	}
	if expenses.Len() != 1 {
		t.Error("ComputeReport mutated the expense ledger")
	}
	if roster.Len() != 4 {
		t.Error("ComputeReport mutated the roster")
	}
}
