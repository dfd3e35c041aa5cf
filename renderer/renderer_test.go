package renderer

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/etnz/profit"
)

func sampleReport(t *testing.T) (*profit.ProfitReport, *profit.Roster) {
	t.Helper()
	rows := make([]profit.OrderRow, 0, 301)
	for i := 0; i < 301; i++ {
		rows = append(rows, profit.OrderRow{profit.DescriptionField: "Boom Wash (Blue)"})
	}
	roster := profit.NewRoster()
	roster.Add(profit.PartnerProfile{ID: "p1", ShortName: "Samila", Role: "Investor", Class: profit.Investor})
	roster.Add(profit.PartnerProfile{ID: "p2", ShortName: "Sandun", Class: profit.Worker})
	return profit.ComputeReport(profit.ReportInput{
		Rows:    rows,
		Pricing: profit.DefaultPricing(),
		Roster:  roster,
	}), roster
}

func TestReportMarkdown(t *testing.T) {
	report, roster := sampleReport(t)
	out := ReportMarkdown(report, roster)

	for _, want := range []string{
		"# Profit Report",
		"301 orders counted.",
		"## Sales by Product",
		"Boom Wash",
		"## Financial Summary",
		"Net Profit",
		"## Profit Distribution",
		"Samila",
		"Sandun",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report markdown is missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Warning") {
		t.Errorf("fully distributed report should carry no warning:\n%s", out)
	}
}

func TestReportMarkdown_Warnings(t *testing.T) {
	roster := profit.NewRoster()
	roster.Add(profit.PartnerProfile{ID: "p2", ShortName: "Sandun", Class: profit.Worker})
	report := profit.ComputeReport(profit.ReportInput{
		Rows:    []profit.OrderRow{{profit.DescriptionField: "Boom Wash"}},
		Pricing: profit.DefaultPricing(),
		Roster:  roster,
	})
	out := ReportMarkdown(report, roster)
	if !strings.Contains(out, "Warning") || !strings.Contains(out, "investor pool") {
		t.Errorf("unpaid investor pool not surfaced:\n%s", out)
	}
}

func TestPayslipMarkdown(t *testing.T) {
	p := profit.PartnerProfile{
		ID:         "p2",
		ShortName:  "Sandun",
		FullName:   "Sandun Perera",
		Code:       "EMP-002",
		Bank:       "BOC",
		Account:    "123456789",
		Deductions: profit.Deductions{Loan: profit.M(5000, "LKR")},
	}
	slip := profit.NewPayslip(p, profit.M(35150, "LKR"))
	period := profit.NewRange(profit.NewDate(2025, time.March, 1), profit.NewDate(2025, time.March, 31))

	out := PayslipMarkdown(slip, period)
	for _, want := range []string{
		"# Payslip for Sandun Perera",
		"EMP-002",
		"BOC",
		"## Earnings",
		"Basic Salary",
		"Allowances",
		"Bonus",
		"## Deductions",
		"Loan",
		"EPF",
		"## Net Pay",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("payslip markdown is missing %q:\n%s", want, out)
		}
	}
}

func TestExpensesMarkdown(t *testing.T) {
	ledger := profit.NewExpenseLedger()
	ledger.Add(profit.ExpenseEntry{
		Date:        profit.NewDate(2025, time.March, 10),
		Category:    profit.ExpenseAdvertising,
		Description: "boosted posts",
		Amount:      profit.M(300000, "LKR"),
	})
	ledger.Add(profit.ExpenseEntry{
		Date:     profit.NewDate(2025, time.April, 2),
		Category: profit.ExpenseReturns,
		Amount:   profit.M(200, "LKR"),
	})

	march := profit.NewRange(profit.NewDate(2025, time.March, 1), profit.NewDate(2025, time.March, 31))
	out := ExpensesMarkdown(ledger, march)

	if !strings.Contains(out, "boosted posts") {
		t.Errorf("march expense missing:\n%s", out)
	}
	if !strings.Contains(out, "2025-03-10") {
		t.Errorf("expense date missing:\n%s", out)
	}
	if strings.Contains(out, "2025-04-02") {
		t.Errorf("april expense leaked into a march listing:\n%s", out)
	}
	if !strings.Contains(out, "## By Category") {
		t.Errorf("category totals missing:\n%s", out)
	}
}

func TestPricingMarkdown(t *testing.T) {
	out := PricingMarkdown(profit.DefaultPricing())
	for _, want := range []string{
		"# Product Pricing",
		"## Boom Wash",
		"## Mini Wifi Camera",
		"unbounded",
		"`boom wash`",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("pricing markdown is missing %q:\n%s", want, out)
		}
	}
}

func TestRosterMarkdown(t *testing.T) {
	roster := profit.NewRoster()
	roster.Add(profit.PartnerProfile{ID: "p1", ShortName: "Samila", FullName: "Samila Fernando", Role: "Investor", Class: profit.Investor})
	roster.Add(profit.PartnerProfile{ID: "p2", ShortName: "Sandun", Class: profit.Worker})

	out := RosterMarkdown(roster)
	for _, want := range []string{"# Partners", "Samila Fernando", "Sandun", "investor", "worker"} {
		if !strings.Contains(out, want) {
			t.Errorf("roster markdown is missing %q:\n%s", want, out)
		}
	}
}

func TestPayslipPDF(t *testing.T) {
	slip := profit.NewPayslip(profit.PartnerProfile{ID: "p2", ShortName: "Sandun"}, profit.M(35150, "LKR"))
	var buf bytes.Buffer
	if err := PayslipPDF(&buf, slip, profit.Range{}); err != nil {
		t.Fatalf("PayslipPDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output does not start with a PDF header: %q", buf.Bytes()[:16])
	}
}

func TestReportPDF(t *testing.T) {
	report, roster := sampleReport(t)
	var buf bytes.Buffer
	if err := ReportPDF(&buf, report, roster); err != nil {
		t.Fatalf("ReportPDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output does not start with a PDF header: %q", buf.Bytes()[:16])
	}
}
