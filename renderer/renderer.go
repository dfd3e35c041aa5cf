// Package renderer turns computed profit data into markdown documents. It
// only formats: every number it prints was computed by the profit package.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/profit"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders a full profit report: sales breakdown, financial
// summary, and the per-partner distribution.
func ReportMarkdown(r *profit.ProfitReport, roster *profit.Roster) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Profit Report, %s", r.Period))
	doc.PlainText(fmt.Sprintf("%d orders counted.", r.FilteredRows))

	doc.H2("Sales by Product")
	sales := md.TableSet{
		Header: []string{"Product", "Orders", "Revenue", "COGS", "Gross Profit", "Margin"},
	}
	for _, line := range r.Products {
		sales.Rows = append(sales.Rows, []string{
			line.Name,
			fmt.Sprintf("%d", line.Count),
			line.Revenue.String(),
			line.COGS.String(),
			line.Gross.String(),
			line.Margin.String(),
		})
	}
	doc.Table(sales)

	doc.H2("Financial Summary")
	doc.Table(md.TableSet{
		Header: []string{"", "Amount"},
		Rows: [][]string{
			{"Total Revenue", r.TotalRevenue.String()},
			{"Total COGS", r.TotalCOGS.String()},
			{"Gross Profit", r.GrossProfit.String()},
			{"Expenses", r.TotalExpenses.String()},
			{"Net Profit", r.NetProfit.String()},
		},
	})

	doc.H2("Profit Distribution")
	doc.PlainText(fmt.Sprintf("Investor pool: %s. Worker pool: %s.", r.InvestorPool, r.WorkerPool))
	dist := md.TableSet{
		Header: []string{"Partner", "Class", "Share"},
	}
	for _, id := range r.Investors {
		dist.Rows = append(dist.Rows, []string{partnerName(roster, id), "Investor", r.InvestorShares[id].String()})
	}
	for _, id := range r.Workers {
		dist.Rows = append(dist.Rows, []string{partnerName(roster, id), "Worker", r.WorkerShares[id].String()})
	}
	doc.Table(dist)

	for _, w := range r.Warnings {
		doc.PlainText(fmt.Sprintf("**Warning:** %s", w))
	}

	return doc.String()
}

// PayslipMarkdown renders one partner's payslip for a period.
func PayslipMarkdown(slip profit.PayslipBreakdown, period profit.Range) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	name := slip.FullName
	if name == "" {
		name = slip.ShortName
	}
	doc.H1(fmt.Sprintf("Payslip for %s", name))
	doc.PlainText(fmt.Sprintf("Period: %s", period))
	if slip.Code != "" {
		doc.PlainText(fmt.Sprintf("Employee code: %s", slip.Code))
	}
	if slip.Bank != "" {
		doc.PlainText(fmt.Sprintf("Paid to %s account %s.", slip.Bank, slip.Account))
	}

	doc.H2("Earnings")
	doc.Table(md.TableSet{
		Header: []string{"", "Amount"},
		Rows: [][]string{
			{"Basic Salary", slip.Basic.String()},
			{"Allowances", slip.Allowances.String()},
			{"Bonus", slip.Bonus.String()},
			{"Gross Pay", slip.Gross.String()},
		},
	})

	doc.H2("Deductions")
	doc.Table(md.TableSet{
		Header: []string{"", "Amount"},
		Rows: [][]string{
			{"Loan", slip.Loan.String()},
			{"EPF", slip.EPF.String()},
			{"ETF", slip.ETF.String()},
			{"Other", slip.Other.String()},
			{"Total Deductions", slip.TotalDeductions.String()},
		},
	})

	doc.H2("Net Pay")
	doc.PlainText(fmt.Sprintf("**%s**", slip.NetPay))

	return doc.String()
}

// ExpensesMarkdown renders the expense ledger restricted to a period.
func ExpensesMarkdown(ledger *profit.ExpenseLedger, period profit.Range) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Expenses, %s", period))

	table := md.TableSet{
		Header: []string{"ID", "Date", "Category", "Description", "Amount"},
	}
	for _, e := range ledger.Entries() {
		if !period.IsZero() && !period.Contains(e.Date) {
			continue
		}
		date := ""
		if !e.Date.IsZero() {
			date = e.Date.String()
		}
		table.Rows = append(table.Rows, []string{
			e.ID, date, string(e.Category), e.Description, e.Amount.String(),
		})
	}
	doc.Table(table)

	doc.H2("By Category")
	byCat := md.TableSet{Header: []string{"Category", "Total"}}
	for _, cat := range profit.Categories() {
		byCat.Rows = append(byCat.Rows, []string{string(cat), ledger.CategoryTotal(cat, period).String()})
	}
	byCat.Rows = append(byCat.Rows, []string{"total", ledger.Total(period).String()})
	doc.Table(byCat)

	return doc.String()
}

// PricingMarkdown renders the pricing table, one product per section.
func PricingMarkdown(table profit.PricingTable) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Product Pricing")
	for _, key := range table.Keys() {
		p := table[key]
		doc.H2(p.Name)
		doc.PlainText(fmt.Sprintf("Key: `%s`. Selling price: %s.", key, p.Selling))

		tiers := md.TableSet{Header: []string{"Tier", "Up To", "Unit Cost"}}
		for i, t := range p.Tiers {
			upTo := "unbounded"
			if t.Limit != profit.Unbounded {
				upTo = fmt.Sprintf("%d units", t.Limit)
			}
			tiers.Rows = append(tiers.Rows, []string{
				fmt.Sprintf("%d", i+1), upTo, t.UnitCost.String(),
			})
		}
		doc.Table(tiers)
	}

	return doc.String()
}

// RosterMarkdown renders the partner roster.
func RosterMarkdown(roster *profit.Roster) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Partners")
	table := md.TableSet{
		Header: []string{"ID", "Name", "Role", "Class", "Monthly Deductions"},
	}
	for _, p := range roster.Partners() {
		name := p.FullName
		if name == "" {
			name = p.ShortName
		}
		table.Rows = append(table.Rows, []string{
			p.ID, name, p.Role, p.Class.String(), p.Deductions.Total().String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// partnerName resolves a partner id to its display name, falling back to the
// id itself when the roster no longer has the partner.
func partnerName(roster *profit.Roster, id string) string {
	if roster == nil {
		return id
	}
	if p, ok := roster.Get(id); ok {
		if p.ShortName != "" {
			return p.ShortName
		}
	}
	return id
}
