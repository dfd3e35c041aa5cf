package renderer

import (
	"fmt"
	"io"

	"github.com/etnz/profit"
	"github.com/jung-kurt/gofpdf"
)

// Printable documents for handing to partners or the accountant. A4 portrait,
// Arial, no images: the files print the same everywhere.

// PayslipPDF writes one partner's payslip as a PDF document.
func PayslipPDF(w io.Writer, slip profit.PayslipBreakdown, period profit.Range) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	name := slip.FullName
	if name == "" {
		name = slip.ShortName
	}
	pdf.Cell(0, 10, fmt.Sprintf("Payslip for %s", name))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Period: %s", period))
	pdf.Ln(6)
	if slip.Code != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Employee code: %s", slip.Code))
		pdf.Ln(6)
	}
	if slip.Bank != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Bank: %s  Account: %s", slip.Bank, slip.Account))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdfSection(pdf, "Earnings", [][2]string{
		{"Basic Salary", slip.Basic.String()},
		{"Allowances", slip.Allowances.String()},
		{"Bonus", slip.Bonus.String()},
		{"Gross Pay", slip.Gross.String()},
	})
	pdfSection(pdf, "Deductions", [][2]string{
		{"Loan", slip.Loan.String()},
		{"EPF", slip.EPF.String()},
		{"ETF", slip.ETF.String()},
		{"Other", slip.Other.String()},
		{"Total Deductions", slip.TotalDeductions.String()},
	})

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(100, 8, "Net Pay", "T", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, slip.NetPay.String(), "T", 1, "R", false, 0, "")

	return pdf.Output(w)
}

// ReportPDF writes the profit report as a PDF document.
func ReportPDF(w io.Writer, r *profit.ProfitReport, roster *profit.Roster) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Profit Report, %s", r.Period))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("%d orders counted.", r.FilteredRows))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Sales by Product")
	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 9)
	widths := []float64{60, 20, 30, 30, 30, 20}
	headers := []string{"Product", "Orders", "Revenue", "COGS", "Gross", "Margin"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)
	for _, line := range r.Products {
		cells := []string{
			line.Name,
			fmt.Sprintf("%d", line.Count),
			line.Revenue.String(),
			line.COGS.String(),
			line.Gross.String(),
			line.Margin.String(),
		}
		for i, c := range cells {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 6, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	pdfSection(pdf, "Financial Summary", [][2]string{
		{"Total Revenue", r.TotalRevenue.String()},
		{"Total COGS", r.TotalCOGS.String()},
		{"Gross Profit", r.GrossProfit.String()},
		{"Expenses", r.TotalExpenses.String()},
		{"Net Profit", r.NetProfit.String()},
	})

	dist := make([][2]string, 0, len(r.Investors)+len(r.Workers))
	for _, id := range r.Investors {
		dist = append(dist, [2]string{partnerName(roster, id) + " (Investor)", r.InvestorShares[id].String()})
	}
	for _, id := range r.Workers {
		dist = append(dist, [2]string{partnerName(roster, id) + " (Worker)", r.WorkerShares[id].String()})
	}
	pdfSection(pdf, "Profit Distribution", dist)

	if len(r.Warnings) > 0 {
		pdf.SetFont("Arial", "I", 9)
		for _, warning := range r.Warnings {
			pdf.Cell(0, 6, "Warning: "+warning)
			pdf.Ln(6)
		}
	}

	return pdf.Output(w)
}

// pdfSection draws a titled two-column label/amount block.
func pdfSection(pdf *gofpdf.Fpdf, title string, rows [][2]string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	for _, row := range rows {
		pdf.CellFormat(100, 6, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, row[1], "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
}
