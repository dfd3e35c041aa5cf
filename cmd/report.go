package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/profit"
	"github.com/etnz/profit/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	orders string
	pdf    string
	period periodFlags
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "compute the profit report for a period" }
func (*reportCmd) Usage() string {
	return `ppm report -orders <file.csv> [-from <date>] [-to <date>] [-pdf <file.pdf>]

  Reads a courier CSV export, keeps the orders of the period, and prints the
  sales breakdown, financial summary and per-partner profit distribution.

Usage Examples:
# Report on a whole month export.
$ ppm report -orders march.csv -from 2025-03-01 -to 2025-03-31

`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.orders, "orders", "", "Courier CSV export to read orders from.")
	f.StringVar(&c.pdf, "pdf", "", "Also write the report as a PDF to this file.")
	c.period.SetFlags(f)
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.orders == "" {
		fmt.Fprintf(os.Stderr, "Error: -orders is required\n")
		return subcommands.ExitUsageError
	}
	period, err := c.period.parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	rows, err := profit.LoadOrders(c.orders)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	report := profit.ComputeReport(profit.ReportInput{
		Rows:     rows,
		Pricing:  store.Pricing,
		Expenses: store.Expenses,
		Roster:   store.Roster,
		Period:   period,
	})

	printMarkdown(renderer.ReportMarkdown(report, store.Roster))

	if c.pdf != "" {
		if err := writePDF(c.pdf, func(f *os.File) error {
			return renderer.ReportPDF(f, report, store.Roster)
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing PDF: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Wrote %s\n", c.pdf)
	}
	return subcommands.ExitSuccess
}

// writePDF creates path and streams a PDF into it.
func writePDF(path string, render func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return render(f)
}
