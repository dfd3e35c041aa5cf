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

// payslipCmd holds the flags for the 'payslip' subcommand.
type payslipCmd struct {
	orders string
	pdf    string
	period periodFlags
}

func (*payslipCmd) Name() string     { return "payslip" }
func (*payslipCmd) Synopsis() string { return "build one partner's payslip for a period" }
func (*payslipCmd) Usage() string {
	return `ppm payslip -orders <file.csv> [-from <date>] [-to <date>] [-pdf <file.pdf>] <partner>

  Computes the profit report for the period and presents the named partner's
  share as a payslip: 60/40 basic/allowances split, fixed deductions, net pay.
  The partner is named by id or short name.

Usage Examples:
# Sandun's payslip for march.
$ ppm payslip -orders march.csv -from 2025-03-01 -to 2025-03-31 sandun

`
}

func (c *payslipCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.orders, "orders", "", "Courier CSV export to read orders from.")
	f.StringVar(&c.pdf, "pdf", "", "Also write the payslip as a PDF to this file.")
	c.period.SetFlags(f)
}

func (c *payslipCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: exactly one partner must be named\n")
		return subcommands.ExitUsageError
	}
	if c.orders == "" {
		fmt.Fprintf(os.Stderr, "Error: -orders is required\n")
		return subcommands.ExitUsageError
	}
	period, err := c.period.parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	partner, ok := store.Roster.Find(f.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no partner %q in the roster\n", f.Arg(0))
		return subcommands.ExitFailure
	}

	rows, err := profit.LoadOrders(c.orders)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report := profit.ComputeReport(profit.ReportInput{
		Rows:     rows,
		Pricing:  store.Pricing,
		Expenses: store.Expenses,
		Roster:   store.Roster,
		Period:   period,
	})
	gross, _ := report.Share(partner.ID)
	slip := profit.NewPayslip(partner, gross)

	printMarkdown(renderer.PayslipMarkdown(slip, period))

	if c.pdf != "" {
		if err := writePDF(c.pdf, func(f *os.File) error {
			return renderer.PayslipPDF(f, slip, period)
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing PDF: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Wrote %s\n", c.pdf)
	}
	return subcommands.ExitSuccess
}
