// Package cmd implements the CLI application to manage the books of a small
// e-commerce partnership.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/profit"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Commands lists every subcommand.
// A main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&reportCmd{},
	&payslipCmd{},

	&addExpenseCmd{},
	&updateExpenseCmd{},
	&deleteExpenseCmd{},
	&expensesCmd{},

	&setPriceCmd{},
	&setTierCmd{},
	&pricingCmd{},

	&addPartnerCmd{},
	&updatePartnerCmd{},
	&deletePartnerCmd{},
	&partnersCmd{},

	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeDir = flag.String("store", ".ppm", "Path to the store directory holding pricing, expenses and partners")

// openStore loads the pricing table, expense ledger and partner roster from
// the store directory.
func openStore() (*profit.Store, error) {
	return profit.OpenStore(*storeDir)
}

// saveStore writes the store back, reporting the error on stderr.
func saveStore(s *profit.Store) subcommands.ExitStatus {
	if err := s.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving store %q: %v\n", s.Dir, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// periodFlags is the -from/-to pair shared by every period-aware command.
type periodFlags struct {
	from string
	to   string
}

func (p *periodFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.from, "from", "", "Start of the period, inclusive. See the user manual for supported date formats.")
	f.StringVar(&p.to, "to", "", "End of the period, inclusive.")
}

// parse builds the period from the flags. Both bounds are optional.
func (p *periodFlags) parse() (profit.Range, error) {
	var from, to profit.Date
	var err error
	if p.from != "" {
		if from, err = profit.ParseDate(p.from); err != nil {
			return profit.Range{}, fmt.Errorf("invalid -from date: %w", err)
		}
	}
	if p.to != "" {
		if to, err = profit.ParseDate(p.to); err != nil {
			return profit.Range{}, fmt.Errorf("invalid -to date: %w", err)
		}
	}
	return profit.NewRange(from, to), nil
}

// parseAmount parses a money flag value strictly, unlike the permissive
// parsing applied to CSV cells.
func parseAmount(name, value string) (profit.Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return profit.Money{}, fmt.Errorf("invalid -%s amount %q", name, value)
	}
	return profit.M(d, profit.DefaultCurrency), nil
}
