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

// addExpenseCmd holds the flags for the 'add-expense' subcommand.
type addExpenseCmd struct {
	on       string
	category string
	desc     string
	amount   string
}

func (*addExpenseCmd) Name() string     { return "add-expense" }
func (*addExpenseCmd) Synopsis() string { return "record a business expense" }
func (*addExpenseCmd) Usage() string {
	return `ppm add-expense -on <date> -amount <amount> [-category <cat>] [-desc <text>]

  Appends an entry to the expense ledger. The category is one of advertising,
  returns or other, defaulting to other.

Usage Examples:
# March's ad spend.
$ ppm add-expense -on 2025-03-10 -category advertising -desc "boosted posts" -amount 300000

`
}

func (c *addExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.on, "on", profit.Today().String(), "Date of the expense. See the user manual for supported date formats.")
	f.StringVar(&c.category, "category", "", "Expense category: advertising, returns or other.")
	f.StringVar(&c.desc, "desc", "", "Free-text description.")
	f.StringVar(&c.amount, "amount", "", "Amount spent.")
}

func (c *addExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := profit.ParseDate(c.on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	cat, err := profit.ParseExpenseCategory(c.category)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := parseAmount("amount", c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	e := store.Expenses.Add(profit.ExpenseEntry{
		Date:        on,
		Category:    cat,
		Description: c.desc,
		Amount:      amount,
	})
	if status := saveStore(store); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Added expense %s: %s %s on %s\n", e.ID, e.Category, e.Amount, e.Date)
	return subcommands.ExitSuccess
}

// updateExpenseCmd holds the flags for the 'update-expense' subcommand.
type updateExpenseCmd struct {
	id       string
	on       string
	category string
	desc     string
	amount   string
}

func (*updateExpenseCmd) Name() string     { return "update-expense" }
func (*updateExpenseCmd) Synopsis() string { return "amend a recorded expense" }
func (*updateExpenseCmd) Usage() string {
	return `ppm update-expense -id <id> [-on <date>] [-category <cat>] [-desc <text>] [-amount <amount>]

  Amends the identified ledger entry. Only the fields given are changed.

`
}

func (c *updateExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Identifier of the entry to amend, as printed by 'ppm expenses'.")
	f.StringVar(&c.on, "on", "", "New date.")
	f.StringVar(&c.category, "category", "", "New category.")
	f.StringVar(&c.desc, "desc", "", "New description.")
	f.StringVar(&c.amount, "amount", "", "New amount.")
}

func (c *updateExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintf(os.Stderr, "Error: -id is required\n")
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	e, ok := store.Expenses.Get(c.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no expense entry with id %q\n", c.id)
		return subcommands.ExitFailure
	}

	if c.on != "" {
		if e.Date, err = profit.ParseDate(c.on); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.category != "" {
		if e.Category, err = profit.ParseExpenseCategory(c.category); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.desc != "" {
		e.Description = c.desc
	}
	if c.amount != "" {
		if e.Amount, err = parseAmount("amount", c.amount); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	if err := store.Expenses.Update(e); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := saveStore(store); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Updated expense %s\n", e.ID)
	return subcommands.ExitSuccess
}

// deleteExpenseCmd holds the flags for the 'delete-expense' subcommand.
type deleteExpenseCmd struct {
	id string
}

func (*deleteExpenseCmd) Name() string     { return "delete-expense" }
func (*deleteExpenseCmd) Synopsis() string { return "remove a recorded expense" }
func (*deleteExpenseCmd) Usage() string {
	return `ppm delete-expense -id <id>

  Removes the identified entry from the expense ledger.

`
}

func (c *deleteExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Identifier of the entry to remove, as printed by 'ppm expenses'.")
}

func (c *deleteExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintf(os.Stderr, "Error: -id is required\n")
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := store.Expenses.Delete(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := saveStore(store); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Deleted expense %s\n", c.id)
	return subcommands.ExitSuccess
}

// expensesCmd holds the flags for the 'expenses' subcommand.
type expensesCmd struct {
	period periodFlags
}

func (*expensesCmd) Name() string     { return "expenses" }
func (*expensesCmd) Synopsis() string { return "list expenses and category totals" }
func (*expensesCmd) Usage() string {
	return `ppm expenses [-from <date>] [-to <date>]

  Lists the ledger entries of the period with their ids, and the totals per
  category.

`
}

func (c *expensesCmd) SetFlags(f *flag.FlagSet) {
	c.period.SetFlags(f)
}

func (c *expensesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.ExpensesMarkdown(store.Expenses, period))
	return subcommands.ExitSuccess
}
