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

// partnerFlags are the profile fields shared by add-partner and
// update-partner. Empty strings mean "not given".
type partnerFlags struct {
	short   string
	full    string
	role    string
	class   string
	loan    string
	epf     string
	etf     string
	other   string
	code    string
	bank    string
	account string
}

func (p *partnerFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.short, "short", "", "Short name, what people type to name the partner.")
	f.StringVar(&p.full, "full", "", "Full legal name, for payslips.")
	f.StringVar(&p.role, "role", "", "Free-text role, e.g. \"Founding Investor\".")
	f.StringVar(&p.class, "class", "", "Profit class: investor or worker. Derived from -role when omitted.")
	f.StringVar(&p.loan, "loan", "", "Monthly loan installment deduction.")
	f.StringVar(&p.epf, "epf", "", "Monthly EPF deduction.")
	f.StringVar(&p.etf, "etf", "", "Monthly ETF deduction.")
	f.StringVar(&p.other, "other", "", "Other monthly deduction.")
	f.StringVar(&p.code, "code", "", "Employee code, for payslips.")
	f.StringVar(&p.bank, "bank", "", "Bank name, for payslips.")
	f.StringVar(&p.account, "account", "", "Bank account number, for payslips.")
}

// apply overlays the given flags onto a profile.
func (p *partnerFlags) apply(partner *profit.PartnerProfile) error {
	if p.short != "" {
		partner.ShortName = p.short
	}
	if p.full != "" {
		partner.FullName = p.full
	}
	if p.role != "" {
		partner.Role = p.role
	}
	if p.class != "" {
		class, err := profit.ParseRoleClass(p.class)
		if err != nil {
			return err
		}
		partner.Class = class
	}
	for _, amt := range []struct {
		name  string
		value string
		dst   *profit.Money
	}{
		{"loan", p.loan, &partner.Deductions.Loan},
		{"epf", p.epf, &partner.Deductions.EPF},
		{"etf", p.etf, &partner.Deductions.ETF},
		{"other", p.other, &partner.Deductions.Other},
	} {
		if amt.value == "" {
			continue
		}
		m, err := parseAmount(amt.name, amt.value)
		if err != nil {
			return err
		}
		*amt.dst = m
	}
	if p.code != "" {
		partner.Code = p.code
	}
	if p.bank != "" {
		partner.Bank = p.bank
	}
	if p.account != "" {
		partner.Account = p.account
	}
	return nil
}

// addPartnerCmd holds the flags for the 'add-partner' subcommand.
type addPartnerCmd struct {
	flags partnerFlags
}

func (*addPartnerCmd) Name() string     { return "add-partner" }
func (*addPartnerCmd) Synopsis() string { return "add a partner to the roster" }
func (*addPartnerCmd) Usage() string {
	return `ppm add-partner -short <name> [-class investor|worker] [options]

  Adds a partner. Without -class, a role containing the word "investor" makes
  an investor and anything else makes a worker.

Usage Examples:
$ ppm add-partner -short Samila -full "Samila Fernando" -role "Founding Investor"
$ ppm add-partner -short Sandun -role "Working Partner" -loan 5000 -epf 800

`
}

func (c *addPartnerCmd) SetFlags(f *flag.FlagSet) {
	c.flags.SetFlags(f)
}

func (c *addPartnerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.flags.short == "" {
		fmt.Fprintf(os.Stderr, "Error: -short is required\n")
		return subcommands.ExitUsageError
	}
	var partner profit.PartnerProfile
	if c.flags.class == "" {
		partner.Class = profit.ClassifyRole(c.flags.role)
	}
	if err := c.flags.apply(&partner); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	if _, ok := store.Roster.Find(partner.ShortName); ok {
		fmt.Fprintf(os.Stderr, "Error: a partner named %q already exists\n", partner.ShortName)
		return subcommands.ExitFailure
	}
	partner = store.Roster.Add(partner)

	if status := saveStore(store); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Added %s partner %s (%s)\n", partner.Class, partner.ShortName, partner.ID)
	return subcommands.ExitSuccess
}

// updatePartnerCmd holds the flags for the 'update-partner' subcommand.
type updatePartnerCmd struct {
	flags partnerFlags
}

func (*updatePartnerCmd) Name() string     { return "update-partner" }
func (*updatePartnerCmd) Synopsis() string { return "amend a partner's profile" }
func (*updatePartnerCmd) Usage() string {
	return `ppm update-partner [options] <partner>

  Amends the profile of a partner named by id or short name. Only the fields
  given are changed.

Usage Examples:
$ ppm update-partner -loan 4000 sandun

`
}

func (c *updatePartnerCmd) SetFlags(f *flag.FlagSet) {
	c.flags.SetFlags(f)
}

func (c *updatePartnerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: exactly one partner must be named\n")
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
	if err := c.flags.apply(&partner); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := store.Roster.Update(partner); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := saveStore(store); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Updated partner %s\n", partner.ShortName)
	return subcommands.ExitSuccess
}

// deletePartnerCmd holds the flags for the 'delete-partner' subcommand.
type deletePartnerCmd struct{}

func (*deletePartnerCmd) Name() string     { return "delete-partner" }
func (*deletePartnerCmd) Synopsis() string { return "remove a partner from the roster" }
func (*deletePartnerCmd) Usage() string {
	return `ppm delete-partner <partner>

  Removes a partner named by id or short name. Past reports are unaffected,
  they were computed from the roster of their time.

`
}

func (c *deletePartnerCmd) SetFlags(f *flag.FlagSet) {}

func (c *deletePartnerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: exactly one partner must be named\n")
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
	if err := store.Roster.Delete(partner.ID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := saveStore(store); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Deleted partner %s\n", partner.ShortName)
	return subcommands.ExitSuccess
}

// partnersCmd holds the flags for the 'partners' subcommand.
type partnersCmd struct{}

func (*partnersCmd) Name() string     { return "partners" }
func (*partnersCmd) Synopsis() string { return "show the partner roster" }
func (*partnersCmd) Usage() string {
	return `ppm partners

  Shows every partner with their class and monthly deductions.

`
}

func (c *partnersCmd) SetFlags(f *flag.FlagSet) {}

func (c *partnersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RosterMarkdown(store.Roster))
	return subcommands.ExitSuccess
}
