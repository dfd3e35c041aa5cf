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

// setPriceCmd holds the flags for the 'set-price' subcommand.
type setPriceCmd struct {
	product string
	selling string
}

func (*setPriceCmd) Name() string     { return "set-price" }
func (*setPriceCmd) Synopsis() string { return "set a product's selling price" }
func (*setPriceCmd) Usage() string {
	return `ppm set-price -product <name> -selling <amount>

  Sets the selling price of a product. The product is keyed by its order
  description with the parenthesized variant stripped: "Boom Wash (Blue)"
  and "boom wash" name the same product.

Usage Examples:
$ ppm set-price -product "boom wash" -selling 1000

`
}

func (c *setPriceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.product, "product", "", "Product name or key.")
	f.StringVar(&c.selling, "selling", "", "Selling price per unit.")
}

func (c *setPriceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.product == "" {
		fmt.Fprintf(os.Stderr, "Error: -product is required\n")
		return subcommands.ExitUsageError
	}
	selling, err := parseAmount("selling", c.selling)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	key := profit.ProductKey(c.product)
	store.Pricing[key] = store.Pricing.Lookup(key).WithSellingPrice(selling)

	if status := saveStore(store); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Set %s selling price to %s\n", key, selling)
	return subcommands.ExitSuccess
}

// setTierCmd holds the flags for the 'set-tier' subcommand.
type setTierCmd struct {
	product string
	tier    int
	limit   int64
	cost    string
}

func (*setTierCmd) Name() string     { return "set-tier" }
func (*setTierCmd) Synopsis() string { return "set one of a product's cost tiers" }
func (*setTierCmd) Usage() string {
	return `ppm set-tier -product <name> -cost <amount> [-tier <index>] [-limit <units>]

  Sets one cost tier of a product. Tiers apply in index order when costing an
  order count: a tier with a limit prices up to that many units, a tier
  without one prices everything remaining. Without -tier a new tier is
  appended.

Usage Examples:
# First 300 units cost 300 each, the rest 100 each.
$ ppm set-tier -product "boom wash" -tier 0 -limit 300 -cost 300
$ ppm set-tier -product "boom wash" -tier 1 -cost 100

`
}

func (c *setTierCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.product, "product", "", "Product name or key.")
	f.IntVar(&c.tier, "tier", -1, "Tier index to set, starting at 0. Appends when omitted.")
	f.Int64Var(&c.limit, "limit", 0, "Unit limit of the tier. 0 means unbounded.")
	f.StringVar(&c.cost, "cost", "", "Unit cost within the tier.")
}

func (c *setTierCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.product == "" {
		fmt.Fprintf(os.Stderr, "Error: -product is required\n")
		return subcommands.ExitUsageError
	}
	cost, err := parseAmount("cost", c.cost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	key := profit.ProductKey(c.product)
	p := store.Pricing.Lookup(key)

	i := c.tier
	if i < 0 {
		i = len(p.Tiers)
	}
	if i > len(p.Tiers) {
		fmt.Fprintf(os.Stderr, "Error: tier %d is out of range, the product has %d tiers\n", i, len(p.Tiers))
		return subcommands.ExitUsageError
	}
	store.Pricing[key] = p.WithTier(i, profit.CostTier{Limit: c.limit, UnitCost: cost})

	if status := saveStore(store); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Set %s tier %d\n", key, i)
	return subcommands.ExitSuccess
}

// pricingCmd holds the flags for the 'pricing' subcommand.
type pricingCmd struct{}

func (*pricingCmd) Name() string     { return "pricing" }
func (*pricingCmd) Synopsis() string { return "show the pricing table" }
func (*pricingCmd) Usage() string {
	return `ppm pricing

  Shows every product's selling price and cost tiers.

`
}

func (c *pricingCmd) SetFlags(f *flag.FlagSet) {}

func (c *pricingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.PricingMarkdown(store.Pricing))
	return subcommands.ExitSuccess
}
