package profit

import "slices"

// CostTier is one rung of a product's unit-cost ladder: the first Limit units
// still unpriced are bought at UnitCost. A Limit of Unbounded marks the tier
// that absorbs every remaining unit; conventionally it is the last one.
type CostTier struct {
	Limit    int64
	UnitCost Money
}

// Unbounded is the CostTier.Limit value for a tier with no quantity cap.
const Unbounded int64 = 0

// ProductPricing describes how one product sells and what its units cost.
//
// Tiers are consumed strictly in their authored order, mirroring the order
// they were configured in; they are never sorted by limit.
type ProductPricing struct {
	Name    string // display name, free text
	Selling Money  // selling price per unit
	Tiers   []CostTier
}

// TieredCost walks the ladder in order, pricing min(remaining, tier.Limit)
// units at each tier's unit cost, and stops once every unit is priced. Units
// left over after the ladder is exhausted cost zero.
func TieredCost(count int64, tiers []CostTier) Money {
	var total Money
	remaining := count
	for _, tier := range tiers {
		if remaining <= 0 {
			break
		}
		qty := remaining
		if tier.Limit != Unbounded && tier.Limit < qty {
			qty = tier.Limit
		}
		total = total.Add(tier.UnitCost.MulInt(qty))
		remaining -= qty
	}
	return total
}

// Cost returns the total cost of goods for count units of this product.
func (p ProductPricing) Cost(count int64) Money {
	return TieredCost(count, p.Tiers)
}

// WithSellingPrice returns a copy of the pricing with a new selling price.
// The receiver, including its tier slice, is left untouched.
func (p ProductPricing) WithSellingPrice(selling Money) ProductPricing {
	p.Selling = selling
	p.Tiers = slices.Clone(p.Tiers)
	return p
}

// WithTier returns a copy of the pricing with tier i replaced, or appended
// when i equals the ladder length. The receiver's ladder is never mutated:
// callers may hold the old value across edits.
func (p ProductPricing) WithTier(i int, tier CostTier) ProductPricing {
	if i < 0 || i > len(p.Tiers) {
		return p
	}
	tiers := slices.Clone(p.Tiers)
	if i == len(tiers) {
		tiers = append(tiers, tier)
	} else {
		tiers[i] = tier
	}
	p.Tiers = tiers
	return p
}

// PricingTable maps normalized product keys (see ProductKey) to pricing.
type PricingTable map[string]ProductPricing

// Lookup returns the pricing for a normalized product key. A product absent
// from the table gets a synthesized zero entry, one unbounded tier at zero
// cost, so it contributes nothing but still shows up in breakdowns.
func (t PricingTable) Lookup(key string) ProductPricing {
	if p, ok := t[key]; ok {
		return p
	}
	return ProductPricing{
		Name:  DisplayName(key),
		Tiers: []CostTier{{Limit: Unbounded}},
	}
}

// Keys returns the product keys in sorted order.
func (t PricingTable) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// DefaultPricing returns the pricing table the business started with.
func DefaultPricing() PricingTable {
	lkr := func(v int64) Money { return M(v, DefaultCurrency) }
	return PricingTable{
		"boom wash": {
			Name:    "Boom Wash",
			Selling: lkr(1000),
			Tiers: []CostTier{
				{Limit: 300, UnitCost: lkr(300)},
				{Limit: Unbounded, UnitCost: lkr(100)},
			},
		},
		"mini wifi camera": {
			Name:    "Mini Wifi Camera",
			Selling: lkr(2000),
			Tiers: []CostTier{
				{Limit: 100, UnitCost: lkr(525)},
				{Limit: Unbounded, UnitCost: lkr(195)},
			},
		},
		"water proof tape": {
			Name:    "Water Proof Tape",
			Selling: lkr(1000),
			Tiers:   []CostTier{{Limit: Unbounded, UnitCost: lkr(195)}},
		},
		"foot pump": {
			Name:    "Foot Pump",
			Selling: lkr(2000),
			Tiers:   []CostTier{{Limit: Unbounded, UnitCost: lkr(750)}},
		},
		"electric pump": {
			Name:    "Electric Pump",
			Selling: lkr(2000),
			Tiers:   []CostTier{{Limit: Unbounded, UnitCost: lkr(750)}},
		},
		"mini fan": {
			Name:    "Mini Fan",
			Selling: lkr(1999),
			Tiers:   []CostTier{{Limit: Unbounded, UnitCost: lkr(625)}},
		},
	}
}
