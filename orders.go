package profit

import (
	"sort"
	"strings"
	"unicode"
)

// Well-known field names of the courier export.
const (
	DescriptionField = "PARCEL DESCRIPTION"
	OrderDateField   = "ORDER DATE"
)

// OrderRow is one already-parsed row of an uploaded delimited file, keyed by
// header name. The engine only reads it, and only the description and date
// fields; every other column rides along untouched.
type OrderRow map[string]string

// Description returns the raw parcel description field.
func (r OrderRow) Description() string { return r[DescriptionField] }

// OrderDate returns the raw order date field.
func (r OrderRow) OrderDate() string { return r[OrderDateField] }

// ProductKey extracts the canonical product identifier from a free-text
// description: the text before the first " (" variant suffix, trimmed and
// lower-cased. "Foot Pump (Blue, L)" and "foot pump" share one key. An empty
// result means the description identifies no product.
func ProductKey(desc string) string {
	name, _, _ := strings.Cut(desc, " (")
	return strings.ToLower(strings.TrimSpace(name))
}

// DisplayName renders a normalized product key for presentation, with each
// word's first letter capitalized.
func DisplayName(key string) string {
	words := strings.Fields(key)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// ProductLine is the derived per-product slice of a profit report.
type ProductLine struct {
	Key     string
	Name    string
	Count   int64
	Revenue Money
	COGS    Money
	Gross   Money
	Margin  Percent
}

// AggregateOrders reduces raw order rows to per-product lines.
//
// Rows with an empty description are skipped, silently: they identify no
// product. When period has a bound, rows whose date is missing or unparseable
// are excluded too, the filter fails closed. Each surviving row counts one
// unit of its product.
//
// Every counted product appears in the result, priced through the table
// (unknown products synthesize a zero entry). Lines are sorted by descending
// count; ties keep the order products were first encountered in.
//
// The second return value is the number of rows that were counted.
func AggregateOrders(rows []OrderRow, pricing PricingTable, period Range) ([]ProductLine, int) {
	counts := make(map[string]int64)
	var encounter []string // keys in first-seen order

	counted := 0
	for _, row := range rows {
		key := ProductKey(row.Description())
		if key == "" {
			continue
		}
		if !period.IsZero() && !period.admits(row.OrderDate()) {
			continue
		}
		if _, seen := counts[key]; !seen {
			encounter = append(encounter, key)
		}
		counts[key]++
		counted++
	}

	lines := make([]ProductLine, 0, len(encounter))
	for _, key := range encounter {
		count := counts[key]
		p := pricing.Lookup(key)

		revenue := p.Selling.MulInt(count)
		cogs := p.Cost(count)
		gross := revenue.Sub(cogs)

		var margin Percent
		if revenue.IsPositive() {
			margin = Percent(100 * gross.AsFloat() / revenue.AsFloat())
		}

		name := p.Name
		if name == "" {
			name = DisplayName(key)
		}

		lines = append(lines, ProductLine{
			Key:     key,
			Name:    name,
			Count:   count,
			Revenue: revenue,
			COGS:    cogs,
			Gross:   gross,
			Margin:  margin,
		})
	}

	sort.SliceStable(lines, func(i, j int) bool { return lines[i].Count > lines[j].Count })
	return lines, counted
}
