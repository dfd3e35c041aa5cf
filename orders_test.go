package profit

import (
	"testing"
	"time"
)

func TestProductKey(t *testing.T) {
	tests := []struct {
		desc string
		want string
	}{
		{"Boom Wash (Blue)", "boom wash"},
		{"Foot Pump (Blue, L)", "foot pump"},
		{"mini fan", "mini fan"},
		{"  Mini Wifi Camera  ", "mini wifi camera"},
		{"Water Proof Tape (3m) (wide)", "water proof tape"},
		{"(just a variant)", "(just a variant)"}, // no " (" separator before the parenthesis
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := ProductKey(tt.desc); got != tt.want {
			t.Errorf("ProductKey(%q) = %q, want %q", tt.desc, got, tt.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"boom wash", "Boom Wash"},
		{"mini wifi camera", "Mini Wifi Camera"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.key); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func row(desc string) OrderRow {
	return OrderRow{DescriptionField: desc}
}

func datedRow(desc, date string) OrderRow {
	return OrderRow{DescriptionField: desc, OrderDateField: date}
}

func TestAggregateOrders_Counts(t *testing.T) {
	rows := []OrderRow{
		row("Boom Wash (Blue)"),
		row("Mini Fan"),
		row("boom wash (Red)"),
		row(""),                 // skipped, no description
		row("   "),              // skipped, blank description
		row("Boom Wash (Blue)"), // same product again
	}

	lines, counted := AggregateOrders(rows, DefaultPricing(), Range{})
	if counted != 4 {
		t.Errorf("counted = %d, want 4", counted)
	}
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
	// sorted descending by count
	if lines[0].Key != "boom wash" || lines[0].Count != 3 {
		t.Errorf("lines[0] = %s×%d, want boom wash×3", lines[0].Key, lines[0].Count)
	}
	if lines[1].Key != "mini fan" || lines[1].Count != 1 {
		t.Errorf("lines[1] = %s×%d, want mini fan×1", lines[1].Key, lines[1].Count)
	}
}

func TestAggregateOrders_TiesKeepEncounterOrder(t *testing.T) {
	rows := []OrderRow{
		row("Water Proof Tape"),
		row("Foot Pump"),
		row("Mini Fan"),
		row("Foot Pump"),
		row("Water Proof Tape"),
		row("Mini Fan"),
	}
	lines, _ := AggregateOrders(rows, DefaultPricing(), Range{})
	want := []string{"water proof tape", "foot pump", "mini fan"}
	for i, key := range want {
		if lines[i].Key != key {
			t.Errorf("lines[%d].Key = %q, want %q (encounter order on tie)", i, lines[i].Key, key)
		}
	}
}

func TestAggregateOrders_DateFilter(t *testing.T) {
	period := NewRange(NewDate(2025, time.March, 1), NewDate(2025, time.March, 31))
	rows := []OrderRow{
		datedRow("Boom Wash", "2025-03-15"),
		datedRow("Boom Wash", "2025-03-31 22:10:00"), // end day, any time: in
		datedRow("Boom Wash", "2025-04-01"),          // out
		datedRow("Boom Wash", "someday"),             // unparseable: out
		row("Boom Wash"),                             // missing date: out
	}

	lines, counted := AggregateOrders(rows, DefaultPricing(), period)
	if counted != 2 {
		t.Errorf("counted = %d, want 2", counted)
	}
	if len(lines) != 1 || lines[0].Count != 2 {
		t.Fatalf("lines = %+v, want one boom wash line with count 2", lines)
	}

	// With no period every row counts, dated or not.
	_, all := AggregateOrders(rows, DefaultPricing(), Range{})
	if all != 5 {
		t.Errorf("counted without period = %d, want 5", all)
	}
}

func TestAggregateOrders_Financials(t *testing.T) {
	rows := make([]OrderRow, 0, 301)
	for i := 0; i < 301; i++ {
		rows = append(rows, row("Boom Wash (Blue)"))
	}

	lines, _ := AggregateOrders(rows, DefaultPricing(), Range{})
	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1", len(lines))
	}
	line := lines[0]
	if !line.Revenue.Equal(M(301000, "LKR")) {
		t.Errorf("Revenue = %v, want LKR 301000", line.Revenue)
	}
	if !line.COGS.Equal(M(90100, "LKR")) {
		t.Errorf("COGS = %v, want LKR 90100", line.COGS)
	}
	if !line.Gross.Equal(M(210900, "LKR")) {
		t.Errorf("Gross = %v, want LKR 210900", line.Gross)
	}
	wantMargin := Percent(100 * 210900.0 / 301000.0)
	if !line.Margin.Equal(wantMargin) {
		t.Errorf("Margin = %v, want %v", line.Margin, wantMargin)
	}
	if line.Name != "Boom Wash" {
		t.Errorf("Name = %q, want %q", line.Name, "Boom Wash")
	}
}

func TestAggregateOrders_UnconfiguredProduct(t *testing.T) {
	rows := []OrderRow{
		row("Mystery Gadget (L)"), row("Mystery Gadget (L)"), row("Mystery Gadget"),
		row("Mystery Gadget"), row("Mystery Gadget"),
	}
	lines, counted := AggregateOrders(rows, DefaultPricing(), Range{})
	if counted != 5 {
		t.Errorf("counted = %d, want 5", counted)
	}
	if len(lines) != 1 {
		t.Fatalf("unconfigured product missing from breakdown: %+v", lines)
	}
	line := lines[0]
	if line.Count != 5 {
		t.Errorf("Count = %d, want 5", line.Count)
	}
	if !line.Revenue.IsZero() || !line.COGS.IsZero() || !line.Gross.IsZero() {
		t.Errorf("unconfigured product has nonzero financials: %+v", line)
	}
	if !line.Margin.Equal(0) {
		t.Errorf("Margin = %v, want 0", line.Margin)
	}
}
