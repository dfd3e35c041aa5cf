package profit

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStoreRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "books")

	s, err := OpenStore(dir)
	if err != nil {
		t.Fatalf("OpenStore on a missing directory: %v", err)
	}
	// a fresh store starts from the seeded catalog and empty records
	if len(s.Pricing) == 0 {
		t.Fatal("fresh store has no default pricing")
	}
	if s.Expenses.Len() != 0 || s.Roster.Len() != 0 {
		t.Fatal("fresh store is not empty")
	}

	s.Expenses.Add(ExpenseEntry{
		Date:     NewDate(2025, time.March, 10),
		Category: ExpenseAdvertising,
		Amount:   M(300000, "LKR"),
	})
	s.Roster.Add(PartnerProfile{ShortName: "Samila", Role: "Investor", Class: Investor})
	s.Pricing["boom wash"] = s.Pricing.Lookup("boom wash").WithSellingPrice(M(1200, "LKR"))

	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	for _, name := range []string{PricingFile, ExpensesFile, PartnersFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("Save did not write %s: %v", name, err)
		}
	}

	reopened, err := OpenStore(dir)
	if err != nil {
		t.Fatalf("OpenStore after Save: %v", err)
	}
	if reopened.Expenses.Len() != 1 {
		t.Errorf("reopened Expenses.Len() = %d, want 1", reopened.Expenses.Len())
	}
	if _, ok := reopened.Roster.Find("samila"); !ok {
		t.Error("reopened roster lost Samila")
	}
	if got := reopened.Pricing.Lookup("boom wash").Selling; !got.Equal(M(1200, "LKR")) {
		t.Errorf("reopened selling price = %v, want LKR 1200", got)
	}
}

func TestOpenStoreRejectsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, PricingFile), []byte("not json\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenStore(dir); err == nil {
		t.Error("OpenStore accepted a corrupt pricing file")
	}
}
