package profit

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Store file names inside the store directory.
const (
	PricingFile  = "pricing.jsonl"
	ExpensesFile = "expenses.jsonl"
	PartnersFile = "partners.jsonl"
)

// Store is the persisted configuration of the business: the pricing table,
// the expense ledger and the partner roster, all loaded from one directory.
// The report engine treats these as already-loaded values; edits go through
// the store and are written back with Save.
type Store struct {
	Dir      string
	Pricing  PricingTable
	Expenses *ExpenseLedger
	Roster   *Roster
}

// OpenStore loads the three store files from dir. A missing file is not an
// error: pricing falls back to the seeded defaults, expenses and partners
// start empty, and a warning is logged so a typoed path does not pass
// silently.
func OpenStore(dir string) (*Store, error) {
	s := &Store{Dir: dir}

	err := loadFile(filepath.Join(dir, PricingFile), func(f *os.File) (err error) {
		s.Pricing, err = DecodePricing(f)
		return
	})
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning: %s does not exist, using default pricing", filepath.Join(dir, PricingFile))
		s.Pricing = DefaultPricing()
	} else if err != nil {
		return nil, err
	}

	err = loadFile(filepath.Join(dir, ExpensesFile), func(f *os.File) (err error) {
		s.Expenses, err = DecodeExpenses(f)
		return
	})
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning: %s does not exist, starting an empty expense ledger", filepath.Join(dir, ExpensesFile))
		s.Expenses = NewExpenseLedger()
	} else if err != nil {
		return nil, err
	}

	err = loadFile(filepath.Join(dir, PartnersFile), func(f *os.File) (err error) {
		s.Roster, err = DecodeRoster(f)
		return
	})
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning: %s does not exist, starting an empty roster", filepath.Join(dir, PartnersFile))
		s.Roster = NewRoster()
	} else if err != nil {
		return nil, err
	}

	return s, nil
}

// Save writes the three store files back to the store directory, creating it
// when needed.
func (s *Store) Save() error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("could not create store directory %q: %w", s.Dir, err)
	}
	if err := saveFile(filepath.Join(s.Dir, PricingFile), func(f *os.File) error {
		return EncodePricing(f, s.Pricing)
	}); err != nil {
		return err
	}
	if err := saveFile(filepath.Join(s.Dir, ExpensesFile), func(f *os.File) error {
		return EncodeExpenses(f, s.Expenses)
	}); err != nil {
		return err
	}
	return saveFile(filepath.Join(s.Dir, PartnersFile), func(f *os.File) error {
		return EncodeRoster(f, s.Roster)
	})
}

func loadFile(path string, decode func(*os.File) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := decode(f); err != nil {
		return fmt.Errorf("could not decode %q: %w", path, err)
	}
	return nil
}

func saveFile(path string, encode func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening %q for writing: %w", path, err)
	}
	defer f.Close()
	if err := encode(f); err != nil {
		return fmt.Errorf("could not encode %q: %w", path, err)
	}
	return nil
}
