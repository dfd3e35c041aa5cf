package profit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// The store files are JSONL: one record per line, human readable, trivially
// mergeable. Amounts are persisted as bare numbers.

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// jsonTier mirrors CostTier on disk; a missing limit means unbounded.
type jsonTier struct {
	Limit int64           `json:"limit,omitempty"`
	Cost  decimal.Decimal `json:"cost"`
}

// jsonProduct is one pricing line.
type jsonProduct struct {
	Key      string          `json:"key"`
	Name     string          `json:"name,omitempty"`
	Selling  decimal.Decimal `json:"selling"`
	Currency string          `json:"currency,omitempty"`
	Tiers    []jsonTier      `json:"tiers"`
}

// DecodePricing reads a pricing table from JSONL, one product per line.
func DecodePricing(r io.Reader) (PricingTable, error) {
	table := PricingTable{}
	err := scanLines(r, func(line []byte) error {
		var jp jsonProduct
		if err := json.Unmarshal(line, &jp); err != nil {
			return fmt.Errorf("cannot parse pricing line %q: %w", string(line), err)
		}
		currency := jp.Currency
		if currency == "" {
			currency = DefaultCurrency
		}
		tiers := make([]CostTier, 0, len(jp.Tiers))
		for _, jt := range jp.Tiers {
			tiers = append(tiers, CostTier{Limit: jt.Limit, UnitCost: M(jt.Cost, currency)})
		}
		name := jp.Name
		if name == "" {
			name = DisplayName(jp.Key)
		}
		table[jp.Key] = ProductPricing{
			Name:    name,
			Selling: M(jp.Selling, currency),
			Tiers:   tiers,
		}
		return nil
	})
	return table, err
}

// EncodePricing writes the table as JSONL with keys in sorted order, so the
// file is canonical and diffs stay readable.
func EncodePricing(w io.Writer, table PricingTable) error {
	for _, key := range table.Keys() {
		p := table[key]
		jp := jsonProduct{
			Key:     key,
			Name:    p.Name,
			Selling: p.Selling.Decimal(),
			Tiers:   make([]jsonTier, 0, len(p.Tiers)),
		}
		if c := p.Selling.Currency(); c != "" && c != DefaultCurrency {
			jp.Currency = c
		}
		for _, t := range p.Tiers {
			jp.Tiers = append(jp.Tiers, jsonTier{Limit: t.Limit, Cost: t.UnitCost.Decimal()})
		}
		if err := writeLine(w, jp); err != nil {
			return fmt.Errorf("cannot write pricing for %q: %w", key, err)
		}
	}
	return nil
}

// jsonExpense is one expense ledger line.
type jsonExpense struct {
	ID          string          `json:"id"`
	Date        Date            `json:"date"`
	Category    ExpenseCategory `json:"category"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency,omitempty"`
}

// DecodeExpenses reads an expense ledger from JSONL, one entry per line.
func DecodeExpenses(r io.Reader) (*ExpenseLedger, error) {
	ledger := NewExpenseLedger()
	err := scanLines(r, func(line []byte) error {
		var je jsonExpense
		if err := json.Unmarshal(line, &je); err != nil {
			return fmt.Errorf("cannot parse expense line %q: %w", string(line), err)
		}
		currency := je.Currency
		if currency == "" {
			currency = DefaultCurrency
		}
		ledger.Add(ExpenseEntry{
			ID:          je.ID,
			Date:        je.Date,
			Category:    je.Category,
			Description: je.Description,
			Amount:      M(je.Amount, currency),
		})
		return nil
	})
	return ledger, err
}

// EncodeExpenses writes the ledger as JSONL in chronological order.
func EncodeExpenses(w io.Writer, ledger *ExpenseLedger) error {
	for _, e := range ledger.Entries() {
		je := jsonExpense{
			ID:          e.ID,
			Date:        e.Date,
			Category:    e.Category,
			Description: e.Description,
			Amount:      e.Amount.Decimal(),
		}
		if c := e.Amount.Currency(); c != "" && c != DefaultCurrency {
			je.Currency = c
		}
		if err := writeLine(w, je); err != nil {
			return fmt.Errorf("cannot write expense %q: %w", e.ID, err)
		}
	}
	return nil
}

// jsonPartner is one roster line.
type jsonPartner struct {
	ID        string          `json:"id"`
	ShortName string          `json:"shortName"`
	FullName  string          `json:"fullName,omitempty"`
	Role      string          `json:"role,omitempty"`
	Class     string          `json:"class"`
	Loan      decimal.Decimal `json:"loan,omitempty"`
	EPF       decimal.Decimal `json:"epf,omitempty"`
	ETF       decimal.Decimal `json:"etf,omitempty"`
	Other     decimal.Decimal `json:"other,omitempty"`
	Code      string          `json:"code,omitempty"`
	Bank      string          `json:"bank,omitempty"`
	Account   string          `json:"account,omitempty"`
}

// DecodeRoster reads a partner roster from JSONL, one partner per line.
//
// A line without an explicit class falls back to classifying its free-text
// role, so legacy rosters exported before the class field existed still load.
func DecodeRoster(r io.Reader) (*Roster, error) {
	roster := NewRoster()
	err := scanLines(r, func(line []byte) error {
		var jp jsonPartner
		if err := json.Unmarshal(line, &jp); err != nil {
			return fmt.Errorf("cannot parse partner line %q: %w", string(line), err)
		}
		class, err := ParseRoleClass(jp.Class)
		if err != nil {
			class = ClassifyRole(jp.Role)
		}
		roster.Add(PartnerProfile{
			ID:        jp.ID,
			ShortName: jp.ShortName,
			FullName:  jp.FullName,
			Role:      jp.Role,
			Class:     class,
			Deductions: Deductions{
				Loan:  M(jp.Loan, DefaultCurrency),
				EPF:   M(jp.EPF, DefaultCurrency),
				ETF:   M(jp.ETF, DefaultCurrency),
				Other: M(jp.Other, DefaultCurrency),
			},
			Code:    jp.Code,
			Bank:    jp.Bank,
			Account: jp.Account,
		})
		return nil
	})
	return roster, err
}

// EncodeRoster writes the roster as JSONL sorted by partner id.
func EncodeRoster(w io.Writer, roster *Roster) error {
	for _, p := range roster.Partners() {
		jp := jsonPartner{
			ID:        p.ID,
			ShortName: p.ShortName,
			FullName:  p.FullName,
			Role:      p.Role,
			Class:     p.Class.String(),
			Loan:      p.Deductions.Loan.Decimal(),
			EPF:       p.Deductions.EPF.Decimal(),
			ETF:       p.Deductions.ETF.Decimal(),
			Other:     p.Deductions.Other.Decimal(),
			Code:      p.Code,
			Bank:      p.Bank,
			Account:   p.Account,
		}
		if err := writeLine(w, jp); err != nil {
			return fmt.Errorf("cannot write partner %q: %w", p.ID, err)
		}
	}
	return nil
}

// scanLines feeds every non-blank line of r to fn.
func scanLines(r io.Reader, fn func(line []byte) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading from input: %w", err)
	}
	return nil
}

// writeLine marshals v and writes it followed by a newline, JSONL style.
func writeLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
