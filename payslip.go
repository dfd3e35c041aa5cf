package profit

import "github.com/shopspring/decimal"

// The gross share is presented as a 60/40 basic-salary/allowances split.
var (
	basicShare     = decimal.New(6, -1)
	allowanceShare = decimal.New(4, -1)
)

// PayslipBreakdown is the presentational decomposition of one partner's
// profit share: a basic/allowance split of the gross, fixed deduction lines,
// and the resulting net pay. It is computed on demand and never stored.
type PayslipBreakdown struct {
	PartnerID string
	ShortName string
	FullName  string

	Code    string
	Bank    string
	Account string

	Gross      Money
	Basic      Money // 60% of gross
	Allowances Money // 40% of gross
	Bonus      Money // always zero, the line is reserved

	Loan            Money
	EPF             Money
	ETF             Money
	Other           Money
	TotalDeductions Money

	NetPay Money
}

// NewPayslip builds the payslip for one partner's computed gross share.
//
// Net pay is gross minus total deductions, taken from the full gross amount.
// The displayed basic+allowances happen to sum to gross, but the split is
// presentational only and net pay is never re-derived from it.
func NewPayslip(p PartnerProfile, gross Money) PayslipBreakdown {
	d := p.Deductions
	return PayslipBreakdown{
		PartnerID: p.ID,
		ShortName: p.ShortName,
		FullName:  p.FullName,

		Code:    p.Code,
		Bank:    p.Bank,
		Account: p.Account,

		Gross:      gross,
		Basic:      gross.Mul(basicShare),
		Allowances: gross.Mul(allowanceShare),
		Bonus:      M(0, gross.Currency()),

		Loan:            d.Loan,
		EPF:             d.EPF,
		ETF:             d.ETF,
		Other:           d.Other,
		TotalDeductions: d.Total(),

		NetPay: gross.Sub(d.Total()),
	}
}
