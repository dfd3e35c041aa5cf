package profit

import "testing"

func TestNewPayslip(t *testing.T) {
	p := PartnerProfile{
		ID:        "p-sandun",
		ShortName: "Sandun",
		FullName:  "Sandun Perera",
		Code:      "EMP-002",
		Bank:      "BOC",
		Account:   "123456789",
		Deductions: Deductions{
			Loan: M(5000, "LKR"),
			EPF:  M(800, "LKR"),
			ETF:  M(240, "LKR"),
		},
	}

	slip := NewPayslip(p, M(35150, "LKR"))

	if slip.PartnerID != "p-sandun" || slip.ShortName != "Sandun" || slip.Bank != "BOC" {
		t.Errorf("identity fields not carried over: %+v", slip)
	}
	if !slip.Basic.Equal(M(21090, "LKR")) {
		t.Errorf("Basic = %v, want LKR 21090 (60%% of gross)", slip.Basic)
	}
	if !slip.Allowances.Equal(M(14060, "LKR")) {
		t.Errorf("Allowances = %v, want LKR 14060 (40%% of gross)", slip.Allowances)
	}
	if !slip.Basic.Add(slip.Allowances).Equal(slip.Gross) {
		t.Errorf("basic %v + allowances %v != gross %v", slip.Basic, slip.Allowances, slip.Gross)
	}
	if !slip.Bonus.IsZero() {
		t.Errorf("Bonus = %v, want zero", slip.Bonus)
	}
	if !slip.TotalDeductions.Equal(M(6040, "LKR")) {
		t.Errorf("TotalDeductions = %v, want LKR 6040", slip.TotalDeductions)
	}
	// net is gross minus deductions, not basic minus deductions
	if !slip.NetPay.Equal(M(29110, "LKR")) {
		t.Errorf("NetPay = %v, want LKR 29110", slip.NetPay)
	}
}

func TestNewPayslip_NoDeductions(t *testing.T) {
	slip := NewPayslip(PartnerProfile{ID: "p", ShortName: "Krishan"}, M(1000, "LKR"))
	if !slip.TotalDeductions.IsZero() {
		t.Errorf("TotalDeductions = %v, want zero", slip.TotalDeductions)
	}
	if !slip.NetPay.Equal(M(1000, "LKR")) {
		t.Errorf("NetPay = %v, want the full gross", slip.NetPay)
	}
}

func TestNewPayslip_DeductionsExceedGross(t *testing.T) {
	p := PartnerProfile{ID: "p", Deductions: Deductions{Loan: M(2000, "LKR")}}
	slip := NewPayslip(p, M(500, "LKR"))
	if !slip.NetPay.Equal(M(-1500, "LKR")) {
		t.Errorf("NetPay = %v, want LKR -1500 (no floor at zero)", slip.NetPay)
	}
}
