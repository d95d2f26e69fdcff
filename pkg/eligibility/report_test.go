package eligibility

import "testing"

func TestSummarizeBenefits(t *testing.T) {
	rows := []BenefitInfo{
		{CoverageCode: "1", PlanDesc: "GOLD PLAN"},
		{CoverageCode: "C", PlanDesc: "Annual Deductible Remaining", BenefitAmt: "500.00"},
		{CoverageCode: "B", PlanDesc: "OFFICE COPAY", BenefitAmt: "25.00", InPlanNetwork: "Y"},
		{CoverageCode: "A", Percent: "20"},
	}
	s := SummarizeBenefits(rows)
	if s.Active != "Yes" {
		t.Fatalf("expected Active=Yes, got %q", s.Active)
	}
	if s.DeductibleRemaining != "500.00" {
		t.Fatalf("expected deductible 500.00, got %q", s.DeductibleRemaining)
	}
	if s.CopayAmount != "25.00" {
		t.Fatalf("expected copay 25.00, got %q", s.CopayAmount)
	}
	if s.CoinsurancePercent != "20" {
		t.Fatalf("expected coinsurance 20, got %q", s.CoinsurancePercent)
	}
	if s.InNetwork != "Yes" {
		t.Fatalf("expected in-network Yes, got %q", s.InNetwork)
	}
}

func TestSummarizeBenefitsLastWriteWins(t *testing.T) {
	rows := []BenefitInfo{
		{PlanDesc: "DEDUCTIBLE", BenefitAmt: "1000.00"},
		{PlanDesc: "deductible remaining", BenefitAmt: "250.00"},
		{InPlanNetwork: "Y"},
		{InPlanNetwork: "N"},
	}
	s := SummarizeBenefits(rows)
	if s.DeductibleRemaining != "250.00" {
		t.Fatalf("last matching row must win, got %q", s.DeductibleRemaining)
	}
	if s.InNetwork != "No" {
		t.Fatalf("last network indicator must win, got %q", s.InNetwork)
	}
}

func TestSummarizeBenefitsUnknownNetworkLeavesUnset(t *testing.T) {
	s := SummarizeBenefits([]BenefitInfo{{InPlanNetwork: "W"}})
	if s.InNetwork != "" {
		t.Fatalf("unknown indicator must leave the field unset, got %q", s.InNetwork)
	}
	if s != (BenefitSummary{}) {
		t.Fatalf("expected zero summary, got %+v", s)
	}
}

func TestSummarizeBenefitsEmpty(t *testing.T) {
	if s := SummarizeBenefits(nil); s != (BenefitSummary{}) {
		t.Fatalf("expected zero summary for no rows, got %+v", s)
	}
}
