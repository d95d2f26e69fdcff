package remit

import (
	"strings"
	"testing"
)

func TestParse835RoundTrip(t *testing.T) {
	doc := Build835(baseRequest835())
	rec := Parse835(doc)

	if rec.Payment.Amount != "120.00" || rec.Payment.Method != "CHK" {
		t.Fatalf("payment wrong: %+v", rec.Payment)
	}
	if rec.Payment.Date != "20250301" || rec.PaymentDate != "20250301" {
		t.Fatalf("payment dates wrong: %+v", rec)
	}
	if rec.CheckNumber != "CHK20250301" {
		t.Fatalf("check number wrong: %q", rec.CheckNumber)
	}
	if rec.Payer.Name != "ACME HEALTH" || rec.Payer.ID != "66666" {
		t.Fatalf("payer wrong: %+v", rec.Payer)
	}
	if rec.Payee.Name != "BUDDHA CLINIC" || rec.Payee.ID != "1234567890" {
		t.Fatalf("payee wrong: %+v", rec.Payee)
	}

	if len(rec.Claims) != 1 {
		t.Fatalf("expected 1 claim, got %d", len(rec.Claims))
	}
	claim := rec.Claims[0]
	if claim.ClaimID != "CLM0001" || claim.PaidAmount != "120.00" || claim.ClaimControl != "PCN555" {
		t.Fatalf("claim wrong: %+v", claim)
	}
	if claim.PatientLast != "DOE" || claim.PatientID != "W123456789" {
		t.Fatalf("claim patient wrong: %+v", claim)
	}
	if len(claim.Adjustments) != 1 || claim.Adjustments[0].Reason != "45" {
		t.Fatalf("claim adjustments wrong: %+v", claim.Adjustments)
	}
	if claim.ServiceStart != "20250215" || claim.ServiceEnd != "20250215" {
		t.Fatalf("claim service dates wrong: %+v", claim)
	}
	if rec.TotalPaid != 120.00 {
		t.Fatalf("total paid wrong: %v", rec.TotalPaid)
	}
	if len(rec.Warnings) != 0 {
		t.Fatalf("expected clean round trip, got %v", rec.Warnings)
	}
}

func TestParse835TotalSkipsNonNumeric(t *testing.T) {
	doc := "CLP*C1*1*150*100.50~CLP*C2*1*90*N/A~CLP*C3*1*20*19.50~"
	rec := Parse835(doc)
	if len(rec.Claims) != 3 {
		t.Fatalf("expected 3 claims, got %d", len(rec.Claims))
	}
	if rec.TotalPaid != 120.00 {
		t.Fatalf("expected non-numeric amount skipped, total %v", rec.TotalPaid)
	}
}

func TestParse835Totality(t *testing.T) {
	for _, input := range []string{"", "\x00\x01", strings.Repeat("*", 300), "BPR"} {
		if rec := Parse835(input); rec == nil {
			t.Fatalf("nil record for %q", input)
		}
	}
	rec := Parse835("")
	if rec.TotalPaid != 0 || len(rec.Claims) != 0 {
		t.Fatalf("empty input not empty record: %+v", rec)
	}
}
