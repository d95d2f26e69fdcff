package remit

import (
	"strings"
	"testing"
	"time"

	"github.com/Autsav24/EDIX12/pkg/x12"
)

func baseRequest835() Request835 {
	return Request835{
		InterchangeControl: 1,
		GroupControl:       1,
		TransactionControl: 2000,
		PayerName:          "ACME HEALTH",
		PayerID:            "66666",
		PayeeName:          "BUDDHA CLINIC",
		PayeeNPI:           "1234567890",
		CheckNumber:        "CHK20250301",
		PaymentDate:        "20250301",
		PaidAmount:         "120.00",
		Claims: []ClaimPayment{{
			ClaimID:      "CLM0001",
			ChargeAmount: "150.00",
			PaidAmount:   "120.00",
			ClaimControl: "PCN555",
			PatientLast:  "DOE",
			PatientFirst: "JOHN",
			PatientID:    "W123456789",
			Adjustments:  []Adjustment{{Group: "CO", Reason: "45", Amount: "30.00"}},
			ServiceStart: "20250215",
			ServiceEnd:   "20250215",
		}},
		Timestamp: time.Date(2025, 3, 1, 8, 30, 0, 0, time.UTC),
	}
}

func TestBuild835ValidatesClean(t *testing.T) {
	doc := Build835(baseRequest835())
	if findings := x12.ValidateEnvelope(doc); len(findings) != 0 {
		t.Fatalf("expected no envelope findings, got %v", findings)
	}
}

func TestBuild835Segments(t *testing.T) {
	doc := Build835(baseRequest835())
	for _, seg := range []string{
		"BPR*I*120.00*C*CHK*01*999999999*DA*123456789*20250301~",
		"TRN*1*CHK20250301*66666~",
		"DTM*405*20250301~",
		"N1*PR*ACME HEALTH*PI*66666~",
		"N1*PE*BUDDHA CLINIC*XX*1234567890~",
		"CLP*CLM0001*1*150.00*120.00**MC*PCN555*12*1~",
		"CAS*CO*45*30.00~",
		"NM1*QC*1*DOE*JOHN****MI*W123456789~",
		"DTM*232*20250215~",
		"DTM*233*20250215~",
	} {
		if !strings.Contains(doc, seg) {
			t.Fatalf("expected %q in:\n%s", seg, doc)
		}
	}
}

func TestBuild835MultipleClaims(t *testing.T) {
	req := baseRequest835()
	req.Claims = append(req.Claims, ClaimPayment{
		ClaimID:      "CLM0002",
		Status:       "4",
		ChargeAmount: "90.00",
		PaidAmount:   "0.00",
	})
	doc := Build835(req)

	if strings.Count(doc, "CLP*") != 2 {
		t.Fatalf("expected 2 CLP segments:\n%s", doc)
	}
	if !strings.Contains(doc, "CLP*CLM0002*4*90.00*0.00*") {
		t.Fatalf("second claim status not honored:\n%s", doc)
	}
	if findings := x12.ValidateEnvelope(doc); len(findings) != 0 {
		t.Fatalf("expected no envelope findings, got %v", findings)
	}
}

func TestBuild835PaymentDateDefaultsToTimestamp(t *testing.T) {
	req := baseRequest835()
	req.PaymentDate = ""
	doc := Build835(req)
	if !strings.Contains(doc, "DTM*405*20250301~") {
		t.Fatalf("expected payment date from timestamp, got:\n%s", doc)
	}
}
