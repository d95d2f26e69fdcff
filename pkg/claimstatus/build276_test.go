package claimstatus

import (
	"strings"
	"testing"
	"time"

	"github.com/Autsav24/EDIX12/pkg/x12"
)

func baseRequest() Request276 {
	return Request276{
		InterchangeControl: 1,
		GroupControl:       1,
		TransactionControl: 1000,
		PayerID:            "12345",
		PayerName:          "ACME HEALTH",
		ProviderName:       "BUDDHA CLINIC",
		ProviderNPI:        "1234567890",
		SubscriberLast:     "DOE",
		SubscriberFirst:    "JOHN",
		SubscriberID:       "W123456789",
		DateOfService:      "20250301",
		Timestamp:          time.Date(2025, 3, 1, 8, 30, 0, 0, time.UTC),
	}
}

func segmentTags(t *testing.T, doc string) []string {
	t.Helper()
	d := x12.DetectDelimiters(doc)
	segs := x12.Tokenize(doc, d)
	tags := make([]string, 0, len(segs))
	for _, s := range segs {
		tags = append(tags, s.Tag())
	}
	return tags
}

func TestBuild276ValidatesClean(t *testing.T) {
	doc := Build276(baseRequest())
	if findings := x12.ValidateEnvelope(doc); len(findings) != 0 {
		t.Fatalf("expected no envelope findings, got %v", findings)
	}
}

func TestBuild276SegmentOrder(t *testing.T) {
	doc := Build276(baseRequest())
	want := []string{"ISA", "GS", "ST", "BHT", "HL", "NM1", "HL", "NM1", "HL", "NM1", "DTP", "SE", "GE", "IEA"}
	got := segmentTags(t, doc)
	if len(got) != len(want) {
		t.Fatalf("expected %d segments, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("segment %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestBuild276ClaimControlAddsTRN(t *testing.T) {
	req := baseRequest()
	req.ClaimControlNumber = "CLM0001"
	doc := Build276(req)

	if !strings.Contains(doc, "TRN*1*CLM0001~") {
		t.Fatalf("expected TRN trace, got:\n%s", doc)
	}
	if !strings.Contains(doc, "BHT*0010*13*CLM0001*") {
		t.Fatalf("expected claim control in BHT03, got:\n%s", doc)
	}
	// ST through SE inclusive: ST, BHT, three HL/NM1 pairs, TRN, DTP, SE.
	if !strings.Contains(doc, "SE*11*") {
		t.Fatalf("expected SE count 11 with TRN present, got:\n%s", doc)
	}
	if findings := x12.ValidateEnvelope(doc); len(findings) != 0 {
		t.Fatalf("expected no envelope findings, got %v", findings)
	}
}

func TestBuild276Hierarchy(t *testing.T) {
	doc := Build276(baseRequest())
	for _, seg := range []string{"HL*1**20*1~", "HL*2*1*21*1~", "HL*3*2*19*0~"} {
		if !strings.Contains(doc, seg) {
			t.Fatalf("expected %q in:\n%s", seg, doc)
		}
	}
	if !strings.Contains(doc, "NM1*41*2*BUDDHA CLINIC*****XX*1234567890~") {
		t.Fatalf("provider NM1 wrong:\n%s", doc)
	}
	if !strings.Contains(doc, "NM1*IL*1*DOE*JOHN****MI*W123456789~") {
		t.Fatalf("subscriber NM1 wrong:\n%s", doc)
	}
}

func TestBuild276DateDefaultsToTimestamp(t *testing.T) {
	req := baseRequest()
	req.DateOfService = ""
	doc := Build276(req)
	if !strings.Contains(doc, "DTP*472*D8*20250301~") {
		t.Fatalf("expected DTP from timestamp date, got:\n%s", doc)
	}
}
