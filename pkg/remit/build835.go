package remit

import (
	"time"

	"github.com/Autsav24/EDIX12/pkg/x12"
)

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// Build835 emits a remittance advice. BPR carries placeholder originating
// bank routing and account numbers; real deployments substitute them per
// trading partner agreement. The SE count comes from the assembled list.
func Build835(req Request835) string {
	d := req.Delimiters
	ts := req.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	env := x12.Envelope{
		InterchangeControl: req.InterchangeControl,
		GroupControl:       req.GroupControl,
		TransactionControl: req.TransactionControl,
		SenderID:           req.PayerID,
		ReceiverID:         "RECEIVERID",
		SenderCode:         req.PayerID,
		ReceiverCode:       "RECEIVER",
		TransactionSet:     "835",
		Timestamp:          ts,
	}

	payDate := orDefault(req.PaymentDate, ts.Format("20060102"))

	var body []x12.Segment
	add := func(segs ...x12.Segment) { body = append(body, segs...) }

	add(x12.NewSegment(x12.TagBPR, "I", req.PaidAmount, "C", "CHK",
		"01", "999999999", "DA", "123456789", payDate))
	add(x12.NewSegment(x12.TagTRN, "1", req.CheckNumber, req.PayerID))
	add(x12.NewSegment(x12.TagDTM, "405", payDate))
	add(x12.NewSegment(x12.TagN1, x12.EntityPayer, req.PayerName, "PI", req.PayerID))
	add(x12.NewSegment(x12.TagN1, x12.EntityPayee, req.PayeeName, "XX", req.PayeeNPI))

	for _, claim := range req.Claims {
		add(x12.NewSegment(x12.TagCLP,
			claim.ClaimID, orDefault(claim.Status, "1"),
			claim.ChargeAmount, claim.PaidAmount,
			"", "MC", claim.ClaimControl, "12", "1"))
		for _, adj := range claim.Adjustments {
			add(x12.NewSegment(x12.TagCAS, adj.Group, adj.Reason, adj.Amount))
		}
		add(x12.NewSegment(x12.TagNM1, x12.EntityPatient, "1",
			claim.PatientLast, claim.PatientFirst, "", "", "", "MI", claim.PatientID))
		if claim.ServiceStart != "" {
			add(x12.NewSegment(x12.TagDTM, "232", claim.ServiceStart))
		}
		if claim.ServiceEnd != "" {
			add(x12.NewSegment(x12.TagDTM, "233", claim.ServiceEnd))
		}
	}

	return x12.Render(env.Wrap(body, d), d)
}
