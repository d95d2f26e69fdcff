package remit

import (
	"strconv"
	"time"

	"github.com/Autsav24/EDIX12/pkg/x12"
)

// Build837 emits a single-claim professional claim. Submitter, receiver and
// contact fields default to placeholder trading partner values when blank.
// CLM05 is the place-of-service composite, built with the active component
// separator. The SE count comes from the assembled list.
func Build837(req Request837) string {
	d := req.Delimiters.WithDefaults()
	ts := req.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	env := x12.Envelope{
		InterchangeControl: req.InterchangeControl,
		GroupControl:       req.GroupControl,
		TransactionControl: req.TransactionControl,
		SenderID:           orDefault(req.SenderID, "SENDERID"),
		ReceiverID:         orDefault(req.ReceiverID, "RECEIVERID"),
		SenderCode:         orDefault(req.SenderID, "SENDER"),
		ReceiverCode:       orDefault(req.ReceiverID, "RECEIVER"),
		TransactionSet:     "837",
		Timestamp:          ts,
	}

	var body []x12.Segment
	add := func(segs ...x12.Segment) { body = append(body, segs...) }

	add(x12.NewSegment(x12.TagBHT, "0019", "00", req.ClaimID,
		ts.Format("20060102"), ts.Format("1504"), "CH"))

	// 1000A/1000B submitter and receiver.
	add(x12.NewSegment(x12.TagNM1, x12.EntitySubmitter, "2",
		orDefault(req.SubmitterName, "BILLING PROVIDER"), "", "", "", "",
		"46", orDefault(req.SubmitterID, "12345")))
	add(x12.NewSegment(x12.TagPER, "IC",
		orDefault(req.ContactName, "BILLING OFFICE"), "TE",
		orDefault(req.ContactPhone, "8005551212")))
	add(x12.NewSegment(x12.TagNM1, x12.EntityReceiver, "2",
		orDefault(req.ReceiverName, "PAYER NAME"), "", "", "", "",
		"46", orDefault(req.ReceiverCode, "99999")))

	// 2000A billing provider.
	add(x12.NewSegment(x12.TagHL, "1", "", x12.LevelInfoSource, "1"))
	add(x12.NewSegment(x12.TagNM1, x12.EntityBilling, "2",
		req.BillingName, "", "", "", "", "XX", req.BillingNPI))
	if req.BillingAddress.Line1 != "" {
		add(x12.NewSegment(x12.TagN3, req.BillingAddress.Line1))
		add(x12.NewSegment(x12.TagN4,
			req.BillingAddress.City, req.BillingAddress.State, req.BillingAddress.Zip).TrimTrailingEmpty())
	}
	if req.TaxID != "" {
		add(x12.NewSegment(x12.TagREF, "EI", req.TaxID))
	}

	// 2000B subscriber.
	add(x12.NewSegment(x12.TagHL, "2", "1", x12.LevelSubscriber, "0"))
	add(x12.NewSegment(x12.TagNM1, x12.EntitySubscriber, "1",
		req.PatientLast, req.PatientFirst, "", "", "", "MI", req.PatientID))

	if req.DOSEnd != "" {
		add(x12.NewSegment(x12.TagDTP, "472", "RD8", req.DOSStart+"-"+req.DOSEnd))
	} else {
		add(x12.NewSegment(x12.TagDTP, "472", "D8", req.DOSStart))
	}

	pos := orDefault(req.PlaceOfService, "11")
	sep := string(d.Component)
	add(x12.NewSegment(x12.TagCLM, req.ClaimID, req.ClaimAmount, "", "",
		pos+sep+"B"+sep+"1", "Y", "A", "Y", "I"))
	if req.DiagnosisCode != "" {
		add(x12.NewSegment(x12.TagHI, "BK"+sep+req.DiagnosisCode))
	}

	for i, line := range serviceLines(req) {
		add(x12.NewSegment(x12.TagLX, strconv.Itoa(i+1)))
		add(x12.NewSegment(x12.TagSV1,
			"HC"+sep+line.ProcedureCode, line.Amount, "UN",
			orDefault(line.Units, "1"), "", "", "1"))
	}

	return x12.Render(env.Wrap(body, d), d)
}

func serviceLines(req Request837) []ServiceLine {
	if len(req.Lines) > 0 {
		return req.Lines
	}
	return []ServiceLine{{ProcedureCode: "99213", Amount: req.ClaimAmount}}
}
