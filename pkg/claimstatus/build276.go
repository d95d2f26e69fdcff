package claimstatus

import (
	"strconv"
	"time"

	"github.com/Autsav24/EDIX12/pkg/x12"
)

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// Build276 emits a claim status inquiry. The hierarchy is payer, provider
// and a provider-of-service level carrying the subscriber, per the 276
// convention. The SE count comes from the assembled segment list, so the
// optional TRN is always reflected in it.
func Build276(req Request276) string {
	d := req.Delimiters
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
		SenderCode:         orDefault(req.SenderCode, "SENDER"),
		ReceiverCode:       orDefault(req.ReceiverCode, "RECEIVER"),
		TransactionSet:     "276",
		Timestamp:          ts,
	}

	var body []x12.Segment
	add := func(segs ...x12.Segment) { body = append(body, segs...) }

	// BHT03 doubles as the claim reference when one is supplied.
	bhtRef := orDefault(req.ClaimControlNumber, strconv.Itoa(req.TransactionControl))
	add(x12.NewSegment(x12.TagBHT, "0010", "13", bhtRef,
		ts.Format("20060102"), ts.Format("1504")))

	add(x12.NewSegment(x12.TagHL, "1", "", x12.LevelInfoSource, "1"))
	add(x12.NewSegment(x12.TagNM1, x12.EntityPayer, "2",
		orDefault(req.PayerName, "PAYER NAME"), "", "", "", "", "PI", req.PayerID))

	add(x12.NewSegment(x12.TagHL, "2", "1", x12.LevelInfoReceiver, "1"))
	add(x12.NewSegment(x12.TagNM1, x12.EntitySubmitter, "2",
		req.ProviderName, "", "", "", "", "XX", req.ProviderNPI))

	add(x12.NewSegment(x12.TagHL, "3", "2", x12.LevelProviderOfService, "0"))
	add(x12.NewSegment(x12.TagNM1, x12.EntitySubscriber, "1",
		req.SubscriberLast, req.SubscriberFirst, "", "", "", "MI", req.SubscriberID))

	if req.ClaimControlNumber != "" {
		add(x12.NewSegment(x12.TagTRN, "1", req.ClaimControlNumber))
	}

	add(x12.NewSegment(x12.TagDTP, "472", "D8",
		orDefault(req.DateOfService, ts.Format("20060102"))))

	return x12.Render(env.Wrap(body, d), d)
}
