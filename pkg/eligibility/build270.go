package eligibility

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

// personNM1 builds a person NM1 with the identifier qualifier in element 8
// and the identifier in element 9. A blank ID drops both trailing elements
// rather than emitting a qualifier with an empty value.
func personNM1(entity string, p Party, qualifier string) x12.Segment {
	seg := x12.NewSegment(x12.TagNM1, entity, "1", p.Last, p.First, p.Middle, "", "",
		orDefault(p.IDQualifier, qualifier), p.ID)
	if p.ID == "" {
		seg = seg[:len(seg)-2]
	}
	return seg.TrimTrailingEmpty()
}

func orgNM1(entity, name, qualifier, id string) x12.Segment {
	return x12.NewSegment(x12.TagNM1, entity, "2", name, "", "", "", "", qualifier, id)
}

func addressSegments(a Address) []x12.Segment {
	if a.Line1 == "" {
		return nil
	}
	n3 := x12.NewSegment(x12.TagN3, a.Line1, a.Line2).TrimTrailingEmpty()
	n4 := x12.NewSegment(x12.TagN4, a.City, a.State, a.Zip).TrimTrailingEmpty()
	return []x12.Segment{n3, n4}
}

// Build270 emits a complete 270 eligibility inquiry for the request under
// the given payer profile. The document always passes envelope validation:
// the SE count is taken from the assembled segment list, so every
// conditionally skipped segment is reflected in it.
func Build270(req Request270, profile Profile) string {
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
		TransactionSet:     "270",
		Timestamp:          ts,
	}

	var body []x12.Segment
	add := func(segs ...x12.Segment) { body = append(body, segs...) }

	add(x12.NewSegment(x12.TagBHT, "0022", "13",
		"CN"+strconv.Itoa(req.TransactionControl),
		ts.Format("20060102"), ts.Format("1504")))

	// 2000A information source.
	add(x12.NewSegment(x12.TagHL, "1", "", x12.LevelInfoSource, "1"))
	add(orgNM1(x12.EntityPayer, orDefault(req.PayerName, "PAYER NAME"), "PI", req.PayerID))

	// 2000B information receiver.
	add(x12.NewSegment(x12.TagHL, "2", "1", x12.LevelInfoReceiver, "1"))
	add(orgNM1(x12.EntityProvider, req.Provider.Name, "XX", req.Provider.NPI))
	if req.Provider.Taxonomy != "" {
		add(x12.NewSegment(x12.TagPRV, "PE", "PXC", req.Provider.Taxonomy))
	}
	add(addressSegments(req.Provider.Address)...)

	// 2000C subscriber.
	childFlag := "0"
	if req.Dependent != nil {
		childFlag = "1"
	}
	add(x12.NewSegment(x12.TagHL, "3", "2", x12.LevelSubscriber, childFlag))
	add(personNM1(x12.EntitySubscriber, req.Subscriber, profile.idQualifier()))
	add(addressSegments(req.SubscriberAddress)...)

	// Extra REF segments carry a literal placeholder; callers substitute
	// the real value in a second pass.
	for _, qual := range profile.ExtraRefQualifiers {
		add(x12.NewSegment(x12.TagREF, qual, RefPlaceholder))
	}

	if req.TraceNumber != "" && profile.ExpectTRN {
		add(x12.NewSegment(x12.TagTRN, "1", req.TraceNumber))
	}

	if profile.RequireDMG || req.DOB != "" || req.Gender != "" {
		add(x12.NewSegment(x12.TagDMG, "D8",
			orDefault(req.DOB, "19000101"),
			orDefault(req.Gender, "U")))
	}

	if req.DateEnd != "" {
		add(x12.NewSegment(x12.TagDTP, "291", "RD8", req.DateStart+"-"+req.DateEnd))
	} else {
		add(x12.NewSegment(x12.TagDTP, "291", "D8", req.DateStart))
	}

	// 2000D dependent.
	if req.Dependent != nil {
		add(x12.NewSegment(x12.TagHL, "4", "3", x12.LevelDependent, "0"))
		add(personNM1(x12.EntityDependent, *req.Dependent, profile.idQualifier()))
	}

	for _, code := range serviceTypes(req, profile) {
		add(x12.NewSegment(x12.TagEQ, code))
	}

	return x12.Render(env.Wrap(body, d), d)
}

func serviceTypes(req Request270, profile Profile) []string {
	if len(req.ServiceTypes) > 0 {
		return req.ServiceTypes
	}
	if len(profile.PreferredServiceTypes) > 0 {
		return profile.PreferredServiceTypes
	}
	return []string{"30"}
}
