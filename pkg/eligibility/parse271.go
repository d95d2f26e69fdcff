package eligibility

import (
	"strings"

	"github.com/Autsav24/EDIX12/pkg/x12"
)

// Entity contexts assigned by HL level codes while scanning.
const (
	ContextPayer      = "payer"
	ContextProvider   = "provider"
	ContextSubscriber = "subscriber"
	ContextDependent  = "dependent"
)

var hlContexts = map[string]string{
	x12.LevelInfoSource:   ContextPayer,
	x12.LevelInfoReceiver: ContextProvider,
	x12.LevelSubscriber:   ContextSubscriber,
	x12.LevelDependent:    ContextDependent,
}

// parseState is the fold accumulator: the entity context established by the
// last HL segment plus the record built so far. Keeping the transition
// explicit makes the context logic testable on its own.
type parseState struct {
	context string
	out     *Eligibility
}

// Parse271 extracts a structured eligibility record from raw 271 text. It
// is total: any string, including empty or binary noise, yields a record
// with empty buckets rather than a failure. Unknown segment tags are
// ignored. Envelope findings are attached as advisory warnings.
func Parse271(text string) *Eligibility {
	d := x12.DetectDelimiters(text)
	segments := x12.Tokenize(text, d)

	state := parseState{
		// Detail segments before any HL belong to the subscriber loop in
		// practice; multi-entity documents re-tag via HL.
		context: ContextSubscriber,
		out:     &Eligibility{},
	}
	for _, seg := range segments {
		state = foldSegment(state, seg)
	}

	out := state.out
	out.Debug = x12.DebugFor(segments, d, 12)
	out.Warnings = x12.ValidateEnvelope(text)
	return out
}

// foldSegment applies one segment to the accumulator and returns the next
// state. Best-effort positional extraction: anything past the expected
// positions stays available through the raw element list.
func foldSegment(state parseState, seg x12.Segment) parseState {
	out := state.out

	switch seg.Tag() {
	case x12.TagHL:
		if next, ok := hlContexts[seg.Get(3)]; ok {
			state.context = next
		}

	case x12.TagNM1:
		entity := strings.ToUpper(strings.TrimSpace(seg.Get(1)))
		switch entity {
		case x12.EntityPayer:
			out.Payer = orgEntity(seg)
		case x12.EntityProvider:
			out.Provider = orgEntity(seg)
		case x12.EntitySubscriber:
			out.Subscriber = personEntity(seg)
		case x12.EntityDependent:
			out.Dependent = personEntity(seg)
		}

	case x12.TagTRN:
		out.Trace = Trace{TraceType: seg.Get(1), TraceNumber: seg.Get(2)}

	case x12.TagEB:
		out.Benefits = append(out.Benefits, benefitFromSegment(seg, state.context))

	case x12.TagAAA:
		out.Rejections = append(out.Rejections, Rejection{
			Context:        state.context,
			RejectCode:     seg.Get(3),
			FollowupAction: seg.Get(4),
		})

	case x12.TagDTP:
		out.Dates = append(out.Dates, ContextSegment{Context: state.context, Elements: seg})

	case x12.TagREF:
		out.References = append(out.References, ContextSegment{Context: state.context, Elements: seg})
	}

	return state
}

func orgEntity(seg x12.Segment) Entity {
	return Entity{
		Name:        seg.Get(3),
		IDQualifier: seg.Get(8),
		ID:          seg.Get(9),
	}
}

func personEntity(seg x12.Segment) Entity {
	return Entity{
		Last:        seg.Get(3),
		First:       seg.Get(4),
		IDQualifier: seg.Get(8),
		ID:          seg.Get(9),
	}
}

func benefitFromSegment(seg x12.Segment, context string) BenefitInfo {
	code := seg.Get(1)
	return BenefitInfo{
		CoverageCode:  code,
		Coverage:      x12.CoverageDescription(code),
		CoverageLevel: seg.Get(2),
		ServiceType:   seg.Get(3),
		PlanDesc:      seg.Get(4),
		TimePeriod:    seg.Get(5),
		BenefitAmt:    seg.Get(6),
		Percent:       seg.Get(7),
		QtyQualifier:  seg.Get(8),
		Qty:           seg.Get(9),
		AuthIndicator: seg.Get(10),
		InPlanNetwork: seg.Get(11),
		Procedure:     seg.Get(12),
		Context:       context,
		Raw:           seg,
	}
}
