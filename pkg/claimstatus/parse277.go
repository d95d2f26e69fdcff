package claimstatus

import "github.com/Autsav24/EDIX12/pkg/x12"

// Parse277 extracts claim status rows from raw 277 text. It is total:
// any input yields a record, unknown tags are skipped, and envelope
// findings surface as advisory warnings. A CLP segment opens a claim
// row; STC, NM1 QC and DTP attach to the open row and are dropped when
// no CLP has appeared yet. The first TRN wins as the document trace.
func Parse277(text string) *ClaimStatus {
	d := x12.DetectDelimiters(text)
	segments := x12.Tokenize(text, d)

	out := &ClaimStatus{}
	var current *ClaimRow
	flush := func() {
		if current != nil {
			out.Claims = append(out.Claims, *current)
			current = nil
		}
	}

	for _, seg := range segments {
		switch seg.Tag() {
		case x12.TagTRN:
			if out.TraceNumber == "" {
				out.TraceNumber = seg.Get(2)
			}
		case x12.TagCLP:
			flush()
			current = &ClaimRow{
				ClaimID:     seg.Get(1),
				Status:      seg.Get(2),
				TotalCharge: seg.Get(3),
				TotalPaid:   seg.Get(4),
			}
		case x12.TagSTC:
			if current != nil {
				current.StatusComposite = seg.Get(1)
				current.StatusDate = seg.Get(2)
			}
		case x12.TagNM1:
			if current != nil && seg.Get(1) == x12.EntityPatient {
				current.PatientLast = seg.Get(3)
				current.PatientFirst = seg.Get(4)
			}
		case x12.TagDTP:
			if current != nil {
				current.Dates = append(current.Dates, seg[1:])
			}
		}
	}
	flush()

	out.Debug = x12.DebugFor(segments, d, 12)
	out.Warnings = x12.ValidateEnvelope(text)
	return out
}
