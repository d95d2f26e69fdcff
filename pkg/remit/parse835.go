package remit

import (
	"github.com/oarkflow/convert"

	"github.com/Autsav24/EDIX12/pkg/x12"
)

// Parse835 extracts a structured remittance from raw 835 text. It is
// total: any input yields a record, unknown tags are skipped, and
// envelope findings surface as advisory warnings. A CLP opens a claim
// row; CAS, NM1 QC and DTM 232/233 attach to the open row. DTM 405
// before any CLP sets the document payment date. TotalPaid sums the CLP
// paid amounts that parse as numbers.
func Parse835(text string) *Remittance {
	d := x12.DetectDelimiters(text)
	segments := x12.Tokenize(text, d)

	out := &Remittance{}
	var current *ClaimPayment
	flush := func() {
		if current != nil {
			out.Claims = append(out.Claims, *current)
			current = nil
		}
	}

	for _, seg := range segments {
		switch seg.Tag() {
		case x12.TagBPR:
			out.Payment = Payment{
				Amount: seg.Get(2),
				Method: seg.Get(4),
				Date:   seg.Get(9),
			}
		case x12.TagTRN:
			if out.CheckNumber == "" {
				out.CheckNumber = seg.Get(2)
			}
		case x12.TagN1:
			switch seg.Get(1) {
			case x12.EntityPayer:
				out.Payer = N1Party{Name: seg.Get(2), ID: seg.Get(4)}
			case x12.EntityPayee:
				out.Payee = N1Party{Name: seg.Get(2), ID: seg.Get(4)}
			}
		case x12.TagCLP:
			flush()
			current = &ClaimPayment{
				ClaimID:      seg.Get(1),
				Status:       seg.Get(2),
				ChargeAmount: seg.Get(3),
				PaidAmount:   seg.Get(4),
				ClaimControl: seg.Get(7),
			}
		case x12.TagCAS:
			if current != nil {
				current.Adjustments = append(current.Adjustments, Adjustment{
					Group:  seg.Get(1),
					Reason: seg.Get(2),
					Amount: seg.Get(3),
				})
			}
		case x12.TagNM1:
			if current != nil && seg.Get(1) == x12.EntityPatient {
				current.PatientLast = seg.Get(3)
				current.PatientFirst = seg.Get(4)
				current.PatientID = seg.Get(9)
			}
		case x12.TagDTM:
			switch seg.Get(1) {
			case "405":
				out.PaymentDate = seg.Get(2)
			case "232":
				if current != nil {
					current.ServiceStart = seg.Get(2)
				}
			case "233":
				if current != nil {
					current.ServiceEnd = seg.Get(2)
				}
			}
		}
	}
	flush()

	for _, claim := range out.Claims {
		if amount, ok := convert.ToFloat64(claim.PaidAmount); ok {
			out.TotalPaid += amount
		}
	}

	out.Debug = x12.DebugFor(segments, d, 12)
	out.Warnings = x12.ValidateEnvelope(text)
	return out
}
