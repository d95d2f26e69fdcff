package eligibility

import "strings"

// BenefitSummary is a compact display heuristic derived from benefit rows.
// It is non-authoritative: keyword matches against free-text plan
// descriptions, last matching row wins, no aggregation.
type BenefitSummary struct {
	Active              string `json:"Active,omitempty"`
	DeductibleRemaining string `json:"DeductibleRemaining,omitempty"`
	CoinsurancePercent  string `json:"CoinsurancePercent,omitempty"`
	CopayAmount         string `json:"CopayAmount,omitempty"`
	InNetwork           string `json:"InNetwork,omitempty"`
}

// SummarizeBenefits reduces EB rows to the quick-glance fields billing
// staff look for first.
func SummarizeBenefits(rows []BenefitInfo) BenefitSummary {
	var s BenefitSummary
	for _, row := range rows {
		desc := strings.ToLower(row.PlanDesc)

		if row.CoverageCode == "1" {
			s.Active = "Yes"
		}
		if strings.Contains(desc, "deduct") {
			s.DeductibleRemaining = row.BenefitAmt
		}
		if row.Percent != "" {
			s.CoinsurancePercent = row.Percent
		}
		if strings.Contains(desc, "copay") {
			s.CopayAmount = row.BenefitAmt
		}
		switch row.InPlanNetwork {
		case "Y":
			s.InNetwork = "Yes"
		case "N":
			s.InNetwork = "No"
		}
	}
	return s
}
