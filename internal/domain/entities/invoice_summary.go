package entities

import "time"

// GrandTotalFlag is the invoice-level warning derived from bill vs market totals.
type GrandTotalFlag string

const (
	GrandTotalFlagNone            GrandTotalFlag = "none"
	GrandTotalFlagModerateOverage GrandTotalFlag = "moderate_overage"
	GrandTotalFlagSevereOverage   GrandTotalFlag = "severe_overage"
)

// InvoiceSummary aggregates all evaluated rows of one invoice.
//
// VariancePct is nil when no row produced a market average.
type InvoiceSummary struct {
	TotalBill      float64        `json:"total_bill"`
	TotalMarketAvg float64        `json:"total_market_avg"`
	VariancePct    *float64       `json:"variance_pct"`
	ApprovedCount  int            `json:"approved_count"`
	CautionCount   int            `json:"caution_count"`
	RejectedCount  int            `json:"rejected_count"`
	GrandTotalFlag GrandTotalFlag `json:"grand_total_flag"`
	FlagMessage    string         `json:"flag_message,omitempty"`
}

// InvoiceEvaluation is the outcome of one evaluate request. It is returned to the
// caller and never stored.
type InvoiceEvaluation struct {
	ID          string         `json:"id"`
	MarginPct   float64        `json:"margin_pct"`
	Rows        []EvaluatedRow `json:"rows"`
	Summary     InvoiceSummary `json:"summary"`
	EvaluatedAt time.Time      `json:"evaluated_at"`
}
