package response

import (
	"fleet_bill_verifier/internal/domain/entities"
	"time"
)

type LineItemResponse struct {
	Quantity    int     `json:"quantity"`
	Cost        float64 `json:"cost"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	ATACode     string  `json:"ata_code"`
	Correction  string  `json:"correction"`
	Cause       string  `json:"cause"`
}

type ReferenceLinkResponse struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// EvaluatedRowResponse uses null for market figures that have no data.
type EvaluatedRowResponse struct {
	LineItemResponse
	ItemsTotal     float64                 `json:"items_total"`
	MarketAvg      *float64                `json:"market_avg"`
	AllowedUnitMax *float64                `json:"allowed_unit_max"`
	MarketAvgTotal *float64                `json:"market_avg_total"`
	SearchQuery    string                  `json:"search_query,omitempty"`
	ReferenceLinks []ReferenceLinkResponse `json:"reference_links"`
	Status         string                  `json:"status"`
	ReasonCode     string                  `json:"reason_code"`
	Reason         string                  `json:"reason"`
}

type InvoiceSummaryResponse struct {
	TotalBill      float64  `json:"total_bill"`
	TotalMarketAvg float64  `json:"total_market_avg"`
	VariancePct    *float64 `json:"variance_pct"`
	ApprovedCount  int      `json:"approved_count"`
	CautionCount   int      `json:"caution_count"`
	RejectedCount  int      `json:"rejected_count"`
	GrandTotalFlag string   `json:"grand_total_flag"`
	FlagMessage    string   `json:"flag_message,omitempty"`
}

type InvoiceEvaluationResponse struct {
	EvaluationID string                 `json:"evaluation_id"`
	EvaluatedAt  time.Time              `json:"evaluated_at"`
	MarginPct    float64                `json:"margin_pct"`
	Rows         []EvaluatedRowResponse `json:"rows"`
	Summary      InvoiceSummaryResponse `json:"summary"`
}

type DemoInvoiceResponse struct {
	Items []LineItemResponse `json:"items"`
}

func FromLineItem(li entities.LineItem) LineItemResponse {
	return LineItemResponse{
		Quantity:    li.Quantity,
		Cost:        li.Cost,
		Description: li.Description,
		Type:        li.Type,
		ATACode:     li.ATACode,
		Correction:  li.Correction,
		Cause:       li.Cause,
	}
}

func FromEvaluatedRow(r entities.EvaluatedRow) EvaluatedRowResponse {
	links := make([]ReferenceLinkResponse, 0, len(r.ReferenceLinks))
	for _, l := range r.ReferenceLinks {
		links = append(links, ReferenceLinkResponse{Label: l.Label, URL: l.URL})
	}
	return EvaluatedRowResponse{
		LineItemResponse: FromLineItem(r.LineItem),
		ItemsTotal:       r.ItemsTotal,
		MarketAvg:        r.MarketAvg,
		AllowedUnitMax:   r.AllowedUnitMax,
		MarketAvgTotal:   r.MarketAvgTotal,
		SearchQuery:      r.SearchQuery,
		ReferenceLinks:   links,
		Status:           string(r.Status),
		ReasonCode:       string(r.ReasonCode),
		Reason:           r.Reason,
	}
}

func FromInvoiceEvaluation(e entities.InvoiceEvaluation) InvoiceEvaluationResponse {
	rows := make([]EvaluatedRowResponse, 0, len(e.Rows))
	for _, r := range e.Rows {
		rows = append(rows, FromEvaluatedRow(r))
	}
	s := e.Summary
	return InvoiceEvaluationResponse{
		EvaluationID: e.ID,
		EvaluatedAt:  e.EvaluatedAt,
		MarginPct:    e.MarginPct,
		Rows:         rows,
		Summary: InvoiceSummaryResponse{
			TotalBill:      s.TotalBill,
			TotalMarketAvg: s.TotalMarketAvg,
			VariancePct:    s.VariancePct,
			ApprovedCount:  s.ApprovedCount,
			CautionCount:   s.CautionCount,
			RejectedCount:  s.RejectedCount,
			GrandTotalFlag: string(s.GrandTotalFlag),
			FlagMessage:    s.FlagMessage,
		},
	}
}

func FromDemoLineItems(items []entities.LineItem) DemoInvoiceResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromLineItem(it))
	}
	return DemoInvoiceResponse{Items: out}
}
