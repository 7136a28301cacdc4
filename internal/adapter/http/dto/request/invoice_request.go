package request

import "fleet_bill_verifier/internal/domain/entities"

// LineItemRequest is one invoice line as typed by the caller. Zero values are
// accepted here; incomplete lines are judged by the evaluator.
type LineItemRequest struct {
	Quantity    int     `json:"quantity" example:"2"`
	Cost        float64 `json:"cost" binding:"lte=1000000000" example:"93.12"`
	Description string  `json:"description" example:"A/C RECEIVER - DRYER"`
	Type        string  `json:"type" example:"PART"`
	ATACode     string  `json:"ata_code" example:"01001065"`
	Correction  string  `json:"correction" example:"REPLACE"`
	Cause       string  `json:"cause" example:"DOES NOT OPERATE PROPERLY"`
}

// EvaluateInvoiceRequest is the payload of POST /v1/invoices/evaluate.
//
// MarginPct is the share allowed over the market average (0.10 = +10%); when
// omitted the configured default applies.
type EvaluateInvoiceRequest struct {
	MarginPct *float64          `json:"margin_pct" binding:"omitempty,gte=0,lte=0.5" example:"0.1"`
	Items     []LineItemRequest `json:"items" binding:"required,min=1,max=100,dive"`
}

func (r EvaluateInvoiceRequest) ResolveMarginPct(def float64) float64 {
	if r.MarginPct == nil {
		return def
	}
	return *r.MarginPct
}

func (r EvaluateInvoiceRequest) ToLineItems() []entities.LineItem {
	items := make([]entities.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.LineItem{
			Quantity:    it.Quantity,
			Cost:        it.Cost,
			Description: it.Description,
			Type:        it.Type,
			ATACode:     it.ATACode,
			Correction:  it.Correction,
			Cause:       it.Cause,
		})
	}
	return items
}
