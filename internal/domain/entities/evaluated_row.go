package entities

// LineStatus is the verdict assigned to a single invoice line.
type LineStatus string

const (
	LineStatusApproved LineStatus = "approved"
	LineStatusCaution  LineStatus = "caution"
	LineStatusRejected LineStatus = "rejected"
)

// ReasonCode is the machine-readable companion of EvaluatedRow.Reason.
type ReasonCode string

const (
	ReasonIncomplete         ReasonCode = "INCOMPLETE"
	ReasonAmountOutOfRange   ReasonCode = "AMOUNT_OUT_OF_RANGE"
	ReasonDuplicate          ReasonCode = "DUPLICATE_LINE"
	ReasonVagueDescription   ReasonCode = "VAGUE_DESCRIPTION"
	ReasonExcessiveQuantity  ReasonCode = "EXCESSIVE_QUANTITY"
	ReasonNoMarketData       ReasonCode = "NO_MARKET_DATA"
	ReasonAtOrBelowMarket    ReasonCode = "AT_OR_BELOW_MARKET"
	ReasonWithinMargin       ReasonCode = "WITHIN_MARGIN"
	ReasonExceedsMargin      ReasonCode = "EXCEEDS_MARGIN"
	ReasonItemsTotalMismatch ReasonCode = "ITEMS_TOTAL_MISMATCH"
)

// ReferenceLink is a labelled URL backing a market comparison.
type ReferenceLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// EvaluatedRow is a LineItem plus its market comparison and verdict.
//
// MarketAvg, AllowedUnitMax and MarketAvgTotal are nil when no market average is
// available (lookup skipped or no usable prices). Status and Reason are always set together
// through Judge.
type EvaluatedRow struct {
	LineItem

	ItemsTotal     float64         `json:"items_total"`
	MarketAvg      *float64        `json:"market_avg"`
	AllowedUnitMax *float64        `json:"allowed_unit_max"`
	MarketAvgTotal *float64        `json:"market_avg_total"`
	SearchQuery    string          `json:"search_query,omitempty"`
	ReferenceLinks []ReferenceLink `json:"reference_links"`

	Status     LineStatus `json:"status"`
	ReasonCode ReasonCode `json:"reason_code"`
	Reason     string     `json:"reason"`
}

// Judge sets the verdict of the row.
func (r *EvaluatedRow) Judge(status LineStatus, code ReasonCode, reason string) {
	r.Status = status
	r.ReasonCode = code
	r.Reason = reason
}

// HasMarketData reports whether a market average was found for the row.
func (r EvaluatedRow) HasMarketData() bool {
	return r.MarketAvg != nil
}
