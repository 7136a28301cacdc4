package entities

import "strings"

// MaxUnitAmount bounds unit costs and market prices so Quantity x amount stays finite.
const MaxUnitAmount = 1_000_000_000.0

// LineItem is one billed row of a fleet repair invoice.
//
// Domain notes:
//   - Type is categorical and compared case-insensitively ("part", "labor", anything else).
//   - ATACode identifies the vehicle system/part category of the row.
//   - A LineItem is a value object: the evaluator never mutates it.
type LineItem struct {
	Quantity    int     `json:"quantity"`
	Cost        float64 `json:"cost"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	ATACode     string  `json:"ata_code"`
	Correction  string  `json:"correction"`
	Cause       string  `json:"cause"`
}

// DuplicateKey identifies lines billed more than once on the same invoice.
type DuplicateKey struct {
	Description string
	Type        string
	ATACode     string
}

func (li LineItem) DuplicateKey() DuplicateKey {
	return DuplicateKey{
		Description: strings.ToLower(strings.TrimSpace(li.Description)),
		Type:        strings.ToLower(strings.TrimSpace(li.Type)),
		ATACode:     strings.TrimSpace(li.ATACode),
	}
}

// Normalized returns a copy with every text field trimmed.
func (li LineItem) Normalized() LineItem {
	li.Description = strings.TrimSpace(li.Description)
	li.Type = strings.TrimSpace(li.Type)
	li.ATACode = strings.TrimSpace(li.ATACode)
	li.Correction = strings.TrimSpace(li.Correction)
	li.Cause = strings.TrimSpace(li.Cause)
	return li
}

// UsableAmount reports whether v is a positive, finite amount no larger than MaxUnitAmount.
func UsableAmount(v float64) bool {
	return v > 0 && v <= MaxUnitAmount
}

// ItemsTotal is Quantity x Cost.
func (li LineItem) ItemsTotal() float64 {
	return float64(li.Quantity) * li.Cost
}
