// Package engine implements the order-matching core: fixed-scale decimal
// arithmetic, direction-tagged price ordering, per-side price-level books,
// and the price-time-priority matching loop that ties them together.
package engine

import "github.com/shopspring/decimal"

// Decimal is the engine's arbitrary-precision numeric type. Binary
// floating-point is never used for arithmetic; even JSON numbers at the
// HTTP boundary (internal/api) are parsed from their text, not via float64.
type Decimal = decimal.Decimal

// Fixed is the scale configuration of an OrderBook: how many fractional
// digits prices and volumes retain after ingress truncation. It is
// immutable once an OrderBook is constructed.
type Fixed struct {
	// BaseScale is the number of decimal places retained for volume.
	BaseScale int32 `json:"base"`
	// QuoteScale is the number of decimal places retained for price.
	QuoteScale int32 `json:"quote"`
}

// DefaultFixed is the scale bootstrap seeds every instrument with (§6,
// "each constructed with base_scale = quote_scale = 8"). §9 open question 5
// notes the source hardcodes this even though the library supports
// configuration; callers that want a different scale pass Fixed explicitly
// to NewOrderBook instead of relying on this default.
var DefaultFixed = Fixed{BaseScale: 8, QuoteScale: 8}

// floorTo returns the largest decimal <= d representable with places
// fractional digits, truncating toward -infinity. It is applied at ingress
// only (4.A); the matching loop never re-truncates an intermediate result.
func floorTo(d Decimal, places int32) Decimal {
	return d.RoundFloor(places)
}
