package engine

import "fmt"

// Price is a side-relative price key (§3, §4.B). Two Ask prices compare so
// the lower value sorts first (best ask is lowest); two Bid prices compare
// so the higher value sorts first (best bid is highest). Comparing prices
// of different directions is a programmer error: each Book stores only one
// direction's prices, so the engine never needs to and never does compare
// across sides.
type Price struct {
	Direction Direction
	Value     Decimal
}

// NewPrice constructs a Price, truncating nothing — callers floor the value
// via FloorTo before inserting into a Book.
func NewPrice(direction Direction, value Decimal) Price {
	return Price{Direction: direction, Value: value}
}

// FloorTo truncates the price's value toward -infinity to places fractional
// digits, returning a new Price (4.A, 4.B).
func (p Price) FloorTo(places int32) Price {
	return Price{Direction: p.Direction, Value: floorTo(p.Value, places)}
}

// Less reports whether p has strictly higher matching priority than other,
// i.e. p sorts before other in a Book (lower ask, or higher bid).
// Both must share the same Direction; comparing mixed directions panics
// (engine.invariantViolation) since the two books are never merged into one
// ordered set.
func (p Price) Less(other Price) bool {
	if p.Direction != other.Direction {
		invariantViolation(fmt.Sprintf("compared %s price against %s price", p.Direction, other.Direction))
	}
	switch p.Direction {
	case Ask:
		// Best ask is lowest value, so priority order is ascending by value.
		return p.Value.LessThan(other.Value)
	case Bid:
		// Best bid is highest value, so priority order is descending by value.
		return p.Value.GreaterThan(other.Value)
	default:
		invariantViolation("price with unset direction")
		return false
	}
}

// Equal reports whether p and other have the same direction and value.
func (p Price) Equal(other Price) bool {
	return p.Direction == other.Direction && p.Value.Equal(other.Value)
}

// MarshalJSON renders the price's value as a decimal string with exactly 8
// fractional digits (§6), independent of the book's own quote scale — this
// matches original_source/src/lib.rs's Price::serialize, which always
// formats with "{:.8}" regardless of the Fixed in effect.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.Value.StringFixed(8) + `"`), nil
}
