package engine

import "github.com/shopspring/decimal"

// Fill is one (id, remaining_volume) event produced by a matching pass
// (§4.F). A given order id may appear multiple times across separate
// submissions. Within a single Trade call, an order that is matched against
// several counter-orders appears once per matching step (its remaining
// volume after that step); once an event reports zero, the order has been
// popped and does not appear again.
type Fill struct {
	ID        uint64 `json:"id"`
	Remaining Volume `json:"remaining_volume"`
}

// DepthLevel is one aggregated price level, used by the ambient depth
// snapshot/streaming feature (not the matching loop itself).
type DepthLevel struct {
	Price  Price  `json:"price"`
	Total  Volume `json:"total"`
	Orders int    `json:"orders"`
}

// OrderBook pairs an ask Book and a bid Book under one Fixed scale
// configuration and runs the matching loop between them (§3, §4.F).
type OrderBook struct {
	Fixed Fixed
	ask   *Book
	bid   *Book
}

// NewOrderBook constructs an empty OrderBook with the given scale
// configuration.
func NewOrderBook(fixed Fixed) *OrderBook {
	return &OrderBook{
		Fixed: fixed,
		ask:   newBook(Ask),
		bid:   newBook(Bid),
	}
}

// Add normalizes price (floored to QuoteScale) and volume (floored to
// BaseScale) and inserts the order into the chosen side's Book (§4.F). It
// never matches; call Trade to run the matching loop.
func (ob *OrderBook) Add(direction Direction, id uint64, price, volume decimal.Decimal) error {
	if volume.IsNegative() {
		return ErrNegativeVolume
	}

	p := NewPrice(direction, price).FloorTo(ob.Fixed.QuoteScale)
	v, err := NewVolume(volume)
	if err != nil {
		return err
	}
	v = v.FloorTo(ob.Fixed.BaseScale)

	switch direction {
	case Ask:
		ob.ask.insert(id, p, v)
	case Bid:
		ob.bid.insert(id, p, v)
	default:
		return newMalformedInput("direction must be Ask or Bid")
	}
	return nil
}

// IsMatching reports whether both sides are non-empty and the best bid
// meets or exceeds the best ask (§4.F).
func (ob *OrderBook) IsMatching() bool {
	bidPrice, bidOK := ob.bid.bestPrice()
	askPrice, askOK := ob.ask.bestPrice()
	if !bidOK || !askOK {
		return false
	}
	return bidPrice.Value.GreaterThanOrEqual(askPrice.Value)
}

// Trade runs the matching loop until IsMatching is false, returning the
// post-trade state of every order touched in the order events occurred
// (§4.F). Each iteration pops at least one head order from one side or
// the other, so the loop terminates in a number of steps bounded by the
// total number of resting orders on both sides at call time.
func (ob *OrderBook) Trade() []Fill {
	var result []Fill

	for ob.IsMatching() {
		aID, aVol, aOK := ob.ask.bestHead()
		bID, bVol, bOK := ob.bid.bestHead()
		if !aOK || !bOK {
			break
		}

		d := aVol.Decimal().Sub(bVol.Decimal())

		switch {
		case d.IsZero():
			result = append(result, Fill{ID: aID, Remaining: zeroVolume})
			result = append(result, Fill{ID: bID, Remaining: zeroVolume})
			ob.ask.popBestHead()
			ob.bid.popBestHead()

		case d.IsNegative():
			remaining, _ := NewVolume(d.Neg())
			result = append(result, Fill{ID: aID, Remaining: zeroVolume})
			result = append(result, Fill{ID: bID, Remaining: remaining})
			ob.ask.popBestHead()
			ob.bid.decrementBestHead(remaining)

		default:
			remaining, _ := NewVolume(d)
			result = append(result, Fill{ID: aID, Remaining: remaining})
			result = append(result, Fill{ID: bID, Remaining: zeroVolume})
			ob.ask.decrementBestHead(remaining)
			ob.bid.popBestHead()
		}
	}

	return result
}

// Snapshot is the serializable view of an OrderBook returned by the
// order_book operation (§6): the scale configuration plus both sides'
// depth, mirroring original_source/src/lib.rs which serializes Fixed
// alongside ask/bid rather than only the two sides.
type Snapshot struct {
	Fixed Fixed        `json:"fixed"`
	Ask   []DepthLevel `json:"ask"`
	Bid   []DepthLevel `json:"bid"`
}

// Snapshot returns the full-depth serializable view of the book.
func (ob *OrderBook) Snapshot() Snapshot {
	return Snapshot{
		Fixed: ob.Fixed,
		Ask:   ob.ask.depth(int(^uint(0) >> 1)),
		Bid:   ob.bid.depth(int(^uint(0) >> 1)),
	}
}
