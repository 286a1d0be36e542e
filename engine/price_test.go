package engine

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPriceLessSameDirection(t *testing.T) {
	lower := NewPrice(Ask, decimal.NewFromFloat(0.5))
	higher := NewPrice(Ask, decimal.NewFromFloat(0.6))

	if !lower.Less(higher) {
		t.Errorf("expected lower ask price to have higher priority (Less) than higher ask price")
	}
	if higher.Less(lower) {
		t.Errorf("expected higher ask price not to have higher priority than lower ask price")
	}

	lowerBid := NewPrice(Bid, decimal.NewFromFloat(0.5))
	higherBid := NewPrice(Bid, decimal.NewFromFloat(0.6))

	if !higherBid.Less(lowerBid) {
		t.Errorf("expected higher bid price to have higher priority (Less) than lower bid price")
	}
	if lowerBid.Less(higherBid) {
		t.Errorf("expected lower bid price not to have higher priority than higher bid price")
	}
}

func TestPriceLessMixedDirectionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected comparing mixed-direction prices to panic")
		}
	}()

	ask := NewPrice(Ask, decimal.NewFromFloat(0.5))
	bid := NewPrice(Bid, decimal.NewFromFloat(0.5))
	_ = ask.Less(bid)
}

func TestPriceFloorTo(t *testing.T) {
	p := NewPrice(Ask, decimal.RequireFromString("0.666666661"))
	floored := p.FloorTo(6)

	want := decimal.RequireFromString("0.666666")
	if !floored.Value.Equal(want) {
		t.Errorf("FloorTo(6) = %s, want %s", floored.Value, want)
	}
}

func TestPriceMarshalJSONAlwaysEightDigits(t *testing.T) {
	p := NewPrice(Ask, decimal.RequireFromString("0.666"))
	b, err := p.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(b) != `"0.66600000"` {
		t.Errorf("MarshalJSON = %s, want \"0.66600000\"", b)
	}
}
