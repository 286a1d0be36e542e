package api

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nullorigin/matchbook/engine"
)

// flexDecimal accepts either a JSON number or a JSON decimal string (§9 open
// question 2: the source's f64 ingress can lose precision before
// truncation; a decimal string bypasses that hop entirely, while a plain
// number is still accepted for compatibility).
type flexDecimal struct {
	decimal.Decimal
}

func (f *flexDecimal) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return fmt.Errorf("invalid decimal string %q: %w", s, err)
		}
		f.Decimal = d
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected a decimal string or number: %w", err)
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return fmt.Errorf("invalid decimal number %s: %w", n, err)
	}
	f.Decimal = d
	return nil
}

// createOrderBookRequest is the body for POST /instruments/{code}. Both
// scale fields are optional; omitted fields fall back to the service's
// configured default (§9 open question 5 — Fixed stays configurable rather
// than hardcoded).
type createOrderBookRequest struct {
	BaseScale  *int32 `json:"base_scale"`
	QuoteScale *int32 `json:"quote_scale"`
}

// submitOrderRequest is the body for POST /instruments/{code}/orders. Field
// names are part of the §6 contract.
type submitOrderRequest struct {
	Direction engine.Direction `json:"direction"`
	ID        uint64           `json:"id"`
	Price     flexDecimal      `json:"price"`
	Volume    flexDecimal      `json:"volume"`
}

// statusResponse is the {"status": "success"|"failed"} shape for
// create_order_book / remove_order_book (§6).
type statusResponse struct {
	Status string `json:"status"`
}

func statusOf(ok bool) statusResponse {
	if ok {
		return statusResponse{Status: "success"}
	}
	return statusResponse{Status: "failed"}
}

// errorResponse carries a rejection's human-readable message; the §7 kind
// is conveyed only by the HTTP status the handler chooses.
type errorResponse struct {
	Error string `json:"error"`
}
