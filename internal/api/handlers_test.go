package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nullorigin/matchbook/engine"
)

func newTestServer() *Server {
	return NewServer(engine.NewRegistry(), zap.NewNop(), "null", engine.DefaultFixed)
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestCreateOrderBookReportsNewlyInserted(t *testing.T) {
	s := newTestServer()

	rec := doJSON(t, s, http.MethodPost, "/instruments/cet_eos", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp statusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)

	rec = doJSON(t, s, http.MethodPost, "/instruments/cet_eos", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "failed", resp.Status)
}

func TestListReturnsSeededInstruments(t *testing.T) {
	s := newTestServer()
	doJSON(t, s, http.MethodPost, "/instruments/cet_eos", nil)
	doJSON(t, s, http.MethodPost, "/instruments/otc_eos", nil)

	rec := doJSON(t, s, http.MethodGet, "/instruments", nil)
	var codes []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &codes))
	assert.Equal(t, []string{"cet_eos", "otc_eos"}, codes)
}

func TestOrderBookUnknownInstrumentIs404(t *testing.T) {
	s := newTestServer()
	rec := doJSON(t, s, http.MethodGet, "/instruments/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitOrderExactMatch(t *testing.T) {
	s := newTestServer()
	doJSON(t, s, http.MethodPost, "/instruments/cet_eos", nil)

	rec := doJSON(t, s, http.MethodPost, "/instruments/cet_eos/orders", submitOrderRequest{
		Direction: engine.Ask,
		ID:        1,
		Price:     flexDecimal{decimal.RequireFromString("0.666")},
		Volume:    flexDecimal{decimal.RequireFromString("1000")},
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/instruments/cet_eos/orders", submitOrderRequest{
		Direction: engine.Bid,
		ID:        2,
		Price:     flexDecimal{decimal.RequireFromString("0.666")},
		Volume:    flexDecimal{decimal.RequireFromString("1000")},
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	// engine.Volume only marshals (as an 8-digit string), so the fill
	// events are decoded into a local shape rather than []engine.Fill.
	var fills []struct {
		ID        uint64 `json:"id"`
		Remaining string `json:"remaining_volume"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fills))
	require.Len(t, fills, 2)
	assert.EqualValues(t, 1, fills[0].ID)
	assert.EqualValues(t, 2, fills[1].ID)
}

func TestSubmitOrderAcceptsDecimalStringOrNumber(t *testing.T) {
	s := newTestServer()
	doJSON(t, s, http.MethodPost, "/instruments/cet_eos", nil)

	body := []byte(`{"direction":"Ask","id":1,"price":0.5,"volume":"10"}`)
	req := httptest.NewRequest(http.MethodPost, "/instruments/cet_eos/orders", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSubmitOrderRejectsBadDirection(t *testing.T) {
	s := newTestServer()
	doJSON(t, s, http.MethodPost, "/instruments/cet_eos", nil)

	body := []byte(`{"direction":"Sell","id":1,"price":"0.5","volume":"10"}`)
	req := httptest.NewRequest(http.MethodPost, "/instruments/cet_eos/orders", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

