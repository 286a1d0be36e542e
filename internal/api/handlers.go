package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/nullorigin/matchbook/engine"
)

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r, "list")
	codes := s.registry.List()
	log.Info("list", zap.Int("count", len(codes)))
	writeJSON(w, http.StatusOK, codes)
}

func (s *Server) handleCreateOrderBook(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	log := s.requestLogger(r, "create_order_book").With(zap.String("code", code))

	var req createOrderBookRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn("malformed create_order_book body", zap.Error(err))
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	base, quote := s.defaultFixed()
	if req.BaseScale != nil {
		base = *req.BaseScale
	}
	if req.QuoteScale != nil {
		quote = *req.QuoteScale
	}

	created := s.registry.Create(code, engine.Fixed{BaseScale: base, QuoteScale: quote})
	log.Info("create_order_book", zap.Bool("created", created))
	writeJSON(w, http.StatusOK, statusOf(created))
}

func (s *Server) handleRemoveOrderBook(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	log := s.requestLogger(r, "remove_order_book").With(zap.String("code", code))

	removed := s.registry.Remove(code)
	log.Info("remove_order_book", zap.Bool("removed", removed))
	writeJSON(w, http.StatusOK, statusOf(removed))
}

func (s *Server) handleOrderBook(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	log := s.requestLogger(r, "order_book").With(zap.String("code", code))

	handle := s.registry.Get(code)
	if handle == nil {
		log.Warn("unknown instrument")
		writeError(w, http.StatusNotFound, engineUnknownInstrument(code))
		return
	}

	handle.Lock()
	snapshot := handle.Book.Snapshot()
	handle.Unlock()

	writeJSON(w, http.StatusOK, snapshot)
}

func (s *Server) handleSubmitOrder(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	log := s.requestLogger(r, "submit_order").With(zap.String("code", code))

	var req submitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("malformed submit_order body", zap.Error(err))
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Direction != engine.Ask && req.Direction != engine.Bid {
		log.Warn("malformed submit_order direction", zap.String("direction", string(req.Direction)))
		writeError(w, http.StatusBadRequest, errInvalidDirection)
		return
	}

	handle := s.registry.Get(code)
	if handle == nil {
		log.Warn("unknown instrument")
		writeError(w, http.StatusNotFound, engineUnknownInstrument(code))
		return
	}

	handle.Lock()
	defer handle.Unlock()

	if err := handle.Book.Add(req.Direction, req.ID, req.Price.Decimal, req.Volume.Decimal); err != nil {
		log.Warn("rejected submit_order", zap.Error(err))
		writeError(w, http.StatusBadRequest, err)
		return
	}

	fills := handle.Book.Trade()
	log.Info("submit_order", zap.Uint64("id", req.ID), zap.Int("fills", len(fills)))
	writeJSON(w, http.StatusOK, fills)
}

// requestLogger tags every inbound operation with a correlation id, the
// ambient-observability concern itziklerner-pag-b25's services establish
// per request.
func (s *Server) requestLogger(r *http.Request, op string) *zap.Logger {
	return s.logger.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("op", op),
		zap.String("remote_addr", r.RemoteAddr),
	)
}

func (s *Server) defaultFixed() (base, quote int32) {
	return s.defaultBase, s.defaultQuote
}
