package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nullorigin/matchbook/engine"
)

var errInvalidDirection = errors.New("direction must be \"Ask\" or \"Bid\"")

func engineUnknownInstrument(code string) error {
	return engine.NewUnknownInstrumentError(code)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
