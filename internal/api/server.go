// Package api is the service façade (§4.H): it maps the five named
// operations of §6 onto Registry and OrderBook calls, exposed over HTTP
// since the spec delegates request framing to an external collaborator and
// the original_source/src/main.rs crate (jsonrpc_http_server) has no direct
// Go equivalent in the example pack.
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/nullorigin/matchbook/engine"
)

// Server wires the Registry to an HTTP router with CORS locked to a single
// origin (§6: the source restricts CORS to the "null" origin).
type Server struct {
	registry     *engine.Registry
	logger       *zap.Logger
	corsOrigin   string
	router       *mux.Router
	defaultBase  int32
	defaultQuote int32
}

// NewServer builds a Server and its route table. defaultFixed is used by
// create_order_book when the request omits explicit scale fields.
func NewServer(registry *engine.Registry, logger *zap.Logger, corsOrigin string, defaultFixed engine.Fixed) *Server {
	s := &Server{
		registry:     registry,
		logger:       logger,
		corsOrigin:   corsOrigin,
		router:       mux.NewRouter(),
		defaultBase:  defaultFixed.BaseScale,
		defaultQuote: defaultFixed.QuoteScale,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.HandleFunc("/instruments", s.handleList).Methods(http.MethodGet)
	s.router.HandleFunc("/instruments/{code}", s.handleCreateOrderBook).Methods(http.MethodPost)
	s.router.HandleFunc("/instruments/{code}", s.handleRemoveOrderBook).Methods(http.MethodDelete)
	s.router.HandleFunc("/instruments/{code}", s.handleOrderBook).Methods(http.MethodGet)
	s.router.HandleFunc("/instruments/{code}/orders", s.handleSubmitOrder).Methods(http.MethodPost)
}

// Handler returns the CORS-wrapped router, restricted to corsOrigin (the
// §6 default is the literal "null" origin, matching the source's
// AccessControlAllowOrigin::Null).
func (s *Server) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{s.corsOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(s.router)
}
