// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input ingestion, engine orchestration,
// output serialization. The API NEVER performs pricing logic.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rental-pricing/core/engine"
	"rental-pricing/core/input"
	"rental-pricing/core/output"
	"rental-pricing/internal/errors"
	"rental-pricing/internal/logging"
)

// Server is the API server
type Server struct {
	engine  *engine.Engine
	mux     *http.ServeMux
	version string
	log     *zap.Logger
}

// NewServer creates a new API server around a pricing engine
func NewServer(version string, eng *engine.Engine) *Server {
	s := &Server{
		engine:  eng,
		mux:     http.NewServeMux(),
		version: version,
		log:     logging.Named("api"),
	}

	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /quote", s.handleQuote)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleQuote handles POST /quote
func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := uuid.NewString()

	req, err := input.Decode(r.Body)
	if err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	quoteInput, err := req.ToQuoteInput()
	if err != nil {
		s.writeError(w, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
		return
	}

	breakdown, err := s.engine.Quote(quoteInput)
	if err != nil {
		status := http.StatusInternalServerError
		code := "ENGINE_ERROR"
		if errors.IsType(err, errors.TypeInput) {
			status = http.StatusBadRequest
			code = "VALIDATION_ERROR"
		}
		s.writeError(w, code, err.Error(), status)
		return
	}

	s.log.Info("quote computed",
		zap.String("request_id", requestID),
		zap.Int("nights", breakdown.Nights),
		zap.String("currency", breakdown.Currency.String()),
		zap.String("grand_total", breakdown.GrandTotal.StringFixed(2)))

	s.writeJSON(w, QuoteResponse{
		Breakdown: output.ForDisplay(breakdown, s.engine.Locale()),
		Metadata: ResponseMetadata{
			RequestID:     requestID,
			InputHash:     req.Hash(),
			EngineVersion: s.version,
			DurationMs:    time.Since(start).Milliseconds(),
		},
	}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "rental-pricing",
		"api_version": "v1",
	}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.log.Warn("request rejected", zap.String("code", code), zap.String("message", message))
	s.writeJSON(w, map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	}, status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the server
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, s)
}
