package server

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/trigg3rX/triggerx-cql/pkg/datastore/cache"
	"github.com/trigg3rX/triggerx-cql/pkg/logging"
)

// Datastore is the part of the datastore service the server exposes.
type Datastore interface {
	HealthCheck(ctx context.Context) error
	Cache() *cache.PreparedStatementCache
}

type Server struct {
	router     *mux.Router
	cors       *cors.Cors
	datastore  Datastore
	gatherer   prometheus.Gatherer
	logger     logging.Logger
	httpServer *http.Server
}

type cacheEntry struct {
	Statement   string    `json:"statement"`
	Keyspace    string    `json:"keyspace"`
	ID          string    `json:"id"`
	BindColumns []string  `json:"bind_columns"`
	PreparedAt  time.Time `json:"prepared_at"`
}

type cacheResponse struct {
	Entries    int          `json:"entries"`
	Statements []cacheEntry `json:"statements"`
}

func NewServer(addr string, datastore Datastore, gatherer prometheus.Gatherer, logger logging.Logger) *Server {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept", "Origin"},
	})

	s := &Server{
		router:    mux.NewRouter(),
		cors:      corsHandler,
		datastore: datastore,
		gatherer:  gatherer,
		logger:    logger,
	}

	s.routes()
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *Server) routes() {
	s.router.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/cache", s.handleCache).Methods(http.MethodGet)
}

// Handler returns the router wrapped with the CORS handler.
func (s *Server) Handler() http.Handler {
	return s.cors.Handler(s.router)
}

// Start blocks serving until Shutdown is called. After Shutdown it returns
// nil immediately.
func (s *Server) Start() error {
	s.logger.Infof("Starting server on %s", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.datastore.HealthCheck(ctx); err != nil {
		s.logger.Warnf("Health check failed: %v", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy", "error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCache(w http.ResponseWriter, r *http.Request) {
	c := s.datastore.Cache()
	if c == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "no active session"})
		return
	}

	keys := c.Keys()
	response := cacheResponse{Statements: make([]cacheEntry, 0, len(keys))}
	for _, key := range keys {
		handle, ok := c.Get(key)
		if !ok {
			continue
		}
		entry := cacheEntry{
			Statement:   handle.Statement(),
			Keyspace:    handle.Keyspace(),
			ID:          hex.EncodeToString(handle.ID()),
			BindColumns: []string{},
			PreparedAt:  handle.PreparedAt(),
		}
		for _, col := range handle.BindColumns() {
			entry.BindColumns = append(entry.BindColumns, col.Name)
		}
		response.Statements = append(response.Statements, entry)
	}
	response.Entries = len(response.Statements)

	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
