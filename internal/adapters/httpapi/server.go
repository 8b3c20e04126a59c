// Package httpapi exposes the fixture generators over HTTP: one route
// per generation request, plus health and Prometheus metrics endpoints.
package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MasWag/hyppau-fixtures/internal/adapters/redis"
	"github.com/MasWag/hyppau-fixtures/pkg/automaton"
	"github.com/MasWag/hyppau-fixtures/pkg/generator"
)

// Metrics holds the Prometheus instruments for the API.
type Metrics struct {
	Generated *prometheus.CounterVec
	Duration  *prometheus.HistogramVec
}

// NewMetrics registers the API metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Generated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hyppau_fixtures_generated_total",
				Help: "Total number of generated fixture documents",
			},
			[]string{"kind"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "hyppau_fixtures_generation_seconds",
				Help: "Duration of fixture generation",
			},
			[]string{"kind"},
		),
	}
	reg.MustRegister(m.Generated, m.Duration)
	return m
}

// Server handles fixture generation requests.
type Server struct {
	log     *slog.Logger
	cache   *redis.Cache // optional
	metrics *Metrics
}

// NewHandler builds the HTTP handler. The cache may be nil, in which
// case every request generates fresh. The registry backs the /metrics
// endpoint.
func NewHandler(log *slog.Logger, cache *redis.Cache, reg *prometheus.Registry) http.Handler {
	s := &Server{
		log:     log,
		cache:   cache,
		metrics: NewMetrics(reg),
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Post("/generate/{kind}", s.handleGenerate)
	r.Get("/fixtures", s.handleList)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// handleGenerate serves POST /generate/{kind}. The body is the generator
// parameter object; the response is the encoded document.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	kind, err := generator.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	var params generator.Params
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		s.log.Warn("generate: invalid request body", "error", err)
		return
	}

	if s.cache != nil {
		cached, err := s.cache.Get(r.Context(), params.CacheKey(kind))
		if err == nil {
			s.log.Debug("generate: cache hit", "kind", kind)
			writeDocument(w, cached)
			return
		}
		if !errors.Is(err, redis.ErrNotCached) {
			s.log.Warn("generate: cache lookup failed", "error", err)
		}
	}

	start := time.Now()
	doc, err := generator.Generate(kind, params)
	if err != nil {
		var cfgErr *generator.ConfigError
		if errors.As(err, &cfgErr) {
			http.Error(w, cfgErr.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		s.log.Error("generate failed", "kind", kind, "error", err)
		return
	}

	var buf bytes.Buffer
	if err := automaton.Encode(&buf, doc); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		s.log.Error("encode failed", "kind", kind, "error", err)
		return
	}

	s.metrics.Generated.WithLabelValues(string(kind)).Inc()
	s.metrics.Duration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
	s.log.Info("generated fixture", "kind", kind, "states", doc.NumStates(), "transitions", len(doc.Transitions))

	if s.cache != nil {
		if err := s.cache.Put(r.Context(), params.CacheKey(kind), buf.Bytes()); err != nil {
			s.log.Warn("generate: cache store failed", "error", err)
		}
	}

	writeDocument(w, buf.Bytes())
}

// handleList serves GET /fixtures: the keys of cached documents.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	keys := []string{}
	if s.cache != nil {
		var err error
		keys, err = s.cache.List(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			s.log.Error("list fixtures failed", "error", err)
			return
		}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(keys); err != nil {
		s.log.Error("list fixtures: encode failed", "error", err)
	}
}

func writeDocument(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
