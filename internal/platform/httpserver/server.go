package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	eventcatalog "senkron/contexts/temporal-analysis/event-catalog-service"
	catalogerrors "senkron/contexts/temporal-analysis/event-catalog-service/domain/errors"
	cataloghttp "senkron/contexts/temporal-analysis/event-catalog-service/transport/http"
	prediction "senkron/contexts/temporal-analysis/prediction-service"
	predictionerrors "senkron/contexts/temporal-analysis/prediction-service/domain/errors"
	predictionhttp "senkron/contexts/temporal-analysis/prediction-service/transport/http"
	timeline "senkron/contexts/temporal-analysis/timeline-service"
	timelineerrors "senkron/contexts/temporal-analysis/timeline-service/domain/errors"
	timelinehttp "senkron/contexts/temporal-analysis/timeline-service/transport/http"
	"senkron/internal/platform/metrics"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "senkron/internal/platform/httpserver/docs"
)

// maxImportBody bounds JSON batch uploads.
const maxImportBody = 4 << 20

type Server struct {
	mux        *http.ServeMux
	logger     *slog.Logger
	addr       string
	timeline   timeline.Module
	catalog    eventcatalog.Module
	prediction prediction.Module
	metrics    *metrics.Registry
	started    time.Time
	version    string
}

func New(
	timelineModule timeline.Module,
	catalogModule eventcatalog.Module,
	predictionModule prediction.Module,
	registry *metrics.Registry,
	logger *slog.Logger,
	addr string,
	version string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}
	if version == "" {
		version = "dev"
	}

	s := &Server{
		mux:        http.NewServeMux(),
		logger:     logger,
		addr:       addr,
		timeline:   timelineModule,
		catalog:    catalogModule,
		prediction: predictionModule,
		metrics:    registry,
		started:    time.Now().UTC(),
		version:    version,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the routed mux, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	if s.metrics != nil {
		s.mux.Handle("GET /metrics", s.metrics.Handler())
	}

	s.mux.HandleFunc("GET /version", s.instrument("/version", s.handleVersion))
	s.mux.HandleFunc("GET /healthz/details", s.instrument("/healthz/details", s.handleHealthDetails))

	s.mux.HandleFunc("GET /api/v1/events", s.instrument("/api/v1/events", s.handleListEvents))
	s.mux.HandleFunc("POST /api/v1/events/import", s.instrument("/api/v1/events/import", s.handleImportEvents))

	s.mux.HandleFunc("GET /api/v1/timeline/triggers", s.instrument("/api/v1/timeline/triggers", s.handleDiscoverTriggers))
	s.mux.HandleFunc("GET /api/v1/timeline/clusters", s.instrument("/api/v1/timeline/clusters", s.handleAnalyzeClusters))
	s.mux.HandleFunc("GET /api/v1/timeline/runs", s.instrument("/api/v1/timeline/runs", s.handleListScanRuns))

	s.mux.HandleFunc("GET /api/v1/ephemeris/positions", s.instrument("/api/v1/ephemeris/positions", s.handleEphemerisPositions))
	s.mux.HandleFunc("GET /api/v1/ephemeris/houses", s.instrument("/api/v1/ephemeris/houses", s.handleEphemerisHouses))
	s.mux.HandleFunc("POST /api/v1/predict/unified", s.instrument("/api/v1/predict/unified", s.handleUnifiedScore))
}

// instrument wraps a handler with the per-route request counter.
func (s *Server) instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	if s.metrics == nil {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(recorder, r)
		s.metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

type versionResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Started string `json:"started"`
	Uptime  string `json:"uptime"`
}

type capabilityDTO struct {
	Name     string   `json:"name"`
	Ready    bool     `json:"ready"`
	Features []string `json:"features"`
	Notes    string   `json:"notes,omitempty"`
}

type healthDetailsResponse struct {
	Status  string          `json:"status"`
	Modules []capabilityDTO `json:"modules"`
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, versionResponse{
		Service: "senkron",
		Version: s.version,
		Started: s.started.Format(time.RFC3339),
		Uptime:  time.Since(s.started).Round(time.Second).String(),
	})
}

func (s *Server) handleHealthDetails(w http.ResponseWriter, r *http.Request) {
	modules := []capabilityDTO{
		capabilityFromTimeline(s.timeline),
		capabilityFromCatalog(s.catalog),
		capabilityFromPrediction(s.prediction),
	}

	status := "ok"
	httpStatus := http.StatusOK
	for _, module := range modules {
		if !module.Ready {
			status = "degraded"
			httpStatus = http.StatusServiceUnavailable
		}
	}
	writeJSON(w, httpStatus, healthDetailsResponse{Status: status, Modules: modules})
}

func capabilityFromTimeline(module timeline.Module) capabilityDTO {
	capability := module.Service.Describe()
	return capabilityDTO{
		Name:     capability.Name,
		Ready:    capability.Ready,
		Features: capability.Features,
		Notes:    capability.Notes,
	}
}

func capabilityFromCatalog(module eventcatalog.Module) capabilityDTO {
	capability := module.Service.Describe()
	return capabilityDTO{
		Name:     capability.Name,
		Ready:    capability.Ready,
		Features: capability.Features,
		Notes:    capability.Notes,
	}
}

func capabilityFromPrediction(module prediction.Module) capabilityDTO {
	capability := module.Service.Describe()
	return capabilityDTO{
		Name:     capability.Name,
		Ready:    capability.Ready,
		Features: capability.Features,
		Notes:    capability.Notes,
	}
}

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := cataloghttp.ListEventsQuery{
		Category: query.Get("category"),
		From:     query.Get("from"),
		To:       query.Get("to"),
	}
	if raw := query.Get("min_weight"); raw != "" {
		minWeight, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeCatalogError(w, http.StatusBadRequest, "invalid_min_weight", "min_weight must be a number")
			return
		}
		req.MinWeight = minWeight
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeCatalogError(w, http.StatusBadRequest, "invalid_limit", "limit must be an integer")
			return
		}
		req.Limit = limit
	}

	resp, err := s.catalog.Handler.ListEventsHandler(r.Context(), req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleImportEvents(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImportBody))
	if err != nil {
		writeCatalogError(w, http.StatusRequestEntityTooLarge, "payload_too_large", "import payload exceeds the size limit")
		return
	}

	resp, err := s.catalog.Handler.ImportBatchHandler(r.Context(), payload)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDiscoverTriggers(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeDiscoverQuery(w, r)
	if !ok {
		return
	}

	resp, err := s.timeline.Handler.DiscoverTriggersHandler(r.Context(), req)
	if err != nil {
		writeTimelineDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAnalyzeClusters(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeDiscoverQuery(w, r)
	if !ok {
		return
	}

	resp, err := s.timeline.Handler.AnalyzeClustersHandler(r.Context(), req)
	if err != nil {
		writeTimelineDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) decodeDiscoverQuery(w http.ResponseWriter, r *http.Request) (timelinehttp.DiscoverTriggersRequest, bool) {
	query := r.URL.Query()
	req := timelinehttp.DiscoverTriggersRequest{
		WindowAStart: query.Get("window_a_start"),
		WindowAEnd:   query.Get("window_a_end"),
		WindowBStart: query.Get("window_b_start"),
		WindowBEnd:   query.Get("window_b_end"),
	}

	if raw := query.Get("min_score"); raw != "" {
		minScore, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeTimelineError(w, http.StatusBadRequest, "invalid_min_score", "min_score must be a number")
			return timelinehttp.DiscoverTriggersRequest{}, false
		}
		req.MinScore = &minScore
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeTimelineError(w, http.StatusBadRequest, "invalid_limit", "limit must be an integer")
			return timelinehttp.DiscoverTriggersRequest{}, false
		}
		req.Limit = limit
	}
	return req, true
}

func (s *Server) handleListScanRuns(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeTimelineError(w, http.StatusBadRequest, "invalid_limit", "limit must be an integer")
			return
		}
		limit = parsed
	}

	resp, err := s.timeline.Handler.ListScanRunsHandler(r.Context(), limit)
	if err != nil {
		writeTimelineDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleEphemerisPositions(w http.ResponseWriter, r *http.Request) {
	resp, err := s.prediction.Handler.PositionsHandler(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		writePredictionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleEphemerisHouses(w http.ResponseWriter, r *http.Request) {
	resp, err := s.prediction.Handler.HousesHandler(r.URL.Query().Get("ascendant"))
	if err != nil {
		writePredictionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUnifiedScore(w http.ResponseWriter, r *http.Request) {
	var req predictionhttp.UnifiedScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePredictionError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.prediction.Handler.UnifiedScoreHandler(r.Context(), req)
	if err != nil {
		writePredictionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeTimelineDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, timelineerrors.ErrInvalidWindow):
		writeTimelineError(w, http.StatusBadRequest, "invalid_window", err.Error())
	case errors.Is(err, timelineerrors.ErrNoPatterns):
		writeTimelineError(w, http.StatusNotFound, "no_patterns", err.Error())
	default:
		writeTimelineError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeCatalogDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalogerrors.ErrInvalidBatch):
		writeCatalogError(w, http.StatusUnprocessableEntity, "invalid_batch", err.Error())
	case errors.Is(err, catalogerrors.ErrInvalidFilter):
		writeCatalogError(w, http.StatusBadRequest, "invalid_filter", err.Error())
	case errors.Is(err, catalogerrors.ErrSourceUnavailable):
		writeCatalogError(w, http.StatusServiceUnavailable, "source_unavailable", err.Error())
	default:
		writeCatalogError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writePredictionDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, predictionerrors.ErrInvalidRange),
		errors.Is(err, predictionerrors.ErrNegativeDistance),
		errors.Is(err, predictionerrors.ErrInvalidWeights),
		errors.Is(err, predictionerrors.ErrInvalidDate),
		errors.Is(err, predictionerrors.ErrInvalidDegrees):
		writePredictionError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writePredictionError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeTimelineError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, timelinehttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeCatalogError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, cataloghttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writePredictionError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, predictionhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
