package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Achintya1800/lexdoc"
)

// Resource limits for the search and answer endpoints.
const (
	DefaultTopK = 10
	MaxTopK     = 50
)

// DefaultShutdownTimeout bounds graceful shutdown in Close.
const DefaultShutdownTimeout = 5 * time.Second

// Server exposes scraping and search over a JSON HTTP API.
type Server struct {
	ln     net.Listener
	server *http.Server
	router chi.Router

	// Bind address in host:port form.
	Addr string

	// Services backing the API endpoints.
	Searcher lexdoc.Searcher
	Scraper  lexdoc.Scraper
	Answerer lexdoc.Answerer

	Logger *slog.Logger
}

// NewServer creates a Server with its routes registered. The caller
// assigns the services and address before Open.
func NewServer() *Server {
	s := &Server{
		router: chi.NewRouter(),
		Logger: slog.Default(),
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Post("/scrape", s.handleScrape)
	s.router.Post("/search", s.handleSearch)
	s.router.Post("/answer", s.handleAnswer)

	s.server = &http.Server{
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute, // scrape runs can be slow
	}

	return s
}

// Open begins listening on Addr. It returns once the listener is bound;
// requests are served on a background goroutine until Close.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln

	go func() {
		if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Logger.Error("http server terminated", "error", err)
		}
	}()

	return nil
}

// URL returns the base URL the server is reachable at. Only valid after
// Open.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// ServeHTTP makes the server usable as a handler in tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	result, err := s.Scraper.Scrape(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type searchRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k"`
}

type searchResponse struct {
	Query   string                  `json:"query"`
	Results []lexdoc.RankedDocument `json:"results"`
}

// decodeSearchRequest parses and validates the shared body of the search
// and answer endpoints.
func decodeSearchRequest(r *http.Request) (*searchRequest, error) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, lexdoc.Errorf(lexdoc.EINVALID, "invalid request body")
	}
	if req.Query == "" {
		return nil, lexdoc.Errorf(lexdoc.EINVALID, "query is required")
	}
	if req.TopK == 0 {
		req.TopK = DefaultTopK
	}
	if req.TopK < 1 || req.TopK > MaxTopK {
		return nil, lexdoc.Errorf(lexdoc.EINVALID, "top_k must be between 1 and %d", MaxTopK)
	}
	return &req, nil
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	req, err := decodeSearchRequest(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	results, err := s.Searcher.Search(r.Context(), req.Query, req.TopK)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if results == nil {
		results = []lexdoc.RankedDocument{}
	}

	writeJSON(w, http.StatusOK, searchResponse{Query: req.Query, Results: results})
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	req, err := decodeSearchRequest(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if s.Answerer == nil {
		s.writeError(w, r, lexdoc.Errorf(lexdoc.EUNAVAILABLE, "answer generation is not configured"))
		return
	}

	answer, err := s.Answerer.Answer(r.Context(), req.Query, req.TopK)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, answer)
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps application error codes to HTTP status codes and logs
// internal errors.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := lexdoc.ErrorCode(err)
	status := errorStatus(code)
	if status == http.StatusInternalServerError {
		s.Logger.Error("internal error", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, errorResponse{Error: lexdoc.ErrorMessage(err)})
}

func errorStatus(code string) int {
	switch code {
	case lexdoc.EINVALID:
		return http.StatusBadRequest
	case lexdoc.ENOTFOUND:
		return http.StatusNotFound
	case lexdoc.ECONFLICT:
		return http.StatusConflict
	case lexdoc.EUNAVAILABLE:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
