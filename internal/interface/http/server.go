// Package http implements the REST API for the mentoria platform:
// authentication, the matching lifecycle, admin approvals, and the
// engagement records kept over a mentorship's life.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mentoria-hub/mentoria-platform/internal/application/auth"
	"github.com/mentoria-hub/mentoria-platform/internal/application/command"
	"github.com/mentoria-hub/mentoria-platform/internal/application/query"
	"github.com/mentoria-hub/mentoria-platform/internal/domain/shared"
	"github.com/mentoria-hub/mentoria-platform/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// SERVER CONFIGURATION
// ══════════════════════════════════════════════════════════════════════════════

// Config contains HTTP server configuration.
type Config struct {
	// Host - address to bind (default: "0.0.0.0").
	Host string

	// Port - port to listen on (default: 8080).
	Port int

	// ReadTimeout - maximum duration for reading the entire request.
	ReadTimeout time.Duration

	// WriteTimeout - maximum duration for writing the response.
	WriteTimeout time.Duration

	// IdleTimeout - maximum duration for idle connections.
	IdleTimeout time.Duration

	// MaxHeaderBytes - maximum size of request headers.
	MaxHeaderBytes int
}

// DefaultConfig returns default server configuration.
func DefaultConfig() Config {
	return Config{
		Host:           "0.0.0.0",
		Port:           8080,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}
}

// Address returns the server address string.
func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ══════════════════════════════════════════════════════════════════════════════
// DEPENDENCIES
// ══════════════════════════════════════════════════════════════════════════════

// Pinger reports backing-store liveness for the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependencies contains all dependencies required by HTTP handlers.
type Dependencies struct {
	// Authentication
	Gate      *auth.Gate
	Registrar *auth.Registrar

	// Command handlers (CQRS write side)
	CreateRequest    *command.CreateMatchRequestHandler
	AcceptRequest    *command.AcceptMatchRequestHandler
	RejectRequest    *command.RejectMatchRequestHandler
	DeleteRequest    *command.DeleteMatchRequestHandler
	BulkMatch        *command.BulkMatchHandler
	ApproveAccount   *command.ApproveAccountHandler
	UpdateMentorship *command.UpdateMentorshipHandler
	Universities     *command.UniversityHandler
	Meetings         *command.MeetingHandler
	Certificates     *command.CertificateHandler

	// Query handlers (CQRS read side)
	PendingQueue    *query.PendingQueueHandler
	GetRequest      *query.GetRequestHandler
	Suggestions     *query.SuggestionsHandler
	Approvals       *query.ApprovalsHandler
	Mentorships     *query.MentorshipsHandler
	UniversityViews *query.UniversitiesHandler
	Engagement      *query.EngagementHandler

	// Readiness probes. Nil entries are skipped.
	Postgres Pinger
	Redis    Pinger

	// Logger
	Logger *logger.Logger
}

// ══════════════════════════════════════════════════════════════════════════════
// SERVER
// ══════════════════════════════════════════════════════════════════════════════

// Server represents the HTTP server.
type Server struct {
	config     Config
	deps       Dependencies
	httpServer *http.Server
	router     *http.ServeMux
	logger     *logger.Logger

	mu        sync.RWMutex
	running   bool
	startedAt time.Time
}

// NewServer creates a new HTTP server with the given configuration and
// dependencies.
func NewServer(config Config, deps Dependencies) *Server {
	s := &Server{
		config: config,
		deps:   deps,
		router: http.NewServeMux(),
		logger: deps.Logger,
	}

	if s.logger == nil {
		s.logger = logger.Default()
	}
	s.logger = s.logger.With(logger.Component("http.server"))

	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:           config.Address(),
		Handler:        s.buildMiddlewareChain(s.router),
		ReadTimeout:    config.ReadTimeout,
		WriteTimeout:   config.WriteTimeout,
		IdleTimeout:    config.IdleTimeout,
		MaxHeaderBytes: config.MaxHeaderBytes,
	}

	return s
}

// ══════════════════════════════════════════════════════════════════════════════
// ROUTING
// ══════════════════════════════════════════════════════════════════════════════

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// ─────────────────────────────────────────────────────────────────────────
	// Health & Status Endpoints
	// ─────────────────────────────────────────────────────────────────────────
	s.router.HandleFunc("GET /health", s.handleHealth)
	s.router.HandleFunc("GET /healthz", s.handleHealth) // Kubernetes alias
	s.router.HandleFunc("GET /ready", s.handleReady)

	// ─────────────────────────────────────────────────────────────────────────
	// Authentication
	// ─────────────────────────────────────────────────────────────────────────
	s.router.HandleFunc("POST /api/v1/auth/login", s.handleLogin)
	s.router.HandleFunc("POST /api/v1/auth/signup/mentor", s.handleSignupMentor)
	s.router.HandleFunc("POST /api/v1/auth/signup/mentee", s.handleSignupMentee)

	// ─────────────────────────────────────────────────────────────────────────
	// Matching
	// ─────────────────────────────────────────────────────────────────────────
	s.router.HandleFunc("POST /api/v1/match/bulk", s.admin(s.handleBulkMatch))
	s.router.HandleFunc("GET /api/v1/match/suggestions", s.admin(s.handleSuggestions))
	s.router.HandleFunc("POST /api/v1/match/requests", s.admin(s.handleCreateRequest))
	s.router.HandleFunc("GET /api/v1/match/requests", s.authenticated(s.handleListRequests))
	s.router.HandleFunc("GET /api/v1/match/requests/{id}", s.authenticated(s.handleGetRequest))
	s.router.HandleFunc("PUT /api/v1/match/requests/{id}", s.authenticated(s.handleUpdateRequest))
	s.router.HandleFunc("DELETE /api/v1/match/requests/{id}", s.admin(s.handleDeleteRequest))

	// ─────────────────────────────────────────────────────────────────────────
	// Admin Approvals
	// ─────────────────────────────────────────────────────────────────────────
	s.router.HandleFunc("GET /api/v1/admin/approvals", s.admin(s.handleListApprovals))
	s.router.HandleFunc("POST /api/v1/admin/approvals", s.admin(s.handleApproveAccount))

	// ─────────────────────────────────────────────────────────────────────────
	// Mentorships
	// ─────────────────────────────────────────────────────────────────────────
	s.router.HandleFunc("GET /api/v1/mentorships", s.authenticated(s.handleListMentorships))
	s.router.HandleFunc("GET /api/v1/mentorships/{id}", s.authenticated(s.handleGetMentorship))
	s.router.HandleFunc("PUT /api/v1/mentorships/{id}", s.authenticated(s.handleUpdateMentorship))

	// ─────────────────────────────────────────────────────────────────────────
	// Universities
	// ─────────────────────────────────────────────────────────────────────────
	s.router.HandleFunc("GET /api/v1/universities", s.handleListUniversities)
	s.router.HandleFunc("GET /api/v1/universities/{id}", s.handleGetUniversity)
	s.router.HandleFunc("POST /api/v1/universities", s.admin(s.handleCreateUniversity))
	s.router.HandleFunc("PUT /api/v1/universities/{id}", s.admin(s.handleUpdateUniversity))
	s.router.HandleFunc("DELETE /api/v1/universities/{id}", s.admin(s.handleDeleteUniversity))

	// ─────────────────────────────────────────────────────────────────────────
	// Meetings
	// ─────────────────────────────────────────────────────────────────────────
	s.router.HandleFunc("POST /api/v1/meetings", s.authenticated(s.handleRecordMeeting))
	s.router.HandleFunc("GET /api/v1/meetings", s.authenticated(s.handleListMeetings))
	s.router.HandleFunc("GET /api/v1/meetings/upcoming", s.authenticated(s.handleListUpcoming))
	s.router.HandleFunc("POST /api/v1/meetings/upcoming", s.authenticated(s.handleScheduleMeeting))
	s.router.HandleFunc("DELETE /api/v1/meetings/upcoming/{id}", s.authenticated(s.handleCancelUpcoming))
	s.router.HandleFunc("GET /api/v1/meetings/{id}", s.authenticated(s.handleGetMeeting))
	s.router.HandleFunc("PUT /api/v1/meetings/{id}", s.authenticated(s.handleUpdateMeeting))
	s.router.HandleFunc("DELETE /api/v1/meetings/{id}", s.authenticated(s.handleDeleteMeeting))

	// ─────────────────────────────────────────────────────────────────────────
	// Certificates
	// ─────────────────────────────────────────────────────────────────────────
	s.router.HandleFunc("GET /api/v1/certificates", s.authenticated(s.handleListCertificates))
	s.router.HandleFunc("GET /api/v1/certificates/{id}", s.authenticated(s.handleGetCertificate))
	s.router.HandleFunc("POST /api/v1/certificates", s.admin(s.handleIssueCertificate))
	s.router.HandleFunc("DELETE /api/v1/certificates/{id}", s.admin(s.handleRevokeCertificate))
}

// ══════════════════════════════════════════════════════════════════════════════
// AUTHENTICATION WRAPPERS
// ══════════════════════════════════════════════════════════════════════════════

// authenticated resolves the caller through the access gate and puts
// the identity on the request context.
func (s *Server) authenticated(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := s.resolveIdentity(r)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		next(w, r.WithContext(withIdentity(r.Context(), identity)))
	}
}

// admin is authenticated plus an admin role check. The failure body is
// deliberately generic so the endpoint does not leak role requirements.
func (s *Server) admin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := s.resolveIdentity(r)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		if !identity.IsAdmin() {
			s.writeError(w, r, shared.ErrAdminOnly)
			return
		}
		next(w, r.WithContext(withIdentity(r.Context(), identity)))
	}
}

// resolveIdentity extracts the bearer token and verifies it.
func (s *Server) resolveIdentity(r *http.Request) (auth.Identity, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return auth.Identity{}, shared.ErrInvalidToken
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return auth.Identity{}, shared.ErrInvalidToken
	}
	return s.deps.Gate.Authorize(r.Context(), strings.TrimSpace(token))
}

// ══════════════════════════════════════════════════════════════════════════════
// MIDDLEWARE CHAIN
// ══════════════════════════════════════════════════════════════════════════════

// buildMiddlewareChain wraps the router with all middleware.
func (s *Server) buildMiddlewareChain(handler http.Handler) http.Handler {
	// Apply middleware in reverse order (last middleware wraps first)
	h := handler
	h = s.requestIDMiddleware(h)
	h = s.loggingMiddleware(h)
	h = s.recoveryMiddleware(h)
	return h
}

// requestIDMiddleware adds a unique request ID to each request.
func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		ctx := context.WithValue(r.Context(), contextKeyRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// loggingMiddleware logs all HTTP requests.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		s.logger.Info("http request",
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.Int("status", rw.statusCode),
			logger.Int("duration_ms", int(time.Since(start).Milliseconds())),
			logger.String("request_id", getRequestID(r.Context())),
		)
	})
}

// recoveryMiddleware recovers from panics and returns 500.
func (s *Server) recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				s.logger.Error("panic recovered",
					logger.String("error", fmt.Sprint(err)),
					logger.String("stack", string(debug.Stack())),
					logger.String("path", r.URL.Path),
					logger.String("request_id", getRequestID(r.Context())),
				)
				writeJSONError(w, http.StatusInternalServerError, "internal_server_error", "An unexpected error occurred")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// ══════════════════════════════════════════════════════════════════════════════
// SERVER LIFECYCLE
// ══════════════════════════════════════════════════════════════════════════════

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return fmt.Errorf("server already running")
	}
	s.running = true
	s.startedAt = time.Now()
	s.mu.Unlock()

	s.logger.Info("starting HTTP server", logger.String("address", s.config.Address()))

	err := s.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// StartAsync starts the server in a goroutine.
func (s *Server) StartAsync() <-chan error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil {
			errCh <- err
		}
		close(errCh)
	}()
	return errCh
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	s.mu.Unlock()

	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

// Uptime returns the server uptime.
func (s *Server) Uptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.running {
		return 0
	}
	return time.Since(s.startedAt)
}

// Handler returns the fully assembled handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// ══════════════════════════════════════════════════════════════════════════════
// RESPONSE HELPERS
// ══════════════════════════════════════════════════════════════════════════════

// JSONResponse represents a standard JSON response.
type JSONResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

// APIError represents an API error.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(JSONResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	})
}

// writeJSONError writes an error JSON response.
func writeJSONError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(JSONResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: message},
	})
}

// writeError maps domain failures onto HTTP statuses. Forbidden bodies
// stay generic; integrity failures surface as plain 500s after logging.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case shared.IsUnauthenticated(err):
		writeJSONError(w, http.StatusUnauthorized, "unauthenticated", "Invalid or missing credentials")
	case shared.IsForbidden(err):
		writeJSONError(w, http.StatusForbidden, "forbidden", "operation failed")
	case shared.IsNotFound(err):
		writeJSONError(w, http.StatusNotFound, "not_found", err.Error())
	case shared.IsConflict(err) || errors.Is(err, shared.ErrStateTransition):
		writeJSONError(w, http.StatusConflict, "conflict", err.Error())
	case shared.IsValidation(err):
		writeJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
	case shared.IsDataIntegrity(err):
		s.logger.Error("data integrity failure",
			logger.Err(err),
			logger.String("path", r.URL.Path),
			logger.String("request_id", getRequestID(r.Context())),
		)
		writeJSONError(w, http.StatusInternalServerError, "internal_server_error", "An unexpected error occurred")
	default:
		s.logger.Error("request failed",
			logger.Err(err),
			logger.String("path", r.URL.Path),
			logger.String("request_id", getRequestID(r.Context())),
		)
		writeJSONError(w, http.StatusInternalServerError, "internal_server_error", "An unexpected error occurred")
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// HELPER TYPES AND FUNCTIONS
// ══════════════════════════════════════════════════════════════════════════════

type contextKey string

const (
	contextKeyRequestID contextKey = "request_id"
	contextKeyIdentity  contextKey = "identity"
)

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// getRequestID extracts the request ID from context.
func getRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(contextKeyRequestID).(string); ok {
		return id
	}
	return ""
}

// withIdentity attaches the resolved caller to the context.
func withIdentity(ctx context.Context, identity auth.Identity) context.Context {
	return context.WithValue(ctx, contextKeyIdentity, identity)
}

// callerIdentity extracts the resolved caller from the context.
func callerIdentity(ctx context.Context) (auth.Identity, bool) {
	identity, ok := ctx.Value(contextKeyIdentity).(auth.Identity)
	return identity, ok
}

// decodeJSON decodes the request body into dest.
func decodeJSON(r *http.Request, dest any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		return shared.WrapError("http", "Decode", shared.ErrInvalidInput, "malformed request body", err)
	}
	return nil
}

// pathUUID parses the {id} path segment.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, shared.NewDomainError("http", "ParsePath", shared.ErrInvalidID, fmt.Sprintf("%s is not a valid UUID", name))
	}
	return id, nil
}

// queryUUID parses an optional UUID query parameter.
func queryUUID(r *http.Request, name string) (*uuid.UUID, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, shared.NewDomainError("http", "ParseQuery", shared.ErrInvalidID, fmt.Sprintf("%s is not a valid UUID", name))
	}
	return &id, nil
}
