package ui

import (
	"net/http"

	"github.com/memochat/memochat"
)

// router holds the HTTP handler state.
type router struct {
	client *memochat.Client
	config *Config
}

// NewHandler builds the HTTP handler for a MemoChat client. A nil cfg uses
// defaults; an invalid cfg panics, since that is a programmer error.
func NewHandler(client *memochat.Client, cfg *Config) http.Handler {
	if cfg == nil {
		cfg = DefaultConfig()
	} else {
		cfg.applyDefaults()
	}
	if err := cfg.validate(); err != nil {
		panic("ui: invalid configuration: " + err.Error())
	}

	rt := &router{client: client, config: cfg}

	mux := http.NewServeMux()

	// Sessions
	mux.HandleFunc("POST /sessions", rt.handleCreateSession)
	mux.HandleFunc("GET /sessions", rt.handleListSessions)
	mux.HandleFunc("GET /sessions/{id}", rt.handleGetSession)
	mux.HandleFunc("PATCH /sessions/{id}", rt.handleRenameSession)
	mux.HandleFunc("DELETE /sessions/{id}", rt.handleDeleteSession)

	// Chat
	mux.HandleFunc("POST /sessions/{id}/chat", rt.handleChat)
	mux.HandleFunc("GET /sessions/{id}/messages", rt.handleHistory)

	// Files
	mux.HandleFunc("POST /sessions/{id}/files", rt.handleUploadFile)
	mux.HandleFunc("GET /sessions/{id}/files", rt.handleListFiles)

	return withMiddleware(mux, cfg)
}

// withMiddleware wraps the handler with common middleware.
func withMiddleware(handler http.Handler, cfg *Config) http.Handler {
	handler = jsonMiddleware(handler)
	handler = recoveryMiddleware(handler, cfg.Logger)
	return handler
}

// jsonMiddleware sets JSON content type for all responses.
func jsonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// recoveryMiddleware recovers from panics and returns 500.
func recoveryMiddleware(next http.Handler, logger Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if logger != nil {
					logger.Error("panic recovered", "error", err, "path", r.URL.Path)
				}
				http.Error(w, `{"error":{"code":"internal_error","message":"internal server error"}}`, http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
