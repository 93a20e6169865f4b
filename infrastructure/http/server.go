package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

const (
	readTimeout  = 30 * time.Second
	writeTimeout = 60 * time.Second
	idleTimeout  = 120 * time.Second
)

// Router assemble le routeur chi avec les middlewares globaux.
func Router(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(CORS)

	r.Get("/health", handler.Health)
	r.Post("/chat", handler.Chat)
	return r
}

// NewServer builds the http.Server with production timeouts.
// La génération distante peut prendre des dizaines de secondes, le
// write timeout reste au-dessus du timeout des backends.
func NewServer(addr string, handler *Handler, log *slog.Logger) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      Router(handler),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
		ErrorLog:     slog.NewLogLogger(log.Handler(), slog.LevelError),
	}
}
