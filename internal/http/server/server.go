package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"clipshare/internal/config"
	"clipshare/internal/domain/models"
	"clipshare/internal/http/handlers/clipboard/create_clipboard"
	"clipshare/internal/http/handlers/clipboard/delete_clipboard"
	"clipshare/internal/http/handlers/clipboard/get_by_share_code"
	"clipshare/internal/http/handlers/clipboard/get_by_view_code"
	"clipshare/internal/http/handlers/clipboard/update_clipboard"
	"clipshare/internal/http/handlers/middlewares/compress"
	"clipshare/internal/http/handlers/middlewares/logger"
	"clipshare/internal/http/handlers/system/ping"
	"clipshare/internal/http/httputils"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

//go:generate mockgen -source=server.go -destination=../../mocks/mock_clipboard_service.go -package=mocks
type ServiceClipboard interface {
	Create(ctx context.Context, params models.CreateParams) (models.Clipboard, error)
	GetByShareCode(ctx context.Context, shareCode string) (models.Clipboard, error)
	GetByViewCode(ctx context.Context, viewCode string) (models.Clipboard, error)
	Update(ctx context.Context, id, shareCode, content string) (models.Clipboard, error)
	Delete(ctx context.Context, id, shareCode string) error
	PingDataBase(ctx context.Context) error
}

type Server struct {
	httpServer *http.Server
	router     *mux.Router
	log        *zerolog.Logger
	svc        ServiceClipboard
	cfg        config.Config
}

func NewServer(log *zerolog.Logger, cfg config.Config, svc ServiceClipboard) (*Server, error) {
	if cfg.ServerAddress == "" {
		return nil, errors.New("server address cannot be empty")
	}
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if svc == nil {
		return nil, errors.New("service cannot be nil")
	}

	s := &Server{
		router: mux.NewRouter(),
		cfg:    cfg,
		log:    log,
		svc:    svc,
	}

	s.httpServer = &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           s.router,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.setupRoutes()
	return s, nil
}

// Handler exposes the routed handler, httptest servers wrap it directly.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	// {code} matches the decoded path, so percent-encoded '#', '?', '%' and '&' arrive intact
	s.router.Use(logger.MiddlewareLogging(s.log))
	s.router.Use(compress.MiddlewareCompressing())

	s.router.HandleFunc("/ping", ping.HandlerPing(s.svc, s.log)).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api/clipboard").Subrouter()
	api.HandleFunc("", create_clipboard.HandlerCreateClipboard(s.svc, s.log)).Methods(http.MethodPost)
	api.HandleFunc("/", create_clipboard.HandlerCreateClipboard(s.svc, s.log)).Methods(http.MethodPost)
	api.HandleFunc("/share/{code}", get_by_share_code.HandlerGetByShareCode(s.svc, s.log)).Methods(http.MethodGet)
	api.HandleFunc("/view/{code}", get_by_view_code.HandlerGetByViewCode(s.svc, s.log)).Methods(http.MethodGet)
	api.HandleFunc("/{id}", update_clipboard.HandlerUpdateClipboard(s.svc, s.log)).Methods(http.MethodPut)
	api.HandleFunc("/{id}", delete_clipboard.HandlerDeleteClipboard(s.svc, s.log)).Methods(http.MethodDelete)

	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httputils.WriteJSONError(w, http.StatusNotFound, "route not found")
	})
	s.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httputils.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
}

// Start blocks until the server stops. A graceful Shutdown is not an error.
func (s *Server) Start() error {
	s.log.Info().Str("address", s.cfg.ServerAddress).Msg("Starting server")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down server")
	return s.httpServer.Shutdown(ctx)
}
