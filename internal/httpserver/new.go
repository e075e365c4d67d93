package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	agendaHTTP "agenda-assistant/internal/agenda/delivery/http"
	nluHTTP "agenda-assistant/internal/interpreter/delivery/http"
	"agenda-assistant/internal/middleware"
	"agenda-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw            middleware.Middleware
	agendaHandler agendaHTTP.Handler
	nluHandler    nluHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	Middleware    middleware.Middleware
	AgendaHandler agendaHTTP.Handler
	NLUHandler    nluHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.New(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		mw:            cfg.Middleware,
		agendaHandler: cfg.AgendaHandler,
		nluHandler:    cfg.NLUHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.agendaHandler == nil {
		return errors.New("agenda handler is required")
	}
	return nil
}
