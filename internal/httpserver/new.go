package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"intent-engine/internal/intent"
	tgDelivery "intent-engine/internal/intent/delivery/telegram"
	"intent-engine/internal/middleware"
	"intent-engine/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Intent domain
	intentUC        intent.UseCase
	telegramHandler tgDelivery.Handler
	mw              middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Intent domain
	IntentUseCase   intent.UseCase
	TelegramHandler tgDelivery.Handler // optional
	Middleware      middleware.Middleware
}

// New creates a new HTTPServer instance and maps every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		intentUC:        cfg.IntentUseCase,
		telegramHandler: cfg.TelegramHandler,
		mw:              cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
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
	if srv.intentUC == nil {
		return errors.New("intent usecase is required")
	}
	return nil
}
