// Package web implements the relay's HTTP surface.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/oncall-relay/oncall-relay/internal/config"
	fiberlogger "github.com/oncall-relay/oncall-relay/internal/logger/adapter/fiber"
	"github.com/oncall-relay/oncall-relay/internal/secrets"
	"github.com/oncall-relay/oncall-relay/internal/uniuri"
	"github.com/oncall-relay/oncall-relay/internal/web/handler/event"
)

const (
	// CheckAlivePath is the aliveness probe path, unauthenticated.
	CheckAlivePath = "/checkalive"

	// MetricsPath is the prometheus scrape path, unauthenticated.
	MetricsPath = "/metrics"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the relay.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	// Wait interrupt or shutdown request
	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration and client handles.
func New(cfg *config.Config, db *gorm.DB, store *secrets.Store, updater event.Updater) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        "oncall-relay",
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
		},
	)

	// attach a request id to every request for log correlation
	app.Use(requestid.New(requestid.Config{
		Generator: uniuri.New,
	}))

	// access logging
	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	// static key middleware on the event endpoint
	app.Use(APIKeyMiddleware(cfg))

	// init web service
	service := &Service{
		cfg: cfg,
		App: app,
	}

	service.alive.Store(true)

	// init the event handler (it registers its own route)
	if err := event.Handler.Init(app, cfg, db, store, updater); err != nil {
		log.Fatal().Err(err).Msg("failed to init event handler")
	}

	// aliveness probe, flipped during graceful shutdown
	app.Get(CheckAlivePath, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendStatus(fiber.StatusOK)
	})

	// prometheus scrape endpoint
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	return service
}
