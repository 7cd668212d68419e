// Package daemon wires the relay's client handles and starts the web service.
package daemon

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/oncall-relay/oncall-relay/internal/config"
	"github.com/oncall-relay/oncall-relay/internal/db/dsn"
	"github.com/oncall-relay/oncall-relay/internal/db/models"
	"github.com/oncall-relay/oncall-relay/internal/logger"
	"github.com/oncall-relay/oncall-relay/internal/secrets"
	"github.com/oncall-relay/oncall-relay/internal/slack"
	"github.com/oncall-relay/oncall-relay/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	webService *web.Service
	addr       string
}

// Start starts the Daemon's web service and blocks until shutdown.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(d.addr)
}

// New creates a new Daemon instance with the provided configuration. All
// client handles (database pool, secret store, chat client) are constructed
// here once and reused across invocations.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil, nil
	}

	if err := logger.Init(cfg.Log); err != nil {
		return nil, err
	}

	if cfg.DevMode {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("dev mode enabled: log level forced to debug")
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, err
	}

	if err = db.AutoMigrate(
		&models.Team{},
		&models.User{},
	); err != nil {
		log.Error().Err(err).Msg("failed to migrate database")
		return nil, err
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(cfg.AWS.Region),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to load aws config")
		return nil, err
	}

	store := secrets.NewFromConfig(awsCfg)
	updater := slack.New(cfg.Slack.APIURL)

	return &Daemon{
		webService: web.New(cfg, db, store, updater),
		addr:       fmt.Sprintf(":%d", cfg.Webserver.Port),
	}, nil
}

// openDB opens the mapping store with the configured gorm engine.
func openDB(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DB.GormEngine {
	case "postgres":
		dialector = gormpostgres.Open(dsn.Create(cfg))
	default:
		dialector = gormmysql.Open(dsn.Create(cfg))
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Error().Err(err).Msg("failed to connect database")
		return nil, err
	}

	return db, nil
}
