// Package database contains the logic for establishing the
// connection to the MongoDB document store.
//
// It handles:
//   - creating a mongo client from DATABASE_URL
//   - wiring command logging (local env) and New Relic instrumentation (nrmongo)
//   - the insert/find primitives used by the repositories
//   - the health report served by GET /test
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/deppfellow/lazy-virtuoso/internal/config"
	loggerPkg "github.com/deppfellow/lazy-virtuoso/internal/logger"
	"github.com/newrelic/go-agent/v3/integrations/nrmongo"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ErrStoreUnavailable is returned by every store operation while the
// process runs without a database (no DATABASE_URL).
var ErrStoreUnavailable = errors.New("database not available")

// DatabasePingTimeout is the number of seconds to wait for the startup ping.
const DatabasePingTimeout = 10

// Database wraps the mongo client and the selected database.
//
// A nil *Database is valid and means "degraded mode": Insert and Find
// return ErrStoreUnavailable, HealthCheck reports the store as missing.
type Database struct {
	Client *mongo.Client
	DB     *mongo.Database
	log    *zerolog.Logger
}

// New creates the mongo client with instrumentation.
//
// Returns (nil, nil) when no DATABASE_URL is configured. A failed startup
// ping is logged but not returned: the process stays up and the health
// endpoint reports the problem.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Database, error) {
	if !cfg.Database.Configured() {
		logger.Warn().Msg("DATABASE_URL not set, running without persistence")
		return nil, nil
	}

	// Server selection defaults to 30s, as long as the HTTP write timeout.
	// An unreachable store has to fail requests before the server gives up.
	connectTimeout := time.Duration(cfg.Database.ConnectTimeout) * time.Second
	opts := options.Client().
		ApplyURI(cfg.Database.URL).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(connectTimeout)

	if monitor := commandMonitor(cfg, logger, loggerService); monitor != nil {
		opts.SetMonitor(monitor)
	}

	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	database := FromClient(client, cfg.Database.Name, logger)

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Error().Err(err).Msg("failed to ping database, continuing in degraded state")
		return database, nil
	}

	logger.Info().Str("database", cfg.Database.Name).Msg("connected to the database")

	return database, nil
}

// FromClient wraps an existing client.
func FromClient(client *mongo.Client, name string, logger *zerolog.Logger) *Database {
	return &Database{
		Client: client,
		DB:     client.Database(name),
		log:    logger,
	}
}

// commandMonitor picks the command monitor for the client:
//   - New Relic segments when the agent is running
//   - zerolog command logging in the local env
//   - both, chained, when both apply
func commandMonitor(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) *event.CommandMonitor {
	var local *event.CommandMonitor
	if cfg.Primary.Env == "local" {
		local = loggerPkg.NewCommandMonitor(*logger, cfg.Observability.Logging.SlowQueryThreshold)
	}

	if loggerService != nil && loggerService.GetApplication() != nil {
		// nrmongo calls the wrapped monitor after recording its segment.
		return nrmongo.NewCommandMonitor(local)
	}

	return local
}

// Name returns the database name, or "" in degraded mode.
func (db *Database) Name() string {
	if db == nil || db.DB == nil {
		return ""
	}
	return db.DB.Name()
}

// Ping verifies the server is reachable.
func (db *Database) Ping(ctx context.Context) error {
	if db == nil {
		return ErrStoreUnavailable
	}
	return db.Client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (db *Database) Close(ctx context.Context) error {
	if db == nil {
		return nil
	}
	db.log.Info().Msg("closing database connection")
	return db.Client.Disconnect(ctx)
}
