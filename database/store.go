package database

import (
	"context"
	"fmt"

	"github.com/jobify-dev/jobs-api/config"
	"github.com/jobify-dev/jobs-api/repository"
	"github.com/rs/zerolog/log"
)

// OpenStore connects the backend selected by cfg.StoreDriver and prepares its schema.
// The caller owns the returned store and must Close it.
func OpenStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		db, err := InitDB(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		return repository.NewPostgresStore(db), nil

	case config.DriverMongo:
		client, err := ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		if err := EnsureMongoIndexes(ctx, client.Database(cfg.MongoDatabase)); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return repository.NewMongoStore(client, cfg.MongoDatabase), nil

	case config.DriverMemory:
		log.Warn().Msg("using in-memory store, data is lost on restart")
		return repository.NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
