// File: cmd/provider.go
package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/WebVOWL/horned-owl-serializer/internal/config"
	"github.com/WebVOWL/horned-owl-serializer/internal/observability"
	"github.com/WebVOWL/horned-owl-serializer/internal/store"
)

// storeProvider creates the run repository. Tests inject a mock so no live
// database is needed.
type storeProvider interface {
	// Create returns the repository, a cleanup function that releases its
	// resources, and an error if the repository could not be reached.
	Create(ctx context.Context, cfg config.Interface) (store.Repository, func(), error)
}

// defaultStoreProvider connects to PostgreSQL.
type defaultStoreProvider struct{}

// NewStoreProvider returns the production provider.
func NewStoreProvider() storeProvider {
	return &defaultStoreProvider{}
}

var errNoDatabaseURL = errors.New("database URL is not configured (HOS_DATABASE_URL)")

// Create opens a pgx pool, wraps it in a store and, when configured, creates
// the schema.
func (p *defaultStoreProvider) Create(ctx context.Context, cfg config.Interface) (store.Repository, func(), error) {
	logger := observability.GetLogger()
	dbCfg := cfg.Database()
	if dbCfg.URL == "" {
		return nil, nil, errNoDatabaseURL
	}

	pool, err := pgxpool.New(ctx, dbCfg.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s, err := store.New(ctx, pool, logger)
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to initialize store service: %w", err)
	}
	if dbCfg.EnsureSchema {
		if err := s.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
	}

	cleanup := func() {
		pool.Close()
		logger.Debug("Database connection pool closed.", zap.String("component", "store"))
	}
	return s, cleanup, nil
}
