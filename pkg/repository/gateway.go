// Package repository selects the store gateway named by STORE_DRIVER.
package repository

import (
	"context"
	"fmt"
	"log"

	"github.com/kaytee124/jobserverapi/pkg/auth"
	"github.com/kaytee124/jobserverapi/pkg/config"
	"github.com/kaytee124/jobserverapi/pkg/cv"
	"github.com/kaytee124/jobserverapi/pkg/health"
	"github.com/kaytee124/jobserverapi/pkg/health/checkers"
	"github.com/kaytee124/jobserverapi/pkg/job"
	"github.com/kaytee124/jobserverapi/pkg/repository/memory"
	mongorepo "github.com/kaytee124/jobserverapi/pkg/repository/mongodb"
	pgrepo "github.com/kaytee124/jobserverapi/pkg/repository/postgres"
	mongostore "github.com/kaytee124/jobserverapi/pkg/storage/mongodb"
	pgstore "github.com/kaytee124/jobserverapi/pkg/storage/postgres"
)

// Gateway is the set of collections every use case reads and writes.
type Gateway struct {
	Jobs     job.Repository
	Users    auth.UserRepository
	CVs      cv.Repository
	Checkers []health.Checker

	close func(ctx context.Context) error
}

// Open connects the configured store. The caller owns Close.
func Open(ctx context.Context, cfg config.Config) (*Gateway, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		return openMongo(ctx, cfg)
	case config.DriverPostgres:
		return openPostgres(ctx, cfg)
	case config.DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// NewMemory returns a process-local gateway.
func NewMemory() *Gateway {
	return &Gateway{
		Jobs:  memory.NewJobRepository(),
		Users: memory.NewUserRepository(),
		CVs:   memory.NewCVRepository(),
	}
}

func (g *Gateway) Close(ctx context.Context) error {
	if g == nil || g.close == nil {
		return nil
	}
	return g.close(ctx)
}

func openMongo(ctx context.Context, cfg config.Config) (*Gateway, error) {
	client, err := mongostore.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return nil, err
	}
	db := client.Database(cfg.MongoDatabase)
	if err := mongorepo.EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}
	log.Printf("connected to mongodb database %q", cfg.MongoDatabase)
	return &Gateway{
		Jobs:     mongorepo.NewJobRepository(db),
		Users:    mongorepo.NewUserRepository(db),
		CVs:      mongorepo.NewCVRepository(db),
		Checkers: []health.Checker{checkers.NewMongoChecker(client)},
		close:    client.Disconnect,
	}, nil
}

func openPostgres(ctx context.Context, cfg config.Config) (*Gateway, error) {
	pool, err := pgstore.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	jobs, err := pgrepo.NewJobRepository(pool)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("jobs schema: %w", err)
	}
	users, err := pgrepo.NewUserRepository(pool)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("users schema: %w", err)
	}
	cvs, err := pgrepo.NewCVRepository(pool)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("cv schema: %w", err)
	}
	log.Printf("connected to postgres")
	return &Gateway{
		Jobs:     jobs,
		Users:    users,
		CVs:      cvs,
		Checkers: []health.Checker{checkers.NewPostgresChecker(pool)},
		close: func(context.Context) error {
			pool.Close()
			return nil
		},
	}, nil
}
