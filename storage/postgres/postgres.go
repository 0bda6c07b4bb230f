package postgres

import (
	"context"
	"fmt"

	"ucode/ucode_go_query_builder_service/config"
	"ucode/ucode_go_query_builder_service/pkg/logger"
	psqlpool "ucode/ucode_go_query_builder_service/pool"
	"ucode/ucode_go_query_builder_service/storage"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

type Store struct {
	db         *psqlpool.Pool
	cfg        config.Config
	log        logger.LoggerI
	savedQuery storage.SavedQueryRepoI
	catalog    storage.CatalogRepoI
	runner     storage.RunnerRepoI
}

func NewPostgres(ctx context.Context, cfg config.Config, log logger.LoggerI) (storage.StorageI, error) {
	dbUrl := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PostgresUser,
		cfg.PostgresPassword,
		cfg.PostgresHost,
		cfg.PostgresPort,
		cfg.PostgresDatabase,
	)

	poolConfig, err := pgxpool.ParseConfig(dbUrl)
	if err != nil {
		return nil, errors.Wrap(err, "pgxpool.ParseConfig")
	}

	poolConfig.MaxConns = cfg.PostgresMaxConnections

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, errors.Wrap(err, "pgxpool.NewWithConfig")
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, errors.Wrap(err, "pool.Ping")
	}

	if err := runMigrations(cfg.MigrationsPath, dbUrl); err != nil {
		return nil, err
	}

	return &Store{
		db:  psqlpool.New(pool),
		cfg: cfg,
		log: log,
	}, nil
}

func runMigrations(sourceURL, dbUrl string) error {
	m, err := migrate.New(sourceURL, dbUrl)
	if err != nil {
		return errors.Wrap(err, "migrate.New")
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return errors.Wrap(err, "migrate.Up")
	}

	return nil
}

func (s *Store) CloseDB() {
	s.db.Close()
}

func (s *Store) SavedQuery() storage.SavedQueryRepoI {
	if s.savedQuery == nil {
		s.savedQuery = NewSavedQueryRepo(s.db, s.log)
	}
	return s.savedQuery
}

func (s *Store) Catalog() storage.CatalogRepoI {
	if s.catalog == nil {
		s.catalog = NewCatalogRepo(s.db, s.log)
	}
	return s.catalog
}

func (s *Store) Runner() storage.RunnerRepoI {
	if s.runner == nil {
		s.runner = NewRunnerRepo(s.db, s.cfg, s.log)
	}
	return s.runner
}
