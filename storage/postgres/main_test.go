package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"ucode/ucode_go_query_builder_service/config"
	"ucode/ucode_go_query_builder_service/pkg/logger"
	"ucode/ucode_go_query_builder_service/storage"
	"ucode/ucode_go_query_builder_service/storage/postgres"

	"github.com/jaswdr/faker/v2"
)

var (
	cfg      config.Config
	strg     storage.StorageI
	fakeData faker.Faker
)

// the code should take the config from the environment
func TestMain(m *testing.M) {
	cfg = config.Load()

	if cfg.PostgresHost == "" {
		fmt.Println("POSTGRES_HOST not set, skipping storage tests")
		os.Exit(0)
	}

	log := logger.NewLogger(cfg.ServiceName, logger.LevelError)
	fakeData = faker.New()

	var err error
	strg, err = postgres.NewPostgres(context.Background(), cfg, log)
	if err != nil {
		fmt.Println("postgres.NewPostgres:", err)
		os.Exit(1)
	}
	code := m.Run()
	strg.CloseDB()
	os.Exit(code)
}
