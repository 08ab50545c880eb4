package testutil

import (
	"context"
	"fmt"
	"log"

	"event-management-api/config"
	"event-management-api/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Setup() (*pgxpool.Pool, func(), error) {
	cfg := config.LoadTestConfig()

	testDB, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize test database: %v", err)
	}

	if err := testDB.Ping(context.Background()); err != nil {
		return nil, nil, fmt.Errorf("failed to ping test database: %v", err)
	}

	if err := database.InitSchema(context.Background(), testDB); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize test schema: %v", err)
	}

	log.Println("Test database connected successfully")

	cleanup := func() {
		testDB.Close()
		log.Println("Test database closed")
	}

	return testDB, cleanup, nil
}
