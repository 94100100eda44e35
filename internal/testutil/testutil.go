package testutil

// Package testutil provides shared helpers for integration tests that need
// real infrastructure (Redis, PostgreSQL). Tests skip cleanly when the
// backing service is unavailable unless TEST_REQUIRE_INFRA is set.

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	// Import pgx driver for database/sql compatibility in tests.
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"github.com/campusware/campus-admin/internal/migrate"
)

// TestingTB is the subset of *testing.T the helpers need.
type TestingTB interface {
	Helper()
	Skipf(format string, args ...any)
	Fatal(args ...any)
	Cleanup(func())
}

const connectTimeout = 5 * time.Second

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func requireInfra() bool {
	v, err := strconv.ParseBool(os.Getenv("TEST_REQUIRE_INFRA"))
	return err == nil && v
}

// SetupTestRedis returns a Redis client for tests, skipping when Redis is
// unreachable. The caller owns closing the client.
func SetupTestRedis(t TestingTB) *redis.Client {
	t.Helper()

	addr := envOrDefault("TEST_REDIS_ADDR", "localhost:6379")
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		if requireInfra() {
			t.Fatal("redis required but unreachable:", err)
		}
		t.Skipf("redis not available at %s: %v", addr, err)
		return nil
	}
	return client
}

// TestDBConfig holds connection settings for the test database.
type TestDBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// DefaultTestDBConfig reads TEST_DB_* environment variables with local
// docker-compose defaults.
func DefaultTestDBConfig() TestDBConfig {
	return TestDBConfig{
		Host:     envOrDefault("TEST_DB_HOST", "localhost"),
		Port:     envOrDefault("TEST_DB_PORT", "5432"),
		User:     envOrDefault("TEST_DB_USER", "campus"),
		Password: envOrDefault("TEST_DB_PASSWORD", "campus"),
		DBName:   envOrDefault("TEST_DB_NAME", "campus"),
	}
}

// SetupTestDB opens the test database, applies migrations, and truncates the
// users table. Skips when PostgreSQL is unreachable.
func SetupTestDB(t TestingTB) *sql.DB {
	t.Helper()

	cfg := DefaultTestDBConfig()
	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		cfg.User, cfg.Password, net.JoinHostPort(cfg.Host, cfg.Port), cfg.DBName)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatal("open test database:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if pingErr := db.PingContext(ctx); pingErr != nil {
		_ = db.Close()
		if requireInfra() {
			t.Fatal("postgres required but unreachable:", pingErr)
		}
		t.Skipf("postgres not available at %s:%s: %v", cfg.Host, cfg.Port, pingErr)
		return nil
	}

	if migrateErr := migrate.Run(ctx, db); migrateErr != nil {
		_ = db.Close()
		t.Fatal("run migrations:", migrateErr)
	}

	if _, truncErr := db.ExecContext(ctx, "TRUNCATE TABLE users"); truncErr != nil {
		_ = db.Close()
		t.Fatal("truncate users:", truncErr)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}
