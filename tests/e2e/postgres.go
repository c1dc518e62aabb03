//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"villa-booking/internal/infra/db"
	"villa-booking/internal/pkg/config"
	"villa-booking/internal/pkg/errs"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = nat.Port("5432/tcp")
)

// server is the Postgres instance shared by every suite in the test binary.
// Each suite gets its own database inside it.
type server struct {
	host string
	port nat.Port
}

func (s server) dsn(database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, s.host, s.port.Port(), database)
}

var startServer = sync.OnceValues(func() (server, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{string(pgPort)},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
			// durability is irrelevant for throwaway data
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "synchronous_commit=off",
				"-c", "full_page_writes=off",
				"-c", "max_connections=200",
			},
			WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
				return server{host: host, port: port}.dsn("postgres")
			}).WithStartupTimeout(time.Minute),
			Labels: map[string]string{"purpose": "villa-booking-e2e"},
		},
		Started: true,
	})
	if err != nil {
		return server{}, errs.Wrap(err, "start postgres container")
	}

	host, err := container.Host(ctx)
	if err != nil {
		return server{}, errs.Wrap(err, "container host")
	}
	port, err := container.MappedPort(ctx, pgPort)
	if err != nil {
		return server{}, errs.Wrap(err, "container port")
	}
	// ryuk removes the container when the test binary exits
	return server{host: host, port: port}, nil
})

// createDatabase makes a fresh database with the schema applied and drops it
// when the test finishes.
func createDatabase(t *testing.T) (*pgxpool.Pool, config.DBConfig) {
	t.Helper()

	srv, err := startServer()
	require.NoError(t, err)

	name := "e2e_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	admin, err := pgxpool.New(t.Context(), srv.dsn("postgres"))
	require.NoError(t, err, "admin connection failed")
	defer admin.Close()

	_, err = admin.Exec(t.Context(), "CREATE DATABASE "+name)
	require.NoError(t, err, "create database %s", name)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		pool, err := pgxpool.New(ctx, srv.dsn("postgres"))
		if err != nil {
			slog.Warn("drop database: connect failed", "database", name, "error", err.Error())
			return
		}
		defer pool.Close()
		if _, err := pool.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("drop database failed", "database", name, "error", err.Error())
		}
	})

	cfg := config.DBConfig{
		Host:     srv.host,
		Port:     srv.port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "Asia/Makassar",
		MaxConns: 16,
	}

	pool, closePool, err := db.Connect(cfg)
	require.NoError(t, err, "connect to %s", name)
	t.Cleanup(closePool)

	require.NoError(t, migrate(t.Context(), pool))
	return pool, cfg
}

// migrate applies migrations/*.sql in file name order, the same order atlas uses.
func migrate(ctx context.Context, pool *pgxpool.Pool) error {
	root, err := moduleRoot()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(root, "migrations", "*.sql"))
	if err != nil {
		return errs.Wrap(err, "list migrations")
	}
	if len(files) == 0 {
		return errs.Newf("no migrations under %s", root)
	}
	slices.Sort(files)

	for _, f := range files {
		script, err := os.ReadFile(f)
		if err != nil {
			return errs.Wrapf(err, "read %s", filepath.Base(f))
		}
		if _, err := pool.Exec(ctx, string(script)); err != nil {
			return errs.Wrapf(err, "apply %s", filepath.Base(f))
		}
	}
	return nil
}

// moduleRoot walks up from the package directory go test runs in.
func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", errs.Wrap(err, "working directory")
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errs.New("go.mod not found above the test package")
		}
		dir = parent
	}
}
