//go:build database

package integration

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"fedcurve/internal/seriescache"
	"fedcurve/schema"
)

// TestFetchCacheWithMySQL tests the fetch cache against a MySQL backend.
func TestFetchCacheWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "fedcurve",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/fedcurve?parseTime=true", host, port.Port())
	exerciseFetchCache(t, schema.MySQLBackend, connStr)
}

// TestFetchCacheWithPostgres tests the fetch cache against a PostgreSQL backend.
func TestFetchCacheWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())
	exerciseFetchCache(t, schema.PostgreSQLBackend, connStr)
}

// exerciseFetchCache runs the full store lifecycle against a live server:
// table creation, miss, set, hit, upsert, status, and a cache clear that
// drops the table.
func exerciseFetchCache(t *testing.T, backend schema.DatabaseBackend, connStr string) {
	t.Helper()

	// Start from a clean slate
	require.NoError(t, seriescache.ClearCache(backend, "", connStr))

	store, err := seriescache.NewStore(seriescache.FetchTableName, backend, connStr)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	key := "fred:UNRATE:1970-01-01:2025-01-01"
	stamp := time.Now().Unix()

	// Miss on the fresh table
	_, _, _, err = store.Get(key)
	require.ErrorIs(t, err, sql.ErrNoRows)

	// Set then hit
	require.NoError(t, store.Set(key, []byte("payload-v1"), 1, stamp))
	value, version, ts, err := store.Get(key)
	require.NoError(t, err)
	require.Equal(t, []byte("payload-v1"), value)
	require.Equal(t, 1, version)
	require.Equal(t, stamp, ts)

	// Upsert replaces in place
	require.NoError(t, store.Set(key, []byte("payload-v2"), 2, stamp+60))
	value, version, ts, err = store.Get(key)
	require.NoError(t, err)
	require.Equal(t, []byte("payload-v2"), value)
	require.Equal(t, 2, version)
	require.Equal(t, stamp+60, ts)

	// Status reflects the single entry
	status, err := store.GetStatus()
	require.NoError(t, err)
	require.Equal(t, string(backend), status.Backend)
	require.True(t, status.Connected)
	require.Equal(t, 1, status.TotalEntries)
	require.Equal(t, stamp+60, status.LastEntryTime.Unix())

	// Clearing drops the table; a new store recreates it empty
	require.NoError(t, store.Close())
	require.NoError(t, seriescache.ClearCache(backend, "", connStr))

	store2, err := seriescache.NewStore(seriescache.FetchTableName, backend, connStr)
	require.NoError(t, err)
	defer func() { _ = store2.Close() }()

	_, _, _, err = store2.Get(key)
	require.ErrorIs(t, err, sql.ErrNoRows)

	status, err = store2.GetStatus()
	require.NoError(t, err)
	require.Equal(t, 0, status.TotalEntries)
}
