package repository_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Houeta/staffdesk/internal/metrics"
	"github.com/Houeta/staffdesk/internal/models"
	"github.com/Houeta/staffdesk/internal/repository"
	"github.com/Houeta/staffdesk/internal/services/directory"
	"github.com/Houeta/staffdesk/internal/services/fulfillment"
	"github.com/Houeta/staffdesk/internal/services/ledger"
	"github.com/Houeta/staffdesk/internal/services/lifecycle"
	"github.com/Houeta/staffdesk/internal/services/requests"
)

// TestPlacementFlow_Integration drives the full placement life cycle against
// a real PostgreSQL instance: directory creation, manual assignment, request
// submission, fulfillment and cascading deletion, checking the location
// counters against the actual assignments after every step.
func TestPlacementFlow_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("staffdesk"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	migrationDB := stdlib.OpenDBFromPool(pool)
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(migrationDB, "../../migrations"))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	testMetrics := metrics.NewMetrics(prometheus.NewRegistry())
	store := repository.NewStore(pool, testMetrics)

	dir := directory.NewDirectory(logger, pool, store, testMetrics)
	queue := requests.NewQueue(logger, store, store, testMetrics)
	engine := fulfillment.NewEngine(logger, pool, store, testMetrics)
	ledgerSvc := ledger.NewLedger(logger, pool, store, testMetrics)
	manager := lifecycle.NewManager(logger, pool, store, testMetrics)

	locationID, err := dir.CreateLocation(ctx, "koval@test.com", "Koval's Carrot Farm", "12 Market Street", "0000")
	require.NoError(t, err)

	emails := []string{"archer@test.com", "bauer@test.com", "cole@test.com"}
	names := []string{"Ada Archer", "Boris Bauer", "Clara Cole"}
	for i, email := range emails {
		require.NoError(t, dir.CreateEmployee(ctx, email, names[i], "0000", 0, models.RoleStaff))
	}

	// Manual assignment keeps the counter in step with the edge.
	require.NoError(t, ledgerSvc.Assign(ctx, "archer@test.com", locationID))
	loc, err := store.GetLocationByID(ctx, locationID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), loc.NumEmployees)

	// Unassigning restores the pool and decrements the counter.
	require.NoError(t, ledgerSvc.Unassign(ctx, "archer@test.com"))
	loc, err = store.GetLocationByID(ctx, locationID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), loc.NumEmployees)

	// Fulfillment takes the whole pool when the quantity exceeds it, and
	// the request closes regardless.
	reqnum, err := queue.Submit(ctx, locationID, 5, time.Now().AddDate(0, 0, 1))
	require.NoError(t, err)

	taken, err := engine.Fulfill(ctx, reqnum)
	require.NoError(t, err)
	assert.Equal(t, 3, taken)

	req, err := store.GetRequestByNum(ctx, reqnum)
	require.NoError(t, err)
	assert.False(t, req.Open)

	loc, err = store.GetLocationByID(ctx, locationID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), loc.NumEmployees)

	roster, err := store.ListEmployeesByLocation(ctx, locationID)
	require.NoError(t, err)
	require.Len(t, roster, 3)
	assert.Equal(t, "Ada Archer", roster[0].Name)

	// Fulfilling a closed request changes nothing.
	_, err = engine.Fulfill(ctx, reqnum)
	require.Error(t, err)

	// Deleting an assigned employee repairs the counter.
	deleted := manager.DeleteEmployees(ctx, []string{"archer@test.com"})
	assert.Equal(t, 1, deleted)
	loc, err = store.GetLocationByID(ctx, locationID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), loc.NumEmployees)

	// Deleting the location returns the rest of the roster to the pool.
	deleted = manager.DeleteLocations(ctx, []int64{locationID})
	assert.Equal(t, 1, deleted)

	pool2, err := store.ListUnassigned(ctx)
	require.NoError(t, err)
	assert.Len(t, pool2, 2)
}
