package directory_test

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Houeta/staffdesk/internal/apperror"
	"github.com/Houeta/staffdesk/internal/metrics"
	"github.com/Houeta/staffdesk/internal/models"
	"github.com/Houeta/staffdesk/internal/repository"
	"github.com/Houeta/staffdesk/internal/services/directory"
)

var accountCols = []string{"email", "password_hash", "role"}

var employeeCols = []string{"email", "name", "assigned_to", "last_update"}

var locationCols = []string{"id", "name", "address", "email", "num_employees", "last_update"}

func newDirectory(t *testing.T) (*directory.Directory, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	testMetrics := metrics.NewMetrics(prometheus.NewRegistry())
	store := repository.NewStore(mock, testMetrics)

	return directory.NewDirectory(logger, mock, store, testMetrics), mock
}

func expectNoAccount(mock pgxmock.PgxPoolIface, email string) {
	mock.ExpectQuery(regexp.QuoteMeta("FROM accounts WHERE email = $1")).
		WithArgs(email).
		WillReturnRows(pgxmock.NewRows(accountCols))
}

func TestCreateEmployee_Unassigned(t *testing.T) {
	t.Parallel()

	dir, mock := newDirectory(t)

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.Serializable})
	expectNoAccount(mock, "cole@test.com")
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO accounts")).
		WithArgs("cole@test.com", pgxmock.AnyArg(), "staff").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO employees")).
		WithArgs("cole@test.com", "Ada Cole", int64(0)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err := dir.CreateEmployee(context.Background(), "cole@test.com", "Ada Cole", "0000", 0, models.RoleStaff)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEmployee_PreAssignedBumpsCounter(t *testing.T) {
	t.Parallel()

	dir, mock := newDirectory(t)

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.Serializable})
	expectNoAccount(mock, "cole@test.com")
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO accounts")).
		WithArgs("cole@test.com", pgxmock.AnyArg(), "staff").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO employees")).
		WithArgs("cole@test.com", "Ada Cole", int64(0)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE email = $1")).
		WithArgs("cole@test.com").
		WillReturnRows(pgxmock.NewRows(employeeCols).AddRow("cole@test.com", "Ada Cole", int64(0), time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta("FROM locations WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows(locationCols).
			AddRow(int64(7), "Koval's Carrot Farm", "12 Market Street", "koval@test.com", int64(0), time.Now()))
	mock.ExpectExec(regexp.QuoteMeta("SET num_employees = num_employees + $2")).
		WithArgs(int64(7), int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta("SET assigned_to = $2")).
		WithArgs("cole@test.com", int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	err := dir.CreateEmployee(context.Background(), "cole@test.com", "Ada Cole", "0000", 7, models.RoleStaff)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEmployee_AdminHasNoEmployeeRow(t *testing.T) {
	t.Parallel()

	dir, mock := newDirectory(t)

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.Serializable})
	expectNoAccount(mock, "root@admin.com")
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO accounts")).
		WithArgs("root@admin.com", pgxmock.AnyArg(), "admin").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err := dir.CreateEmployee(context.Background(), "root@admin.com", "Root", "root", 0, models.RoleAdmin)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEmployee_EmailInUse(t *testing.T) {
	t.Parallel()

	dir, mock := newDirectory(t)

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.Serializable})
	mock.ExpectQuery(regexp.QuoteMeta("FROM accounts WHERE email = $1")).
		WithArgs("cole@test.com").
		WillReturnRows(pgxmock.NewRows(accountCols).AddRow("cole@test.com", "hash", "staff"))
	mock.ExpectRollback()

	err := dir.CreateEmployee(context.Background(), "cole@test.com", "Ada Cole", "0000", 0, models.RoleStaff)

	require.ErrorIs(t, err, apperror.ErrConstraintViolation)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEmployee_SiteManagerRoleRejected(t *testing.T) {
	t.Parallel()

	dir, _ := newDirectory(t)

	err := dir.CreateEmployee(
		context.Background(), "koval@test.com", "Koval", "0000", 0, models.RoleSiteManager)

	require.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestCreateLocation_Success(t *testing.T) {
	t.Parallel()

	dir, mock := newDirectory(t)

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.Serializable})
	expectNoAccount(mock, "koval@test.com")
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO accounts")).
		WithArgs("koval@test.com", pgxmock.AnyArg(), "site-manager").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO locations")).
		WithArgs("Koval's Carrot Farm", "12 Market Street", "koval@test.com").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectCommit()

	id, err := dir.CreateLocation(
		context.Background(), "koval@test.com", "Koval's Carrot Farm", "12 Market Street", "0000")

	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateLocation_MissingFields(t *testing.T) {
	t.Parallel()

	dir, _ := newDirectory(t)

	_, err := dir.CreateLocation(context.Background(), "koval@test.com", "", "12 Market Street", "0000")

	require.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestUpdateEmployee_RenameKeepsEmail(t *testing.T) {
	t.Parallel()

	dir, mock := newDirectory(t)

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.Serializable})
	mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE email = $1")).
		WithArgs("cole@test.com").
		WillReturnRows(pgxmock.NewRows(employeeCols).AddRow("cole@test.com", "Ada Cole", int64(0), time.Now()))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE employees")).
		WithArgs("cole@test.com", "cole@test.com", "Ada Lind").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	err := dir.UpdateEmployee(context.Background(), "cole@test.com", "", "Ada Lind")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEmployee_NewEmailMovesAccount(t *testing.T) {
	t.Parallel()

	dir, mock := newDirectory(t)

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.Serializable})
	mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE email = $1")).
		WithArgs("cole@test.com").
		WillReturnRows(pgxmock.NewRows(employeeCols).AddRow("cole@test.com", "Ada Cole", int64(0), time.Now()))
	expectNoAccount(mock, "lind@test.com")
	mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts SET email = $2")).
		WithArgs("cole@test.com", "lind@test.com").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE employees")).
		WithArgs("cole@test.com", "lind@test.com", "Ada Cole").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	err := dir.UpdateEmployee(context.Background(), "cole@test.com", "lind@test.com", "")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEmployee_NewEmailInUse(t *testing.T) {
	t.Parallel()

	dir, mock := newDirectory(t)

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.Serializable})
	mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE email = $1")).
		WithArgs("cole@test.com").
		WillReturnRows(pgxmock.NewRows(employeeCols).AddRow("cole@test.com", "Ada Cole", int64(0), time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta("FROM accounts WHERE email = $1")).
		WithArgs("lind@test.com").
		WillReturnRows(pgxmock.NewRows(accountCols).AddRow("lind@test.com", "hash", "staff"))
	mock.ExpectRollback()

	err := dir.UpdateEmployee(context.Background(), "cole@test.com", "lind@test.com", "")

	require.ErrorIs(t, err, apperror.ErrConstraintViolation)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEmployee_NothingToUpdate(t *testing.T) {
	t.Parallel()

	dir, _ := newDirectory(t)

	err := dir.UpdateEmployee(context.Background(), "cole@test.com", "", "")

	require.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestPlacement_Assigned(t *testing.T) {
	t.Parallel()

	dir, mock := newDirectory(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE email = $1")).
		WithArgs("cole@test.com").
		WillReturnRows(pgxmock.NewRows(employeeCols).AddRow("cole@test.com", "Ada Cole", int64(7), time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta("FROM locations WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows(locationCols).
			AddRow(int64(7), "Koval's Carrot Farm", "12 Market Street", "koval@test.com", int64(4), time.Now()))

	placement, err := dir.Placement(context.Background(), "cole@test.com")

	require.NoError(t, err)
	assert.Equal(t, "Koval's Carrot Farm", placement.LocationName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlacement_Unassigned(t *testing.T) {
	t.Parallel()

	dir, mock := newDirectory(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE email = $1")).
		WithArgs("cole@test.com").
		WillReturnRows(pgxmock.NewRows(employeeCols).AddRow("cole@test.com", "Ada Cole", int64(0), time.Now()))

	placement, err := dir.Placement(context.Background(), "cole@test.com")

	require.NoError(t, err)
	assert.Equal(t, directory.UnassignedLabel, placement.LocationName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLocationOverview(t *testing.T) {
	t.Parallel()

	dir, mock := newDirectory(t)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM locations WHERE email = $1")).
		WithArgs("koval@test.com").
		WillReturnRows(pgxmock.NewRows(locationCols).
			AddRow(int64(7), "Koval's Carrot Farm", "12 Market Street", "koval@test.com", int64(2), now))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE assigned_to = $1")).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows(employeeCols).
			AddRow("a@test.com", "Ada Archer", int64(7), now).
			AddRow("b@test.com", "Boris Bauer", int64(7), now))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE location_id = $1 AND status = TRUE")).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows(
			[]string{"reqnum", "location_id", "quantity", "date_requested", "date_submitted", "status"}).
			AddRow(int64(42), int64(7), 5, now, now, true))

	overview, err := dir.LocationOverview(context.Background(), "koval@test.com")

	require.NoError(t, err)
	assert.Equal(t, int64(7), overview.Location.ID)
	assert.Len(t, overview.Roster, 2)
	assert.Len(t, overview.Requests, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}
