package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Houeta/staffdesk/internal/metrics"
	"github.com/Houeta/staffdesk/internal/models"
)

type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// EmployeeRepoIface represents the interface for interacting with employee data in the repository.
type EmployeeRepoIface interface {
	SaveEmployee(ctx context.Context, email, name string, assignedTo int64) error
	GetEmployeeByEmail(ctx context.Context, email string) (models.Employee, error)
	UpdateEmployeeIdentity(ctx context.Context, oldEmail, newEmail, name string) error
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	ListEmployeesByLocation(ctx context.Context, locationID int64) ([]models.Employee, error)
	ListUnassigned(ctx context.Context) ([]models.Employee, error)
	SelectUnassignedForUpdate(ctx context.Context, limit int) ([]models.Employee, error)
	SetAssignment(ctx context.Context, email string, locationID int64) error
	UnassignAtLocation(ctx context.Context, locationID int64) (int64, error)
	DeleteEmployee(ctx context.Context, email string) error
}

func NewEmployeeRepository(db Database, mtr *metrics.Metrics) EmployeeRepoIface {
	return &Repository{db: db, metrics: mtr}
}

// LocationRepoIface represents the interface for interacting with location data in the repository.
type LocationRepoIface interface {
	SaveLocation(ctx context.Context, name, address, email string) (int64, error)
	GetLocationByID(ctx context.Context, id int64) (models.Location, error)
	GetLocationByEmail(ctx context.Context, email string) (models.Location, error)
	ListLocations(ctx context.Context) ([]models.Location, error)
	AddEmployees(ctx context.Context, id, delta int64) error
	UpdateLocationInfo(ctx context.Context, id int64, name, address, email string) error
	DeleteLocation(ctx context.Context, id int64) error
}

func NewLocationRepository(db Database, mtr *metrics.Metrics) LocationRepoIface {
	return &Repository{db: db, metrics: mtr}
}

// RequestRepoIface represents the interface for interacting with staffing requests in the repository.
type RequestRepoIface interface {
	SaveRequest(ctx context.Context, locationID int64, quantity int, dateRequested, dateSubmitted time.Time) (int64, error)
	GetRequestByNum(ctx context.Context, reqnum int64) (models.StaffRequest, error)
	ListRequests(ctx context.Context, open bool) ([]models.StaffRequest, error)
	ListOpenByLocation(ctx context.Context, locationID int64) ([]models.StaffRequest, error)
	SetRequestStatus(ctx context.Context, reqnum int64, open bool) error
}

func NewRequestRepository(db Database, mtr *metrics.Metrics) RequestRepoIface {
	return &Repository{db: db, metrics: mtr}
}

// AccountRepoIface represents the interface for interacting with sign-in accounts in the repository.
type AccountRepoIface interface {
	SaveAccount(ctx context.Context, email, passwordHash string, role models.Role) error
	GetAccountByEmail(ctx context.Context, email string) (models.Account, error)
	UpdateAccountEmail(ctx context.Context, oldEmail, newEmail string) error
	UpdatePasswordHash(ctx context.Context, email, passwordHash string) error
	DeleteAccount(ctx context.Context, email string) error
}

func NewAccountRepository(db Database, mtr *metrics.Metrics) AccountRepoIface {
	return &Repository{db: db, metrics: mtr}
}

// StoreIface aggregates every repository concern plus transaction rebinding.
// Multi-table operations begin a transaction via TxStarter and run all of
// their statements through the rebound store returned by WithTx.
type StoreIface interface {
	EmployeeRepoIface
	LocationRepoIface
	RequestRepoIface
	AccountRepoIface
	WithTx(tx pgx.Tx) StoreIface
}

func NewStore(db Database, mtr *metrics.Metrics) StoreIface {
	return &Repository{db: db, metrics: mtr}
}

// WithTx returns a copy of the repository whose statements run inside tx.
func (r *Repository) WithTx(tx pgx.Tx) StoreIface {
	return &Repository{db: tx, metrics: r.metrics}
}
