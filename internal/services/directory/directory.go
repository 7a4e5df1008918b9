// Package directory manages the creation and upkeep of employees and
// locations together with their backing accounts, and serves the placement
// views shown to signed-in users.
package directory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Houeta/staffdesk/internal/apperror"
	"github.com/Houeta/staffdesk/internal/auth"
	"github.com/Houeta/staffdesk/internal/metrics"
	"github.com/Houeta/staffdesk/internal/models"
	"github.com/Houeta/staffdesk/internal/repository"
	"github.com/Houeta/staffdesk/internal/services/ledger"
)

// UnassignedLabel is shown in placement views for employees with no location.
const UnassignedLabel = "Unassigned"

type Directory struct {
	log     *slog.Logger
	db      repository.TxStarter
	store   repository.StoreIface
	metrics *metrics.Metrics
}

func NewDirectory(
	log *slog.Logger,
	db repository.TxStarter,
	store repository.StoreIface,
	mtr *metrics.Metrics,
) *Directory {
	return &Directory{log: log, db: db, store: store, metrics: mtr}
}

func (d *Directory) initLogger(opn string) *slog.Logger {
	return d.log.With(
		slog.String("op", opn),
		slog.String("division", "directory"),
	)
}

// Placement is the employee-home view: where an employee currently works.
type Placement struct {
	Employee     models.Employee
	LocationName string
}

// Overview is the site-manager home view: the location, its roster ordered
// by name, and its open requests oldest first.
type Overview struct {
	Location models.Location
	Roster   []models.Employee
	Requests []models.StaffRequest
}

// CreateEmployee creates a staff account and its employee row in one
// transaction. An admin role creates only the account; admins have no
// placement record. When assignedTo is non-zero the new employee starts
// placed and the destination counter is bumped through the ledger.
func (d *Directory) CreateEmployee(
	ctx context.Context,
	email, name, password string,
	assignedTo int64,
	role models.Role,
) error {
	const opn = "Directory.CreateEmployee"
	log := d.initLogger(opn)

	if email == "" || name == "" || password == "" {
		return fmt.Errorf("email, name and password are required: %w", apperror.ErrInvalidInput)
	}
	if role != models.RoleStaff && role != models.RoleAdmin {
		return fmt.Errorf("role %q cannot own an employee record: %w", role, apperror.ErrInvalidInput)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	err = repository.RunInTx(ctx, d.db, d.store, func(store repository.StoreIface) error {
		if inUseErr := emailInUse(ctx, store, email); inUseErr != nil {
			return inUseErr
		}

		if saveErr := store.SaveAccount(ctx, email, hash, role); saveErr != nil {
			return saveErr
		}

		if role != models.RoleStaff {
			return nil
		}

		if saveErr := store.SaveEmployee(ctx, email, name, models.Unassigned); saveErr != nil {
			return saveErr
		}

		if assignedTo != models.Unassigned {
			if moveErr := ledger.Move(ctx, store, email, assignedTo); moveErr != nil {
				return moveErr
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create employee '%s': %w", email, err)
	}

	log.InfoContext(ctx, "Employee created", "email", email, "role", role, "assigned_to", assignedTo)

	return nil
}

// CreateLocation creates a site-manager account and its location row in one
// transaction, returning the new location id.
func (d *Directory) CreateLocation(ctx context.Context, email, name, address, password string) (int64, error) {
	const opn = "Directory.CreateLocation"
	log := d.initLogger(opn)

	if email == "" || name == "" || address == "" || password == "" {
		return 0, fmt.Errorf("email, name, address and password are required: %w", apperror.ErrInvalidInput)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return 0, err
	}

	var id int64
	err = repository.RunInTx(ctx, d.db, d.store, func(store repository.StoreIface) error {
		if inUseErr := emailInUse(ctx, store, email); inUseErr != nil {
			return inUseErr
		}

		if saveErr := store.SaveAccount(ctx, email, hash, models.RoleSiteManager); saveErr != nil {
			return saveErr
		}

		var saveErr error
		id, saveErr = store.SaveLocation(ctx, name, address, email)
		return saveErr
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create location '%s': %w", name, err)
	}

	log.InfoContext(ctx, "Location created", "id", id, "name", name, "email", email)

	return id, nil
}

// UpdateEmployee renames an employee and/or moves them to a new email.
// Blank fields keep the current values. The account row moves together
// with the employee row so no orphaned sign-in record can appear.
func (d *Directory) UpdateEmployee(ctx context.Context, email, newEmail, newName string) error {
	const opn = "Directory.UpdateEmployee"
	log := d.initLogger(opn)

	if newEmail == "" && newName == "" {
		return fmt.Errorf("nothing to update: %w", apperror.ErrInvalidInput)
	}

	err := repository.RunInTx(ctx, d.db, d.store, func(store repository.StoreIface) error {
		emp, lookupErr := store.GetEmployeeByEmail(ctx, email)
		if lookupErr != nil {
			return fmt.Errorf("employee lookup: %w", lookupErr)
		}

		if newEmail == "" {
			newEmail = emp.Email
		}
		if newName == "" {
			newName = emp.Name
		}

		if newEmail != emp.Email {
			if inUseErr := emailInUse(ctx, store, newEmail); inUseErr != nil {
				return inUseErr
			}
			if updErr := store.UpdateAccountEmail(ctx, emp.Email, newEmail); updErr != nil {
				return updErr
			}
		}

		return store.UpdateEmployeeIdentity(ctx, emp.Email, newEmail, newName)
	})
	if err != nil {
		return fmt.Errorf("failed to update employee '%s': %w", email, err)
	}

	log.InfoContext(ctx, "Employee updated", "email", email, "new_email", newEmail)

	return nil
}

// UpdateLocation updates a location's display fields and/or owning email.
// Blank fields keep the current values.
func (d *Directory) UpdateLocation(ctx context.Context, id int64, newEmail, newName, newAddress string) error {
	const opn = "Directory.UpdateLocation"
	log := d.initLogger(opn)

	if newEmail == "" && newName == "" && newAddress == "" {
		return fmt.Errorf("nothing to update: %w", apperror.ErrInvalidInput)
	}

	err := repository.RunInTx(ctx, d.db, d.store, func(store repository.StoreIface) error {
		loc, lookupErr := store.GetLocationByID(ctx, id)
		if lookupErr != nil {
			return fmt.Errorf("location lookup: %w", lookupErr)
		}

		if newEmail == "" {
			newEmail = loc.Email
		}
		if newName == "" {
			newName = loc.Name
		}
		if newAddress == "" {
			newAddress = loc.Address
		}

		if newEmail != loc.Email {
			if inUseErr := emailInUse(ctx, store, newEmail); inUseErr != nil {
				return inUseErr
			}
			if updErr := store.UpdateAccountEmail(ctx, loc.Email, newEmail); updErr != nil {
				return updErr
			}
		}

		return store.UpdateLocationInfo(ctx, id, newName, newAddress, newEmail)
	})
	if err != nil {
		return fmt.Errorf("failed to update location %d: %w", id, err)
	}

	log.InfoContext(ctx, "Location updated", "id", id)

	return nil
}

// Placement resolves where an employee currently works, naming the
// location or the unassigned label.
func (d *Directory) Placement(ctx context.Context, email string) (Placement, error) {
	emp, err := d.store.GetEmployeeByEmail(ctx, email)
	if err != nil {
		return Placement{}, fmt.Errorf("employee lookup: %w", err)
	}

	placement := Placement{Employee: emp, LocationName: UnassignedLabel}
	if emp.AssignedTo != models.Unassigned {
		loc, locErr := d.store.GetLocationByID(ctx, emp.AssignedTo)
		if locErr != nil {
			return Placement{}, fmt.Errorf("location lookup: %w", locErr)
		}
		placement.LocationName = loc.Name
	}

	return placement, nil
}

// LocationOverview builds the site-manager home view for the location
// owned by the given account email.
func (d *Directory) LocationOverview(ctx context.Context, email string) (Overview, error) {
	loc, err := d.store.GetLocationByEmail(ctx, email)
	if err != nil {
		return Overview{}, fmt.Errorf("location lookup: %w", err)
	}

	roster, err := d.store.ListEmployeesByLocation(ctx, loc.ID)
	if err != nil {
		return Overview{}, err
	}

	reqs, err := d.store.ListOpenByLocation(ctx, loc.ID)
	if err != nil {
		return Overview{}, err
	}

	return Overview{Location: loc, Roster: roster, Requests: reqs}, nil
}

// ListEmployees returns every staff-role employee, ordered by name.
func (d *Directory) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	return d.store.ListEmployees(ctx)
}

// ListLocations returns every location, ordered by id.
func (d *Directory) ListLocations(ctx context.Context) ([]models.Location, error) {
	return d.store.ListLocations(ctx)
}

// ListUnassigned returns the pool of employees awaiting placement.
func (d *Directory) ListUnassigned(ctx context.Context) ([]models.Employee, error) {
	return d.store.ListUnassigned(ctx)
}

// emailInUse reports ErrConstraintViolation when an account already holds
// the email.
func emailInUse(ctx context.Context, store repository.StoreIface, email string) error {
	_, err := store.GetAccountByEmail(ctx, email)
	if err == nil {
		return fmt.Errorf("email '%s' already in use: %w", email, apperror.ErrConstraintViolation)
	}
	if errors.Is(err, apperror.ErrNotFound) {
		return nil
	}
	return fmt.Errorf("account lookup: %w", err)
}
