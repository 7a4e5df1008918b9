// Package lifecycle handles entity deletion and the cascading ledger repair
// it requires. The counter decrements are explicit here rather than hidden
// in schema triggers, so the invariant-preserving logic stays visible and
// testable.
package lifecycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Houeta/staffdesk/internal/lib/logger/sl"
	"github.com/Houeta/staffdesk/internal/metrics"
	"github.com/Houeta/staffdesk/internal/models"
	"github.com/Houeta/staffdesk/internal/repository"
)

type Manager struct {
	log     *slog.Logger
	db      repository.TxStarter
	store   repository.StoreIface
	metrics *metrics.Metrics
}

func NewManager(
	log *slog.Logger,
	db repository.TxStarter,
	store repository.StoreIface,
	mtr *metrics.Metrics,
) *Manager {
	return &Manager{log: log, db: db, store: store, metrics: mtr}
}

func (m *Manager) initLogger(opn string) *slog.Logger {
	return m.log.With(
		slog.String("op", opn),
		slog.String("division", "lifecycle"),
	)
}

// DeleteEmployees removes the given employees together with their accounts
// and reports how many deletions succeeded. Each email is its own
// transaction: a failure on one does not block the rest of the batch, but
// every single deletion is atomic across the employee, location and
// account tables.
func (m *Manager) DeleteEmployees(ctx context.Context, emails []string) int {
	const opn = "Lifecycle.DeleteEmployees"
	log := m.initLogger(opn)

	var deleted int
	for _, email := range emails {
		if err := m.deleteEmployee(ctx, email); err != nil {
			log.WarnContext(ctx, "Failed to delete employee, continuing batch", "email", email, sl.Err(err))
			continue
		}
		deleted++
	}

	m.metrics.Deletions.WithLabelValues("employee").Add(float64(deleted))
	log.InfoContext(ctx, "Employee batch deletion finished", "requested", len(emails), "deleted", deleted)

	return deleted
}

func (m *Manager) deleteEmployee(ctx context.Context, email string) error {
	return repository.RunInTx(ctx, m.db, m.store, func(store repository.StoreIface) error {
		emp, err := store.GetEmployeeByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("employee lookup: %w", err)
		}

		if emp.AssignedTo != models.Unassigned {
			if err = store.AddEmployees(ctx, emp.AssignedTo, -1); err != nil {
				return fmt.Errorf("location counter: %w", err)
			}
		}

		if err = store.DeleteEmployee(ctx, email); err != nil {
			return err
		}
		if err = store.DeleteAccount(ctx, email); err != nil {
			return err
		}

		return nil
	})
}

// DeleteLocations removes the given locations together with their accounts
// and reports how many deletions succeeded. Every employee assigned to a
// deleted location is returned to the unassigned pool in the same
// transaction; there is no destination counter to increment.
func (m *Manager) DeleteLocations(ctx context.Context, ids []int64) int {
	const opn = "Lifecycle.DeleteLocations"
	log := m.initLogger(opn)

	var deleted int
	for _, id := range ids {
		if err := m.deleteLocation(ctx, id); err != nil {
			log.WarnContext(ctx, "Failed to delete location, continuing batch", "location_id", id, sl.Err(err))
			continue
		}
		deleted++
	}

	m.metrics.Deletions.WithLabelValues("location").Add(float64(deleted))
	log.InfoContext(ctx, "Location batch deletion finished", "requested", len(ids), "deleted", deleted)

	return deleted
}

func (m *Manager) deleteLocation(ctx context.Context, id int64) error {
	return repository.RunInTx(ctx, m.db, m.store, func(store repository.StoreIface) error {
		loc, err := store.GetLocationByID(ctx, id)
		if err != nil {
			return fmt.Errorf("location lookup: %w", err)
		}

		if _, err = store.UnassignAtLocation(ctx, id); err != nil {
			return err
		}

		if err = store.DeleteLocation(ctx, id); err != nil {
			return err
		}
		if err = store.DeleteAccount(ctx, loc.Email); err != nil {
			return err
		}

		return nil
	})
}
