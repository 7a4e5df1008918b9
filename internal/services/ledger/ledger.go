// Package ledger owns the (employee, location) placement edges and the
// derived per-location employee counters. Every write to an employee's
// assignment or a location's counter flows through this package so the two
// can never be observed disagreeing.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Houeta/staffdesk/internal/apperror"
	"github.com/Houeta/staffdesk/internal/metrics"
	"github.com/Houeta/staffdesk/internal/models"
	"github.com/Houeta/staffdesk/internal/repository"
)

type Ledger struct {
	log     *slog.Logger
	db      repository.TxStarter
	store   repository.StoreIface
	metrics *metrics.Metrics
}

func NewLedger(
	log *slog.Logger,
	db repository.TxStarter,
	store repository.StoreIface,
	mtr *metrics.Metrics,
) *Ledger {
	return &Ledger{log: log, db: db, store: store, metrics: mtr}
}

func (l *Ledger) initLogger(opn string) *slog.Logger {
	return l.log.With(
		slog.String("op", opn),
		slog.String("division", "ledger"),
	)
}

// Assign moves one employee's placement to the given location inside a
// single transaction: the edge, the destination counter and, when the
// employee was placed elsewhere, the previous location's counter all commit
// together or not at all.
func (l *Ledger) Assign(ctx context.Context, email string, locationID int64) error {
	const opn = "Ledger.Assign"
	log := l.initLogger(opn)

	err := repository.RunInTx(ctx, l.db, l.store, func(store repository.StoreIface) error {
		return Move(ctx, store, email, locationID)
	})
	if err != nil {
		return fmt.Errorf("failed to assign employee '%s' to location %d: %w", email, locationID, err)
	}

	l.metrics.Assignments.WithLabelValues("assign").Inc()
	log.InfoContext(ctx, "Employee assigned", "email", email, "location_id", locationID)

	return nil
}

// Unassign clears one employee's placement. It is Assign to the unassigned
// sentinel: no destination counter exists, so only the previous location's
// counter is decremented.
func (l *Ledger) Unassign(ctx context.Context, email string) error {
	const opn = "Ledger.Unassign"
	log := l.initLogger(opn)

	err := repository.RunInTx(ctx, l.db, l.store, func(store repository.StoreIface) error {
		return Move(ctx, store, email, models.Unassigned)
	})
	if err != nil {
		return fmt.Errorf("failed to unassign employee '%s': %w", email, err)
	}

	l.metrics.Assignments.WithLabelValues("unassign").Inc()
	log.InfoContext(ctx, "Employee unassigned", "email", email)

	return nil
}

// Move applies one placement move inside the caller's transaction. It is
// the single code path that mutates the edge set and the counters: the
// fulfillment engine and lifecycle manager call it from their own larger
// transactions.
func Move(ctx context.Context, store repository.StoreIface, email string, locationID int64) error {
	emp, err := store.GetEmployeeByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("employee lookup: %w", err)
	}

	if emp.AssignedTo == locationID {
		return nil // nothing to move
	}

	if locationID != models.Unassigned {
		if _, err = store.GetLocationByID(ctx, locationID); err != nil {
			return fmt.Errorf("location lookup: %w", err)
		}

		if err = store.AddEmployees(ctx, locationID, 1); err != nil {
			// The destination was seen above, so a missing row now means it
			// was deleted under this transaction.
			if errors.Is(err, apperror.ErrNotFound) {
				return fmt.Errorf("destination location %d vanished: %w", locationID, apperror.ErrConstraintViolation)
			}
			return fmt.Errorf("destination counter: %w", err)
		}
	}

	if emp.AssignedTo != models.Unassigned {
		if err = store.AddEmployees(ctx, emp.AssignedTo, -1); err != nil {
			return fmt.Errorf("previous location counter: %w", err)
		}
	}

	if err = store.SetAssignment(ctx, email, locationID); err != nil {
		return fmt.Errorf("placement edge: %w", err)
	}

	return nil
}
