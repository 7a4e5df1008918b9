// Package fulfillment implements the request-fulfillment engine: it moves
// unassigned employees to the requesting location and closes the request in
// one transaction. Fulfillment is best-effort: when the unassigned pool is
// smaller than the requested quantity the whole pool is taken, and the
// request closes even when nothing was available.
package fulfillment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Houeta/staffdesk/internal/apperror"
	"github.com/Houeta/staffdesk/internal/metrics"
	"github.com/Houeta/staffdesk/internal/repository"
	"github.com/Houeta/staffdesk/internal/services/ledger"
)

type Engine struct {
	log     *slog.Logger
	db      repository.TxStarter
	store   repository.StoreIface
	metrics *metrics.Metrics
}

func NewEngine(
	log *slog.Logger,
	db repository.TxStarter,
	store repository.StoreIface,
	mtr *metrics.Metrics,
) *Engine {
	return &Engine{log: log, db: db, store: store, metrics: mtr}
}

func (e *Engine) initLogger(opn string) *slog.Logger {
	return e.log.With(
		slog.String("op", opn),
		slog.String("division", "fulfillment"),
	)
}

// Fulfill actions one open staffing request. It selects unassigned
// employees ordered by name (email breaks ties), assigns up to the
// requested quantity to the requesting location through the ledger, and
// closes the request. The selection, every reassignment and the closure
// commit as a single serializable transaction: a crash mid-batch leaves
// the request open and no employee moved. Returns how many employees were
// actually reassigned, which may be fewer than requested, including zero.
func (e *Engine) Fulfill(ctx context.Context, reqnum int64) (int, error) {
	const opn = "Fulfillment.Fulfill"
	log := e.initLogger(opn)

	var taken int
	var locationID int64

	err := repository.RunInTx(ctx, e.db, e.store, func(store repository.StoreIface) error {
		req, err := store.GetRequestByNum(ctx, reqnum)
		if err != nil {
			return fmt.Errorf("request lookup: %w", err)
		}
		if !req.Open {
			return fmt.Errorf("request %d is already closed: %w", reqnum, apperror.ErrInvalidInput)
		}
		locationID = req.LocationID

		// Row locks on the selection keep a concurrent fulfillment from
		// taking the same employees.
		selected, err := store.SelectUnassignedForUpdate(ctx, req.Quantity)
		if err != nil {
			return fmt.Errorf("unassigned pool selection: %w", err)
		}

		for _, emp := range selected {
			if err = ledger.Move(ctx, store, emp.Email, req.LocationID); err != nil {
				return fmt.Errorf("reassign employee '%s': %w", emp.Email, err)
			}
		}

		if err = store.SetRequestStatus(ctx, reqnum, false); err != nil {
			return fmt.Errorf("request closure: %w", err)
		}

		taken = len(selected)
		return nil
	})
	if err != nil {
		e.metrics.Fulfillments.WithLabelValues("failure").Inc()
		return 0, fmt.Errorf("failed to fulfill request %d: %w", reqnum, err)
	}

	e.metrics.Fulfillments.WithLabelValues("success").Inc()
	e.metrics.EmployeesReassigned.Add(float64(taken))
	e.metrics.LastFulfillment.SetToCurrentTime()

	log.InfoContext(ctx, "Request fulfilled",
		"reqnum", reqnum, "location_id", locationID, "reassigned", taken)

	return taken, nil
}
