// Package requests maintains the queue of staffing requests submitted by
// site managers. It validates submissions before anything is persisted and
// never touches the assignment ledger; fulfillment is a separate, manually
// triggered operation.
package requests

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Houeta/staffdesk/internal/apperror"
	"github.com/Houeta/staffdesk/internal/metrics"
	"github.com/Houeta/staffdesk/internal/models"
	"github.com/Houeta/staffdesk/internal/repository"
)

type Queue struct {
	log     *slog.Logger
	repo    repository.RequestRepoIface
	locRepo repository.LocationRepoIface
	metrics *metrics.Metrics
}

func NewQueue(
	log *slog.Logger,
	repo repository.RequestRepoIface,
	locRepo repository.LocationRepoIface,
	mtr *metrics.Metrics,
) *Queue {
	return &Queue{log: log, repo: repo, locRepo: locRepo, metrics: mtr}
}

func (q *Queue) initLogger(opn string) *slog.Logger {
	return q.log.With(
		slog.String("op", opn),
		slog.String("division", "requests"),
	)
}

// Submit validates and persists a new open staffing request. The quantity
// must be at least one and the requested date must not precede today; a
// requested date equal to today is acceptable. Validation happens before
// any write, so a rejected submission has no side effects.
func (q *Queue) Submit(ctx context.Context, locationID int64, quantity int, dateRequested time.Time) (int64, error) {
	const opn = "Requests.Submit"
	log := q.initLogger(opn)

	if quantity < 1 {
		return 0, fmt.Errorf("quantity %d is less than 1: %w", quantity, apperror.ErrInvalidInput)
	}

	today := startOfDay(time.Now())
	if startOfDay(dateRequested).Before(today) {
		return 0, fmt.Errorf("requested date %s is in the past: %w",
			dateRequested.Format(time.DateOnly), apperror.ErrInvalidInput)
	}

	if _, err := q.locRepo.GetLocationByID(ctx, locationID); err != nil {
		return 0, fmt.Errorf("location lookup: %w", err)
	}

	reqnum, err := q.repo.SaveRequest(ctx, locationID, quantity, startOfDay(dateRequested), today)
	if err != nil {
		return 0, fmt.Errorf("failed to submit request: %w", err)
	}

	q.metrics.RequestsSubmitted.Inc()
	log.InfoContext(ctx, "Request submitted",
		"reqnum", reqnum, "location_id", locationID, "quantity", quantity)

	return reqnum, nil
}

// Toggle flips a request between open and closed without touching the
// ledger. It models the manual open/close action: a request closed by hand
// stays closed until toggled back, and fulfillment never reopens anything.
// It returns the new status.
func (q *Queue) Toggle(ctx context.Context, reqnum int64) (bool, error) {
	const opn = "Requests.Toggle"
	log := q.initLogger(opn)

	req, err := q.repo.GetRequestByNum(ctx, reqnum)
	if err != nil {
		return false, fmt.Errorf("request lookup: %w", err)
	}

	if err = q.repo.SetRequestStatus(ctx, reqnum, !req.Open); err != nil {
		return false, fmt.Errorf("failed to toggle request %d: %w", reqnum, err)
	}

	log.InfoContext(ctx, "Request toggled", "reqnum", reqnum, "open", !req.Open)

	return !req.Open, nil
}

// ListOpen returns all open requests ordered by submission date ascending,
// oldest first. The ordering reflects first-come-first-served presentation;
// fulfillment order is the administrator's choice.
func (q *Queue) ListOpen(ctx context.Context) ([]models.StaffRequest, error) {
	reqs, err := q.repo.ListRequests(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list open requests: %w", err)
	}
	return reqs, nil
}

// ListClosed returns all actioned requests, oldest first.
func (q *Queue) ListClosed(ctx context.Context) ([]models.StaffRequest, error) {
	reqs, err := q.repo.ListRequests(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list closed requests: %w", err)
	}
	return reqs, nil
}

// ListOpenByLocation returns one location's open requests, oldest first.
func (q *Queue) ListOpenByLocation(ctx context.Context, locationID int64) ([]models.StaffRequest, error) {
	reqs, err := q.repo.ListOpenByLocation(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list open requests by location: %w", err)
	}
	return reqs, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
