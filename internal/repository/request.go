package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Houeta/staffdesk/internal/models"
)

// SaveRequest inserts a new open staffing request and returns its number.
func (r *Repository) SaveRequest(
	ctx context.Context,
	locationID int64,
	quantity int,
	dateRequested, dateSubmitted time.Time,
) (int64, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("save_request").Observe(duration)
	}()
	query := `
		INSERT INTO requests (location_id, quantity, date_requested, date_submitted, status)
		VALUES ($1, $2, $3, $4, TRUE)
		RETURNING reqnum;
	`

	var reqnum int64
	err := r.db.QueryRow(ctx, query, locationID, quantity, dateRequested, dateSubmitted).Scan(&reqnum)
	if err != nil {
		return 0, fmt.Errorf("failed to save request: %w", translate(err))
	}

	return reqnum, nil
}

// GetRequestByNum retrieves a staffing request by its number.
func (r *Repository) GetRequestByNum(ctx context.Context, reqnum int64) (models.StaffRequest, error) {
	var result models.StaffRequest

	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("get_request").Observe(duration)
	}()
	query := `
		SELECT reqnum, location_id, quantity, date_requested, date_submitted, status
		FROM requests WHERE reqnum = $1`

	err := r.db.QueryRow(ctx, query, reqnum).Scan(
		&result.ReqNum, &result.LocationID, &result.Quantity,
		&result.DateRequested, &result.DateSubmitted, &result.Open)
	if err != nil {
		return models.StaffRequest{}, fmt.Errorf("failed to get request by number: %w", translate(err))
	}

	return result, nil
}

// ListRequests returns requests with the given status ordered by submission
// date ascending, oldest first.
func (r *Repository) ListRequests(ctx context.Context, open bool) ([]models.StaffRequest, error) {
	query := `
		SELECT reqnum, location_id, quantity, date_requested, date_submitted, status
		FROM requests WHERE status = $1 ORDER BY date_submitted ASC, reqnum ASC`

	rows, err := r.db.Query(ctx, query, open)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", translate(err))
	}
	defer rows.Close()

	return scanRequests(rows)
}

// ListOpenByLocation returns one location's open requests, oldest first.
func (r *Repository) ListOpenByLocation(ctx context.Context, locationID int64) ([]models.StaffRequest, error) {
	query := `
		SELECT reqnum, location_id, quantity, date_requested, date_submitted, status
		FROM requests WHERE location_id = $1 AND status = TRUE ORDER BY date_submitted ASC, reqnum ASC`

	rows, err := r.db.Query(ctx, query, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list open requests by location: %w", translate(err))
	}
	defer rows.Close()

	return scanRequests(rows)
}

// SetRequestStatus sets the open flag of a request.
func (r *Repository) SetRequestStatus(ctx context.Context, reqnum int64, open bool) error {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("set_request_status").Observe(duration)
	}()
	query := `UPDATE requests SET status = $2 WHERE reqnum = $1;`

	tag, err := r.db.Exec(ctx, query, reqnum, open)
	if err != nil {
		return fmt.Errorf("failed to set request status: %w", translate(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to set request status: %w", translate(pgx.ErrNoRows))
	}

	return nil
}

func scanRequests(rows pgx.Rows) ([]models.StaffRequest, error) {
	var result []models.StaffRequest

	for rows.Next() {
		var req models.StaffRequest
		err := rows.Scan(&req.ReqNum, &req.LocationID, &req.Quantity,
			&req.DateRequested, &req.DateSubmitted, &req.Open)
		if err != nil {
			return nil, fmt.Errorf("failed to scan request row: %w", err)
		}
		result = append(result, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read request rows: %w", translate(err))
	}

	return result, nil
}
