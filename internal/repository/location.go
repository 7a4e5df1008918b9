package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Houeta/staffdesk/internal/models"
)

// SaveLocation inserts a new location and returns its generated id.
// The counter starts at zero; assignments bump it through AddEmployees.
func (r *Repository) SaveLocation(ctx context.Context, name, address, email string) (int64, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("save_location").Observe(duration)
	}()
	query := `
		INSERT INTO locations (name, address, email)
		VALUES ($1, $2, $3)
		RETURNING id;
	`

	var id int64
	err := r.db.QueryRow(ctx, query, name, address, email).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save location: %w", translate(err))
	}

	return id, nil
}

// GetLocationByID retrieves a location from the database by its id.
func (r *Repository) GetLocationByID(ctx context.Context, id int64) (models.Location, error) {
	var result models.Location

	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("get_location").Observe(duration)
	}()
	query := `SELECT id, name, address, email, num_employees, last_update FROM locations WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&result.ID, &result.Name, &result.Address, &result.Email, &result.NumEmployees, &result.LastUpdate)
	if err != nil {
		return models.Location{}, fmt.Errorf("failed to get location by id: %w", translate(err))
	}

	return result, nil
}

// GetLocationByEmail retrieves the location owned by the given account email.
func (r *Repository) GetLocationByEmail(ctx context.Context, email string) (models.Location, error) {
	var result models.Location

	query := `SELECT id, name, address, email, num_employees, last_update FROM locations WHERE email = $1`

	err := r.db.QueryRow(ctx, query, email).Scan(
		&result.ID, &result.Name, &result.Address, &result.Email, &result.NumEmployees, &result.LastUpdate)
	if err != nil {
		return models.Location{}, fmt.Errorf("failed to get location by email: %w", translate(err))
	}

	return result, nil
}

// ListLocations returns every location ordered by id.
func (r *Repository) ListLocations(ctx context.Context) ([]models.Location, error) {
	query := `SELECT id, name, address, email, num_employees, last_update FROM locations ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", translate(err))
	}
	defer rows.Close()

	var result []models.Location
	for rows.Next() {
		var loc models.Location
		if err = rows.Scan(&loc.ID, &loc.Name, &loc.Address, &loc.Email, &loc.NumEmployees, &loc.LastUpdate); err != nil {
			return nil, fmt.Errorf("failed to scan location row: %w", err)
		}
		result = append(result, loc)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read location rows: %w", translate(err))
	}

	return result, nil
}

// AddEmployees adjusts the derived employee counter by delta (negative to
// decrement) and refreshes last_update. A missing row means the location
// vanished under the caller.
func (r *Repository) AddEmployees(ctx context.Context, id, delta int64) error {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("add_employees").Observe(duration)
	}()
	query := `
		UPDATE locations
		SET num_employees = num_employees + $2, last_update = CURRENT_TIMESTAMP
		WHERE id = $1;
	`

	tag, err := r.db.Exec(ctx, query, id, delta)
	if err != nil {
		return fmt.Errorf("failed to update location counter: %w", translate(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to update location counter: %w", translate(pgx.ErrNoRows))
	}

	return nil
}

// UpdateLocationInfo updates a location's display fields and owning email.
// The account email must be updated first within the same transaction.
func (r *Repository) UpdateLocationInfo(ctx context.Context, id int64, name, address, email string) error {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("update_location").Observe(duration)
	}()
	query := `
		UPDATE locations
		SET name = $2, address = $3, email = $4, last_update = CURRENT_TIMESTAMP
		WHERE id = $1;
	`

	tag, err := r.db.Exec(ctx, query, id, name, address, email)
	if err != nil {
		return fmt.Errorf("failed to update location data: %w", translate(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to update location data: %w", translate(pgx.ErrNoRows))
	}

	return nil
}

// DeleteLocation removes the location row. Assigned employees must be
// unassigned first so the edge set never references a dead location.
func (r *Repository) DeleteLocation(ctx context.Context, id int64) error {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("delete_location").Observe(duration)
	}()
	query := `DELETE FROM locations WHERE id = $1;`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete location: %w", translate(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to delete location: %w", translate(pgx.ErrNoRows))
	}

	return nil
}
