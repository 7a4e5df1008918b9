package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Houeta/staffdesk/internal/models"
)

const employeeColumns = "email, name, assigned_to, last_update"

// SaveEmployee inserts a new employee. The backing account row must exist
// before this call; the foreign key rejects orphaned placements.
func (r *Repository) SaveEmployee(ctx context.Context, email, name string, assignedTo int64) error {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("save_employee").Observe(duration)
	}()
	query := `
		INSERT INTO employees (email, name, assigned_to)
		VALUES ($1, $2, $3);
	`

	_, err := r.db.Exec(ctx, query, email, name, assignedTo)
	if err != nil {
		return fmt.Errorf("failed to save employee: %w", translate(err))
	}

	return nil
}

// GetEmployeeByEmail retrieves an employee from the database by their email.
func (r *Repository) GetEmployeeByEmail(ctx context.Context, email string) (models.Employee, error) {
	var result models.Employee

	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("get_employee").Observe(duration)
	}()
	query := `SELECT email, name, assigned_to, last_update FROM employees WHERE email = $1`

	err := r.db.QueryRow(ctx, query, email).Scan(
		&result.Email, &result.Name, &result.AssignedTo, &result.LastUpdate)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to get employee by email: %w", translate(err))
	}

	return result, nil
}

// UpdateEmployeeIdentity renames an employee and/or moves them to a new email.
// The account email must be updated first within the same transaction.
func (r *Repository) UpdateEmployeeIdentity(ctx context.Context, oldEmail, newEmail, name string) error {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("update_employee").Observe(duration)
	}()
	query := `
		UPDATE employees
		SET email = $2, name = $3, last_update = CURRENT_TIMESTAMP
		WHERE email = $1;
	`

	tag, err := r.db.Exec(ctx, query, oldEmail, newEmail, name)
	if err != nil {
		return fmt.Errorf("failed to update employee data: %w", translate(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to update employee data: %w", translate(pgx.ErrNoRows))
	}

	return nil
}

// ListEmployees returns every staff-role employee ordered by name.
func (r *Repository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	query := `
		SELECT e.email, e.name, e.assigned_to, e.last_update
		FROM employees e
		JOIN accounts a ON a.email = e.email
		WHERE a.role = 'staff'
		ORDER BY e.name ASC, e.email ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", translate(err))
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// ListEmployeesByLocation returns the roster of one location ordered by name.
func (r *Repository) ListEmployeesByLocation(ctx context.Context, locationID int64) ([]models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE assigned_to = $1 ORDER BY name ASC, email ASC`

	rows, err := r.db.Query(ctx, query, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by location: %w", translate(err))
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// ListUnassigned returns the pool of employees with no placement.
func (r *Repository) ListUnassigned(ctx context.Context) ([]models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE assigned_to = 0 ORDER BY name ASC, email ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list unassigned employees: %w", translate(err))
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// SelectUnassignedForUpdate locks up to limit unassigned employees, ordered
// by name with email as the stable tie-break. The row locks keep concurrent
// fulfillments from selecting the same employees.
func (r *Repository) SelectUnassignedForUpdate(ctx context.Context, limit int) ([]models.Employee, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("select_unassigned").Observe(duration)
	}()
	query := `
		SELECT email, name, assigned_to, last_update
		FROM employees
		WHERE assigned_to = 0
		ORDER BY name ASC, email ASC
		LIMIT $1
		FOR UPDATE;
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select unassigned employees: %w", translate(err))
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// SetAssignment points the employee's placement edge at locationID and
// refreshes last_update. The caller adjusts the affected counters in the
// same transaction.
func (r *Repository) SetAssignment(ctx context.Context, email string, locationID int64) error {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("set_assignment").Observe(duration)
	}()
	query := `
		UPDATE employees
		SET assigned_to = $2, last_update = CURRENT_TIMESTAMP
		WHERE email = $1;
	`

	tag, err := r.db.Exec(ctx, query, email, locationID)
	if err != nil {
		return fmt.Errorf("failed to set assignment: %w", translate(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to set assignment: %w", translate(pgx.ErrNoRows))
	}

	return nil
}

// UnassignAtLocation resets every employee of a location to the unassigned
// sentinel and reports how many edges were cleared.
func (r *Repository) UnassignAtLocation(ctx context.Context, locationID int64) (int64, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("unassign_at_location").Observe(duration)
	}()
	query := `
		UPDATE employees
		SET assigned_to = 0, last_update = CURRENT_TIMESTAMP
		WHERE assigned_to = $1;
	`

	tag, err := r.db.Exec(ctx, query, locationID)
	if err != nil {
		return 0, fmt.Errorf("failed to unassign employees at location: %w", translate(err))
	}

	return tag.RowsAffected(), nil
}

// DeleteEmployee removes the employee row. The account row is removed by the
// lifecycle manager within the same transaction.
func (r *Repository) DeleteEmployee(ctx context.Context, email string) error {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("delete_employee").Observe(duration)
	}()
	query := `DELETE FROM employees WHERE email = $1;`

	tag, err := r.db.Exec(ctx, query, email)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", translate(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to delete employee: %w", translate(pgx.ErrNoRows))
	}

	return nil
}

func scanEmployees(rows pgx.Rows) ([]models.Employee, error) {
	var result []models.Employee

	for rows.Next() {
		var emp models.Employee
		if err := rows.Scan(&emp.Email, &emp.Name, &emp.AssignedTo, &emp.LastUpdate); err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		result = append(result, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employee rows: %w", translate(err))
	}

	return result, nil
}
