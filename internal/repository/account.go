package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Houeta/staffdesk/internal/models"
)

// SaveAccount inserts a new sign-in account. A duplicate email surfaces as
// a constraint violation.
func (r *Repository) SaveAccount(ctx context.Context, email, passwordHash string, role models.Role) error {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("save_account").Observe(duration)
	}()
	query := `
		INSERT INTO accounts (email, password_hash, role)
		VALUES ($1, $2, $3);
	`

	_, err := r.db.Exec(ctx, query, email, passwordHash, string(role))
	if err != nil {
		return fmt.Errorf("failed to save account: %w", translate(err))
	}

	return nil
}

// GetAccountByEmail retrieves an account by its email.
func (r *Repository) GetAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	var result models.Account

	query := `SELECT email, password_hash, role FROM accounts WHERE email = $1`

	err := r.db.QueryRow(ctx, query, email).Scan(&result.Email, &result.PasswordHash, &result.Role)
	if err != nil {
		return models.Account{}, fmt.Errorf("failed to get account by email: %w", translate(err))
	}

	return result, nil
}

// UpdateAccountEmail moves an account to a new email. Entity rows referring
// to the old email must be updated in the same transaction.
func (r *Repository) UpdateAccountEmail(ctx context.Context, oldEmail, newEmail string) error {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("update_account_email").Observe(duration)
	}()
	query := `UPDATE accounts SET email = $2 WHERE email = $1;`

	tag, err := r.db.Exec(ctx, query, oldEmail, newEmail)
	if err != nil {
		return fmt.Errorf("failed to update account email: %w", translate(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to update account email: %w", translate(pgx.ErrNoRows))
	}

	return nil
}

// UpdatePasswordHash replaces the stored password verifier.
func (r *Repository) UpdatePasswordHash(ctx context.Context, email, passwordHash string) error {
	query := `UPDATE accounts SET password_hash = $2 WHERE email = $1;`

	tag, err := r.db.Exec(ctx, query, email, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password hash: %w", translate(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to update password hash: %w", translate(pgx.ErrNoRows))
	}

	return nil
}

// DeleteAccount removes a sign-in account.
func (r *Repository) DeleteAccount(ctx context.Context, email string) error {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("delete_account").Observe(duration)
	}()
	query := `DELETE FROM accounts WHERE email = $1;`

	tag, err := r.db.Exec(ctx, query, email)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", translate(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to delete account: %w", translate(pgx.ErrNoRows))
	}

	return nil
}
