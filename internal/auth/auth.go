// Package auth implements the identity collaborator: account records,
// password verification and the typed principal handed to the core. The
// core never inspects session state; it receives a Principal produced here
// once at the boundary.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/Houeta/staffdesk/internal/apperror"
	"github.com/Houeta/staffdesk/internal/models"
	"github.com/Houeta/staffdesk/internal/repository"
)

// Principal is an authenticated identity with its role, produced once at
// the boundary and passed into the core by value.
type Principal struct {
	Email string
	Role  models.Role
}

// Can reports whether the principal holds one of the given roles.
func (p Principal) Can(roles ...models.Role) bool {
	for _, role := range roles {
		if p.Role == role {
			return true
		}
	}
	return false
}

type Identity struct {
	log  *slog.Logger
	repo repository.AccountRepoIface
}

func NewIdentity(log *slog.Logger, repo repository.AccountRepoIface) *Identity {
	return &Identity{log: log, repo: repo}
}

// VerifyCredentials checks the candidate password against the stored
// verifier and returns the account's principal. Both an unknown email and
// a password mismatch surface as the same authentication failure.
func (i *Identity) VerifyCredentials(ctx context.Context, email, password string) (Principal, error) {
	const opn = "Auth.VerifyCredentials"
	log := i.log.With(slog.String("op", opn))

	if email == "" || password == "" {
		return Principal{}, fmt.Errorf("email and password are required: %w", apperror.ErrInvalidInput)
	}

	account, err := i.repo.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return Principal{}, fmt.Errorf("unknown account: %w", apperror.ErrAuthFailure)
		}
		return Principal{}, fmt.Errorf("account lookup: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		log.WarnContext(ctx, "Password mismatch", "email", email)
		return Principal{}, fmt.Errorf("password mismatch: %w", apperror.ErrAuthFailure)
	}

	return Principal{Email: account.Email, Role: account.Role}, nil
}

// CreateAccount registers a standalone account, e.g. an administrator.
// Employee and location accounts are created by the directory service
// together with their entity rows.
func (i *Identity) CreateAccount(ctx context.Context, email, password string, role models.Role) error {
	if email == "" || password == "" {
		return fmt.Errorf("email and password are required: %w", apperror.ErrInvalidInput)
	}
	if !role.Valid() {
		return fmt.Errorf("unknown role %q: %w", role, apperror.ErrInvalidInput)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	if err = i.repo.SaveAccount(ctx, email, hash, role); err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// DeleteAccount removes a standalone account.
func (i *Identity) DeleteAccount(ctx context.Context, email string) error {
	if err := i.repo.DeleteAccount(ctx, email); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}

// ChangePassword replaces the stored verifier after the current password
// has been verified.
func (i *Identity) ChangePassword(ctx context.Context, email, current, next string) error {
	const opn = "Auth.ChangePassword"
	log := i.log.With(slog.String("op", opn))

	if current == "" || next == "" {
		return fmt.Errorf("current and new passwords are required: %w", apperror.ErrInvalidInput)
	}

	account, err := i.repo.GetAccountByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("account lookup: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(current)); err != nil {
		return fmt.Errorf("current password mismatch: %w", apperror.ErrAuthFailure)
	}

	hash, err := HashPassword(next)
	if err != nil {
		return err
	}

	if err = i.repo.UpdatePasswordHash(ctx, email, hash); err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}

	log.InfoContext(ctx, "Password changed", "email", email)

	return nil
}

// HashPassword produces the bcrypt verifier stored in the accounts table.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
