package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Houeta/staffdesk/internal/apperror"
	"github.com/Houeta/staffdesk/internal/models"
	"github.com/Houeta/staffdesk/internal/repository"
)

const saveAccountQuery = `
		INSERT INTO accounts (email, password_hash, role)
		VALUES ($1, $2, $3);
	`

const getAccountByEmailQuery = `SELECT email, password_hash, role FROM accounts WHERE email = $1`

const updateAccountEmailQuery = `UPDATE accounts SET email = $2 WHERE email = $1;`

const deleteAccountQuery = `DELETE FROM accounts WHERE email = $1;`

func TestSaveAccount_Success(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta(saveAccountQuery)).
		WithArgs("cole@test.com", "hash", "staff").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := repository.NewAccountRepository(mock, newTestMetrics())
	err = repo.SaveAccount(context.Background(), "cole@test.com", "hash", models.RoleStaff)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveAccount_DuplicateEmail(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta(saveAccountQuery)).
		WithArgs("cole@test.com", "hash", "staff").
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key"})

	repo := repository.NewAccountRepository(mock, newTestMetrics())
	err = repo.SaveAccount(context.Background(), "cole@test.com", "hash", models.RoleStaff)

	require.ErrorIs(t, err, apperror.ErrConstraintViolation)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAccountByEmail_Success(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"email", "password_hash", "role"}).
		AddRow("cole@test.com", "hash", "site-manager")

	mock.ExpectQuery(regexp.QuoteMeta(getAccountByEmailQuery)).
		WithArgs("cole@test.com").
		WillReturnRows(rows)

	repo := repository.NewAccountRepository(mock, newTestMetrics())
	account, err := repo.GetAccountByEmail(context.Background(), "cole@test.com")

	require.NoError(t, err)
	assert.Equal(t, models.RoleSiteManager, account.Role)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAccountByEmail_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(getAccountByEmailQuery)).
		WithArgs("ghost@test.com").
		WillReturnRows(pgxmock.NewRows([]string{"email", "password_hash", "role"}))

	repo := repository.NewAccountRepository(mock, newTestMetrics())
	_, err = repo.GetAccountByEmail(context.Background(), "ghost@test.com")

	require.ErrorIs(t, err, apperror.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAccountEmail_NoRows(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta(updateAccountEmailQuery)).
		WithArgs("ghost@test.com", "new@test.com").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := repository.NewAccountRepository(mock, newTestMetrics())
	err = repo.UpdateAccountEmail(context.Background(), "ghost@test.com", "new@test.com")

	require.ErrorIs(t, err, apperror.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAccount_Success(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta(deleteAccountQuery)).
		WithArgs("cole@test.com").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	repo := repository.NewAccountRepository(mock, newTestMetrics())
	err = repo.DeleteAccount(context.Background(), "cole@test.com")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
