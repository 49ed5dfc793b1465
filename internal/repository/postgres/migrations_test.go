package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestListMigrations(t *testing.T) {
	names, err := listMigrations()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"001_operators.up.sql",
		"002_purchases.up.sql",
		"003_ledger_entries.up.sql",
	}, names)
}

func TestRunMigrations(t *testing.T) {
	names, err := listMigrations()
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("Fresh database", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS schema_migrations`).WillReturnResult(pgxmock.NewResult("CREATE", 0))
		for _, name := range names {
			mock.ExpectBegin()
			mock.ExpectExec(`SELECT pg_advisory_xact_lock`).WithArgs("migrations:schema").
				WillReturnResult(pgxmock.NewResult("SELECT", 1))
			mock.ExpectQuery(`SELECT EXISTS`).WithArgs(name).
				WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
			mock.ExpectExec(`CREATE TABLE IF NOT EXISTS`).WillReturnResult(pgxmock.NewResult("CREATE", 0))
			mock.ExpectExec(`INSERT INTO schema_migrations`).WithArgs(name).
				WillReturnResult(pgxmock.NewResult("INSERT", 1))
			mock.ExpectCommit()
		}

		require.NoError(t, RunMigrations(ctx, mock, zap.NewNop()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Already applied", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS schema_migrations`).WillReturnResult(pgxmock.NewResult("CREATE", 0))
		for _, name := range names {
			mock.ExpectBegin()
			mock.ExpectExec(`SELECT pg_advisory_xact_lock`).WithArgs("migrations:schema").
				WillReturnResult(pgxmock.NewResult("SELECT", 1))
			mock.ExpectQuery(`SELECT EXISTS`).WithArgs(name).
				WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
			mock.ExpectCommit()
		}

		require.NoError(t, RunMigrations(ctx, mock, zap.NewNop()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failed migration is rolled back", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS schema_migrations`).WillReturnResult(pgxmock.NewResult("CREATE", 0))
		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).WithArgs("migrations:schema").
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectQuery(`SELECT EXISTS`).WithArgs(names[0]).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS`).WillReturnError(errors.New("syntax error"))
		mock.ExpectRollback()

		err = RunMigrations(ctx, mock, zap.NewNop())
		assert.ErrorContains(t, err, names[0])
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
