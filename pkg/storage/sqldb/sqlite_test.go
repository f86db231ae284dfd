package sqldb_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"summit"
	"summit/pkg/domain"
	"summit/pkg/sealer"
	"summit/pkg/storage"
	"summit/pkg/storage/sqldb"
	"testing"

	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newSealer(t *testing.T, secret string) *sealer.Sealer {
	t.Helper()

	s, err := sealer.New(secret)
	require.NoError(t, err)

	return s
}

func setupSQLite(t *testing.T) (*sqldb.SQLDB, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "nested", "summit.db")
	db, err := sqldb.NewSQLite(path, newSealer(t, testSecret))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate(context.Background(), summit.Migrations))

	return db, path
}

func TestNewSQLite_Validation(t *testing.T) {
	_, err := sqldb.NewSQLite("", newSealer(t, testSecret))
	require.Error(t, err)

	_, err = sqldb.NewSQLite(filepath.Join(t.TempDir(), "x.db"), nil)
	require.Error(t, err)
}

func TestSQLite_Credentials(t *testing.T) {
	db, _ := setupSQLite(t)
	require.Equal(t, sqldb.DialectSQLite, db.Dialect())
	testCredentials(t, db)
}

func TestSQLite_PasswordIsSealedAtRest(t *testing.T) {
	db, _ := setupSQLite(t)
	ctx := context.Background()

	require.NoError(t, db.SaveCredentials(ctx, "default", domain.Credentials{Username: "nick", Password: "hunter2"}))

	var stored string
	row := db.DB.QueryRowContext(ctx, `SELECT password FROM remembered_credentials WHERE slot = ?`, "default")
	require.NoError(t, row.Scan(&stored))
	require.NotEmpty(t, stored)
	require.NotContains(t, stored, "hunter2")
}

func TestSQLite_SecretChanged(t *testing.T) {
	db, path := setupSQLite(t)
	ctx := context.Background()
	require.NoError(t, db.SaveCredentials(ctx, "default", domain.Credentials{Username: "nick", Password: "hunter2"}))
	require.NoError(t, db.Close())

	other, err := sqldb.NewSQLite(path, newSealer(t, "rotated"))
	require.NoError(t, err)
	defer func() { _ = other.Close() }()

	_, err = other.LoadCredentials(ctx, "default")
	require.ErrorIs(t, err, sealer.ErrCorrupt)
}

func TestSQLite_Reopen(t *testing.T) {
	db, path := setupSQLite(t)
	ctx := context.Background()
	require.NoError(t, db.SaveCredentials(ctx, "default", domain.Credentials{Username: "nick", Password: "hunter2"}))
	require.NoError(t, db.Close())

	reopened, err := sqldb.NewSQLite(path, newSealer(t, testSecret))
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	// migrations are idempotent
	require.NoError(t, reopened.Migrate(ctx, summit.Migrations))

	got, err := reopened.LoadCredentials(ctx, "default")
	require.NoError(t, err)
	require.Equal(t, &domain.Credentials{Username: "nick", Password: "hunter2"}, got)
}

func TestSQLite_Tx(t *testing.T) {
	db, _ := setupSQLite(t)
	ctx := context.Background()

	tx, err := db.Begin(ctx)
	require.NoError(t, err)

	inner, ok := tx.(*sqldb.SQLDB)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)
	require.ErrorIs(t, inner.Migrate(ctx, summit.Migrations), storage.ErrAlreadyInTx)
	require.NoError(t, tx.Rollback())

	require.ErrorIs(t, db.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, db.Rollback(), storage.ErrNotInTx)
}

func TestSQLite_WithTx(t *testing.T) {
	db, _ := setupSQLite(t)
	ctx := context.Background()
	creds := domain.Credentials{Username: "nick", Password: "hunter2"}

	boom := errors.New("boom")
	err := db.WithTx(ctx, func(st storage.AllStorage) error {
		require.NoError(t, st.SaveCredentials(ctx, "default", creds))

		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := db.LoadCredentials(ctx, "default")
	require.NoError(t, err)
	require.Nil(t, got, "rolled back save must not be visible")

	require.NoError(t, db.WithTx(ctx, func(st storage.AllStorage) error {
		return st.SaveCredentials(ctx, "default", creds)
	}))

	got, err = db.LoadCredentials(ctx, "default")
	require.NoError(t, err)
	require.Equal(t, &creds, got)
}

// testCredentials exercises the CredentialStorage contract against st.
func testCredentials(t *testing.T, st storage.Storage) {
	t.Helper()
	ctx := context.Background()

	t.Run("load empty slot", func(t *testing.T) {
		got, err := st.LoadCredentials(ctx, "empty")
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("save and load", func(t *testing.T) {
		creds := domain.Credentials{Username: "nick", Password: "p@ss wörd"}
		require.NoError(t, st.SaveCredentials(ctx, "a", creds))

		got, err := st.LoadCredentials(ctx, "a")
		require.NoError(t, err)
		require.Equal(t, &creds, got)
	})

	t.Run("save replaces", func(t *testing.T) {
		require.NoError(t, st.SaveCredentials(ctx, "b", domain.Credentials{Username: "old", Password: "1"}))
		require.NoError(t, st.SaveCredentials(ctx, "b", domain.Credentials{Username: "new", Password: "2"}))

		got, err := st.LoadCredentials(ctx, "b")
		require.NoError(t, err)
		require.Equal(t, &domain.Credentials{Username: "new", Password: "2"}, got)
	})

	t.Run("slots are independent", func(t *testing.T) {
		require.NoError(t, st.SaveCredentials(ctx, "c", domain.Credentials{Username: "c", Password: "c"}))
		require.NoError(t, st.SaveCredentials(ctx, "d", domain.Credentials{Username: "d", Password: "d"}))
		require.NoError(t, st.ClearCredentials(ctx, "c"))

		got, err := st.LoadCredentials(ctx, "c")
		require.NoError(t, err)
		require.Nil(t, got)

		got, err = st.LoadCredentials(ctx, "d")
		require.NoError(t, err)
		require.Equal(t, "d", got.Username)
	})

	t.Run("clear empty slot", func(t *testing.T) {
		require.NoError(t, st.ClearCredentials(ctx, "never-saved"))
	})

	t.Run("empty slot key", func(t *testing.T) {
		require.ErrorIs(t, st.SaveCredentials(ctx, "", domain.Credentials{}), storage.ErrEmptySlot)
		_, err := st.LoadCredentials(ctx, "")
		require.ErrorIs(t, err, storage.ErrEmptySlot)
		require.ErrorIs(t, st.ClearCredentials(ctx, ""), storage.ErrEmptySlot)
	})
}
