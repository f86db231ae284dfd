package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"summit/pkg/domain"
	"summit/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

const (
	credentialsTable = "remembered_credentials"
)

// SaveCredentials replaces the pair stored under slot. Outside a transaction
// the delete and insert run in one.
func (s *SQLDB) SaveCredentials(ctx context.Context, slot string, creds domain.Credentials) error {
	if slot == "" {
		return storage.ErrEmptySlot
	}

	row, err := credentialRowFromDomain(s.sealer, slot, creds)
	if err != nil {
		return err
	}

	if _, inTx := s.DB.(*sql.Tx); inTx {
		return s.replaceCredentials(ctx, row)
	}

	return s.WithTx(ctx, func(tx storage.AllStorage) error {
		return tx.(*SQLDB).replaceCredentials(ctx, row) //nolint: forcetypeassert
	})
}

func (s *SQLDB) replaceCredentials(ctx context.Context, row credentialRow) error {
	if _, err := s.Builder.Delete(credentialsTable).
		Where(goqu.C("slot").Eq(row.Slot)).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete previous credentials: %w", err)
	}

	if _, err := s.Builder.Insert(credentialsTable).
		Rows(row).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store credentials: %w", err)
	}

	return nil
}

// LoadCredentials returns the pair stored under slot, or nil when there is none.
func (s *SQLDB) LoadCredentials(ctx context.Context, slot string) (*domain.Credentials, error) {
	if slot == "" {
		return nil, storage.ErrEmptySlot
	}

	var row credentialRow
	found, err := s.Builder.From(credentialsTable).
		Select(&credentialRow{}).
		Where(goqu.C("slot").Eq(slot)).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not load credentials: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(s.sealer)
}

// ClearCredentials deletes the pair stored under slot, if any.
func (s *SQLDB) ClearCredentials(ctx context.Context, slot string) error {
	if slot == "" {
		return storage.ErrEmptySlot
	}

	if _, err := s.Builder.Delete(credentialsTable).
		Where(goqu.C("slot").Eq(slot)).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not clear credentials: %w", err)
	}

	return nil
}
