// Package storage defines the persistence interfaces the application relies on.
// It abstracts credential persistence and transaction management so that
// different backends (SQLite, PostgreSQL) can provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"summit/pkg/domain"
)

// CredentialStorage persists at most one remembered credential pair per slot.
type CredentialStorage interface {
	// SaveCredentials stores creds under slot, replacing any previous pair.
	SaveCredentials(ctx context.Context, slot string, creds domain.Credentials) error
	// LoadCredentials returns the pair stored under slot, or nil and no error
	// when nothing is stored.
	LoadCredentials(ctx context.Context, slot string) (*domain.Credentials, error)
	// ClearCredentials removes the pair stored under slot. Clearing an empty
	// slot is not an error.
	ClearCredentials(ctx context.Context, slot string) error
}

// AllStorage is a composite interface that includes all domain-specific storage
// capabilities required by the application.
type AllStorage interface {
	CredentialStorage
}

// TxStorage describes a storage handle that operates within a database
// transaction. It exposes the same domain-specific capabilities as AllStorage,
// and additionally allows committing or rolling back the ongoing transaction.
// Implementations should become unusable after Commit or Rollback is called.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions.
type Storage interface {
	AllStorage

	// Close releases any resources held by the storage implementation. After
	// Close, the instance should not be used.
	Close() error

	// Begin starts a new transaction and returns a TxStorage that can be used to
	// perform further operations within that transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb with it, and then commits on
	// success or rolls back if cb returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
