// Package storage defines how prompts and their parse jobs are persisted. The
// postgres subpackage is the only backend.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is everything a prompt submission or a parse job touches.
type AllStorage interface {
	PromptStorage
	JobStorage
}

// TxStorage is an AllStorage bound to one transaction. It must not be used
// after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit makes the stored prompts and enqueued jobs visible.
	Commit() error
	// Rollback discards the stored prompts and enqueued jobs.
	Rollback() error
}

// Storage is the long-lived handle created at startup.
type Storage interface {
	AllStorage

	// Close releases the connection pool. The handle is unusable afterwards.
	Close() error

	// Begin starts a transaction. Calling it on a transactional handle returns
	// ErrAlreadyInTx.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction that is committed when cb returns nil
	// and rolled back otherwise. Submitting a prompt stores the prompt and
	// enqueues its parse job through one WithTx call.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
