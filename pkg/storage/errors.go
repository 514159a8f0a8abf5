package storage

import "errors"

// Errors shared by storage implementations.
var (
	// ErrAlreadyInTx is returned by Begin on a handle that is already inside a
	// transaction. Transactions do not nest.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit and Rollback on a handle that was not
	// obtained from Begin.
	ErrNotInTx = errors.New("not in tx")
	// ErrInvalidText is returned when a prompt text or parse result holds
	// characters the backend cannot store, such as NUL. Nothing is written.
	ErrInvalidText = errors.New("text cannot be stored")
)
