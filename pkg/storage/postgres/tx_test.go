package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"promptparser/pkg/domain"
	"promptparser/pkg/storage"
	"promptparser/pkg/storage/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// submitted reports whether the prompt and its parse job are visible
// outside of any transaction.
func submitted(t *testing.T, pg *postgres.PgSQL, userID domain.UserID, id domain.PromptID) (bool, bool) {
	t.Helper()
	ctx := context.Background()

	prompt, err := pg.PromptByID(ctx, userID, id)
	require.NoError(t, err)

	var jobs int
	require.NoError(t, pg.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM river_job WHERE kind = $1 AND args->>'promptId' = $2`,
		promptJobArgs{}.Kind(), id.String()).Scan(&jobs))

	return prompt != nil, jobs == 1
}

// submit stores a pending prompt and enqueues its job through s.
func submit(ctx context.Context, s storage.AllStorage, userID domain.UserID) (domain.PromptID, error) {
	stored, err := s.StorePrompts(ctx, pendingPrompt(userID, "(red fox)++"))
	if err != nil {
		return domain.PromptID{}, err //nolint: wrapcheck
	}
	if _, err := s.AddJob(ctx, promptJobArgs{PromptID: uuid.UUID(stored[0].ID)}, nil); err != nil {
		return domain.PromptID{}, err //nolint: wrapcheck
	}

	return stored[0].ID, nil
}

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)
	require.Nil(t, inner.Pool)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	// closing a transactional handle leaves the pool alone
	require.NoError(t, inner.Close())
	require.NoError(t, inner.Rollback())
	require.NoError(t, pg.Pool.Ping(ctx))
}

func TestPgSQL_Commit_PromptAndJob(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	id, err := submit(ctx, txStorage, userID)
	require.NoError(t, err)

	prompt, job := submitted(t, pg, userID, id)
	require.False(t, prompt)
	require.False(t, job)

	require.NoError(t, txStorage.Commit())

	prompt, job = submitted(t, pg, userID, id)
	require.True(t, prompt)
	require.True(t, job)
}

func TestPgSQL_Rollback_PromptAndJob(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	id, err := submit(ctx, txStorage, userID)
	require.NoError(t, err)

	require.NoError(t, txStorage.Rollback())

	prompt, job := submitted(t, pg, userID, id)
	require.False(t, prompt)
	require.False(t, job)
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	var committed domain.PromptID
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		id, err := submit(ctx, s, userID)
		committed = id

		return err
	})
	require.NoError(t, err)

	prompt, job := submitted(t, pg, userID, committed)
	require.True(t, prompt)
	require.True(t, job)

	boom := errors.New("boom")
	var discarded domain.PromptID
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		id, err := submit(ctx, s, userID)
		require.NoError(t, err)
		discarded = id

		return boom
	})
	require.ErrorIs(t, err, boom)

	prompt, job = submitted(t, pg, userID, discarded)
	require.False(t, prompt)
	require.False(t, job)
}

func TestPgSQL_WithTx_InvalidTextStoresNothing(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		if _, err := s.StorePrompts(ctx, pendingPrompt(userID, "ok++")); err != nil {
			return err //nolint: wrapcheck
		}
		_, err := s.StorePrompts(ctx, pendingPrompt(userID, "bad\x00++"))

		return err //nolint: wrapcheck
	})
	require.ErrorIs(t, err, storage.ErrInvalidText)

	page, err := pg.UserPrompts(ctx, userID, "", time.Time{}, 10)
	require.NoError(t, err)
	require.Empty(t, page.Prompts)
}
