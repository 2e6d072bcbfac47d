package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"recurring_dashboard/internal/domain/entities"
	"recurring_dashboard/internal/infrastructure/generator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(t *testing.T, path string, v any) {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))
}

func TestCommitmentFileRepository_MissingFileIsEmpty(t *testing.T) {
	repo := NewCommitmentFileRepository(filepath.Join(t.TempDir(), "missing.json"))

	_, err := repo.LoadAll(context.Background())
	require.ErrorIs(t, err, ErrStoreEmpty)
	require.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestCommitmentFileRepository_BlankFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commitments.json")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o644))

	_, err := NewCommitmentFileRepository(path).LoadAll(context.Background())
	require.ErrorIs(t, err, ErrStoreEmpty)
}

func TestCommitmentFileRepository_Unreadable(t *testing.T) {
	dir := t.TempDir()

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"id":`), 0o644))

		_, err := NewCommitmentFileRepository(path).LoadAll(context.Background())
		require.ErrorIs(t, err, ErrStoreUnavailable)
		assert.NotErrorIs(t, err, ErrStoreEmpty)
	})

	t.Run("record fails validation", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.json")
		writeJSON(t, path, []entities.Commitment{{ID: "", Status: entities.CommitmentStatusActive}})

		_, err := NewCommitmentFileRepository(path).LoadAll(context.Background())
		require.ErrorIs(t, err, ErrStoreUnavailable)
		assert.Contains(t, err.Error(), "record 0")
	})

	t.Run("unknown status", func(t *testing.T) {
		path := filepath.Join(dir, "status.json")
		writeJSON(t, path, []entities.Commitment{{ID: "c-1", Status: "PAUSED"}})

		_, err := NewCommitmentFileRepository(path).LoadAll(context.Background())
		require.ErrorIs(t, err, ErrStoreUnavailable)
	})
}

func TestCommitmentFileRepository_MemoizesFirstRead(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "commitments.json")
	writeJSON(t, path, []entities.Commitment{{ID: "c-1", Status: entities.CommitmentStatusActive}})

	repo := NewCommitmentFileRepository(path)
	first, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	writeJSON(t, path, []entities.Commitment{
		{ID: "c-1", Status: entities.CommitmentStatusActive},
		{ID: "c-2", Status: entities.CommitmentStatusActive},
	})

	again, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, again, 1)

	repo.Reset()
	fresh, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, fresh, 2)
}

func TestCommitmentFileRepository_SnapshotsAreCopies(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "commitments.json")
	pledge := int64(5000)
	writeJSON(t, path, []entities.Commitment{{
		ID:           "c-1",
		Status:       entities.CommitmentStatusActive,
		PledgeAmount: &pledge,
		Schedules:    []entities.Schedule{{ID: "s-1", Status: entities.CommitmentStatusActive}},
		Installments: []entities.Installment{{TransactionID: "tx-1", Amount: 1000}},
		CustomFields: entities.CustomFields{"campaign": "spring"},
	}})
	repo := NewCommitmentFileRepository(path)

	items, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	items[0].Status = entities.CommitmentStatusCanceled
	items[0].Schedules[0].Status = entities.CommitmentStatusStopped
	items[0].Installments[0].Amount = 1
	items[0].CustomFields["campaign"] = "changed"
	*items[0].PledgeAmount = 1

	found, err := repo.FindByID(ctx, "c-1")
	require.NoError(t, err)
	found.Schedules[0].Frequency = "YEAR"

	got, err := repo.FindByID(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, entities.CommitmentStatusActive, got.Status)
	assert.Equal(t, entities.CommitmentStatusActive, got.Schedules[0].Status)
	assert.Empty(t, got.Schedules[0].Frequency)
	assert.Equal(t, int64(1000), got.Installments[0].Amount)
	assert.Equal(t, "spring", got.CustomFields["campaign"])
	assert.Equal(t, int64(5000), *got.PledgeAmount)
}

func TestCommitmentFileRepository_UpdateStatusWritesThrough(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "commitments.json")
	writeJSON(t, path, []entities.Commitment{
		{ID: "c-1", Status: entities.CommitmentStatusActive},
		{ID: "c-2", Status: entities.CommitmentStatusActive},
	})
	repo := NewCommitmentFileRepository(path)

	updated, err := repo.UpdateStatus(ctx, "c-2", entities.CommitmentStatusStopped)
	require.NoError(t, err)
	assert.Equal(t, entities.CommitmentStatusStopped, updated.Status)

	missing, err := repo.UpdateStatus(ctx, "c-9", entities.CommitmentStatusStopped)
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	other := NewCommitmentFileRepository(path)
	all, err := other.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "c-1", all[0].ID)
	assert.Equal(t, entities.CommitmentStatusActive, all[0].Status)
	assert.Equal(t, entities.CommitmentStatusStopped, all[1].Status)
}

func TestCommitmentFileRepository_FailedWriteKeepsSnapshot(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "commitments.json")
	writeJSON(t, path, []entities.Commitment{{ID: "c-1", Status: entities.CommitmentStatusActive}})
	repo := NewCommitmentFileRepository(path)
	_, err := repo.LoadAll(ctx)
	require.NoError(t, err)

	// Replacing the file with a directory makes the rename fail.
	require.NoError(t, os.Remove(path))
	require.NoError(t, os.Mkdir(path, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(path, "keep"), []byte("x"), 0o644))

	_, err = repo.UpdateStatus(ctx, "c-1", entities.CommitmentStatusStopped)
	require.ErrorIs(t, err, ErrStoreUnavailable)

	got, err := repo.FindByID(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, entities.CommitmentStatusActive, got.Status)
}

func TestFileRepositories_ReplaceAllWithGeneratedData(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	commitments, transactions := generator.New(11).Generate(20)

	commitmentRepo := NewCommitmentFileRepository(filepath.Join(dir, "nested", "commitments.json"))
	transactionRepo := NewTransactionFileRepository(filepath.Join(dir, "nested", "transactions.json"))
	require.NoError(t, transactionRepo.ReplaceAll(ctx, transactions))
	require.NoError(t, commitmentRepo.ReplaceAll(ctx, commitments))

	reread := NewCommitmentFileRepository(filepath.Join(dir, "nested", "commitments.json"))
	got, err := reread.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 20)
	for i := range got {
		assert.Equal(t, commitments[i].ID, got[i].ID)
	}

	txReread := NewTransactionFileRepository(filepath.Join(dir, "nested", "transactions.json"))
	tx, err := txReread.FindByID(ctx, transactions[0].ID)
	require.NoError(t, err)
	assert.Equal(t, transactions[0].ID, tx.ID)

	none, err := txReread.FindByID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, none.ID)

	require.NoError(t, commitmentRepo.ReplaceAll(ctx, nil))
	raw, err := os.ReadFile(filepath.Join(dir, "nested", "commitments.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}
