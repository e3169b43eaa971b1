package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/John2013/phone-book/model"
)

func newRecord(phone string, address string) model.PhoneAddressRecord {
	now := time.Now().UTC()
	return model.PhoneAddressRecord{
		Phone:     phone,
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestMemoryRepositoryCreateAndGet(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newRecord("+15551234567", "1 Main St"))
	require.NoError(t, err)

	got, err := repo.Get(ctx, "+15551234567")
	require.NoError(t, err)
	assert.Equal(t, created.Address, got.Address)

	_, err = repo.Create(ctx, newRecord("+15551234567", "2 Side St"))
	assert.ErrorIs(t, err, ErrConflict)

	// conflict leaves the original untouched
	got, err = repo.Get(ctx, "+15551234567")
	require.NoError(t, err)
	assert.Equal(t, "1 Main St", got.Address)
}

func TestMemoryRepositoryGetMissing(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.Get(context.Background(), "+15550000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepositoryUpdate(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Update(ctx, "+15551234567", "2 Side St")
	assert.ErrorIs(t, err, ErrNotFound)

	created, err := repo.Create(ctx, newRecord("+15551234567", "1 Main St"))
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	updated, err := repo.Update(ctx, "+15551234567", "2 Side St")
	require.NoError(t, err)
	assert.Equal(t, "2 Side St", updated.Address)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestMemoryRepositoryDelete(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	assert.ErrorIs(t, repo.Delete(ctx, "+15551234567"), ErrNotFound)

	_, err := repo.Create(ctx, newRecord("+15551234567", "1 Main St"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "+15551234567"))

	_, err = repo.Get(ctx, "+15551234567")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepositoryListPagination(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	phones := []string{"+15550000001", "+15550000002", "+15550000003", "+15550000004", "+15550000005"}
	for _, phone := range phones {
		_, err := repo.Create(ctx, newRecord(phone, "addr "+phone))
		require.NoError(t, err)
	}

	// follow the cursor to exhaustion, no duplicates or omissions
	seen := map[string]bool{}
	cursor := ""
	pages := 0
	for {
		page, err := repo.List(ctx, cursor, 2)
		require.NoError(t, err)
		for _, record := range page.Items {
			assert.False(t, seen[record.Phone], "duplicate record %s", record.Phone)
			seen[record.Phone] = true
		}
		pages++
		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}

	assert.Equal(t, 3, pages)
	assert.Len(t, seen, len(phones))
	for _, phone := range phones {
		assert.True(t, seen[phone], "missing record %s", phone)
	}
}

func TestMemoryRepositoryListBadCursor(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.List(context.Background(), "not-a-cursor", 10)
	assert.ErrorIs(t, err, ErrBadCursor)
}

func TestMemoryRepositoryListEmpty(t *testing.T) {
	repo := NewMemoryRepository()

	page, err := repo.List(context.Background(), "", 10)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Empty(t, page.NextCursor)
}
