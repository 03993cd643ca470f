package snapshot

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"loyalty/internal/domain/entity"
	"loyalty/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemArchive(t *testing.T) *blobArchive {
	t.Helper()

	archive, err := Open(context.Background(), "mem://", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = archive.Close() })

	return archive.(*blobArchive)
}

func TestBlobArchive_SaveLoadRoundTrip(t *testing.T) {
	archive := openMemArchive(t)
	ctx := context.Background()

	lastPurchase := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	bonus := 5
	multiplier := 2.0
	snapshot := &entity.LedgerSnapshot{
		Balance: 120,
		History: []*entity.LedgerEntry{
			{
				ID:               "entry-2",
				Date:             time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC),
				Amount:           10,
				Description:      "Purchase: Latte (Gold streak: 2x bonus)",
				StreakBonus:      &bonus,
				StreakMultiplier: &multiplier,
				StreakLevel:      entity.TierGold,
			},
			{
				ID:          "entry-1",
				Date:        time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC),
				Amount:      -150,
				Description: "Redeemed: Free Espresso Shot",
			},
		},
		StreakDays:       7,
		LastPurchaseDate: &lastPurchase,
		ExportedAt:       time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	}

	require.NoError(t, archive.Save(ctx, "backup", snapshot))

	loaded, err := archive.Load(ctx, "backup.json")
	require.NoError(t, err)
	assert.Equal(t, snapshot, loaded)
}

func TestBlobArchive_LoadMissing(t *testing.T) {
	archive := openMemArchive(t)

	_, err := archive.Load(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSnapshotNotFound))
}

func TestBlobArchive_InvalidInput(t *testing.T) {
	archive := openMemArchive(t)
	ctx := context.Background()

	assert.Error(t, archive.Save(ctx, "  ", &entity.LedgerSnapshot{}))
	assert.Error(t, archive.Save(ctx, "backup", nil))

	_, err := archive.Load(ctx, "")
	assert.Error(t, err)
}

func TestObjectKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"appends extension", "daily", "daily.json"},
		{"keeps extension", "daily.json", "daily.json"},
		{"trims spaces", " 2026-03-02 ", "2026-03-02.json"},
		{"nested path", "exports/daily", "exports/daily.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := objectKey(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, key)
		})
	}
}
