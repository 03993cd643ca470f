package ledger

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"loyalty/config"
	"loyalty/internal/domain/clock"
	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/repository"
	"loyalty/internal/infra/persistence/memory"
	mockRepo "loyalty/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testPrefix = "test:"

var testNow = time.Date(2026, 3, 2, 10, 15, 0, 0, time.UTC)

func newTestStore(kv repository.KeyValueStore, historyLimit int) repository.LedgerStore {
	return New(Params{
		Store: kv,
		Config: &config.Config{
			Storage: config.StorageConfig{KeyPrefix: testPrefix},
			Loyalty: config.LoyaltyConfig{HistoryLimit: historyLimit},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Clock:  clock.NewFixed(testNow),
	})
}

func TestLedgerStore_CreditAndDebit(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKeyValueStore()
	store := newTestStore(kv, 0)

	assert.Equal(t, 0, store.GetBalance(ctx))
	assert.Empty(t, store.GetHistory(ctx))

	total, earned, err := store.Credit(ctx, 10, entity.EntryMetadata{
		Description: "Purchase: Latte (Gold streak: 2x bonus)",
		Product:     &entity.ProductRef{ID: "latte", Name: "Latte"},
		Streak: &entity.StreakBonus{
			Bonus:      5,
			Multiplier: decimal.RequireFromString("2.0"),
			Level:      entity.TierGold,
		},
	})
	require.NoError(t, err)
	require.NotNil(t, earned)
	assert.Equal(t, 10, total)
	assert.Equal(t, 10, earned.Amount)
	assert.Equal(t, testNow, earned.Date)
	assert.Equal(t, "latte", earned.ProductID)
	assert.Equal(t, "Latte", earned.ProductName)
	require.NotNil(t, earned.StreakBonus)
	assert.Equal(t, 5, *earned.StreakBonus)
	require.NotNil(t, earned.StreakMultiplier)
	assert.InDelta(t, 2.0, *earned.StreakMultiplier, 0.0001)
	assert.Equal(t, entity.TierGold, earned.StreakLevel)

	total, spent, err := store.Debit(ctx, 4, "Redeemed: sticker")
	require.NoError(t, err)
	require.NotNil(t, spent)
	assert.Equal(t, 6, total)
	assert.Equal(t, -4, spent.Amount)
	assert.True(t, spent.IsRedemption())
	assert.NotEqual(t, earned.ID, spent.ID)

	history := store.GetHistory(ctx)
	require.Len(t, history, 2)
	assert.Equal(t, spent.ID, history[0].ID)
	assert.Equal(t, earned.ID, history[1].ID)

	raw, err := kv.Get(ctx, testPrefix+KeyBalance)
	require.NoError(t, err)
	assert.Equal(t, "6", raw)

	found, ok := store.FindEntry(ctx, earned.ID)
	require.True(t, ok)
	assert.Equal(t, earned.Description, found.Description)

	_, ok = store.FindEntry(ctx, "missing")
	assert.False(t, ok)
}

func TestLedgerStore_CreditZeroIsRecorded(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(memory.NewKeyValueStore(), 0)

	total, entry, err := store.Credit(ctx, 0, entity.EntryMetadata{Description: "Purchase: water"})
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, 0, total)
	assert.Len(t, store.GetHistory(ctx), 1)
}

func TestLedgerStore_InvalidAmounts(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(memory.NewKeyValueStore(), 0)

	_, _, err := store.Credit(ctx, 20, entity.EntryMetadata{Description: "seed"})
	require.NoError(t, err)

	tests := []struct {
		name string
		call func() (int, *entity.LedgerEntry, error)
	}{
		{"negative credit", func() (int, *entity.LedgerEntry, error) {
			return store.Credit(ctx, -1, entity.EntryMetadata{})
		}},
		{"zero debit", func() (int, *entity.LedgerEntry, error) {
			return store.Debit(ctx, 0, "nothing")
		}},
		{"negative debit", func() (int, *entity.LedgerEntry, error) {
			return store.Debit(ctx, -5, "nothing")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, entry, err := tt.call()
			assert.ErrorIs(t, err, repository.ErrInvalidAmount)
			assert.Nil(t, entry)
			assert.Equal(t, 20, total)
		})
	}

	assert.Len(t, store.GetHistory(ctx), 1)
}

func TestLedgerStore_DebitInsufficientPoints(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(memory.NewKeyValueStore(), 0)

	_, _, err := store.Credit(ctx, 100, entity.EntryMetadata{Description: "seed"})
	require.NoError(t, err)

	total, entry, err := store.Debit(ctx, 150, "Redeemed: Free Espresso Shot")
	assert.ErrorIs(t, err, repository.ErrInsufficientPoints)
	assert.Nil(t, entry)
	assert.Equal(t, 100, total)
	assert.Equal(t, 100, store.GetBalance(ctx))
	assert.Len(t, store.GetHistory(ctx), 1)

	total, entry, err = store.Debit(ctx, 100, "Redeemed: everything")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, 0, total)
}

func TestLedgerStore_MalformedValues(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKeyValueStore()
	store := newTestStore(kv, 0)

	require.NoError(t, kv.Set(ctx, testPrefix+KeyBalance, "not-a-number"))
	require.NoError(t, kv.Set(ctx, testPrefix+KeyHistory, "{broken"))

	assert.Equal(t, 0, store.GetBalance(ctx))
	assert.Empty(t, store.GetHistory(ctx))

	total, entry, err := store.Credit(ctx, 7, entity.EntryMetadata{Description: "Purchase"})
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, 7, total)

	history := store.GetHistory(ctx)
	require.Len(t, history, 1)
	assert.Equal(t, entry.ID, history[0].ID)
}

func TestLedgerStore_NegativeBalanceIsMalformed(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKeyValueStore()
	store := newTestStore(kv, 0)

	require.NoError(t, kv.Set(ctx, testPrefix+KeyBalance, "-40"))

	assert.Equal(t, 0, store.GetBalance(ctx))

	_, _, err := store.Debit(ctx, 1, "Redeemed")
	assert.ErrorIs(t, err, repository.ErrInsufficientPoints)
}

func TestLedgerStore_HistoryLimit(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(memory.NewKeyValueStore(), 2)

	var ids []string
	for i := 0; i < 3; i++ {
		_, entry, err := store.Credit(ctx, i+1, entity.EntryMetadata{Description: "Purchase"})
		require.NoError(t, err)
		ids = append(ids, entry.ID)
	}

	history := store.GetHistory(ctx)
	require.Len(t, history, 2)
	assert.Equal(t, ids[2], history[0].ID)
	assert.Equal(t, ids[1], history[1].ID)
	assert.Equal(t, 6, store.GetBalance(ctx))
}

func TestLedgerStore_StreakState(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKeyValueStore()
	store := newTestStore(kv, 0)

	state := store.GetStreakState(ctx)
	assert.Equal(t, 0, state.ConsecutiveDays)
	assert.Nil(t, state.LastActivityDate)

	lastDay := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveStreakState(ctx, entity.StreakState{
		ConsecutiveDays:  4,
		LastActivityDate: &lastDay,
	}))

	raw, err := kv.Get(ctx, testPrefix+KeyLastPurchaseDate)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02T00:00:00Z", raw)

	state = store.GetStreakState(ctx)
	assert.Equal(t, 4, state.ConsecutiveDays)
	require.NotNil(t, state.LastActivityDate)
	assert.True(t, lastDay.Equal(*state.LastActivityDate))

	require.NoError(t, kv.Set(ctx, testPrefix+KeyLastPurchaseDate, "yesterday"))
	require.NoError(t, kv.Set(ctx, testPrefix+KeyStreakDays, "many"))

	state = store.GetStreakState(ctx)
	assert.Equal(t, 0, state.ConsecutiveDays)
	assert.Nil(t, state.LastActivityDate)

	require.NoError(t, store.SaveStreakState(ctx, entity.StreakState{ConsecutiveDays: 0}))
	_, err = kv.Get(ctx, testPrefix+KeyLastPurchaseDate)
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestLedgerStore_SnapshotRestoreReset(t *testing.T) {
	ctx := context.Background()
	source := newTestStore(memory.NewKeyValueStore(), 0)

	_, _, err := source.Credit(ctx, 30, entity.EntryMetadata{Description: "Purchase"})
	require.NoError(t, err)
	_, _, err = source.Debit(ctx, 10, "Redeemed: cookie")
	require.NoError(t, err)
	lastDay := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, source.SaveStreakState(ctx, entity.StreakState{ConsecutiveDays: 3, LastActivityDate: &lastDay}))

	snapshot := source.Snapshot(ctx)
	assert.Equal(t, 20, snapshot.Balance)
	assert.Len(t, snapshot.History, 2)
	assert.Equal(t, 3, snapshot.StreakDays)
	assert.Equal(t, testNow, snapshot.ExportedAt)

	target := newTestStore(memory.NewKeyValueStore(), 0)
	require.NoError(t, target.Restore(ctx, snapshot))

	assert.Equal(t, 20, target.GetBalance(ctx))
	assert.Equal(t, source.GetHistory(ctx), target.GetHistory(ctx))
	assert.Equal(t, source.GetStreakState(ctx), target.GetStreakState(ctx))

	require.NoError(t, target.Reset(ctx))
	assert.Equal(t, 0, target.GetBalance(ctx))
	assert.Empty(t, target.GetHistory(ctx))
	assert.Equal(t, entity.StreakState{}, target.GetStreakState(ctx))
}

func TestLedgerStore_RestoreRejectsInvalidSnapshot(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(memory.NewKeyValueStore(), 0)

	assert.Error(t, store.Restore(ctx, nil))
	assert.ErrorIs(t, store.Restore(ctx, &entity.LedgerSnapshot{Balance: -1}), repository.ErrInvalidAmount)
	assert.ErrorIs(t, store.Restore(ctx, &entity.LedgerSnapshot{StreakDays: -2}), repository.ErrInvalidAmount)
}

func TestLedgerStore_StorageFailures(t *testing.T) {
	ctx := context.Background()
	errStorage := errors.New("connection refused")

	t.Run("unreadable balance skips credit", func(t *testing.T) {
		kv := mockRepo.NewMockKeyValueStore(t)
		store := newTestStore(kv, 0)

		kv.EXPECT().Get(ctx, testPrefix+KeyBalance).Return("", errStorage)

		total, entry, err := store.Credit(ctx, 10, entity.EntryMetadata{Description: "Purchase"})
		require.NoError(t, err)
		assert.Nil(t, entry)
		assert.Equal(t, 0, total)
	})

	t.Run("failed balance write keeps prior balance", func(t *testing.T) {
		kv := mockRepo.NewMockKeyValueStore(t)
		store := newTestStore(kv, 0)

		kv.EXPECT().Get(ctx, testPrefix+KeyBalance).Return("5", nil)
		kv.EXPECT().Set(ctx, testPrefix+KeyBalance, "15").Return(errStorage)

		total, entry, err := store.Credit(ctx, 10, entity.EntryMetadata{Description: "Purchase"})
		require.NoError(t, err)
		assert.Nil(t, entry)
		assert.Equal(t, 5, total)
	})

	t.Run("unreadable history keeps the committed balance", func(t *testing.T) {
		kv := mockRepo.NewMockKeyValueStore(t)
		store := newTestStore(kv, 0)

		kv.EXPECT().Get(ctx, testPrefix+KeyBalance).Return("5", nil)
		kv.EXPECT().Set(ctx, testPrefix+KeyBalance, "15").Return(nil)
		kv.EXPECT().Get(ctx, testPrefix+KeyHistory).Return("", errStorage)

		total, entry, err := store.Credit(ctx, 10, entity.EntryMetadata{Description: "Purchase"})
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.Equal(t, 15, total)
	})

	t.Run("unreadable balance rejects debit", func(t *testing.T) {
		kv := mockRepo.NewMockKeyValueStore(t)
		store := newTestStore(kv, 0)

		kv.EXPECT().Get(ctx, testPrefix+KeyBalance).Return("", errStorage)

		_, entry, err := store.Debit(ctx, 10, "Redeemed")
		assert.ErrorIs(t, err, repository.ErrInsufficientPoints)
		assert.Nil(t, entry)
	})

	t.Run("reset reports every failed key", func(t *testing.T) {
		kv := mockRepo.NewMockKeyValueStore(t)
		store := newTestStore(kv, 0)

		kv.EXPECT().Remove(ctx, mock.AnythingOfType("string")).Return(errStorage).Times(4)

		err := store.Reset(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, errStorage)
	})
}
