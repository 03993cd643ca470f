package repository

import (
	"context"

	"loyalty/internal/domain/entity"
	"loyalty/internal/errors"
)

// Domain-specific errors for ledger mutations.
var (
	// ErrInsufficientPoints is returned when a debit exceeds the balance. Nothing is written.
	ErrInsufficientPoints = errors.New("insufficient points")
	// ErrInvalidAmount is returned for negative credits and non-positive debits.
	ErrInvalidAmount = errors.New("invalid points amount")
)

// LedgerStore owns the persisted points balance, the transaction history and
// the streak state. Reads never fail: storage errors degrade to zero values and
// are logged. Write failures are logged and the best-known prior state is returned.
type LedgerStore interface {
	// GetBalance returns the current balance, 0 when unset or unreadable.
	GetBalance(ctx context.Context) int

	// Credit adds amount to the balance and prepends a history entry. It
	// returns the new balance and the created entry. The entry is nil when the
	// balance could not be written; the balance returned is then the prior one.
	Credit(ctx context.Context, amount int, meta entity.EntryMetadata) (int, *entity.LedgerEntry, error)

	// Debit removes amount from the balance and prepends a negative history
	// entry. Same return contract as Credit; ErrInsufficientPoints leaves
	// everything untouched.
	Debit(ctx context.Context, amount int, description string) (int, *entity.LedgerEntry, error)

	// GetHistory returns all entries, newest first.
	GetHistory(ctx context.Context) []*entity.LedgerEntry

	// FindEntry looks an entry up by id.
	FindEntry(ctx context.Context, id string) (*entity.LedgerEntry, bool)

	// GetStreakState returns the persisted streak, the zero state when unset or unreadable.
	GetStreakState(ctx context.Context) entity.StreakState

	// SaveStreakState persists the streak.
	SaveStreakState(ctx context.Context, state entity.StreakState) error

	// Snapshot exports the whole persisted state.
	Snapshot(ctx context.Context) *entity.LedgerSnapshot

	// Restore replaces the persisted state with snapshot.
	Restore(ctx context.Context, snapshot *entity.LedgerSnapshot) error

	// Reset removes every persisted key.
	Reset(ctx context.Context) error
}
