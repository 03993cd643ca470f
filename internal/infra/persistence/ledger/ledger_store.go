// Package ledger implements the points ledger and streak state on top of a key/value store.
package ledger

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"loyalty/config"
	"loyalty/internal/domain/clock"
	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/repository"
	"loyalty/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Persisted key names, prefixed with the configured storage key prefix.
const (
	KeyBalance          = "userPoints"
	KeyHistory          = "pointsHistory"
	KeyStreakDays       = "userStreak"
	KeyLastPurchaseDate = "lastPurchaseDate"
)

var errMalformed = errors.New("malformed value")

// Params holds dependencies for the ledger store, injected by Fx
type Params struct {
	fx.In

	Store  repository.KeyValueStore
	Config *config.Config
	Logger *slog.Logger
	Clock  clock.Clock
}

type ledgerStore struct {
	kv           repository.KeyValueStore
	prefix       string
	historyLimit int
	clock        clock.Clock
	logger       *slog.Logger

	// mu serialises read-modify-write sequences issued by this process.
	mu sync.Mutex
}

// New creates the ledger store.
func New(params Params) repository.LedgerStore {
	return &ledgerStore{
		kv:           params.Store,
		prefix:       params.Config.Storage.KeyPrefix,
		historyLimit: params.Config.Loyalty.HistoryLimit,
		clock:        params.Clock,
		logger:       params.Logger.With(slog.String("component", "ledger")),
	}
}

func (s *ledgerStore) key(name string) string {
	return s.prefix + name
}

func (s *ledgerStore) GetBalance(ctx context.Context) int {
	balance, err := s.readBalance(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "Balance unreadable, using 0", slog.Any("error", err))

		return 0
	}

	return balance
}

func (s *ledgerStore) Credit(ctx context.Context, amount int, meta entity.EntryMetadata) (int, *entity.LedgerEntry, error) {
	if amount < 0 {
		return s.GetBalance(ctx), nil, repository.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.balanceForUpdate(ctx)
	if !ok {
		return current, nil, nil
	}

	newTotal := current + amount
	if err := s.writeBalance(ctx, newTotal); err != nil {
		s.logger.ErrorContext(ctx, "Failed to credit points",
			slog.Int("amount", amount),
			slog.Any("error", err),
		)

		return current, nil, nil
	}

	entry := s.newEntry(amount, meta.Description)
	if meta.Product != nil {
		entry.ProductID = meta.Product.ID
		entry.ProductName = meta.Product.Name
	}
	if meta.Streak != nil {
		bonus := meta.Streak.Bonus
		multiplier := meta.Streak.Multiplier.InexactFloat64()
		entry.StreakBonus = &bonus
		entry.StreakMultiplier = &multiplier
		entry.StreakLevel = meta.Streak.Level
	}

	s.prependEntry(ctx, entry)

	return newTotal, entry, nil
}

func (s *ledgerStore) Debit(ctx context.Context, amount int, description string) (int, *entity.LedgerEntry, error) {
	if amount <= 0 {
		return s.GetBalance(ctx), nil, repository.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// An unreadable balance counts as 0, which rejects the debit below.
	current, _ := s.balanceForUpdate(ctx)
	if current < amount {
		return current, nil, repository.ErrInsufficientPoints
	}

	newTotal := current - amount
	if err := s.writeBalance(ctx, newTotal); err != nil {
		s.logger.ErrorContext(ctx, "Failed to debit points",
			slog.Int("amount", amount),
			slog.Any("error", err),
		)

		return current, nil, nil
	}

	entry := s.newEntry(-amount, description)
	s.prependEntry(ctx, entry)

	return newTotal, entry, nil
}

func (s *ledgerStore) GetHistory(ctx context.Context) []*entity.LedgerEntry {
	history, err := s.readHistory(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "History unreadable, using empty history", slog.Any("error", err))

		return []*entity.LedgerEntry{}
	}

	return history
}

func (s *ledgerStore) FindEntry(ctx context.Context, id string) (*entity.LedgerEntry, bool) {
	for _, entry := range s.GetHistory(ctx) {
		if entry.ID == id {
			return entry, true
		}
	}

	return nil, false
}

func (s *ledgerStore) GetStreakState(ctx context.Context) entity.StreakState {
	var state entity.StreakState

	days, err := s.readInt(ctx, KeyStreakDays)
	if err != nil {
		s.logger.WarnContext(ctx, "Streak days unreadable, using 0", slog.Any("error", err))
	} else {
		state.ConsecutiveDays = days
	}

	raw, err := s.kv.Get(ctx, s.key(KeyLastPurchaseDate))
	switch {
	case errors.Is(err, repository.ErrKeyNotFound):
	case err != nil:
		s.logger.WarnContext(ctx, "Last purchase date unreadable", slog.Any("error", err))
	default:
		parsed, parseErr := time.Parse(time.RFC3339, strings.TrimSpace(raw))
		if parseErr != nil {
			s.logger.WarnContext(ctx, "Last purchase date malformed, ignoring",
				slog.String("value", raw),
				slog.Any("error", parseErr),
			)
		} else {
			state.LastActivityDate = &parsed
		}
	}

	return state
}

func (s *ledgerStore) SaveStreakState(ctx context.Context, state entity.StreakState) error {
	if err := s.kv.Set(ctx, s.key(KeyStreakDays), strconv.Itoa(state.ConsecutiveDays)); err != nil {
		return errors.Wrap(err, "save streak days")
	}

	if state.LastActivityDate == nil {
		if err := s.kv.Remove(ctx, s.key(KeyLastPurchaseDate)); err != nil {
			return errors.Wrap(err, "clear last purchase date")
		}

		return nil
	}

	if err := s.kv.Set(ctx, s.key(KeyLastPurchaseDate), state.LastActivityDate.Format(time.RFC3339)); err != nil {
		return errors.Wrap(err, "save last purchase date")
	}

	return nil
}

func (s *ledgerStore) Snapshot(ctx context.Context) *entity.LedgerSnapshot {
	state := s.GetStreakState(ctx)

	return &entity.LedgerSnapshot{
		Balance:          s.GetBalance(ctx),
		History:          s.GetHistory(ctx),
		StreakDays:       state.ConsecutiveDays,
		LastPurchaseDate: state.LastActivityDate,
		ExportedAt:       s.clock.Now().UTC(),
	}
}

func (s *ledgerStore) Restore(ctx context.Context, snapshot *entity.LedgerSnapshot) error {
	if snapshot == nil {
		return errors.New("snapshot is nil")
	}
	if snapshot.Balance < 0 || snapshot.StreakDays < 0 {
		return errors.Wrap(repository.ErrInvalidAmount, "snapshot holds negative values")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writeBalance(ctx, snapshot.Balance); err != nil {
		return err
	}

	history := snapshot.History
	if history == nil {
		history = []*entity.LedgerEntry{}
	}
	if err := s.writeHistory(ctx, history); err != nil {
		return err
	}

	return s.SaveStreakState(ctx, entity.StreakState{
		ConsecutiveDays:  snapshot.StreakDays,
		LastActivityDate: snapshot.LastPurchaseDate,
	})
}

func (s *ledgerStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for _, name := range []string{KeyBalance, KeyHistory, KeyStreakDays, KeyLastPurchaseDate} {
		if err := s.kv.Remove(ctx, s.key(name)); err != nil {
			errs = append(errs, errors.Wrapf(err, "remove %s", name))
		}
	}

	return errors.Join(errs...)
}

// balanceForUpdate reads the balance ahead of a write. A malformed value is
// treated as 0 and may be overwritten; a storage failure reports ok=false so
// that the caller does not clobber a value it could not see.
func (s *ledgerStore) balanceForUpdate(ctx context.Context) (balance int, ok bool) {
	balance, err := s.readBalance(ctx)
	switch {
	case err == nil:
		return balance, true
	case errors.Is(err, errMalformed):
		s.logger.WarnContext(ctx, "Balance malformed, treating as 0", slog.Any("error", err))

		return 0, true
	default:
		s.logger.ErrorContext(ctx, "Balance unreadable, skipping update", slog.Any("error", err))

		return 0, false
	}
}

func (s *ledgerStore) readBalance(ctx context.Context) (int, error) {
	balance, err := s.readInt(ctx, KeyBalance)
	if err != nil {
		return 0, err
	}
	if balance < 0 {
		return 0, errors.Wrapf(errMalformed, "negative balance %d", balance)
	}

	return balance, nil
}

func (s *ledgerStore) readInt(ctx context.Context, name string) (int, error) {
	raw, err := s.kv.Get(ctx, s.key(name))
	if errors.Is(err, repository.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrapf(err, "read %s", name)
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.Wrapf(errMalformed, "%s=%q", name, raw)
	}

	return n, nil
}

func (s *ledgerStore) writeBalance(ctx context.Context, balance int) error {
	if err := s.kv.Set(ctx, s.key(KeyBalance), strconv.Itoa(balance)); err != nil {
		return errors.Wrap(err, "write balance")
	}

	return nil
}

func (s *ledgerStore) readHistory(ctx context.Context) ([]*entity.LedgerEntry, error) {
	raw, err := s.kv.Get(ctx, s.key(KeyHistory))
	if errors.Is(err, repository.ErrKeyNotFound) {
		return []*entity.LedgerEntry{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read history")
	}

	var history []*entity.LedgerEntry
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		return nil, errors.Wrapf(errMalformed, "history: %v", err)
	}
	if history == nil {
		history = []*entity.LedgerEntry{}
	}

	return history, nil
}

func (s *ledgerStore) writeHistory(ctx context.Context, history []*entity.LedgerEntry) error {
	payload, err := json.Marshal(history)
	if err != nil {
		return errors.Wrap(err, "encode history")
	}

	if err := s.kv.Set(ctx, s.key(KeyHistory), string(payload)); err != nil {
		return errors.Wrap(err, "write history")
	}

	return nil
}

// prependEntry stores entry as the newest history item. Failures are logged
// only: the balance has already been committed.
func (s *ledgerStore) prependEntry(ctx context.Context, entry *entity.LedgerEntry) {
	history, err := s.readHistory(ctx)
	switch {
	case err == nil:
	case errors.Is(err, errMalformed):
		s.logger.WarnContext(ctx, "History malformed, starting a new one", slog.Any("error", err))
		history = []*entity.LedgerEntry{}
	default:
		s.logger.ErrorContext(ctx, "History unreadable, entry not recorded",
			slog.String("entry_id", entry.ID),
			slog.Any("error", err),
		)

		return
	}

	history = append([]*entity.LedgerEntry{entry}, history...)
	if s.historyLimit > 0 && len(history) > s.historyLimit {
		history = history[:s.historyLimit]
	}

	if err := s.writeHistory(ctx, history); err != nil {
		s.logger.ErrorContext(ctx, "Failed to record history entry",
			slog.String("entry_id", entry.ID),
			slog.Any("error", err),
		)
	}
}

func (s *ledgerStore) newEntry(amount int, description string) *entity.LedgerEntry {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	return &entity.LedgerEntry{
		ID:          id.String(),
		Date:        s.clock.Now().UTC(),
		Amount:      amount,
		Description: description,
	}
}
