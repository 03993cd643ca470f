package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"loyalty/config"
	deliverycontext "loyalty/internal/delivery/context"
	"loyalty/internal/domain/clock"
	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/repository"
	"loyalty/internal/usecase"

	"go.uber.org/fx"
)

type streakTracker struct {
	ledger   repository.LedgerStore
	clock    clock.Clock
	location *time.Location
	logger   *slog.Logger
}

// StreakTrackerParams holds dependencies for StreakTracker, injected by Fx.
type StreakTrackerParams struct {
	fx.In

	Ledger repository.LedgerStore
	Clock  clock.Clock
	Config *config.Config
	Logger *slog.Logger
}

// NewStreakTracker creates a streak tracker evaluating calendar days in the configured timezone
func NewStreakTracker(params StreakTrackerParams) (usecase.StreakTracker, error) {
	location, err := params.Config.Loyalty.Location()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve streak timezone: %w", err)
	}

	return &streakTracker{
		ledger:   params.Ledger,
		clock:    params.Clock,
		location: location,
		logger:   params.Logger,
	}, nil
}

// Update advances the streak for a purchase made now.
//
// A purchase on the day after the last one extends the streak, a second
// purchase on the same day keeps it, and any longer gap restarts it at 1.
// A last purchase date in the future (clock moved back) counts as today.
func (t *streakTracker) Update(ctx context.Context) *entity.StreakUpdate {
	now := t.clock.Now()
	state := t.ledger.GetStreakState(ctx)

	days := 1
	isNewLevel := false

	if state.LastActivityDate == nil {
		isNewLevel = entity.IsTierThreshold(days)
	} else {
		switch gap := t.daysBetween(*state.LastActivityDate, now); {
		case gap <= 0:
			days = max(state.ConsecutiveDays, 1)
		case gap == 1:
			days = state.ConsecutiveDays + 1
			isNewLevel = entity.IsTierThreshold(days)
		}
	}

	today := t.startOfDay(now)
	if err := t.ledger.SaveStreakState(ctx, entity.StreakState{
		ConsecutiveDays:  days,
		LastActivityDate: &today,
	}); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, t.logger).ErrorContext(ctx, "Failed to persist streak",
			slog.Int("days", days),
			slog.Any("error", err),
		)
	}

	tier := entity.TierFor(days)

	return &entity.StreakUpdate{
		Days:       days,
		Multiplier: tier.Multiplier,
		LevelName:  tier.Name,
		IsNewLevel: isNewLevel,
	}
}

// Current reports the streak as of now. A streak whose last purchase is more
// than a day old has lapsed and reports 0 days.
func (t *streakTracker) Current(ctx context.Context) *entity.StreakStatus {
	state := t.ledger.GetStreakState(ctx)
	if state.LastActivityDate == nil {
		return entity.NewStreakStatus(0)
	}

	if t.daysBetween(*state.LastActivityDate, t.clock.Now()) > 1 {
		return entity.NewStreakStatus(0)
	}

	return entity.NewStreakStatus(state.ConsecutiveDays)
}

// daysBetween counts calendar-day boundaries from from to to in the tracker's
// timezone. Days are compared as UTC dates so that DST shifts cannot produce
// 23 or 25 hour days.
func (t *streakTracker) daysBetween(from, to time.Time) int {
	return int(calendarDate(to, t.location).Sub(calendarDate(from, t.location)).Hours() / 24)
}

func (t *streakTracker) startOfDay(at time.Time) time.Time {
	y, m, d := at.In(t.location).Date()

	return time.Date(y, m, d, 0, 0, 0, 0, t.location)
}

func calendarDate(at time.Time, location *time.Location) time.Time {
	y, m, d := at.In(location).Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
