package service

import (
	"context"
	"time"
)

// Loyalty event types.
const (
	EventPointsEarned       = "points.earned"
	EventPointsRedeemed     = "points.redeemed"
	EventStreakLevelReached = "streak.level_reached"
)

// LoyaltyEvent is published after a ledger mutation has been committed.
type LoyaltyEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Channel    string    `json:"channel,omitempty"`    // api or cli
	Type       string    `json:"type"`
	EntryID    string    `json:"entry_id,omitempty"`
	Points     int       `json:"points"`
	Balance    int       `json:"balance"`
	StreakDays int       `json:"streak_days,omitempty"`
	StreakTier string    `json:"streak_tier,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLoyaltyEvent publishes a loyalty event for downstream consumers
	PublishLoyaltyEvent(ctx context.Context, event *LoyaltyEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
