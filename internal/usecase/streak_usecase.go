// Package usecase defines the application operations exposed to the delivery layer.
package usecase

import (
	"context"

	"loyalty/internal/domain/entity"
)

// StreakTracker defines the daily purchase streak operations
type StreakTracker interface {
	// Update advances the streak for a purchase made now and persists it
	Update(ctx context.Context) *entity.StreakUpdate

	// Current projects the streak as of now without mutating it
	Current(ctx context.Context) *entity.StreakStatus
}
