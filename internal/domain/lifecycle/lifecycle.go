// Package lifecycle holds shared start/stop settings.
package lifecycle

import "time"

// DefaultTimeout bounds graceful start and stop hooks.
const DefaultTimeout = 15 * time.Second
