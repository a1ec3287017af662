// Package lifecycle holds the bounds applied to start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds each fx start or stop hook that does I/O.
const DefaultTimeout = 10 * time.Second
