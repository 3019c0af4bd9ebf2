// Package lifecycle holds timing constants shared by start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and clients.
const DefaultTimeout = 10 * time.Second
