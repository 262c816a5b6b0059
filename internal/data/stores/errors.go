// Package stores contains persistence implementations for the domain
// store interfaces.
package stores

import "errors"

// ErrCorrupt is returned when the task file exists but cannot be
// parsed. Loading fails loudly rather than silently dropping data.
var ErrCorrupt = errors.New("task file is corrupt")
