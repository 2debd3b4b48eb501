// Package ports defines the contracts between the careflow core and the
// host: rendering, catalog lookup, celebration effects, timers, and session
// persistence. The core depends only on these interfaces; adapters under
// pkg/adapters and internal/presentation implement them.
package ports
