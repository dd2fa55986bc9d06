package cache

// Package cache bounds pixel memory for the carousel: it loads payloads for
// items entering the render window and evicts them when they leave. Loads
// are asynchronous and keyed by item identity; stale completions are
// discarded by re-checking window membership when the fetch returns.
