// Package store implements a persistent key-value store that keeps one
// file per key inside a directory it claims for itself. Entries may carry
// an absolute expiration; expired entries are removed lazily, as a side
// effect of Load (read-triggers-cleanup). Callers that need a purely
// ephemeral store can use the memory backend, which follows the same
// contract without touching the filesystem.
package store
