// Package catalog holds the read-only knowledge base of automation
// solutions, keyed by normalized problem domain.
//
// The catalog is constructed once at process start from compiled-in entries
// and never mutated afterwards, so it is safe to share across concurrent
// conversations without synchronization. Lookup is exact-key membership over
// a fixed, finite key set; there is no fuzzy or semantic matching.
package catalog
