package catalog

import (
	"fmt"
	"sort"

	"github.com/aretw0/labscout/pkg/domain"
)

// Entry pairs a domain key with its candidate solutions in ranking order.
type Entry struct {
	Domain    string
	Solutions []domain.SolutionDescriptor
}

// Catalog maps normalized domain keys to ordered solution descriptors.
// It is immutable after New returns.
type Catalog struct {
	entries map[string][]domain.SolutionDescriptor
	domains []string
}

// New builds a Catalog from entries. Domain labels are normalized, so entry
// definitions may use human spelling. New rejects duplicate keys and entries
// whose descriptors are unusable; a broken compiled-in catalog should fail
// loudly at startup, not render half a report later.
func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make(map[string][]domain.SolutionDescriptor, len(entries)),
	}
	for _, entry := range entries {
		key := NormalizeDomain(entry.Domain)
		if key == "" {
			return nil, fmt.Errorf("catalog entry with empty domain key")
		}
		if _, exists := c.entries[key]; exists {
			return nil, fmt.Errorf("duplicate catalog domain %q", key)
		}
		if len(entry.Solutions) == 0 {
			return nil, fmt.Errorf("catalog domain %q has no solutions", key)
		}
		for _, sol := range entry.Solutions {
			if !sol.Usable() {
				return nil, fmt.Errorf("catalog domain %q: descriptor %q is incomplete", key, sol.Name)
			}
		}
		solutions := make([]domain.SolutionDescriptor, len(entry.Solutions))
		copy(solutions, entry.Solutions)
		c.entries[key] = solutions
		c.domains = append(c.domains, key)
	}
	sort.Strings(c.domains)
	return c, nil
}

// MustNew is New for compiled-in data, panicking on error.
func MustNew(entries []Entry) *Catalog {
	c, err := New(entries)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the descriptors for an already-normalized domain key, in
// ranking order. The returned slice is a copy; callers cannot reach catalog
// internals through it.
func (c *Catalog) Lookup(key string) ([]domain.SolutionDescriptor, bool) {
	solutions, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	out := make([]domain.SolutionDescriptor, len(solutions))
	copy(out, solutions)
	return out, true
}

// Domains returns all catalog keys in sorted order, for introspection
// surfaces (CLI listing, MCP resource, HTTP catalog endpoint).
func (c *Catalog) Domains() []string {
	out := make([]string, len(c.domains))
	copy(out, c.domains)
	return out
}

// Len returns the number of domains in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}
