package consult

import (
	"github.com/aretw0/labscout/pkg/catalog"
	"github.com/aretw0/labscout/pkg/domain"
)

// Matcher resolves triage records against a catalog. It holds no state
// beyond the read-only catalog and is safe for concurrent use.
type Matcher struct {
	catalog *catalog.Catalog
}

// NewMatcher binds a matcher to a catalog.
func NewMatcher(c *catalog.Catalog) *Matcher {
	return &Matcher{catalog: c}
}

// Match normalizes the record's problem domain and looks it up in the
// catalog. Membership is binary: no scoring, no partial matches. A miss
// returns a result carrying only the normalized key, for diagnostic display.
func (m *Matcher) Match(record domain.TriageRecord) domain.MatchResult {
	key := catalog.NormalizeDomain(record.ProblemDomain)
	solutions, ok := m.catalog.Lookup(key)
	if !ok {
		return domain.MatchResult{DomainKey: key}
	}
	return domain.MatchResult{DomainKey: key, Solutions: solutions}
}
