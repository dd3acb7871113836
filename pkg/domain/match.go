package domain

// MatchResult is the outcome of a catalog lookup. It is a value, not an
// error: an empty catalog hit is a normal, reportable result.
type MatchResult struct {
	// DomainKey is the normalized form of the record's problem domain,
	// kept for diagnostic display in the no-match case.
	DomainKey string `json:"domain_key"`

	// Solutions holds the matched descriptors in catalog order. Catalog
	// order is a ranking: the first entry is the primary recommendation.
	Solutions []SolutionDescriptor `json:"solutions,omitempty"`
}

// Matched reports whether the lookup found any solutions. Callers branch on
// this rather than on the rendered prose.
func (r MatchResult) Matched() bool {
	return len(r.Solutions) > 0
}
