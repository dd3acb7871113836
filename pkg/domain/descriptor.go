package domain

// SolutionDescriptor is one catalog entry describing a pre-scoped automation
// solution. Entries are compiled in at process start and never mutated.
type SolutionDescriptor struct {
	// Name is the short identifying label, e.g.
	// "Automated Weighing Station (URS APL01)".
	Name string `json:"name" yaml:"name"`

	// Description is a prose summary of what the station does.
	Description string `json:"description" yaml:"description"`

	// VendorHints lists candidate vendors in priority order. A placeholder
	// entry is valid while vendor research is pending.
	VendorHints []string `json:"vendor_hints" yaml:"vendor_hints"`

	// BudgetRange is a free-text cost bracket, e.g. "$70,000 - $200,000".
	BudgetRange string `json:"budget_range" yaml:"budget_range"`

	// KeyRequirements lists the headline requirements in display order.
	KeyRequirements []string `json:"key_requirements" yaml:"key_requirements"`
}

// Usable reports whether the descriptor carries enough content to be
// recommended: every scalar populated and at least one key requirement.
func (d SolutionDescriptor) Usable() bool {
	return d.Name != "" && d.Description != "" && d.BudgetRange != "" && len(d.KeyRequirements) > 0
}
