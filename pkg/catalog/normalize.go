package catalog

import "strings"

// NormalizeDomain canonicalizes a free-text problem-domain label into a
// catalog key: lowercase, outer whitespace stripped, internal spaces
// replaced with underscores.
//
// The transform is total and idempotent but deliberately shallow: no
// tokenization, stemming or synonym resolution. "Weighing station" and
// "weighing_stations" normalize to different keys and will not match the
// same entry.
func NormalizeDomain(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(strings.ToLower(raw)), " ", "_")
}
