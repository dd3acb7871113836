// Package domain holds the value objects of the intake core: solution
// descriptors, the two intake record variants, and the match result.
//
// Records are constructed through validating constructors and are immutable
// afterwards; no partially-filled record exists downstream of construction.
// Equality is by content, not identity. Nothing in this package performs I/O.
package domain
