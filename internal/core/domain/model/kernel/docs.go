// Package kernel provides core domain primitives for the bakery storefront.
//
// It currently contains a single value object, UUID, which wraps
// github.com/google/uuid and enforces that identifiers are created through
// its constructor functions. The zero value is invalid; Validate rejects it.
//
// Primitives in this package are immutable and safe for concurrent use.
package kernel
