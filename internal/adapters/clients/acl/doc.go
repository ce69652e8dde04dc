// Package acl is the anti-corruption layer between external recipe feeds and
// the domain.
//
// External DTOs stay unexported inside this package. Every response is decoded
// into a feed-shaped struct, validated, and translated into [domain.Recipe]
// before it leaves the package, so a change in a feed's wire format stops here.
//
// Failures are reported as domain errors:
//   - 404 Not Found → [domain.ErrNotFound]
//   - 409 Conflict → [domain.ErrConflict]
//   - 400/422 → [domain.ErrValidation]
//   - 401/403, 429, 5xx and transport failures → [domain.ErrUnavailable]
//
// A call that got no usable response, because the circuit was open or every
// retry failed, is also [domain.ErrUnavailable].
package acl
