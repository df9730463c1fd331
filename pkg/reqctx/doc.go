// Package reqctx provides centralized request context management.
//
// This package is the single source of truth for request-scoped data:
// the resolved identity and per-request metadata. All context keys are
// private unexported types; access goes through type-safe getters and
// setters.
//
// Contracts:
//
//   - RequestMeta is always set by HTTP middleware for all requests
//   - Identity is set only for authenticated requests (valid token or
//     valid staff session cookie)
package reqctx
