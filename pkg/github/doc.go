// Package github fetches public GitHub user profiles.
//
// The client issues a single unauthenticated GET per lookup and classifies
// every outcome into the structured error taxonomy of pkg/errors, so callers
// never see an untyped failure. Usernames are validated locally before any
// network call. There are no retries: a failed lookup costs exactly one
// upstream request, and re-requesting is left to the caller.
//
// Store layers the freshness cache over fetched records. Cache backend
// failures are absorbed as misses and never reach the caller.
package github
