// Package lookup resolves Instagram handles into profiles with statistics.
//
// The Service validates input, fetches the account and its recent posts from a
// RemoteSource, and maps them with package stats. Every remote error surfaces
// as errors.ErrRemoteFailure. Calls are synchronous and independent.
package lookup
