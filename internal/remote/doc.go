// Package remote is the client for the hosted relational backend that mirrors
// the driver's data in the cloud.
//
// # Overview
//
// The package exposes the narrow Client contract the hybrid data layer
// consumes: a session-bound identity query, sign-in/sign-up/sign-out, and
// typed row operations on the profiles, income_records and community_posts
// tables. PostgresClient implements it over database/sql with the pgx
// driver; Unconfigured stands in when no valid endpoint was supplied.
//
// # Sessions
//
// A session is an HS256 JWT signed with the configured access key. Its jti
// names a row in auth_sessions, so signing out revokes the token server-side.
// The token itself is persisted through a SessionStore (the local store on
// devices).
//
// # Error Handling
//
// Row-level misses are reported as common.ErrNotFound; bad credentials as
// common.ErrInvalidCredentials; every other failure is wrapped with
// "db error: ...". Unconfigured returns common.ErrNotConfigured everywhere.
package remote
