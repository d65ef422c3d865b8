// Package services is the hybrid data layer of the Driver Helper client.
//
// Each domain (user profile, admin user list, income, community feed,
// notifications, notes, alarms, vehicle checks, health logs) has a façade
// that decides per call whether the remote store or the local store serves
// it. Reads try remote first when it is configured and, where the domain is
// per-user, a session exists; everything else is served locally. Writes land
// in the local store first and are then mirrored to remote on a best-effort
// basis.
//
// No method returns an error because a backend is unavailable. Remote
// failures are logged, counted and reported, then replaced by the local
// result. The only errors callers see are input validation errors.
package services
