// Package cli provides the interactive Driver Helper command-line client.
//
// It sits on top of services.DataService: every command calls one façade
// operation and prints what comes back. The data layer never fails because
// the cloud is unreachable, so commands keep working offline and only
// report input errors.
//
// Key features:
//   - Register / Login / Logout (remote with offline profile fallback)
//   - Profile and, for administrators, the user list and status changes
//   - Income records and the derived summary
//   - Community feed with optional image or voice attachments
//   - Notifications, notes, alarms, vehicle checks and health logs
//
// A background watcher pings the remote store and switches the mode shown
// in the prompt between online, offline and local. The REPL is started via
// App.Run(ctx), which blocks until the user exits.
package cli
