/*
Package auth implements the session/identity module: registration,
login, logout, and session restore over the durable store.

The Manager is an explicit dependency-injected object with its own
lifecycle (SeedDemoUsers, Restore at startup; Logout on demand)
rather than ambient global state. Demo accounts are seeded into the
same user collection as signed-up users, so login has exactly one
matching path.

# Known limitation

Credentials are stored and compared as plain text, which is only
acceptable for a local single-user demo. Anything exposed beyond that
must replace this with proper password hashing and a real session
scheme before shipping.
*/
package auth
