// Package devserver is an in-memory implementation of the inventory HTTP API
// used for local development and end-to-end tests of the client.
//
// It serves the credentials endpoints (form-encoded password grant issuing
// HS256 JWTs), the user, storage and item endpoints under /users and a
// liveness probe. State lives in an [Inventory] guarded by a mutex and is lost
// on restart.
package devserver
