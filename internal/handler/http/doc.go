// Package http implements the HTTP API of go-family-tree.
//
// Requests pass the access gate before reaching any handler: public paths
// go straight through, everything else needs a valid auth-token cookie and
// the admin namespace needs the ADMIN role. Handlers under /api re-resolve
// the caller against the user store, decode and validate the body, call the
// service layer and reply with a [models.Response] envelope.
package http
