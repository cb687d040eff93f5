// Package server runs the HTTP API and takes care of its lifecycle:
// startup, signal handling and graceful shutdown.
package server
