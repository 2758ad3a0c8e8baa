// Package server runs the HTTP server and the background workers of the
// application, including signal handling and graceful shutdown.
package server
