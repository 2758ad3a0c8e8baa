// Package http implements the HTTP transport layer of the inventory server.
//
// It owns the chi middleware chain (panic recovery, real client address,
// request tracing, access logging, compression, session start, identity
// resolution and CSRF verification), the route table handed to the router,
// and the controllers of the login, logout, password-reset and ban
// administration pages. Controllers delegate to the auth guard and the
// service layer and render embedded HTML templates.
package http
