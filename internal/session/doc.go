// Package session implements cookie-bound server-side sessions: identifier
// rotation, idle expiry, a generic value map, one-shot flash messages,
// old form input and CSRF tokens.
//
// A [Manager] owns the cookie settings and the backing [store.SessionStore].
// Its [Manager.Middleware] starts a [Session] for every request and places it
// in the request context, where handlers retrieve it with [FromContext].
package session
