// Package auth implements the authentication state machine of a request.
//
// A request is either anonymous or authenticated. The per-request [Guard]
// moves it between the two: [Guard.Attempt] checks a password (gated by the
// brute-force guard), [Guard.Check] resolves the identity from the session or
// redeems a remember-me cookie, and [Guard.Logout] tears everything down.
// Session identity only ever changes together with a new session identifier.
package auth
