// Package router maps (method, path) pairs to named actions.
//
// The route table is an ordered list of [Route] values bound to actions by
// name at [Router.Load]. Exact routes are looked up in a map; pattern routes
// with {name} placeholders are tried in declaration order and the first
// match wins. The table is immutable after loading.
package router
