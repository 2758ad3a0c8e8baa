package auth

import "context"

type ctxKey struct{}

func NewContext(ctx context.Context, g *Guard) context.Context {
	return context.WithValue(ctx, ctxKey{}, g)
}

// FromContext returns the guard of the request, or nil.
func FromContext(ctx context.Context) *Guard {
	g, _ := ctx.Value(ctxKey{}).(*Guard)
	return g
}
