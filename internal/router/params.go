package router

import "context"

// Param is one captured placeholder.
type Param struct {
	Name  string
	Value string
}

// Params are the captured placeholders in declaration order.
type Params []Param

// ByName returns the value captured for name, or "".
func (p Params) ByName(name string) string {
	for _, param := range p {
		if param.Name == name {
			return param.Value
		}
	}
	return ""
}

// Values returns the captured values in declaration order.
func (p Params) Values() []string {
	values := make([]string, len(p))
	for i, param := range p {
		values[i] = param.Value
	}
	return values
}

type paramsCtxKey struct{}

// ParamsFromContext returns the params placed in the context by Dispatch.
func ParamsFromContext(ctx context.Context) Params {
	p, _ := ctx.Value(paramsCtxKey{}).(Params)
	return p
}
