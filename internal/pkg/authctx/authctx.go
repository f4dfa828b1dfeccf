package authctx

import "context"

type tokenKey struct{}

// WithToken attaches the operator's bearer token to ctx. Backend calls made
// with the returned context act as that operator.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func Token(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}
