package core

import "context"

type contextKey string

const suppressHeaderKey contextKey = "suppressHeader"

// WithSuppressHeader marks the context so the analysis header banner is
// skipped. Used by machine-facing entry points like the MCP server.
func WithSuppressHeader(ctx context.Context) context.Context {
	return context.WithValue(ctx, suppressHeaderKey, true)
}

func shouldSuppressHeader(ctx context.Context) bool {
	v, ok := ctx.Value(suppressHeaderKey).(bool)
	return ok && v
}
