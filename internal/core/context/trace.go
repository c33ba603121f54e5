// Package context provides request-scoped values extraction.
package context

import (
	"context"

	"github.com/google/uuid"
)

// TraceContext identifies one outgoing API call for log correlation.
type TraceContext struct {
	RequestID string
	Operation string // "Customer.Create", "Reports.GetLowStockProducts", ...
	Actor     string // creator/canceller name when the operation records one
}

type traceContextKey struct{}

// WithTrace adds TraceContext to context.
func WithTrace(ctx context.Context, trace *TraceContext) context.Context {
	return context.WithValue(ctx, traceContextKey{}, trace)
}

// GetTrace returns TraceContext from context.
func GetTrace(ctx context.Context) *TraceContext {
	if v, ok := ctx.Value(traceContextKey{}).(*TraceContext); ok {
		return v
	}
	return nil
}

// GetRequestID returns request ID from context or empty string.
func GetRequestID(ctx context.Context) string {
	if t := GetTrace(ctx); t != nil {
		return t.RequestID
	}
	return ""
}

// GetActor returns the acting user name from context or empty string.
func GetActor(ctx context.Context) string {
	if t := GetTrace(ctx); t != nil {
		return t.Actor
	}
	return ""
}

// WithActor records the acting user on the context's trace, starting a fresh
// trace when there is none yet. An existing trace is copied, not mutated.
func WithActor(ctx context.Context, actor string) context.Context {
	if t := GetTrace(ctx); t != nil {
		c := *t
		c.Actor = actor
		return WithTrace(ctx, &c)
	}
	return WithTrace(ctx, &TraceContext{
		RequestID: uuid.New().String(),
		Actor:     actor,
	})
}

// NewTraceContext creates a new TraceContext with a generated request ID.
func NewTraceContext(operation string) *TraceContext {
	return &TraceContext{
		RequestID: uuid.New().String(),
		Operation: operation,
	}
}
