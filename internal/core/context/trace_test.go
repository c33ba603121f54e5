package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithActorOnFreshContext(t *testing.T) {
	ctx := WithActor(context.Background(), "R. Hanna")

	assert.Equal(t, "R. Hanna", GetActor(ctx))
	assert.NotEmpty(t, GetRequestID(ctx), "actor-bearing trace still carries a request id")
}

func TestWithActorCopiesExistingTrace(t *testing.T) {
	orig := NewTraceContext("Sales.Create")
	ctx := WithTrace(context.Background(), orig)

	ctx = WithActor(ctx, "tester")

	got := GetTrace(ctx)
	require.NotNil(t, got)
	assert.Equal(t, orig.RequestID, got.RequestID)
	assert.Equal(t, "Sales.Create", got.Operation)
	assert.Equal(t, "tester", got.Actor)
	assert.Empty(t, orig.Actor, "the original trace is untouched")
}

func TestGetActorWithoutTrace(t *testing.T) {
	assert.Empty(t, GetActor(context.Background()))
}
