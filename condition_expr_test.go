package htn

import (
	"testing"

	"github.com/expr-lang/expr"
	"github.com/stretchr/testify/require"
)

func TestExprCondition_EvaluatesAgainstWorldState(t *testing.T) {
	t.Parallel()

	ctx := newTestContext(1)
	ctx.WorldState.Set(0, 5)

	c := NewExprCondition("gt3", "get(0) > 3")
	require.True(t, c.IsValid(ctx))
	require.Nil(t, c.LastError())

	ctx.WorldState.Set(0, 1)
	require.False(t, c.IsValid(ctx))
}

func TestExprCondition_CompilesOncePerExpression(t *testing.T) {
	t.Parallel()

	ctx := newTestContext(1)
	ctx.WorldState.Set(0, true)

	c1 := NewExprCondition("a", "get(0) == true")
	c2 := NewExprCondition("b", "get(0) == true")
	require.True(t, c1.IsValid(ctx))
	require.True(t, c2.IsValid(ctx))

	_, hit := exprCache.Get("get(0) == true")
	require.True(t, hit)
}

func TestExprCondition_NonBooleanResultFails(t *testing.T) {
	t.Parallel()

	ctx := newTestContext(1)
	ctx.WorldState.Set(0, 5)

	c := NewExprCondition("notbool", "get(0) + 1")
	require.Panics(t, func() { NewExprCondition("empty", "") })
	require.False(t, c.IsValid(ctx))
	require.Error(t, c.LastError())
}

func TestExprLRUCache_EvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	cache := newExprLRUCache(2)
	prog, err := expr.Compile("get(0) == 1", expr.Env(exprEnv{}), expr.AsBool())
	require.NoError(t, err)

	cache.Put("a", prog)
	cache.Put("b", prog)
	cache.Get("a")
	cache.Put("c", prog)

	_, ok := cache.Get("b")
	require.False(t, ok)
	_, ok = cache.Get("a")
	require.True(t, ok)
	_, ok = cache.Get("c")
	require.True(t, ok)
}
