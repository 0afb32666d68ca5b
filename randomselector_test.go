package htn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomSelectorTask_PicksExactlyOneIndexNoFallback(t *testing.T) {
	t.Parallel()

	ctx := newTestContext(1)
	rs := NewRandomSelector("rs")
	bad := NewPrimitiveTask("bad")
	bad.AddCondition(NewFuncCondition("never", func(ctx *Context) bool { return false }))
	good := NewPrimitiveTask("good")
	rs.AddChild(bad)
	rs.AddChild(good)

	// Force the pick to land on the invalid child - RandomSelector must
	// fail outright rather than falling back to the valid one.
	rs.SetRandSource(func(n int) int { return 0 })

	status, plan := rs.Decompose(ctx, 0)
	require.Equal(t, Failed, status)
	require.Nil(t, plan)
}

func TestRandomSelectorTask_DoesNotRecordMTR(t *testing.T) {
	t.Parallel()

	ctx := newTestContext(1)
	rs := NewRandomSelector("rs")
	inner := NewSequence("inner")
	inner.AddChild(NewPrimitiveTask("leaf"))
	rs.AddChild(inner)
	rs.SetRandSource(func(n int) int { return 0 })

	status, plan := rs.Decompose(ctx, 0)
	require.Equal(t, Succeeded, status)
	require.Len(t, plan, 1)
	require.Empty(t, ctx.MethodTraversalRecord)
}

func TestRandomSelectorTask_StartIndexOutOfRangeFails(t *testing.T) {
	t.Parallel()

	ctx := newTestContext(1)
	rs := NewRandomSelector("rs")
	rs.AddChild(NewPrimitiveTask("only"))

	status, plan := rs.Decompose(ctx, 5)
	require.Equal(t, Failed, status)
	require.Nil(t, plan)
}

var _ CompoundTask = (*RandomSelectorTask)(nil)
