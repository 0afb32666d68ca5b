package htn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestContext(propertyCount int) *Context {
	ctx := NewContext(NewMapWorldState(propertyCount))
	ctx.Init()
	return ctx
}

func TestContext_InitRequiredBeforeUse(t *testing.T) {
	t.Parallel()

	ctx := NewContext(NewMapWorldState(1))
	require.False(t, ctx.IsInitialized())
	require.Panics(t, func() { ctx.GetState(0) })

	ctx.Init()
	require.True(t, ctx.IsInitialized())
	require.Equal(t, Executing, ctx.State())
}

func TestNewContext_NilWorldStatePanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { NewContext(nil) })
}

func TestContext_SetStateExecutingCommitsDirectly(t *testing.T) {
	t.Parallel()

	ctx := newTestContext(2)
	ctx.SetState(0, 5, true, Permanent)
	require.Equal(t, 5, ctx.GetState(0))
	require.True(t, ctx.IsDirty())
}

func TestContext_SetStateExecuting_NoOpWhenUnchanged(t *testing.T) {
	t.Parallel()

	ctx := newTestContext(1)
	ctx.SetState(0, 1, true, Permanent)
	ctx.Dirty = false
	ctx.SetState(0, 1, true, Permanent)
	require.False(t, ctx.IsDirty())
}

// TestContext_EffectScopesAndRollback grounds scenario S3: a primitive's
// PlanOnly, PlanAndExecute and Permanent effects are all visible during
// Planning, but only the Permanent one survives commit.
func TestContext_EffectScopesAndRollback(t *testing.T) {
	t.Parallel()

	ctx := newTestContext(3)
	ctx.SetContextState(Planning)

	ctx.SetState(0, 1, false, PlanOnly)
	ctx.SetState(1, 1, false, PlanAndExecute)
	ctx.SetState(2, 1, false, Permanent)

	require.Equal(t, 1, ctx.GetState(0))
	require.Equal(t, 1, ctx.GetState(1))
	require.Equal(t, 1, ctx.GetState(2))

	ctx.TrimForExecution()
	ctx.commitChangeStacks()
	ctx.SetContextState(Executing)

	require.Nil(t, ctx.WorldState.Get(0))
	require.Nil(t, ctx.WorldState.Get(1))
	require.Equal(t, 1, ctx.WorldState.Get(2))

	for _, stack := range ctx.changeStack {
		require.Empty(t, stack)
	}
}

func TestContext_TrimToDepthRestoresSnapshot(t *testing.T) {
	t.Parallel()

	ctx := newTestContext(1)
	ctx.SetContextState(Planning)

	snapshot := ctx.GetChangeDepth()
	ctx.SetState(0, "a", false, PlanOnly)
	ctx.SetState(0, "b", false, PlanOnly)
	require.Equal(t, "b", ctx.GetState(0))

	ctx.TrimToDepth(snapshot)
	require.Nil(t, ctx.GetState(0))
}

func TestContext_TrimToDepthFatalUnlessPlanning(t *testing.T) {
	t.Parallel()

	ctx := newTestContext(1)
	require.Panics(t, func() { ctx.TrimToDepth(ctx.GetChangeDepth()) })
}

func TestContext_TrimForExecutionFatalUnlessPlanning(t *testing.T) {
	t.Parallel()

	ctx := newTestContext(1)
	require.Panics(t, func() { ctx.TrimForExecution() })
}

func TestContext_DiscardChangeStacksClearsWithoutCommitting(t *testing.T) {
	t.Parallel()

	ctx := newTestContext(1)
	ctx.SetContextState(Planning)
	ctx.SetState(0, 7, false, Permanent)
	ctx.discardChangeStacks()
	ctx.SetContextState(Executing)

	require.Nil(t, ctx.WorldState.Get(0))
}

func TestContext_Reset(t *testing.T) {
	t.Parallel()

	ctx := newTestContext(1)
	ctx.MethodTraversalRecord = []int{1, 2}
	ctx.LastMTR = []int{0}
	ctx.Reset()

	require.Nil(t, ctx.MethodTraversalRecord)
	require.Nil(t, ctx.LastMTR)
	require.False(t, ctx.IsInitialized())
}
