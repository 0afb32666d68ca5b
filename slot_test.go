package htn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlot_SetFailsWhenOccupied(t *testing.T) {
	t.Parallel()

	s := NewSlot("s", 1)
	require.True(t, s.Set(NewRoot("sub1")))
	require.False(t, s.Set(NewRoot("sub2")))
}

func TestSlot_ClearEmptiesSlot(t *testing.T) {
	t.Parallel()

	s := NewSlot("s", 1)
	s.Set(NewRoot("sub"))
	s.Clear()
	require.Nil(t, s.Subtask())
	require.True(t, s.Set(NewRoot("sub2")))
}

func TestSlot_DecomposeDelegatesToSubtask(t *testing.T) {
	t.Parallel()

	ctx := newTestContext(1)
	s := NewSlot("s", 1)

	status, plan := s.Decompose(ctx, 0)
	require.Equal(t, Failed, status)
	require.Nil(t, plan)

	sub := NewRoot("sub")
	sub.AddChild(NewPrimitiveTask("leaf"))
	s.Set(sub)

	status, plan = s.Decompose(ctx, 0)
	require.Equal(t, Succeeded, status)
	require.Len(t, plan, 1)
}

func TestSlot_AddConditionPanics(t *testing.T) {
	t.Parallel()

	s := NewSlot("s", 1)
	require.Panics(t, func() { s.AddCondition(NewFuncCondition("c", nil)) })
}

func TestSlot_IsValid(t *testing.T) {
	t.Parallel()

	ctx := newTestContext(1)
	s := NewSlot("s", 1)
	require.False(t, s.IsValid(ctx))
	s.Set(NewRoot("sub"))
	require.True(t, s.IsValid(ctx))
}
