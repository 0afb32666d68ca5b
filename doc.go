/*
Package htn implements the core of a Hierarchical Task Network planner:
a domain of compound and primitive tasks is decomposed against a mutable
world state into a queue of primitives, which a Planner drives tick by
tick, replanning when the world changes or a running task's conditions
stop holding.

# Architecture

A [Domain] owns a tree of [Task] values rooted at a Selector-like root.
Decomposition walks that tree against a [Context], which holds the
committed [WorldState] plus a per-property stack of tentative changes
used during planning. [Domain.FindPlan] drives one decomposition pass
and commits or discards those tentative changes. [Planner.Tick] owns
the resulting plan queue, executing one primitive at a time via its
[Operator] and calling [Domain.FindPlan] again whenever the world goes
dirty or the plan runs out.

# Task variants

	Primitive      - leaf: operator + executing-conditions + effects
	Selector       - first sub-task that decomposes wins
	Sequence       - all sub-tasks must decompose; supports PausePlan
	RandomSelector - one sub-task picked uniformly at random
	PausePlan      - suspends a Sequence, saving a resume point
	Slot           - a named hole that may hold a sub-domain root

# Plan preference

Selectors record a Method Traversal Record (MTR): the index chosen at
each branching point. A later decomposition pass compares its
in-progress MTR against the currently running plan's MTR lexically,
preferring lower indices; a pass that doesn't beat the running plan is
rejected outright rather than replacing it. See [Context.LastMTR].

# Non-goals

This package does not provide a fluent domain-builder DSL, a GUI or
debug visualizer, multi-agent scheduling, or a domain serialization
format. Conditions, effects and operators are supplied by the
embedder; see [Condition], [Effect], and [Operator].
*/
package htn
