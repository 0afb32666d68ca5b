package htn

import (
	"log/slog"

	"github.com/google/uuid"
)

// changeEntry is one tentative change pushed onto a property's change
// stack during planning.
type changeEntry struct {
	Scope EffectType
	Value any
}

// PartialPlanEntry is a saved resume point for a Sequence that was
// suspended by a PausePlan: decompose Task again starting at Index.
type PartialPlanEntry struct {
	Task  *SequenceTask
	Index int
}

// ContextOption configures a Context at construction time.
type ContextOption func(*Context)

// WithDebugMTR enables recording a human-readable trace of the method
// traversal record alongside the plain index trace.
func WithDebugMTR(enabled bool) ContextOption {
	return func(c *Context) { c.DebugMTR = enabled }
}

// WithLogDecomposition enables the decomposition log and gates slog debug
// output for this Context.
func WithLogDecomposition(enabled bool) ContextOption {
	return func(c *Context) { c.LogDecomposition = enabled }
}

// WithLogger sets the slog.Logger used for decomposition/execution debug
// output. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) ContextOption {
	return func(c *Context) { c.logger = logger }
}

// Context is the planning/execution state a Domain decomposes against
// and a Planner executes against: committed world state, the per-property
// change stacks used during planning, the method traversal records used
// to arbitrate between plans, and the partial-plan queue used to resume
// a Sequence suspended by a PausePlan.
type Context struct {
	WorldState WorldState

	MethodTraversalRecord []int
	LastMTR                []int
	MTRDebug               []string
	LastMTRDebug           []string
	DebugMTR               bool

	PartialPlanQueue     []PartialPlanEntry
	HasPausedPartialPlan bool

	Dirty bool

	CurrentDecompositionDepth int

	LogDecomposition bool
	DecompositionLog []LogEntry

	state       ContextState
	initialized bool
	changeStack [][]changeEntry

	id     uuid.UUID
	logger *slog.Logger
}

// NewContext constructs a Context over the given WorldState. Call Init
// before any planning or execution operation.
func NewContext(ws WorldState, opts ...ContextOption) *Context {
	if ws == nil {
		fatalf("htn: NewContext: WorldState must not be nil")
	}
	c := &Context{
		WorldState: ws,
		id:         uuid.New(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID identifies this Context across log records, stable for its lifetime.
func (c *Context) ID() uuid.UUID { return c.id }

// Init sizes the change-stack storage from the world state's declared
// property count and marks the Context usable. Safe to call again after
// Reset.
func (c *Context) Init() {
	c.changeStack = make([][]changeEntry, c.WorldState.MaxPropertyCount())
	c.state = Executing
	c.initialized = true
}

func (c *Context) IsInitialized() bool { return c.initialized }

func (c *Context) requireInitialized() {
	if !c.initialized {
		fatalf("htn: Context used before Init")
	}
}

func (c *Context) State() ContextState {
	c.requireInitialized()
	return c.state
}

func (c *Context) SetContextState(state ContextState) {
	c.requireInitialized()
	c.state = state
}

func (c *Context) IsDirty() bool { return c.Dirty }

// GetState returns the value currently visible for property id: under
// Planning, the top of its change stack if non-empty, else the committed
// value; under Executing, always the committed value.
func (c *Context) GetState(id int) any {
	c.requireInitialized()
	if c.state == Planning {
		if stack := c.changeStack[id]; len(stack) > 0 {
			return stack[len(stack)-1].Value
		}
	}
	return c.WorldState.Get(id)
}

// SetState mutates property id's value. Under Executing it commits
// directly (a no-op if the value is unchanged) and optionally marks the
// Context dirty; under Planning it pushes a tentative change tagged with
// scope, leaving committed state and the dirty flag untouched.
func (c *Context) SetState(id int, value any, setDirty bool, scope EffectType) {
	c.requireInitialized()
	if c.state == Executing {
		if c.WorldState.Has(id, value) {
			return
		}
		c.WorldState.Set(id, value)
		if setDirty {
			c.Dirty = true
		}
		return
	}
	c.changeStack[id] = append(c.changeStack[id], changeEntry{Scope: scope, Value: value})
}

// GetChangeDepth snapshots the length of every property's change stack,
// for later restoration via TrimToDepth.
func (c *Context) GetChangeDepth() []int {
	c.requireInitialized()
	depths := make([]int, len(c.changeStack))
	for i, stack := range c.changeStack {
		depths[i] = len(stack)
	}
	return depths
}

// TrimToDepth pops every change stack down to the given per-property
// depths, discarding tentative changes made since the snapshot was taken.
// Valid only under Planning.
func (c *Context) TrimToDepth(depths []int) {
	c.requireInitialized()
	if c.state != Planning {
		fatalf("htn: TrimToDepth: Context must be Planning, was %s", c.state)
	}
	for i, depth := range depths {
		if depth < len(c.changeStack[i]) {
			c.changeStack[i] = c.changeStack[i][:depth]
		}
	}
}

// TrimForExecution pops every non-Permanent entry off each change stack.
// Valid only under Planning: called at the close of a planning pass,
// before the Context flips to Executing, to discard PlanOnly/
// PlanAndExecute scaffolding that must not survive into committed state.
func (c *Context) TrimForExecution() {
	c.requireInitialized()
	if c.state != Planning {
		fatalf("htn: TrimForExecution: Context must be Planning, was %s", c.state)
	}
	for i, stack := range c.changeStack {
		trimmed := stack[:0]
		for _, entry := range stack {
			if entry.Scope == Permanent {
				trimmed = append(trimmed, entry)
			}
		}
		c.changeStack[i] = trimmed
	}
}

// commitChangeStacks writes each non-empty change stack's top value into
// committed world state and clears the stack. Called by Domain.FindPlan
// after TrimForExecution, while the Context is still Planning.
func (c *Context) commitChangeStacks() {
	for i, stack := range c.changeStack {
		if len(stack) == 0 {
			continue
		}
		c.WorldState.Set(i, stack[len(stack)-1].Value)
		c.changeStack[i] = nil
	}
}

// discardChangeStacks clears every change stack without committing,
// called by Domain.FindPlan when planning fails or is rejected.
func (c *Context) discardChangeStacks() {
	for i := range c.changeStack {
		c.changeStack[i] = nil
	}
}

// Reset clears the method traversal records and marks the Context
// uninitialized; call Init again before reusing it.
func (c *Context) Reset() {
	c.MethodTraversalRecord = nil
	c.LastMTR = nil
	c.MTRDebug = nil
	c.LastMTRDebug = nil
	c.initialized = false
}

func (c *Context) pushDepth() { c.CurrentDecompositionDepth++ }
func (c *Context) popDepth()  { c.CurrentDecompositionDepth-- }
