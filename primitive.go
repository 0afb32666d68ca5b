package htn

import "fmt"

// PrimitiveTask is a leaf task carrying an optional operator, a list of
// executing-conditions checked just before each operator update, and a
// list of effects applied when the primitive is chosen during
// decomposition.
type PrimitiveTask struct {
	taskBase
	operator           Operator
	executingConditions []Condition
	effects            []Effect
}

// NewPrimitiveTask constructs a named, otherwise empty primitive.
func NewPrimitiveTask(name string) *PrimitiveTask {
	t := &PrimitiveTask{}
	t.name = name
	return t
}

func (t *PrimitiveTask) Type() TaskType { return TaskTypePrimitive }

func (t *PrimitiveTask) IsValid(ctx *Context) bool {
	result := t.isValid(ctx)
	ctx.log(t.name, fmt.Sprintf("PrimitiveTask.IsValid:%v", result))
	return result
}

// SetOperator attaches op to this primitive. Fatal if an operator is
// already set - a primitive may hold at most one.
func (t *PrimitiveTask) SetOperator(op Operator) {
	if t.operator != nil {
		fatalf("htn: PrimitiveTask %q: a primitive task can only contain a single operator", t.name)
	}
	t.operator = op
}

func (t *PrimitiveTask) Operator() Operator { return t.operator }

// AddExecutingCondition appends a condition re-checked immediately
// before every operator update while this primitive is executing.
func (t *PrimitiveTask) AddExecutingCondition(c Condition) {
	t.executingConditions = append(t.executingConditions, c)
}

func (t *PrimitiveTask) ExecutingConditions() []Condition { return t.executingConditions }

// AddEffect appends an effect applied when this primitive is chosen
// during decomposition (and, for PlanAndExecute effects, re-applied by
// the Planner on operator success).
func (t *PrimitiveTask) AddEffect(e Effect) {
	t.effects = append(t.effects, e)
}

func (t *PrimitiveTask) Effects() []Effect { return t.effects }

// ApplyEffects invokes Apply on every effect in traversal order.
func (t *PrimitiveTask) ApplyEffects(ctx *Context) {
	ctx.pushDepth()
	defer ctx.popDepth()
	for _, e := range t.effects {
		e.Apply(ctx)
	}
}

// Decompose reports whether the primitive itself is a valid one-element
// plan. Selector, RandomSelector and Sequence special-case primitive
// children directly rather than calling this, matching the source, but
// it is exposed for uniformity with the other Task variants. It does not
// apply the primitive's effects.
func (t *PrimitiveTask) Decompose(ctx *Context, startIndex int) (DecompositionStatus, []*PrimitiveTask) {
	if !t.IsValid(ctx) {
		return Failed, nil
	}
	return Succeeded, []*PrimitiveTask{t}
}

// Stop delegates to the attached operator's Stop, if any.
func (t *PrimitiveTask) Stop(ctx *Context) {
	if t.operator != nil {
		t.operator.Stop(ctx)
	}
}

var _ Task = (*PrimitiveTask)(nil)
