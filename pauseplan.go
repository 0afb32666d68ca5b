package htn

// PausePlanTask is a marker leaf valid only as a direct child of a
// Sequence: reaching it suspends decomposition, saving a continuation
// frame that resumes the Sequence at the next child on a later
// Domain.FindPlan call.
type PausePlanTask struct {
	taskBase
}

// NewPausePlan constructs a named PausePlan marker.
func NewPausePlan(name string) *PausePlanTask {
	t := &PausePlanTask{}
	t.name = name
	return t
}

func (t *PausePlanTask) Type() TaskType { return TaskTypePausePlan }

// AddCondition is fatal: a PausePlan has no conditions by construction.
func (t *PausePlanTask) AddCondition(c Condition) {
	fatalf("htn: PausePlanTask %q: cannot add a condition to a pause-plan task", t.name)
}

func (t *PausePlanTask) IsValid(ctx *Context) bool { return true }

// Decompose should never be invoked directly: Sequence special-cases
// PausePlan children before ever calling Decompose on them.
func (t *PausePlanTask) Decompose(ctx *Context, startIndex int) (DecompositionStatus, []*PrimitiveTask) {
	fatalf("htn: PausePlanTask %q: decomposed directly instead of being intercepted by its owning Sequence", t.name)
	return Failed, nil
}

var _ Task = (*PausePlanTask)(nil)
