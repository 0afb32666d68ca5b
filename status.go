package htn

// DecompositionStatus is the outcome of decomposing a task.
type DecompositionStatus int

const (
	// Failed means no candidate sub-task decomposed; a structural dead end.
	Failed DecompositionStatus = iota
	// Partial means a PausePlan was reached; the returned plan is a valid
	// prefix and a continuation frame was pushed onto the partial-plan queue.
	Partial
	// Rejected means the method traversal record comparison eliminated this
	// plan in favor of the plan currently running.
	Rejected
	// Succeeded means the task fully decomposed into a plan.
	Succeeded
)

func (s DecompositionStatus) String() string {
	switch s {
	case Failed:
		return "Failed"
	case Partial:
		return "Partial"
	case Rejected:
		return "Rejected"
	case Succeeded:
		return "Succeeded"
	default:
		return "Unknown"
	}
}

// TaskStatus is the outcome of updating a primitive task's operator.
type TaskStatus int

const (
	// Continue means the operator has not finished; the planner will call
	// Update again on the next tick.
	Continue TaskStatus = iota
	// Success means the operator finished and the primitive's
	// PlanAndExecute effects should be applied.
	Success
	// Failure means the operator failed; the whole plan is discarded.
	Failure
)

func (s TaskStatus) String() string {
	switch s {
	case Continue:
		return "Continue"
	case Success:
		return "Success"
	case Failure:
		return "Failure"
	default:
		return "Unknown"
	}
}

// EffectType controls whether a change to world state survives planning
// and whether it is re-applied when a primitive's operator succeeds.
type EffectType int

const (
	// Permanent effects are never trimmed by TrimForExecution and are
	// committed to world state as-is.
	Permanent EffectType = iota
	// PlanOnly effects exist only to steer decomposition; they are
	// discarded by TrimForExecution and never committed or re-applied.
	PlanOnly
	// PlanAndExecute effects steer decomposition like PlanOnly, but are
	// re-applied by the Planner when the owning primitive's operator
	// reports Success during execution.
	PlanAndExecute
)

func (t EffectType) String() string {
	switch t {
	case Permanent:
		return "Permanent"
	case PlanOnly:
		return "PlanOnly"
	case PlanAndExecute:
		return "PlanAndExecute"
	default:
		return "Unknown"
	}
}

// ContextState is the phase a Context is in: building a plan, or
// executing one already committed.
type ContextState int

const (
	Planning ContextState = iota
	Executing
)

func (s ContextState) String() string {
	switch s {
	case Planning:
		return "Planning"
	case Executing:
		return "Executing"
	default:
		return "Unknown"
	}
}

// TaskType tags the variant a Task implements, matching the tagged union
// in the data model rather than relying on type assertions alone.
type TaskType int

const (
	TaskTypePrimitive TaskType = iota
	TaskTypeSelector
	TaskTypeSequence
	TaskTypeRandomSelector
	TaskTypePausePlan
	TaskTypeSlot
	TaskTypeRoot
)

func (t TaskType) String() string {
	switch t {
	case TaskTypePrimitive:
		return "Primitive"
	case TaskTypeSelector:
		return "Selector"
	case TaskTypeSequence:
		return "Sequence"
	case TaskTypeRandomSelector:
		return "RandomSelector"
	case TaskTypePausePlan:
		return "PausePlan"
	case TaskTypeSlot:
		return "Slot"
	case TaskTypeRoot:
		return "Root"
	default:
		return "Unknown"
	}
}
