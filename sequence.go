package htn

import "fmt"

// SequenceTask decomposes into a plan only when every sub-task
// (starting at startIndex) decomposes in order. A PausePlan child
// suspends decomposition, pushing a continuation frame to resume at the
// next child on a later Domain.FindPlan call.
type SequenceTask struct {
	compoundBase
}

// NewSequence constructs a named Sequence with no children.
func NewSequence(name string) *SequenceTask {
	s := &SequenceTask{}
	s.name = name
	return s
}

func (s *SequenceTask) Type() TaskType { return TaskTypeSequence }

func (s *SequenceTask) AddChild(child Task) { s.addChild(s, child) }

// AddPausePlanChild appends a PausePlan marker to this Sequence. Adding
// a PausePlan anywhere other than directly under a Sequence is fatal at
// construction: the shared addChild used by every compound type's
// AddChild rejects a *PausePlanTask unless the parent is a Sequence.
func (s *SequenceTask) AddPausePlanChild(p *PausePlanTask) {
	s.addChild(s, p)
}

func (s *SequenceTask) IsValid(ctx *Context) bool {
	result := s.isValid(ctx)
	ctx.log(s.name, fmt.Sprintf("SequenceTask.IsValid:%v", result))
	return result
}

func (s *SequenceTask) Decompose(ctx *Context, startIndex int) (DecompositionStatus, []*PrimitiveTask) {
	if !s.IsValid(ctx) {
		return Failed, nil
	}

	ctx.pushDepth()
	defer ctx.popDepth()

	snapshot := ctx.GetChangeDepth()
	var plan []*PrimitiveTask

	for i := startIndex; i < len(s.children); i++ {
		child := s.children[i]

		switch t := child.(type) {
		case *PrimitiveTask:
			if !t.IsValid(ctx) {
				ctx.TrimToDepth(snapshot)
				ctx.log(s.name, fmt.Sprintf("SequenceTask.Decompose:Failed, primitive %q invalid at index %d", t.Name(), i))
				return Failed, nil
			}
			t.ApplyEffects(ctx)
			plan = append(plan, t)

		case *PausePlanTask:
			ctx.PartialPlanQueue = append(ctx.PartialPlanQueue, PartialPlanEntry{Task: s, Index: i + 1})
			ctx.HasPausedPartialPlan = true
			ctx.log(s.name, fmt.Sprintf("SequenceTask.Decompose:Partial, paused at index %d", i))
			return Partial, plan

		default:
			status, subPlan := child.Decompose(ctx, 0)
			switch status {
			case Failed:
				ctx.TrimToDepth(snapshot)
				ctx.log(s.name, fmt.Sprintf("SequenceTask.Decompose:Failed, child %q failed at index %d", child.Name(), i))
				return Failed, nil
			case Rejected:
				ctx.TrimToDepth(snapshot)
				return Rejected, nil
			case Partial:
				plan = append(plan, subPlan...)
				if i < len(s.children)-1 {
					ctx.PartialPlanQueue = append(ctx.PartialPlanQueue, PartialPlanEntry{Task: s, Index: i + 1})
				}
				return Partial, plan
			case Succeeded:
				plan = append(plan, subPlan...)
			}
		}
	}

	ctx.log(s.name, "SequenceTask.Decompose:Succeeded")
	return Succeeded, plan
}

var _ CompoundTask = (*SequenceTask)(nil)
