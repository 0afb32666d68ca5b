package htn

import "fmt"

// SelectorTask decomposes into the first sub-task (lowest index) that
// itself decomposes, starting the scan at startIndex. Root is a
// SelectorTask with isRoot set, per the data model ("Root is a
// specialized Selector").
type SelectorTask struct {
	compoundBase
	isRoot bool
}

// NewSelector constructs a named Selector with no children.
func NewSelector(name string) *SelectorTask {
	s := &SelectorTask{}
	s.name = name
	return s
}

// NewRoot constructs a named Root task: a Selector that marks itself as
// the entry point of a Domain (or a sub-domain held by a Slot).
func NewRoot(name string) *SelectorTask {
	s := &SelectorTask{isRoot: true}
	s.name = name
	return s
}

func (s *SelectorTask) Type() TaskType {
	if s.isRoot {
		return TaskTypeRoot
	}
	return TaskTypeSelector
}

func (s *SelectorTask) IsRoot() bool { return s.isRoot }

func (s *SelectorTask) AddChild(child Task) { s.addChild(s, child) }

func (s *SelectorTask) IsValid(ctx *Context) bool {
	result := s.isValid(ctx)
	ctx.log(s.name, fmt.Sprintf("SelectorTask.IsValid:%v", result))
	return result
}

// Decompose implements §4.5: walk children from startIndex, rejecting
// early on an MTR comparison loss, committing to the first child that
// decomposes, recording an MTR entry for every compound child committed
// to (primitive picks record nothing - they are not branching points).
func (s *SelectorTask) Decompose(ctx *Context, startIndex int) (DecompositionStatus, []*PrimitiveTask) {
	if !s.IsValid(ctx) {
		return Failed, nil
	}

	ctx.pushDepth()
	defer ctx.popDepth()

	for i := startIndex; i < len(s.children); i++ {
		if len(ctx.LastMTR) > 0 {
			d := len(ctx.MethodTraversalRecord)
			if d < len(ctx.LastMTR) && ctx.LastMTR[d] < i {
				ctx.MethodTraversalRecord = append(ctx.MethodTraversalRecord, -1)
				if ctx.DebugMTR {
					ctx.MTRDebug = append(ctx.MTRDebug, fmt.Sprintf("REJECTED(%s, %d)", s.name, i))
				}
				ctx.log(s.name, fmt.Sprintf("SelectorTask.Decompose:Rejected at index %d (last_mtr[%d]=%d)", i, d, ctx.LastMTR[d]))
				return Rejected, nil
			}
		}

		child := s.children[i]

		if prim, ok := child.(*PrimitiveTask); ok {
			if prim.IsValid(ctx) {
				prim.ApplyEffects(ctx)
				ctx.log(s.name, fmt.Sprintf("SelectorTask.Decompose:Succeeded, chose primitive %q at index %d", prim.Name(), i))
				return Succeeded, []*PrimitiveTask{prim}
			}
			continue
		}

		mtrLen := len(ctx.MethodTraversalRecord)
		mtrDebugLen := len(ctx.MTRDebug)
		status, plan := child.Decompose(ctx, 0)
		switch status {
		case Succeeded, Partial:
			ctx.MethodTraversalRecord = append(ctx.MethodTraversalRecord, i)
			if ctx.DebugMTR {
				ctx.MTRDebug = append(ctx.MTRDebug, fmt.Sprintf("%s(%s, %d)", status, s.name, i))
			}
			return status, plan
		case Rejected:
			return Rejected, nil
		default: // Failed
			ctx.MethodTraversalRecord = ctx.MethodTraversalRecord[:mtrLen]
			ctx.MTRDebug = ctx.MTRDebug[:mtrDebugLen]
			continue
		}
	}

	ctx.log(s.name, "SelectorTask.Decompose:Failed, no valid child")
	return Failed, nil
}

var _ CompoundTask = (*SelectorTask)(nil)
