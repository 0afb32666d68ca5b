package htn

import (
	"fmt"

	"github.com/google/uuid"
)

// Domain owns a task tree rooted at Root, plus any named slots declared
// within it, and is the entry point for decomposing that tree into a
// plan via FindPlan.
type Domain struct {
	Root *SelectorTask

	slots map[int]*Slot
	id    uuid.UUID
}

// NewDomain constructs a Domain with an empty, named Root.
func NewDomain(name string) *Domain {
	return &Domain{
		Root:  NewRoot(name),
		slots: make(map[int]*Slot),
		id:    uuid.New(),
	}
}

func (d *Domain) ID() uuid.UUID { return d.id }

// Add attaches child under parent, installing the back-reference. This
// is the direct-construction equivalent of the excluded fluent builder's
// tree-assembly step.
func (d *Domain) Add(parent CompoundTask, child Task) {
	parent.AddChild(child)
}

// DeclareSlot registers a new, empty Slot under the given id. Fatal if
// id is already declared - slot ids must be unique within a Domain.
func (d *Domain) DeclareSlot(name string, id int) *Slot {
	if _, exists := d.slots[id]; exists {
		fatalf("htn: Domain: slot id %d already declared", id)
	}
	s := NewSlot(name, id)
	d.slots[id] = s
	return s
}

// TrySetSlotDomain fills the named slot with sub's root, returning false
// if the slot doesn't exist or is already occupied.
func (d *Domain) TrySetSlotDomain(id int, sub *Domain) bool {
	s, ok := d.slots[id]
	if !ok {
		return false
	}
	return s.Set(sub.Root)
}

// ClearSlot empties the named slot, if it exists.
func (d *Domain) ClearSlot(id int) {
	if s, ok := d.slots[id]; ok {
		s.Clear()
	}
}

// Slot looks up a previously declared slot by id.
func (d *Domain) Slot(id int) (*Slot, bool) {
	s, ok := d.slots[id]
	return s, ok
}

// Splice grafts sub's root as a sub-tree directly under parent, without
// requiring the excluded fluent builder's pointer-stack.
func (d *Domain) Splice(parent CompoundTask, sub *Domain) {
	parent.AddChild(sub.Root)
}

// FindPlan runs one decomposition pass against ctx, implementing §4.8:
// resume a paused partial plan if one exists and no plan is currently
// running (LastMTR empty), falling back to a full decomposition from
// Root on failure; apply the post-pass MTR equality check; commit or
// discard the change stacks; and flip ctx back to Executing before
// returning.
func (d *Domain) FindPlan(ctx *Context) (DecompositionStatus, []*PrimitiveTask) {
	if !ctx.IsInitialized() {
		fatalf("htn: Domain.FindPlan: Context was not initialized")
	}

	ctx.SetContextState(Planning)

	var plan []*PrimitiveTask
	status := Failed

	if ctx.HasPausedPartialPlan && len(ctx.LastMTR) == 0 {
		ctx.HasPausedPartialPlan = false
		status, plan = d.resumePartialPlan(ctx)
	}

	if status != Succeeded && status != Partial {
		var savedQueue []PartialPlanEntry
		if len(ctx.PartialPlanQueue) > 0 {
			savedQueue = ctx.PartialPlanQueue
			ctx.PartialPlanQueue = nil
		}

		ctx.MethodTraversalRecord = nil
		if ctx.DebugMTR {
			ctx.MTRDebug = nil
		}

		status, plan = d.Root.Decompose(ctx, 0)

		if status == Failed || status == Rejected {
			if savedQueue != nil {
				ctx.PartialPlanQueue = savedQueue
				ctx.HasPausedPartialPlan = true
			}
		} else if status == Succeeded || status == Partial {
			if mtrEqualOrWorse(ctx.MethodTraversalRecord, ctx.LastMTR) {
				status = Rejected
				plan = nil
			}
		}
	}

	if status == Succeeded || status == Partial {
		ctx.TrimForExecution()
		ctx.commitChangeStacks()
	} else {
		ctx.discardChangeStacks()
	}

	ctx.SetContextState(Executing)
	return status, plan
}

// resumePartialPlan pops continuation frames from the partial-plan queue
// in FIFO order, decomposing each and appending to the output plan,
// until the queue empties or a new pause arises.
func (d *Domain) resumePartialPlan(ctx *Context) (DecompositionStatus, []*PrimitiveTask) {
	var plan []*PrimitiveTask
	status := Succeeded

	for len(ctx.PartialPlanQueue) > 0 {
		entry := ctx.PartialPlanQueue[0]
		ctx.PartialPlanQueue = ctx.PartialPlanQueue[1:]

		s, subPlan := entry.Task.Decompose(ctx, entry.Index)
		status = s
		plan = append(plan, subPlan...)

		if status == Partial {
			break
		}
		if status == Failed || status == Rejected {
			return status, nil
		}
	}

	return status, plan
}

// mtrEqualOrWorse implements §4.7's post-pass equality check: true when
// mtr is the same length as lastMTR and no position in mtr is strictly
// less than the corresponding position in lastMTR - i.e. the new plan
// did not strictly improve on the one currently running. Always false
// when lastMTR is empty (no running plan to compare against).
func mtrEqualOrWorse(mtr, lastMTR []int) bool {
	if len(lastMTR) == 0 {
		return false
	}
	if len(mtr) != len(lastMTR) {
		return false
	}
	for i := range mtr {
		if mtr[i] < lastMTR[i] {
			return false
		}
	}
	return true
}

func (d *Domain) String() string {
	return fmt.Sprintf("Domain(%s)", d.Root.Name())
}
