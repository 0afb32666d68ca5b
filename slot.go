package htn

import "fmt"

// Slot is a named hole that may, at runtime, hold a sub-domain root. It
// has no conditions of its own - attempting to add one is fatal.
type Slot struct {
	taskBase
	id      int
	subtask *SelectorTask
}

// NewSlot constructs an empty, named Slot identified by id within its
// owning Domain.
func NewSlot(name string, id int) *Slot {
	s := &Slot{id: id}
	s.name = name
	return s
}

func (s *Slot) Type() TaskType { return TaskTypeSlot }

func (s *Slot) SlotID() int { return s.id }

// AddCondition is fatal: Slot tasks do not support conditions.
func (s *Slot) AddCondition(c Condition) {
	fatalf("htn: Slot %q: slot tasks do not support conditions", s.name)
}

// Set installs root as this slot's held sub-domain, failing if the slot
// is already occupied. The held root keeps its own domain as parent;
// a Slot is a reference to a sub-domain, not an owner of its tree.
func (s *Slot) Set(root *SelectorTask) bool {
	if s.subtask != nil {
		return false
	}
	s.subtask = root
	return true
}

func (s *Slot) Clear() { s.subtask = nil }

func (s *Slot) Subtask() *SelectorTask { return s.subtask }

func (s *Slot) IsValid(ctx *Context) bool {
	result := s.subtask != nil
	ctx.log(s.name, fmt.Sprintf("Slot.IsValid:%v", result))
	return result
}

// Decompose delegates to the held sub-domain root, or fails if empty.
func (s *Slot) Decompose(ctx *Context, startIndex int) (DecompositionStatus, []*PrimitiveTask) {
	if s.subtask != nil {
		return s.subtask.Decompose(ctx, startIndex)
	}
	return Failed, nil
}

var _ Task = (*Slot)(nil)
