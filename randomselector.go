package htn

import (
	"fmt"
	"math/rand"
)

// RandomSelectorTask picks one sub-task uniformly at random from
// [startIndex, n) and attempts to decompose exactly that one - no
// fallback to other indices, and no MTR entry is recorded, so a
// RandomSelector's choice is not replay-stable across ticks. This is
// intentional (see spec's Design Notes), not an oversight.
type RandomSelectorTask struct {
	compoundBase
	intn func(n int) int
}

// NewRandomSelector constructs a named RandomSelector with no children,
// using the default math/rand source.
func NewRandomSelector(name string) *RandomSelectorTask {
	s := &RandomSelectorTask{}
	s.name = name
	s.intn = rand.Intn
	return s
}

// SetRandSource overrides the random index generator, primarily for
// deterministic tests.
func (s *RandomSelectorTask) SetRandSource(intn func(n int) int) {
	s.intn = intn
}

func (s *RandomSelectorTask) Type() TaskType { return TaskTypeRandomSelector }

func (s *RandomSelectorTask) AddChild(child Task) { s.addChild(s, child) }

func (s *RandomSelectorTask) IsValid(ctx *Context) bool {
	result := s.isValid(ctx)
	ctx.log(s.name, fmt.Sprintf("RandomSelectorTask.IsValid:%v", result))
	return result
}

func (s *RandomSelectorTask) Decompose(ctx *Context, startIndex int) (DecompositionStatus, []*PrimitiveTask) {
	if !s.IsValid(ctx) {
		return Failed, nil
	}
	if startIndex >= len(s.children) {
		return Failed, nil
	}

	ctx.pushDepth()
	defer ctx.popDepth()

	n := len(s.children) - startIndex
	i := startIndex + s.intn(n)
	child := s.children[i]

	if prim, ok := child.(*PrimitiveTask); ok {
		if prim.IsValid(ctx) {
			prim.ApplyEffects(ctx)
			ctx.log(s.name, fmt.Sprintf("RandomSelectorTask.Decompose:Succeeded, chose primitive %q at index %d", prim.Name(), i))
			return Succeeded, []*PrimitiveTask{prim}
		}
		ctx.log(s.name, fmt.Sprintf("RandomSelectorTask.Decompose:Failed, chosen primitive %q invalid", prim.Name()))
		return Failed, nil
	}

	return child.Decompose(ctx, 0)
}

var _ CompoundTask = (*RandomSelectorTask)(nil)
