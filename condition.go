package htn

import "fmt"

// Condition is a pure read of Context state: it must not mutate world
// state, and is invoked once per decomposition step per condition.
type Condition interface {
	Name() string
	IsValid(ctx *Context) bool
}

// FuncCondition adapts a Go closure to the Condition contract.
type FuncCondition struct {
	name string
	fn   func(ctx *Context) bool
}

// NewFuncCondition wraps fn as a named Condition. A nil fn always fails.
func NewFuncCondition(name string, fn func(ctx *Context) bool) *FuncCondition {
	return &FuncCondition{name: name, fn: fn}
}

func (f *FuncCondition) Name() string { return f.name }

func (f *FuncCondition) IsValid(ctx *Context) bool {
	if f.fn == nil {
		return false
	}
	result := f.fn(ctx)
	ctx.log(f.name, fmt.Sprintf("FuncCondition.IsValid:%v", result))
	return result
}

var _ Condition = (*FuncCondition)(nil)
