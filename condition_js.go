package htn

import (
	"fmt"

	"github.com/dop251/goja"
)

// JSCondition evaluates a JavaScript boolean expression against the
// Context's world state using a private goja.Runtime. Unlike its
// multi-goroutine ancestor, decomposition ticks on a single goroutine,
// so no event-loop bridge is needed: the runtime is called inline.
//
// The script sees a single global function get(id) that reads a world
// state property, e.g. "get(3) === true && get(7) > 2".
type JSCondition struct {
	name    string
	program *goja.Program
	vm      *goja.Runtime
	lastErr error
}

// NewJSCondition compiles script into a private goja.Runtime. Fatal if
// script fails to compile - a condition with a broken script can never
// be valid, so catching this at construction beats discovering it mid-plan.
func NewJSCondition(name, script string) *JSCondition {
	program, err := goja.Compile(name, "("+script+")", false)
	if err != nil {
		fatalf("htn: NewJSCondition %q: compile: %v", name, err)
	}
	return &JSCondition{
		name:    name,
		program: program,
		vm:      goja.New(),
	}
}

func (c *JSCondition) Name() string { return c.name }

// LastError reports the most recent evaluation error, if the last
// IsValid call returned false because of one rather than a legitimate
// unmet condition.
func (c *JSCondition) LastError() error { return c.lastErr }

func (c *JSCondition) IsValid(ctx *Context) bool {
	c.lastErr = nil

	if err := c.vm.Set("get", func(id int) any { return ctx.GetState(id) }); err != nil {
		c.lastErr = fmt.Errorf("htn: JSCondition %q: bind get: %w", c.name, err)
		return false
	}

	value, err := c.vm.RunProgram(c.program)
	if err != nil {
		c.lastErr = fmt.Errorf("htn: JSCondition %q: evaluate: %w", c.name, err)
		return false
	}

	result := value.ToBoolean()
	ctx.log(c.name, fmt.Sprintf("JSCondition.IsValid:%v", result))
	return result
}

var _ Condition = (*JSCondition)(nil)
