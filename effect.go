package htn

// Effect is applied by decomposition (under Planning, mutating the
// change stack at its own scope) and, for PlanAndExecute effects, by the
// Planner again at execute time when the owning primitive succeeds.
type Effect interface {
	Name() string
	Type() EffectType
	Apply(ctx *Context)
}

// ActionEffect adapts a Go closure to the Effect contract. The closure
// receives the effect's own scope so one function can be shared across
// effects of different scopes if desired.
type ActionEffect struct {
	name string
	typ  EffectType
	fn   func(ctx *Context, scope EffectType)
}

// NewActionEffect builds a named Effect of the given scope backed by fn.
func NewActionEffect(name string, typ EffectType, fn func(ctx *Context, scope EffectType)) *ActionEffect {
	return &ActionEffect{name: name, typ: typ, fn: fn}
}

func (e *ActionEffect) Name() string    { return e.name }
func (e *ActionEffect) Type() EffectType { return e.typ }

func (e *ActionEffect) Apply(ctx *Context) {
	if e.fn != nil {
		e.fn(ctx, e.typ)
	}
	ctx.log(e.name, "ActionEffect.Apply")
}

var _ Effect = (*ActionEffect)(nil)

// StateEffect is the common case: setting a single property to a fixed
// value at the effect's scope, marking the Context dirty when it commits
// during execution.
func StateEffect(name string, typ EffectType, propertyID int, value any) *ActionEffect {
	return NewActionEffect(name, typ, func(ctx *Context, scope EffectType) {
		ctx.SetState(propertyID, value, true, scope)
	})
}
