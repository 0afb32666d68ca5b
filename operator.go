package htn

import bt "github.com/joeycumines/go-behaviortree"

// Operator drives a primitive task's execution. Operators are the only
// thing that mutate committed world state during execution beyond what
// PlanAndExecute effects commit.
type Operator interface {
	Update(ctx *Context) TaskStatus
	Stop(ctx *Context)
}

// FuncOperator adapts a pair of Go closures to the Operator contract. A
// nil update function always fails, matching the source's FuncOperator.
type FuncOperator struct {
	updateFn func(ctx *Context) TaskStatus
	stopFn   func(ctx *Context)
}

// NewFuncOperator builds an Operator from an update closure and an
// optional stop closure.
func NewFuncOperator(update func(ctx *Context) TaskStatus, stop func(ctx *Context)) *FuncOperator {
	return &FuncOperator{updateFn: update, stopFn: stop}
}

func (o *FuncOperator) Update(ctx *Context) TaskStatus {
	if o.updateFn == nil {
		return Failure
	}
	return o.updateFn(ctx)
}

func (o *FuncOperator) Stop(ctx *Context) {
	if o.stopFn != nil {
		o.stopFn(ctx)
	}
}

var _ Operator = (*FuncOperator)(nil)

// NodeOperator adapts a go-behaviortree Node to the Operator contract: a
// primitive's execution step becomes ticking that behavior tree and
// translating its (bt.Status, error) into a TaskStatus. The node is
// ticked synchronously inline, consistent with the single-threaded tick
// model - no internal concurrency is introduced.
type NodeOperator struct {
	node bt.Node
}

// OperatorFromNode wraps node as an Operator. node must not be nil.
func OperatorFromNode(node bt.Node) *NodeOperator {
	if node == nil {
		fatalf("htn: OperatorFromNode: node must not be nil")
	}
	return &NodeOperator{node: node}
}

func (n *NodeOperator) Update(ctx *Context) TaskStatus {
	status, err := n.node.Tick()
	if err != nil {
		ctx.log("NodeOperator", "Update: node tick error: "+err.Error())
		return Failure
	}
	switch status {
	case bt.Success:
		return Success
	case bt.Failure:
		return Failure
	default:
		return Continue
	}
}

// Stop is a no-op: go-behaviortree nodes carry no external cancellation
// primitive, they simply stop being ticked once the operator is dropped.
func (n *NodeOperator) Stop(ctx *Context) {}

var _ Operator = (*NodeOperator)(nil)
