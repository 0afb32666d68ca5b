package htn

import "github.com/google/uuid"

// Planner drives a Domain's plan against a Context one tick at a time:
// replanning when idle or dirty, dequeuing the next primitive, and
// updating its operator until it succeeds or fails.
type Planner struct {
	currentTask *PrimitiveTask
	plan        []*PrimitiveTask
	lastStatus  TaskStatus

	id uuid.UUID

	OnNewPlan                         func(newPlan []*PrimitiveTask)
	OnReplacePlan                      func(oldPlan []*PrimitiveTask, currentTask *PrimitiveTask, newPlan []*PrimitiveTask)
	OnNewTask                          func(task *PrimitiveTask)
	OnNewTaskConditionFailed           func(task *PrimitiveTask, failed Condition)
	OnStopCurrentTask                  func(task *PrimitiveTask)
	OnCurrentTaskCompletedSuccessfully func(task *PrimitiveTask)
	OnApplyEffect                      func(effect Effect)
	OnCurrentTaskFailed                func(task *PrimitiveTask)
	OnCurrentTaskContinues             func(task *PrimitiveTask)
	OnCurrentTaskExecutingConditionFailed func(task *PrimitiveTask, failed Condition)
}

// NewPlanner constructs an idle Planner with no current task or plan.
func NewPlanner() *Planner {
	return &Planner{id: uuid.New()}
}

func (p *Planner) ID() uuid.UUID { return p.id }

func (p *Planner) CurrentTask() *PrimitiveTask { return p.currentTask }
func (p *Planner) Plan() []*PrimitiveTask      { return p.plan }
func (p *Planner) LastStatus() TaskStatus      { return p.lastStatus }

// Reset clears the Planner's running state and the Context's plan-level
// bookkeeping, as if no plan had ever run.
func (p *Planner) Reset(ctx *Context) {
	p.currentTask = nil
	p.plan = nil
	p.lastStatus = Continue
	ctx.LastMTR = nil
	ctx.PartialPlanQueue = nil
	ctx.HasPausedPartialPlan = false
	ctx.Dirty = false
}

// Tick runs one planning/execution step against domain and ctx, per
// §4.9. allowImmediateReplan controls whether a just-emptied plan
// triggers an immediate recursive tick to pick up the next one without
// waiting for the caller's next invocation.
func (p *Planner) Tick(domain *Domain, ctx *Context, allowImmediateReplan bool) {
	replaced := false
	var planningStatus DecompositionStatus

	if (p.currentTask == nil && len(p.plan) == 0) || ctx.Dirty {
		var savedQueue []PartialPlanEntry
		hadPaused := ctx.HasPausedPartialPlan
		if ctx.Dirty && hadPaused {
			savedQueue = ctx.PartialPlanQueue
			ctx.LastMTR = append([]int(nil), ctx.MethodTraversalRecord...)
		}

		status, newPlan := domain.FindPlan(ctx)
		planningStatus = status

		if status == Succeeded || status == Partial {
			if len(p.plan) > 0 || p.currentTask != nil {
				if p.OnReplacePlan != nil {
					p.OnReplacePlan(p.plan, p.currentTask, newPlan)
				}
				if p.currentTask != nil {
					if p.OnStopCurrentTask != nil {
						p.OnStopCurrentTask(p.currentTask)
					}
					p.currentTask.Stop(ctx)
					p.currentTask = nil
				}
				replaced = true
			} else if p.OnNewPlan != nil {
				p.OnNewPlan(newPlan)
			}
			p.plan = newPlan
			ctx.LastMTR = append([]int(nil), ctx.MethodTraversalRecord...)
		} else if hadPaused && savedQueue != nil {
			ctx.PartialPlanQueue = savedQueue
			ctx.HasPausedPartialPlan = true
			ctx.MethodTraversalRecord = append([]int(nil), ctx.LastMTR...)
			ctx.LastMTR = nil
		}
	}

	if p.currentTask == nil && len(p.plan) > 0 {
		task := p.plan[0]
		p.plan = p.plan[1:]
		p.currentTask = task
		if p.OnNewTask != nil {
			p.OnNewTask(task)
		}

		if failed := firstFailedCondition(task.Conditions(), ctx); failed != nil {
			if p.OnNewTaskConditionFailed != nil {
				p.OnNewTaskConditionFailed(task, failed)
			}
			p.abortPlan(ctx)
			return
		}
	}

	if p.currentTask != nil {
		task := p.currentTask
		if task.Operator() == nil {
			p.currentTask = nil
			p.lastStatus = Failure
		} else {
			for _, c := range task.ExecutingConditions() {
				if !c.IsValid(ctx) {
					if p.OnCurrentTaskExecutingConditionFailed != nil {
						p.OnCurrentTaskExecutingConditionFailed(task, c)
					}
					p.abortPlan(ctx)
					return
				}
			}

			status := task.Operator().Update(ctx)
			p.lastStatus = status

			switch status {
			case Success:
				if p.OnCurrentTaskCompletedSuccessfully != nil {
					p.OnCurrentTaskCompletedSuccessfully(task)
				}
				for _, e := range task.Effects() {
					if e.Type() == PlanAndExecute {
						if p.OnApplyEffect != nil {
							p.OnApplyEffect(e)
						}
						e.Apply(ctx)
					}
				}
				p.currentTask = nil
				if len(p.plan) == 0 {
					ctx.LastMTR = nil
					ctx.Dirty = false
					if allowImmediateReplan {
						p.Tick(domain, ctx, false)
						return
					}
				}
			case Failure:
				if p.OnCurrentTaskFailed != nil {
					p.OnCurrentTaskFailed(task)
				}
				p.abortPlan(ctx)
				return
			case Continue:
				if p.OnCurrentTaskContinues != nil {
					p.OnCurrentTaskContinues(task)
				}
			}
		}
	}

	if p.currentTask == nil && len(p.plan) == 0 && !replaced &&
		(planningStatus == Failed || planningStatus == Rejected) {
		p.lastStatus = Failure
	}
}

// firstFailedCondition returns the first condition in conds that fails
// against ctx, or nil if all hold.
func firstFailedCondition(conds []Condition, ctx *Context) Condition {
	for _, c := range conds {
		if !c.IsValid(ctx) {
			return c
		}
	}
	return nil
}

// abortPlan discards the current task and plan-level bookkeeping after
// a condition failure or operator failure, matching the reset performed
// by dequeue-time condition failures per §4.9 step 2.
func (p *Planner) abortPlan(ctx *Context) {
	p.currentTask = nil
	p.plan = nil
	ctx.LastMTR = nil
	ctx.PartialPlanQueue = nil
	ctx.Dirty = false
}
