package htn

import (
	"container/list"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// DefaultExprCacheSize bounds the number of compiled expr-lang programs
// kept alive by the package-level expression cache.
const DefaultExprCacheSize = 1000

var exprCache = newExprLRUCache(DefaultExprCacheSize)

// ExprLRUCache is an LRU cache of compiled expr-lang programs keyed by
// source text. A planning core ticks on a single goroutine, so unlike
// its multi-goroutine ancestor this cache carries no internal locking.
type ExprLRUCache struct {
	cache     map[string]*list.Element
	lru       *list.List
	maxSize   int
	hitCount  int64
	missCount int64
}

type exprCacheEntry struct {
	expression string
	program    *vm.Program
}

func newExprLRUCache(maxSize int) *ExprLRUCache {
	if maxSize < 1 {
		maxSize = DefaultExprCacheSize
	}
	return &ExprLRUCache{
		cache:   make(map[string]*list.Element, maxSize),
		lru:     list.New(),
		maxSize: maxSize,
	}
}

func (c *ExprLRUCache) Get(expression string) (*vm.Program, bool) {
	elem, ok := c.cache[expression]
	if !ok {
		c.missCount++
		return nil, false
	}
	c.hitCount++
	if elem != c.lru.Front() {
		c.lru.MoveToFront(elem)
	}
	return elem.Value.(*exprCacheEntry).program, true
}

func (c *ExprLRUCache) Put(expression string, program *vm.Program) {
	if elem, ok := c.cache[expression]; ok {
		c.lru.MoveToFront(elem)
		elem.Value.(*exprCacheEntry).program = program
		return
	}

	elem := c.lru.PushFront(&exprCacheEntry{expression: expression, program: program})
	c.cache[expression] = elem

	for c.lru.Len() > c.maxSize {
		back := c.lru.Back()
		if back == nil {
			break
		}
		delete(c.cache, back.Value.(*exprCacheEntry).expression)
		c.lru.Remove(back)
	}
}

// Resize changes the cache's maximum size, evicting immediately if the
// new size is smaller than the current occupancy.
func (c *ExprLRUCache) Resize(maxSize int) {
	if maxSize < 1 {
		maxSize = 1
	}
	c.maxSize = maxSize
	for c.lru.Len() > c.maxSize {
		back := c.lru.Back()
		if back == nil {
			break
		}
		delete(c.cache, back.Value.(*exprCacheEntry).expression)
		c.lru.Remove(back)
	}
}

func (c *ExprLRUCache) Clear() {
	c.cache = make(map[string]*list.Element)
	c.lru.Init()
}

func (c *ExprLRUCache) Len() int { return c.lru.Len() }

// Stats reports cache occupancy and hit/miss counters.
func (c *ExprLRUCache) Stats() (size int, hits, misses int64, ratio float64) {
	total := c.hitCount + c.missCount
	if total > 0 {
		ratio = float64(c.hitCount) / float64(total)
	}
	return c.lru.Len(), c.hitCount, c.missCount, ratio
}

// SetExprCacheSize resizes the package-level expression cache used by
// every ExprCondition.
func SetExprCacheSize(size int) { exprCache.Resize(size) }

// exprEnv is the evaluation environment exposed to every condition
// expression: the current Context's world state, addressed by property
// id via the get(id) builtin-like function below.
type exprEnv struct {
	Get func(id int) any `expr:"get"`
}

// ExprCondition evaluates a boolean expr-lang expression against the
// Context's world state. Expressions call get(id) to read a property,
// e.g. "get(3) == true && get(7) > 2". Compiled programs are cached
// globally by source text.
type ExprCondition struct {
	name       string
	expression string
	program    *vm.Program
	lastErr    error
}

// NewExprCondition compiles expression lazily on first IsValid call.
// Fatal if expression is empty.
func NewExprCondition(name, expression string) *ExprCondition {
	if expression == "" {
		fatalf("htn: NewExprCondition %q: expression must not be empty", name)
	}
	return &ExprCondition{name: name, expression: expression}
}

func (c *ExprCondition) Name() string { return c.name }

// LastError reports the most recent compilation or evaluation error, if
// IsValid's most recent call returned false because of one rather than
// a legitimate unmet condition.
func (c *ExprCondition) LastError() error { return c.lastErr }

func (c *ExprCondition) IsValid(ctx *Context) bool {
	c.lastErr = nil

	program, err := c.getOrCompileProgram()
	if err != nil {
		c.lastErr = fmt.Errorf("htn: ExprCondition %q: compile: %w", c.name, err)
		return false
	}

	env := exprEnv{Get: func(id int) any { return ctx.GetState(id) }}
	result, err := expr.Run(program, env)
	if err != nil {
		c.lastErr = fmt.Errorf("htn: ExprCondition %q: evaluate: %w", c.name, err)
		return false
	}

	b, ok := result.(bool)
	if !ok {
		c.lastErr = fmt.Errorf("htn: ExprCondition %q: expression returned non-boolean %T", c.name, result)
		return false
	}

	ctx.log(c.name, fmt.Sprintf("ExprCondition.IsValid:%v", b))
	return b
}

func (c *ExprCondition) getOrCompileProgram() (*vm.Program, error) {
	if c.program != nil {
		return c.program, nil
	}
	if cached, ok := exprCache.Get(c.expression); ok {
		c.program = cached
		return cached, nil
	}

	program, err := expr.Compile(c.expression, expr.Env(exprEnv{}), expr.AsBool())
	if err != nil {
		return nil, err
	}

	exprCache.Put(c.expression, program)
	c.program = program
	return program, nil
}

var _ Condition = (*ExprCondition)(nil)
