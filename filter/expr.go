package filter

import (
	"maps"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache(size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{
		helperFuncs: createHelperFunctions(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
	cache       *lruCache
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
			Position:   -1,
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	// Record fields are only known at run time
	program, err := expr.Compile(expression,
		expr.Env(c.helperFuncs),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Position:   -1,
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
		helpers:    c.helperFuncs,
	}

	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Evaluate evaluates the filter against a record.
// Records that make the program fail at run time do not match.
func (f *exprFilter) Evaluate(record Record) bool {
	result, err := expr.Run(f.program, f.environment(record))
	if err != nil {
		return false
	}
	return result.(bool)
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// environment exposes the record fields at top level, then the helpers
func (f *exprFilter) environment(record Record) map[string]any {
	env := make(map[string]any, len(record)+len(f.helpers)+3)
	maps.Copy(env, record)
	maps.Copy(env, f.helpers)

	env["Record"] = record
	env["hasField"] = func(path string) bool {
		_, ok := lookup(record, path)
		return ok
	}
	env["field"] = func(path string) any {
		v, _ := lookup(record, path)
		return v
	}
	return env
}

// createHelperFunctions creates the helper functions available to every expression.
// hasField and field are bound to the record at evaluation time; the entries here give
// the compiler their signatures.
func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 16)

	// Case-insensitive string helpers; expr's own contains/startsWith/endsWith
	// operators are case sensitive
	funcs["icontains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	funcs["istartsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	funcs["iendsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}

	// Battle.net timestamps are milliseconds since the epoch
	funcs["fromMillis"] = func(ms float64) time.Time {
		return time.UnixMilli(int64(ms))
	}
	funcs["daysSince"] = func(ms float64) int {
		return int(time.Since(time.UnixMilli(int64(ms))).Hours() / 24)
	}

	funcs["hasField"] = func(path string) bool { return false }
	funcs["field"] = func(path string) any { return nil }

	return funcs
}
