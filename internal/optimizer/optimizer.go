// Package optimizer rewrites an already-checked AST into an equivalent but
// smaller one (spec §4.7): constant folding, dead-code elimination, and the
// same call-normalization pass the checker runs, re-exposed here so a
// standalone "optimize" pipeline stage produces the same normal form
// whether or not semantic analysis already ran one.
//
// Each pass is independently toggleable, mirroring the teacher's bytecode
// optimizer (internal/bytecode.OptimizationPass / OptimizeOption), re-
// targeted from bytecode instructions to AST nodes.
package optimizer

import (
	"github.com/mharuska/ocompiler/internal/ast"
	"github.com/mharuska/ocompiler/internal/hierarchy"
	"github.com/mharuska/ocompiler/internal/normalize"
)

// OptimizationPass names one independently toggleable rewrite.
type OptimizationPass string

const (
	FoldConstructorLiteralsPass OptimizationPass = "FoldConstructorLiterals"
	FoldArithmeticCallsPass     OptimizationPass = "FoldArithmeticCalls"
	FoldBooleanConditionsPass   OptimizationPass = "FoldBooleanConditions"
	EliminateDeadCodePass       OptimizationPass = "EliminateDeadCode"
	NormalizeCallsPass          OptimizationPass = "NormalizeCalls"
)

// defaultOrder is the sequence passes run in within a single fixpoint
// iteration. Normalization runs first so a bare-identifier constructor call
// introduced or left over from parsing is in its final shape before the
// folding passes look at it; dead-code elimination runs last so that, in
// the same round, it also sees the returns a condition fold has just
// spliced in from a collapsed branch.
var defaultOrder = []OptimizationPass{
	NormalizeCallsPass,
	FoldConstructorLiteralsPass,
	FoldArithmeticCallsPass,
	FoldBooleanConditionsPass,
	EliminateDeadCodePass,
}

type config struct {
	enabled map[OptimizationPass]bool
}

func newConfig() *config {
	c := &config{enabled: make(map[OptimizationPass]bool, len(defaultOrder))}
	for _, p := range defaultOrder {
		c.enabled[p] = true
	}
	return c
}

func (c *config) isEnabled(p OptimizationPass) bool { return c.enabled[p] }

// OptimizeOption customizes which passes Optimize runs.
type OptimizeOption func(*config)

// WithOptimizationPass enables or disables a single named pass, leaving the
// rest at their default (all enabled).
func WithOptimizationPass(pass OptimizationPass, enabled bool) OptimizeOption {
	return func(c *config) { c.enabled[pass] = enabled }
}

// maxFixpointIterations bounds the fold/eliminate loop. Each iteration
// strictly shrinks or simplifies the AST, so this is generous headroom
// rather than a load-bearing limit.
const maxFixpointIterations = 64

// Optimize rewrites prog in place, running every enabled pass to a
// fixpoint: passes repeat until a full round makes no further change, so
// cascading folds (e.g. `1.Plus(2).Plus(3)`) resolve completely in one
// call. Optimize is idempotent (spec property P6): calling it again on its
// own output is a no-op, reported via the second return value being false.
func Optimize(prog *ast.Program, h *hierarchy.Hierarchy, opts ...OptimizeOption) (*ast.Program, bool) {
	c := newConfig()
	for _, opt := range opts {
		opt(c)
	}

	anyChanged := false
	for i := 0; i < maxFixpointIterations; i++ {
		roundChanged := false
		for _, pass := range defaultOrder {
			if !c.isEnabled(pass) {
				continue
			}
			if runPass(pass, prog, h) {
				roundChanged = true
			}
		}
		if !roundChanged {
			break
		}
		anyChanged = true
	}
	return prog, anyChanged
}

func runPass(pass OptimizationPass, prog *ast.Program, h *hierarchy.Hierarchy) bool {
	switch pass {
	case NormalizeCallsPass:
		return normalize.Calls(prog, h)
	case FoldConstructorLiteralsPass:
		return FoldConstructorLiterals(prog)
	case FoldArithmeticCallsPass:
		return FoldArithmeticCalls(prog)
	case FoldBooleanConditionsPass:
		return FoldBooleanConditions(prog)
	case EliminateDeadCodePass:
		return EliminateDeadCode(prog)
	default:
		return false
	}
}
