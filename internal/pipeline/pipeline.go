// Package pipeline strings the lexer, parser, semantic checker, and
// optimizer together into a single entry point, grounded on
// cmd/dwscript/cmd/compile.go's stage-by-stage control flow: each stage
// only runs once the previous stage produced no fatal diagnostics (spec
// §2, §4.8).
package pipeline

import (
	"github.com/google/uuid"

	"github.com/mharuska/ocompiler/internal/ast"
	"github.com/mharuska/ocompiler/internal/diag"
	"github.com/mharuska/ocompiler/internal/hierarchy"
	"github.com/mharuska/ocompiler/internal/lexer"
	"github.com/mharuska/ocompiler/internal/optimizer"
	"github.com/mharuska/ocompiler/internal/parser"
	"github.com/mharuska/ocompiler/internal/semantic"
)

// Options controls which optional stage(s) Compile runs beyond lexing,
// parsing, and semantic analysis, all of which are mandatory.
type Options struct {
	// Optimize runs the optimizer on the checked program when true.
	Optimize bool
	// OptimizePasses, when non-nil, overrides the optimizer's default
	// enabled-pass set. Ignored when Optimize is false.
	OptimizePasses []optimizer.OptimizeOption
	// RunID tags the returned diagnostics bag, e.g. for a driver invocation
	// that aggregates several files under one identifier.
	RunID string
}

// Result bundles everything a caller downstream of Compile might need: the
// checked (and annotated) program, the resolved class hierarchy, and the
// optimized program when Options.Optimize was set.
type Result struct {
	Program   *ast.Program
	Hierarchy *hierarchy.Hierarchy
	Optimized *ast.Program // nil unless Options.Optimize was requested
}

// Compile runs src (named file, for diagnostic positions) through every
// stage up to and including semantic analysis, then optionally the
// optimizer. A stage only runs if the previous one produced no error-level
// diagnostic (spec §2: "downstream stages refuse to run if fatal
// diagnostics are present upstream"); on an early stop, Result is nil and
// the bag explains why.
func Compile(src, file string, opts Options) (*Result, *diag.Bag) {
	bag := diag.NewBag()
	bag.RunID = opts.RunID
	if bag.RunID == "" {
		bag.RunID = uuid.NewString()
	}

	tokens, lexBag := lexer.Lex(src, file)
	mergeInto(bag, lexBag)
	if bag.HasErrors() {
		return nil, bag
	}

	prog, syntaxErr := parser.Parse(tokens, file)
	if syntaxErr != nil {
		bag.Add(syntaxErr.ToDiagnostic())
		return nil, bag
	}

	h, semBag := semantic.Analyze(prog)
	mergeInto(bag, semBag)
	if bag.HasErrors() {
		return nil, bag
	}

	result := &Result{Program: prog, Hierarchy: h}
	if opts.Optimize {
		optimized, _ := optimizer.Optimize(prog, h, opts.OptimizePasses...)
		result.Optimized = optimized
	}
	return result, bag
}

// mergeInto appends src's diagnostics into dst, preserving insertion order
// and dst's dedup/RunID state. A nil src is a no-op.
func mergeInto(dst, src *diag.Bag) {
	if src == nil {
		return
	}
	for _, d := range src.All() {
		dst.Add(d)
	}
}
