package hclutil

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// TraversalKey returns a canonical string for t, e.g. local.keys[0].
func TraversalKey(t hcl.Traversal) string {
	return string(hclwrite.TokensForTraversal(t).Bytes())
}

// Analysis collects the variables and function calls of a set of expressions.
// Results are unique and sorted.
type Analysis struct {
	references []hcl.Traversal
	functions  []string
}

// Analyze walks exprs once. Nil expressions are skipped.
func Analyze(exprs ...hcl.Expression) *Analysis {
	traversals := make(map[string]hcl.Traversal)
	functions := make(map[string]struct{})

	for _, expr := range exprs {
		if expr == nil {
			continue
		}
		for _, traversal := range expr.Variables() {
			traversals[TraversalKey(traversal)] = traversal
		}
		// Function calls are only visible in native syntax trees.
		if syntaxExpr, ok := expr.(hclsyntax.Expression); ok {
			walkForFunctions(syntaxExpr, functions)
		}
	}

	keys := make([]string, 0, len(traversals))
	for k := range traversals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	a := &Analysis{
		references: make([]hcl.Traversal, 0, len(keys)),
		functions:  make([]string, 0, len(functions)),
	}
	for _, k := range keys {
		a.references = append(a.references, traversals[k])
	}
	for f := range functions {
		a.functions = append(a.functions, f)
	}
	sort.Strings(a.functions)
	return a
}

// CalledFunctions returns the names of every function called.
func (a *Analysis) CalledFunctions() []string {
	return a.functions
}

// AttributesOf returns the sorted, unique attribute names referenced under the
// given root variable. For root "local", local.keys[0] and local["line"]
// yield "keys" and "line".
func (a *Analysis) AttributesOf(root string) []string {
	seen := make(map[string]struct{})
	for _, t := range a.references {
		if t.RootName() != root || len(t) < 2 {
			continue
		}
		if name, ok := stepName(t[1]); ok {
			seen[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func stepName(step hcl.Traverser) (string, bool) {
	switch s := step.(type) {
	case hcl.TraverseAttr:
		return s.Name, true
	case hcl.TraverseIndex:
		if s.Key.Type() == cty.String && s.Key.IsKnown() && !s.Key.IsNull() {
			return s.Key.AsString(), true
		}
	}
	return "", false
}

func walkForFunctions(expr hclsyntax.Expression, functions map[string]struct{}) {
	if expr == nil {
		return
	}
	switch e := expr.(type) {
	case *hclsyntax.FunctionCallExpr:
		functions[e.Name] = struct{}{}
		for _, arg := range e.Args {
			walkForFunctions(arg, functions)
		}
	case *hclsyntax.BinaryOpExpr:
		walkForFunctions(e.LHS, functions)
		walkForFunctions(e.RHS, functions)
	case *hclsyntax.ConditionalExpr:
		walkForFunctions(e.Condition, functions)
		walkForFunctions(e.TrueResult, functions)
		walkForFunctions(e.FalseResult, functions)
	case *hclsyntax.UnaryOpExpr:
		walkForFunctions(e.Val, functions)
	case *hclsyntax.TemplateExpr:
		for _, part := range e.Parts {
			walkForFunctions(part, functions)
		}
	case *hclsyntax.TemplateWrapExpr:
		walkForFunctions(e.Wrapped, functions)
	case *hclsyntax.TupleConsExpr:
		for _, item := range e.Exprs {
			walkForFunctions(item, functions)
		}
	case *hclsyntax.ObjectConsExpr:
		for _, item := range e.Items {
			walkForFunctions(item.KeyExpr, functions)
			walkForFunctions(item.ValueExpr, functions)
		}
	case *hclsyntax.ObjectConsKeyExpr:
		walkForFunctions(e.Wrapped, functions)
	case *hclsyntax.ForExpr:
		walkForFunctions(e.CollExpr, functions)
		walkForFunctions(e.KeyExpr, functions)
		walkForFunctions(e.ValExpr, functions)
		walkForFunctions(e.CondExpr, functions)
	case *hclsyntax.IndexExpr:
		walkForFunctions(e.Collection, functions)
		walkForFunctions(e.Key, functions)
	case *hclsyntax.SplatExpr:
		walkForFunctions(e.Source, functions)
		walkForFunctions(e.Each, functions)
	case *hclsyntax.ParenthesesExpr:
		walkForFunctions(e.Expression, functions)
	case *hclsyntax.RelativeTraversalExpr:
		walkForFunctions(e.Source, functions)
	case *hclsyntax.TemplateJoinExpr:
		walkForFunctions(e.Tuple, functions)
	}
}
