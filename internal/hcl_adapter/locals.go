package hcl_adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/remapc/internal/ctxlog"
	"github.com/vk/remapc/internal/dag"
	"github.com/vk/remapc/internal/hclutil"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// collectLocals gathers the attributes of every locals block in every file.
// Names must be unique across all of them.
func collectLocals(scripts []scriptFile) (map[string]*hcl.Attribute, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	locals := make(map[string]*hcl.Attribute)

	for _, script := range scripts {
		content, _, contentDiags := script.file.Body.PartialContent(localsSchema)
		diags = append(diags, contentDiags...)
		if contentDiags.HasErrors() {
			continue
		}

		for _, block := range content.Blocks {
			attrs, attrDiags := block.Body.JustAttributes()
			diags = append(diags, attrDiags...)

			for name, attr := range attrs {
				if existing, ok := locals[name]; ok {
					diags = append(diags, &hcl.Diagnostic{
						Severity: hcl.DiagError,
						Summary:  "Duplicate local value definition",
						Detail: fmt.Sprintf("A local value named %q was already defined at %s. Local value names must be unique across all script files.",
							name, existing.NameRange),
						Subject: attr.NameRange.Ptr(),
					})
					continue
				}
				locals[name] = attr
			}
		}
	}
	return locals, diags
}

// localsOrder returns the local names in an order where every local comes
// after the locals it references.
func localsOrder(locals map[string]*hcl.Attribute) ([]string, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	graph := dag.New()
	for name := range locals {
		graph.AddNode(name)
	}

	for name, attr := range locals {
		for _, ref := range hclutil.Analyze(attr.Expr).AttributesOf(varLocal) {
			if ref == name {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Self-referencing local value",
					Detail:   fmt.Sprintf("Local value %q cannot use its own result as part of its expression.", name),
					Subject:  attr.Expr.Range().Ptr(),
				})
				continue
			}
			// Undeclared references are reported when the expression is evaluated.
			if !graph.HasNode(ref) {
				continue
			}
			if err := graph.AddEdge(ref, name); err != nil {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid local value reference",
					Detail:   err.Error(),
					Subject:  attr.Expr.Range().Ptr(),
				})
			}
		}
	}
	if diags.HasErrors() {
		return nil, diags
	}

	order, err := graph.TopologicalSort()
	if err != nil {
		var cycle *dag.CycleError
		if errors.As(err, &cycle) {
			attr := locals[cycle.Node]
			detail := fmt.Sprintf("Local value %q depends on itself through other local values.", cycle.Node)
			if deps, err := graph.Dependencies(cycle.Node); err == nil && len(deps) > 0 {
				detail = fmt.Sprintf("Local value %q depends on itself through %s.", cycle.Node, joinLocalNames(deps))
			}
			return nil, append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Cycle in local values",
				Detail:   detail,
				Subject:  attr.NameRange.Ptr(),
			})
		}
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Cannot order local values",
			Detail:   err.Error(),
		})
	}
	return order, diags
}

// joinLocalNames renders names as "local.a, local.b".
func joinLocalNames(names []string) string {
	refs := make([]string, len(names))
	for i, name := range names {
		refs[i] = varLocal + "." + name
	}
	return strings.Join(refs, ", ")
}

// evaluateLocals evaluates every local in dependency order and returns them
// as the object bound to the "local" variable.
func evaluateLocals(ctx context.Context, scripts []scriptFile, funcs map[string]function.Function) (cty.Value, error) {
	logger := ctxlog.FromContext(ctx)

	locals, diags := collectLocals(scripts)
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("failed to decode locals: %w", diags)
	}
	if len(locals) == 0 {
		return cty.EmptyObjectVal, nil
	}

	order, diags := localsOrder(locals)
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("failed to resolve locals: %w", diags)
	}
	logger.Debug("Evaluating locals.", "order", order)

	values := make(map[string]cty.Value, len(locals))
	for _, name := range order {
		evalCtx := &hcl.EvalContext{
			Variables: map[string]cty.Value{varLocal: cty.ObjectVal(values)},
			Functions: funcs,
		}
		val, valDiags := locals[name].Expr.Value(evalCtx)
		if valDiags.HasErrors() {
			return cty.NilVal, fmt.Errorf("failed to evaluate local %q: %w", name, valDiags)
		}
		values[name] = val
	}
	return cty.ObjectVal(values), nil
}
