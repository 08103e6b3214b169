package hcl_adapter

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/ext/dynblock"
	"github.com/vk/remapc/internal/ctxlog"
	"github.com/vk/remapc/internal/hclutil"
	"github.com/vk/remapc/internal/keymap"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// session replays the directive blocks of one or more files on a single
// evaluator.
type session struct {
	logger    *slog.Logger
	evaluator *keymap.Evaluator
	rootCtx   *hcl.EvalContext
}

func newSession(ctx context.Context, locals cty.Value, funcs map[string]function.Function) *session {
	logger := ctxlog.FromContext(ctx)
	return &session{
		logger:    logger,
		evaluator: keymap.NewEvaluator(logger),
		rootCtx: &hcl.EvalContext{
			Variables: map[string]cty.Value{varLocal: locals},
			Functions: funcs,
		},
	}
}

// evalFile expands the dynamic blocks of a file and evaluates its directives
// in source order.
func (s *session) evalFile(script scriptFile) error {
	if diags := checkDynamicWindows(script.file.Body); diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", script.path, diags)
	}

	body := dynblock.Expand(script.file.Body, s.rootCtx)
	content, diags := body.Content(rootSchema)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", script.path, diags)
	}

	compiler, diags := hclutil.FindUniqueBlock(content.Blocks, blockCompiler)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", script.path, diags)
	}
	if compiler != nil {
		if diags := checkCompilerBlock(compiler); diags.HasErrors() {
			return fmt.Errorf("unsupported script %s: %w", script.path, diags)
		}
	}

	for _, block := range content.Blocks {
		var err error
		switch block.Type {
		case blockRemap:
			err = s.evalRemap(block, s.rootCtx)
		case blockWindow:
			err = s.evalWindow(block)
		}
		if err != nil {
			return fmt.Errorf("failed to evaluate HCL file %s: %w", script.path, err)
		}
	}
	return nil
}

// evalRemap evaluates every attribute of a remap block and hands them to the
// evaluator as the target spec.
func (s *session) evalRemap(block *hcl.Block, evalCtx *hcl.EvalContext) error {
	key := block.Labels[0]

	attrs, diags := remapAttributes(block.Body)
	if diags.HasErrors() {
		return diags
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	values := make(map[string]cty.Value, len(attrs))
	for _, name := range names {
		val, valDiags := attrs[name].Expr.Value(evalCtx)
		diags = append(diags, valDiags...)
		values[name] = val
	}
	if diags.HasErrors() {
		return diags
	}

	spec, err := targetSpec(values)
	if err != nil {
		return fmt.Errorf("%s: remap %q: %w", block.DefRange, key, err)
	}
	if err := s.evaluator.Remap(key, spec); err != nil {
		return fmt.Errorf("%s: %w", block.DefRange, err)
	}
	return nil
}

// remapAttributes returns every attribute of a remap body. The names come
// from JustAttributes; the attributes themselves come from Content so that
// expressions generated by a dynamic block see its iterator.
func remapAttributes(body hcl.Body) (hcl.Attributes, hcl.Diagnostics) {
	raw, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	schema := &hcl.BodySchema{}
	for name := range raw {
		schema.Attributes = append(schema.Attributes, hcl.AttributeSchema{Name: name})
	}
	content, contentDiags := body.Content(schema)
	diags = append(diags, contentDiags...)
	if contentDiags.HasErrors() {
		return nil, diags
	}
	return content.Attributes, diags
}

// evalWindow evaluates the remap blocks of a window once per class, with
// window.class bound to the class being evaluated.
func (s *session) evalWindow(block *hcl.Block) error {
	content, diags := block.Body.Content(windowSchema)
	if diags.HasErrors() {
		return diags
	}

	if nested := hclutil.BlocksOfType(content.Blocks, blockWindow); len(nested) > 0 {
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Nested window block",
			Detail:   fmt.Sprintf("A window block cannot contain another window block: %s.", keymap.ErrNestedWindow),
			Subject:  nested[0].DefRange.Ptr(),
		}}
	}

	classes, diags := parseClassOnly(content.Attributes[attrClassOnly], s.rootCtx)
	if diags.HasErrors() {
		return diags
	}
	if len(classes) == 0 {
		s.logger.Debug("Window without classes skipped.", "range", block.DefRange.String())
	}

	return s.evaluator.Window(classes, func() error {
		class := s.evaluator.Active().Application
		windowCtx := s.rootCtx.NewChild()
		windowCtx.Variables = map[string]cty.Value{
			varWindow: cty.ObjectVal(map[string]cty.Value{
				varClass: cty.StringVal(class),
			}),
		}

		for _, remap := range content.Blocks {
			if err := s.evalRemap(remap, windowCtx); err != nil {
				return err
			}
		}
		return nil
	})
}

// checkDynamicWindows rejects a dynamic "window" block whose iterator is
// named window, since that iterator would hide window.class in its content.
func checkDynamicWindows(body hcl.Body) hcl.Diagnostics {
	content, _, diags := body.PartialContent(dynamicSchema)
	if diags.HasErrors() {
		return diags
	}

	for _, block := range content.Blocks {
		if block.Labels[0] != blockWindow {
			continue
		}
		inner, _, innerDiags := block.Body.PartialContent(dynamicIteratorSchema)
		diags = append(diags, innerDiags...)
		if innerDiags.HasErrors() {
			continue
		}

		subject := block.DefRange
		if attr, ok := inner.Attributes[attrIterator]; ok {
			subject = attr.Expr.Range()
			if hcl.ExprAsKeyword(attr.Expr) != varWindow {
				continue
			}
		}
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Ambiguous dynamic window iterator",
			Detail: `The iterator of a dynamic "window" block is named "window" unless set otherwise, ` +
				`which hides window.class inside the generated windows. Set iterator to another name, such as iterator = app.`,
			Subject: subject.Ptr(),
		})
	}
	return diags
}
