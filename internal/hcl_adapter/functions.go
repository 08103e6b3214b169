package hcl_adapter

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/remapc/internal/hclutil"
	"github.com/zclconf/go-cty/cty/function"
)

// checkFunctions reports every call to a function that funcs does not
// provide, including calls in branches evaluation never takes and in windows
// with no classes. JSON-syntax files are left to evaluation.
func checkFunctions(scripts []scriptFile, funcs map[string]function.Function) hcl.Diagnostics {
	var diags hcl.Diagnostics
	for _, script := range scripts {
		body, ok := script.file.Body.(*hclsyntax.Body)
		if !ok {
			continue
		}
		diags = append(diags, checkBodyFunctions(body, funcs)...)
	}
	return diags
}

func checkBodyFunctions(body *hclsyntax.Body, funcs map[string]function.Function) hcl.Diagnostics {
	var diags hcl.Diagnostics

	names := make([]string, 0, len(body.Attributes))
	for name := range body.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		attr := body.Attributes[name]
		for _, fn := range hclutil.Analyze(attr.Expr).CalledFunctions() {
			if _, ok := funcs[fn]; ok {
				continue
			}
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Call to unknown function",
				Detail:   fmt.Sprintf("There is no function named %q.", fn),
				Subject:  attr.Expr.Range().Ptr(),
			})
		}
	}

	for _, block := range body.Blocks {
		diags = append(diags, checkBodyFunctions(block.Body, funcs)...)
	}
	return diags
}
