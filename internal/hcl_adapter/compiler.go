package hcl_adapter

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/remapc/internal/version"
	"github.com/zclconf/go-cty/cty"
)

// checkCompilerBlock validates the compiler block of a file against the
// running build.
func checkCompilerBlock(block *hcl.Block) hcl.Diagnostics {
	content, diags := block.Body.Content(compilerSchema)
	if diags.HasErrors() {
		return diags
	}

	attr, ok := content.Attributes[attrRequiredVersion]
	if !ok {
		return diags
	}

	// Only literals are allowed: the check runs before anything else.
	val, valDiags := attr.Expr.Value(nil)
	diags = append(diags, valDiags...)
	if valDiags.HasErrors() {
		return diags
	}
	if val.IsNull() || val.Type() != cty.String {
		return append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid required_version value",
			Detail:   "The required_version attribute must be a version constraint string, such as \">= 0.3.0\".",
			Subject:  attr.Expr.Range().Ptr(),
		})
	}

	constraint := val.AsString()
	ok, err := version.Satisfies(constraint)
	if err != nil {
		return append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid required_version value",
			Detail:   err.Error(),
			Subject:  attr.Expr.Range().Ptr(),
		})
	}
	if !ok {
		return append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unsupported remapc version",
			Detail:   fmt.Sprintf("This script requires remapc %s, but this is remapc %s.", constraint, version.Version),
			Subject:  attr.Expr.Range().Ptr(),
		})
	}
	return diags
}
