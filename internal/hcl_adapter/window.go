package hcl_adapter

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/remapc/internal/keymap"
)

// parseClassOnly evaluates the class_only attribute of a window block. It
// goes through the same scalar-or-list coercion as with_modifier, so null
// yields no classes and a string yields one.
func parseClassOnly(attr *hcl.Attribute, evalCtx *hcl.EvalContext) ([]string, hcl.Diagnostics) {
	val, diags := attr.Expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}
	if !val.IsWhollyKnown() {
		return nil, append(diags, invalidClassOnly(attr, "The class_only value must be known when the script is compiled."))
	}

	native, err := ctyToNative(val)
	if err != nil {
		return nil, append(diags, invalidClassOnly(attr, fmt.Sprintf("The class_only attribute must be a string or a list of strings: %s.", err)))
	}
	classes, err := keymap.StringOrSlice(native)
	if err != nil {
		return nil, append(diags, invalidClassOnly(attr, fmt.Sprintf("The class_only attribute must be a string or a list of strings: %s.", err)))
	}
	return classes, diags
}

func invalidClassOnly(attr *hcl.Attribute, detail string) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Invalid class_only value",
		Detail:   detail,
		Subject:  attr.Expr.Range().Ptr(),
	}
}
