// Package hclutil holds small helpers shared by the script loader: block
// lookup, traversal keys and reference analysis of expressions.
package hclutil

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// FindUniqueBlock returns the single block of the given type, or nil if there
// is none. Every extra block produces an error diagnostic.
func FindUniqueBlock(blocks hcl.Blocks, name string) (*hcl.Block, hcl.Diagnostics) {
	var found *hcl.Block
	var diags hcl.Diagnostics

	for _, block := range blocks {
		if block.Type != name {
			continue
		}
		if found != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  fmt.Sprintf("Duplicate %q block", name),
				Detail: fmt.Sprintf("Only one %q block is allowed per file; another was defined at %s.",
					name, found.DefRange),
				Subject: block.DefRange.Ptr(),
			})
			continue
		}
		found = block
	}

	return found, diags
}

// BlocksOfType returns the blocks of the given type, keeping source order.
func BlocksOfType(blocks hcl.Blocks, name string) hcl.Blocks {
	var out hcl.Blocks
	for _, block := range blocks {
		if block.Type == name {
			out = append(out, block)
		}
	}
	return out
}
