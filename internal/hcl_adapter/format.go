package hcl_adapter

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
)

// Format returns src, a native-syntax script, in canonical layout. Scripts
// with syntax errors are returned unchanged along with the error.
func Format(filename string, src []byte) ([]byte, error) {
	if _, diags := hclsyntax.ParseConfig(src, filename, hcl.InitialPos); diags.HasErrors() {
		return src, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return hclwrite.Format(src), nil
}
