package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// Block and attribute names of the script language.
const (
	blockCompiler = "compiler"
	blockLocals   = "locals"
	blockRemap    = "remap"
	blockWindow   = "window"
	blockDynamic  = "dynamic"

	attrRequiredVersion = "required_version"
	attrClassOnly       = "class_only"
	attrIterator        = "iterator"

	varLocal  = "local"
	varWindow = "window"
	varClass  = "class"
)

// rootSchema describes the top level of a script file after dynamic blocks
// have been expanded.
var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: blockCompiler},
		{Type: blockLocals},
		{Type: blockRemap, LabelNames: []string{"key"}},
		{Type: blockWindow},
	},
}

// localsSchema picks the locals blocks out of a raw file body.
var localsSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: blockLocals},
	},
}

// compilerSchema describes the compiler block.
var compilerSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: attrRequiredVersion},
	},
}

// windowSchema describes the body of a window block. Nested window blocks are
// accepted by the schema so they can be rejected with a clearer message.
var windowSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: attrClassOnly, Required: true},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: blockRemap, LabelNames: []string{"key"}},
		{Type: blockWindow},
	},
}

// dynamicSchema picks the dynamic blocks out of a raw file body, before
// expansion.
var dynamicSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: blockDynamic, LabelNames: []string{"type"}},
	},
}

// dynamicIteratorSchema reads the iterator setting of a dynamic block.
var dynamicIteratorSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: attrIterator},
	},
}
