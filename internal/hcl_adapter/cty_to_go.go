package hcl_adapter

import (
	"fmt"

	"github.com/vk/remapc/internal/keymap"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ctyToNative converts a cty.Value into plain Go values: string, float64,
// bool, []any and map[string]any. Null and unknown values become nil.
func ctyToNative(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()

	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("could not convert number to float64: %w", err)
		}
		return f, nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		slice := make([]any, 0, v.LengthInt())
		it := v.ElementIterator()
		for i := 0; it.Next(); i++ {
			_, elem := it.Element()
			native, err := ctyToNative(elem)
			if err != nil {
				return nil, fmt.Errorf("in element %d: %w", i, err)
			}
			slice = append(slice, native)
		}
		return slice, nil

	case ty.IsObjectType() || ty.IsMapType():
		goMap := make(map[string]any, v.LengthInt())
		it := v.ElementIterator()
		for it.Next() {
			key, elem := it.Element()
			keyStr := key.AsString()
			native, err := ctyToNative(elem)
			if err != nil {
				return nil, fmt.Errorf("in attribute '%s': %w", keyStr, err)
			}
			goMap[keyStr] = native
		}
		return goMap, nil

	default:
		return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
	}
}

// targetSpec turns the evaluated attributes of a remap block into the options
// the keymap resolver understands.
func targetSpec(values map[string]cty.Value) (keymap.TargetSpec, error) {
	spec := make(keymap.TargetSpec, len(values))
	for name, val := range values {
		native, err := ctyToNative(val)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		spec[name] = native
	}
	return spec, nil
}
