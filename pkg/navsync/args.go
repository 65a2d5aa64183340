package navsync

import "github.com/wayfind-dev/wayfind/pkg/queryparams"

// Arg is one argument of a navigation call: either a positional model
// context or an out-of-band query parameter override.
type Arg interface {
	isArg()
}

type modelArg struct {
	value any
}

func (modelArg) isArg() {}

// Model wraps a positional context argument for a dynamic handler.
func Model(v any) Arg {
	return modelArg{value: v}
}

type overrideArg struct {
	params queryparams.Params
}

func (overrideArg) isArg() {}

// Override wraps an explicit query parameter map. It is consumed by
// the Synchronizer before the navigation engine sees the remaining
// arguments, and always wins over preserved ancestor parameters.
func Override(params queryparams.Params) Arg {
	return overrideArg{params: params}
}

// splitArgs separates contexts (in order) from override maps. Multiple
// overrides merge in argument order.
func splitArgs(args []Arg) (contexts []any, override queryparams.Params) {
	for _, arg := range args {
		switch a := arg.(type) {
		case modelArg:
			contexts = append(contexts, a.value)
		case overrideArg:
			if override == nil {
				override = make(queryparams.Params, len(a.params))
			}
			override.Merge(a.params)
		}
	}
	return contexts, override
}
