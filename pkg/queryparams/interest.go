package queryparams

// interestMode discriminates the three interest declarations a handler
// can make at registration time.
type interestMode int

const (
	interestNone interestMode = iota
	interestAll
	interestKeys
)

// Interest is a handler's declared query parameter interest: all
// parameters, none, or an explicit key set. The zero Interest observes
// nothing.
type Interest struct {
	mode interestMode
	keys []string
}

// ObserveNone declares no interest in query parameters.
func ObserveNone() Interest {
	return Interest{mode: interestNone}
}

// ObserveAll declares interest in every query parameter.
func ObserveAll() Interest {
	return Interest{mode: interestAll}
}

// Observe declares interest in the named parameters only.
func Observe(keys ...string) Interest {
	return Interest{mode: interestKeys, keys: keys}
}

// None reports whether the interest observes nothing.
func (in Interest) None() bool {
	return in.mode == interestNone
}

// Extract projects merged onto the interest set. "none" yields an empty
// set, "all" a shallow copy, and an explicit set only the requested
// keys that are present in merged - absent keys are omitted, never
// inserted empty.
func Extract(merged Params, in Interest) Params {
	switch in.mode {
	case interestAll:
		return merged.Clone()
	case interestKeys:
		out := make(Params, len(in.keys))
		for _, k := range in.keys {
			if v, ok := merged[k]; ok {
				out[k] = v
			}
		}
		return out
	default:
		return make(Params)
	}
}
