package queryparams

// Value is a single query parameter value: a string or a boolean flag.
// The zero Value is falsy and never stored in a Params map.
type Value struct {
	str  string
	flag bool
}

// String returns a string-valued Value.
func String(s string) Value {
	return Value{str: s}
}

// Flag returns a boolean-flag Value (serialized as the bare key).
func Flag() Value {
	return Value{flag: true}
}

// IsFlag reports whether the value is a boolean flag.
func (v Value) IsFlag() bool {
	return v.flag
}

// Str returns the string form of the value. Flags return "".
func (v Value) Str() string {
	return v.str
}

// Truthy reports whether the value is a non-empty string or a set flag.
// Falsy values are dropped from Params rather than stored.
func (v Value) Truthy() bool {
	return v.flag || v.str != ""
}

// Params is a flat, unordered mapping of parameter names to values.
// Invariant: every stored value is truthy.
type Params map[string]Value

// Set stores a value under key, or deletes the key if the value is
// falsy.
func (p Params) Set(key string, v Value) {
	if !v.Truthy() {
		delete(p, key)
		return
	}
	p[key] = v
}

// Merge copies every entry of other into p. Falsy entries in other
// (which should not exist) are dropped rather than copied.
func (p Params) Merge(other Params) {
	for k, v := range other {
		p.Set(k, v)
	}
}

// Clone returns a shallow copy of p. A nil receiver clones to an empty
// non-nil map so callers can Set on the result.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Differs reports whether a and b disagree: different key counts, or
// any shared key bound to a strictly unequal value. Value is
// comparable, so this is primitive equality, not deep equality.
func Differs(a, b Params) bool {
	if len(a) != len(b) {
		return true
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || av != bv {
			return true
		}
	}
	return false
}
