package queryparams

import (
	"net/url"
	"strings"
)

// Serialize encodes params as a flat query string. Flags are emitted as
// the bare key, string values as key=value, both strictly
// percent-encoded (a space becomes %20, never the form-encoding '+').
// Falsy values never reach the map (see Params.Set), but any that do
// are skipped rather than emitted as "key=".
//
// Ordering follows map iteration; callers must not depend on it.
func Serialize(params Params) string {
	var b strings.Builder
	for k, v := range params {
		if !v.Truthy() {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(escape(k))
		if !v.IsFlag() {
			b.WriteByte('=')
			b.WriteString(escape(v.Str()))
		}
	}
	return b.String()
}

// escape percent-encodes a key or value.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Deserialize decodes a flat query string. Empty segments are ignored,
// each segment splits on the first '=', and a segment with no '='
// yields a flag. Values stay strings; there is no numeric coercion.
// Segments that fail percent-decoding are skipped.
func Deserialize(qs string) Params {
	params := make(Params)
	for _, seg := range strings.Split(qs, "&") {
		if seg == "" {
			continue
		}
		rawKey, rawVal, hasVal := strings.Cut(seg, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil || key == "" {
			continue
		}
		if !hasVal {
			params.Set(key, Flag())
			continue
		}
		val, err := url.QueryUnescape(rawVal)
		if err != nil {
			continue
		}
		params.Set(key, String(val))
	}
	return params
}
