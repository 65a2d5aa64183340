// Package queryparams models the flat query parameters carried in the
// address outside the path.
//
// A parameter value is either a string or a boolean flag. Falsy values
// (the empty string, a false flag) are never stored: setting one
// removes the key instead. That invariant keeps the shallow diff in
// Differs honest - two Params never disagree only through explicitly
// absent entries.
//
// The codec follows the wire format: pairs separated by '&', key and
// value separated by the first '=', both percent-encoded; a pair with
// no '=' is a boolean flag.
//
//	qs := queryparams.Serialize(queryparams.Params{
//	    "sort":     queryparams.String("date:asc"),
//	    "archived": queryparams.Flag(),
//	})
//	// "sort=date%3Aasc&archived"
package queryparams
