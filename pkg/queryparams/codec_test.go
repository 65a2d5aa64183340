package queryparams

import "testing"

func TestSerializeStringValues(t *testing.T) {
	qs := Serialize(Params{"sort": String("date:asc")})
	if qs != "sort=date%3Aasc" {
		t.Errorf("Serialize = %q, want %q", qs, "sort=date%3Aasc")
	}
}

func TestSerializeFlag(t *testing.T) {
	qs := Serialize(Params{"archived": Flag()})
	if qs != "archived" {
		t.Errorf("Serialize = %q, want %q", qs, "archived")
	}
}

func TestSerializeSkipsFalsy(t *testing.T) {
	// Built without Set so falsy values actually reach the codec.
	params := Params{"a": {}, "b": String("")}
	if qs := Serialize(params); qs != "" {
		t.Errorf("Serialize = %q, want empty", qs)
	}
}

func TestSerializeEscapesKeys(t *testing.T) {
	qs := Serialize(Params{"a b": String("c&d")})
	if qs != "a%20b=c%26d" {
		t.Errorf("Serialize = %q, want %q", qs, "a%20b=c%26d")
	}
}

func TestSerializeSpacePercentEncoded(t *testing.T) {
	// Strict percent-encoding: a space is %20, never the form '+'.
	qs := Serialize(Params{"q": String("a b")})
	if qs != "q=a%20b" {
		t.Errorf("Serialize = %q, want %q", qs, "q=a%20b")
	}
}

func TestDeserializeBasic(t *testing.T) {
	params := Deserialize("sort=date%3Aasc&archived")
	if got := params["sort"]; got != String("date:asc") {
		t.Errorf("params[sort] = %v, want date:asc", got)
	}
	if got := params["archived"]; got != Flag() {
		t.Errorf("params[archived] = %v, want flag", got)
	}
}

func TestDeserializeEmptySegments(t *testing.T) {
	params := Deserialize("&&a=1&&")
	if len(params) != 1 {
		t.Fatalf("len(params) = %d, want 1", len(params))
	}
	if got := params["a"]; got != String("1") {
		t.Errorf("params[a] = %v, want 1", got)
	}
}

func TestDeserializeSplitsOnFirstEquals(t *testing.T) {
	params := Deserialize("filter=a=b")
	if got := params["filter"]; got != String("a=b") {
		t.Errorf("params[filter] = %v, want a=b", got)
	}
}

func TestDeserializeNoCoercion(t *testing.T) {
	params := Deserialize("page=2")
	if got := params["page"]; got != String("2") {
		t.Errorf("params[page] = %v, want string \"2\"", got)
	}
}

func TestDeserializeEmptyValueDropped(t *testing.T) {
	// "key=" is a falsy string value and must not be stored.
	params := Deserialize("a=&b=1")
	if _, ok := params["a"]; ok {
		t.Error("params[a] should be absent")
	}
	if len(params) != 1 {
		t.Errorf("len(params) = %d, want 1", len(params))
	}
}

func TestRoundTrip(t *testing.T) {
	cases := []Params{
		{"sort": String("date:asc")},
		{"archived": Flag()},
		{"q": String("a b&c"), "page": String("2"), "exact": Flag()},
		{},
	}
	for _, m := range cases {
		got := Deserialize(Serialize(m))
		if Differs(got, m) {
			t.Errorf("round trip of %v = %v", m, got)
		}
	}
}
