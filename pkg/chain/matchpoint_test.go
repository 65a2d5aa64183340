package chain

import "testing"

func desc(name string, dynamic bool) Descriptor {
	return Descriptor{Name: name, Dynamic: dynamic}
}

func TestMatchPointIdenticalChainsNoContexts(t *testing.T) {
	prospective := []Descriptor{desc("posts", false), desc("posts.index", false)}
	prior := Snapshot{{Name: "posts"}, {Name: "posts.index"}}

	if got := MatchPoint(prospective, prior, 0); got != 2 {
		t.Errorf("MatchPoint = %d, want 2", got)
	}
}

func TestMatchPointEmptyPrior(t *testing.T) {
	prospective := []Descriptor{desc("posts", false), desc("posts.view", true)}

	if got := MatchPoint(prospective, nil, 1); got != 0 {
		t.Errorf("MatchPoint = %d, want 0", got)
	}
}

func TestMatchPointDynamicLeafDiverges(t *testing.T) {
	// Same chain, one supplied context: only the dynamic leaf diverges,
	// the static ancestor is preserved. A supplied context always marks
	// its consumer divergent, even when it equals the previously bound
	// one.
	prospective := []Descriptor{desc("posts", false), desc("posts.view", true)}
	prior := Snapshot{{Name: "posts"}, {Name: "posts.view", Context: "c1"}}

	if got := MatchPoint(prospective, prior, 1); got != 1 {
		t.Errorf("MatchPoint = %d, want 1", got)
	}
}

func TestMatchPointNameDivergence(t *testing.T) {
	prospective := []Descriptor{desc("posts", false), desc("posts.view", true)}
	prior := Snapshot{{Name: "about"}, {Name: "about.index"}}

	if got := MatchPoint(prospective, prior, 1); got != 0 {
		t.Errorf("MatchPoint = %d, want 0", got)
	}
}

func TestMatchPointShorterPrior(t *testing.T) {
	// Navigating from a parent into a child: the new leaf has no prior
	// position and diverges; the shared ancestor does not.
	prospective := []Descriptor{desc("posts", false), desc("posts.view", true)}
	prior := Snapshot{{Name: "posts"}}

	if got := MatchPoint(prospective, prior, 1); got != 1 {
		t.Errorf("MatchPoint = %d, want 1", got)
	}
}

func TestMatchPointContextsConsumedLeafFirst(t *testing.T) {
	// Two dynamic positions, one context: only the leaf consumes it.
	prospective := []Descriptor{
		desc("users", false),
		desc("users.user", true),
		desc("users.user.post", true),
	}
	prior := Snapshot{
		{Name: "users"},
		{Name: "users.user", Context: "u1"},
		{Name: "users.user.post", Context: "p1"},
	}

	if got := MatchPoint(prospective, prior, 1); got != 2 {
		t.Errorf("MatchPoint(1 ctx) = %d, want 2", got)
	}
	if got := MatchPoint(prospective, prior, 2); got != 1 {
		t.Errorf("MatchPoint(2 ctx) = %d, want 1", got)
	}
}

func TestMatchPointAlwaysInRange(t *testing.T) {
	prospective := []Descriptor{desc("a", true), desc("a.b", true)}
	for contexts := 0; contexts <= 5; contexts++ {
		got := MatchPoint(prospective, nil, contexts)
		if got < 0 || got > len(prospective) {
			t.Errorf("MatchPoint(contexts=%d) = %d, out of range", contexts, got)
		}
	}
	if got := MatchPoint(nil, nil, 3); got != 0 {
		t.Errorf("MatchPoint(empty chain) = %d, want 0", got)
	}
}
