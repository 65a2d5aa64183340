package chain

import "github.com/wayfind-dev/wayfind/pkg/queryparams"

// Descriptor identifies one handler position in a chain. It is set
// once at registration and immutable thereafter.
type Descriptor struct {
	// Name uniquely identifies the handler within a chain.
	Name string

	// Dynamic marks a handler that consumes one positional context
	// argument from the caller.
	Dynamic bool

	// Observes is the handler's declared query parameter interest.
	Observes queryparams.Interest
}

// ActiveHandler is one position of a live chain: a handler name and
// the opaque model currently bound to it.
type ActiveHandler struct {
	Name    string
	Context any
}

// Snapshot is the root-to-leaf active chain captured immediately
// before a navigation begins. It lives only for that navigation.
type Snapshot []ActiveHandler
