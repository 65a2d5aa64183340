package navsync

import (
	"context"

	"github.com/wayfind-dev/wayfind/pkg/chain"
	"github.com/wayfind-dev/wayfind/pkg/queryparams"
)

// Engine is the external navigation engine the Synchronizer delegates
// to. It owns URL recognition, handler activation and deactivation,
// and transition execution. Navigation methods block until the
// transition settles and report its outcome as an error.
type Engine interface {
	// ResolveChain returns the ordered root-to-leaf descriptor chain
	// for a named target.
	ResolveChain(name string) ([]chain.Descriptor, error)

	// HasRoute reports whether a target name is registered.
	HasRoute(name string) bool

	// ActiveChain returns the currently active chain, root to leaf.
	ActiveChain() chain.Snapshot

	// Handler returns the handler registered under name, or nil.
	Handler(name string) Handler

	// NavigateByPath runs a transition to the given path (no query).
	NavigateByPath(ctx context.Context, path string) error

	// NavigateByTarget runs a transition to a named target with
	// positional contexts, consumed left to right by dynamic
	// handlers, leaf-most first.
	NavigateByTarget(ctx context.Context, name string, contexts []any) error

	// GenerateURL composes the path for a named target. Query
	// parameters are none of the engine's business.
	GenerateURL(name string, contexts []any) (string, error)
}

// Location abstracts the address shown to the user.
type Location interface {
	URL() string
	SetURL(url string)
}

// Handler is the minimal capability every route handler exposes.
type Handler interface {
	Describe() chain.Descriptor
}

// Refresher is an optional handler capability: re-resolve the
// handler's model for a changed parameter subset.
type Refresher interface {
	Refresh(ctx context.Context, params queryparams.Params) (any, error)
}

// Loader is a handler's normal data-loading capability. A handler
// without a Refresher falls back to Load when its parameters change.
type Loader interface {
	Load(ctx context.Context, params queryparams.Params) (any, error)
}

// ContextApplier receives the result of a refresh as the handler's new
// bound context.
type ContextApplier interface {
	ApplyContext(value any)
}

// ContextObserver is notified after a refresh result has been applied.
type ContextObserver interface {
	ContextChanged()
}
