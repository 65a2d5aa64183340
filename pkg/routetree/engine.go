package routetree

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/wayfind-dev/wayfind/pkg/chain"
	"github.com/wayfind-dev/wayfind/pkg/navsync"
)

// ModelResolver is an optional handler capability: resolve the model
// for a dynamic segment value recognized from a path. Without it the
// raw segment string becomes the handler's context.
type ModelResolver interface {
	ResolveModel(ctx context.Context, param string) (any, error)
}

// ContextSerializer is an optional handler capability: produce the
// path segment value for a bound context. The default is the context
// itself for strings, fmt formatting otherwise.
type ContextSerializer interface {
	SerializeContext(v any) string
}

// route is one registered named route.
type route struct {
	name     string
	parent   *route
	segments []segment
	handler  navsync.Handler
	dynamic  bool
	leaf     *node
}

// Tree is an in-memory navigation engine over named routes.
type Tree struct {
	root   *node
	routes map[string]*route
	loc    navsync.Location

	mu     sync.Mutex
	active chain.Snapshot
}

// TreeOption configures a Tree.
type TreeOption func(*Tree)

// WithLocation makes the engine write the path it navigates to into
// the given location.
func WithLocation(loc navsync.Location) TreeOption {
	return func(t *Tree) {
		t.loc = loc
	}
}

// New creates an empty route tree.
func New(opts ...TreeOption) *Tree {
	t := &Tree{
		root:   &node{},
		routes: make(map[string]*route),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Register adds a named route. The name's dotted prefix must already
// be registered; pattern is the route's own contribution to the
// chain's path. A pattern with a :param segment makes the route
// dynamic.
func (t *Tree) Register(name, pattern string, h navsync.Handler) error {
	if _, exists := t.routes[name]; exists {
		return fmt.Errorf("route %q already registered", name)
	}

	var parent *route
	if idx := strings.LastIndex(name, "."); idx != -1 {
		parent = t.routes[name[:idx]]
		if parent == nil {
			return fmt.Errorf("route %q: parent %q not registered", name, name[:idx])
		}
	}

	segs := parsePattern(pattern)
	dynamic := false
	for _, s := range segs {
		if s.param != "" {
			dynamic = true
		}
	}

	r := &route{
		name:     name,
		parent:   parent,
		segments: segs,
		handler:  h,
		dynamic:  dynamic,
	}
	r.leaf = t.root.insert(t.fullSegments(r))
	r.leaf.routeName = name
	t.routes[name] = r
	return nil
}

// fullSegments concatenates the chain's patterns root to leaf.
func (t *Tree) fullSegments(r *route) []segment {
	if r.parent == nil {
		return r.segments
	}
	parent := t.fullSegments(r.parent)
	return append(append([]segment{}, parent...), r.segments...)
}

// chainRoutes returns the route chain root to leaf.
func (t *Tree) chainRoutes(name string) ([]*route, error) {
	r := t.routes[name]
	if r == nil {
		return nil, &navsync.NavError{
			Category: navsync.CategoryNavigation,
			Target:   name,
			Err:      errors.New("no such route"),
		}
	}
	var routes []*route
	for ; r != nil; r = r.parent {
		routes = append([]*route{r}, routes...)
	}
	return routes, nil
}

// descriptor builds the chain descriptor for a route. Name and Dynamic
// come from registration; the parameter interest from the handler.
func descriptor(r *route) chain.Descriptor {
	d := chain.Descriptor{Name: r.name, Dynamic: r.dynamic}
	if r.handler != nil {
		d.Observes = r.handler.Describe().Observes
	}
	return d
}

// ResolveChain implements navsync.Engine.
func (t *Tree) ResolveChain(name string) ([]chain.Descriptor, error) {
	routes, err := t.chainRoutes(name)
	if err != nil {
		return nil, err
	}
	descs := make([]chain.Descriptor, len(routes))
	for i, r := range routes {
		descs[i] = descriptor(r)
	}
	return descs, nil
}

// HasRoute implements navsync.Engine.
func (t *Tree) HasRoute(name string) bool {
	_, ok := t.routes[name]
	return ok
}

// Handler implements navsync.Engine.
func (t *Tree) Handler(name string) navsync.Handler {
	if r := t.routes[name]; r != nil {
		return r.handler
	}
	return nil
}

// ActiveChain implements navsync.Engine.
func (t *Tree) ActiveChain() chain.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append(chain.Snapshot{}, t.active...)
}

// NavigateByTarget implements navsync.Engine: bind supplied contexts
// to dynamic handlers (leaf-most first), reuse prior bindings above,
// activate the chain, and write the generated path to the location.
func (t *Tree) NavigateByTarget(ctx context.Context, name string, contexts []any) error {
	routes, err := t.chainRoutes(name)
	if err != nil {
		return err
	}

	bound := t.bindContexts(routes, contexts)
	snapshot := make(chain.Snapshot, len(routes))
	for i, r := range routes {
		snapshot[i] = chain.ActiveHandler{Name: r.name, Context: bound[r.name]}
	}

	path, err := t.buildPath(routes, bound)
	if err != nil {
		return err
	}

	t.mu.Lock()
	t.active = snapshot
	t.mu.Unlock()

	if t.loc != nil {
		t.loc.SetURL(path)
	}
	return nil
}

// NavigateByPath implements navsync.Engine: recognize the path,
// resolve models for dynamic segments, and activate the chain.
func (t *Tree) NavigateByPath(ctx context.Context, path string) error {
	params := make(map[string]string)
	leaf, ok := t.root.match(splitPath(path), params)
	if !ok {
		return &navsync.NavError{
			Category: navsync.CategoryNavigation,
			Target:   path,
			Err:      errors.New("unrecognized path"),
		}
	}

	routes, err := t.chainRoutes(leaf.routeName)
	if err != nil {
		return err
	}

	snapshot := make(chain.Snapshot, len(routes))
	for i, r := range routes {
		var bound any
		if r.dynamic {
			raw := params[r.paramName()]
			bound = raw
			if resolver, ok := r.handler.(ModelResolver); ok {
				model, err := resolver.ResolveModel(ctx, raw)
				if err != nil {
					return err
				}
				bound = model
			}
		}
		snapshot[i] = chain.ActiveHandler{Name: r.name, Context: bound}
	}

	t.mu.Lock()
	t.active = snapshot
	t.mu.Unlock()

	if t.loc != nil {
		t.loc.SetURL(path)
	}
	return nil
}

// GenerateURL implements navsync.Engine. It binds contexts the same
// way NavigateByTarget does but activates nothing.
func (t *Tree) GenerateURL(name string, contexts []any) (string, error) {
	routes, err := t.chainRoutes(name)
	if err != nil {
		return "", err
	}
	return t.buildPath(routes, t.bindContexts(routes, contexts))
}

// bindContexts assigns supplied contexts to dynamic routes, consumed
// left to right with the leaf-most dynamic route served first, and
// falls back to the currently bound context for unfilled positions.
// Surplus contexts are ignored.
func (t *Tree) bindContexts(routes []*route, contexts []any) map[string]any {
	bound := make(map[string]any, len(routes))

	idx := 0
	for i := len(routes) - 1; i >= 0; i-- {
		if routes[i].dynamic && idx < len(contexts) {
			bound[routes[i].name] = contexts[idx]
			idx++
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for _, ah := range t.active {
		if _, filled := bound[ah.Name]; !filled {
			bound[ah.Name] = ah.Context
		}
	}
	return bound
}

// buildPath emits the chain's pattern root to leaf, serializing bound
// contexts into dynamic segments.
func (t *Tree) buildPath(routes []*route, bound map[string]any) (string, error) {
	var b strings.Builder
	for _, r := range routes {
		for _, seg := range r.segments {
			if seg.param == "" {
				if seg.literal != "" {
					b.WriteByte('/')
					b.WriteString(seg.literal)
				}
				continue
			}
			v, ok := bound[r.name]
			if !ok || v == nil {
				return "", &navsync.NavError{
					Category: navsync.CategoryNavigation,
					Target:   r.name,
					Err:      fmt.Errorf("no context for dynamic segment :%s", seg.param),
				}
			}
			b.WriteByte('/')
			b.WriteString(serializeContext(r.handler, v))
		}
	}
	if b.Len() == 0 {
		return "/", nil
	}
	return b.String(), nil
}

// paramName returns the route's first dynamic segment name.
func (r *route) paramName() string {
	for _, seg := range r.segments {
		if seg.param != "" {
			return seg.param
		}
	}
	return ""
}

// serializeContext turns a bound context into a path segment value.
func serializeContext(h navsync.Handler, v any) string {
	if s, ok := h.(ContextSerializer); ok {
		return s.SerializeContext(v)
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
