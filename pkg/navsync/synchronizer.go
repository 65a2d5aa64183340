package navsync

import (
	"context"
	"log/slog"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/wayfind-dev/wayfind/pkg/chain"
	"github.com/wayfind-dev/wayfind/pkg/queryparams"
)

// handlerState is the runtime state the Synchronizer keeps per active
// handler: the model bound to it and the parameter subset last applied.
type handlerState struct {
	context    any
	params     queryparams.Params
	generation uint64
}

// Synchronizer orchestrates navigation events: it snapshots the active
// chain, merges preserved ancestor parameters for the new target,
// delegates the transition to the engine, and afterwards selectively
// re-applies changed parameters to still-active handlers.
//
// Navigation calls return once the engine's transition settles.
// Refreshes triggered by the post-navigation reconciliation are
// dispatched in chain order (root to leaf) on their own goroutines and
// are not awaited; their completions may interleave arbitrarily, and
// an in-flight refresh is not cancelled when a later navigation
// starts. Because a handler's recorded parameters are updated before
// its refresh resolves, an overlapping navigation's diff check sees
// the already-updated value and will not re-trigger the refresh even
// if the first has not yet applied its result; the applied model may
// briefly trail the recorded state.
//
// Contexts are compared by identity (==), typically model pointers. A
// context with an uncomparable dynamic type (a map-backed model, say)
// is always treated as rebound.
type Synchronizer struct {
	engine  Engine
	loc     Location
	logger  *slog.Logger
	metrics *Metrics
	tracing *tracing

	mu         sync.Mutex
	states     map[string]*handlerState
	current    queryparams.Params
	generation uint64
}

// Option configures a Synchronizer.
type Option func(*Synchronizer)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Synchronizer) {
		s.logger = logger
	}
}

// WithMetrics wires Prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(s *Synchronizer) {
		s.metrics = m
	}
}

// New creates a Synchronizer around the given engine and location.
func New(engine Engine, loc Location, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		engine:  engine,
		loc:     loc,
		logger:  slog.Default(),
		states:  make(map[string]*handlerState),
		current: make(queryparams.Params),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HandleInitialURL splits the query suffix off url, records it as the
// current parameter state, delegates the path portion to the engine,
// and reconciles against an empty prior snapshot - every active
// handler is treated as freshly activated, so state is recorded but no
// refresh is triggered. The address is rewritten afterwards so the
// query the URL arrived with stays visible.
func (s *Synchronizer) HandleInitialURL(ctx context.Context, url string) error {
	path, query, _ := strings.Cut(url, "?")

	s.mu.Lock()
	s.current = queryparams.Deserialize(query)
	s.mu.Unlock()

	s.logger.Debug("handling initial url", "path", path, "query", query)
	start := time.Now()
	if err := s.engine.NavigateByPath(ctx, path); err != nil {
		s.metrics.recordNavigation("error", time.Since(start))
		return err
	}
	s.reconcile(ctx, nil)
	s.writeLocation()
	s.metrics.recordNavigation("success", time.Since(start))
	return nil
}

// NavigateTo runs a navigation to a named target. Positional contexts
// and parameter overrides are passed as tagged Args; overrides are
// consumed here and never reach the engine. Ancestor handlers above
// the match point keep their previously applied parameters, the
// override wins on top, and falsy entries are dropped.
//
// Engine failures (unresolved target, rejected transition) propagate
// untranslated. After the transition settles the Synchronizer
// reconciles still-active handlers and rewrites the address: the path
// portion produced by the engine plus the recomputed query string,
// discarding any query fragment the engine itself emitted.
func (s *Synchronizer) NavigateTo(ctx context.Context, target string, args ...Arg) error {
	contexts, override := splitArgs(args)
	name := s.resolveTarget(target)

	prospective, err := s.engine.ResolveChain(name)
	if err != nil {
		s.metrics.recordNavigation("error", 0)
		return err
	}

	snapshot := s.engine.ActiveChain()
	matchPoint := chain.MatchPoint(prospective, snapshot, len(contexts))
	merged := s.mergeAncestors(prospective, matchPoint)
	merged.Merge(override)

	s.mu.Lock()
	s.current = merged
	s.mu.Unlock()

	ctx, span := s.tracing.startNavigate(ctx, name, matchPoint)
	s.logger.Debug("navigating", "target", name, "match_point", matchPoint)

	start := time.Now()
	if err := s.engine.NavigateByTarget(ctx, name, contexts); err != nil {
		s.metrics.recordNavigation("error", time.Since(start))
		endSpan(span, err)
		return err
	}

	s.reconcile(ctx, snapshot)
	s.writeLocation()
	s.metrics.recordNavigation("success", time.Since(start))
	endSpan(span, nil)
	return nil
}

// GenerateURL composes the URL a navigation to target would produce:
// the engine's path plus the serialized merged parameter set. It
// mutates nothing and triggers no transition.
func (s *Synchronizer) GenerateURL(target string, args ...Arg) (string, error) {
	contexts, override := splitArgs(args)
	name := s.resolveTarget(target)

	prospective, err := s.engine.ResolveChain(name)
	if err != nil {
		return "", err
	}

	matchPoint := chain.MatchPoint(prospective, s.engine.ActiveChain(), len(contexts))
	merged := s.mergeAncestors(prospective, matchPoint)
	merged.Merge(override)

	u, err := s.engine.GenerateURL(name, contexts)
	if err != nil {
		return "", err
	}
	if qs := queryparams.Serialize(merged); qs != "" {
		u += "?" + qs
	}
	return u, nil
}

// CurrentParams returns a copy of the authoritative merged parameter
// state.
func (s *Synchronizer) CurrentParams() queryparams.Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// HandlerParams returns a copy of the parameter subset last applied to
// the named handler, and whether any state is recorded for it.
func (s *Synchronizer) HandlerParams(name string) (queryparams.Params, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[name]
	if !ok {
		return nil, false
	}
	return st.params.Clone(), true
}

// resolveTarget falls back to the target's index child when the target
// itself names a non-terminal resource.
func (s *Synchronizer) resolveTarget(target string) string {
	if !s.engine.HasRoute(target) && s.engine.HasRoute(target+".index") {
		return target + ".index"
	}
	return target
}

// mergeAncestors folds the recorded parameters of every chain position
// before the match point into a fresh set.
func (s *Synchronizer) mergeAncestors(prospective []chain.Descriptor, matchPoint int) queryparams.Params {
	merged := make(queryparams.Params)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < matchPoint && i < len(prospective); i++ {
		if st, ok := s.states[prospective[i].Name]; ok {
			merged.Merge(st.params)
		}
	}
	return merged
}

// pendingRefresh is one handler refresh queued by reconciliation.
type pendingRefresh struct {
	handler Handler
	name    string
	subset  queryparams.Params
}

// reconcile runs after every completed navigation. For each still-
// active handler with declared interest and a refresh capability it
// extracts the handler's subset of the merged state; handlers that are
// freshly activated (absent from the prior snapshot, or rebound to a
// different context) just have the subset recorded, since their own
// activation already used correct parameters. Handlers whose subset
// changed get the new value recorded immediately - making the diff
// idempotent against re-entrant checks - and their refresh dispatched
// asynchronously, in chain order.
func (s *Synchronizer) reconcile(ctx context.Context, prior chain.Snapshot) {
	active := s.engine.ActiveChain()

	s.mu.Lock()
	s.generation++
	gen := s.generation
	current := s.current.Clone()

	var dispatches []pendingRefresh
	for i, ah := range active {
		h := s.engine.Handler(ah.Name)
		if h == nil {
			continue
		}
		desc := h.Describe()
		if desc.Observes.None() || !refreshable(h) {
			continue
		}

		subset := queryparams.Extract(current, desc.Observes)
		st := s.states[ah.Name]
		fresh := i >= len(prior) || prior[i].Name != ah.Name || !sameContext(prior[i].Context, ah.Context)

		if st == nil || fresh {
			s.states[ah.Name] = &handlerState{context: ah.Context, params: subset, generation: gen}
			continue
		}

		st.context = ah.Context
		st.generation = gen
		if queryparams.Differs(st.params, subset) {
			st.params = subset
			dispatches = append(dispatches, pendingRefresh{handler: h, name: ah.Name, subset: subset})
		}
	}

	// Handlers that left the active chain have no further state
	// obligations.
	for name, st := range s.states {
		if st.generation != gen {
			delete(s.states, name)
		}
	}
	activeCount := len(s.states)
	s.mu.Unlock()

	s.metrics.setActiveHandlers(activeCount)

	// Refreshes outlive the navigation call and have no cancellation
	// path once dispatched.
	ctx = context.WithoutCancel(ctx)
	for _, d := range dispatches {
		go s.refresh(ctx, d)
	}
}

// refresh runs one handler's refresh sequence: re-resolve the model
// for the new subset, then apply it as the handler's context and
// notify the handler. On failure the stale state is retained and the
// failure logged; nothing is retried.
func (s *Synchronizer) refresh(ctx context.Context, p pendingRefresh) {
	ctx, span := s.tracing.startRefresh(ctx, p.name)
	start := time.Now()

	result, err := invokeRefresh(ctx, p.handler, p.subset)
	if err != nil {
		navErr := &NavError{Category: CategoryRefresh, Target: p.name, Err: err}
		s.logger.Error("handler refresh failed", "handler", p.name, "err", navErr)
		s.metrics.recordRefresh("error", time.Since(start))
		endSpan(span, navErr)
		return
	}

	if applier, ok := p.handler.(ContextApplier); ok {
		applier.ApplyContext(result)
	}
	if observer, ok := p.handler.(ContextObserver); ok {
		observer.ContextChanged()
	}

	s.metrics.recordRefresh("success", time.Since(start))
	endSpan(span, nil)
}

// sameContext reports whether two bound contexts are the same value.
// Contexts with an uncomparable dynamic type never count as the same;
// their handler re-records as freshly activated instead of panicking
// in the == comparison.
func sameContext(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// refreshable reports whether the handler exposes a refresh capability.
func refreshable(h Handler) bool {
	if _, ok := h.(Refresher); ok {
		return true
	}
	_, ok := h.(Loader)
	return ok
}

// invokeRefresh calls the handler's Refresher, falling back to its
// normal data-loading capability.
func invokeRefresh(ctx context.Context, h Handler, params queryparams.Params) (any, error) {
	if r, ok := h.(Refresher); ok {
		return r.Refresh(ctx, params)
	}
	if l, ok := h.(Loader); ok {
		return l.Load(ctx, params)
	}
	return nil, nil
}

// writeLocation rewrites the address: the engine's path portion plus
// the authoritative query string. Any query the engine emitted is
// discarded.
func (s *Synchronizer) writeLocation() {
	path, _, _ := strings.Cut(s.loc.URL(), "?")

	s.mu.Lock()
	qs := queryparams.Serialize(s.current)
	s.mu.Unlock()

	if qs != "" {
		path += "?" + qs
	}
	s.loc.SetURL(path)
}
