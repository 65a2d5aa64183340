// Package navsync keeps a hierarchical chain of active route handlers
// consistent with flat query-string parameters across navigations.
//
// The navigation engine - URL recognition, handler activation,
// transition execution - is an external collaborator behind the Engine
// interface. Handlers that stay active across a navigation are not
// re-initialized by the engine, so the Synchronizer detects which of
// their observed query parameters changed and selectively refreshes
// just those handlers, while preserving parent-scoped parameters when
// navigating into a child.
//
// A navigation flows through the Synchronizer:
//
//	s := navsync.New(engine, location)
//	err := s.NavigateTo(ctx, "posts.view",
//	    navsync.Model(post),
//	    navsync.Override(queryparams.Params{"sort": queryparams.String("date")}),
//	)
//
// The call returns once the engine's transition settles. Per-handler
// refreshes triggered by parameter changes run on their own goroutines
// and are not awaited; see Synchronizer for the ordering and
// non-cancellation guarantees.
package navsync
