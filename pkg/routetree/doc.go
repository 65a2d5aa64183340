// Package routetree is a reference navigation engine for navsync: a
// registry of named routes over a path tree, with chain activation,
// path recognition and URL generation.
//
// Routes form a hierarchy through dotted names; each route contributes
// its own path pattern to the chain's full path:
//
//	t := routetree.New(routetree.WithLocation(loc))
//	t.Register("posts", "/posts", postsHandler)
//	t.Register("posts.view", "/:post_id", viewHandler)
//
// "posts.view" resolves to the chain [posts, posts.view] and the
// pattern /posts/:post_id. A route whose pattern contains a :param
// segment is dynamic and consumes one positional context.
//
// The engine implements navsync.Engine. It is deliberately small: it
// activates chains and produces paths, and leaves all query parameter
// handling to the Synchronizer.
package routetree
