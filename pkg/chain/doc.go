// Package chain models the root-to-leaf sequence of route handlers
// active for a navigation target, and computes the match point between
// an old and a prospective chain.
//
// The match point is the shallowest position at which the two chains
// differ. Handlers above it are preserved ancestors whose previously
// applied query parameters survive the navigation; handlers at or
// below it are freshly activated by the navigation engine.
package chain
