// Package relay provides a multi-strategy request-dispatch engine and a
// small net/http embedding around it.
//
// The core is RouteTree: it maps an incoming (method, path) pair to a
// registered handler by trying strategies in fixed priority order —
// exact routes, pattern (trie) routes with "{name}" variables, prefix
// routes, substring-contains routes, and a per-method fallback. Pattern
// matches are memoized in a bounded recency cache.
//
// Example:
//
//	a := relay.New()
//	a.Get("/users/{id}", func(c *relay.Context) error {
//		return c.String(c.Param("id"))
//	})
//	a.Run(":8080")
package relay
