package relay

import (
	"strings"

	"github.com/pkg/errors"
)

// Param is one extracted path variable. Params keep left-to-right path
// order, which maps cannot guarantee.
type Param struct {
	Name  string
	Value string
}

// Params is the ordered list of variables extracted by a pattern match.
type Params []Param

// Get returns the value for name, or "" when absent.
func (p Params) Get(name string) string {
	for i := range p {
		if p[i].Name == name {
			return p[i].Value
		}
	}
	return ""
}

// Match is the outcome of a successful match: the registered handler plus
// the variables extracted from the path (empty for every strategy except
// pattern routes).
type Match[T any] struct {
	Handler T
	Params  Params
}

type exactKey struct {
	method string
	path   string
}

type listedRoute[T any] struct {
	method  string
	text    string
	handler T
}

// RouteTree maps (method, path) pairs to registered handlers. Strategies
// are tried in fixed priority order: exact, pattern (trie), prefix,
// contains, fallback.
//
// Registration must complete before serving begins. After that the tree is
// read-only and Match may be called concurrently; the recency cache is the
// only shared mutable state and synchronizes internally.
type RouteTree[T any] struct {
	exact    map[exactKey]T
	root     *trieNode[T]
	prefixes []listedRoute[T]
	contains []listedRoute[T]
	fallback map[string]T
	cache    *recencyCache[T]
	metrics  *routerMetrics
}

// NewRouteTree creates an empty route tree.
func NewRouteTree[T any]() *RouteTree[T] {
	return &RouteTree[T]{
		exact:    make(map[exactKey]T),
		root:     newTrieNode[T](),
		fallback: make(map[string]T),
		cache:    newRecencyCache[T](matchCacheCapacity),
		metrics:  getRouterMetrics(),
	}
}

// AddRoute registers a pattern route. Patterns may mix literal segments
// with "{name}" variables: "/users/{id}/posts". Malformed variables fail
// with ErrInvalidPattern before the tree is touched.
func (t *RouteTree[T]) AddRoute(pattern, method string, handler T) error {
	segments, err := parsePattern(pattern)
	if err != nil {
		return err
	}
	t.root.insert(segments, method, handler)
	return nil
}

// AddExactRoute registers a route matched only by byte-for-byte path
// equality.
func (t *RouteTree[T]) AddExactRoute(path, method string, handler T) error {
	if path == "" {
		return errors.Wrap(ErrInvalidPattern, "empty exact path")
	}
	t.exact[exactKey{method: method, path: path}] = handler
	return nil
}

// AddPrefixRoute registers a route matched when the path starts with
// prefix. The longest registered prefix wins; ties go to the first
// registered.
func (t *RouteTree[T]) AddPrefixRoute(prefix, method string, handler T) error {
	if prefix == "" {
		return errors.Wrap(ErrInvalidPattern, "empty prefix")
	}
	t.prefixes = append(t.prefixes, listedRoute[T]{method: method, text: prefix, handler: handler})
	return nil
}

// AddContainsRoute registers a route matched when the path contains
// substring anywhere. The first registered match wins.
func (t *RouteTree[T]) AddContainsRoute(substring, method string, handler T) error {
	if substring == "" {
		return errors.Wrap(ErrInvalidPattern, "empty substring")
	}
	t.contains = append(t.contains, listedRoute[T]{method: method, text: substring, handler: handler})
	return nil
}

// SetFallback registers the per-method default handler, overwriting any
// previous one. It is consulted only when every other strategy fails.
func (t *RouteTree[T]) SetFallback(method string, handler T) {
	t.fallback[method] = handler
}

// Match resolves path and method to a handler, or nil when nothing
// matches. The caller must supply a normalized path: leading slash, no
// query string, no fragment. No case folding, percent decoding or
// trailing-slash handling happens here.
func (t *RouteTree[T]) Match(path, method string) *Match[T] {
	if handler, ok := t.exact[exactKey{method: method, path: path}]; ok {
		t.metrics.matches.WithLabelValues("exact").Inc()
		return &Match[T]{Handler: handler}
	}

	if m := t.matchPattern(path, method); m != nil {
		t.metrics.matches.WithLabelValues("pattern").Inc()
		return m
	}

	if m := t.matchPrefix(path, method); m != nil {
		t.metrics.matches.WithLabelValues("prefix").Inc()
		return m
	}

	for _, route := range t.contains {
		if route.method == method && strings.Contains(path, route.text) {
			t.metrics.matches.WithLabelValues("contains").Inc()
			return &Match[T]{Handler: route.handler}
		}
	}

	if handler, ok := t.fallback[method]; ok {
		t.metrics.matches.WithLabelValues("fallback").Inc()
		return &Match[T]{Handler: handler}
	}

	t.metrics.matches.WithLabelValues("none").Inc()
	return nil
}

// matchPattern serves a trie match, consulting the recency cache first.
// Only successful matches are cached; there is no negative caching.
func (t *RouteTree[T]) matchPattern(path, method string) *Match[T] {
	key := method + ":" + path

	if m, ok := t.cache.get(key); ok {
		return m
	}

	terminal, values := t.root.match(splitPath(path), method, nil)
	if terminal == nil {
		return nil
	}

	names := terminal.varNames[method]
	params := make(Params, len(values))
	for i, value := range values {
		params[i] = Param{Name: names[i], Value: value}
	}

	m := &Match[T]{Handler: terminal.handlers[method], Params: params}
	t.cache.put(key, m)
	return m
}

func (t *RouteTree[T]) matchPrefix(path, method string) *Match[T] {
	best := -1
	for i, route := range t.prefixes {
		if route.method != method || !strings.HasPrefix(path, route.text) {
			continue
		}
		// Strictly longer replaces; equal length keeps the earlier one.
		if best == -1 || len(route.text) > len(t.prefixes[best].text) {
			best = i
		}
	}
	if best == -1 {
		return nil
	}
	return &Match[T]{Handler: t.prefixes[best].handler}
}
