package relay

import (
	"net/http"
)

// Group registers routes under a shared path prefix with shared middleware.
type Group struct {
	name       string
	app        *App
	middleware []Middleware
}

// Add registers a new handler for the given method and path.
func (g *Group) Add(method, path string, handler Handler, m ...Middleware) error {
	path = g.name + "/" + trimLeftSlashes(path)
	mw := append(g.middleware, m...)
	return g.app.Add(method, path, handler, mw...)
}

// Get registers your function to be called when the given GET path has been requested.
func (g *Group) Get(path string, handler Handler, m ...Middleware) error {
	return g.Add(http.MethodGet, path, handler, m...)
}

// Post registers your function to be called when the given POST path has been requested.
func (g *Group) Post(path string, handler Handler, m ...Middleware) error {
	return g.Add(http.MethodPost, path, handler, m...)
}

// Put registers your function to be called when the given PUT path has been requested.
func (g *Group) Put(path string, handler Handler, m ...Middleware) error {
	return g.Add(http.MethodPut, path, handler, m...)
}

// Patch registers your function to be called when the given PATCH path has been requested.
func (g *Group) Patch(path string, handler Handler, m ...Middleware) error {
	return g.Add(http.MethodPatch, path, handler, m...)
}

// Delete registers your function to be called when the given DELETE path has been requested.
func (g *Group) Delete(path string, handler Handler, m ...Middleware) error {
	return g.Add(http.MethodDelete, path, handler, m...)
}

// Options registers your function to be called when the given OPTIONS path has been requested.
func (g *Group) Options(path string, handler Handler, m ...Middleware) error {
	return g.Add(http.MethodOptions, path, handler, m...)
}

// Head registers your function to be called when the given HEAD path has been requested.
func (g *Group) Head(path string, handler Handler, m ...Middleware) error {
	return g.Add(http.MethodHead, path, handler, m...)
}

// Use adds middleware to your middleware chain.
func (g *Group) Use(m ...Middleware) {
	g.middleware = append(g.middleware, m...)
}

// Group returns a child group.
func (g *Group) Group(name string, m ...Middleware) *Group {
	name = g.name + "/" + trimSlashes(name)
	mw := append(g.middleware, m...)
	return &Group{app: g.app, name: name, middleware: mw}
}
