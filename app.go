package relay

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var errRequestInterrupted = errors.New("request interrupted by the client")

// App dispatches requests through a RouteTree and serves HTTP.
type App struct {
	server       *http.Server
	tlsCertFile  string
	tlsKeyFile   string
	tree         *RouteTree[Handler]
	middleware   []Middleware // global middleware
	contextPool  sync.Pool
	notFoundFn   func(*Context)
	errorHandler func(*Context, error)
}

// New creates a new app.
func New() *App {
	a := &App{
		tree: NewRouteTree[Handler](),
		errorHandler: func(c *Context, err error) {
			Log.Error("Error in handler",
				zap.Error(err),
				zap.String("path", c.Path()))
		},
	}

	// Context pool
	a.contextPool.New = func() any { return &Context{app: a} }

	return a
}

// NotFoundFn sets the handler invoked when no route matches.
func (a *App) NotFoundFn(f func(*Context)) {
	a.notFoundFn = f
}

func (a *App) TlsCertFile(f string) {
	a.tlsCertFile = f
}

func (a *App) TlsKeyFile(f string) {
	a.tlsKeyFile = f
}

// Tree returns the route tree used by the app.
func (a *App) Tree() *RouteTree[Handler] {
	return a.tree
}

// Add registers a pattern route for the given method and path.
func (a *App) Add(method, path string, handler Handler, m ...Middleware) error {
	transform := a.transformMiddleware(m...)
	return a.tree.AddRoute(path, method, transform(handler))
}

// Get registers your function to be called when the given GET path has been requested.
func (a *App) Get(path string, handler Handler, m ...Middleware) error {
	return a.Add(http.MethodGet, path, handler, m...)
}

// Post registers your function to be called when the given POST path has been requested.
func (a *App) Post(path string, handler Handler, m ...Middleware) error {
	return a.Add(http.MethodPost, path, handler, m...)
}

// Put registers your function to be called when the given PUT path has been requested.
func (a *App) Put(path string, handler Handler, m ...Middleware) error {
	return a.Add(http.MethodPut, path, handler, m...)
}

// Patch registers your function to be called when the given PATCH path has been requested.
func (a *App) Patch(path string, handler Handler, m ...Middleware) error {
	return a.Add(http.MethodPatch, path, handler, m...)
}

// Delete registers your function to be called when the given DELETE path has been requested.
func (a *App) Delete(path string, handler Handler, m ...Middleware) error {
	return a.Add(http.MethodDelete, path, handler, m...)
}

// Options registers your function to be called when the given OPTIONS path has been requested.
func (a *App) Options(path string, handler Handler, m ...Middleware) error {
	return a.Add(http.MethodOptions, path, handler, m...)
}

// Head registers your function to be called when the given HEAD path has been requested.
func (a *App) Head(path string, handler Handler, m ...Middleware) error {
	return a.Add(http.MethodHead, path, handler, m...)
}

// Exact registers a byte-for-byte path route.
func (a *App) Exact(method, path string, handler Handler, m ...Middleware) error {
	transform := a.transformMiddleware(m...)
	return a.tree.AddExactRoute(path, method, transform(handler))
}

// Prefix registers a path-prefix route.
func (a *App) Prefix(method, prefix string, handler Handler, m ...Middleware) error {
	transform := a.transformMiddleware(m...)
	return a.tree.AddPrefixRoute(prefix, method, transform(handler))
}

// Contains registers a substring route.
func (a *App) Contains(method, substring string, handler Handler, m ...Middleware) error {
	transform := a.transformMiddleware(m...)
	return a.tree.AddContainsRoute(substring, method, transform(handler))
}

// Fallback registers the per-method default handler.
func (a *App) Fallback(method string, handler Handler, m ...Middleware) {
	transform := a.transformMiddleware(m...)
	a.tree.SetFallback(method, transform(handler))
}

// Group returns a router group rooted at name.
func (a *App) Group(name string, m ...Middleware) *Group {
	return &Group{app: a, name: "/" + trimSlashes(name), middleware: m}
}

// ServeHTTP responds to the given request.
func (a *App) ServeHTTP(response http.ResponseWriter, request *http.Request) {
	c := a.newContext(request, response)

	match := a.tree.Match(request.URL.Path, request.Method)
	if match == nil {
		if a.notFoundFn != nil {
			a.notFoundFn(c)
		} else {
			response.WriteHeader(http.StatusNotFound)
		}
		c.Close()
		return
	}

	c.handler = match.Handler
	c.params = append(c.params, match.Params...)

	if err := c.handler(c); err != nil {
		a.errorHandler(c, err)
	}
	c.Close()
}

// Run starts your application with http(s) and blocks until a termination
// signal arrives or the server fails.
func (a *App) Run(addr ...string) error {
	address := resolveAddress(addr)
	Log.Debug("Listening and serving HTTP(S)", zap.String("address", address))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	a.server = &http.Server{Addr: address, Handler: a}
	errCh := make(chan error, 1)
	go func() {
		var err error
		if a.tlsCertFile == "" || a.tlsKeyFile == "" {
			err = a.server.ListenAndServe()
		} else {
			err = a.server.ListenAndServeTLS(a.tlsCertFile, a.tlsKeyFile)
		}
		if err != nil && err != http.ErrServerClosed {
			Log.Error("http(s) listen error", zap.Error(err))
			errCh <- err
		}
	}()

	select {
	case sig := <-stop:
		Log.Info("Shutting down signal", zap.String("signal", sig.String()))
		return a.Shutdown()
	case err := <-errCh:
		return errors.Wrapf(err, "http(s) server error, addr: %v", address)
	}
}

// RunServer starts your application with the given server and listener.
func (a *App) RunServer(srv *http.Server, l net.Listener) error {
	Log.Debug("Listening and serving HTTP(S) on listener",
		zap.String("address", l.Addr().String()))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	a.server = srv
	srv.Handler = a
	errCh := make(chan error, 1)
	go func() {
		var err error
		if a.tlsCertFile == "" || a.tlsKeyFile == "" {
			err = srv.Serve(l)
		} else {
			err = srv.ServeTLS(l, a.tlsCertFile, a.tlsKeyFile)
		}
		if err != nil && err != http.ErrServerClosed {
			Log.Error("listen server error", zap.Error(err))
			errCh <- err
		}
	}()

	select {
	case sig := <-stop:
		Log.Info("Shutting down signal", zap.String("signal", sig.String()))
		return a.Shutdown()
	case err := <-errCh:
		return errors.Wrapf(err, "listen server: %v", l.Addr())
	}
}

// Start starts your application with http(s) without trapping signals:
// the embedding host decides when to call Shutdown. It blocks until the
// server stops, returning nil after a graceful Shutdown.
func (a *App) Start(addr ...string) error {
	address := resolveAddress(addr)
	Log.Debug("Listening and serving HTTP(S)", zap.String("address", address))

	a.server = &http.Server{Addr: address, Handler: a}
	var err error
	if a.tlsCertFile == "" || a.tlsKeyFile == "" {
		err = a.server.ListenAndServe()
	} else {
		err = a.server.ListenAndServeTLS(a.tlsCertFile, a.tlsKeyFile)
	}
	if err != nil && err != http.ErrServerClosed {
		Log.Error("http(s) listen error", zap.Error(err))
		return errors.Wrapf(err, "http server error, addr: %v", address)
	}
	return nil
}

// Shutdown stops the server gracefully.
func (a *App) Shutdown() error {
	Log.Info("Shutting down http(s) server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.server.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "http(s) server forced to shutdown")
	}
	Log.Info("Http(s) server exited properly")
	return nil
}

// Use adds middleware to your middleware chain.
func (a *App) Use(m ...Middleware) {
	a.middleware = append(a.middleware, m...)
}

// newContext returns a new context from the pool.
func (a *App) newContext(req *http.Request, res http.ResponseWriter) *Context {
	c := a.contextPool.Get().(*Context)
	c.status = http.StatusOK
	c.req = req
	c.rw = res
	return c
}

// Transform middleware
func (a *App) transformMiddleware(m ...Middleware) func(Handler) Handler {
	return func(handler Handler) Handler {
		mw := append(a.middleware, m...)
		return handler.Transform(mw...)
	}
}

// EnableLogRequest records one structured log line per request.
func (a *App) EnableLogRequest() {
	a.Use(func(next Handler) Handler {
		return func(c *Context) error {
			start := time.Now()
			path := c.Path()
			query := c.req.URL.RawQuery
			method := c.Method()

			err := next(c)

			latency := time.Since(start)
			if latency > time.Minute {
				latency = latency - latency%time.Second
			}
			Log.Info("Request record",
				zap.Int("status", c.Status()),
				zap.String("method", method),
				zap.String("path", path),
				zap.String("query", query),
				zap.String("ip", c.ClientIP()),
				zap.String("user-agent", c.req.UserAgent()),
				zap.Duration("latency", latency))

			return err
		}
	})
}
