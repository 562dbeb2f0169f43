package relay

import (
	stdContext "context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/avaruz/relay/binding"
)

const (
	contentTypeHeader = "Content-Type"
	contentTypeJSON   = "application/json; charset=utf-8"
	contentTypeText   = "text/plain; charset=utf-8"
	contentTypeHTML   = "text/html; charset=utf-8"
)

// Context represents a request & response context.
type Context struct {
	app     *App
	status  int
	req     *http.Request
	rw      http.ResponseWriter
	handler Handler
	params  Params
	mu      sync.RWMutex
	keys    map[string]interface{}
}

// App returns the owning application.
func (c *Context) App() *App {
	return c.app
}

// Request returns the underlying request.
func (c *Context) Request() *http.Request {
	return c.req
}

// Response returns the underlying response writer.
func (c *Context) Response() http.ResponseWriter {
	return c.rw
}

// StdContext returns the request's context.
func (c *Context) StdContext() stdContext.Context {
	return c.req.Context()
}

// Method returns the request method.
func (c *Context) Method() string {
	return c.req.Method
}

// Path returns the request path.
func (c *Context) Path() string {
	return c.req.URL.Path
}

// Param returns the path variable extracted under name, or "".
func (c *Context) Param(name string) string {
	return c.params.Get(name)
}

// Params returns all extracted path variables in path order.
func (c *Context) Params() Params {
	return c.params
}

// SetKey stores a key/value pair exclusively for this context.
// It lazy initializes c.keys if it was not used previously.
func (c *Context) SetKey(key string, value interface{}) {
	c.mu.Lock()
	if c.keys == nil {
		c.keys = make(map[string]interface{})
	}

	c.keys[key] = value
	c.mu.Unlock()
}

// GetKey returns the value for the given key, ie: (value, true).
// If the value does not exist it returns (nil, false).
func (c *Context) GetKey(key string) (value interface{}, exists bool) {
	c.mu.RLock()
	value, exists = c.keys[key]
	c.mu.RUnlock()
	return
}

func (c *Context) GetKeyString(key string) (s string) {
	if val, ok := c.GetKey(key); ok && val != nil {
		s = val.(string)
	}
	return
}

func (c *Context) GetKeyTime(key string) (t time.Time) {
	if val, ok := c.GetKey(key); ok && val != nil {
		t = val.(time.Time)
	}
	return
}

// Status returns the response status.
func (c *Context) Status() int {
	return c.status
}

// SetStatus sets the response status for the next write.
func (c *Context) SetStatus(status int) {
	c.status = status
}

// Bytes writes the body with the current status.
func (c *Context) Bytes(body []byte) error {
	if c.req.Context().Err() != nil {
		return errRequestInterrupted
	}

	c.rw.WriteHeader(c.status)
	_, err := c.rw.Write(body)
	return err
}

// String writes a plain text response.
func (c *Context) String(body string) error {
	c.rw.Header().Set(contentTypeHeader, contentTypeText)
	return c.Bytes([]byte(body))
}

// HTML writes an HTML response.
func (c *Context) HTML(html string) error {
	c.rw.Header().Set(contentTypeHeader, contentTypeHTML)
	return c.Bytes([]byte(html))
}

// JSON encodes the value to JSON and responds.
func (c *Context) JSON(value interface{}) error {
	c.rw.Header().Set(contentTypeHeader, contentTypeJSON)
	b, err := binding.Json.Marshal(value)
	if err != nil {
		return err
	}

	return c.Bytes(b)
}

// JSONAndStatus is JSON with an explicit status code.
func (c *Context) JSONAndStatus(status int, value interface{}) error {
	c.status = status
	return c.JSON(value)
}

// Error responds with the given status and a plain text message.
func (c *Context) Error(status int, message string) error {
	c.status = status
	return c.String(message)
}

// Bind decodes the request body into obj based on the Content-Type and
// validates it.
func (c *Context) Bind(obj any) error {
	b := binding.Default(c.req.Method, c.ContentType())
	return b.Bind(c.req, obj)
}

// BindWith decodes the request body with an explicit binding.
func (c *Context) BindWith(obj any, b binding.Binding) error {
	return b.Bind(c.req, obj)
}

// ContentType returns the request content type without parameters.
func (c *Context) ContentType() string {
	return filterFlags(c.req.Header.Get(contentTypeHeader))
}

// ClientIP returns the client address, honoring proxy headers.
func (c *Context) ClientIP() string {
	if ip := strings.TrimSpace(strings.Split(c.req.Header.Get("X-Forwarded-For"), ",")[0]); ip != "" {
		return ip
	}
	if ip := strings.TrimSpace(c.req.Header.Get("X-Real-Ip")); ip != "" {
		return ip
	}
	if ip, _, err := net.SplitHostPort(strings.TrimSpace(c.req.RemoteAddr)); err == nil {
		return ip
	}
	return c.req.RemoteAddr
}

// Close frees up resources and is automatically called
// in the ServeHTTP part of the web server.
func (c *Context) Close() {
	c.req = nil
	c.rw = nil
	c.handler = nil
	c.params = c.params[:0]
	c.keys = nil
	c.app.contextPool.Put(c)
}
