package relay

// Handler processes one request context.
type Handler func(*Context) error

// Middleware wraps a Handler with additional behavior.
type Middleware func(Handler) Handler

// Transform applies the given middleware right to left, so the first
// middleware in the list is the outermost.
func (h Handler) Transform(middleware ...Middleware) Handler {
	l := len(middleware) - 1
	if l < 0 {
		return h
	}
	for i := l; i >= 0; i-- {
		h = middleware[i](h)
	}

	return h
}
