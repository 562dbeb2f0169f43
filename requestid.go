package relay

import (
	"github.com/google/uuid"
)

// RequestIDHeader is the header carrying the request ID.
const RequestIDHeader = "X-Request-Id"

// RequestIDKey is the context key the request ID is stored under.
const RequestIDKey = "relay_requestid"

// RequestID returns a middleware that ensures every request carries an ID,
// generating a UUID when the client did not send one. The ID is echoed in
// the response and stored on the context.
func RequestID() Middleware {
	return func(next Handler) Handler {
		return func(c *Context) error {
			id := c.req.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			c.SetKey(RequestIDKey, id)
			c.rw.Header().Set(RequestIDHeader, id)
			return next(c)
		}
	}
}
