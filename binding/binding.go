// Package binding decodes request bodies into Go values based on the
// request content type and validates the result.
package binding

import (
	"net/http"
)

// Content types handled by Default.
const (
	MIMEJSON     = "application/json"
	MIMEXML      = "application/xml"
	MIMEXML2     = "text/xml"
	MIMEPlain    = "text/plain"
	MIMEYAML     = "application/yaml"
	MIMEYAML2    = "application/x-yaml"
	MIMETOML     = "application/toml"
	MIMEMSGPACK  = "application/msgpack"
	MIMEMSGPACK2 = "application/x-msgpack"
	MIMEPROTOBUF = "application/x-protobuf"
)

// Binding decodes a request body into obj.
type Binding interface {
	Name() string
	Bind(*http.Request, any) error
}

// BodyBinding additionally decodes from a raw body slice.
type BodyBinding interface {
	Binding
	BindBody([]byte, any) error
}

var (
	JSON     BodyBinding = jsonBinding{}
	XML      BodyBinding = xmlBinding{}
	YAML     BodyBinding = yamlBinding{}
	TOML     BodyBinding = tomlBinding{}
	MsgPack  BodyBinding = msgpackBinding{}
	ProtoBuf BodyBinding = protobufBinding{}
	Plain    BodyBinding = plainBinding{}
)

// Default returns the binding for the given method and content type.
func Default(method, contentType string) Binding {
	if method == http.MethodGet {
		return Plain
	}

	switch contentType {
	case MIMEXML, MIMEXML2:
		return XML
	case MIMEPROTOBUF:
		return ProtoBuf
	case MIMEMSGPACK, MIMEMSGPACK2:
		return MsgPack
	case MIMEYAML, MIMEYAML2:
		return YAML
	case MIMETOML:
		return TOML
	default:
		return JSON
	}
}
