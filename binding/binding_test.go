package binding

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type account struct {
	Name  string `json:"name" yaml:"name" toml:"name" binding:"required"`
	Email string `json:"email" yaml:"email" toml:"email" binding:"omitempty,email"`
}

func TestDefaultSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		method      string
		contentType string
		want        string
	}{
		{name: "get is plain", method: http.MethodGet, contentType: MIMEJSON, want: "plain"},
		{name: "json", method: http.MethodPost, contentType: MIMEJSON, want: "json"},
		{name: "unknown defaults to json", method: http.MethodPost, contentType: "application/octet-stream", want: "json"},
		{name: "xml", method: http.MethodPost, contentType: MIMEXML, want: "xml"},
		{name: "text xml", method: http.MethodPost, contentType: MIMEXML2, want: "xml"},
		{name: "yaml", method: http.MethodPost, contentType: MIMEYAML, want: "yaml"},
		{name: "toml", method: http.MethodPost, contentType: MIMETOML, want: "toml"},
		{name: "msgpack", method: http.MethodPost, contentType: MIMEMSGPACK, want: "msgpack"},
		{name: "protobuf", method: http.MethodPost, contentType: MIMEPROTOBUF, want: "protobuf"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Default(tt.method, tt.contentType).Name())
		})
	}
}

func TestJSONBinding(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"ada","email":"ada@example.com"}`))
	var a account
	require.NoError(t, JSON.Bind(req, &a))
	assert.Equal(t, "ada", a.Name)
	assert.Equal(t, "ada@example.com", a.Email)
}

func TestJSONBindingValidation(t *testing.T) {
	t.Parallel()

	var a account
	err := JSON.BindBody([]byte(`{"email":"nope"}`), &a)
	require.Error(t, err)
}

func TestYAMLBinding(t *testing.T) {
	t.Parallel()

	var a account
	require.NoError(t, YAML.BindBody([]byte("name: ada\n"), &a))
	assert.Equal(t, "ada", a.Name)
}

func TestTOMLBinding(t *testing.T) {
	t.Parallel()

	var a account
	require.NoError(t, TOML.BindBody([]byte("name = \"ada\"\n"), &a))
	assert.Equal(t, "ada", a.Name)
}

func TestPlainBinding(t *testing.T) {
	t.Parallel()

	var s string
	require.NoError(t, Plain.BindBody([]byte("hello"), &s))
	assert.Equal(t, "hello", s)

	var b []byte
	require.NoError(t, Plain.BindBody([]byte("raw"), &b))
	assert.Equal(t, []byte("raw"), b)
}

func TestValidateSkipsNonStructs(t *testing.T) {
	t.Parallel()

	var m map[string]any
	require.NoError(t, JSON.BindBody([]byte(`{"k":"v"}`), &m))
	assert.Equal(t, "v", m["k"])
}
