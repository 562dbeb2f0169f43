package binding

import (
	"net/http"

	"github.com/goccy/go-yaml"

	"github.com/avaruz/relay/tools"
)

type yamlBinding struct{}

func (yamlBinding) Name() string {
	return "yaml"
}

func (b yamlBinding) Bind(req *http.Request, obj any) error {
	body, err := tools.ReadAll(req.Body)
	if err != nil {
		return err
	}
	return b.BindBody(body, obj)
}

func (yamlBinding) BindBody(body []byte, obj any) error {
	if err := yaml.Unmarshal(body, obj); err != nil {
		return err
	}
	return validate(obj)
}
