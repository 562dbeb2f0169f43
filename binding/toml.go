package binding

import (
	"net/http"

	"github.com/pelletier/go-toml/v2"

	"github.com/avaruz/relay/tools"
)

type tomlBinding struct{}

func (tomlBinding) Name() string {
	return "toml"
}

func (b tomlBinding) Bind(req *http.Request, obj any) error {
	body, err := tools.ReadAll(req.Body)
	if err != nil {
		return err
	}
	return b.BindBody(body, obj)
}

func (tomlBinding) BindBody(body []byte, obj any) error {
	if err := toml.Unmarshal(body, obj); err != nil {
		return err
	}
	return validate(obj)
}
