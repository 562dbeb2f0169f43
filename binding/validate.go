package binding

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

// Validator checks decoded values against their `binding` struct tags.
var Validator = validator.New(validator.WithRequiredStructEnabled(), func(v *validator.Validate) {
	v.SetTagName("binding")
})

func validate(obj any) error {
	if obj == nil {
		return nil
	}

	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	return Validator.Struct(obj)
}
