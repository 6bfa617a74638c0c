package config

import (
	"reflect"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"go.viam.com/utils"
)

// Validator is implemented by configs that can check themselves. path locates the config in
// the robot file and is used in error messages.
type Validator interface {
	Validate(path string) error
}

// TransformAttributeMapToStruct uses an attribute map to transform attributes to the prescribed
// format. T may be a struct or a pointer to one. Unknown keys are returned as an error.
func TransformAttributeMapToStruct[T any](attributes AttributeMap) (T, error) {
	var out T
	var forResult interface{}

	toT := reflect.TypeOf(out)
	if toT == nil {
		return out, errors.New("cannot transform attributes into an interface type")
	}
	if toT.Kind() == reflect.Ptr {
		// needs to be allocated then
		var ok bool
		out, ok = reflect.New(toT.Elem()).Interface().(T)
		if !ok {
			return out, errors.Errorf("failed to allocate default config type %T", out)
		}
		forResult = out
	} else {
		forResult = &out
	}

	var md mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           forResult,
		Metadata:         &md,
		WeaklyTypedInput: false,
		Squash:           true,
	})
	if err != nil {
		return out, err
	}
	if err := decoder.Decode(map[string]interface{}(attributes)); err != nil {
		return out, err
	}
	if len(md.Unused) != 0 {
		sort.Strings(md.Unused)
		return out, errors.Errorf("unknown attributes: %s", strings.Join(md.Unused, ", "))
	}
	return out, nil
}

// DecodeAttributes transforms attributes into T and then validates the result when T, or a
// pointer to T, implements Validator. Decoding failures are reported against path.
func DecodeAttributes[T any](path string, attributes AttributeMap) (T, error) {
	out, err := TransformAttributeMapToStruct[T](attributes)
	if err != nil {
		return out, utils.NewConfigValidationError(path, err)
	}

	var asAny interface{} = out
	if _, ok := asAny.(Validator); !ok {
		asAny = &out
	}
	if v, ok := asAny.(Validator); ok {
		if err := v.Validate(path); err != nil {
			return out, err
		}
	}
	return out, nil
}
