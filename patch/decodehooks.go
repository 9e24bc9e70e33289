package patch

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Returns a decodeHook function that can be used to unmarshal patches using mapstructure.
// This supports configuration solutions like spf13/viper that use mapstructure to unmarshal yaml files.
func GetDecodeHook() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != reflect.TypeOf(Patch{}) {
			return data, nil
		}
		// Already decoded, e.g. when decoding through a *Patch
		if _, ok := data.(*Patch); ok {
			return data, nil
		}
		return createPatchFromYamlEntry(data)
	}
}

// Creates a patch from a yaml entry, using the constructor for its error checking.
func createPatchFromYamlEntry(yamlEntry interface{}) (*Patch, error) {
	var params Params
	if err := decodeParams(&params, yamlEntry); err != nil {
		return nil, err
	}
	return NewPatch(params)
}

// Use mapstructure to unmarshal data into patch params. Keys are matched
// case-insensitively because some yaml parsers convert to lower case.
func decodeParams[T any](params *T, data interface{}) error {
	m, err := toStringMap(data)
	if err != nil {
		return err
	}

	decoderConfig := &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(), // parses uuids
		),
		ErrorUnused: true,
		Result:      params,
	}
	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return err
	}
	return decoder.Decode(m)
}

// yaml.v2 decodes nested mappings with interface{} keys; mapstructure wants string keys.
func toStringMap(data interface{}) (map[string]interface{}, error) {
	switch m := data.(type) {
	case map[string]interface{}:
		return m, nil
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(m))
		for k, v := range m {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("patch field name is not a string: %v", k)
			}
			out[key] = v
		}
		return out, nil
	case nil:
		return map[string]interface{}{}, nil
	default:
		return nil, fmt.Errorf("expected map[string]interface{}, got %T", data)
	}
}
