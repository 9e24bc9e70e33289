package patch

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Container is a collection of named patches.
type Container map[string]*Patch

// Unmarshals a yaml mapping of patch names to patch parameters into the container.
func (c *Container) UnmarshalYAML(unmarshal func(interface{}) error) error {
	// Temporary structure to unmarshal the yaml file
	var unmarshaledYaml map[string]map[string]interface{}
	if err := unmarshal(&unmarshaledYaml); err != nil {
		return err
	}

	// Decode every entry before touching c so a bad entry leaves it unchanged
	decoded := make(Container, len(unmarshaledYaml))
	for key, yamlEntry := range unmarshaledYaml {
		patch, err := createPatchFromYamlEntry(yamlEntry)
		if err != nil {
			return fmt.Errorf("patch %q: %w", key, err)
		}
		decoded[key] = patch
	}

	if *c == nil {
		*c = decoded
		return nil
	}
	for key, patch := range decoded {
		(*c)[key] = patch
	}
	return nil
}

// Adds a patch to the container keyed by its ID and returns the ID.
func (c Container) AddPatch(patch *Patch) uuid.UUID {
	id := patch.GetID()
	c[id.String()] = patch
	return id
}

// Returns the patch names in sorted order.
func (c Container) Keys() []string {
	keys := make([]string, 0, len(c))
	for key := range c {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
