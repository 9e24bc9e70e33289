package patch

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/synaptecltd/wavetable"
)

// Patch is a configured wavetable generator that can be stored and recalled by ID.
type Patch struct {
	wavetable.Generator

	Off bool // true: patch is skipped when rendering

	id uuid.UUID // set from Params.ID or generated
}

// Parameters used to request a patch. These map onto the fields of Patch.
type Params struct {
	ID          uuid.UUID `yaml:"ID" mapstructure:"ID"`                   // identity of the patch, generated if empty
	Shape       string    `yaml:"Shape" mapstructure:"Shape"`             // name of the wave shape: sine, square, sawtooth or triangle
	Approximate bool      `yaml:"Approximate" mapstructure:"Approximate"` // fill sine tables with the fast approximation, default false
	Off         bool      `yaml:"Off" mapstructure:"Off"`                 // true: patch deactivated, false: activated
}

// Returns a Patch pointer with the requested parameters, checking for invalid values.
func NewPatch(params Params) (*Patch, error) {
	patch := &Patch{}

	// Invalid values checked by setters
	if err := patch.SetShapeByName(params.Shape); err != nil {
		return nil, err
	}
	if err := patch.SetApproximate(params.Approximate); err != nil {
		return nil, err
	}

	// Fields that can never be invalid set directly
	patch.Off = params.Off
	patch.id = params.ID
	if patch.id == uuid.Nil {
		patch.id = uuid.New()
	}

	return patch, nil
}

// Initialise the internal fields of Patch when it is unmarshalled from yaml.
func (p *Patch) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var yamlEntry map[string]interface{}
	if err := unmarshal(&yamlEntry); err != nil {
		return err
	}

	// This performs checking for invalid values
	patch, err := createPatchFromYamlEntry(yamlEntry)
	if err != nil {
		return err
	}

	// Copy fields to p
	*p = *patch

	return nil
}

// Setters

// Sets the shape of the patch by looking up its name.
func (p *Patch) SetShapeByName(name string) error {
	if name == "" {
		return errors.New("patch shape is required")
	}
	shape, err := wavetable.ParseShape(name)
	if err != nil {
		return fmt.Errorf("patch: %w", err)
	}
	p.Shape = shape
	return nil
}

// Enables the fast sine approximation. Only valid for sine patches.
func (p *Patch) SetApproximate(approximate bool) error {
	if approximate && p.Shape != wavetable.Sine {
		return fmt.Errorf("approximation is only available for Sine, not %s", p.Shape)
	}
	p.Approximate = approximate
	return nil
}

// Getters

// Returns the identity of the patch.
func (p *Patch) GetID() uuid.UUID {
	return p.id
}
