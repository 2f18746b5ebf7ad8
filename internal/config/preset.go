package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset describes a transform sequence applied after extraction: remove,
// then flatten, then rename. Absent sections are skipped.
type Preset struct {
	Parents    []string     `yaml:"parents"`
	RemoveKeys []string     `yaml:"remove_keys"`
	Flatten    *FlattenSpec `yaml:"flatten"`
	Rename     *RenameSpec  `yaml:"rename"`
}

// FlattenSpec configures the flatten transform. Empty keys select the
// "Name"/"Value" defaults.
type FlattenSpec struct {
	NestedKey string `yaml:"nested_key"`
	ValueKey  string `yaml:"value_key"`
}

// RenameSpec configures the rename transform. Table keys are lowercased on
// application. Casing names one of: capitalize, title, upper, lower.
type RenameSpec struct {
	Table  map[string]string `yaml:"table"`
	Casing string            `yaml:"casing"`
}

// LoadPresets reads a YAML file of named presets:
//
//	presets:
//	  invoice:
//	    parents: [header, values]
//	    remove_keys: [meta]
//	    flatten: {}
//	    rename:
//	      table: {price: cost}
//	      casing: capitalize
func LoadPresets(path string) (map[string]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	var file struct {
		Presets map[string]Preset `yaml:"presets"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse presets %s: %w", path, err)
	}
	if len(file.Presets) == 0 {
		return nil, fmt.Errorf("presets %s: no presets defined", path)
	}
	return file.Presets, nil
}

// DemoPreset mirrors the canonical example invocation: drop meta, flatten
// the Name/Value wrappers, rename the pricing keys with capitalization.
func DemoPreset() Preset {
	return Preset{
		Parents:    []string{"header", "values"},
		RemoveKeys: []string{"meta"},
		Flatten:    &FlattenSpec{},
		Rename: &RenameSpec{
			Table: map[string]string{
				"price":    "cost",
				"quantity": "amount",
				"discount": "rebate",
			},
			Casing: "capitalize",
		},
	}
}
