package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for shallow merge.
const (
	keyOutput         = "output"
	keyLogging        = "logging"
	keyClassification = "classification"
	keyOffsets        = "offsets"
	keyData           = "data"
	keyServe          = "serve"
)

// knownTopLevelKeys lists the YAML keys that correspond to exported Config fields.
// Keys not in this list are silently ignored during merge.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var knownTopLevelKeys = map[string]bool{
	keyOutput:         true,
	keyLogging:        true,
	keyClassification: true,
	keyOffsets:        true,
	keyData:           true,
	keyServe:          true,
}

// ShallowMergeYAML loads a YAML file and merges its top-level keys onto
// the target Config. Keys present in the overlay replace entire sections
// in the target. Keys absent in the overlay are left unchanged.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]interface{}
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	// Empty or comment-only file: nothing to merge.
	if len(overlay) == 0 {
		return nil
	}

	for key, value := range overlay {
		if !knownTopLevelKeys[key] {
			continue
		}

		// Re-marshal the single section so we can unmarshal it onto the
		// strongly-typed target field.
		sectionBytes, marshalErr := yaml.Marshal(value)
		if marshalErr != nil {
			return fmt.Errorf("re-marshalling overlay section %q: %w", key, marshalErr)
		}

		if err = unmarshalSection(target, key, sectionBytes); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}

	return nil
}

// unmarshalSection decodes data into a fresh zero value of the section named
// key and assigns it, so a section in the overlay replaces the whole target
// section.
func unmarshalSection(target *Config, key string, data []byte) error {
	switch key {
	case keyOutput:
		return decodeInto(data, &target.Output)
	case keyLogging:
		return decodeInto(data, &target.Logging)
	case keyClassification:
		return decodeInto(data, &target.Classification)
	case keyOffsets:
		return decodeInto(data, &target.Offsets)
	case keyData:
		return decodeInto(data, &target.Data)
	case keyServe:
		return decodeInto(data, &target.Serve)
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
}

func decodeInto[T any](data []byte, dst *T) error {
	var v T
	if err := yaml.Unmarshal(data, &v); err != nil {
		return err
	}
	*dst = v
	return nil
}
