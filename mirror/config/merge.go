package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// MergeObjects merges objects from a JSON file with inline objects.
//
// Inline objects take precedence over file objects with the same id. File objects
// that are not overridden are appended after the inline ones, in file order.
func (o *Objects) MergeObjects() error {
	if o.FromFile == "" {
		return nil
	}

	data, err := os.ReadFile(o.FromFile)
	if err != nil {
		return fmt.Errorf("reading objects file: %w", err)
	}

	var fileObjects []Object
	if err := json.Unmarshal(data, &fileObjects); err != nil {
		return fmt.Errorf("parsing objects file: %w", err)
	}

	for _, obj := range fileObjects {
		if !o.HasObject(obj.ID) {
			o.Inline = append(o.Inline, obj)
			o.fromFileCount++
		}
	}

	return nil
}

// isFromFile reports whether Inline[i] was merged in from FromFile
func (o *Objects) isFromFile(i int) bool {
	return i >= len(o.Inline)-o.fromFileCount
}

// HasObject checks whether an inline object with the given id exists
func (o *Objects) HasObject(id string) bool {
	for _, obj := range o.Inline {
		if obj.ID == id {
			return true
		}
	}
	return false
}

// LoadAndMerge loads all external files and merges their contents
func (c *SceneConfig) LoadAndMerge() error {
	if err := c.Objects.MergeObjects(); err != nil {
		return fmt.Errorf("merging objects: %w", err)
	}
	return nil
}

// Flattened returns a copy of the config with every merged object inline and no external file references
func (c *SceneConfig) Flattened() *SceneConfig {
	flat := *c
	flat.Objects = Objects{Inline: append([]Object(nil), c.Objects.Inline...)}
	return &flat
}
