package uiconfig

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFS walks the provided filesystem and parses every JSON/YAML overlay
// file it finds. When fsys is nil or holds no overlay files, the returned
// store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{objects: make(map[string]ObjectConfig)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isOverlayFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("uiconfig: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		name := strings.TrimSpace(doc.Object)
		if name == "" {
			return fmt.Errorf("uiconfig: file %s does not name an object", path)
		}
		if _, exists := store.objects[name]; exists {
			return fmt.Errorf("uiconfig: duplicate overlay for object %q (file %s)", name, path)
		}

		cfg, err := normaliseDocument(doc, name, path)
		if err != nil {
			return err
		}
		store.objects[name] = cfg
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

type documentFile struct {
	Object   string                 `json:"object" yaml:"object"`
	Sections []SectionConfig        `json:"sections" yaml:"sections"`
	Fields   map[string]FieldConfig `json:"fields" yaml:"fields"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("uiconfig: file %s is empty", source)
	}

	var doc documentFile
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("uiconfig: parse %s: %w", source, err)
	}
	return doc, nil
}

func normaliseDocument(doc documentFile, name, source string) (ObjectConfig, error) {
	cfg := ObjectConfig{
		Object: name,
		Source: source,
		Fields: make(map[string]FieldConfig, len(doc.Fields)),
	}

	seen := make(map[string]struct{}, len(doc.Sections))
	for _, section := range doc.Sections {
		id := strings.TrimSpace(section.ID)
		if id == "" {
			return ObjectConfig{}, fmt.Errorf("uiconfig: object %q (file %s) defines a section without id", name, source)
		}
		if _, exists := seen[id]; exists {
			return ObjectConfig{}, fmt.Errorf("uiconfig: object %q (file %s) defines duplicate section id %q", name, source, id)
		}
		seen[id] = struct{}{}
		section.ID = id
		cfg.Sections = append(cfg.Sections, section)
	}

	for fieldID, field := range doc.Fields {
		id := strings.TrimSpace(fieldID)
		if id == "" {
			return ObjectConfig{}, fmt.Errorf("uiconfig: object %q (file %s) defines an empty field id", name, source)
		}
		if target := strings.TrimSpace(field.Section); target != "" && len(seen) > 0 {
			if _, exists := seen[target]; !exists {
				return ObjectConfig{}, fmt.Errorf("uiconfig: object %q (file %s) field %q references unknown section %q", name, source, id, target)
			}
		}
		cfg.Fields[id] = field
	}

	return cfg, nil
}

func isOverlayFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
