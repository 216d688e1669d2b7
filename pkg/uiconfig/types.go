// Package uiconfig loads page-layout overlay documents (JSON or YAML) and
// applies them to object schemas: section definitions, field placement and
// ordering, label and visibility overrides.
package uiconfig

// Store keeps parsed overlay documents keyed by object name. Treat it as
// immutable after loading.
type Store struct {
	objects map[string]ObjectConfig
}

// ObjectConfig is the overlay for one object's page.
type ObjectConfig struct {
	Object   string
	Source   string
	Sections []SectionConfig
	Fields   map[string]FieldConfig
}

// SectionConfig declares or overrides a section. Order defaults to the
// declaration index when omitted.
type SectionConfig struct {
	ID       string `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Order    *int   `json:"order,omitempty" yaml:"order,omitempty"`
	Expanded *bool  `json:"expanded,omitempty" yaml:"expanded,omitempty"`
	Visible  *bool  `json:"visible,omitempty" yaml:"visible,omitempty"`
}

// FieldConfig customises a single field. Pointer fields distinguish "not
// set" from explicit false/zero overrides.
type FieldConfig struct {
	Section  string   `json:"section,omitempty" yaml:"section,omitempty"`
	Order    *int     `json:"order,omitempty" yaml:"order,omitempty"`
	Label    string   `json:"label,omitempty" yaml:"label,omitempty"`
	Visible  *bool    `json:"visible,omitempty" yaml:"visible,omitempty"`
	Required *bool    `json:"required,omitempty" yaml:"required,omitempty"`
	Options  []string `json:"options,omitempty" yaml:"options,omitempty"`
}

// Object returns the overlay for the supplied object name.
func (s *Store) Object(name string) (ObjectConfig, bool) {
	if s == nil {
		return ObjectConfig{}, false
	}
	cfg, ok := s.objects[name]
	return cfg, ok
}

// Empty reports whether the store holds any overlays.
func (s *Store) Empty() bool {
	return s == nil || len(s.objects) == 0
}
