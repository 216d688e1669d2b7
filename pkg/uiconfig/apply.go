package uiconfig

import (
	"fmt"
	"sort"
	"strings"

	"github.com/salesmock/crmkit/pkg/layout"
	"github.com/salesmock/crmkit/pkg/model"
)

// Apply rewrites the object's page layout according to its overlay. Objects
// without an overlay are left untouched. Sections named by the overlay are
// sorted by their configured order and placed ahead of the remaining
// sections, which keep their existing relative order.
func (s *Store) Apply(object *model.Object) error {
	if s == nil || object == nil {
		return nil
	}
	cfg, ok := s.Object(object.Name)
	if !ok {
		return nil
	}

	applySections(object, cfg)
	if err := applyFields(object, cfg); err != nil {
		return err
	}
	return nil
}

func applySections(object *model.Object, cfg ObjectConfig) {
	configured := make(map[string]int, len(cfg.Sections))

	for idx, sectionCfg := range cfg.Sections {
		order := idx
		if sectionCfg.Order != nil {
			order = *sectionCfg.Order
		}
		configured[sectionCfg.ID] = order

		section := findSection(object, sectionCfg.ID)
		if section == nil {
			object.Sections = append(object.Sections, model.Section{
				ID:       sectionCfg.ID,
				Title:    sectionCfg.Title,
				Expanded: true,
				Visible:  true,
			})
			section = &object.Sections[len(object.Sections)-1]
		}
		if sectionCfg.Title != "" {
			section.Title = sectionCfg.Title
		}
		if sectionCfg.Expanded != nil {
			section.Expanded = *sectionCfg.Expanded
		}
		if sectionCfg.Visible != nil {
			section.Visible = *sectionCfg.Visible
		}
	}

	if len(configured) == 0 {
		return
	}
	sort.SliceStable(object.Sections, func(i, j int) bool {
		orderI, okI := configured[object.Sections[i].ID]
		orderJ, okJ := configured[object.Sections[j].ID]
		switch {
		case okI && okJ:
			return orderI < orderJ
		case okI:
			return true
		case okJ:
			return false
		default:
			return false
		}
	})
}

func applyFields(object *model.Object, cfg ObjectConfig) error {
	lay := layout.New(object)

	ids := make([]string, 0, len(cfg.Fields))
	for id := range cfg.Fields {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		fieldCfg := cfg.Fields[id]
		section, field := locateField(object, id)
		if field == nil {
			return fmt.Errorf("uiconfig: object %q (file %s) references unknown field %q", cfg.Object, cfg.Source, id)
		}

		if fieldCfg.Label != "" {
			field.Label = fieldCfg.Label
		}
		if fieldCfg.Visible != nil {
			field.Visible = *fieldCfg.Visible
		}
		if fieldCfg.Required != nil {
			field.Required = *fieldCfg.Required
		}
		if len(fieldCfg.Options) > 0 {
			field.Options = append([]string(nil), fieldCfg.Options...)
		}
		if fieldCfg.Order != nil {
			field.Order = *fieldCfg.Order
		}

		target := strings.TrimSpace(fieldCfg.Section)
		if target != "" && target != section.ID {
			moved := field.Clone()
			if err := lay.RemoveField(section.ID, id); err != nil {
				return fmt.Errorf("uiconfig: object %q: %w", cfg.Object, err)
			}
			destination, err := lay.Section(target)
			if err != nil {
				return fmt.Errorf("uiconfig: object %q (file %s) field %q references unknown section %q", cfg.Object, cfg.Source, id, target)
			}
			if fieldCfg.Order == nil {
				maxOrder := -1
				for _, existing := range destination.Fields {
					if existing.Order > maxOrder {
						maxOrder = existing.Order
					}
				}
				moved.Order = maxOrder + 1
			}
			destination.Fields = append(destination.Fields, moved)
		}
	}
	return nil
}

func findSection(object *model.Object, id string) *model.Section {
	for idx := range object.Sections {
		if object.Sections[idx].ID == id {
			return &object.Sections[idx]
		}
	}
	return nil
}

func locateField(object *model.Object, id string) (*model.Section, *model.Field) {
	for sIdx := range object.Sections {
		section := &object.Sections[sIdx]
		for fIdx := range section.Fields {
			if section.Fields[fIdx].ID == id {
				return section, &section.Fields[fIdx]
			}
		}
	}
	return nil, nil
}
