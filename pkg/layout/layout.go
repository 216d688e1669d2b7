// Package layout maintains the ordered, sectioned field set for one object
// page: visibility toggles, reordering relative to visible neighbours, swaps,
// and the visible-ordered query renderers consume.
//
// The explicit order value on each field is the sole source of display
// order. Slice position only breaks ties between equal order values; nothing
// else may depend on it.
package layout

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/salesmock/crmkit/pkg/model"
)

// Layout owns the sections of a single object page for the duration of a
// session. All operations are synchronous and mutate the underlying object
// in place; none of them ever leaves order values corrupted on failure.
type Layout struct {
	object *model.Object
}

// New wraps the object's sections in a Layout. The layout keeps a reference,
// not a copy; callers wanting isolation clone the object first.
func New(object *model.Object) *Layout {
	return &Layout{object: object}
}

// Object returns the wrapped object.
func (l *Layout) Object() *model.Object {
	return l.object
}

// Sections returns the section list in declaration order.
func (l *Layout) Sections() []model.Section {
	return l.object.Sections
}

// Section returns a pointer to the section with the given id.
func (l *Layout) Section(sectionID string) (*model.Section, error) {
	for idx := range l.object.Sections {
		if l.object.Sections[idx].ID == sectionID {
			return &l.object.Sections[idx], nil
		}
	}
	return nil, fmt.Errorf("section %q: %w", sectionID, ErrNotFound)
}

// Field returns a copy of the field with the given id, searching every
// section.
func (l *Layout) Field(fieldID string) (model.Field, error) {
	_, field, err := l.locate(fieldID)
	if err != nil {
		return model.Field{}, err
	}
	return field.Clone(), nil
}

// SetVisible flips the visibility flag of a field. Order values are never
// touched, so a hidden field re-shown later reappears wherever its stored
// order places it.
func (l *Layout) SetVisible(fieldID string, visible bool) error {
	_, field, err := l.locate(fieldID)
	if err != nil {
		return err
	}
	field.Visible = visible
	return nil
}

// SetRequired flips the required flag of a field.
func (l *Layout) SetRequired(fieldID string, required bool) error {
	_, field, err := l.locate(fieldID)
	if err != nil {
		return err
	}
	field.Required = required
	return nil
}

// SetExpanded expands or collapses a section.
func (l *Layout) SetExpanded(sectionID string, expanded bool) error {
	section, err := l.Section(sectionID)
	if err != nil {
		return err
	}
	section.Expanded = expanded
	return nil
}

// SetSectionVisible shows or hides an entire section.
func (l *Layout) SetSectionVisible(sectionID string, visible bool) error {
	section, err := l.Section(sectionID)
	if err != nil {
		return err
	}
	section.Visible = visible
	return nil
}

// MoveUp exchanges the field's order value with its nearest preceding
// visible neighbour. Hidden fields are transparent to movement. Moving the
// first visible field is a no-op.
func (l *Layout) MoveUp(fieldID string) error {
	return l.move(fieldID, -1)
}

// MoveDown exchanges the field's order value with its nearest following
// visible neighbour. Moving the last visible field is a no-op.
func (l *Layout) MoveDown(fieldID string) error {
	return l.move(fieldID, +1)
}

func (l *Layout) move(fieldID string, direction int) error {
	section, field, err := l.locate(fieldID)
	if err != nil {
		return err
	}
	if !field.Visible {
		return nil
	}

	ordered := orderedIndexes(section.Fields)
	pos := -1
	for seq, idx := range ordered {
		if section.Fields[idx].ID == fieldID {
			pos = seq
			break
		}
	}
	if pos < 0 {
		return fmt.Errorf("field %q: %w", fieldID, ErrNotFound)
	}

	for seq := pos + direction; seq >= 0 && seq < len(ordered); seq += direction {
		neighbour := &section.Fields[ordered[seq]]
		if !neighbour.Visible {
			continue
		}
		field.Order, neighbour.Order = neighbour.Order, field.Order
		return nil
	}
	return nil
}

// Swap exchanges the order values of two fields in the same section. The
// pair is self-inverse: swapping twice restores the original order.
func (l *Layout) Swap(fieldIDA, fieldIDB string) error {
	sectionA, fieldA, err := l.locate(fieldIDA)
	if err != nil {
		return err
	}
	sectionB, fieldB, err := l.locate(fieldIDB)
	if err != nil {
		return err
	}
	if sectionA.ID != sectionB.ID {
		return fmt.Errorf("swap %q with %q: %w", fieldIDA, fieldIDB, ErrCrossSection)
	}
	fieldA.Order, fieldB.Order = fieldB.Order, fieldA.Order
	return nil
}

// VisibleOrdered returns the visible fields of a section sorted ascending by
// order value, stable on ties. The result is a fresh slice of copies; it is
// purely a query.
func (l *Layout) VisibleOrdered(sectionID string) ([]model.Field, error) {
	section, err := l.Section(sectionID)
	if err != nil {
		return nil, err
	}
	ordered := orderedIndexes(section.Fields)
	out := make([]model.Field, 0, len(ordered))
	for _, idx := range ordered {
		if section.Fields[idx].Visible {
			out = append(out, section.Fields[idx].Clone())
		}
	}
	return out, nil
}

// AddSection appends a new expanded, visible section with a generated id and
// returns its id.
func (l *Layout) AddSection(title string) string {
	section := model.Section{
		ID:       uuid.NewString(),
		Title:    title,
		Expanded: true,
		Visible:  true,
	}
	l.object.Sections = append(l.object.Sections, section)
	return section.ID
}

// AddField appends a new visible text field to the section with a generated
// id and an order value after all current members (max existing order + 1,
// or 0 when the section is empty). It returns the new field's id.
func (l *Layout) AddField(sectionID, label string) (string, error) {
	section, err := l.Section(sectionID)
	if err != nil {
		return "", err
	}
	maxOrder := -1
	for _, field := range section.Fields {
		if field.Order > maxOrder {
			maxOrder = field.Order
		}
	}
	order := maxOrder + 1
	field := model.Field{
		ID:      uuid.NewString(),
		Label:   label,
		Type:    model.FieldTypeText,
		Visible: true,
		Order:   order,
	}
	section.Fields = append(section.Fields, field)
	return field.ID, nil
}

// RemoveField deletes the field definition from the section. Record data
// stored under the field's id is left in place (soft orphaning).
func (l *Layout) RemoveField(sectionID, fieldID string) error {
	section, err := l.Section(sectionID)
	if err != nil {
		return err
	}
	for idx := range section.Fields {
		if section.Fields[idx].ID == fieldID {
			section.Fields = append(section.Fields[:idx], section.Fields[idx+1:]...)
			return nil
		}
	}
	return fmt.Errorf("field %q: %w", fieldID, ErrNotFound)
}

func (l *Layout) locate(fieldID string) (*model.Section, *model.Field, error) {
	for sIdx := range l.object.Sections {
		section := &l.object.Sections[sIdx]
		for fIdx := range section.Fields {
			if section.Fields[fIdx].ID == fieldID {
				return section, &section.Fields[fIdx], nil
			}
		}
	}
	return nil, nil, fmt.Errorf("field %q: %w", fieldID, ErrNotFound)
}

// orderedIndexes returns field indexes sorted ascending by order value,
// stable so equal orders keep their slice positions.
func orderedIndexes(fields []model.Field) []int {
	indexes := make([]int, len(fields))
	for idx := range fields {
		indexes[idx] = idx
	}
	sort.SliceStable(indexes, func(i, j int) bool {
		return fields[indexes[i]].Order < fields[indexes[j]].Order
	})
	return indexes
}
