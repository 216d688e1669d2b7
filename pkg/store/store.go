// Package store keeps the in-memory objects and their record lists for one
// session. Nothing here persists: state lives only for the process lifetime.
package store

import (
	"errors"
	"fmt"

	"github.com/salesmock/crmkit/pkg/model"
)

var (
	// ErrNotFound signals an unknown object name.
	ErrNotFound = errors.New("store: object not found")
	// ErrOutOfRange signals a record index outside the current list bounds.
	ErrOutOfRange = errors.New("store: record index out of range")
)

// Store owns a set of objects keyed by name, preserving registration order
// for stable object pickers. It is not safe for concurrent use; every
// session gets its own store.
type Store struct {
	objects map[string]*model.Object
	order   []string
}

// New returns an empty store.
func New() *Store {
	return &Store{objects: make(map[string]*model.Object)}
}

// Add registers an object. Re-adding a name replaces the earlier object but
// keeps its position in the name order.
func (s *Store) Add(object *model.Object) {
	if object == nil {
		return
	}
	if _, exists := s.objects[object.Name]; !exists {
		s.order = append(s.order, object.Name)
	}
	s.objects[object.Name] = object
}

// Object returns the object registered under name.
func (s *Store) Object(name string) (*model.Object, error) {
	object, ok := s.objects[name]
	if !ok {
		return nil, fmt.Errorf("object %q: %w", name, ErrNotFound)
	}
	return object, nil
}

// Names lists registered object names in registration order.
func (s *Store) Names() []string {
	return append([]string(nil), s.order...)
}

// Append adds a record to the end of the object's record list.
func (s *Store) Append(name string, record model.Record) error {
	object, err := s.Object(name)
	if err != nil {
		return err
	}
	object.Records = append(object.Records, record)
	return nil
}

// Replace overwrites the record at index with the supplied record. Save is a
// single atomic replace in memory; there are no partial writes.
func (s *Store) Replace(name string, index int, record model.Record) error {
	object, err := s.Object(name)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(object.Records) {
		return fmt.Errorf("replace record %d of %q: %w", index, name, ErrOutOfRange)
	}
	object.Records[index] = record
	return nil
}

// Delete removes the record at index, shifting later records down.
func (s *Store) Delete(name string, index int) error {
	object, err := s.Object(name)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(object.Records) {
		return fmt.Errorf("delete record %d of %q: %w", index, name, ErrOutOfRange)
	}
	object.Records = append(object.Records[:index], object.Records[index+1:]...)
	return nil
}

// Snapshot returns a clone of the record at index for editing. The clone is
// merged back only through Replace on explicit save.
func (s *Store) Snapshot(name string, index int) (model.Record, error) {
	object, err := s.Object(name)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(object.Records) {
		return nil, fmt.Errorf("snapshot record %d of %q: %w", index, name, ErrOutOfRange)
	}
	return object.Records[index].Clone(), nil
}
