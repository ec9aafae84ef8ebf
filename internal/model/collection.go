package model

import (
	"fmt"
	"strings"

	"github.com/rsscripter/rsscripter/pkg/rsscripter"
)

// object is implemented by every schema-model entity that can live in an
// owned collection.
type object interface {
	// ObjectName returns the entity's name as it appears in the catalog.
	ObjectName() string
}

// Set is an insertion-ordered collection of schema-model entities, unique by
// case-insensitive name, exclusively owned by one parent. Adding an item sets
// its parent back-reference; removing it clears the reference. An item
// already owned by a different parent cannot be added — that indicates a
// defect in model population, not recoverable input.
type Set[T object] struct {
	owner  string // parent description for error context, e.g. `schema "public"`
	byName map[string]T
	order  []string
	attach func(T) error
	detach func(T)
}

func newSet[T object](owner string, attach func(T) error, detach func(T)) *Set[T] {
	return &Set[T]{
		owner:  owner,
		byName: make(map[string]T),
		attach: attach,
		detach: detach,
	}
}

func collectionKey(name string) string { return strings.ToLower(name) }

// Add inserts item, preserving insertion order for iteration.
func (s *Set[T]) Add(item T) error {
	key := collectionKey(item.ObjectName())
	if _, exists := s.byName[key]; exists {
		return fmt.Errorf("%w: %q in %s", rsscripter.ErrDuplicateName, item.ObjectName(), s.owner)
	}
	if err := s.attach(item); err != nil {
		return err
	}
	s.byName[key] = item
	s.order = append(s.order, key)
	return nil
}

// Get looks up an item by case-insensitive name.
func (s *Set[T]) Get(name string) (T, bool) {
	item, ok := s.byName[collectionKey(name)]
	return item, ok
}

// Remove deletes the named item and clears its parent back-reference.
// It reports whether the item was present.
func (s *Set[T]) Remove(name string) bool {
	key := collectionKey(name)
	item, ok := s.byName[key]
	if !ok {
		return false
	}
	s.detach(item)
	delete(s.byName, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear removes every item, clearing each parent back-reference.
func (s *Set[T]) Clear() {
	for _, key := range s.order {
		s.detach(s.byName[key])
	}
	s.byName = make(map[string]T)
	s.order = nil
}

// Items returns the members in insertion order. The returned slice is a
// copy; the collection itself is never exposed for mutation.
func (s *Set[T]) Items() []T {
	items := make([]T, 0, len(s.order))
	for _, key := range s.order {
		items = append(items, s.byName[key])
	}
	return items
}

// Len returns the number of members.
func (s *Set[T]) Len() int { return len(s.order) }

// ownershipError builds the already-owned error with full context.
func ownershipError(kind, name, currentOwner, targetOwner string) error {
	return fmt.Errorf("%w: %s %q is owned by %s, cannot add to %s",
		rsscripter.ErrAlreadyOwned, kind, name, currentOwner, targetOwner)
}
