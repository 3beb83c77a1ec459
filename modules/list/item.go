package list

import (
	"sync"
	"time"
)

// Item is a single list entry. Text is stored already sanitized; the ID is
// immutable for the item's lifetime.
type Item struct {
	ID           string    `json:"id"`
	Text         string    `json:"text"`
	CreatedAt    time.Time `json:"created_at"`
	LastModified time.Time `json:"last_modified"`
}

// Store holds items in process memory, preserving insertion order. Nothing
// is persisted; the list vanishes with the process.
type Store struct {
	mu    sync.RWMutex
	items map[string]Item
	order []string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		items: make(map[string]Item),
	}
}

// Add inserts an item. An existing item with the same ID is left untouched
// and false is returned.
func (s *Store) Add(item Item) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[item.ID]; exists {
		return false
	}

	s.items[item.ID] = item
	s.order = append(s.order, item.ID)
	return true
}

// Get returns the item with the given ID.
func (s *Store) Get(id string) (Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	return item, ok
}

// Update replaces the text of an existing item and bumps its LastModified
// timestamp. ID and CreatedAt never change.
func (s *Store) Update(id, text string, at time.Time) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return Item{}, false
	}

	item.Text = text
	item.LastModified = at
	s.items[id] = item
	return item, true
}

// Delete removes the item with the given ID.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false
	}

	delete(s.items, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// All returns the items in insertion order.
func (s *Store) All() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}

// Len returns the number of stored items.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
