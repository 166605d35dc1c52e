package item

import (
	"fmt"
	"sort"
)

// Registry holds all loaded weapon, armor, generic, and magic item
// definitions indexed by ID. IDs are unique across all four kinds.
type Registry struct {
	weapons map[string]*Weapon
	armors  map[string]*Armor
	items   map[string]*Item
	magic   map[string]*MagicItem
}

// NewRegistry returns an empty Registry.
//
// Postcondition: all internal maps are initialised.
func NewRegistry() *Registry {
	return &Registry{
		weapons: make(map[string]*Weapon),
		armors:  make(map[string]*Armor),
		items:   make(map[string]*Item),
		magic:   make(map[string]*MagicItem),
	}
}

// Has reports whether id is registered under any kind.
func (r *Registry) Has(id string) bool {
	if _, ok := r.weapons[id]; ok {
		return true
	}
	if _, ok := r.armors[id]; ok {
		return true
	}
	if _, ok := r.items[id]; ok {
		return true
	}
	_, ok := r.magic[id]
	return ok
}

// RegisterWeapon adds w to the registry.
//
// Precondition:  w must not be nil.
// Postcondition: Weapon(w.ID) returns w; returns error if w.ID is already
// registered under any kind.
func (r *Registry) RegisterWeapon(w *Weapon) error {
	if r.Has(w.ID) {
		return fmt.Errorf("item: ID %q already registered", w.ID)
	}
	r.weapons[w.ID] = w
	return nil
}

// RegisterArmor adds a to the registry.
//
// Precondition:  a must not be nil.
// Postcondition: Armor(a.ID) returns a; returns error if a.ID is already
// registered under any kind.
func (r *Registry) RegisterArmor(a *Armor) error {
	if r.Has(a.ID) {
		return fmt.Errorf("item: ID %q already registered", a.ID)
	}
	r.armors[a.ID] = a
	return nil
}

// RegisterItem adds i to the registry.
//
// Precondition:  i must not be nil.
// Postcondition: Item(i.ID) returns (i, true); returns error if i.ID is
// already registered under any kind.
func (r *Registry) RegisterItem(i *Item) error {
	if r.Has(i.ID) {
		return fmt.Errorf("item: ID %q already registered", i.ID)
	}
	r.items[i.ID] = i
	return nil
}

// RegisterMagic adds m to the registry.
//
// Precondition:  m must not be nil.
// Postcondition: Magic(m.ID) returns (m, true); returns error if m.ID is
// already registered under any kind.
func (r *Registry) RegisterMagic(m *MagicItem) error {
	if r.Has(m.ID) {
		return fmt.Errorf("item: ID %q already registered", m.ID)
	}
	r.magic[m.ID] = m
	return nil
}

// Weapon returns the Weapon for the given id and whether it was found.
func (r *Registry) Weapon(id string) (*Weapon, bool) {
	w, ok := r.weapons[id]
	return w, ok
}

// Armor returns the Armor for the given id and whether it was found.
func (r *Registry) Armor(id string) (*Armor, bool) {
	a, ok := r.armors[id]
	return a, ok
}

// Item returns the generic Item for the given id and whether it was found.
func (r *Registry) Item(id string) (*Item, bool) {
	i, ok := r.items[id]
	return i, ok
}

// Magic returns the MagicItem for the given id and whether it was found.
func (r *Registry) Magic(id string) (*MagicItem, bool) {
	m, ok := r.magic[id]
	return m, ok
}

// IDs returns every registered ID across all kinds, sorted.
//
// Postcondition: len(result) == Len().
func (r *Registry) IDs() []string {
	out := make([]string, 0, r.Len())
	for id := range r.weapons {
		out = append(out, id)
	}
	for id := range r.armors {
		out = append(out, id)
	}
	for id := range r.items {
		out = append(out, id)
	}
	for id := range r.magic {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Len returns the total number of registered definitions.
func (r *Registry) Len() int {
	return len(r.weapons) + len(r.armors) + len(r.items) + len(r.magic)
}
