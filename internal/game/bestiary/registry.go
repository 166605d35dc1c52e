package bestiary

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Registry holds immutable monster templates indexed by ID and mints live
// instances from them.
type Registry struct {
	templates map[string]*Template
}

// NewRegistry returns an empty Registry.
//
// Postcondition: the internal map is initialised.
func NewRegistry() *Registry {
	return &Registry{templates: make(map[string]*Template)}
}

// Register adds tmpl to the registry.
//
// Precondition:  tmpl must not be nil and must pass Validate.
// Postcondition: Template(tmpl.ID) returns tmpl; returns error if tmpl.ID is
// already registered.
func (r *Registry) Register(tmpl *Template) error {
	if _, exists := r.templates[tmpl.ID]; exists {
		return fmt.Errorf("bestiary: template ID %q already registered", tmpl.ID)
	}
	r.templates[tmpl.ID] = tmpl
	return nil
}

// Template returns the Template for the given id and whether it was found.
func (r *Registry) Template(id string) (*Template, bool) {
	t, ok := r.templates[id]
	return t, ok
}

// All returns all registered templates sorted by ID.
//
// Postcondition: len(result) == number of registered templates.
func (r *Registry) All() []*Template {
	out := make([]*Template, 0, len(r.templates))
	for _, t := range r.templates {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of registered templates.
func (r *Registry) Len() int {
	return len(r.templates)
}

// Instantiate mints a live Instance from the named template. When no
// instanceID is supplied, one is synthesized from the template ID and a
// fresh UUID, making collisions improbable within a process run.
//
// Postcondition: the returned Instance is a deep, independent copy with
// CurrentHP == MaxHP; returns an error if templateID is not registered.
func (r *Registry) Instantiate(templateID string, instanceID ...string) (*Instance, error) {
	tmpl, ok := r.templates[templateID]
	if !ok {
		return nil, fmt.Errorf("bestiary: template %q not found", templateID)
	}
	id := ""
	if len(instanceID) > 0 {
		id = instanceID[0]
	}
	if id == "" {
		id = fmt.Sprintf("%s-%s", templateID, uuid.New().String())
	}
	return NewInstance(id, tmpl), nil
}
