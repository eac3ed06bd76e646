package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/vk/behaviortreego/internal/bt"
	"github.com/vk/behaviortreego/internal/bterror"
)

// Registry holds every registered node-type descriptor for one application
// instance, keyed by tag name. A tag may carry several descriptors as long
// as their entity restrictions differ; resolution under a concrete entity
// kind must then single one out.
type Registry struct {
	types map[string][]*bt.TypeDescriptor
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{types: make(map[string][]*bt.TypeDescriptor)}
}

// Register adds a descriptor. Registering the same tag twice under the same
// entity restriction is an error.
func (r *Registry) Register(d *bt.TypeDescriptor) error {
	if d.Name == "" {
		return fmt.Errorf("descriptor has empty tag name")
	}
	for _, existing := range r.types[d.Name] {
		if existing.Entity == d.Entity {
			return fmt.Errorf("node type %q already registered for entity kind %q", d.Name, d.Entity)
		}
	}
	slog.Debug("Registering node type.", "name", d.Name, "category", d.Category.String(), "entity", d.Entity)
	r.types[d.Name] = append(r.types[d.Name], d)
	return nil
}

// MustRegister is Register for wiring done in code, where a duplicate is a
// programmer error.
func (r *Registry) MustRegister(d *bt.TypeDescriptor) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

// Resolve maps a tag to the single descriptor consistent with the given
// entity kind. Zero or multiple matches return *bterror.UnresolvedType; the
// caller decorates it with source position. Resolve performs no I/O.
func (r *Registry) Resolve(tag, entityKind string) (*bt.TypeDescriptor, error) {
	var matches []*bt.TypeDescriptor
	for _, d := range r.types[tag] {
		if d.Entity == "" || d.Entity == entityKind {
			matches = append(matches, d)
		}
	}
	if len(matches) != 1 {
		return nil, &bterror.UnresolvedType{Tag: tag, Entity: entityKind, Matches: len(matches)}
	}
	return matches[0], nil
}

// Types returns every registered descriptor sorted by tag name, then entity
// restriction. Used for validation and start-up logging.
func (r *Registry) Types() []*bt.TypeDescriptor {
	var all []*bt.TypeDescriptor
	for _, ds := range r.types {
		all = append(all, ds...)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Name != all[j].Name {
			return all[i].Name < all[j].Name
		}
		return all[i].Entity < all[j].Entity
	})
	return all
}
