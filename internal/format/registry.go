package format

import (
	"fmt"
	"strings"
	"sync"

	"github.com/vvka-141/mdconv/pkg/mdconv"
)

// Registry maps format names to descriptors, newest first.
//
// Thread Safety:
// All methods are safe for concurrent use. Writers never modify a slice that
// has been handed out; each write installs a fresh slice for the affected name.
type Registry struct {
	mu      sync.RWMutex
	names   []string // first-insertion order
	entries map[string][]*Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string][]*Descriptor),
	}
}

// Add registers d in front of any descriptors already known under its name.
// Identical descriptors are not deduplicated.
func (r *Registry) Add(d *Descriptor) error {
	return r.add(d, false)
}

// Replace registers d as the only descriptor under its name.
func (r *Registry) Replace(d *Descriptor) error {
	return r.add(d, true)
}

func (r *Registry) add(d *Descriptor, replace bool) error {
	if d == nil {
		return fmt.Errorf("%w: cannot register nil descriptor", mdconv.ErrInvalidDescriptor)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := d.Name()
	current, seen := r.entries[key]
	if !seen {
		r.names = append(r.names, key)
	}

	if replace {
		r.entries[key] = []*Descriptor{d}
		return nil
	}

	next := make([]*Descriptor, 0, len(current)+1)
	next = append(next, d)
	next = append(next, current...)
	r.entries[key] = next
	return nil
}

// Count returns the number of descriptors across all names.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, list := range r.entries {
		n += len(list)
	}
	return n
}

// Names returns every registered format name in first-insertion order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// All returns every descriptor: names in first-insertion order, each name's
// descriptors newest first.
func (r *Registry) All() []*Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*Descriptor, 0, len(r.names))
	for _, name := range r.names {
		all = append(all, r.entries[name]...)
	}
	return all
}

// Lookup returns the descriptors registered under name. With an empty version
// every descriptor is returned, newest first. Otherwise the result holds at
// most one descriptor: the newest whose version equals version exactly.
// A miss yields an empty slice.
func (r *Registry) Lookup(name, version string) []*Descriptor {
	r.mu.RLock()
	list := r.entries[name]
	r.mu.RUnlock()

	if version == "" {
		out := make([]*Descriptor, len(list))
		copy(out, list)
		return out
	}

	for _, d := range list {
		if d.Version() == version {
			return []*Descriptor{d}
		}
	}
	return []*Descriptor{}
}

// Latest returns the most recently added descriptor for name, optionally
// restricted to an exact version.
func (r *Registry) Latest(name, version string) (*Descriptor, error) {
	matches := r.Lookup(name, version)
	if len(matches) == 0 {
		if version == "" {
			return nil, fmt.Errorf("%w: %q", mdconv.ErrFormatNotFound, name)
		}
		return nil, fmt.Errorf("%w: %q version %q", mdconv.ErrFormatNotFound, name, version)
	}
	return matches[0], nil
}

func (r *Registry) String() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var b strings.Builder
	n := 0
	for _, name := range r.names {
		n += len(r.entries[name])
	}
	fmt.Fprintf(&b, "Formats (%d):", n)
	for _, name := range r.names {
		versions := make([]string, 0, len(r.entries[name]))
		for _, d := range r.entries[name] {
			versions = append(versions, d.Version())
		}
		fmt.Fprintf(&b, " %s[%s]", name, strings.Join(versions, ", "))
	}
	return b.String()
}
