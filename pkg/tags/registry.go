package tags

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Renderer renders the native markup for one control kind.
type Renderer func(h *Helper, req Request) (string, error)

// Registry maps control kinds to renderers. Hosts can register extra kinds
// (for example "email") or replace a built-in one.
type Registry struct {
	mu        sync.RWMutex
	renderers map[Kind]Renderer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[Kind]Renderer)}
}

// NewDefaultRegistry returns a registry holding every built-in control.
func NewDefaultRegistry() *Registry {
	registry := NewRegistry()
	registry.MustRegister(KindText, renderTextInput("text"))
	registry.MustRegister(KindPassword, renderPassword)
	registry.MustRegister(KindFile, renderFile)
	registry.MustRegister(KindHidden, renderTextInput("hidden"))
	registry.MustRegister(KindTextArea, renderTextArea)
	registry.MustRegister(KindCheckbox, renderCheckbox)
	registry.MustRegister(KindRadio, renderRadio)
	registry.MustRegister(KindSelect, renderSelect)
	registry.MustRegister(KindCountry, renderCountrySelect)
	registry.MustRegister(KindDate, renderDateSelect)
	registry.MustRegister(KindDateTime, renderDateTimeSelect)
	return registry
}

// Clone returns an independent copy.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := NewRegistry()
	for kind, fn := range r.renderers {
		cloned.renderers[kind] = fn
	}
	return cloned
}

// Register associates fn with kind, replacing any existing entry.
func (r *Registry) Register(kind Kind, fn Renderer) error {
	if kind = normalizeKind(kind); kind == "" {
		return fmt.Errorf("tags: control kind is required")
	}
	if fn == nil {
		return fmt.Errorf("tags: renderer for %q is nil", kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.renderers[kind] = fn
	return nil
}

// MustRegister mirrors Register but panics on error.
func (r *Registry) MustRegister(kind Kind, fn Renderer) {
	if err := r.Register(kind, fn); err != nil {
		panic(err)
	}
}

// Renderer looks up the renderer for kind.
func (r *Registry) Renderer(kind Kind) (Renderer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.renderers[normalizeKind(kind)]
	return fn, ok
}

// Kinds returns the registered kinds, sorted.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]Kind, 0, len(r.renderers))
	for kind := range r.renderers {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	return kinds
}

func normalizeKind(kind Kind) Kind {
	return Kind(strings.ToLower(strings.TrimSpace(string(kind))))
}
