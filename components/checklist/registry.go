package checklist

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ettle/strcase"
)

// CatalogHook lets packages extend the catalogs during init().
type CatalogHook func(reg *Registry) error

var (
	globalHookMu sync.Mutex
	globalHooks  []CatalogHook
)

// RegisterCatalogHook registers a hook executed against new registries.
func RegisterCatalogHook(h CatalogHook) {
	globalHookMu.Lock()
	defer globalHookMu.Unlock()
	globalHooks = append(globalHooks, h)
}

// Registry implements CatalogRegistry. Entries keep their insertion order.
type Registry struct {
	mu       sync.RWMutex
	funnels  orderedCatalog
	features orderedCatalog
}

type orderedCatalog struct {
	entries []CatalogEntry
	index   map[string]int
}

// NewRegistry builds a registry seeded with the default catalogs and applies global hooks.
func NewRegistry() *Registry {
	reg := NewEmptyRegistry()
	reg.registerDefaults()
	_ = reg.ApplyHooks()
	return reg
}

// NewEmptyRegistry builds a registry without any entries.
func NewEmptyRegistry() *Registry {
	return &Registry{
		funnels:  orderedCatalog{index: map[string]int{}},
		features: orderedCatalog{index: map[string]int{}},
	}
}

func (r *Registry) registerDefaults() {
	for _, entry := range DefaultFunnels() {
		_ = r.RegisterFunnel(entry)
	}
	for _, entry := range DefaultFeatures() {
		_ = r.RegisterFeature(entry)
	}
}

// ApplyHooks executes registered catalog hooks.
func (r *Registry) ApplyHooks() error {
	globalHookMu.Lock()
	defer globalHookMu.Unlock()
	for _, hook := range globalHooks {
		if err := hook(r); err != nil {
			return err
		}
	}
	return nil
}

// RegisterFunnel appends a funnel entry to the funnel catalog.
func (r *Registry) RegisterFunnel(entry CatalogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.funnels.add(normalizeEntry(entry), r.features)
}

// RegisterFeature appends a feature entry to the feature catalog.
func (r *Registry) RegisterFeature(entry CatalogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.features.add(normalizeEntry(entry), r.funnels)
}

// Funnels returns the funnel catalog in insertion order.
func (r *Registry) Funnels() []CatalogEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]CatalogEntry{}, r.funnels.entries...)
}

// Features returns the feature catalog in insertion order.
func (r *Registry) Features() []CatalogEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]CatalogEntry{}, r.features.entries...)
}

// Funnel fetches a funnel entry by name.
func (r *Registry) Funnel(name string) (CatalogEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.funnels.get(name)
}

// Feature fetches a feature entry by name.
func (r *Registry) Feature(name string) (CatalogEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.features.get(name)
}

// Reset drops every entry from both catalogs.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funnels = orderedCatalog{index: map[string]int{}}
	r.features = orderedCatalog{index: map[string]int{}}
}

// Entry looks up an entry in the catalog selected by kind.
func Entry(reg CatalogRegistry, kind EntryKind, name string) (CatalogEntry, error) {
	var (
		entry CatalogEntry
		ok    bool
	)
	switch kind {
	case KindFunnel:
		entry, ok = reg.Funnel(name)
	case KindFeature:
		entry, ok = reg.Feature(name)
	}
	if !ok {
		return CatalogEntry{}, fmt.Errorf("%w: %s %q", ErrUnknownEntry, kind, name)
	}
	return entry, nil
}

// Selection keys are entry names, so a name may only live in one catalog.
func (c *orderedCatalog) add(entry CatalogEntry, other orderedCatalog) error {
	if entry.Name == "" {
		return fmt.Errorf("checklist: catalog entry name is required")
	}
	if _, exists := c.index[entry.Name]; exists {
		return fmt.Errorf("checklist: catalog entry %q already registered", entry.Name)
	}
	if _, exists := other.index[entry.Name]; exists {
		return fmt.Errorf("checklist: catalog entry %q already registered in the other catalog", entry.Name)
	}
	c.index[entry.Name] = len(c.entries)
	c.entries = append(c.entries, entry)
	return nil
}

func (c orderedCatalog) get(name string) (CatalogEntry, bool) {
	idx, ok := c.index[name]
	if !ok {
		return CatalogEntry{}, false
	}
	return c.entries[idx], true
}

func normalizeEntry(entry CatalogEntry) CatalogEntry {
	entry.Name = strings.TrimSpace(entry.Name)
	entry.Description = strings.TrimSpace(entry.Description)
	if entry.Code == "" && entry.Name != "" {
		entry.Code = strcase.ToKebab(entry.Name)
	}
	return entry
}
