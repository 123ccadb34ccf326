package checklist

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	manifestVersionV1 = "1"
	// ManifestVersion exposes the current manifest format version for tooling.
	ManifestVersion = manifestVersionV1
)

// CatalogManifestDocument models a YAML manifest describing both catalogs.
type CatalogManifestDocument struct {
	Version  string         `json:"version" yaml:"version"`
	Name     string         `json:"name,omitempty" yaml:"name,omitempty"`
	Funnels  []CatalogEntry `json:"funnels" yaml:"funnels"`
	Features []CatalogEntry `json:"features" yaml:"features"`
	Source   string         `json:"-" yaml:"-"`
}

// LoadManifestFile reads a manifest from disk and replaces the registry
// catalogs with its entries.
func (r *Registry) LoadManifestFile(path string) (*CatalogManifestDocument, error) {
	doc, err := ReadManifest(path)
	if err != nil {
		return nil, err
	}
	if err := r.LoadManifestDocument(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// LoadManifestDocument replaces the registry catalogs with the manifest
// entries. The registry is left untouched when an entry fails to register.
func (r *Registry) LoadManifestDocument(doc *CatalogManifestDocument) error {
	if doc == nil {
		return errors.New("checklist: manifest document is nil")
	}
	staged := NewEmptyRegistry()
	for _, entry := range doc.Funnels {
		if err := staged.RegisterFunnel(entry); err != nil {
			return fmt.Errorf("checklist: register funnel %q from %s: %w", entry.Name, doc.Source, err)
		}
	}
	for _, entry := range doc.Features {
		if err := staged.RegisterFeature(entry); err != nil {
			return fmt.Errorf("checklist: register feature %q from %s: %w", entry.Name, doc.Source, err)
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funnels = staged.funnels
	r.features = staged.features
	return nil
}

// ManifestFromRegistry captures the active catalogs as a manifest document.
func ManifestFromRegistry(reg CatalogRegistry) *CatalogManifestDocument {
	return &CatalogManifestDocument{
		Version:  ManifestVersion,
		Funnels:  reg.Funnels(),
		Features: reg.Features(),
	}
}

// ReadManifest loads a manifest file from disk without registering it.
func ReadManifest(path string) (*CatalogManifestDocument, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("checklist: open manifest %s: %w", path, err)
	}
	defer f.Close()
	doc, err := DecodeManifest(f)
	if err != nil {
		return nil, fmt.Errorf("checklist: decode manifest %s: %w", path, err)
	}
	doc.Source = path
	return doc, nil
}

// DecodeManifest reads a manifest from any reader.
func DecodeManifest(r io.Reader) (*CatalogManifestDocument, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var doc CatalogManifestDocument
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("checklist: manifest is empty")
		}
		return nil, fmt.Errorf("checklist: parse manifest: %w", err)
	}
	doc.applyDefaults()
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// EncodeManifest writes the manifest as YAML.
func EncodeManifest(w io.Writer, doc *CatalogManifestDocument) error {
	if doc == nil {
		return errors.New("checklist: manifest document is nil")
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("checklist: encode manifest: %w", err)
	}
	return encoder.Close()
}

// Validate ensures the manifest satisfies required fields.
func (doc *CatalogManifestDocument) Validate() error {
	if doc.Version != manifestVersionV1 {
		return fmt.Errorf("checklist: unsupported manifest version %q", doc.Version)
	}
	if len(doc.Funnels) == 0 {
		return fmt.Errorf("checklist: manifest declares no funnels")
	}
	seen := make(map[string]string, len(doc.Funnels)+len(doc.Features))
	check := func(kind string, entries []CatalogEntry) error {
		for idx, entry := range entries {
			if entry.Name == "" {
				return fmt.Errorf("checklist: manifest %s at index %d is missing name", kind, idx)
			}
			if prev, exists := seen[entry.Name]; exists {
				return fmt.Errorf("checklist: manifest %s %q duplicates a %s", kind, entry.Name, prev)
			}
			seen[entry.Name] = kind
		}
		return nil
	}
	if err := check("funnel", doc.Funnels); err != nil {
		return err
	}
	return check("feature", doc.Features)
}

func (doc *CatalogManifestDocument) applyDefaults() {
	for i := range doc.Funnels {
		doc.Funnels[i] = normalizeEntry(doc.Funnels[i])
	}
	for i := range doc.Features {
		doc.Features[i] = normalizeEntry(doc.Features[i])
	}
}
