package checklist

import (
	"errors"
	"fmt"
)

// SeedCatalog fills the registry with the default catalogs, or with the
// manifest at manifestPath when one is given.
func SeedCatalog(reg *Registry, manifestPath string) error {
	if reg == nil {
		return errors.New("checklist: registry is required to seed catalogs")
	}
	if manifestPath != "" {
		if _, err := reg.LoadManifestFile(manifestPath); err != nil {
			return err
		}
		return nil
	}
	return reg.LoadManifestDocument(DefaultManifest())
}

// DefaultManifest returns the built-in catalogs as a manifest document.
func DefaultManifest() *CatalogManifestDocument {
	return &CatalogManifestDocument{
		Version:  ManifestVersion,
		Name:     "default",
		Funnels:  DefaultFunnels(),
		Features: DefaultFeatures(),
		Source:   "defaults",
	}
}

// CatalogCounts reports the size of both catalogs for logging.
func CatalogCounts(reg CatalogRegistry) string {
	return fmt.Sprintf("%d funnels, %d features", len(reg.Funnels()), len(reg.Features()))
}
