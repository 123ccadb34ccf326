package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	checklist "github.com/goliatone/go-funnel-checklist/components/checklist"
)

// SeedCatalogInput controls catalog bootstrap.
type SeedCatalogInput struct {
	// ManifestPath replaces the default catalogs when set.
	ManifestPath string
}

// SeedCatalogCommand loads the funnel and feature catalogs into a registry.
type SeedCatalogCommand struct {
	registry  *checklist.Registry
	telemetry Telemetry
}

// NewSeedCatalogCommand wires dependencies.
func NewSeedCatalogCommand(registry *checklist.Registry, telemetry Telemetry) *SeedCatalogCommand {
	return &SeedCatalogCommand{registry: registry, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SeedCatalogInput] = (*SeedCatalogCommand)(nil)

// Execute runs the bootstrap.
func (c *SeedCatalogCommand) Execute(ctx context.Context, msg SeedCatalogInput) error {
	if c.registry == nil {
		return errors.New("seed command requires catalog registry")
	}
	if err := checklist.SeedCatalog(c.registry, msg.ManifestPath); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "checklist.seed", map[string]any{
		"manifest": msg.ManifestPath,
		"funnels":  len(c.registry.Funnels()),
		"features": len(c.registry.Features()),
	})
	return nil
}
