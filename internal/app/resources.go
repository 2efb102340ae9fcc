package app

import (
	"fmt"

	"github.com/trouvaiilx/arcane-survivors/internal/config"
	"github.com/trouvaiilx/arcane-survivors/internal/defs"
)

// LoadResources reads the catalog and tuning files named by the shells'
// flags. Empty paths select the embedded catalog and the default tuning.
func LoadResources(catalogPath, configPath string) (*defs.Catalog, *config.SimConfig, error) {
	var (
		catalog *defs.Catalog
		err     error
	)
	if catalogPath == "" {
		catalog, err = defs.DefaultCatalog()
	} else {
		catalog, err = defs.LoadCatalog(catalogPath)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	cfg := config.DefaultSimConfig()
	if configPath != "" {
		if cfg, err = config.LoadSimConfig(configPath); err != nil {
			return nil, nil, err
		}
	}
	return catalog, &cfg, nil
}
