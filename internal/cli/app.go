package cli

import (
	"errors"
	"fmt"

	"github.com/pankajredekar/shoeinv/internal/config"
	"github.com/pankajredekar/shoeinv/internal/inventory"
	"github.com/pankajredekar/shoeinv/internal/logger"
	"github.com/pankajredekar/shoeinv/internal/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app bundles what every command needs
type app struct {
	cfg   *config.Config
	log   *zap.Logger
	p     *utils.Printer
	store *inventory.Store
}

// newApp reads the config, applies flag overrides and builds the logger, printer and store
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if inventoryPath != "" {
		cfg.InventoryFile = inventoryPath
	}
	if noColor {
		off := false
		cfg.Color = &off
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	log.Debug("config loaded", zap.String("config", configPath), zap.String("inventory_file", cfg.InventoryFile))

	return &app{
		cfg:   cfg,
		log:   log,
		p:     utils.NewPrinter(cmd.OutOrStdout(), cfg.ColorEnabled()),
		store: inventory.NewStore(cfg.InventoryFile, logger.Named(log, "store")),
	}, nil
}

// load reads the inventory file into the store, reporting failures to the user
func (a *app) load() error {
	if _, err := a.store.Load(a.store.Path()); err != nil {
		if errors.Is(err, inventory.ErrNotFound) {
			a.p.Error("%s not found. Run 'shoeinv init' first", a.store.Path())
		} else {
			a.p.Error("Failed to read inventory: %v", err)
		}
		return reported(err)
	}
	return nil
}

// reportedError marks an error the command already printed
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error {
	return e.error
}

func reported(err error) error {
	return reportedError{err}
}

func (a *app) close() {
	_ = a.log.Sync()
}
