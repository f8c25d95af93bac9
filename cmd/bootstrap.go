package cmd

import (
	"errors"
	"fmt"

	"storage-template/core/config"
	"storage-template/core/logger"
	"storage-template/core/template"

	"go.uber.org/zap"
)

var errNotConfigured = errors.New("storage is not configured: set STORAGE_ENDPOINT")

// bootstrap loads configuration, builds the logger and resolves the shared template.
// The template is nil when no endpoint is configured.
func bootstrap() (*config.Config, *zap.Logger, *template.Template, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	tpl, ok := template.Configure(cfg.Storage, nil, template.WithLogger(logg))
	if !ok {
		return cfg, logg, nil, nil
	}
	return cfg, logg, tpl, nil
}

// requireTemplate is bootstrap for commands that cannot run without storage.
func requireTemplate() (*template.Template, *zap.Logger, error) {
	_, logg, tpl, err := bootstrap()
	if err != nil {
		return nil, nil, err
	}
	if tpl == nil {
		return nil, nil, errNotConfigured
	}
	return tpl, logg, nil
}
