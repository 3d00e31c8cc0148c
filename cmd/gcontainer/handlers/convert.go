package handlers

import (
	"context"
	"fmt"
	"io"

	"github.com/go-logr/logr"

	"github.com/imamik/gcontainer/internal/config"
	"github.com/imamik/gcontainer/internal/container/nodepool"
)

// nodePoolList mirrors the API's node pool list response.
type nodePoolList struct {
	NodePools []nodepool.NodePool `json:"nodePools"`
}

// ConvertOptions contains options for the convert command.
type ConvertOptions struct {
	ConfigPath string
	Output     string
	Out        io.Writer
}

// Convert writes the catalog's node pools in API shape.
func Convert(ctx context.Context, opts ConvertOptions) error {
	log := logr.FromContextOrDiscard(ctx)

	format := opts.Output
	if format == "" {
		format = settingsFrom(ctx).Output
	}
	if format == "text" {
		format = "json"
	}

	cfg, err := config.LoadFile(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log.V(1).Info("converting catalog", "path", opts.ConfigPath, "format", format)

	return writeStructured(outputOrStdout(opts.Out), format, nodePoolList{NodePools: cfg.NodePools})
}
