package handlers

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-logr/logr"

	"github.com/imamik/gcontainer/internal/config"
)

// ShowOptions contains options for the show command.
type ShowOptions struct {
	ConfigPath string
	Out        io.Writer
}

// Show prints the management settings of each node pool in the catalog.
func Show(ctx context.Context, opts ShowOptions) error {
	log := logr.FromContextOrDiscard(ctx)

	cfg, err := config.LoadFile(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log.V(1).Info("loaded catalog", "path", opts.ConfigPath, "nodePools", len(cfg.NodePools))

	out := outputOrStdout(opts.Out)
	_, err = io.WriteString(out, renderCatalog(cfg, isInteractiveTTY(out)))
	return err
}

func renderCatalog(cfg *config.Config, styled bool) string {
	var b strings.Builder

	title := fmt.Sprintf("  gcontainer: %s", cfg.Cluster)
	b.WriteString(render(titleStyle, styled, title))
	b.WriteString("\n")
	b.WriteString(render(dimStyle, styled, "  "+strings.Repeat("═", len(title)-2)))
	b.WriteString("\n")

	if len(cfg.NodePools) == 0 {
		b.WriteString(render(dimStyle, styled, "  no node pools"))
		b.WriteString("\n")
		return b.String()
	}

	for i := range cfg.NodePools {
		pool := &cfg.NodePools[i]
		b.WriteString("\n")
		b.WriteString(render(sectionStyle, styled, "  "+pool.Name))
		b.WriteString("\n")
		if pool.Management != nil {
			fmt.Fprintf(&b, "    auto_upgrade: %s, auto_repair: %s\n",
				formatFlag(pool.Management.AutoUpgrade), formatFlag(pool.Management.AutoRepair))
		}
		renderUpgradeOptions(&b, pool.UpgradeOptions(), styled)
	}

	return b.String()
}

func formatFlag(v *bool) string {
	if v == nil {
		return ""
	}
	return strconv.FormatBool(*v)
}
