package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-logr/logr"

	"github.com/imamik/gcontainer/internal/config"
	"github.com/imamik/gcontainer/internal/container/nodepool"
)

// CompareOptions contains options for the compare command.
type CompareOptions struct {
	ConfigPath string
	APIPath    string
	Pool       string
	Out        io.Writer
}

// Compare compares the upgrade options of a catalog node pool with those of
// an API response and prints the outcome.
func Compare(ctx context.Context, opts CompareOptions) error {
	log := logr.FromContextOrDiscard(ctx)

	cfg, err := config.LoadFile(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	pool, ok := cfg.NodePool(opts.Pool)
	if !ok {
		return fmt.Errorf("node pool %q not found in %s", opts.Pool, opts.ConfigPath)
	}

	data, err := readInput(opts.APIPath, nil)
	if err != nil {
		return err
	}
	remote, err := decodeAPIResponse(data)
	if err != nil {
		return err
	}
	if remote.Name != "" && remote.Name != pool.Name {
		log.Info("comparing node pools with different names", "catalog", pool.Name, "api", remote.Name)
	}

	outcome := compareOutcome(pool.UpgradeOptions(), remote.UpgradeOptions())
	log.V(1).Info("compared upgrade options", "pool", pool.Name, "outcome", outcome)

	_, err = fmt.Fprintln(outputOrStdout(opts.Out), outcome)
	return err
}

func compareOutcome(catalog, api *nodepool.UpgradeOptions) string {
	order, err := catalog.Compare(api)
	switch {
	case errors.Is(err, nodepool.ErrIncomparable):
		return "incomparable"
	case order < 0:
		return "catalog sorts before api"
	case order > 0:
		return "catalog sorts after api"
	default:
		return "equal"
	}
}
