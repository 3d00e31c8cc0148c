package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"

	"github.com/imamik/gcontainer/internal/container/nodepool"
)

// ParseOptions contains options for the parse command.
type ParseOptions struct {
	Path   string
	Output string
	In     io.Reader
	Out    io.Writer
}

// Parse reads an API response and prints the upgrade options it carries.
func Parse(ctx context.Context, opts ParseOptions) error {
	log := logr.FromContextOrDiscard(ctx)

	data, err := readInput(opts.Path, opts.In)
	if err != nil {
		return err
	}

	pool, err := decodeAPIResponse(data)
	if err != nil {
		return err
	}
	log.V(1).Info("parsed API response", "path", opts.Path, "nodePool", pool.Name)

	format := opts.Output
	if format == "" {
		format = settingsFrom(ctx).Output
	}

	out := outputOrStdout(opts.Out)
	upgradeOptions := pool.UpgradeOptions()
	if format != "text" {
		return writeStructured(out, format, upgradeOptions)
	}
	if upgradeOptions == nil {
		_, err = fmt.Fprintln(out, "no upgrade options")
		return err
	}
	_, err = fmt.Fprintln(out, upgradeOptions.String())
	return err
}

func readInput(path string, in io.Reader) ([]byte, error) {
	if path == "-" {
		if in == nil {
			in = os.Stdin
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read API response: %w", err)
	}
	return data, nil
}

// decodeAPIResponse accepts either a node pool or a bare upgrade options
// object. A bare object is wrapped into an unnamed pool.
func decodeAPIResponse(data []byte) (*nodepool.NodePool, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to decode API response: %w", err)
	}
	if probe == nil {
		return nil, errors.New("API response is empty")
	}

	_, hasName := probe["name"]
	_, hasManagement := probe["management"]
	if hasName || hasManagement {
		return nodepool.NodePoolFromAPI(data)
	}

	upgradeOptions, err := nodepool.ParseFromAPI(data)
	if err != nil {
		return nil, err
	}
	return &nodepool.NodePool{
		Management: &nodepool.Management{UpgradeOptions: upgradeOptions},
	}, nil
}
