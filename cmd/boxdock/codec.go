package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-dock/internal/dockarea"
)

// ErrUnknownFormat is returned for a snapshot format other than json or yaml.
var ErrUnknownFormat = errors.New("unknown snapshot format")

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// snapshotFormat resolves the format from the flag, falling back to the file
// extension.
func snapshotFormat(path, flag string) (string, error) {
	name := strings.ToLower(flag)
	if name == "" {
		name = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	switch name {
	case "json":
		return formatJSON, nil
	case "yaml", "yml":
		return formatYAML, nil
	}
	if flag == "" {
		return "", fmt.Errorf("%w: cannot infer from %q, use --format", ErrUnknownFormat, path)
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, flag)
}

func decodeSnapshot(data []byte, format string) (dockarea.LayoutConfig, error) {
	var cfg dockarea.LayoutConfig
	var err error
	switch format {
	case formatJSON:
		err = json.Unmarshal(data, &cfg)
	case formatYAML:
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return dockarea.LayoutConfig{}, fmt.Errorf("failed to decode %s snapshot: %w", format, err)
	}
	return cfg, nil
}

func encodeSnapshot(cfg dockarea.LayoutConfig, format string) ([]byte, error) {
	switch format {
	case formatJSON:
		return json.MarshalIndent(cfg, "", "  ")
	case formatYAML:
		return yaml.Marshal(cfg)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
