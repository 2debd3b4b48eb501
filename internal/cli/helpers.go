// Package cli holds shared helpers for the careflow command.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/resultflow/careflow/pkg/catalog"
	"github.com/resultflow/careflow/pkg/ports"
)

// ParseLogLevel maps a flag value to a slog level. Unknown values fall back
// to info.
func ParseLogLevel(value string) slog.Level {
	switch strings.ToLower(value) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadCatalog returns the catalog for a path, or the built-in demo catalog
// when the path is empty.
func LoadCatalog(path string) (ports.Catalog, error) {
	if path == "" {
		return catalog.Builtin(), nil
	}
	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	return cat, nil
}

// Interactive reports whether stdin is attached to a terminal.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
