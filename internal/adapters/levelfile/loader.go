// Package levelfile loads level files from a directory into the game catalog.
//
// Files ending in .json, .yaml or .yml are read; each may hold a stage
// document or a legacy level, and is registered under its base name without
// extension:
//
//	configs/levels/tutorial.json  -> "tutorial"
//	configs/levels/crossing.yaml  -> "crossing"
package levelfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"

	"github.com/jsamuelsen11/twinboard/internal/domain/level"
	"github.com/jsamuelsen11/twinboard/internal/domain/stage"
)

// Catalog receives loaded levels. *app.Game satisfies it.
type Catalog interface {
	Add(name string, st *stage.Stage)
}

// Loader reads level files from one directory.
type Loader struct {
	dir    string
	logger *slog.Logger
}

// NewLoader creates a Loader for dir.
func NewLoader(dir string, logger *slog.Logger) *Loader {
	return &Loader{dir: dir, logger: logger}
}

// LoadAll adds every valid level file in the directory to cat, in file name
// order, and returns the names it added. Invalid files, files named after
// level.ReservedName, and later files whose name is already taken are logged
// and skipped. An error is returned only
// when the directory itself cannot be read.
func (l *Loader) LoadAll(ctx context.Context, cat Catalog) ([]string, error) {
	// Sorted by file name.
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("reading level directory %s: %w", l.dir, err)
	}

	seen := make(map[string]bool, len(entries))
	var loaded []string
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return loaded, err
		}
		if e.IsDir() || !Supported(e.Name()) {
			continue
		}

		name := Name(e.Name())
		path := filepath.Join(l.dir, e.Name())
		if name == level.ReservedName {
			l.logger.WarnContext(ctx, "reserved level name, skipping file",
				slog.String("level_name", name),
				slog.String("path", path),
			)
			continue
		}
		if seen[name] {
			l.logger.WarnContext(ctx, "duplicate level name, skipping file",
				slog.String("level_name", name),
				slog.String("path", path),
			)
			continue
		}

		st, err := LoadFile(path)
		if err != nil {
			l.logger.WarnContext(ctx, "skipping invalid level file",
				slog.String("path", path),
				slog.Any("error", err),
			)
			continue
		}

		seen[name] = true
		cat.Add(name, st)
		loaded = append(loaded, name)
	}

	l.logger.InfoContext(ctx, "levels loaded",
		slog.String("dir", l.dir),
		slog.Int("count", len(loaded)),
	)
	return loaded, nil
}

// LoadFile reads and validates a single level file.
func LoadFile(path string) (*stage.Stage, error) {
	data, err := file.Provider(path).ReadBytes()
	if err != nil {
		return nil, fmt.Errorf("reading level file %s: %w", path, err)
	}
	st, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("level file %s: %w", path, err)
	}
	return st, nil
}

// Decode parses level data in the format implied by ext (".json", ".yaml" or
// ".yml"). YAML is converted to JSON first so both formats share one schema.
func Decode(data []byte, ext string) (*stage.Stage, error) {
	switch strings.ToLower(ext) {
	case ".json":
	case ".yaml", ".yml":
		m, err := yaml.Parser().Unmarshal(data)
		if err != nil {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
		if data, err = json.Marshal(m); err != nil {
			return nil, fmt.Errorf("converting yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported level file extension %q", ext)
	}

	if level.IsLegacy(data) {
		legacy, err := level.Decode(data)
		if err != nil {
			return nil, err
		}
		return legacy.ToStage()
	}
	return stage.Decode(data)
}

// Supported reports whether a file name has a level file extension.
func Supported(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// Name returns the level name for a file: its base name without extension.
func Name(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
