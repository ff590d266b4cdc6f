package generator

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/enginegen/pkg/core"
)

// WriteFile renders e and writes it to path atomically: the document goes
// to a temp file in the same directory which is then renamed over path.
// On failure the temp file is removed and path is left untouched.
func (g *Generator) WriteFile(path string, e *core.Engine) error {
	out, err := g.Render(e)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file in %s: %w", core.ErrOutputWrite, dir, err)
	}
	tmpPath := tmpFile.Name()

	fail := func(step string, err error) error {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %s %s: %w", core.ErrOutputWrite, step, path, err)
	}

	if _, err := tmpFile.Write(out); err != nil {
		return fail("write", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fail("sync", err)
	}
	if err := tmpFile.Chmod(0o644); err != nil {
		return fail("chmod", err)
	}
	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: close %s: %w", core.ErrOutputWrite, path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: rename to %s: %w", core.ErrOutputWrite, path, err)
	}

	g.logger.Info("wrote engine", slog.String("path", path), slog.Int("bytes", len(out)))
	return nil
}
