package generator

import (
	"bytes"
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/satishbabariya/prisma-class-validator-go/generator/codegen"
	"github.com/satishbabariya/prisma-class-validator-go/internal/debug"
	"github.com/satishbabariya/prisma-class-validator-go/internal/errors"
)

// Report describes what a write pass did. Every path is slash-separated and
// relative to the output root.
type Report struct {
	Files     []string
	Written   []string
	Unchanged []string
	Pruned    []string
}

// Writer persists generated files under a root directory. Each file is
// written to a temporary sibling and renamed into place, so a reader never
// observes a partially written file.
type Writer struct {
	fs      afero.Fs
	workers int
	prune   bool
}

// NewWriter creates a Writer rooted at root on fs.
func NewWriter(fs afero.Fs, root string, workers int, prune bool) *Writer {
	if workers <= 0 {
		workers = 1
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return &Writer{
		fs:      afero.NewBasePathFs(fs, root),
		workers: workers,
		prune:   prune,
	}
}

type writeResult int

const (
	resultWritten writeResult = iota
	resultUnchanged
)

// Write persists files. A failing file does not stop the others; every
// failure is returned joined, one StorageWriteError per file.
func (w *Writer) Write(ctx context.Context, files []codegen.GeneratedFile) (*Report, error) {
	results := make([]writeResult, len(files))
	errs := make([]error, len(files))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)
	for i, f := range files {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i], errs[i] = w.writeFile(f.Path, f.Content())
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Files: make([]string, 0, len(files))}
	for i, f := range files {
		report.Files = append(report.Files, f.Path)
		if errs[i] != nil {
			continue
		}
		switch results[i] {
		case resultWritten:
			report.Written = append(report.Written, f.Path)
		case resultUnchanged:
			report.Unchanged = append(report.Unchanged, f.Path)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return report, errors.WithHint(err, "check that the output directory is writable")
	}

	if w.prune {
		pruned, err := w.pruneStale(files)
		report.Pruned = pruned
		if err != nil {
			return report, err
		}
	}
	return report, nil
}

func (w *Writer) writeFile(rel string, content []byte) (writeResult, error) {
	name := filepath.FromSlash(rel)

	if existing, err := afero.ReadFile(w.fs, name); err == nil && bytes.Equal(existing, content) {
		debug.Debug("File unchanged", "path", rel)
		return resultUnchanged, nil
	}

	dir := filepath.Dir(name)
	if err := w.fs.MkdirAll(dir, 0o755); err != nil {
		return 0, w.failure(rel, "mkdir", err)
	}

	tmp, err := afero.TempFile(w.fs, dir, "."+filepath.Base(name)+".*.tmp")
	if err != nil {
		return 0, w.failure(rel, "create", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = w.fs.Remove(tmpName)
		return 0, w.failure(rel, "write", err)
	}
	if err := tmp.Close(); err != nil {
		_ = w.fs.Remove(tmpName)
		return 0, w.failure(rel, "close", err)
	}
	if err := w.fs.Chmod(tmpName, 0o644); err != nil {
		_ = w.fs.Remove(tmpName)
		return 0, w.failure(rel, "chmod", err)
	}
	if err := w.fs.Rename(tmpName, name); err != nil {
		_ = w.fs.Remove(tmpName)
		return 0, w.failure(rel, "rename", err)
	}

	debug.Debug("File written", "path", rel, "bytes", len(content))
	return resultWritten, nil
}

func (w *Writer) failure(rel, op string, err error) error {
	debug.Error("Failed to write generated file", "path", rel, "op", op, "error", err)
	return &StorageWriteError{Path: rel, Op: op, Cause: err}
}

// pruneStale removes model and enum files that are not part of files.
func (w *Writer) pruneStale(files []codegen.GeneratedFile) ([]string, error) {
	keep := make(map[string]struct{}, len(files))
	for _, f := range files {
		keep[f.Path] = struct{}{}
	}

	var pruned []string
	var errs []error
	for _, dir := range []struct{ name, suffix string }{
		{codegen.ModelsDir, codegen.ModelSuffix + ".ts"},
		{codegen.EnumsDir, codegen.EnumSuffix + ".ts"},
	} {
		entries, err := afero.ReadDir(w.fs, dir.name)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			errs = append(errs, w.failure(dir.name, "readdir", err))
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), dir.suffix) {
				continue
			}
			rel := path.Join(dir.name, entry.Name())
			if _, ok := keep[rel]; ok {
				continue
			}
			if err := w.fs.Remove(filepath.FromSlash(rel)); err != nil {
				errs = append(errs, w.failure(rel, "remove", err))
				continue
			}
			debug.Debug("Pruned stale file", "path", rel)
			pruned = append(pruned, rel)
		}
	}
	return pruned, errors.Join(errs...)
}
