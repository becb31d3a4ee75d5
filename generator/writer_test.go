package generator

import (
	"context"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/prisma-class-validator-go/generator/codegen"
	"github.com/satishbabariya/prisma-class-validator-go/internal/errors"
)

// renameFailFs fails every rename whose target ends in one of fail.
type renameFailFs struct {
	afero.Fs
	fail []string
}

func (f renameFailFs) Rename(oldname, newname string) error {
	for _, suffix := range f.fail {
		if strings.HasSuffix(newname, suffix) {
			return errors.New("device full")
		}
	}
	return f.Fs.Rename(oldname, newname)
}

func sampleFiles() []codegen.GeneratedFile {
	return []codegen.GeneratedFile{
		{Path: "enums/Role.enum.ts", Body: "export enum Role {\n}\n"},
		{Path: "models/User.model.ts", Body: "export class User {\n}\n"},
		{Path: "models/Post.model.ts", Body: "export class Post {\n}\n"},
		codegen.RootBarrel(),
	}
}

func TestWriterCreatesDirectories(t *testing.T) {
	fs := afero.NewMemMapFs()
	report, err := NewWriter(fs, outDir, 2, false).Write(context.Background(), sampleFiles())
	require.NoError(t, err)

	assert.Equal(t, []string{"enums/Role.enum.ts", "models/User.model.ts", "models/Post.model.ts", "index.ts"}, report.Written)
	assert.Equal(t, []string{
		"enums/Role.enum.ts",
		"index.ts",
		"models/Post.model.ts",
		"models/User.model.ts",
	}, listFiles(t, fs, outDir))
}

func TestWriterContinuesAfterFailure(t *testing.T) {
	base := afero.NewMemMapFs()
	fs := renameFailFs{Fs: base, fail: []string{"User.model.ts", "index.ts"}}

	report, err := NewWriter(fs, outDir, 1, false).Write(context.Background(), sampleFiles())
	require.Error(t, err)
	require.NotNil(t, report)

	assert.Equal(t, []string{"enums/Role.enum.ts", "models/Post.model.ts"}, report.Written)
	assert.True(t, errors.Is(err, ErrStorageWrite))

	var writeErr *StorageWriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Equal(t, "rename", writeErr.Op)
	assert.Contains(t, err.Error(), "rename models/User.model.ts: device full")
	assert.Contains(t, err.Error(), "rename index.ts: device full")

	// No temporary files are left behind.
	assert.Equal(t, []string{"enums/Role.enum.ts", "models/Post.model.ts"}, listFiles(t, base, outDir))
}

func TestWriterFailureKeepsPreviousContent(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll("/out/models", 0o755))
	require.NoError(t, afero.WriteFile(base, "/out/models/User.model.ts", []byte("previous"), 0o644))

	fs := renameFailFs{Fs: base, fail: []string{"User.model.ts"}}
	_, err := NewWriter(fs, outDir, 1, false).Write(context.Background(), sampleFiles())
	require.Error(t, err)

	data, err := afero.ReadFile(base, "/out/models/User.model.ts")
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
}

func TestWriterSkipsUnchangedFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, outDir, 4, false)

	_, err := w.Write(context.Background(), sampleFiles())
	require.NoError(t, err)

	// A rename failure would surface if anything were rewritten.
	failing := NewWriter(renameFailFs{Fs: fs, fail: []string{".ts"}}, outDir, 4, false)
	report, err := failing.Write(context.Background(), sampleFiles())
	require.NoError(t, err)
	assert.Empty(t, report.Written)
	assert.Len(t, report.Unchanged, 4)
}

func TestWriterPrunesStaleFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/out/models", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/out/models/Legacy.model.ts", []byte("x"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/out/models/helpers.ts", []byte("x"), 0o644))

	report, err := NewWriter(fs, outDir, 2, true).Write(context.Background(), sampleFiles())
	require.NoError(t, err)
	assert.Equal(t, []string{"models/Legacy.model.ts"}, report.Pruned)

	files := listFiles(t, fs, outDir)
	assert.NotContains(t, files, "models/Legacy.model.ts")
	assert.Contains(t, files, "models/helpers.ts")
	assert.Contains(t, files, "models/User.model.ts")
}

func TestWriterKeepsStaleFilesWithoutPrune(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/out/enums", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/out/enums/Old.enum.ts", []byte("x"), 0o644))

	report, err := NewWriter(fs, outDir, 2, false).Write(context.Background(), sampleFiles())
	require.NoError(t, err)
	assert.Empty(t, report.Pruned)
	assert.Contains(t, listFiles(t, fs, outDir), "enums/Old.enum.ts")
}

func TestWriterRejectsReadOnlyFs(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	report, err := NewWriter(fs, outDir, 1, false).Write(context.Background(), sampleFiles()[:1])
	require.Error(t, err)
	assert.Empty(t, report.Written)
	assert.True(t, errors.Is(err, ErrStorageWrite))
	assert.NotEmpty(t, errors.GetAllHints(err))
}
