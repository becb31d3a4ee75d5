package generator

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/prisma-class-validator-go/dmmf"
	"github.com/satishbabariya/prisma-class-validator-go/generator/codegen"
	"github.com/satishbabariya/prisma-class-validator-go/internal/errors"
)

const outDir = "/out"

func loadBlog(t *testing.T) *dmmf.Document {
	t.Helper()
	doc, err := dmmf.LoadFile(afero.NewOsFs(), filepath.Join("testdata", "blog.json"))
	require.NoError(t, err)
	return doc
}

func newGenerator(t *testing.T, doc *dmmf.Document, fs afero.Fs, opts ...Option) *Generator {
	t.Helper()
	opts = append([]Option{WithFs(fs)}, opts...)
	g, err := New(doc, DefaultConfig(outDir), opts...)
	require.NoError(t, err)
	return g
}

func listFiles(t *testing.T, fs afero.Fs, root string) []string {
	t.Helper()
	var files []string
	err := afero.Walk(fs, root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			rel, _ := filepath.Rel(root, p)
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	require.NoError(t, err)
	sort.Strings(files)
	return files
}

func readFile(t *testing.T, fs afero.Fs, rel string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, filepath.Join(outDir, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

const wantPostFile = `// Code generated by prisma-class-validator. DO NOT EDIT.

import { IsBoolean, IsDate, IsDefined, IsIn, IsInt, IsOptional, IsString } from "class-validator";
import { PostStatus } from "../enums";
import type { Category } from "./Category.model";
import type { Comment } from "./Comment.model";
import type { User } from "./User.model";

/** A blog post */
export class Post {
  @IsDefined()
  @IsInt()
  id!: number;

  @IsDefined()
  @IsString()
  title!: string;

  @IsOptional()
  @IsString()
  content?: string | null;

  @IsDefined()
  @IsBoolean()
  published!: boolean;

  @IsDefined()
  @IsIn(["DRAFT", "PUBLISHED", "ARCHIVED"])
  status!: PostStatus;

  @IsDefined()
  @IsInt()
  views!: bigint;

  @IsDefined()
  @IsString()
  tags!: string[];

  @IsDefined()
  @IsDate()
  createdAt!: Date;

  author!: User;

  @IsDefined()
  @IsInt()
  authorId!: number;

  categories!: Category[];

  comments!: Comment[];
}
`

func TestRunWritesBlogTree(t *testing.T) {
	fs := afero.NewMemMapFs()
	g := newGenerator(t, loadBlog(t), fs)

	report, err := g.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, PhaseDone, g.Phase())

	want := []string{
		"enums/PostStatus.enum.ts",
		"enums/Role.enum.ts",
		"enums/index.ts",
		"index.ts",
		"models/Category.model.ts",
		"models/Comment.model.ts",
		"models/Post.model.ts",
		"models/Profile.model.ts",
		"models/User.model.ts",
		"models/index.ts",
	}
	assert.Equal(t, want, listFiles(t, fs, outDir))
	assert.Len(t, report.Written, len(want))
	assert.Empty(t, report.Unchanged)

	assert.Equal(t, wantPostFile, readFile(t, fs, "models/Post.model.ts"))
	assert.Equal(t, codegen.Header+"\n\n"+
		"export { User } from \"./User.model\";\n"+
		"export { Profile } from \"./Profile.model\";\n"+
		"export { Post } from \"./Post.model\";\n"+
		"export { Category } from \"./Category.model\";\n"+
		"export { Comment } from \"./Comment.model\";\n",
		readFile(t, fs, "models/index.ts"))
	assert.Equal(t, codegen.Header+"\n\n"+
		"export { Role } from \"./Role.enum\";\n"+
		"export { PostStatus } from \"./PostStatus.enum\";\n",
		readFile(t, fs, "enums/index.ts"))
	assert.Contains(t, readFile(t, fs, "index.ts"), "export * from \"./models\";\nexport * from \"./enums\";\n")
}

func TestRunIsIdempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	doc := loadBlog(t)

	first, err := newGenerator(t, doc, fs).Run(context.Background())
	require.NoError(t, err)

	snapshot := map[string]string{}
	for _, f := range first.Files {
		snapshot[f] = readFile(t, fs, f)
	}

	second, err := newGenerator(t, doc, fs).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, second.Written)
	assert.ElementsMatch(t, first.Files, second.Unchanged)
	for _, f := range second.Files {
		assert.Equal(t, snapshot[f], readFile(t, fs, f), f)
	}
}

func TestRunOverwritesChangedFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	doc := loadBlog(t)
	require.NoError(t, fs.MkdirAll("/out/models", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/out/models/User.model.ts", []byte("stale"), 0o644))

	report, err := newGenerator(t, doc, fs).Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, report.Written, "models/User.model.ts")
	assert.Contains(t, readFile(t, fs, "models/User.model.ts"), "export class User {")
}

func TestPhaseTransitions(t *testing.T) {
	var phases []Phase
	g := newGenerator(t, loadBlog(t), afero.NewMemMapFs(), WithPhaseHook(func(p Phase) {
		phases = append(phases, p)
	}))

	_, err := g.Plan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Phase{PhaseInit, PhaseEmitEnums, PhaseEmitModels, PhaseEmitBarrels, PhaseDone}, phases)
	assert.True(t, g.Phase().Terminal())
}

func TestPlanOrdersFilesByDeclaration(t *testing.T) {
	g := newGenerator(t, loadBlog(t), afero.NewMemMapFs())
	plan, err := g.Plan(context.Background())
	require.NoError(t, err)

	var paths []string
	for _, f := range plan.Files() {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{
		"enums/Role.enum.ts",
		"enums/PostStatus.enum.ts",
		"models/User.model.ts",
		"models/Profile.model.ts",
		"models/Post.model.ts",
		"models/Category.model.ts",
		"models/Comment.model.ts",
		"models/index.ts",
		"enums/index.ts",
		"index.ts",
	}, paths)
}

func TestStructuralErrorsAreCollected(t *testing.T) {
	doc := &dmmf.Document{Datamodel: dmmf.Datamodel{
		Enums: []dmmf.Enum{
			{Name: "Role", Values: []dmmf.EnumValue{{Name: "A"}}},
			{Name: "Role", Values: []dmmf.EnumValue{{Name: "B"}}},
			{Name: "Account", Values: []dmmf.EnumValue{{Name: "C"}}},
		},
		Models: []dmmf.Model{
			{Name: "Account", Fields: []dmmf.Field{
				{Name: "id", Kind: dmmf.KindScalar, Type: "Int", IsRequired: true},
				{Name: "status", Kind: dmmf.KindEnum, Type: "Status", IsRequired: true},
				{Name: "owner", Kind: dmmf.KindRelation, Type: "Owner"},
				{Name: "shape", Kind: dmmf.KindScalar, Type: "Polygon"},
			}},
		},
	}}

	var phases []Phase
	fs := afero.NewMemMapFs()
	g := newGenerator(t, doc, fs, WithPhaseHook(func(p Phase) { phases = append(phases, p) }))

	report, err := g.Run(context.Background())
	require.Error(t, err)
	assert.Nil(t, report)
	assert.Equal(t, []Phase{PhaseInit, PhaseFailed}, phases)

	assert.True(t, errors.Is(err, ErrDuplicateDeclarationName))
	assert.True(t, errors.Is(err, codegen.ErrMissingTypeReference))
	assert.True(t, errors.Is(err, codegen.ErrUnsupportedFieldType))

	msg := err.Error()
	assert.Contains(t, msg, `duplicate enum name "Role"`)
	assert.Contains(t, msg, `duplicate model/enum name "Account"`)
	assert.Contains(t, msg, `Account.status references unknown enum "Status"`)
	assert.Contains(t, msg, `Account.owner references unknown relation "Owner"`)
	assert.Contains(t, msg, `unsupported scalar type "Polygon" on Account.shape`)
	assert.NotEmpty(t, errors.GetAllHints(err))

	exists, err := afero.DirExists(fs, outDir)
	require.NoError(t, err)
	assert.False(t, exists, "nothing is written when validation fails")
}

func TestEmptyDatamodel(t *testing.T) {
	fs := afero.NewMemMapFs()
	report, err := newGenerator(t, &dmmf.Document{}, fs).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"models/index.ts", "enums/index.ts", "index.ts"}, report.Files)
	assert.Equal(t, codegen.Header+"\n\nexport {};\n", readFile(t, fs, "models/index.ts"))
}

func TestPlanHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := newGenerator(t, loadBlog(t), afero.NewMemMapFs())
	_, err := g.Plan(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, PhaseFailed, g.Phase())
}

func TestConcurrencyDoesNotChangeOutput(t *testing.T) {
	doc := loadBlog(t)
	render := func(workers int) string {
		cfg := DefaultConfig(outDir)
		cfg.Workers = workers
		g, err := New(doc, cfg, WithFs(afero.NewMemMapFs()))
		require.NoError(t, err)
		plan, err := g.Plan(context.Background())
		require.NoError(t, err)
		var b strings.Builder
		for _, f := range plan.Files() {
			b.WriteString(f.Path)
			b.Write(f.Content())
		}
		return b.String()
	}

	serial := render(1)
	for i := 0; i < 5; i++ {
		assert.Equal(t, serial, render(8))
	}
}

func TestConfigValidate(t *testing.T) {
	doc := &dmmf.Document{}

	_, err := New(doc, Config{Options: codegen.DefaultOptions()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid generator config")

	cfg := DefaultConfig(outDir)
	cfg.Workers = -1
	_, err = New(doc, cfg)
	require.Error(t, err)

	cfg = DefaultConfig(outDir)
	cfg.Options.DecimalType = "float"
	_, err = New(doc, cfg)
	require.Error(t, err)

	_, err = New(nil, DefaultConfig(outDir))
	require.Error(t, err)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "emit-models", PhaseEmitModels.String())
	assert.Equal(t, "unknown", Phase(42).String())
	assert.False(t, PhaseEmitBarrels.Terminal())
	assert.True(t, PhaseFailed.Terminal())
}
