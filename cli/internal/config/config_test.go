package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/prisma-class-validator-go/generator/codegen"
)

func useMemFs(t *testing.T) afero.Fs {
	t.Helper()
	prev := AppFs
	AppFs = afero.NewMemMapFs()
	t.Cleanup(func() { AppFs = prev })
	return AppFs
}

func TestLoadDefaults(t *testing.T) {
	useMemFs(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "./generated", cfg.Output)
	assert.Equal(t, codegen.DecimalTypeDecimal, cfg.DecimalType)
	assert.Equal(t, codegen.DefaultValidatorModule, cfg.ValidatorModule)
	assert.Equal(t, codegen.DefaultRuntimeModule, cfg.RuntimeModule)
	assert.True(t, cfg.EmitDocs)
	assert.False(t, cfg.Prune)
	assert.Empty(t, cfg.ConfigFile)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	fs := useMemFs(t)
	wd, err := os.Getwd()
	require.NoError(t, err)

	content := "output: ./src/dto\ndecimal_type: number\nprune: true\nworkers: 3\n"
	require.NoError(t, afero.WriteFile(fs, filepath.Join(wd, FileName+".yaml"), []byte(content), 0o644))
	t.Setenv("PCV_VALIDATOR_MODULE", "@company/validators")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "./src/dto", cfg.Output)
	assert.Equal(t, codegen.DecimalTypeNumber, cfg.DecimalType)
	assert.True(t, cfg.Prune)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "@company/validators", cfg.ValidatorModule)
	assert.Equal(t, filepath.Join(wd, FileName+".yaml"), cfg.ConfigFile)
}

func TestSaveThenLoad(t *testing.T) {
	fs := useMemFs(t)
	wd, err := os.Getwd()
	require.NoError(t, err)

	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Output = "./dto"
	cfg.Prune = true

	path, err := Save(cfg, filepath.Join(wd, FileName+".yaml"))
	require.NoError(t, err)
	exists, err := afero.Exists(fs, path)
	require.NoError(t, err)
	require.True(t, exists)

	reloaded, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "./dto", reloaded.Output)
	assert.True(t, reloaded.Prune)
}

func TestLoadExplicitFile(t *testing.T) {
	fs := useMemFs(t)
	require.NoError(t, afero.WriteFile(fs, "/etc/pcv/custom.yaml", []byte("output: /srv/dto\nemit_docs: false\n"), 0o644))

	cfg, err := Load("/etc/pcv/custom.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/srv/dto", cfg.Output)
	assert.False(t, cfg.EmitDocs)
	assert.Equal(t, "/etc/pcv/custom.yaml", cfg.ConfigFile)

	_, err = Load("/etc/pcv/missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestApplyGeneratorBlock(t *testing.T) {
	cfg := &Config{Output: "./generated", DecimalType: codegen.DecimalTypeDecimal, EmitDocs: true}

	err := cfg.ApplyGeneratorBlock(map[string]string{
		"provider":        Provider,
		"output":          "../src/generated",
		"decimalType":     "number",
		"validatorModule": "class-validator",
		"prune":           "true",
		"emitDocs":        "false",
	}, "/repo/prisma")
	require.NoError(t, err)

	assert.Equal(t, "/repo/src/generated", cfg.Output)
	assert.Equal(t, codegen.DecimalTypeNumber, cfg.DecimalType)
	assert.Equal(t, "class-validator", cfg.ValidatorModule)
	assert.True(t, cfg.Prune)
	assert.False(t, cfg.EmitDocs)

	err = cfg.ApplyGeneratorBlock(map[string]string{"prune": "sometimes"}, "/repo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generator property prune")
}

func TestGeneratorConfig(t *testing.T) {
	cfg := &Config{
		Output:          "/tmp/out",
		DecimalType:     codegen.DecimalTypeNumber,
		ValidatorModule: codegen.DefaultValidatorModule,
		RuntimeModule:   codegen.DefaultRuntimeModule,
		Workers:         2,
	}
	gen, err := cfg.Generator()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out", gen.Output)
	assert.Equal(t, codegen.DecimalTypeNumber, gen.Options.DecimalType)
	assert.Equal(t, 2, gen.Workers)

	cfg.DecimalType = "float"
	_, err = cfg.Generator()
	require.Error(t, err)
}
