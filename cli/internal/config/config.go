// Package config layers the CLI settings: defaults, the config file, PCV_
// environment variables, .env files and the schema's generator block.
package config

import (
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/satishbabariya/prisma-class-validator-go/generator"
	"github.com/satishbabariya/prisma-class-validator-go/generator/codegen"
	"github.com/satishbabariya/prisma-class-validator-go/internal/debug"
	"github.com/satishbabariya/prisma-class-validator-go/internal/errors"
)

// AppFs is the filesystem every command reads from and writes to.
var AppFs = afero.NewOsFs()

const (
	// FileName is the config file name, without extension.
	FileName = ".prisma-class-validator"
	// EnvPrefix prefixes environment overrides, e.g. PCV_OUTPUT.
	EnvPrefix = "PCV"
	// Provider is the generator block provider this tool answers to.
	Provider = "prisma-class-validator-generator"
)

// Config holds the resolved CLI configuration.
type Config struct {
	SchemaPath string `mapstructure:"schema_path" yaml:"schema_path"`
	Output     string `mapstructure:"output" yaml:"output"`

	DecimalType     string `mapstructure:"decimal_type" yaml:"decimal_type"`
	ValidatorModule string `mapstructure:"validator_module" yaml:"validator_module"`
	RuntimeModule   string `mapstructure:"runtime_module" yaml:"runtime_module"`
	EmitDocs        bool   `mapstructure:"emit_docs" yaml:"emit_docs"`

	Workers int  `mapstructure:"workers" yaml:"workers"`
	Prune   bool `mapstructure:"prune" yaml:"prune"`

	// ConfigFile is the file the settings were read from, if any.
	ConfigFile string `mapstructure:"-" yaml:"-"`
}

func newViper() (*viper.Viper, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, errors.Wrap(err, "resolve home directory")
	}

	v := viper.New()
	v.SetFs(AppFs)
	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(home)
	v.AddConfigPath(filepath.Join(home, ".config", "prisma-class-validator"))

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	defaults := codegen.DefaultOptions()
	v.SetDefault("schema_path", "")
	v.SetDefault("output", "./generated")
	v.SetDefault("decimal_type", defaults.DecimalType)
	v.SetDefault("validator_module", defaults.ValidatorModule)
	v.SetDefault("runtime_module", defaults.RuntimeModule)
	v.SetDefault("emit_docs", defaults.EmitDocs)
	v.SetDefault("workers", 0)
	v.SetDefault("prune", false)
	return v, nil
}

// Load reads the configuration from path, or from the search paths when
// path is empty. A missing config file on the search paths is not an error.
func Load(path string) (*Config, error) {
	loadDotEnv()

	v, err := newViper()
	if err != nil {
		return nil, err
	}
	if path != "" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, errors.Wrapf(err, "expand %s", path)
		}
		v.SetConfigFile(expanded)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, errors.WithHint(
				errors.Wrap(err, "read config file"),
				"run `prisma-class-validator init` to write a valid config file",
			)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	cfg.ConfigFile = v.ConfigFileUsed()
	debug.Debug("Config loaded", "file", cfg.ConfigFile, "output", cfg.Output)
	return cfg, nil
}

// loadDotEnv loads .env, then .env.local over it, when present.
func loadDotEnv() {
	if _, err := AppFs.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			debug.Warn("Failed to load .env", "error", err)
		}
	}
	if _, err := AppFs.Stat(".env.local"); err == nil {
		if err := godotenv.Overload(".env.local"); err != nil {
			debug.Warn("Failed to load .env.local", "error", err)
		}
	}
}

// Save writes cfg to path, or to ./.prisma-class-validator.yaml when path is empty.
func Save(cfg *Config, path string) (string, error) {
	v := viper.New()
	v.SetFs(AppFs)
	v.Set("schema_path", cfg.SchemaPath)
	v.Set("output", cfg.Output)
	v.Set("decimal_type", cfg.DecimalType)
	v.Set("validator_module", cfg.ValidatorModule)
	v.Set("runtime_module", cfg.RuntimeModule)
	v.Set("emit_docs", cfg.EmitDocs)
	v.Set("workers", cfg.Workers)
	v.Set("prune", cfg.Prune)

	if path == "" {
		path = FileName + ".yaml"
	}
	path, err := homedir.Expand(path)
	if err != nil {
		return "", errors.Wrapf(err, "expand %s", path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := AppFs.MkdirAll(dir, 0o755); err != nil {
			return "", errors.Wrapf(err, "create %s", dir)
		}
	}
	if err := v.WriteConfigAs(path); err != nil {
		return "", errors.Wrapf(err, "write %s", path)
	}
	return path, nil
}

// ApplyGeneratorBlock overlays the properties of the schema's generator
// block. A relative output is resolved against schemaDir.
func (c *Config) ApplyGeneratorBlock(props map[string]string, schemaDir string) error {
	if out, ok := props["output"]; ok && out != "" {
		expanded, err := homedir.Expand(out)
		if err != nil {
			return errors.Wrapf(err, "expand output %q", out)
		}
		if !filepath.IsAbs(expanded) {
			expanded = filepath.Join(schemaDir, expanded)
		}
		c.Output = expanded
	}
	if v, ok := props["decimalType"]; ok {
		c.DecimalType = v
	}
	if v, ok := props["validatorModule"]; ok {
		c.ValidatorModule = v
	}
	if v, ok := props["runtimeModule"]; ok {
		c.RuntimeModule = v
	}
	for key, dst := range map[string]*bool{"prune": &c.Prune, "emitDocs": &c.EmitDocs} {
		raw, ok := props[key]
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return errors.WithHintf(
				errors.Wrapf(err, "generator property %s", key),
				"%s must be true or false", key,
			)
		}
		*dst = b
	}
	return nil
}

// Generator converts the settings into a generator configuration.
func (c *Config) Generator() (generator.Config, error) {
	output, err := homedir.Expand(c.Output)
	if err != nil {
		return generator.Config{}, errors.Wrapf(err, "expand output %q", c.Output)
	}
	cfg := generator.Config{
		Output: output,
		Options: codegen.Options{
			DecimalType:     c.DecimalType,
			ValidatorModule: c.ValidatorModule,
			RuntimeModule:   c.RuntimeModule,
			EmitDocs:        c.EmitDocs,
		},
		Workers: c.Workers,
		Prune:   c.Prune,
	}
	return cfg, cfg.Validate()
}
