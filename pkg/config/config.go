package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/dirsh/pkg/errors"
	"github.com/arthur-debert/dirsh/pkg/logging"
)

// Config holds the tunable behavior of the shell.
type Config struct {
	// PromptSuffix is appended to the cursor in the prompt.
	PromptSuffix string `toml:"prompt_suffix" env:"DIRSH_PROMPT_SUFFIX"`

	// ShowHidden includes dot entries in listDir and fileTree output.
	// The archive packer always skips hidden entries regardless.
	ShowHidden bool `toml:"show_hidden" env:"DIRSH_SHOW_HIDDEN"`

	// ArchiveChunkSize is the buffer size, in bytes, used when streaming
	// file contents into and out of archives.
	ArchiveChunkSize int `toml:"archive_chunk_size" env:"DIRSH_ARCHIVE_CHUNK_SIZE"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		PromptSuffix:     "$ ",
		ShowHidden:       false,
		ArchiveChunkSize: 32 * 1024,
	}
}

// Load reads the config file from the XDG config directory and applies
// environment overrides. A missing file yields the defaults.
func Load() (Config, error) {
	path, err := xdg.SearchConfigFile(filepath.Join("dirsh", "config.toml"))
	if err != nil {
		// No config file anywhere on the search path.
		return loadEnv(Default())
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from an explicit path and applies environment
// overrides.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return loadEnv(cfg)
		}
		return cfg, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse config file %s", path)
	}

	logger := logging.GetLogger("config")
	logger.Debug().Str("path", path).Msg("Loaded config file")
	return loadEnv(cfg)
}

// loadEnv applies DIRSH_* environment overrides and validates the result.
func loadEnv(cfg Config) (Config, error) {
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Wrap(err, errors.ErrConfigParse, "cannot parse environment overrides")
	}
	if cfg.ArchiveChunkSize <= 0 {
		return cfg, errors.Newf(errors.ErrInvalidInput,
			"archive_chunk_size must be positive, got %d", cfg.ArchiveChunkSize)
	}
	return cfg, nil
}
