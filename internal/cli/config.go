package cli

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mkossman/keggdef/internal/util"
)

// Config holds the persistent settings from ~/.config/keggdef/config.yaml.
// Flags override config values; KEGGDEF_DATA_DIR overrides data_dir.
type Config struct {
	DataDir   string `yaml:"data_dir"`
	Verbosity int    `yaml:"verbosity"`
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "could not determine home directory")
	}
	return filepath.Join(home, ".config", "keggdef"), nil
}

// loadConfig reads the config file if present and applies environment
// overrides. A missing config file yields defaults, not an error.
func loadConfig() (*Config, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}

	// An optional .env next to the config file supplies overrides.
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	cfg := &Config{DataDir: filepath.Join(dir, "data")}

	path, err := util.GetDefaultConfigPath()
	if err != nil {
		return nil, err
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
	}

	if env := os.Getenv("KEGGDEF_DATA_DIR"); env != "" {
		cfg.DataDir = env
	}
	if cfg.DataDir, err = util.GetAbsolutePath(cfg.DataDir); err != nil {
		return nil, err
	}
	return cfg, nil
}
