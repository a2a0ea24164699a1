package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the language seed file.
type Config struct {
	Languages []LanguageSeed `yaml:"languages"`
	DryRun    bool           `yaml:"dry_run" env:"SEEDER_DRY_RUN"`
}

// LanguageSeed describes one language the registry should contain.
type LanguageSeed struct {
	Code                  string  `yaml:"code"`
	Name                  string  `yaml:"name"`
	Script                string  `yaml:"script"`
	TransliterationScheme *string `yaml:"transliteration_scheme"`
	Enabled               bool    `yaml:"enabled"`
}

// LoadConfig reads the seed file at path. Environment variables override
// the file's top-level settings.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("seeder config: path is required")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("seeder config: file %s: %w", path, err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
	}
	if len(cfg.Languages) == 0 {
		return nil, fmt.Errorf("seeder config: %s lists no languages", path)
	}
	return &cfg, nil
}
