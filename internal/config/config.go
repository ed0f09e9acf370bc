package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// Config описывает параметры журнала посещений.
type Config struct {
	Data struct {
		Path string `yaml:"path"`
	} `yaml:"data"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Audit struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"audit"`
	Export struct {
		Path string `yaml:"path"`
	} `yaml:"export"`
}

// Default возвращает конфигурацию по умолчанию.
func Default() Config {
	var cfg Config
	cfg.Data.Path = "data.csv"
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Audit.Enabled = false
	cfg.Audit.Path = "visitlog_audit.db"
	cfg.Export.Path = "visits.xlsx"
	return cfg
}

// Load читает конфиг из файла YAML, поверх значений по умолчанию.
// Пустой путь означает конфигурацию по умолчанию.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- путь к конфигу задает оператор.
	if err != nil {
		return cfg, err
	}
	if len(data) == 0 {
		return cfg, errors.New("config file is empty")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
