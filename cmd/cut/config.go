package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// fileConfig holds defaults read from a YAML file. Flags given on the
// command line take precedence.
type fileConfig struct {
	Delimiter     string `yaml:"delimiter"`
	Workers       int    `yaml:"workers"`
	OnlyDelimited bool   `yaml:"only_delimited"`
	Color         string `yaml:"color"`
	Addr          string `yaml:"addr"`
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// apply sets every flag the user did not set explicitly from cfg.
func (cfg fileConfig) apply(flags *pflag.FlagSet) error {
	values := map[string]string{}
	if cfg.Delimiter != "" {
		values["delim"] = cfg.Delimiter
	}
	if cfg.Workers != 0 {
		values["workers"] = strconv.Itoa(cfg.Workers)
	}
	if cfg.OnlyDelimited {
		values["only-delimited"] = "true"
	}
	if cfg.Color != "" {
		values["color"] = cfg.Color
	}
	if cfg.Addr != "" {
		values["addr"] = cfg.Addr
	}

	for name, value := range values {
		flag := flags.Lookup(name)
		if flag == nil || flag.Changed {
			continue
		}
		if err := flags.Set(name, value); err != nil {
			return fmt.Errorf("config %s: %w", name, err)
		}
	}

	return nil
}
