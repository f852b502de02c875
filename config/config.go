package config

import (
	"fmt"
	"os"

	"github.com/jinzhu/copier"
	"github.com/ryanreadbooks/cmdrun/pkg/cmdline"
	"gopkg.in/yaml.v3"
)

type RunConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

type BatchConfig struct {
	Workers int `yaml:"workers"`
}

// The configuration for cmdrun.
type Config struct {
	// Variables consulted before the process environment when expanding
	// %NAME% references.
	Variables      map[string]string `yaml:"variables"`
	PreserveQuotes bool              `yaml:"preserve_quotes"`
	Run            RunConfig         `yaml:"run"`
	Batch          BatchConfig       `yaml:"batch"`
}

var conf Config

func GetConfig() Config {
	return conf
}

func BootstrapConfig() Config {
	return Config{
		Variables:      map[string]string{},
		PreserveQuotes: false,
		Run: RunConfig{
			TimeoutSeconds: 60,
		},
		Batch: BatchConfig{
			Workers: 8,
		},
	}
}

func LoadConfig() (c Config, err error) {
	c = BootstrapConfig()
	configPath, err := GetWorkspaceConfigPath()
	if err != nil {
		err = fmt.Errorf("failed to get config path: %w", err)
		return
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// no config file, run on defaults
			err = nil
			return
		}
		err = fmt.Errorf("failed to read config file: %w", err)
		return
	}

	err = yaml.Unmarshal(content, &c)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal config file: %w", err)
		return
	}

	return
}

// Overlay deep-copies the config and applies per-invocation variable
// overrides on top of the file-provided ones.
func (c Config) Overlay(vars map[string]string) (Config, error) {
	var out Config
	if err := copier.CopyWithOption(&out, &c, copier.Option{DeepCopy: true}); err != nil {
		return Config{}, fmt.Errorf("failed to copy config: %w", err)
	}
	if out.Variables == nil {
		out.Variables = make(map[string]string, len(vars))
	}
	for name, value := range vars {
		out.Variables[name] = value
	}
	return out, nil
}

// Lookup resolves %NAME% references against the configured variables
// first, then the process environment.
func (c Config) Lookup() cmdline.Lookup {
	return cmdline.ChainLookup(cmdline.MapLookup(c.Variables), cmdline.EnvLookup)
}
