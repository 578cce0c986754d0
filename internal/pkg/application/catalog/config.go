package catalog

import (
	"io"

	yaml "gopkg.in/yaml.v2"
)

type FragmentConfig struct {
	Name      string   `yaml:"name"`
	On        string   `yaml:"on"`
	DependsOn []string `yaml:"dependsOn"`
	Selection string   `yaml:"selection"`
}

type OperationConfig struct {
	Name     string `yaml:"name"`
	Template string `yaml:"template"`
	// Variables holds default values that callers may override
	Variables map[string]any `yaml:"variables"`
}

type Config struct {
	Fragments  []FragmentConfig  `yaml:"fragments"`
	Operations []OperationConfig `yaml:"operations"`
}

func LoadConfiguration(data io.Reader) (*Config, error) {

	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(buf, &cfg)
	if err != nil {
		return nil, err
	}

	// a document holding only null leaves cfg nil
	if cfg == nil {
		cfg = &Config{}
	}

	return cfg, nil
}
