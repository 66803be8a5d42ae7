package config

import (
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// LoadTomlFile loads the content of a toml file into the provided destination
func LoadTomlFile(dest interface{}, relativePath string) error {
	fileTree, err := toml.LoadFile(relativePath)
	if err != nil {
		return errors.Wrapf(err, "loading toml file %s", relativePath)
	}

	err = fileTree.Unmarshal(dest)
	if err != nil {
		return errors.Wrapf(err, "decoding toml file %s", relativePath)
	}

	return nil
}

// LoadMainConfig returns a Config by reading the config file provided
func LoadMainConfig(filepath string) (*Config, error) {
	cfg := &Config{}
	err := LoadTomlFile(cfg, filepath)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadApiConfig returns an ApiRoutesConfig by reading the config file provided
func LoadApiConfig(filepath string) (*ApiRoutesConfig, error) {
	cfg := &ApiRoutesConfig{}
	err := LoadTomlFile(cfg, filepath)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
