package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the layout of the --config file:
//
//	pattern: 'This (?P<copula>\w+) a (?P<noun>\w+)'
//	dialect: stdlib
//	set:
//	  copula: was
type fileConfig struct {
	Pattern string            `yaml:"pattern"`
	Dialect string            `yaml:"dialect"`
	Set     map[string]string `yaml:"set"`
}

func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &fc, nil
}
