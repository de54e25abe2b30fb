// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package config loads the generator configuration file.
//
// The file may be YAML, JSON or TOML, selected by extension:
//
//	language_settings:
//	  php:
//	    package_name: Google\Cloud\Library\V1
//	    domain_layer_location: custom-domain
//	resource_name_generation:
//	  - message_name: Book
//	    field_entity_map:
//	      name: book
//
// Settings keys are case-insensitive. The resource_name_generation records
// are decoded from the raw document instead, so the field names in
// field_entity_map keep their case.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/albertocavalcante/apinames/model"
)

// Config is the generator configuration.
type Config struct {
	// LanguageSettings maps a generator name to its package settings.
	LanguageSettings map[string]LanguageSettings `mapstructure:"language_settings" validate:"dive"`

	// ResourceNameGeneration lists explicit resource name records.
	ResourceNameGeneration []model.ResourceNameGeneration `mapstructure:"-" validate:"dive"`
}

// LanguageSettings holds the package settings of one target language.
type LanguageSettings struct {
	PackageName         string `mapstructure:"package_name" validate:"required"`
	DomainLayerLocation string `mapstructure:"domain_layer_location"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads the configuration file at path. The format is taken from the
// file extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes configuration data in the given format ("yaml", "json"
// or "toml").
func Parse(data []byte, format string) (*Config, error) {
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := decodeRecords(data, format, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// decodeRecords fills cfg.ResourceNameGeneration from the raw document.
func decodeRecords(data []byte, format string, cfg *Config) error {
	var records struct {
		ResourceNameGeneration []model.ResourceNameGeneration `json:"resource_name_generation" yaml:"resource_name_generation" toml:"resource_name_generation"`
	}
	switch strings.ToLower(format) {
	case "toml":
		if err := toml.Unmarshal(data, &records); err != nil {
			return err
		}
	case "json":
		if err := json.Unmarshal(data, &records); err != nil {
			return err
		}
	default:
		if err := yaml.Unmarshal(data, &records); err != nil {
			return err
		}
	}
	cfg.ResourceNameGeneration = records.ResourceNameGeneration
	return nil
}

// Language returns the settings for lang.
func (c *Config) Language(lang string) (LanguageSettings, bool) {
	if c == nil {
		return LanguageSettings{}, false
	}
	s, ok := c.LanguageSettings[lang]
	return s, ok
}

// Languages returns the configured language names, sorted.
func (c *Config) Languages() []string {
	if c == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(c.LanguageSettings))
}
