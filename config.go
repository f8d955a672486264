// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".redblack.yaml"

type PrintConfig struct {
	Indent int  `yaml:"indent"`
	Color  bool `yaml:"color"`
}

type CacheConfig struct {
	Enabled    bool          `yaml:"enabled"`
	Expiration time.Duration `yaml:"expiration"`
	Cleanup    time.Duration `yaml:"cleanup"`
}

type BloomConfig struct {
	Enabled           bool    `yaml:"enabled"`
	ExpectedKeys      uint    `yaml:"expected_keys"`
	FalsePositiveRate float64 `yaml:"false_positive_rate"`
}

type InterpreterConfig struct {
	Prompt      string `yaml:"prompt"`
	WarnUnknown bool   `yaml:"warn_unknown"`
}

type Config struct {
	Print       PrintConfig       `yaml:"print"`
	Cache       CacheConfig       `yaml:"cache"`
	Bloom       BloomConfig       `yaml:"bloom"`
	Interpreter InterpreterConfig `yaml:"interpreter"`
}

var defaultConfig = Config{
	Print: PrintConfig{
		Indent: 4,
		Color:  true,
	},
	Cache: CacheConfig{
		Enabled:    true,
		Expiration: findCacheExpiration,
		Cleanup:    findCacheCleanup,
	},
	Bloom: BloomConfig{
		Enabled:           true,
		ExpectedKeys:      100_000,
		FalsePositiveRate: 0.01,
	},
	Interpreter: InterpreterConfig{
		Prompt:      "",
		WarnUnknown: true,
	},
}

// DefaultConfig returns a copy of the built-in settings.
func DefaultConfig() *Config {
	c := defaultConfig
	return &c
}

// LoadConfig reads ~/.redblack.yaml. Any problem with the file falls back to
// the defaults, so the interpreter always starts.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return DefaultConfig(), nil
	}

	// Unset fields keep their default values.
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), nil
	}
	config.normalize()

	return config, nil
}

func (c *Config) normalize() {
	if c.Print.Indent < 1 {
		c.Print.Indent = defaultConfig.Print.Indent
	}
	if c.Bloom.ExpectedKeys == 0 {
		c.Bloom.ExpectedKeys = defaultConfig.Bloom.ExpectedKeys
	}
	if c.Bloom.FalsePositiveRate <= 0 || c.Bloom.FalsePositiveRate >= 1 {
		c.Bloom.FalsePositiveRate = defaultConfig.Bloom.FalsePositiveRate
	}
	if c.Cache.Expiration <= 0 {
		c.Cache.Expiration = defaultConfig.Cache.Expiration
	}
	if c.Cache.Cleanup <= 0 {
		c.Cache.Cleanup = defaultConfig.Cache.Cleanup
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings(w io.Writer) {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Fprintf(w, "❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Fprintf(w, "❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Fprintf(w, "✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		fmt.Fprintf(w, "❌ Failed to load configuration: %v\n", err)
		return
	}

	fmt.Fprintf(w, "🔧 Redblack Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")

	if configExists {
		fmt.Fprintf(w, "📍 Config file: %s\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Fprintf(w, "📊 Current settings:\n\n")
	writeSettings(w, config)
}

func writeSettings(w io.Writer, config *Config) {
	fmt.Fprintf(w, "🌳 %sPrint:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sindent%s: %d\n", Green, Reset, config.Print.Indent)
	fmt.Fprintf(w, "  • %scolor%s: %t\n\n", Green, Reset, config.Print.Color)

	fmt.Fprintf(w, "⚡ %sFind cache:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %senabled%s: %t\n", Green, Reset, config.Cache.Enabled)
	fmt.Fprintf(w, "  • %sexpiration%s: %s\n", Green, Reset, config.Cache.Expiration)
	fmt.Fprintf(w, "  • %scleanup%s: %s\n\n", Green, Reset, config.Cache.Cleanup)

	fmt.Fprintf(w, "🔍 %sKey filter:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %senabled%s: %t\n", Green, Reset, config.Bloom.Enabled)
	fmt.Fprintf(w, "  • %sexpected_keys%s: %d\n", Green, Reset, config.Bloom.ExpectedKeys)
	fmt.Fprintf(w, "  • %sfalse_positive_rate%s: %g\n\n", Green, Reset, config.Bloom.FalsePositiveRate)

	fmt.Fprintf(w, "💬 %sInterpreter:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sprompt%s: %q\n", Green, Reset, config.Interpreter.Prompt)
	fmt.Fprintf(w, "  • %swarn_unknown%s: %t\n", Green, Reset, config.Interpreter.WarnUnknown)
}
