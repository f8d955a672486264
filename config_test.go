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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFileName)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := loadConfigFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), config); diff != "" {
		t.Errorf("missing file should give defaults (-want +got):\n%s", diff)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, "print: [this is: not yaml")
	config, err := loadConfigFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), config); diff != "" {
		t.Errorf("malformed file should give defaults (-want +got):\n%s", diff)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	path := writeConfig(t, `
print:
  indent: 2
cache:
  expiration: 30s
interpreter:
  prompt: "> "
`)
	config, err := loadConfigFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := DefaultConfig()
	want.Print.Indent = 2
	want.Cache.Expiration = 30 * time.Second
	want.Interpreter.Prompt = "> "
	if diff := cmp.Diff(want, config); diff != "" {
		t.Errorf("partial config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigNormalizesBadValues(t *testing.T) {
	path := writeConfig(t, `
print:
  indent: 0
bloom:
  expected_keys: 0
  false_positive_rate: 2
`)
	config, err := loadConfigFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Print.Indent != defaultConfig.Print.Indent {
		t.Errorf("indent = %d; want %d", config.Print.Indent, defaultConfig.Print.Indent)
	}
	if config.Bloom.ExpectedKeys != defaultConfig.Bloom.ExpectedKeys {
		t.Errorf("expected_keys = %d; want %d", config.Bloom.ExpectedKeys, defaultConfig.Bloom.ExpectedKeys)
	}
	if config.Bloom.FalsePositiveRate != defaultConfig.Bloom.FalsePositiveRate {
		t.Errorf("false_positive_rate = %g; want %g", config.Bloom.FalsePositiveRate, defaultConfig.Bloom.FalsePositiveRate)
	}
}

func TestCreateDefaultConfigFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	if err := createDefaultConfigFile(path); err != nil {
		t.Fatalf("createDefaultConfigFile: %v", err)
	}
	config, err := loadConfigFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), config); diff != "" {
		t.Errorf("written defaults did not load back (-want +got):\n%s", diff)
	}
}

func TestDefaultConfigIsACopy(t *testing.T) {
	c := DefaultConfig()
	c.Print.Indent = 99
	if defaultConfig.Print.Indent == 99 {
		t.Error("DefaultConfig must not share state with the built-in defaults")
	}
}

func TestWriteSettings(t *testing.T) {
	var buf bytes.Buffer
	writeSettings(&buf, DefaultConfig())
	out := buf.String()
	for _, want := range []string{"indent", "expiration", "expected_keys", "warn_unknown"} {
		if !strings.Contains(out, want) {
			t.Errorf("settings output missing %q:\n%s", want, out)
		}
	}
}
