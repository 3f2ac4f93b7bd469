// Copyright (c) Microsoft. All rights reserved.

package pipeline_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/microsoft/commerce-agents/pipeline"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
model: gpt-4o-mini
temperature: 0.2
max_iterations: 6
tool_server:
  command: commerce-tools
  arguments: ["toolserver"]
logging:
  level: debug
`)

	cfg, err := pipeline.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.Temperature != 0.2 {
		t.Errorf("Temperature = %g", cfg.Temperature)
	}
	if cfg.MaxIterations != 6 {
		t.Errorf("MaxIterations = %d", cfg.MaxIterations)
	}
	if cfg.ToolServer.Command != "commerce-tools" {
		t.Errorf("ToolServer.Command = %q", cfg.ToolServer.Command)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	// A sparse file keeps the defaults for everything it omits.
	path := writeConfig(t, "model: gpt-4o\n")

	cfg, err := pipeline.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	want := pipeline.DefaultConfig()
	if cfg.MaxIterations != want.MaxIterations {
		t.Errorf("MaxIterations = %d, want %d", cfg.MaxIterations, want.MaxIterations)
	}
	if cfg.Temperature != want.Temperature {
		t.Errorf("Temperature = %g, want %g", cfg.Temperature, want.Temperature)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"empty model", "model: \"\"\n", "model must not be empty"},
		{"bad iterations", "max_iterations: 0\n", "max_iterations must be at least 1"},
		{"bad temperature", "temperature: 3.5\n", "temperature must be between"},
		{"malformed yaml", "model: [unclosed\n", "parse config file"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.content)
			_, err := pipeline.LoadConfig(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("err = %v, want substring %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := pipeline.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error")
	}
}
