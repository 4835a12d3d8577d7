package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "truffula.yaml")
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return cfgPath
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Errorf("Load empty path: got error %v, want nil", err)
	}
	if cfg != nil {
		t.Errorf("Load empty path: got %+v, want nil", cfg)
	}
}

func TestLoad_NonexistentFile(t *testing.T) {
	_, err := Load("/nonexistent/path/to/truffula.yaml")
	if err == nil {
		t.Error("Load nonexistent file: got nil error, want error")
	}
}

func TestLoadOptional_NonexistentFile(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), DefaultConfigFile))
	if err != nil {
		t.Errorf("LoadOptional missing file: got error %v, want nil", err)
	}
	if cfg != nil {
		t.Errorf("LoadOptional missing file: got %+v, want nil", cfg)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	cfgPath := writeConfig(t, "show_hidden: true\ncolor: never\ndepth: 3\nlog_level: debug\n")

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ShowHidden == nil || !*cfg.ShowHidden {
		t.Errorf("ShowHidden: got %v, want true", cfg.ShowHidden)
	}
	if cfg.Color == nil || *cfg.Color != ColorNever {
		t.Errorf("Color: got %v, want %q", cfg.Color, ColorNever)
	}
	if cfg.Depth == nil || *cfg.Depth != 3 {
		t.Errorf("Depth: got %v, want 3", cfg.Depth)
	}
	if cfg.LogLevel == nil || *cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %v, want debug", cfg.LogLevel)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	cfgPath := writeConfig(t, "color: [unterminated\n")

	_, err := Load(cfgPath)
	if err == nil {
		t.Error("Load invalid YAML: got nil error, want error")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"bad color", "color: rainbow\n", "unknown color mode"},
		{"bad level", "log_level: loud\n", "unknown log level"},
		{"negative depth", "depth: -1\n", "depth must be >= 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("got nil error, want error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestResolve_Precedence(t *testing.T) {
	// defaults < config file < CLI flags
	cfg, err := Load(writeConfig(t, "show_hidden: true\ncolor: never\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	resolved := cfg.Resolve(nil)
	if !resolved.ShowHidden {
		t.Error("Resolve without CLI: ShowHidden got false, want true (from config)")
	}
	if resolved.Color != ColorNever {
		t.Errorf("Resolve without CLI: Color got %q, want %q (from config)", resolved.Color, ColorNever)
	}
	if resolved.Depth != DefaultDepth {
		t.Errorf("Resolve without CLI: Depth got %d, want %d (default)", resolved.Depth, DefaultDepth)
	}

	color := ColorAlways
	depth := 2
	resolved = cfg.Resolve(&FileConfig{Color: &color, Depth: &depth})
	if resolved.Color != ColorAlways {
		t.Errorf("Resolve with CLI: Color got %q, want %q", resolved.Color, ColorAlways)
	}
	if resolved.Depth != 2 {
		t.Errorf("Resolve with CLI: Depth got %d, want 2", resolved.Depth)
	}
	if !resolved.ShowHidden {
		t.Error("Resolve with CLI: ShowHidden got false, want true (from config)")
	}
}

func TestResolve_NilConfig(t *testing.T) {
	resolved := Resolve(nil)
	if resolved != DefaultSettings() {
		t.Errorf("Resolve(nil) = %+v, want %+v", resolved, DefaultSettings())
	}

	var cfg *FileConfig
	hidden := true
	resolved = cfg.Resolve(&FileConfig{ShowHidden: &hidden})
	if !resolved.ShowHidden {
		t.Error("nil.Resolve with CLI: ShowHidden got false, want true")
	}
}

func TestDefaultFileConfig_RoundTrip(t *testing.T) {
	data, err := DefaultFileConfig().Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	cfg, err := Load(writeConfig(t, string(data)))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.Resolve(nil); got != DefaultSettings() {
		t.Errorf("round trip = %+v, want %+v", got, DefaultSettings())
	}
}

func TestIsValidColorMode(t *testing.T) {
	for _, mode := range ValidColorModes {
		if !IsValidColorMode(mode) {
			t.Errorf("IsValidColorMode(%q) = false, want true", mode)
		}
	}
	if IsValidColorMode("sometimes") {
		t.Error(`IsValidColorMode("sometimes") = true, want false`)
	}
}
