package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestApplyFileConfig(t *testing.T) {
	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				Path:      "/data/udo.json",
				LogLevel:  "debug",
				LogFormat: "json",
				Output:    "yaml",
				Debounce:  "250ms",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				Path:      "/data/udo.json",
				LogLevel:  "debug",
				LogFormat: "json",
				Output:    "yaml",
				Debounce:  250 * time.Millisecond,
			},
		},
		{
			name:       "respects changed flags",
			fileConfig: FileConfig{Path: "/file/udo.json", Output: "yaml"},
			changed:    map[string]bool{"path": true},
			initial:    Config{Path: "/flag/udo.json", Output: "json"},
			expected:   Config{Path: "/flag/udo.json", Output: "yaml"},
		},
		{
			name:       "empty values keep defaults",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			expected:   DefaultConfig(),
		},
		{
			name:       "invalid duration",
			fileConfig: FileConfig{Debounce: "soon"},
			changed:    map[string]bool{},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Fatal("ApplyFileConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyFileConfig() unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Fatalf("ApplyFileConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
path = "/var/lib/udo/udo.json"
log_level = "warn"
output = "percent"
debounce = "1s"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig: %v", err)
	}
	want := FileConfig{Path: "/var/lib/udo/udo.json", LogLevel: "warn", Output: "percent", Debounce: "1s"}
	if fc != want {
		t.Fatalf("LoadFileConfig = %+v, want %+v", fc, want)
	}
}

func TestLoadFileConfigErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadFileConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("path = [unterminated"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFileConfig(bad); err == nil {
		t.Fatal("expected error for malformed TOML")
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existingFile := filepath.Join(tmpDir, "exists.txt")
	if err := os.WriteFile(existingFile, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if !FileExists(existingFile) {
		t.Error("FileExists() = false, want true for existing file")
	}
	if FileExists(filepath.Join(tmpDir, "nonexistent.txt")) {
		t.Error("FileExists() = true, want false for nonexistent file")
	}
}
