package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	if cfg.Listen != ":8475" {
		t.Errorf("expected default listen :8475, got %q", cfg.Listen)
	}

	if len(cfg.WebSocket.AllowedOrigins) != 0 {
		t.Errorf("expected empty allowed origins by default, got %v", cfg.WebSocket.AllowedOrigins)
	}

	if cfg.WebSocket.MaxMessageSize != 4096 {
		t.Errorf("expected max message size 4096, got %d", cfg.WebSocket.MaxMessageSize)
	}

	if cfg.Atlas.Dialect != "sqlite" {
		t.Errorf("expected default atlas dialect sqlite, got %q", cfg.Atlas.Dialect)
	}
}

func TestLoadConfig_FileNotExists(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.yaml")

	if err != nil {
		t.Errorf("expected no error for missing file, got %v", err)
	}

	if cfg == nil {
		t.Fatal("expected default config for missing file, got nil")
	}

	if cfg.Atlas.DSN != "data/atlas.db" {
		t.Errorf("expected default atlas DSN, got %q", cfg.Atlas.DSN)
	}
}

func TestLoadConfig_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "server.yaml")

	content := `
listen: ":9000"
websocket:
  allowed_origins:
    - "https://example.com"
    - "http://localhost:3000"
  max_message_size: 8192
atlas:
  dialect: postgres
  dsn: "host=localhost dbname=everwild sslmode=disable"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Listen != ":9000" {
		t.Errorf("expected listen :9000, got %q", cfg.Listen)
	}

	if len(cfg.WebSocket.AllowedOrigins) != 2 {
		t.Errorf("expected 2 allowed origins, got %d", len(cfg.WebSocket.AllowedOrigins))
	}

	if cfg.WebSocket.AllowedOrigins[0] != "https://example.com" {
		t.Errorf("expected first origin 'https://example.com', got %s", cfg.WebSocket.AllowedOrigins[0])
	}

	if cfg.WebSocket.MaxMessageSize != 8192 {
		t.Errorf("expected max message size 8192, got %d", cfg.WebSocket.MaxMessageSize)
	}

	if cfg.Atlas.Dialect != "postgres" {
		t.Errorf("expected atlas dialect postgres, got %q", cfg.Atlas.Dialect)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "server.yaml")

	if err := os.WriteFile(configPath, []byte("listen: [broken"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(configPath)
	if err == nil {
		t.Error("expected parse error for invalid YAML")
	}
	if cfg == nil || cfg.Listen != ":8475" {
		t.Error("expected defaults back when YAML is invalid")
	}
}

func TestIsOriginAllowed(t *testing.T) {
	tests := []struct {
		name    string
		origins []string
		origin  string
		host    string
		want    bool
	}{
		{"empty list same origin", nil, "http://localhost:8475", "localhost:8475", true},
		{"empty list cross origin", nil, "http://evil.example.com", "localhost:8475", false},
		{"empty list no origin header", nil, "", "localhost:8475", true},
		{"wildcard", []string{"*"}, "http://anything.example.com", "localhost:8475", true},
		{"exact match", []string{"https://example.com"}, "https://example.com", "localhost:8475", true},
		{"no match", []string{"https://example.com"}, "https://other.com", "localhost:8475", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := WebSocketConfig{AllowedOrigins: tt.origins}
			if got := cfg.IsOriginAllowed(tt.origin, tt.host); got != tt.want {
				t.Errorf("IsOriginAllowed(%q, %q) = %v, want %v", tt.origin, tt.host, got, tt.want)
			}
		})
	}
}
