package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xolan/hours/internal/config"
)

func TestNewConfigService(t *testing.T) {
	svc := NewConfigService("/tmp/config.toml", config.DefaultConfig())
	if svc == nil {
		t.Fatal("expected non-nil service")
	}
}

func TestConfigService_Get(t *testing.T) {
	cfg := config.DefaultConfig()
	svc := NewConfigService("/tmp/config.toml", cfg)

	result := svc.Get()
	if result != cfg {
		t.Errorf("Get() = %+v, expected %+v", result, cfg)
	}
}

func TestConfigService_GetPath(t *testing.T) {
	svc := NewConfigService("/tmp/test/config.toml", config.DefaultConfig())

	if path := svc.GetPath(); path != "/tmp/test/config.toml" {
		t.Errorf("expected path '/tmp/test/config.toml', got %q", path)
	}
}

func TestConfigService_Exists(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService(configPath, config.DefaultConfig())

	if svc.Exists() {
		t.Error("expected Exists() to return false")
	}

	if err := os.WriteFile(configPath, []byte("backups = 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if !svc.Exists() {
		t.Error("expected Exists() to return true")
	}
}

func TestConfigService_Update(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService(configPath, config.DefaultConfig())

	newCfg := config.Config{
		DataFile: " team.csv ",
		Backups:  5,
		Theme:    "Nord",
		Confirm:  false,
	}

	if err := svc.Update(newCfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result := svc.Get()
	if result.DataFile != "team.csv" {
		t.Errorf("expected DataFile 'team.csv', got %q", result.DataFile)
	}
	if result.Theme != "nord" {
		t.Errorf("expected Theme 'nord', got %q", result.Theme)
	}

	// The written file must load back to the same values
	loaded, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("failed to load written config: %v", err)
	}
	if loaded != result {
		t.Errorf("loaded config = %+v, expected %+v", loaded, result)
	}
}

func TestConfigService_Update_Invalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService(configPath, config.DefaultConfig())

	cfg := config.DefaultConfig()
	cfg.Backups = config.MaxBackups + 1

	err := svc.Update(cfg)
	if err == nil {
		t.Fatal("expected error for invalid backups")
	}
	if !strings.Contains(err.Error(), "invalid configuration") {
		t.Errorf("unexpected error: %v", err)
	}
	if svc.Exists() {
		t.Error("invalid config should not be written")
	}
	if svc.Get().Backups != config.DefaultBackups {
		t.Error("invalid config should not replace the in-memory config")
	}
}

func TestConfigService_Update_WriteError(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "missing", "config.toml")
	svc := NewConfigService(configPath, config.DefaultConfig())

	err := svc.Update(config.DefaultConfig())
	if err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
	if !strings.Contains(err.Error(), "failed to write config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestConfigService_Init(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService(configPath, config.DefaultConfig())

	if err := svc.Init(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to read config file: %v", err)
	}
	if string(content) != config.GenerateSampleConfig() {
		t.Error("Init() did not write the sample config")
	}

	// The sample only has comments, so it loads as the defaults
	loaded, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
	if loaded != config.DefaultConfig() {
		t.Errorf("sample config loaded as %+v", loaded)
	}
}

func TestConfigService_Init_AlreadyExists(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("backups = 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	svc := NewConfigService(configPath, config.DefaultConfig())

	err := svc.Init()
	if err == nil {
		t.Fatal("expected error when config already exists")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestConfigService_Reload(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService(configPath, config.DefaultConfig())

	if err := os.WriteFile(configPath, []byte("backups = 7\ntheme = \"nord\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := svc.Reload(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := svc.Get(); got.Backups != 7 || got.Theme != "nord" {
		t.Errorf("Reload() gave %+v", got)
	}
}

func TestConfigService_Reload_Missing(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	cfg := config.DefaultConfig()
	cfg.Backups = 9
	svc := NewConfigService(configPath, cfg)

	if err := svc.Reload(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.Get() != config.DefaultConfig() {
		t.Errorf("Reload() of missing file should give defaults, got %+v", svc.Get())
	}
}

func TestConfigService_Reload_Invalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("backups = = 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	svc := NewConfigService(configPath, config.DefaultConfig())

	err := svc.Reload()
	if err == nil {
		t.Fatal("expected error for malformed config")
	}
	if !strings.Contains(err.Error(), "failed to load config") {
		t.Errorf("unexpected error: %v", err)
	}
}
