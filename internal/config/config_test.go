package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	wantCatalog, err := expandPath(defaultCatalogPath)
	if err != nil {
		t.Fatalf("expandPath(defaultCatalogPath) returned error: %v", err)
	}
	if cfg.CatalogPath != wantCatalog {
		t.Fatalf("CatalogPath = %q, want %q", cfg.CatalogPath, wantCatalog)
	}
	if !strings.HasPrefix(cfg.LyricsDir, home) {
		t.Fatalf("LyricsDir = %q, want it under HOME %q", cfg.LyricsDir, home)
	}
	if cfg.APIURL != "" || cfg.Remote() {
		t.Fatalf("APIURL = %q, want empty", cfg.APIURL)
	}
	if !cfg.Watch {
		t.Fatal("Watch = false, want true by default")
	}
	if cfg.LogPath() != filepath.Join(cfg.LogDir, "bayaz.log") {
		t.Fatalf("LogPath = %q", cfg.LogPath())
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
catalog = "  ~/songs/catalog.yaml  "
lyrics_dir = " /srv/lyrics "
api_url = "  https://lyrics.example.org  "
log_dir = "~/logs"
watch = false
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.CatalogPath != filepath.Join(home, "songs", "catalog.yaml") {
		t.Fatalf("CatalogPath = %q", cfg.CatalogPath)
	}
	if cfg.LyricsDir != "/srv/lyrics" {
		t.Fatalf("LyricsDir = %q, want /srv/lyrics", cfg.LyricsDir)
	}
	if cfg.APIURL != "https://lyrics.example.org" || !cfg.Remote() {
		t.Fatalf("APIURL = %q", cfg.APIURL)
	}
	if cfg.LogPath() != filepath.Join(home, "logs", "bayaz.log") {
		t.Fatalf("LogPath = %q", cfg.LogPath())
	}
	if cfg.Watch {
		t.Fatal("Watch = true, want false")
	}
}

func TestLoad_BlankValuesKeepDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
catalog = "   "
lyrics_dir = ""
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.CatalogPath != filepath.Join(home, ".local", "share", "bayaz", "catalog.json") {
		t.Fatalf("CatalogPath = %q", cfg.CatalogPath)
	}
	if cfg.LyricsDir != filepath.Join(home, ".local", "share", "bayaz", "lyrics") {
		t.Fatalf("LyricsDir = %q", cfg.LyricsDir)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("catalog = [unterminated"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %v, want parse config error", err)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/x")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	if got != filepath.Join(home, "x") {
		t.Fatalf("expandPath(~/x) = %q", got)
	}
	if _, err := expandPath("  "); err == nil {
		t.Fatal("expandPath(blank) returned nil error")
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("BAYAZ_API_URL", " http://localhost:5000 ")
	t.Setenv("BAYAZ_CATALOG", "~/other.yaml")
	t.Setenv("BAYAZ_WATCH", "false")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("api_url = \"https://lyrics.example.org\"\nwatch = true\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "http://localhost:5000" {
		t.Fatalf("APIURL = %q, want env value", cfg.APIURL)
	}
	if cfg.CatalogPath != filepath.Join(home, "other.yaml") {
		t.Fatalf("CatalogPath = %q", cfg.CatalogPath)
	}
	if cfg.Watch {
		t.Fatal("Watch = true, want env override false")
	}
}

func TestLoad_EnvironmentWithoutFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("BAYAZ_LOG_DIR", filepath.Join(home, "custom-logs"))

	cfg, err := Load(filepath.Join(home, "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogPath() != filepath.Join(home, "custom-logs", "bayaz.log") {
		t.Fatalf("LogPath = %q", cfg.LogPath())
	}
}

func TestLoad_InvalidEnvironment(t *testing.T) {
	t.Setenv("BAYAZ_WATCH", "sometimes")
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil || !strings.Contains(err.Error(), "parse environment") {
		t.Fatalf("Load error = %v, want parse environment error", err)
	}
}
