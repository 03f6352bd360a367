package gitconfig

import (
	"testing"
)

func TestSetGetRoundTrip(t *testing.T) {
	cfg := New(t.TempDir())
	cfg.Set("user", "name", "Ada Lovelace")

	got, ok := cfg.Get("user", "name")
	if !ok || got != "Ada Lovelace" {
		t.Errorf("Get(user.name) = (%q, %v), want (Ada Lovelace, true)", got, ok)
	}
	if _, ok := cfg.Get("user", "email"); ok {
		t.Error("Get(user.email) should be unset")
	}
}

func TestWriteLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := New(dir)
	cfg.Set("user", "name", "Ada Lovelace")
	cfg.Set("user", "email", "ada@example.com")
	cfg.Set("remote.origin", "url", "/tmp/somewhere")

	if err := cfg.Write(); err != nil {
		t.Fatalf("Write: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	name, ok := loaded.Get("user", "name")
	if !ok || name != "Ada Lovelace" {
		t.Errorf("loaded user.name = (%q, %v)", name, ok)
	}
	email, ok := loaded.Get("user", "email")
	if !ok || email != "ada@example.com" {
		t.Errorf("loaded user.email = (%q, %v)", email, ok)
	}
	url, ok := loaded.Get("remote.origin", "url")
	if !ok || url != "/tmp/somewhere" {
		t.Errorf("loaded remote.origin.url = (%q, %v)", url, ok)
	}
}

func TestLoadMissingFileReturnsEmptyConfig(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Settings) != 0 {
		t.Errorf("Settings = %v, want empty", cfg.Settings)
	}
}
