package utils

import (
	"os"
	"path/filepath"
	"testing"

	"musou/world"
)

// TestReadTOML reads a known test config, checking the value of each key.
func TestReadTOML(t *testing.T) {
	cfg, err := ReadTOML("testConf.toml")
	if err != nil {
		t.Fatalf("ReadTOML: %v", err)
	}

	if cfg.Game.Width != 800 || cfg.Game.Height != 600 {
		t.Fatalf("Game size = %vx%v, want 800x600", cfg.Game.Width, cfg.Game.Height)
	}
	if cfg.Game.InitialScore == nil || *cfg.Game.InitialScore != 150 {
		t.Fatalf("Game.InitialScore = %v, want 150", cfg.Game.InitialScore)
	}
	if cfg.Game.Seed != 42 {
		t.Fatalf("Game.Seed = %v, want 42", cfg.Game.Seed)
	}
	if cfg.UI.Title != "test" {
		t.Fatalf("UI.Title = %q, want %q", cfg.UI.Title, "test")
	}
	if cfg.UI.Resolution.X != 1 || cfg.UI.Resolution.Y != 1 {
		t.Fatalf("UI.Resolution = %+v, want {1 1}", cfg.UI.Resolution)
	}
}

func TestReadTOMLMissingFile(t *testing.T) {
	if _, err := ReadTOML(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("ReadTOML on a missing file returned no error")
	}
}

func TestReadTOMLMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[Game\nWidth = "), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadTOML(path); err == nil {
		t.Fatal("ReadTOML on malformed input returned no error")
	}
}

func TestWorldConfig(t *testing.T) {
	cfg, err := ReadTOML("testConf.toml")
	if err != nil {
		t.Fatalf("ReadTOML: %v", err)
	}
	got := cfg.World()
	if got.FieldWidth != 800 || got.FieldHeight != 600 {
		t.Fatalf("field = %vx%v, want 800x600", got.FieldWidth, got.FieldHeight)
	}
	if got.InitialScore != 150 || got.Seed != 42 || got.History != 8 {
		t.Fatalf("World() = %+v", got)
	}
	want := world.Vector{X: 600, Y: 350}
	if got.PlayerStart != want {
		t.Fatalf("PlayerStart = %+v, want %+v", got.PlayerStart, want)
	}
}

func TestWorldConfigDefaults(t *testing.T) {
	var cfg Config
	got := cfg.World()
	if got != world.DefaultConfig() {
		t.Fatalf("World() of empty config = %+v, want defaults %+v", got, world.DefaultConfig())
	}
	x, y := cfg.Resolution(got)
	if x != 1100 || y != 650 {
		t.Fatalf("Resolution() = %dx%d, want 1100x650", x, y)
	}
}

func TestWorldConfigZeroInitialScore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zero.toml")
	if err := os.WriteFile(path, []byte("[Game]\nInitialScore = 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := ReadTOML(path)
	if err != nil {
		t.Fatalf("ReadTOML: %v", err)
	}
	if got := cfg.World().InitialScore; got != 0 {
		t.Fatalf("InitialScore = %d, want an explicit 0 kept", got)
	}
}
