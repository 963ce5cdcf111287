package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefault(t *testing.T) {
	p := Default()
	if p.ShowOrbits {
		t.Error("Expected orbits hidden by default")
	}
	if p.StartPaused {
		t.Error("Expected animation running by default")
	}
	if p.Camera.Fovy != 75 || p.Camera.Distance != 1000 || p.Camera.Damping != 0.25 {
		t.Errorf("Unexpected camera defaults %+v", p.Camera)
	}
	if p.Camera.Polar != float32(math.Pi/2) {
		t.Errorf("Expected camera in the orbital plane, got polar %v", p.Camera.Polar)
	}
}

func TestLoadMissing(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if !reflect.DeepEqual(p, Default()) {
		t.Error("Expected defaults for missing file")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orrery.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err == nil {
		t.Error("Expected decode error")
	}
	if !reflect.DeepEqual(p, Default()) {
		t.Error("Expected defaults alongside the error")
	}
}

func TestSaveLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "orrery.json")
	p := Default()
	p.ShowFPS = true
	p.Camera.Distance = 800
	if err := Save(path, p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(got, p) {
		t.Errorf("Expected %+v, got %+v", p, got)
	}

	if err := os.WriteFile(path, []byte(`{"show_orbits": true, "camera": {"fovy": 500}}`), 0644); err != nil {
		t.Fatal(err)
	}
	got, err = Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !got.ShowOrbits || got.Width != 1280 || got.Camera.Fovy != 75 || got.Camera.Distance != 1000 {
		t.Errorf("Expected partial file merged over defaults, got %+v", got)
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# comment\n\nORRERY_SHOW_FPS=true\nexport ORRERY_LOCALE=\"en\"\nORRERY_WIDTH='1600'\nbroken\n=nokey\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ORRERY_SHOW_FPS", "")
	os.Unsetenv("ORRERY_SHOW_FPS")
	t.Setenv("ORRERY_LOCALE", "")
	os.Unsetenv("ORRERY_LOCALE")
	t.Setenv("ORRERY_WIDTH", "1024")

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile failed: %v", err)
	}
	if os.Getenv("ORRERY_SHOW_FPS") != "true" || os.Getenv("ORRERY_LOCALE") != "en" {
		t.Errorf("Expected values from file, got %q %q", os.Getenv("ORRERY_SHOW_FPS"), os.Getenv("ORRERY_LOCALE"))
	}
	if os.Getenv("ORRERY_WIDTH") != "1024" {
		t.Errorf("Expected existing variable to win, got %q", os.Getenv("ORRERY_WIDTH"))
	}
	if err := LoadEnvFile(filepath.Join(t.TempDir(), "missing")); err != nil {
		t.Errorf("Expected missing .env to be ignored, got %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("ORRERY_SHOW_ORBITS", "1")
	t.Setenv("ORRERY_START_PAUSED", "yes")
	t.Setenv("ORRERY_BODIES", "custom.yaml")
	t.Setenv("ORRERY_TEXTURES", "a"+string(os.PathListSeparator)+"b")
	t.Setenv("ORRERY_MAX_TEXTURE", "512")

	p := Default()
	err := ApplyEnv(&p)
	if err == nil {
		t.Error("Expected error for ORRERY_START_PAUSED=yes")
	}
	if !p.ShowOrbits || p.StartPaused {
		t.Errorf("Expected orbits on and pause untouched, got %+v", p)
	}
	if p.BodiesFile != "custom.yaml" || p.MaxTexture != 512 {
		t.Errorf("Unexpected overrides %+v", p)
	}
	if !reflect.DeepEqual(p.TextureDirs, []string{"a", "b"}) {
		t.Errorf("Expected split texture dirs, got %v", p.TextureDirs)
	}
}
