package site

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindPresetBuiltin(t *testing.T) {
	p, ok := FindPreset("Jaipur", nil)
	if !ok {
		t.Fatal("Jaipur preset not found")
	}
	if p.Latitude != 26.9167 || p.Longitude != 75.8167 {
		t.Errorf("Jaipur = %g/%g, want 26.9167/75.8167", p.Latitude, p.Longitude)
	}
}

func TestFindPresetCaseInsensitive(t *testing.T) {
	if _, ok := FindPreset("ujjain", nil); !ok {
		t.Error("lowercase preset name not found")
	}
	if _, ok := FindPreset("UJJAIN", nil); !ok {
		t.Error("uppercase preset name not found")
	}
}

func TestFindPresetExtraShadowsBuiltin(t *testing.T) {
	extra := []Preset{{Name: "Jaipur", Latitude: 1, Longitude: 2}}
	p, ok := FindPreset("Jaipur", extra)
	if !ok || p.Latitude != 1 {
		t.Errorf("extra preset did not shadow builtin: %+v, ok=%v", p, ok)
	}
}

func TestFindPresetUnknown(t *testing.T) {
	if _, ok := FindPreset("Atlantis", nil); ok {
		t.Error("unknown preset reported as found")
	}
}

func TestLoadPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sites.toml")
	content := `
[[sites]]
name = "Greenwich"
latitude = 51.4769
longitude = 0.0005

[[sites]]
name = "Samarkand"
latitude = 39.6542
longitude = 66.9597
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	presets, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets() error = %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("loaded %d presets, want 2", len(presets))
	}
	if presets[0].Name != "Greenwich" || presets[0].Latitude != 51.4769 {
		t.Errorf("first preset = %+v", presets[0])
	}
}

func TestLoadPresetsMissingFile(t *testing.T) {
	if _, err := LoadPresets(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadPresetsEmptyName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sites.toml")
	content := "[[sites]]\nlatitude = 1.0\nlongitude = 2.0\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPresets(path); err == nil {
		t.Error("expected error for preset with empty name")
	}
}

func TestPresetsCopyIsolation(t *testing.T) {
	Presets()[0].Name = "mutated"
	if Presets()[0].Name != "Jaipur" {
		t.Error("Presets() shares state with callers")
	}
}
