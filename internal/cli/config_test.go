package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.toml")
	data := `
[region]
x_min = 0.0
y_min = 0.0
x_max = 200.0
y_max = 100.0

[collide]
balls = 10
ticks = 5

[animate]
trail_length = 4
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Region.XMax != 200 || cfg.Region.YMax != 100 {
		t.Errorf("region not overridden: %+v", cfg.Region)
	}
	if cfg.Collide.Balls != 10 || cfg.Collide.Ticks != 5 {
		t.Errorf("collide not overridden: %+v", cfg.Collide)
	}
	if cfg.Animate.TrailLength != 4 {
		t.Errorf("animate not overridden: %+v", cfg.Animate)
	}
	// untouched keys keep their defaults
	if cfg.Collide.Seed != DefaultConfig().Collide.Seed {
		t.Errorf("seed = %d, want the default", cfg.Collide.Seed)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	cases := []struct{ name, body string }{
		{"zero balls", "[collide]\nballs = 0\n"},
		{"zero ticks", "[collide]\nticks = 0\n"},
		{"tiny radius", "[collide]\nmax_radius = 0.5\n"},
		{"inverted region", "[region]\nx_max = -10.0\n"},
		{"oversized radius", "[region]\nx_max = 10.0\n\n[collide]\nmax_radius = 6.0\n"},
		{"zero trail", "[animate]\ntrail_length = 0\n"},
	}
	for _, c := range cases {
		path := filepath.Join(t.TempDir(), "demo.toml")
		if err := os.WriteFile(path, []byte(c.body), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Errorf("%s: config accepted", c.name)
		}
	}
}
