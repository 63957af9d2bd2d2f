package config

import (
	"os"
	"path/filepath"
	"testing"

	"disview/render"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	def := Default()
	if *cfg != *def {
		t.Fatalf("got %+v, want defaults %+v", cfg, def)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := Default()
	cfg.Theme = "nord"
	cfg.Bits = 32
	cfg.Org = 0x8000
	if err := cfg.Save(); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *got != *cfg {
		t.Fatalf("round trip changed config: %+v vs %+v", got, cfg)
	}
}

func TestLoadRejectsBrokenJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(home, ".config", "disview", "settings.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected error for broken settings file")
	}
}

func TestGetThemeFallsBack(t *testing.T) {
	cfg := Default()
	cfg.Theme = "no-such-theme"
	theme := cfg.GetTheme()
	if theme == nil || theme.Name != "Monokai" {
		t.Fatalf("fallback theme = %+v", theme)
	}
}

func TestRunStyleCoversAllTags(t *testing.T) {
	theme := Themes["dark"]
	tags := []render.Style{
		render.StyleAddress, render.StyleSegment, render.StyleFunction,
		render.StyleInvalid, render.StyleStop, render.StyleNop,
		render.StyleCall, render.StyleJump, render.StyleJumpCond,
		render.StyleMemory, render.StyleImmediate, render.StyleDisplacement,
		render.StyleRegister, render.StyleComment,
	}

	def := theme.RunStyle(render.StyleDefault)
	for _, tag := range tags {
		st := theme.RunStyle(tag)
		_, bg, _ := st.Decompose()
		if bg != theme.Background {
			t.Fatalf("tag %q lost the theme background", tag)
		}
		_ = def
	}
	fg, _, _ := def.Decompose()
	if fg != theme.Foreground {
		t.Fatalf("default tag foreground = %v, want theme foreground", fg)
	}
}
