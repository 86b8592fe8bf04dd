package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantVert    string
		wantFrag    string
		wantTexture string
	}{
		{
			name:        "three recognized keys",
			content:     "vert = shaders/a.vert\nfrag = shaders/a.frag\ntexture = img/a.png\n",
			wantVert:    "shaders/a.vert",
			wantFrag:    "shaders/a.frag",
			wantTexture: "img/a.png",
		},
		{
			name:        "unknown key does not alter recognized paths",
			content:     "vert = a.vert\nfoo = bar\nfrag = a.frag\ntexture = a.png\n",
			wantVert:    "a.vert",
			wantFrag:    "a.frag",
			wantTexture: "a.png",
		},
		{
			name:        "comments and blank lines skipped",
			content:     "# render config\n\n  # indented comment\nvert = a.vert\n",
			wantVert:    "a.vert",
			wantFrag:    "",
			wantTexture: "",
		},
		{
			name:        "whitespace trimmed around keys and values",
			content:     "  vert   =   shaders/x.vert  \n\tfrag=shaders/x.frag\n",
			wantVert:    "shaders/x.vert",
			wantFrag:    "shaders/x.frag",
			wantTexture: "",
		},
		{
			name:        "malformed line without separator is skipped",
			content:     "vert a.vert\nfrag = b.frag\n",
			wantVert:    "",
			wantFrag:    "b.frag",
			wantTexture: "",
		},
		{
			name:        "later entries win",
			content:     "texture = old.png\ntexture = new.png\n",
			wantVert:    "",
			wantFrag:    "",
			wantTexture: "new.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := parse("render.conf", tt.content)
			if cfg.VertPath != tt.wantVert {
				t.Errorf("VertPath = %q, want %q", cfg.VertPath, tt.wantVert)
			}
			if cfg.FragPath != tt.wantFrag {
				t.Errorf("FragPath = %q, want %q", cfg.FragPath, tt.wantFrag)
			}
			if cfg.TexturePath != tt.wantTexture {
				t.Errorf("TexturePath = %q, want %q", cfg.TexturePath, tt.wantTexture)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.conf")); err == nil {
		t.Fatal("Load of a missing file should fail")
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.conf")
	content := "vert = shaders/a.vert\nfrag = shaders/a.frag\ntexture = img/a.png\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.VertPath != "shaders/a.vert" || cfg.FragPath != "shaders/a.frag" || cfg.TexturePath != "img/a.png" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}
