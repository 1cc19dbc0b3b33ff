package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	perrors "gtranslate/plugin/internal/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	c, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if c != Default() {
		t.Errorf("LoadFile() = %+v, want defaults %+v", c, Default())
	}
	if c.DefaultFrom != "auto" || c.DefaultTo != "vi" || c.WrapLength != 200 {
		t.Errorf("unexpected defaults: %+v", c)
	}
}

func TestLoadUsesXDGConfigHome(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	dir := filepath.Join(base, "gtranslate")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(`default_to = "de"`), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c.DefaultTo != "de" {
		t.Errorf("DefaultTo = %q, want de", c.DefaultTo)
	}
}

func TestLoadFileOverrides(t *testing.T) {
	p := writeConfig(t, `
default_from = "en"
default_to = "fr"
wrap_length = 40
timeout = "3s"
extractor = "html"
strict_extraction = true
`)

	c, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if c.DefaultFrom != "en" || c.DefaultTo != "fr" {
		t.Errorf("languages = %s:%s, want en:fr", c.DefaultFrom, c.DefaultTo)
	}
	if c.WrapLength != 40 {
		t.Errorf("WrapLength = %d, want 40", c.WrapLength)
	}
	if time.Duration(c.Timeout) != 3*time.Second {
		t.Errorf("Timeout = %s, want 3s", time.Duration(c.Timeout))
	}
	if c.Extractor != ExtractorHTML || !c.StrictExtraction {
		t.Errorf("extractor settings = %q/%v", c.Extractor, c.StrictExtraction)
	}
	if c.CheckURL != Default().CheckURL {
		t.Errorf("CheckURL = %q, want default", c.CheckURL)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	p := writeConfig(t, `default_to = "fr"`)
	t.Setenv("GTRANSLATE_TO", "ja")
	t.Setenv("GTRANSLATE_WRAP", "80")
	t.Setenv("GTRANSLATE_TIMEOUT", "250ms")

	c, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if c.DefaultTo != "ja" {
		t.Errorf("DefaultTo = %q, want ja", c.DefaultTo)
	}
	if c.WrapLength != 80 {
		t.Errorf("WrapLength = %d, want 80", c.WrapLength)
	}
	if time.Duration(c.Timeout) != 250*time.Millisecond {
		t.Errorf("Timeout = %s, want 250ms", time.Duration(c.Timeout))
	}
}

func TestLoadFileRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
	}{
		{name: "malformed toml", body: `default_to = `},
		{name: "bad target language", body: `default_to = "not a language!"`},
		{name: "auto target", body: `default_to = "auto"`},
		{name: "relative url", body: `translate_url = "/m"`},
		{name: "zero wrap", body: `wrap_length = 0`},
		{name: "unknown extractor", body: `extractor = "xpath"`},
		{name: "bad timeout", body: `timeout = "soon"`},
		{name: "bad wrap env", env: map[string]string{"GTRANSLATE_WRAP": "wide"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadFile(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected error but got none")
			}
			if !perrors.Is(err, perrors.InvalidConfig) {
				t.Errorf("error kind = %q, want %q (%v)", perrors.KindOf(err), perrors.InvalidConfig, err)
			}
		})
	}
}

func TestValidateAcceptsRegionalTags(t *testing.T) {
	c := Default()
	c.DefaultFrom = "en"
	c.DefaultTo = "zh-CN"
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}
