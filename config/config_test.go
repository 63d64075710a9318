package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/morikuni/failure/v2"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	names := make([]string, 0, len(cfg.Providers))
	for _, p := range cfg.Providers {
		names = append(names, p.Name)
	}
	if diff := cmp.Diff([]string{"google", "bing", "duckduckgo"}, names); diff != "" {
		t.Errorf("Default() provider names mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"g"}, cfg.Providers[0].Aliases); diff != "" {
		t.Errorf("google aliases mismatch (-want +got):\n%s", diff)
	}
	if cfg.Providers[1].Aliases != nil {
		t.Errorf("bing aliases = %v, want none", cfg.Providers[1].Aliases)
	}
	if _, ok := cfg.DefaultBrowser(); ok {
		t.Error("Default() should not set a default browser")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestInitAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "search", FileName)

	created, err := Init(path)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if !created {
		t.Fatal("Init() should create a missing file")
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	if err := os.WriteFile(path, []byte("version: v1.0\nproviders: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	created, err = Init(path)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if created {
		t.Error("Init() must not overwrite an existing file")
	}
	got, err = Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got.Providers) != 0 {
		t.Errorf("Load() providers = %v, want empty", got.Providers)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name        string
		content     *string
		wantErrCode ErrorCode
	}{
		{
			name:        "Missing file",
			content:     nil,
			wantErrCode: ErrIO,
		},
		{
			name:        "Malformed YAML",
			content:     ptr("providers: [\n"),
			wantErrCode: ErrParse,
		},
		{
			name:        "Provider without url",
			content:     ptr("version: v1.0\nproviders:\n  - name: google\n"),
			wantErrCode: ErrInvalid,
		},
		{
			name:        "Provider without name",
			content:     ptr("version: v1.0\nproviders:\n  - url: https://example.com/?q={{ word }}\n"),
			wantErrCode: ErrInvalid,
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.Repeat("x", i+1)+".yaml")
			if tt.content != nil {
				if err := os.WriteFile(path, []byte(*tt.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			_, err := Load(path)
			if err == nil {
				t.Fatalf("Expected error %v, got nil", tt.wantErrCode)
			}
			if !failure.Is(err, tt.wantErrCode) {
				t.Errorf("Expected error %v, got %v", tt.wantErrCode, err)
			}
		})
	}
}

func TestParseBrowser(t *testing.T) {
	const doc = `version: v1.0
default:
  browser: firefox
providers:
  - name: a
    url: https://a.example/?q={{ word }}
  - name: b
    url: https://b.example/?q={{ word }}
    browser: system
  - name: c
    url: https://c.example/?q={{ word }}
    browser: /usr/bin/chromium
`
	cfg, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []Browser{
		{},
		SystemBrowser(),
		BrowserAt("/usr/bin/chromium"),
	}
	got := make([]Browser, 0, len(cfg.Providers))
	for _, p := range cfg.Providers {
		got = append(got, p.Browser)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("browsers mismatch (-want +got):\n%s", diff)
	}

	if b, ok := cfg.DefaultBrowser(); !ok || b != "firefox" {
		t.Errorf("DefaultBrowser() = %q, %v, want firefox, true", b, ok)
	}
}

func TestMarshalBrowser(t *testing.T) {
	cfg := Config{
		Version: Version,
		Providers: []Provider{
			{Name: "a", URL: "https://a.example/?q={{ word }}"},
			{Name: "b", URL: "https://b.example/?q={{ word }}", Browser: SystemBrowser()},
			{Name: "c", URL: "https://c.example/?q={{ word }}", Browser: BrowserAt("firefox")},
		},
	}

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	out := string(data)

	if strings.Count(out, "browser:") != 2 {
		t.Errorf("Marshal() should omit the config-default browser:\n%s", out)
	}
	if !strings.Contains(out, "browser: system") || !strings.Contains(out, "browser: firefox") {
		t.Errorf("Marshal() output missing browser settings:\n%s", out)
	}

	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if diff := cmp.Diff(cfg, back); diff != "" {
		t.Errorf("Parse(Marshal()) mismatch (-want +got):\n%s", diff)
	}
}

func TestPathEnv(t *testing.T) {
	t.Setenv(EnvPath, "/tmp/custom/search.yaml")

	got, err := Path()
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}
	if got != "/tmp/custom/search.yaml" {
		t.Errorf("Path() = %q, want %q", got, "/tmp/custom/search.yaml")
	}
}

func TestPathDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvPath, "")
	t.Setenv("HOME", home)

	got, err := Path()
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}
	want := filepath.Join(home, ".config", "search", "config.yaml")
	if got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func ptr[T any](v T) *T {
	return &v
}
