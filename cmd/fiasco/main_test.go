package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/fiasco/internal/config"
)

func TestValidateOptions(t *testing.T) {
	valid := options{duration: 30, difficulty: "hard", backend: "memory", logLevel: "info"}
	if err := validateOptions(valid); err != nil {
		t.Fatalf("expected valid options, got %v", err)
	}
	// Unknown tiers fall back to easy instead of failing.
	valid.difficulty = " Insane "
	if err := validateOptions(valid); err != nil {
		t.Fatalf("expected unknown difficulty to be accepted, got %v", err)
	}

	cases := map[string]options{
		"duration":   {duration: 0, difficulty: "easy", backend: "memory", logLevel: "info"},
		"store":      {duration: 30, difficulty: "easy", backend: "postgres", logLevel: "info"},
		"redis":      {duration: 30, difficulty: "easy", backend: "redis", logLevel: "info"},
		"log":        {duration: 30, difficulty: "easy", backend: "memory", logLevel: "loud"},
	}
	for name, o := range cases {
		if err := validateOptions(o); err == nil {
			t.Fatalf("%s: expected error for %+v", name, o)
		}
	}
}

func TestWordsCommandSeeded(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	run := func() string {
		cmd := newRootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"words", "--count", "5", "--seed", "7", "--difficulty", "medium"})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("words: %v", err)
		}
		return strings.TrimSpace(out.String())
	}
	first := run()
	if got := len(strings.Fields(first)); got != 5 {
		t.Fatalf("expected 5 words, got %d (%q)", got, first)
	}
	if second := run(); second != first {
		t.Fatalf("expected seeded output to repeat, got %q and %q", first, second)
	}
}

func TestBestCommandEmptyStore(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	opts = options{}

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"best", "--db", filepath.Join(t.TempDir(), "fiasco.db")})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("best: %v", err)
	}
	if !strings.Contains(out.String(), "0") {
		t.Fatalf("expected zero best, got %q", out.String())
	}
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("template does not decode: %v", err)
	}
	if cfg.Practice.Duration != nil || cfg.Store.Backend != nil || cfg.Log.Level != nil {
		t.Fatalf("expected every template value commented out, got %+v", cfg)
	}
}

func writeConfig(t *testing.T, content string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	dir := filepath.Join(home, "fiasco")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runWords(t *testing.T, args ...string) []string {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(append([]string{"words"}, args...))
	if err := cmd.Execute(); err != nil {
		t.Fatalf("words: %v", err)
	}
	return strings.Fields(out.String())
}

func TestWordsCommandUsesConfigFile(t *testing.T) {
	list := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(list, []byte("zzz\n"), 0o644); err != nil {
		t.Fatalf("write word list: %v", err)
	}

	writeConfig(t, fmt.Sprintf("[practice]\nwordlist = %q\n", list))
	for _, w := range runWords(t, "--count", "20", "--seed", "3") {
		if w != "zzz" {
			t.Fatalf("expected only configured words on easy, got %q", w)
		}
	}

	writeConfig(t, fmt.Sprintf("[practice]\nwordlist = %q\ndifficulty = \"hard\"\n", list))
	extra := 0
	for _, w := range runWords(t, "--count", "200", "--seed", "3") {
		if w != "zzz" {
			extra++
		}
	}
	if extra == 0 {
		t.Fatalf("expected hard tier words when config selects hard")
	}

	for _, w := range runWords(t, "--count", "20", "--seed", "3", "--difficulty", "easy") {
		if w != "zzz" {
			t.Fatalf("expected flag to override config difficulty, got %q", w)
		}
	}
}
