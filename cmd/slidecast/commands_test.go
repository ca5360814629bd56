package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muurk/slidecast/internal/config"
)

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"", ""}, ""},
		{[]string{"", "b", "c"}, "b"},
		{[]string{"a", "b"}, "a"},
	}
	for _, tt := range tests {
		if got := firstNonEmpty(tt.in...); got != tt.want {
			t.Errorf("firstNonEmpty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// isolate points the config directory at a temp dir and clears the
// environment overrides.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("SLIDECAST_DECK", "")
	t.Setenv("SLIDECAST_LOG_LEVEL", "")
	t.Setenv("SLIDECAST_LOG_FILE", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() {
		deckPath, logLevel, logFile = "", "", ""
		initForce = false
		remoteTarget, remoteSession = "", ""
	})
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, config.DefaultDeckYAML(), 0600); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("version: 1\nslides: []\n"), 0600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "validate", good)
	if err != nil {
		t.Fatalf("validate good deck error = %v", err)
	}
	if !strings.Contains(out, "Deck is valid") {
		t.Errorf("output = %q", out)
	}

	out, err = execute(t, "validate", bad)
	if err == nil {
		t.Fatal("validate bad deck should fail")
	}
	if !strings.Contains(out, "Deck is invalid") || !strings.Contains(out, "slides") {
		t.Errorf("output = %q", out)
	}
}

func TestOutlineCommand(t *testing.T) {
	isolate(t)
	out, err := execute(t, "outline")
	if err != nil {
		t.Fatalf("outline error = %v", err)
	}
	for _, want := range []string{"DECK OUTLINE", "built-in", "Into the current", "Your seat is waiting"} {
		if !strings.Contains(out, want) {
			t.Errorf("outline output missing %q", want)
		}
	}
}

func TestInitCommand(t *testing.T) {
	isolate(t)
	if _, err := execute(t, "init"); err != nil {
		t.Fatalf("init error = %v", err)
	}

	path, err := config.GetDeckPath()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("init did not write %s: %v", path, err)
	}

	// stdin is not a terminal under go test, so there is no prompt
	if _, err := execute(t, "init"); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("second init error = %v, want already exists", err)
	}
	if _, err := execute(t, "init", "--force"); err != nil {
		t.Errorf("init --force error = %v", err)
	}
}

func TestRemoteGoToRejectsBadSection(t *testing.T) {
	isolate(t)
	for _, arg := range []string{"0", "x"} {
		if _, err := execute(t, "remote", "goto", arg, "--addr", "127.0.0.1:1"); err == nil {
			t.Errorf("remote goto %s should fail", arg)
		}
	}
}
