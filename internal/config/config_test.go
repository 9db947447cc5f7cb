package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	opts := Default()
	if err := opts.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	if !opts.RecoverFromPanic || !opts.Suggest || opts.Metrics {
		t.Errorf("unexpected defaults: %+v", opts)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	opts, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", opts)
	}

	opts, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load(missing): %v", err)
	}
	if opts.HistoryCapacity != Default().HistoryCapacity {
		t.Errorf("missing file changed options: %+v", opts)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "rigedit.toml", `
index_base = 1
log_level = "debug"
history_capacity = 50
metrics = true
suggest = false
keymap = "keys.yaml"
`)

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts.IndexBase != 1 || opts.LogLevel != "debug" || opts.HistoryCapacity != 50 {
		t.Errorf("options = %+v", opts)
	}
	if !opts.Metrics || opts.Suggest {
		t.Errorf("booleans = %+v", opts)
	}
	if !opts.RecoverFromPanic {
		t.Error("unset option should keep its default")
	}
	if want := filepath.Join(dir, "keys.yaml"); opts.Keymap != want {
		t.Errorf("Keymap = %q, want %q", opts.Keymap, want)
	}
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "rigedit.toml", "index_base = 1\nlog_level = \"warn\"\n")

	t.Setenv("RIGEDIT_INDEX_BASE", "0")
	t.Setenv("RIGEDIT_METRICS", "true")
	t.Setenv("RIGEDIT_KEYMAP", "/etc/rigedit/keys.json")

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts.IndexBase != 0 {
		t.Errorf("IndexBase = %d, want 0 from environment", opts.IndexBase)
	}
	if opts.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn from file", opts.LogLevel)
	}
	if !opts.Metrics {
		t.Error("Metrics should be enabled from environment")
	}
	if opts.Keymap != "/etc/rigedit/keys.json" {
		t.Errorf("Keymap = %q", opts.Keymap)
	}
}

func TestLoadBadEnvironment(t *testing.T) {
	t.Setenv("RIGEDIT_HISTORY_CAPACITY", "lots")
	if _, err := Load(""); err == nil {
		t.Error("expected an error for a non-numeric capacity")
	}
}

func TestLoadParseErrors(t *testing.T) {
	dir := t.TempDir()

	broken := writeFile(t, dir, "broken.toml", "index_base = 1\nlog_level = \n")
	_, err := Load(broken)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if pe.Path != broken || pe.Line != 2 {
		t.Errorf("ParseError = %+v, want line 2 of %s", pe, broken)
	}

	unknown := writeFile(t, dir, "unknown.toml", "index_bass = 1\n")
	if _, err := Load(unknown); !errors.As(err, &pe) {
		t.Errorf("unknown key: expected ParseError, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	opts := Default()
	opts.IndexBase = 2
	opts.LogLevel = "verbose"
	opts.HistoryCapacity = 0

	err := opts.Validate()
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}

	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Option != "index_base" {
		t.Errorf("first failure = %+v", ve)
	}

	dir := t.TempDir()
	path := writeFile(t, dir, "rigedit.toml", "index_base = 3\n")
	if _, err := Load(path); !errors.Is(err, ErrValidationFailed) {
		t.Errorf("Load should validate, got %v", err)
	}
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "keys.yaml", "bindings: []\n")

	changed := make(chan string, 4)
	w, err := NewWatcher(target, func(path string) { changed <- path }, WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	// Other files in the directory are ignored.
	writeFile(t, dir, "other.yaml", "x")
	select {
	case p := <-changed:
		t.Fatalf("unexpected change of %s", p)
	case <-time.After(150 * time.Millisecond):
	}

	writeFile(t, dir, "keys.yaml", "bindings: [{keys: h, action: view horizontal}]\n")
	select {
	case p := <-changed:
		if p != w.Path() {
			t.Errorf("changed %q, want %q", p, w.Path())
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope", "keys.yaml"), func(string) {})
	if err == nil {
		t.Error("expected an error for a missing directory")
	}
}
