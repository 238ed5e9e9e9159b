package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
scoping: flat
max_call_depth: 50
fail_fast: true
symbols_db: runs.db
log:
  level: debug
  format: json
  trace_calls: true
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Scoping != ScopingFlat || cfg.MaxCallDepth != 50 || !cfg.FailFast || cfg.SymbolsDB != "runs.db" {
		t.Errorf("got %+v", cfg)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" || !cfg.Log.TraceCalls {
		t.Errorf("log = %+v", cfg.Log)
	}
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("fail_fast: true\n"))
	if err != nil {
		t.Fatal(err)
	}
	def := Default()
	if cfg.Scoping != def.Scoping || cfg.MaxCallDepth != def.MaxCallDepth || cfg.Log != def.Log {
		t.Errorf("got %+v, want defaults", cfg)
	}

	cfg, err = Parse([]byte("scoping: \"\"\nlog: {level: \"\", format: \"\"}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scoping != ScopingActivation || cfg.Log.Level != "warn" || cfg.Log.Format != "console" {
		t.Errorf("empty values not defaulted: %+v", cfg)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"scoping: dynamic", `unknown scoping "dynamic"`},
		{"max_call_depth: 0", "max_call_depth must be positive"},
		{"log: {level: loud}", `unknown log level "loud"`},
		{"log: {format: xml}", `unknown log format "xml"`},
		{"max_call_depth: [1]", "parsing config"},
	}
	for _, tt := range tests {
		_, err := Parse([]byte(tt.input))
		if err == nil {
			t.Errorf("%q: expected an error", tt.input)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%q: error %q does not contain %q", tt.input, err, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "datelang.yaml")
	if err := os.WriteFile(path, []byte("scoping: flat\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Scoping != ScopingFlat {
		t.Errorf("scoping = %s", cfg.Scoping)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load of a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("scoping: dynamic\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), bad) {
		t.Errorf("error should name the file: %v", err)
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault("")
	if err != nil || cfg.Scoping != ScopingActivation {
		t.Errorf("empty path: %+v, %v", cfg, err)
	}

	cfg, err = LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil || cfg.MaxCallDepth != DefaultMaxCallDepth {
		t.Errorf("missing file: %+v, %v", cfg, err)
	}
}

func TestDateAttrs(t *testing.T) {
	for _, name := range ReadableDateAttrs {
		if !IsReadableDateAttr(name) {
			t.Errorf("%s should be readable", name)
		}
	}
	for _, name := range []string{AttrDay, AttrMonth, AttrYear} {
		if !IsWritableDateAttr(name) {
			t.Errorf("%s should be writable", name)
		}
	}
	for _, name := range []string{AttrWeekday, AttrWeeknum} {
		if IsWritableDateAttr(name) {
			t.Errorf("%s should be read-only", name)
		}
	}
	if IsReadableDateAttr("hour") {
		t.Error("hour is not a date attribute")
	}
}
