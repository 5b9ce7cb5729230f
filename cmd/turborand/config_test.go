// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/decred/turborand/sampleconfig"
	flags "github.com/jessevdk/go-flags"
)

// TestLoadConfigDefaults ensures the defaults are applied without arguments.
func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Algo != defaultAlgo || cfg.Type != defaultType ||
		cfg.Count != defaultCount || cfg.DebugLevel != defaultLogLevel {

		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

// TestLoadConfigFile ensures config file options apply and command line
// options take precedence over them.
func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "turborand.conf")
	conf := "[Application Options]\nalgo=chacha8\ncount=5\ntype=range\n" +
		"low=1\nhigh=6\nitem=a\nitem=b\n"
	if err := os.WriteFile(path, []byte(conf), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig([]string{"--configfile", path, "--count=9"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Algo != algoChaCha8 || cfg.Type != "range" || cfg.Low != 1 ||
		cfg.High != 6 {

		t.Fatalf("config file options not applied: %+v", cfg)
	}
	if cfg.Count != 9 {
		t.Fatalf("command line count %d, want 9", cfg.Count)
	}
	if len(cfg.Items) != 2 {
		t.Fatalf("items %v, want [a b]", cfg.Items)
	}
}

// TestSampleConfigParses ensures the sample config is accepted as is.
func TestSampleConfigParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.conf")
	if err := os.WriteFile(path, []byte(sampleconfig.Turborand()), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig([]string{"-C", path}); err != nil {
		t.Fatalf("sample config rejected: %v", err)
	}
}

// TestLoadConfigErrors ensures invalid option combinations are rejected.
func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "unknown algo", args: []string{"--algo=mt19937"}},
		{name: "unknown type", args: []string{"--type=u128"}},
		{name: "negative count", args: []string{"--count=-1"}},
		{name: "seed and phrase", args: []string{"--seed=1", "--seedphrase=x"}},
		{name: "raw without bytes", args: []string{"--raw"}},
		{name: "load state with seed", args: []string{"--loadstate=x", "--seed=1"}},
		{name: "load state with phrase", args: []string{"--loadstate=x", "--seedphrase=y"}},
		{name: "shuffle without items", args: []string{"--type=shuffle"}},
		{name: "bad debug level", args: []string{"--debuglevel=loud"}},
		{name: "bad subsystem", args: []string{"--debuglevel=NOPE=info"}},
		{name: "missing config file", args: []string{"-C", "/nonexistent/turborand.conf"}},
		{name: "extra argument", args: []string{"extra"}},
		{name: "version", args: []string{"-V"}, wantErr: errShowVersion},
		{name: "sample config", args: []string{"--sampleconfig"}, wantErr: errShowSample},
		{name: "list subsystems", args: []string{"--debuglevel=show"}, wantErr: errListSubsystems},
	}

	for _, test := range tests {
		_, err := loadConfig(test.args)
		if err == nil {
			t.Errorf("%s: expected error", test.name)
			continue
		}
		if test.wantErr != nil && !errors.Is(err, test.wantErr) {
			t.Errorf("%s: got %v, want %v", test.name, err, test.wantErr)
		}
	}

	_, err := loadConfig([]string{"-h"})
	var e *flags.Error
	if !errors.As(err, &e) || e.Type != flags.ErrHelp {
		t.Fatalf("help: got %v", err)
	}

	// Restore the default levels changed by the cases above.
	setLogLevels(defaultLogLevel)
}

// TestParseAndSetDebugLevels ensures per subsystem levels are accepted.
func TestParseAndSetDebugLevels(t *testing.T) {
	defer setLogLevels(defaultLogLevel)

	tests := []struct {
		name    string
		level   string
		invalid bool
	}{
		{name: "global", level: "debug"},
		{name: "pairs", level: "RAND=trace,ENTR=warn"},
		{name: "subsystem without level", level: "RAND", invalid: true},
		{name: "missing level", level: "RAND=", invalid: true},
		{name: "unknown subsystem", level: "XXXX=info", invalid: true},
		{name: "pair without equals", level: "RAND=info,ENTR", invalid: true},
	}

	for _, test := range tests {
		err := parseAndSetDebugLevels(test.level)
		if (err != nil) != test.invalid {
			t.Errorf("%s: got err %v, want invalid %v", test.name, err,
				test.invalid)
		}
	}
}

// TestCleanAndExpandPath ensures home directories and environment variables
// are expanded and the result is cleaned.
func TestCleanAndExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	t.Setenv("TURBORAND_TEST_DIR", "/tmp/turborand")

	tests := []struct {
		name string
		path string
		want string
	}{
		{"home", "~/state", filepath.Join(home, "state")},
		{"env", "$TURBORAND_TEST_DIR/logs/", "/tmp/turborand/logs"},
		{"dot segments", "/var/./lib/../state", "/var/state"},
		{"relative", "a//b/", "a/b"},
	}
	for _, test := range tests {
		got := cleanAndExpandPath(test.path)
		if got != filepath.FromSlash(test.want) && got != test.want {
			t.Errorf("%s: got %q, want %q", test.name, got, test.want)
		}
	}
}
