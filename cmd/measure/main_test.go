package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/govalues/measure"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	measure.Gravity().Reset()
	t.Cleanup(measure.Gravity().Reset)
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if !hasConfigFlag(args) {
		args = append(args, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func hasConfigFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--config" || arg == "-c" {
			return true
		}
	}
	return false
}

func TestConvert(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"convert", "100", "degC", "degF"}, "100 °C = 212 °F\n"},
		{[]string{"convert", "1", "kgf", "N"}, "1 kgf = 196133/20000 N (9.80665)\n"},
		{[]string{"convert", "1", "kgf", "N", "--float"}, "1 kgf = 9.80665 N\n"},
		{[]string{"convert", "1", "kgf", "N", "--set", "gravity=10"}, "1 kgf = 10 N\n"},
		{[]string{"convert", "3/2", "km", "m"}, "3/2 km = 1500 m\n"},
		{[]string{"convert", "1", "m/s", "km/h"}, "1 m/s = 18/5 km/h (3.6)\n"},
	}
	for _, tt := range tests {
		got, err := execute(t, tt.args...)
		if err != nil {
			t.Errorf("%v failed: %v", tt.args, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%v = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestConvert_Fail(t *testing.T) {
	tests := []struct {
		args []string
		want error
	}{
		{[]string{"convert", "1", "m", "s"}, measure.ErrUnitMismatch},
		{[]string{"convert", "1", "parsec", "m"}, measure.ErrUnknownUnit},
		{[]string{"convert", "1", "m", "parsec"}, measure.ErrUnknownUnit},
		{[]string{"convert", "1", "kgf", "N", "--set", "planck=1"}, measure.ErrUnknownConstant},
		{[]string{"convert", "1", "kgf", "N", "--set", "gravity=0"}, measure.ErrDivisionByZero},
	}
	for _, tt := range tests {
		_, err := execute(t, tt.args...)
		if !errors.Is(err, tt.want) {
			t.Errorf("%v = %v, want %v", tt.args, err, tt.want)
		}
	}

	if _, err := execute(t, "convert", "1", "m"); err == nil {
		t.Errorf("convert with 2 arguments did not fail")
	}
	if _, err := execute(t, "convert", "x", "m", "km"); err == nil {
		t.Errorf("convert of invalid value did not fail")
	}
}

func TestConvert_ExitCode(t *testing.T) {
	tests := []struct {
		args []string
		want int
	}{
		{[]string{"convert", "1", "m", "s"}, 2},
		{[]string{"convert", "x", "m", "km"}, 2},
		{[]string{"convert", "1", "parsec", "m"}, 2},
		{[]string{"convert", "1", "kgf", "N", "--set", "gravity"}, 2},
		{[]string{"convert", "1", "kgf", "N", "--set", "gravity=x"}, 2},
		{[]string{"convert", "1", "kgf", "N", "--set", "planck=1"}, 2},
		{[]string{"convert", "1", "kgf", "N", "--config", "/"}, 1},
	}
	for _, tt := range tests {
		_, err := execute(t, tt.args...)
		if err == nil {
			t.Errorf("%v did not fail", tt.args)
			continue
		}
		var exit *ExitError
		got := 1
		if errors.As(err, &exit) {
			got = exit.Code
		}
		if got != tt.want {
			t.Errorf("%v exit code = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestConvert_SetAtomic(t *testing.T) {
	tests := [][]string{
		{"--set", "gravity=10", "--set", "planck=1"},
		{"--set", "gravity=10", "--set", "g0=0"},
		{"--set", "gravity=10", "--set", "g0"},
	}
	for _, set := range tests {
		args := append([]string{"convert", "1", "kgf", "N"}, set...)
		if _, err := execute(t, args...); err == nil {
			t.Errorf("%v did not fail", args)
			continue
		}
		if got := measure.Gravity().Value(); !got.Equal(measure.StandardGravity) {
			t.Errorf("%v: gravity = %v, want %v", args, got, measure.StandardGravity)
		}
	}
}

func TestConvert_Config(t *testing.T) {
	file := filepath.Join(t.TempDir(), "measure.yaml")
	data := "system: float\nconstants:\n  gravity: 10\n"
	if err := os.WriteFile(file, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	got, err := execute(t, "convert", "2", "kgf", "N", "--config", file)
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if want := "2 kgf = 20 N\n"; got != want {
		t.Errorf("convert = %q, want %q", got, want)
	}
}

func TestFindConfig(t *testing.T) {
	a := &app{configPath: "flag.yaml"}
	if got, err := a.findConfig(); err != nil || got != "flag.yaml" {
		t.Errorf("findConfig() = %q, %v, want %q", got, err, "flag.yaml")
	}

	a = &app{}
	t.Setenv("MEASURE_CONFIG", "env.yaml")
	if got, err := a.findConfig(); err != nil || got != "env.yaml" {
		t.Errorf("findConfig() = %q, %v, want %q", got, err, "env.yaml")
	}

	t.Setenv("MEASURE_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	want := filepath.Join("/xdg", defaultConfigFile)
	if got, err := a.findConfig(); err != nil || got != want {
		t.Errorf("findConfig() = %q, %v, want %q", got, err, want)
	}
}

func TestUnits(t *testing.T) {
	got, err := execute(t, "units")
	if err != nil {
		t.Fatalf("units failed: %v", err)
	}
	for _, want := range []string{"SYMBOL", "knot", "kgf", "°F"} {
		if !strings.Contains(got, want) {
			t.Errorf("units output does not contain %q:\n%v", want, got)
		}
	}
}

func TestConstants(t *testing.T) {
	got, err := execute(t, "constants")
	if err != nil {
		t.Fatalf("constants failed: %v", err)
	}
	if !strings.Contains(got, "gravity") || !strings.Contains(got, "196133/20000") {
		t.Errorf("constants output = %q, want gravity and its value", got)
	}
}

func TestDocGen(t *testing.T) {
	tests := []struct {
		sub, file string
	}{
		{"markdown", "measure_convert.md"},
		{"man", "measure.1"},
	}
	for _, tt := range tests {
		dir := t.TempDir()
		if _, err := execute(t, "docgen", tt.sub, dir); err != nil {
			t.Errorf("docgen %v failed: %v", tt.sub, err)
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, tt.file)); err != nil {
			t.Errorf("docgen %v did not write %v: %v", tt.sub, tt.file, err)
		}
	}
}
