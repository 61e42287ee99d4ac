package rl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/gogpu/rl/native"
)

func TestDefaultConfig(t *testing.T) {
	got := defaultConfig(800, 450)
	want := Config{Width: 800, Height: 450, LogLevel: native.LogWarning}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreUnexported(Config{})); diff != "" {
		t.Errorf("defaultConfig mismatch (-want +got):\n%s", diff)
	}
}

func TestOptions(t *testing.T) {
	cfg := defaultConfig(1, 1)
	for _, opt := range []Option{
		WithTitle("demo"),
		WithTargetFPS(30),
		WithFlags(FlagResizable),
		WithFlags(FlagVSync | FlagMSAA4x),
		WithLogLevel(native.LogNone),
	} {
		opt(&cfg)
	}
	want := Config{
		Width:     1,
		Height:    1,
		Title:     "demo",
		TargetFPS: 30,
		Flags:     FlagResizable | FlagVSync | FlagMSAA4x,
		LogLevel:  native.LogNone,
	}
	if diff := cmp.Diff(want, cfg, cmpopts.IgnoreUnexported(Config{})); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestWithLibrary(t *testing.T) {
	f := newFake(t)
	cfg := defaultConfig(1, 1)
	WithLibrary(f)(&cfg)
	if cfg.lib != native.Library(f) {
		t.Errorf("WithLibrary did not select the library")
	}
}
