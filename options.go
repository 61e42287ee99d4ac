package rl

import (
	"github.com/gogpu/rl/native"
)

// Config describes the window created by Open.
type Config struct {
	Width     int
	Height    int
	Title     string
	TargetFPS int // 0 leaves the frame rate uncapped
	Flags     native.ConfigFlags
	LogLevel  native.TraceLogLevel

	lib native.Library
}

// Option configures Open.
//
// Example:
//
//	w, t, err := rl.Open(800, 450,
//	    rl.WithTitle("demo"),
//	    rl.WithTargetFPS(60),
//	    rl.WithFlags(rl.FlagResizable|rl.FlagVSync),
//	)
type Option func(*Config)

// defaultConfig returns the configuration Open starts from.
func defaultConfig(width, height int) Config {
	return Config{
		Width:    width,
		Height:   height,
		LogLevel: native.LogWarning,
	}
}

// Window flags, passed to WithFlags.
const (
	FlagFullscreen  = native.FlagFullscreenMode
	FlagResizable   = native.FlagWindowResizable
	FlagUndecorated = native.FlagWindowUndecorated
	FlagTransparent = native.FlagWindowTransparent
	FlagHidden      = native.FlagWindowHidden
	FlagMSAA4x      = native.FlagMSAA4xHint
	FlagVSync       = native.FlagVSyncHint
	FlagHighDPI     = native.FlagWindowHighDPI
)

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(c *Config) {
		c.Title = title
	}
}

// WithTargetFPS caps the frame rate. EndDrawing sleeps to honor it.
func WithTargetFPS(fps int) Option {
	return func(c *Config) {
		c.TargetFPS = fps
	}
}

// WithFlags adds window configuration flags. Flags accumulate across
// calls.
func WithFlags(flags native.ConfigFlags) Option {
	return func(c *Config) {
		c.Flags |= flags
	}
}

// WithLogLevel sets the native library log level. The default is
// native.LogWarning.
func WithLogLevel(level native.TraceLogLevel) Option {
	return func(c *Config) {
		c.LogLevel = level
	}
}

// WithLibrary opens the window on l instead of the selected library. l
// becomes the selected library for resources created afterwards.
func WithLibrary(l native.Library) Option {
	return func(c *Config) {
		c.lib = l
	}
}
