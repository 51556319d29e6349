// Package config provides the configuration system for hexstorm.
//
// Settings are read from a single file in TOML or YAML format, layered over
// built-in defaults, then over a few environment variables:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← HEXSTORM_LOG_LEVEL, ...
//	├─────────────────────────────┤
//	│  2. User Settings           │  ← ~/.config/hexstorm/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Command line flags are applied by the caller on top of the result.
//
// # Sub-packages
//
//   - loader: Configuration file decoding (TOML, YAML)
//   - watcher: File watching for live reload
//
// # Basic Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	metrics := cfg.Layout.Metrics()
//
// # Live Reload
//
//	w, err := config.NewWatcher(path)
//	go w.Run(ctx)
//	for r := range w.Reloads() {
//	    if r.Err == nil {
//	        apply(r.Config)
//	    }
//	}
//
// A missing file is not an error; the defaults are used.
package config
