// Package config provides the configuration system for easylog.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← EASYLOG_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← .easylog.toml / .easylog.yaml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Settings are addressed by dotted paths such as "logging.level". Section
// accessors (Logging, Notify, Plugins) return snapshot structs; type errors
// in a section are recorded and reported by Validate instead of failing the
// accessor.
//
// # Settings
//
//	logging.level            debug | info | warn | error
//	notify.color             auto | on | off
//	languages.<ext>          language id for a file extension
//	plugins.scripts          Lua scripts run by "easylog script"
//	plugins.instructionLimit Lua instruction budget (0 disables the limit)
package config
