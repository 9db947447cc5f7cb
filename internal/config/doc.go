// Package config loads the rigedit options.
//
// Options come from three layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← RIGEDIT_INDEX_BASE, ...
//	├─────────────────────────────┤
//	│  2. Options File            │  ← rigedit.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Options File
//
//	index_base = 1
//	log_level = "info"
//	history_capacity = 200
//	metrics = true
//	recover_from_panic = true
//	suggest = true
//	keymap = "keys.yaml"
//
// A relative keymap path is resolved against the directory of the
// options file.
//
// # Live Reload
//
// A Watcher reports changes to a file, typically the key map, so that
// bindings can be reloaded without a restart:
//
//	w, err := config.NewWatcher(opts.Keymap, func(path string) {
//	    // reload bindings from path
//	})
//	defer w.Close()
package config
