// Package config loads the YAML file declaring the console options and
// the set of managed log files.
//
// The registry holds no persisted state of its own; the log files are
// the only durable artifacts. Each process run rebuilds the registry by
// applying the configuration, which re-derives every tracked length from
// the file sizes found on disk.
//
// Example:
//
//	console:
//	  no_color: false
//	logs:
//	  - alias: app
//	    path: logs/app.log
//	    max_length: 5000
//	    behaviour: rewrite
//
// Validation rejects missing aliases or paths, negative sizes, and
// duplicate aliases. Behaviour tokens are not rejected here: the
// registry downgrades unknown values to stop with a warning, and doing
// it in one place keeps the warning from being emitted twice.
package config
