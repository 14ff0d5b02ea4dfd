// Package core defines the shared types used across the logman packages.
//
// It provides the Behaviour type, the string-backed enum of overflow
// policies that the registry applies when an append would push a log file
// past its maximum length, and the default size cap.
//
// Behaviour values are wire-visible strings ("stop", "ignore", "split",
// "rewrite", "continue") because they appear verbatim in the YAML
// configuration. ParseBehaviour deliberately does not substitute a
// fallback for unknown tokens; the registry owns that downgrade so the
// warning is emitted exactly once, at registration time.
package core
