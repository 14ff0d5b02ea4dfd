// Package console provides the severity-tagged output sink used both by
// applications directly and by the registry as its reporting channel.
//
// A Console writes to a single io.Writer (stdout by default). The five
// entry points match their intent: Print passes text through as one line,
// Printf routes values through the formatter package, and Debug/Info/Warn/
// Error prefix the message with a colored severity tag.
//
// Color is decided once at construction: the writer must be an interactive
// terminal (detected with go-isatty), and neither Config.NoColor nor the
// NO_COLOR environment convention may suppress it. Non-terminal writers
// such as pipes and test buffers always receive plain text.
//
// Writes to the stream are best-effort and their errors are ignored;
// console output failing is not a condition this package recovers from.
// All methods are safe for concurrent use.
package console
