// Package registry tracks named, size-bounded log files and performs all
// mutations on their backing files.
//
// Each registered file gets a LogFile descriptor holding its normalized
// path, caller-chosen alias, configured maximum length, overflow
// behaviour, and the tracked logical length: the byte size the registry
// believes the file has, maintained incrementally by every write and read
// from disk only once, at registration. All sizes are bytes.
//
// Operations resolve their target by alias. A miss is reported through
// the console sink and returned as an error; nothing here panics or
// terminates the process. The returned error is the operation's
// completion signal: when a call returns, its file mutation is fully
// applied, including the streaming rewrite.
//
// When an append would push the length past the maximum, one of five
// behaviours decides the outcome: stop (refuse, report), ignore (refuse
// silently), continue (append anyway), split (redirect to an indexed
// sibling file), or rewrite (stream-trim the oldest whole lines to make
// room, atomically replace the file, then append). Rewrite is the only
// operation that touches existing content; it runs in bounded memory and
// never retains a partial line.
//
// Per-alias serialization is a per-descriptor mutex: concurrent
// goroutines may use the registry freely, but operations on one alias run
// one at a time. Concurrent processes writing the same path are out of
// scope and unsafe.
package registry
