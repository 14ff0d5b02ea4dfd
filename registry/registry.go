package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/codefrk/logman/console"
	"github.com/codefrk/logman/core"
)

// LogFile is the registry's record of one managed log file. The length is
// the logical byte size of the file's content, maintained incrementally by
// every write; it is read from disk only at registration time. The mutex
// serializes all operations on this alias, including the streaming rewrite,
// so an append issued while a rewrite is in flight blocks until it finishes.
type LogFile struct {
	mu        sync.Mutex
	path      string
	alias     string
	length    int64
	maxLength int64
	behaviour core.Behaviour
}

// Info is a point-in-time snapshot of a descriptor's state.
type Info struct {
	Alias     string
	Path      string
	Length    int64
	MaxLength int64
	Behaviour core.Behaviour
}

// Registry maps aliases to managed log files. Failures of alias-keyed
// operations are reported through the console sink and returned as errors;
// they never panic and never terminate the process.
type Registry struct {
	mu      sync.Mutex
	logs    []*LogFile
	console *console.Console
}

// New creates an empty registry that reports through c. A nil c falls back
// to a default stdout console.
func New(c *console.Console) *Registry {
	if c == nil {
		c = console.New(console.Config{})
	}
	return &Registry{console: c}
}

// Option configures a log registration.
type Option func(*LogFile)

// WithMaxLength sets the maximum logical length in bytes. Non-positive
// values are ignored and the default applies.
func WithMaxLength(n int64) Option {
	return func(lf *LogFile) {
		if n > 0 {
			lf.maxLength = n
		}
	}
}

// WithBehaviour sets the overflow policy. Unknown values are downgraded to
// Stop with a warning at registration time.
func WithBehaviour(b core.Behaviour) Option {
	return func(lf *LogFile) {
		lf.behaviour = b
	}
}

// AddLog registers the file at path under alias. If the file does not exist
// it is created empty; if it exists its current size becomes the initial
// tracked length. A filesystem failure aborts the registration: the error
// is reported and no descriptor is added. Duplicate aliases are rejected.
func (r *Registry) AddLog(path, alias string, opts ...Option) error {
	lf := &LogFile{
		path:      filepath.Clean(filepath.FromSlash(path)),
		alias:     alias,
		maxLength: core.DefaultMaxLength,
		behaviour: core.Stop,
	}
	for _, opt := range opts {
		opt(lf)
	}
	if !lf.behaviour.Valid() {
		r.console.Warnf("unknown behaviour %q for log %q, falling back to %q", lf.behaviour, alias, core.Stop)
		lf.behaviour = core.Stop
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lookupLocked(alias) != nil {
		err := fmt.Errorf("alias %q is already registered", alias)
		r.console.Error(err.Error())
		return err
	}

	info, err := os.Stat(lf.path)
	switch {
	case err == nil:
		lf.length = info.Size()
	case os.IsNotExist(err):
		if err := createEmpty(lf.path); err != nil {
			r.console.Errorf("cannot create log file %s: %v", lf.path, err)
			return err
		}
	default:
		r.console.Errorf("cannot stat log file %s: %v", lf.path, err)
		return err
	}

	r.logs = append(r.logs, lf)
	return nil
}

// createEmpty creates an empty file at path, making parent directories as
// needed.
func createEmpty(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	return f.Close()
}

// lookupLocked returns the first descriptor registered under alias, or nil.
// First match wins, so if a duplicate ever slips in it shadows later
// entries. Caller holds r.mu.
func (r *Registry) lookupLocked(alias string) *LogFile {
	for _, lf := range r.logs {
		if lf.alias == alias {
			return lf
		}
	}
	return nil
}

// resolve looks up alias and reports a miss through the console sink.
func (r *Registry) resolve(alias string) (*LogFile, error) {
	r.mu.Lock()
	lf := r.lookupLocked(alias)
	r.mu.Unlock()
	if lf == nil {
		err := fmt.Errorf("no log registered under alias %q", alias)
		r.console.Error(err.Error())
		return nil, err
	}
	return lf, nil
}

// WriteLog replaces the file's entire content with text. It is an explicit
// full replacement and bypasses both the maximum length and the overflow
// policy.
func (r *Registry) WriteLog(alias, text string) error {
	lf, err := r.resolve(alias)
	if err != nil {
		return err
	}
	lf.mu.Lock()
	defer lf.mu.Unlock()

	if err := os.WriteFile(lf.path, []byte(text), 0o644); err != nil {
		r.console.Errorf("write %s: %v", lf.path, err)
		return err
	}
	lf.length = int64(len(text))
	return nil
}

// AppendLog appends text to the file if it fits within the maximum length.
// When the append would overflow, the outcome is decided entirely by the
// descriptor's behaviour.
func (r *Registry) AppendLog(alias, text string) error {
	lf, err := r.resolve(alias)
	if err != nil {
		return err
	}
	lf.mu.Lock()
	defer lf.mu.Unlock()

	if lf.length+int64(len(text)) <= lf.maxLength {
		if err := appendFile(lf.path, text); err != nil {
			r.console.Errorf("append %s: %v", lf.path, err)
			return err
		}
		lf.length += int64(len(text))
		return nil
	}
	return r.overflow(lf, text)
}

// AppendLineLog appends text followed by a newline.
func (r *Registry) AppendLineLog(alias, text string) error {
	return r.AppendLog(alias, text+"\n")
}

// ClearLog truncates the file to empty.
func (r *Registry) ClearLog(alias string) error {
	lf, err := r.resolve(alias)
	if err != nil {
		return err
	}
	lf.mu.Lock()
	defer lf.mu.Unlock()

	if err := os.Truncate(lf.path, 0); err != nil {
		r.console.Errorf("clear %s: %v", lf.path, err)
		return err
	}
	lf.length = 0
	return nil
}

// RemoveLog deletes the backing file and drops the descriptor. An unknown
// alias is a reported no-op. If deleting the file fails the descriptor is
// kept so the registry stays consistent with the filesystem.
func (r *Registry) RemoveLog(alias string) error {
	r.mu.Lock()
	idx := -1
	for i, lf := range r.logs {
		if lf.alias == alias {
			idx = i
			break
		}
	}
	if idx < 0 {
		r.mu.Unlock()
		err := fmt.Errorf("no log registered under alias %q", alias)
		r.console.Error(err.Error())
		return err
	}
	lf := r.logs[idx]
	r.mu.Unlock()

	lf.mu.Lock()
	defer lf.mu.Unlock()

	if err := os.Remove(lf.path); err != nil {
		r.console.Errorf("remove %s: %v", lf.path, err)
		return err
	}

	r.mu.Lock()
	for i, cur := range r.logs {
		if cur == lf {
			r.logs = append(r.logs[:i], r.logs[i+1:]...)
			break
		}
	}
	r.mu.Unlock()
	return nil
}

// Logs returns a snapshot of every registered descriptor in registration
// order.
func (r *Registry) Logs() []Info {
	r.mu.Lock()
	logs := make([]*LogFile, len(r.logs))
	copy(logs, r.logs)
	r.mu.Unlock()

	infos := make([]Info, 0, len(logs))
	for _, lf := range logs {
		lf.mu.Lock()
		infos = append(infos, Info{
			Alias:     lf.alias,
			Path:      lf.path,
			Length:    lf.length,
			MaxLength: lf.maxLength,
			Behaviour: lf.behaviour,
		})
		lf.mu.Unlock()
	}
	return infos
}

// appendFile appends text to the file at path, creating it if needed.
func appendFile(path, text string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
