package registry

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/codefrk/logman/core"
)

// overflow applies lf's behaviour to an append that would exceed the
// maximum length. Caller holds lf.mu.
func (r *Registry) overflow(lf *LogFile, text string) error {
	switch lf.behaviour {
	case core.Stop:
		r.console.Infof("log %q has reached its maximum size of %d bytes", lf.alias, lf.maxLength)
		return nil
	case core.Ignore:
		return nil
	case core.Continue:
		if err := appendFile(lf.path, text); err != nil {
			r.console.Errorf("append %s: %v", lf.path, err)
			return err
		}
		lf.length += int64(len(text))
		return nil
	case core.Split:
		return r.split(lf, text)
	case core.Rewrite:
		return r.rewrite(lf, text)
	default:
		// unreachable: AddLog downgrades unknown behaviours to Stop
		return nil
	}
}

// split appends text to an indexed sibling of lf's file, creating it if
// needed. The original descriptor's length keeps growing and is never
// reset; that running total is what advances the sibling index (2, 3, ...)
// across successive overflows. No descriptor is registered for siblings.
func (r *Registry) split(lf *LogFile, text string) error {
	index := (lf.length+int64(len(text)))/lf.maxLength + 1
	sibling := splitPath(lf.path, index)
	if err := appendFile(sibling, text); err != nil {
		r.console.Errorf("split append %s: %v", sibling, err)
		return err
	}
	lf.length += int64(len(text))
	return nil
}

// splitPath inserts index in front of the file extension:
// log.txt -> log2.txt, and for extension-less paths log -> log2.
func splitPath(path string, index int64) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + strconv.FormatInt(index, 10) + ext
}
