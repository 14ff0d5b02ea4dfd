package registry

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/google/renameio"
)

// rewriteChunkSize bounds the memory used while streaming a file during a
// rewrite.
const rewriteChunkSize = 32 * 1024

// rewrite makes room for text by dropping the oldest whole lines from the
// front of lf's file, then appends text and re-reads the resulting size
// into the tracked length. The trimmed copy is staged in a temp file and
// swapped in atomically, so a failure mid-stream leaves the original file
// untouched. Caller holds lf.mu, which is what serializes a rewrite
// against further appends on the same alias.
func (r *Registry) rewrite(lf *LogFile, text string) error {
	toDelete := lf.length + int64(len(text)) - lf.maxLength
	if toDelete > 0 {
		if err := trimFront(lf.path, toDelete); err != nil {
			r.console.Errorf("rewrite %s: %v", lf.path, err)
			return err
		}
	}
	if err := appendFile(lf.path, text); err != nil {
		r.console.Errorf("append %s: %v", lf.path, err)
		return err
	}
	info, err := os.Stat(lf.path)
	if err != nil {
		r.console.Errorf("stat %s: %v", lf.path, err)
		return err
	}
	lf.length = info.Size()
	return nil
}

// trimFront drops at least toDelete bytes from the front of the file at
// path, extending the cut to the end of the line it lands in so only whole
// lines are ever removed. The file is streamed in fixed-size chunks and
// the result is written atomically over the original.
func trimFront(path string, toDelete int64) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := renameio.TempFile("", path)
	if err != nil {
		return err
	}
	defer dst.Cleanup()

	buf := make([]byte, rewriteChunkSize)
	const (
		stateChunks = iota // discarding whole chunks while toDelete exceeds them
		stateLines         // dropping whole newline-delimited segments
		stateCopy          // trimming satisfied, copying through
	)
	state := stateChunks
	midLine := false // a dropped segment ran past the previous chunk

	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			if state == stateChunks {
				if toDelete > int64(n) {
					toDelete -= int64(n)
					chunk = nil
				} else {
					state = stateLines
				}
			}
			if state == stateLines {
				var done bool
				chunk, done = dropSegments(chunk, &toDelete, &midLine)
				if done {
					state = stateCopy
				}
			}
			if len(chunk) > 0 {
				if _, err := dst.Write(chunk); err != nil {
					return err
				}
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			return readErr
		}
	}

	return dst.CloseAtomicallyReplace()
}

// dropSegments discards whole newline-delimited segments from the front of
// chunk, decrementing toDelete by each segment's byte length (its
// separator goes with it, uncounted), until toDelete is non-positive. It
// returns the retained remainder and whether trimming is complete. When a
// segment runs past the chunk, midLine carries that fact into the next
// call so the line is still dropped as a whole.
func dropSegments(chunk []byte, toDelete *int64, midLine *bool) (rest []byte, done bool) {
	i := 0
	for i < len(chunk) {
		if *toDelete <= 0 && !*midLine {
			return chunk[i:], true
		}
		idx := bytes.IndexByte(chunk[i:], '\n')
		if idx < 0 {
			*toDelete -= int64(len(chunk) - i)
			*midLine = true
			return nil, false
		}
		*toDelete -= int64(idx)
		i += idx + 1
		*midLine = false
	}
	return nil, *toDelete <= 0 && !*midLine
}
