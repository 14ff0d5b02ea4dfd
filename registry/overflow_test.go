package registry

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/codefrk/logman/core"
)

func TestOverflowStop(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	var buf bytes.Buffer
	r := newTestRegistry(&buf)

	if err := r.AddLog(path, "app", WithMaxLength(10), WithBehaviour(core.Stop)); err != nil {
		t.Fatal(err)
	}
	if err := r.AppendLog("app", "123456"); err != nil {
		t.Fatal(err)
	}
	buf.Reset()

	if err := r.AppendLog("app", "overflowing"); err != nil {
		t.Fatal(err)
	}

	if got := readFile(t, path); got != "123456" {
		t.Errorf("content = %q, want unchanged %q", got, "123456")
	}
	if got := r.Logs()[0].Length; got != 6 {
		t.Errorf("length = %d, want unchanged 6", got)
	}
	if !strings.Contains(buf.String(), "maximum size") {
		t.Errorf("stop should report the log is full, got %q", buf.String())
	}
}

func TestOverflowIgnore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	var buf bytes.Buffer
	r := newTestRegistry(&buf)

	if err := r.AddLog(path, "app", WithMaxLength(10), WithBehaviour(core.Ignore)); err != nil {
		t.Fatal(err)
	}
	if err := r.AppendLog("app", "123456"); err != nil {
		t.Fatal(err)
	}
	buf.Reset()

	if err := r.AppendLog("app", "overflowing"); err != nil {
		t.Fatal(err)
	}

	if got := readFile(t, path); got != "123456" {
		t.Errorf("content = %q, want unchanged", got)
	}
	if buf.Len() != 0 {
		t.Errorf("ignore should be silent, got %q", buf.String())
	}
}

func TestOverflowContinue(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	var buf bytes.Buffer
	r := newTestRegistry(&buf)

	if err := r.AddLog(path, "app", WithMaxLength(5), WithBehaviour(core.Continue)); err != nil {
		t.Fatal(err)
	}

	var want int64
	for i := 0; i < 4; i++ {
		if err := r.AppendLog("app", "abcd"); err != nil {
			t.Fatal(err)
		}
		want += 4
		if got := r.Logs()[0].Length; got != want {
			t.Errorf("length = %d, want %d", got, want)
		}
	}
	if got := readFile(t, path); got != strings.Repeat("abcd", 4) {
		t.Errorf("content = %q", got)
	}
}

func TestOverflowSplit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	var buf bytes.Buffer
	r := newTestRegistry(&buf)

	if err := r.AddLog(path, "app", WithMaxLength(10), WithBehaviour(core.Split)); err != nil {
		t.Fatal(err)
	}
	if err := r.AppendLog("app", "12345678"); err != nil {
		t.Fatal(err)
	}

	// 8+5 > 10: overflows into app2.log, index (8+5)/10+1 = 2.
	if err := r.AppendLog("app", "AAAAA"); err != nil {
		t.Fatal(err)
	}

	if got := readFile(t, path); got != "12345678" {
		t.Errorf("original content = %q, want unchanged", got)
	}
	sibling := filepath.Join(dir, "app2.log")
	if got := readFile(t, sibling); got != "AAAAA" {
		t.Errorf("sibling content = %q, want %q", got, "AAAAA")
	}
	// The tracked length keeps growing; no descriptor exists for the sibling.
	if got := r.Logs()[0].Length; got != 13 {
		t.Errorf("length = %d, want 13", got)
	}
	if len(r.Logs()) != 1 {
		t.Errorf("registry has %d logs, want 1", len(r.Logs()))
	}
}

func TestOverflowSplitIndexAdvances(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	var buf bytes.Buffer
	r := newTestRegistry(&buf)

	if err := r.AddLog(path, "app", WithMaxLength(10), WithBehaviour(core.Split)); err != nil {
		t.Fatal(err)
	}
	if err := r.AppendLog("app", "1234567890"); err != nil {
		t.Fatal(err)
	}

	// length 10, append 5 -> (10+5)/10+1 = 2
	if err := r.AppendLog("app", "AAAAA"); err != nil {
		t.Fatal(err)
	}
	// length 15, append 5 -> (15+5)/10+1 = 3
	if err := r.AppendLog("app", "BBBBB"); err != nil {
		t.Fatal(err)
	}

	if got := readFile(t, filepath.Join(dir, "app2.log")); got != "AAAAA" {
		t.Errorf("app2.log = %q", got)
	}
	if got := readFile(t, filepath.Join(dir, "app3.log")); got != "BBBBB" {
		t.Errorf("app3.log = %q", got)
	}
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		path  string
		index int64
		want  string
	}{
		{"log.txt", 2, "log2.txt"},
		{filepath.Join("dir", "app.log"), 3, filepath.Join("dir", "app3.log")},
		{"noext", 2, "noext2"},
		{"archive.tar.gz", 4, "archive.tar4.gz"},
	}
	for _, tt := range tests {
		if got := splitPath(tt.path, tt.index); got != tt.want {
			t.Errorf("splitPath(%q, %d) = %q, want %q", tt.path, tt.index, got, tt.want)
		}
	}
}

func TestOverflowContinueThenFileMatchesLength(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	var buf bytes.Buffer
	r := newTestRegistry(&buf)

	if err := r.AddLog(path, "app", WithMaxLength(4), WithBehaviour(core.Continue)); err != nil {
		t.Fatal(err)
	}
	if err := r.AppendLog("app", "0123456789"); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Logs()[0].Length; got != info.Size() {
		t.Errorf("tracked length %d != file size %d", got, info.Size())
	}
}
