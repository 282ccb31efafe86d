// Package tables implements the four source-table providers: mnemonics,
// compose-key input sequences, markup entity names, and name aliases.
//
// Every provider follows the same contract: the underlying data source is
// parsed exactly once, on first lookup, behind a sync.Once build barrier;
// the resulting table is immutable and retained for the process lifetime.
// A source that is missing or structurally malformed is a fatal build error
// cached and returned from every subsequent lookup — a provider never serves
// a partially built table.
package tables

import (
	"io"
	"os"
	"strings"
)

// RawSource supplies the raw bytes of one external data source.
type RawSource interface {
	// Open returns a reader over the source data. The caller closes it.
	Open() (io.ReadCloser, error)
}

// FileSource reads a data source from the local filesystem.
type FileSource struct {
	Path string
}

// Open opens the underlying file.
func (s FileSource) Open() (io.ReadCloser, error) {
	return os.Open(s.Path)
}

// MemorySource serves fixed in-memory data. It exists for tests and
// embedded fallbacks.
type MemorySource string

// Open returns a reader over the in-memory data.
func (s MemorySource) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(string(s))), nil
}

func readAll(src RawSource) ([]byte, error) {
	r, err := src.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
