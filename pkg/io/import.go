package io

import (
	"bytes"
	"io"
	"os"

	"github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/errors"
)

// DefaultMaxBytes is the default input size ceiling.
const DefaultMaxBytes = 10000

// ReadOutline reads all of r, failing if it holds more than maxBytes bytes.
// ReadOutline does not close r.
func ReadOutline(r io.Reader, maxBytes int64) ([]byte, error) {
	var buf bytes.Buffer
	n, err := buf.ReadFrom(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInputUnreadable, err, "read input")
	}
	if n > maxBytes {
		return nil, errors.New(errors.ErrCodeInputTooLarge, "input exceeds %d bytes", maxBytes)
	}
	return buf.Bytes(), nil
}

// ImportOutline reads the outline file at path using [ReadOutline].
func ImportOutline(path string, maxBytes int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeInputNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInputUnreadable, err, "open %s", path)
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.IsDir() {
		return nil, errors.New(errors.ErrCodeInputUnreadable, "%s is a directory", path)
	}
	return ReadOutline(f, maxBytes)
}
