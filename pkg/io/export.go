package io

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/errors"
)

// WriteFileAtomic replaces the file at path with data. The data is first
// written and synced to a temporary file in the same directory, which is
// then renamed over path.
func WriteFileAtomic(path string, data []byte) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}

	dir, base := filepath.Split(path)
	tmp := filepath.Join(dir, "."+base+"."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "create %s", path)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "write %s", path)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "sync %s", path)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "close %s", path)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "replace %s", path)
	}
	return nil
}
