// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"errors"
	"os"
	"path/filepath"
)

// WriteFileAtomic replaces file at path with data. Contents are written to
// a temporary file in the same directory first and then renamed over path,
// so path either keeps old contents or holds all of data.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	err := os.MkdirAll(dir, 0700)
	if err != nil {
		return &IOError{Op: "Creating directory", Path: dir, Err: err}
	}

	// keep permissions of the file being replaced
	if fi, err := os.Stat(path); err == nil {
		if fi.IsDir() {
			return &IOError{Op: "Writing file", Path: path, Err: errIsDirectory}
		}
		perm = fi.Mode().Perm()
	}

	fd, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return &IOError{Op: "Writing file", Path: path, Err: err}
	}

	tmpPath := fd.Name()
	cleanUp := func() { os.Remove(tmpPath) }

	_, err = fd.Write(data)
	if err == nil {
		err = fd.Sync()
	}
	if closeErr := fd.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(tmpPath, perm)
	}
	if err != nil {
		cleanUp()
		return &IOError{Op: "Writing file", Path: path, Err: err}
	}

	err = os.Rename(tmpPath, path)
	if err != nil {
		cleanUp()
		return &IOError{Op: "Replacing file", Path: path, Err: err}
	}

	return nil
}

// ReadFile reads whole file wrapping failures as *IOError.
func ReadFile(path string) ([]byte, error) {
	return NewLocalSource(path, "").Bytes()
}

var errIsDirectory = errors.New("is a directory")
