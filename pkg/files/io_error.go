// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"errors"
	"fmt"
)

// IOError describes a failed filesystem operation.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s '%s': %s", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// AsIOError extracts *IOError from err chain.
func AsIOError(err error) (*IOError, bool) {
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return ioErr, true
	}
	return nil, false
}
