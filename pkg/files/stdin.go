// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	stdinLock        sync.Mutex
	hasStdinBeenRead bool
	stdin            io.Reader = os.Stdin
)

// ReadStdin only read stdin once
func ReadStdin() ([]byte, error) {
	stdinLock.Lock()
	defer stdinLock.Unlock()

	if hasStdinBeenRead {
		return nil, fmt.Errorf("Standard input has already been read, has the '-' argument been used more than once?")
	}
	hasStdinBeenRead = true

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, &IOError{Op: "Reading", Path: "stdin", Err: err}
	}
	return data, nil
}
