// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package connection

import (
	"errors"
)

type ErrorKind int

const (
	// NotFound means path was empty, missing or not a regular file.
	NotFound ErrorKind = iota
	// ParseError means file contents are not valid YAML.
	ParseError
	// MissingKey means YAML is valid but lacks the required top level key.
	MissingKey
	// Unexpected covers any other failure (eg permission denied while reading).
	Unexpected
)

func (k ErrorKind) String() string {
	switch k {
	case NotFound:
		return "not-found"
	case ParseError:
		return "parse-error"
	case MissingKey:
		return "missing-key"
	default:
		return "unexpected"
	}
}

type Error struct {
	Kind    ErrorKind
	Path    string
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// AsError extracts *Error from err chain.
func AsError(err error) (*Error, bool) {
	var connErr *Error
	if errors.As(err, &connErr) {
		return connErr, true
	}
	return nil, false
}
