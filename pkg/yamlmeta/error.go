// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

import (
	"errors"
	"fmt"

	goyaml "github.com/goccy/go-yaml"
	goyamlparser "github.com/goccy/go-yaml/parser"
	goyamltoken "github.com/goccy/go-yaml/token"

	"carvel.dev/yamlpad/pkg/filepos"
)

// ParseError describes YAML that could not be parsed. Position is unknown
// when neither parser could point at the offending location.
type ParseError struct {
	Position *filepos.Position
	Message  string
	// Excerpt is the offending source region annotated with a marker (may be empty).
	Excerpt string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Position.IsKnown() {
		return fmt.Sprintf("%s: %s", e.Position.AsString(), e.Message)
	}
	if len(e.Position.GetFile()) > 0 {
		return fmt.Sprintf("%s: %s", e.Position.GetFile(), e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Err }

// AsParseError extracts *ParseError from err chain.
func AsParseError(err error) (*ParseError, bool) {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr, true
	}
	return nil, false
}

type syntaxLocation struct {
	line    int
	column  int
	excerpt string
}

// tokenError is satisfied by goccy/go-yaml syntax errors.
type tokenError interface {
	GetToken() *goyamltoken.Token
}

// locateSyntaxError re-parses data with a second parser that keeps token
// positions, so that errors can carry a column and a source excerpt.
func locateSyntaxError(data []byte) (loc syntaxLocation, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			loc, ok = syntaxLocation{}, false
		}
	}()

	_, err := goyamlparser.ParseBytes(data, 0)
	if err == nil {
		return syntaxLocation{}, false
	}

	var tokErr tokenError
	if errors.As(err, &tokErr) {
		if tok := tokErr.GetToken(); tok != nil && tok.Position != nil {
			loc.line = tok.Position.Line
			loc.column = tok.Position.Column
		}
	}
	loc.excerpt = goyaml.FormatError(err, false, true)

	return loc, true
}
