// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package filepos

import (
	"fmt"
	"strings"
)

type Position struct {
	lineNum int // 1 based
	column  int // 1 based, 0 when not known
	file    string
	line    string
	known   bool
}

func NewPosition(lineNum int) *Position {
	if lineNum <= 0 {
		panic("Lines are 1 based")
	}
	return &Position{lineNum: lineNum, known: true}
}

// NewPositionWithColumn returns the Position of a line and column (both 1 based).
// Non-positive columns are treated as unknown.
func NewPositionWithColumn(lineNum, column int) *Position {
	p := NewPosition(lineNum)
	if column > 0 {
		p.column = column
	}
	return p
}

// NewUnknownPosition is equivalent of zero value *Position
func NewUnknownPosition() *Position {
	return &Position{}
}

// NewUnknownPositionInFile produces a Position of a known file at an unknown line.
func NewUnknownPositionInFile(file string) *Position {
	return &Position{file: file}
}

func (p *Position) SetFile(file string) { p.file = file }

func (p *Position) SetLine(line string) { p.line = line }

// SetLineFromSource caches the source line this Position points to.
func (p *Position) SetLineFromSource(src []byte) {
	if !p.IsKnown() {
		return
	}
	lines := strings.Split(string(src), "\n")
	if p.lineNum <= len(lines) {
		p.line = strings.TrimRight(lines[p.lineNum-1], "\r")
	}
}

func (p *Position) IsKnown() bool { return p != nil && p.known }

func (p *Position) HasColumn() bool { return p.IsKnown() && p.column > 0 }

func (p *Position) LineNum() int {
	if !p.IsKnown() {
		panic("Position is unknown")
	}
	return p.lineNum
}

func (p *Position) Column() int {
	if !p.HasColumn() {
		return 0
	}
	return p.column
}

func (p *Position) GetLine() string {
	if p == nil {
		return ""
	}
	return p.line
}

func (p *Position) GetFile() string {
	if p == nil {
		return ""
	}
	return p.file
}

func (p *Position) AsString() string {
	return "line " + p.AsCompactString()
}

func (p *Position) AsCompactString() string {
	filePrefix := p.GetFile()
	if len(filePrefix) > 0 {
		filePrefix += ":"
	}
	if p.HasColumn() {
		return fmt.Sprintf("%s%d:%d", filePrefix, p.LineNum(), p.Column())
	}
	if p.IsKnown() {
		return fmt.Sprintf("%s%d", filePrefix, p.LineNum())
	}
	return fmt.Sprintf("%s?", filePrefix)
}

func (p *Position) As4DigitString() string {
	if p.IsKnown() {
		return fmt.Sprintf("%4d", p.LineNum())
	}
	return "????"
}

func (p *Position) DeepCopy() *Position {
	if p == nil {
		return nil
	}
	newPos := *p
	return &newPos
}
