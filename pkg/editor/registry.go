// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package editor

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// ErrNoFileSelected is returned when asked to open an editor without a path.
var ErrNoFileSelected = errors.New("Please select a file first.")

// Session is a single open editor.
type Session struct {
	ID     int
	Buffer *Buffer
}

// Registry tracks open editor sessions. It is safe for concurrent use.
type Registry struct {
	mu       sync.Mutex
	lastID   int
	sessions []*Session
	logger   zerolog.Logger
}

func NewRegistry(logger zerolog.Logger) *Registry {
	return &Registry{logger: logger.With().Str("component", "editors").Logger()}
}

// Open returns session editing path. Existing session is reused
// when the same file is already open.
func (r *Registry) Open(path string) (*Session, error) {
	if len(path) == 0 {
		return nil, ErrNoFileSelected
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := sessionKey(path)
	for _, session := range r.sessions {
		if len(session.Buffer.Path()) > 0 && sessionKey(session.Buffer.Path()) == key {
			r.logger.Debug().Int("id", session.ID).Str("path", path).Msg("editor already open")
			return session, nil
		}
	}

	buf, err := Open(path)
	if err != nil {
		r.logger.Warn().Err(err).Str("path", path).Msg("opening editor failed")
		return nil, err
	}

	return r.add(buf, path), nil
}

// New starts session with an empty, untitled buffer.
func (r *Registry) New() *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.add(New(), "")
}

func (r *Registry) add(buf *Buffer, path string) *Session {
	r.lastID++
	session := &Session{ID: r.lastID, Buffer: buf}
	r.sessions = append(r.sessions, session)

	r.logger.Info().Int("id", session.ID).Str("path", path).Int("open", len(r.sessions)).Msg("editor opened")
	return session
}

// Close releases session with given id. It reports whether session was found.
func (r *Registry) Close(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, session := range r.sessions {
		if session.ID == id {
			r.sessions = append(r.sessions[:i], r.sessions[i+1:]...)
			r.logger.Info().Int("id", id).Bool("dirty", session.Buffer.IsDirty()).
				Int("open", len(r.sessions)).Msg("editor closed")
			return true
		}
	}
	return false
}

func (r *Registry) Get(id int) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, session := range r.sessions {
		if session.ID == id {
			return session, true
		}
	}
	return nil, false
}

// Sessions lists open sessions in the order they were opened.
func (r *Registry) Sessions() []*Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]*Session{}, r.sessions...)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

func sessionKey(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
