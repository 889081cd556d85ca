// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	yamlExts       = []string{".yaml", ".yml"}
	defaultYAMLExt = ".yaml"
)

// File is a YAML input to be formatted.
type File struct {
	src     Source
	relPath string
}

// NewSortedFilesFromPaths expands paths into files. "-" stands for stdin.
// Directories are walked (only when recursive) keeping YAML files only.
func NewSortedFilesFromPaths(paths []string, recursive bool) ([]*File, error) {
	var fileSrcs []Source

	for _, path := range paths {
		switch {
		case path == "-":
			fileSrcs = append(fileSrcs, NewCachedSource(NewStdinSource()))

		default:
			fileInfo, err := os.Stat(path)
			if err != nil {
				return nil, &IOError{Op: "Checking file", Path: path, Err: err}
			}

			if fileInfo.IsDir() {
				if !recursive {
					return nil, fmt.Errorf("Expected file '%s' to not be a directory", path)
				}

				var selectedPaths []string

				err := filepath.Walk(path, func(walkedPath string, fi os.FileInfo, err error) error {
					if err != nil || fi.IsDir() {
						return err
					}
					if HasYAMLExt(walkedPath) {
						selectedPaths = append(selectedPaths, walkedPath)
					}
					return nil
				})
				if err != nil {
					return nil, &IOError{Op: "Listing files", Path: path, Err: err}
				}

				sort.Strings(selectedPaths)

				for _, selectedPath := range selectedPaths {
					fileSrcs = append(fileSrcs, NewLocalSource(selectedPath, path))
				}
			} else {
				fileSrcs = append(fileSrcs, NewLocalSource(path, ""))
			}
		}
	}

	var files []*File

	for _, fileSrc := range fileSrcs {
		file, err := NewFileFromSource(fileSrc)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, nil
}

func NewFileFromSource(fileSrc Source) (*File, error) {
	relPath, err := fileSrc.RelativePath()
	if err != nil {
		return nil, fmt.Errorf("Calculating relative path for '%s': %w", fileSrc.Description(), err)
	}

	return &File{src: fileSrc, relPath: relPath}, nil
}

func (r *File) Description() string    { return r.src.Description() }
func (r *File) RelativePath() string   { return r.relPath }
func (r *File) Bytes() ([]byte, error) { return r.src.Bytes() }

// Path returns filesystem path of the file, empty for non-local sources.
func (r *File) Path() string {
	if local, ok := r.src.(LocalSource); ok {
		return local.path
	}
	return ""
}

// IsStdin reports whether contents come from standard input.
func (r *File) IsStdin() bool {
	src := r.src
	if cached, ok := src.(*CachedSource); ok {
		src = cached.src
	}
	_, ok := src.(StdinSource)
	return ok
}

// HasYAMLExt reports whether path ends with .yaml or .yml (case insensitive).
func HasYAMLExt(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, yamlExt := range yamlExts {
		if ext == yamlExt {
			return true
		}
	}
	return false
}

// EnsureYAMLExt appends .yaml to path unless it already has a YAML extension.
func EnsureYAMLExt(path string) string {
	if len(path) == 0 || HasYAMLExt(path) {
		return path
	}
	return path + defaultYAMLExt
}
