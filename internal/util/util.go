package util

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultIfEmpty returns def if src is empty.
//
func DefaultIfEmpty(src string, def string) string {
	if len(src) > 0 {
		return src
	}
	return def
}

// GetEnvOrDefault returns def if the env var key is unset or empty.
//
func GetEnvOrDefault(key string, def string) string {
	return DefaultIfEmpty(os.Getenv(key), def)
}

// StatIfExists lets you provide specific NotExist error handling
// Returns stat, true, nil if file exists
// Returns nil, false, nil if err == fs.ErrNotExist
// Returns nil, false, err if err && err != fs.ErrNotExist
//
func StatIfExists(path string) (os.FileInfo, bool, error) {
	stat, err := os.Stat(path)
	if err == nil {
		return stat, true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	return nil, false, err
}

// ReadFileIfExists returns the source at path, keeping "not found" apart from other errors.
// Returns []byte, true, nil if the file exists, is regular, and can be read
// Returns nil, false, nil if it does not exist
// Returns nil, false, err otherwise
//
func ReadFileIfExists(path string) ([]byte, bool, error) {
	stat, exists, err := StatIfExists(path)
	if !exists {
		return nil, false, err
	}
	if !stat.Mode().IsRegular() {
		return nil, false, fmt.Errorf("%s: not a regular file", path)
	}
	// filePath.Clean to appease the gosec gods [G304 (CWE-22)]
	//
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, false, err
	}
	defer func() { _ = file.Close() }()
	src, err := io.ReadAll(file)
	if err != nil {
		return nil, false, err
	}
	return src, true, nil
}

// TryMakeRelative tries to generate a path for targetPath that is relative to basePath.
// It returns either a path relative to basePath, if possible, or targetPath.
//
func TryMakeRelative(basePath string, targetPath string) string {
	if rel, err := filepath.Rel(basePath, targetPath); err == nil && len(rel) > 0 && !strings.HasPrefix(rel, ".") {
		return rel
	}
	return targetPath
}
