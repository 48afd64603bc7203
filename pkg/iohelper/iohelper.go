// Package iohelper provides helper functions for I/O operations:
// bounded input reads for scanner files and atomic output-file writes
// for exported artifacts.
package iohelper

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Input size limits for scanner files. Scanner exports are moderate-sized
// documents; the limit prevents memory exhaustion from a pathological file.
const (
	// DefaultMaxInputSize bounds a single scanner file read (64MB).
	DefaultMaxInputSize int64 = 64 * 1024 * 1024
)

// ReadAll reads from r with a size limit.
// If r is nil, returns an empty slice and no error.
func ReadAll(r io.Reader, maxSize int64) ([]byte, error) {
	if r == nil {
		return []byte{}, nil
	}
	return io.ReadAll(io.LimitReader(r, maxSize))
}

// ReadFile reads a file with the default input size limit.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadAll(f, DefaultMaxInputSize)
}

// EnsureDir creates the parent directory of path if it does not exist.
// The mkdir is idempotent.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}
	return nil
}

// WriteFileAtomic writes data to path via a temp file in the same
// directory followed by a rename, so an existing file at path is never
// left partially overwritten. Parent directories are created as needed.
func WriteFileAtomic(path string, data []byte) error {
	if err := EnsureDir(path); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
