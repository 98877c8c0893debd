// Package fs provides file fingerprinting for the generation stamp.
package fs

import (
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/ninjify/internal/core/domain"
	"go.trai.ch/zerr"
)

// Fingerprint computes the XXHash of a file's content, formatted as a
// fixed-width hex string.
func Fingerprint(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// Stamp persists the fingerprint of the last successful generation so an
// unchanged graph file can skip regeneration entirely.
type Stamp struct {
	Path string
}

// NewStamp creates a Stamp stored at the given path.
func NewStamp(path string) *Stamp {
	return &Stamp{Path: path}
}

// Read returns the recorded fingerprint, or "" when no stamp exists.
func (s *Stamp) Read() (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return "", nil
		}
		return "", zerr.With(zerr.Wrap(err, domain.ErrStampReadFailed.Error()), "path", s.Path)
	}
	return strings.TrimSpace(string(data)), nil
}

// Write records the fingerprint of a completed generation.
func (s *Stamp) Write(fingerprint string) error {
	if err := os.WriteFile(s.Path, []byte(fingerprint+"\n"), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStampWriteFailed.Error()), "path", s.Path)
	}
	return nil
}
