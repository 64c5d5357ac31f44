// Package storage reads and writes text artifacts through a gocloud.dev blob bucket.
//
// Artifacts are addressed by name relative to the bucket root. The bucket is a
// local directory by default; any registered blob URL works too:
//
//	store, err := storage.Open(ctx, "./artifacts")   // local directory
//	store, err := storage.Open(ctx, "mem://")        // in-memory, used by tests
//	store, err := storage.Open(ctx, "file:///srv/stego")
package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"

	apperrors "github.com/allisson/stegotext/internal/errors"
)

const (
	// TextContentType is the content type of text artifacts.
	TextContentType = "text/plain; charset=utf-8"
	// JSONContentType is the content type of key files.
	JSONContentType = "application/json"
)

var (
	// ErrArtifactNotFound indicates no artifact exists under the requested name.
	ErrArtifactNotFound = apperrors.Wrap(apperrors.ErrNotFound, "artifact not found")

	// ErrNotPlainText indicates an artifact that should hold text holds something else.
	ErrNotPlainText = apperrors.Wrap(apperrors.ErrInvalidInput, "artifact is not plain text")

	// ErrNotUTF8 indicates a text artifact is not valid UTF-8.
	ErrNotUTF8 = apperrors.Wrap(apperrors.ErrInvalidInput, "artifact is not valid utf-8")
)

// ArtifactStore reads and writes named artifacts in a blob bucket.
type ArtifactStore struct {
	bucket *blob.Bucket
}

// NewArtifactStore wraps an open bucket. The store owns the bucket and closes it on Close.
func NewArtifactStore(bucket *blob.Bucket) *ArtifactStore {
	return &ArtifactStore{bucket: bucket}
}

// Open opens the bucket at location. A location without a URL scheme is treated
// as a local directory, created if missing.
func Open(ctx context.Context, location string) (*ArtifactStore, error) {
	if location == "" {
		location = "."
	}

	if !strings.Contains(location, "://") {
		dir, err := filepath.Abs(location)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve storage directory: %w", err)
		}
		bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{
			CreateDir: true,
			Metadata:  fileblob.MetadataDontWrite,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open storage directory %q: %w", dir, err)
		}
		return NewArtifactStore(bucket), nil
	}

	bucket, err := blob.OpenBucket(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage bucket %q: %w", location, err)
	}
	return NewArtifactStore(bucket), nil
}

// ReadBytes returns the raw content of the artifact stored under name.
func (s *ArtifactStore) ReadBytes(ctx context.Context, name string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, name)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, name)
		}
		return nil, fmt.Errorf("failed to read artifact %q: %w", name, err)
	}
	return data, nil
}

// WriteBytes stores data under name, replacing any existing artifact.
func (s *ArtifactStore) WriteBytes(ctx context.Context, name string, data []byte, contentType string) error {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, name, data, opts); err != nil {
		return fmt.Errorf("failed to write artifact %q: %w", name, err)
	}
	return nil
}

// ReadText returns the artifact stored under name as a string. The content must
// sniff as text/plain (or a text subtype such as HTML or JSON) and be valid UTF-8.
// An empty artifact is returned as an empty string.
func (s *ArtifactStore) ReadText(ctx context.Context, name string) (string, error) {
	data, err := s.ReadBytes(ctx, name)
	if err != nil {
		return "", err
	}
	if err := ValidateText(data); err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return string(data), nil
}

// WriteText stores text under name with a text/plain content type.
func (s *ArtifactStore) WriteText(ctx context.Context, name, text string) error {
	if !utf8.ValidString(text) {
		return fmt.Errorf("%s: %w", name, ErrNotUTF8)
	}
	return s.WriteBytes(ctx, name, []byte(text), TextContentType)
}

// Exists reports whether an artifact is stored under name.
func (s *ArtifactStore) Exists(ctx context.Context, name string) (bool, error) {
	ok, err := s.bucket.Exists(ctx, name)
	if err != nil {
		return false, fmt.Errorf("failed to check artifact %q: %w", name, err)
	}
	return ok, nil
}

// Close releases the underlying bucket.
func (s *ArtifactStore) Close() error {
	return s.bucket.Close()
}

// ValidateText checks that data is UTF-8 text.
func ValidateText(data []byte) error {
	if len(data) == 0 {
		return nil
	}

	detected := mimetype.Detect(data)
	if !isText(detected) {
		return fmt.Errorf("%w: detected %s", ErrNotPlainText, detected.String())
	}
	if !utf8.Valid(data) {
		return ErrNotUTF8
	}
	return nil
}

// isText walks the MIME hierarchy: text/html and application/json are children
// of text/plain.
func isText(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}
