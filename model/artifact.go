package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrUnreadableArtifact marks the one fatal condition in the pipeline: an
// input artifact that cannot be read at all. Partial or ambiguous records
// inside a readable artifact never produce it.
var ErrUnreadableArtifact = errors.New("unreadable artifact")

// ReadArtifact loads a flat JSON collection from path. A missing or
// unparsable file wraps ErrUnreadableArtifact so callers can distinguish the
// fatal case from record-local conditions.
func ReadArtifact[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrUnreadableArtifact, path, err)
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrUnreadableArtifact, path, err)
	}
	return records, nil
}

// ReadArtifactObject loads a single JSON document from path with the same
// fatal semantics as ReadArtifact.
func ReadArtifactObject[T any](path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrUnreadableArtifact, path, err)
	}
	var doc T
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrUnreadableArtifact, path, err)
	}
	return &doc, nil
}

// WriteArtifactObject writes a single JSON document to path.
func WriteArtifactObject[T any](path string, doc *T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create artifact directory: %w", err)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal artifact: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write artifact %s: %w", path, err)
	}
	return nil
}

// WriteArtifact writes a flat JSON collection to path, creating parent
// directories as needed. Output is indented so artifacts stay reviewable.
func WriteArtifact[T any](path string, records []T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create artifact directory: %w", err)
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal artifact: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write artifact %s: %w", path, err)
	}
	return nil
}
