// Package jsonstore implements the backing-document model: one JSON file per
// manager, read in full at startup and rewritten in full on every mutation.
package jsonstore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"hotel-reservations/internal/infra"
)

const indent = "    "

// Document is a single UTF-8 JSON file holding one manager's collection.
// There is no incremental write path and no cross-process locking; the
// design assumes exactly one writer per file.
type Document struct {
	path string
}

// NewDocument opens the document at path, creating it with an empty JSON
// array (and any missing parent directories) when absent. Creation failures
// are fatal; callers never pre-create files themselves.
func NewDocument(path string) (*Document, error) {
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return nil, infra.WrapRepoErr("failed to stat backing document", err, infra.KindIOFailure)
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, infra.WrapRepoErr("failed to create data directory", err, infra.KindIOFailure)
			}
		}
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return nil, infra.WrapRepoErr("failed to bootstrap backing document", err, infra.KindIOFailure)
		}
	}
	return &Document{path: path}, nil
}

func (d *Document) Path() string {
	return d.path
}

// Load decodes the whole document into v. The document's shape is trusted;
// a structural decode failure aborts the operation rather than skipping
// records.
func (d *Document) Load(v any) error {
	data, err := os.ReadFile(d.path)
	if err != nil {
		return infra.WrapRepoErr("failed to read backing document", err, infra.KindIOFailure)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return infra.WrapRepoErr("failed to decode backing document", err, infra.KindDecodeFailure)
	}
	return nil
}

// Store rewrites the whole document from v, pretty-printed with a 4-space
// indent.
func (d *Document) Store(v any) error {
	data, err := json.MarshalIndent(v, "", indent)
	if err != nil {
		return infra.WrapRepoErr("failed to encode backing document", err, infra.KindEncodeFailure)
	}
	if err := os.WriteFile(d.path, data, 0o644); err != nil {
		return infra.WrapRepoErr("failed to write backing document", err, infra.KindIOFailure)
	}
	return nil
}
