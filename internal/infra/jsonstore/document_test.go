//go:build unit

package jsonstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"hotel-reservations/internal/infra"
	"hotel-reservations/internal/infra/jsonstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Name string `json:"name"`
}

func TestNewDocument(t *testing.T) {
	t.Run("missing file is bootstrapped with an empty array", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "customers.json")

		doc, err := jsonstore.NewDocument(path)
		require.NoError(t, err)
		assert.Equal(t, path, doc.Path())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})

	t.Run("existing file is left untouched", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "customers.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"name":"Alice"}]`), 0o644))

		_, err := jsonstore.NewDocument(path)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `[{"name":"Alice"}]`, string(data))
	})
}

func TestDocumentLoad(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		doc, err := jsonstore.NewDocument(filepath.Join(t.TempDir(), "entries.json"))
		require.NoError(t, err)

		require.NoError(t, doc.Store([]entry{{Name: "Alice"}, {Name: "Bob"}}))

		var got []entry
		require.NoError(t, doc.Load(&got))
		assert.Equal(t, []entry{{Name: "Alice"}, {Name: "Bob"}}, got)
	})

	t.Run("corrupt document is a decode failure", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "entries.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		doc, err := jsonstore.NewDocument(path)
		require.NoError(t, err)

		var got []entry
		err = doc.Load(&got)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDecodeFailure))
	})
}

func TestDocumentStore(t *testing.T) {
	t.Run("output is pretty printed with four space indent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "entries.json")
		doc, err := jsonstore.NewDocument(path)
		require.NoError(t, err)

		require.NoError(t, doc.Store([]entry{{Name: "Alice"}}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[\n    {\n        \"name\": \"Alice\"\n    }\n]", string(data))
	})

	t.Run("empty collection persists as an empty array", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "entries.json")
		doc, err := jsonstore.NewDocument(path)
		require.NoError(t, err)

		require.NoError(t, doc.Store([]entry{}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})
}
