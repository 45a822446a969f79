package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FranderUC/lol-itemset-id-fixer/internal/adapters/outbound/store"
)

func TestBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "set.json")
	original := []byte(`{"map":"SR"}`)

	bak, err := store.New().Backup(path, original)
	require.NoError(t, err)
	assert.Equal(t, path+".bak", bak)

	data, err := os.ReadFile(bak)
	require.NoError(t, err)
	assert.Equal(t, original, data)
}

func TestBackup_ExistingBackupKept(t *testing.T) {
	path := filepath.Join(t.TempDir(), "set.json")
	bak := path + ".bak"
	require.NoError(t, os.WriteFile(bak, []byte("first original"), 0644))

	got, err := store.New().Backup(path, []byte("later content"))
	require.NoError(t, err)
	assert.Equal(t, bak, got)

	data, err := os.ReadFile(bak)
	require.NoError(t, err)
	assert.Equal(t, "first original", string(data))
}

func TestWrite_Minified(t *testing.T) {
	path := filepath.Join(t.TempDir(), "set.json")
	doc := map[string]any{
		"map": "SR",
		"blocks": []any{
			map[string]any{"items": []any{map[string]any{"id": "323075"}}},
		},
	}

	require.NoError(t, store.New().Write(path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"blocks":[{"items":[{"id":"323075"}]}],"map":"SR"}`, string(data))
}

func TestWrite_KeepsUTF8AndHTMLLiteral(t *testing.T) {
	path := filepath.Join(t.TempDir(), "set.json")
	doc := map[string]any{"title": "Redención <support>"}

	require.NoError(t, store.New().Write(path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"title":"Redención <support>"}`, string(data))
}
