package history_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FranderUC/lol-itemset-id-fixer/internal/adapters/outbound/history"
	"github.com/FranderUC/lol-itemset-id-fixer/internal/domain"
)

func TestSaveAndLoad(t *testing.T) {
	root := t.TempDir()
	h := history.New()

	require.NoError(t, h.Save(root, domain.RunEntry{
		Timestamp:    "2026-08-24T10:00:00Z",
		Root:         root,
		Applied:      false,
		FilesScanned: 3,
		IDsReplaced:  2,
	}))
	require.NoError(t, h.Save(root, domain.RunEntry{
		Timestamp:     "2026-08-24T10:05:00Z",
		Root:          root,
		Applied:       true,
		FilesScanned:  3,
		FilesModified: 1,
		IDsReplaced:   2,
	}))

	entries, err := h.Load(root)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.False(t, entries[0].Applied)
	assert.True(t, entries[1].Applied)
	assert.Equal(t, 2, entries[1].IDsReplaced)
	assert.Equal(t, "2026-08-24T10:00:00Z", entries[0].Timestamp)
}

func TestLoad_Empty(t *testing.T) {
	entries, err := history.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
