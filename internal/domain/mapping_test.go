package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FranderUC/lol-itemset-id-fixer/internal/domain"
)

func TestEmbeddedTable_Lookup(t *testing.T) {
	table := domain.EmbeddedTable()

	m, ok := table.Lookup(3075)
	require.True(t, ok)
	assert.Equal(t, 323075, m.NewID)
	assert.Equal(t, "Malla de espinas", m.NameES)
	assert.Equal(t, "Thornmail", m.NameEN)

	_, ok = table.Lookup(9999)
	assert.False(t, ok)
}

func TestEmbeddedTable_HasAllSupportItems(t *testing.T) {
	table := domain.EmbeddedTable()
	assert.Len(t, table, 20)
}

func TestEmbeddedTable_NoTargetIsASource(t *testing.T) {
	// Replacements must be idempotent: running twice can never rewrite an
	// already-rewritten ID.
	table := domain.EmbeddedTable()
	for _, m := range table {
		_, ok := table.Lookup(m.NewID)
		assert.False(t, ok, "new id %d must not itself be mapped", m.NewID)
	}
}

func TestTable_Merge(t *testing.T) {
	table := domain.EmbeddedTable()
	merged := table.Merge([]domain.ItemMapping{
		{OldID: 1234, NewID: 321234, NameES: "Espada", NameEN: "Sword"},
		{OldID: 3075, NewID: 999999, NameES: "Otra", NameEN: "Other"},
	})

	m, ok := merged.Lookup(1234)
	require.True(t, ok)
	assert.Equal(t, 321234, m.NewID)

	// Extras override built-in entries.
	m, ok = merged.Lookup(3075)
	require.True(t, ok)
	assert.Equal(t, 999999, m.NewID)

	// The original table is untouched.
	m, _ = table.Lookup(3075)
	assert.Equal(t, 323075, m.NewID)
	_, ok = table.Lookup(1234)
	assert.False(t, ok)
}

func TestTable_EntriesSortedByOldID(t *testing.T) {
	entries := domain.EmbeddedTable().Entries()
	require.NotEmpty(t, entries)
	for i := 1; i < len(entries); i++ {
		assert.Less(t, entries[i-1].OldID, entries[i].OldID)
	}
	assert.Equal(t, 2065, entries[0].OldID)
	assert.Equal(t, 8020, entries[len(entries)-1].OldID)
}
