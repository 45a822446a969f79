package scanner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FranderUC/lol-itemset-id-fixer/internal/adapters/outbound/scanner"
	"github.com/FranderUC/lol-itemset-id-fixer/internal/domain"
)

func TestChampions(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"Sona", "Braum", ".itemsetfix", ".git"} {
		require.NoError(t, os.Mkdir(filepath.Join(root, dir), 0755))
	}
	// Stray files at the root are not champions.
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0644))

	champions, err := scanner.New().Champions(root)
	require.NoError(t, err)
	require.Len(t, champions, 2)

	names := []string{champions[0].Name, champions[1].Name}
	assert.ElementsMatch(t, []string{"Sona", "Braum"}, names)
	for _, c := range champions {
		assert.Equal(t, filepath.Join(root, c.Name), c.Dir)
	}
}

func TestChampions_RootMissing(t *testing.T) {
	_, err := scanner.New().Champions(filepath.Join(t.TempDir(), "nope"))

	var notFound *domain.PathNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, notFound.Path, "nope")
}

func TestChampions_RootIsAFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "champions")
	require.NoError(t, os.WriteFile(root, []byte("x"), 0644))

	_, err := scanner.New().Champions(root)

	var notFound *domain.PathNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestItemSets(t *testing.T) {
	champDir := t.TempDir()
	rec := filepath.Join(champDir, "Recommended")
	require.NoError(t, os.Mkdir(rec, 0755))

	require.NoError(t, os.WriteFile(filepath.Join(rec, "a.json"), []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(rec, "B.JSON"), []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(rec, "ignore.txt"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(rec, "nested.json"), 0755))

	paths, err := scanner.New().ItemSets(champDir)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(rec, "a.json"),
		filepath.Join(rec, "B.JSON"),
	}, paths)
}

func TestItemSets_NoRecommendedDir(t *testing.T) {
	paths, err := scanner.New().ItemSets(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "set.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"map":"SR"}`), 0644))

	data, err := scanner.New().Read(path)
	require.NoError(t, err)
	assert.Equal(t, `{"map":"SR"}`, string(data))
}
