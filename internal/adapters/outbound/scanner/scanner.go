package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/FranderUC/lol-itemset-id-fixer/internal/domain"
)

// recommendedDir is the fixed subdirectory Riot stores item sets in:
// <root>/<Champion>/Recommended/*.json.
const recommendedDir = "Recommended"

// ChampionScanner implements domain.ChampionSource against the filesystem.
type ChampionScanner struct{}

func New() *ChampionScanner {
	return &ChampionScanner{}
}

// Champions lists the immediate child directories of root.
func (s *ChampionScanner) Champions(root string) ([]domain.Champion, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, &domain.PathNotFoundError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &domain.PathNotFoundError{Path: root}
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, &domain.PathNotFoundError{Path: root, Err: err}
	}

	var champions []domain.Champion
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		// Dot-directories (.itemsetfix history, VCS metadata) are never
		// champion folders.
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		champions = append(champions, domain.Champion{
			Name: e.Name(),
			Dir:  filepath.Join(root, e.Name()),
		})
	}
	return champions, nil
}

// ItemSets lists Recommended/*.json under championDir. A champion without a
// Recommended directory simply has no item sets.
func (s *ChampionScanner) ItemSets(championDir string) ([]string, error) {
	dir := filepath.Join(championDir, recommendedDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}

// Read returns the raw bytes of one item set file.
func (s *ChampionScanner) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}
