package domain

// Champion is one champion configuration directory under the root.
type Champion struct {
	Name string `json:"name"`
	Dir  string `json:"dir"`
}

// ChampionSource discovers champion directories and their item set files.
type ChampionSource interface {
	// Champions lists the immediate child directories of root. Returns
	// *PathNotFoundError when root is missing or not a directory.
	Champions(root string) ([]Champion, error)
	// ItemSets lists Recommended/*.json under one champion directory.
	// A missing Recommended directory yields an empty list, not an error.
	ItemSets(championDir string) ([]string, error)
	// Read returns the raw bytes of one item set file.
	Read(path string) ([]byte, error)
}

// ItemSetStore persists modified item sets with backup-before-overwrite.
type ItemSetStore interface {
	// Backup preserves the original bytes as <path>.bak and returns the
	// backup path. An existing .bak is kept as-is.
	Backup(path string, original []byte) (string, error)
	// Write serializes doc and overwrites path.
	Write(path string, doc map[string]any) error
}

// ConfigLoader loads tool configuration for a champions root.
type ConfigLoader interface {
	Load(root string) (ToolConfig, error)
}

// RunHistory records completed runs for a champions root.
type RunHistory interface {
	Save(root string, entry RunEntry) error
	Load(root string) ([]RunEntry, error)
}
