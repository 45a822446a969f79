package domain

import "fmt"

// RunOptions are the inputs of one run, supplied by whichever front end is
// driving the core (CLI, MCP, tests).
type RunOptions struct {
	// Root is the champions directory to scan.
	Root string `json:"root"`
	// Apply writes modified files; false is a dry run with identical
	// reporting and no disk side effects.
	Apply bool `json:"apply"`
	// Backups preserves originals as .bak before overwriting.
	Backups bool `json:"backups"`
	// MapCode selects eligible item sets. Empty means DefaultMapCode.
	MapCode string `json:"map_code,omitempty"`
}

// ToolConfig holds optional settings loaded from .itemsetfix.yaml in the
// champions root.
type ToolConfig struct {
	MapCode          string        `yaml:"map_code"          json:"map_code,omitempty"`
	Backups          *bool         `yaml:"backups"           json:"backups,omitempty"`
	ExcludeChampions []string      `yaml:"exclude_champions" json:"exclude_champions,omitempty"`
	ExtraMappings    []ItemMapping `yaml:"extra_mappings"    json:"extra_mappings,omitempty"`
}

// DefaultToolConfig returns a zero-value config that changes nothing.
func DefaultToolConfig() ToolConfig {
	return ToolConfig{}
}

// Validate catches malformed extra mappings before they reach the table.
func (c ToolConfig) Validate() error {
	seen := make(map[int]bool, len(c.ExtraMappings))
	for _, m := range c.ExtraMappings {
		if m.OldID <= 0 || m.NewID <= 0 {
			return fmt.Errorf("extra mapping %d -> %d: ids must be positive", m.OldID, m.NewID)
		}
		if m.OldID == m.NewID {
			return fmt.Errorf("extra mapping %d: old and new id are equal", m.OldID)
		}
		if seen[m.OldID] {
			return fmt.Errorf("extra mapping %d: duplicate old id", m.OldID)
		}
		seen[m.OldID] = true
	}
	return nil
}

// RunEntry is one persisted run summary.
type RunEntry struct {
	Timestamp     string `json:"timestamp"`
	Root          string `json:"root"`
	Applied       bool   `json:"applied"`
	FilesScanned  int    `json:"files_scanned"`
	EligibleFiles int    `json:"eligible_files"`
	FilesModified int    `json:"files_modified"`
	IDsReplaced   int    `json:"ids_replaced"`
}
