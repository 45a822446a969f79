package domain

import (
	"sort"
	"strings"

	"github.com/fatih/camelcase"
)

// Outcome is the terminal state of one scanned file.
type Outcome string

const (
	OutcomeSkippedIneligible Outcome = "skipped_ineligible"
	OutcomeSkippedMalformed  Outcome = "skipped_malformed"
	OutcomeSkippedUnreadable Outcome = "skipped_unreadable"
	OutcomeUnchanged         Outcome = "unchanged"
	OutcomeModified          Outcome = "modified"
	OutcomeWriteFailed       Outcome = "write_failed"
)

// Change records a single identifier substitution.
type Change struct {
	Champion string `json:"champion"`
	File     string `json:"file"`
	OldID    int    `json:"old_id"`
	NewID    int    `json:"new_id"`
	NameES   string `json:"name_es"`
	NameEN   string `json:"name_en"`
}

// FileReport is the per-file entry of a run. Every skipped or failed file
// carries a reason; it is never silently dropped.
type FileReport struct {
	Champion     string  `json:"champion"`
	Path         string  `json:"path"`
	Outcome      Outcome `json:"outcome"`
	Reason       string  `json:"reason,omitempty"`
	Replacements int     `json:"replacements,omitempty"`
}

// RunResult aggregates one complete run. A dry run produces the same content
// as an apply run over the same inputs; only the disk side effects differ.
type RunResult struct {
	Root             string       `json:"root"`
	MapCode          string       `json:"map_code"`
	ChampionsScanned int          `json:"champions_scanned"`
	FilesScanned     int          `json:"files_scanned"`
	EligibleFiles    int          `json:"eligible_files"`
	FilesModified    int          `json:"files_modified"`
	IDsReplaced      int          `json:"ids_replaced"`
	Changes          []Change     `json:"changes,omitempty"`
	Backups          []string     `json:"backups,omitempty"`
	Files            []FileReport `json:"files,omitempty"`
	Champions        []string     `json:"champions,omitempty"`
}

// Skipped returns the file reports for files that did not complete cleanly.
func (r *RunResult) Skipped() []FileReport {
	var out []FileReport
	for _, f := range r.Files {
		switch f.Outcome {
		case OutcomeSkippedMalformed, OutcomeSkippedUnreadable, OutcomeWriteFailed:
			out = append(out, f)
		}
	}
	return out
}

// ItemChange is one substituted item aggregated across a champion's files.
type ItemChange struct {
	OldID  int    `json:"old_id"`
	NewID  int    `json:"new_id"`
	NameES string `json:"name_es"`
	NameEN string `json:"name_en"`
	Count  int    `json:"count"`
}

// ChampionChanges groups a run's changes under one champion for presentation.
type ChampionChanges struct {
	Champion    string       `json:"champion"`
	DisplayName string       `json:"display_name"`
	Items       []ItemChange `json:"items"`
}

// GroupChanges folds the flat change list into per-champion groups. Champions
// are ordered case-insensitively; items by count descending, then by OldID.
func GroupChanges(changes []Change) []ChampionChanges {
	byChampion := make(map[string]map[int]*ItemChange)
	for _, c := range changes {
		items, ok := byChampion[c.Champion]
		if !ok {
			items = make(map[int]*ItemChange)
			byChampion[c.Champion] = items
		}
		item, ok := items[c.OldID]
		if !ok {
			item = &ItemChange{OldID: c.OldID, NewID: c.NewID, NameES: c.NameES, NameEN: c.NameEN}
			items[c.OldID] = item
		}
		item.Count++
	}

	groups := make([]ChampionChanges, 0, len(byChampion))
	for champion, items := range byChampion {
		group := ChampionChanges{Champion: champion, DisplayName: DisplayName(champion)}
		for _, item := range items {
			group.Items = append(group.Items, *item)
		}
		sort.Slice(group.Items, func(i, j int) bool {
			if group.Items[i].Count != group.Items[j].Count {
				return group.Items[i].Count > group.Items[j].Count
			}
			return group.Items[i].OldID < group.Items[j].OldID
		})
		groups = append(groups, group)
	}
	sort.Slice(groups, func(i, j int) bool {
		return strings.ToLower(groups[i].Champion) < strings.ToLower(groups[j].Champion)
	})
	return groups
}

// DisplayName renders a champion directory name for humans: champion folders
// use CamelCase ("MissFortune", "DrMundo").
func DisplayName(champion string) string {
	return strings.Join(camelcase.Split(champion), " ")
}
