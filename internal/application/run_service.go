package application

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/FranderUC/lol-itemset-id-fixer/internal/domain"
)

// RunService orchestrates the pipeline:
// locate champions → scan item sets → filter → substitute → backup → write → report.
type RunService struct {
	source  domain.ChampionSource
	store   domain.ItemSetStore
	config  domain.ConfigLoader
	history domain.RunHistory
	table   domain.Table
}

// NewRunService wires the pipeline. history may be nil to disable run history.
func NewRunService(
	source domain.ChampionSource,
	store domain.ItemSetStore,
	config domain.ConfigLoader,
	history domain.RunHistory,
	table domain.Table,
) *RunService {
	return &RunService{source: source, store: store, config: config, history: history, table: table}
}

// Run executes one synchronous run over opts.Root. Per-file errors are folded
// into the result; only root resolution and config errors are fatal. A dry
// run (Apply=false) produces the same result content with no disk writes.
func (s *RunService) Run(opts domain.RunOptions) (*domain.RunResult, error) {
	cfg, err := s.config.Load(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	mapCode := opts.MapCode
	if mapCode == "" {
		mapCode = cfg.MapCode
	}
	if mapCode == "" {
		mapCode = domain.DefaultMapCode
	}

	// Either the front end or the config file can disable backups.
	backups := opts.Backups && (cfg.Backups == nil || *cfg.Backups)

	table := s.table.Merge(cfg.ExtraMappings)

	excluded := make(map[string]bool, len(cfg.ExcludeChampions))
	for _, name := range cfg.ExcludeChampions {
		excluded[name] = true
	}

	champions, err := s.source.Champions(opts.Root)
	if err != nil {
		return nil, err
	}

	result := &domain.RunResult{Root: opts.Root, MapCode: mapCode}
	detected := make(map[string]bool)

	for _, champ := range champions {
		if excluded[champ.Name] {
			continue
		}
		result.ChampionsScanned++

		paths, err := s.source.ItemSets(champ.Dir)
		if err != nil {
			result.Files = append(result.Files, domain.FileReport{
				Champion: champ.Name,
				Path:     champ.Dir,
				Outcome:  domain.OutcomeSkippedUnreadable,
				Reason:   err.Error(),
			})
			continue
		}

		for _, path := range paths {
			result.FilesScanned++
			report := s.processFile(champ.Name, path, mapCode, table, opts.Apply, backups, result)
			result.Files = append(result.Files, report)
			if report.Outcome != domain.OutcomeSkippedIneligible &&
				report.Outcome != domain.OutcomeSkippedMalformed &&
				report.Outcome != domain.OutcomeSkippedUnreadable {
				detected[champ.Name] = true
			}
		}
	}

	result.Champions = sortedChampions(detected)

	if s.history != nil {
		// Best effort: a failed history write never fails the run.
		_ = s.history.Save(opts.Root, domain.RunEntry{
			Timestamp:     time.Now().UTC().Format(time.RFC3339),
			Root:          opts.Root,
			Applied:       opts.Apply,
			FilesScanned:  result.FilesScanned,
			EligibleFiles: result.EligibleFiles,
			FilesModified: result.FilesModified,
			IDsReplaced:   result.IDsReplaced,
		})
	}

	return result, nil
}

// processFile walks one file through the state machine:
// Discovered → Parsed → {Skipped | Eligible} → {Unchanged | Modified → {BackedUp → Written | WriteFailed}}.
func (s *RunService) processFile(
	champion, path, mapCode string,
	table domain.Table,
	apply, backups bool,
	result *domain.RunResult,
) domain.FileReport {
	report := domain.FileReport{Champion: champion, Path: path}

	raw, err := s.source.Read(path)
	if err != nil {
		report.Outcome = domain.OutcomeSkippedUnreadable
		report.Reason = err.Error()
		return report
	}

	doc, err := domain.DecodeItemSet(path, raw)
	if err != nil {
		report.Outcome = domain.OutcomeSkippedMalformed
		report.Reason = err.Error()
		return report
	}

	if !domain.Eligible(doc, mapCode) {
		report.Outcome = domain.OutcomeSkippedIneligible
		report.Reason = fmt.Sprintf("map is not %q", mapCode)
		return report
	}
	result.EligibleFiles++

	replaced := domain.ReplaceIDs(doc, table)
	if len(replaced) == 0 {
		report.Outcome = domain.OutcomeUnchanged
		return report
	}

	for _, m := range replaced {
		result.Changes = append(result.Changes, domain.Change{
			Champion: champion,
			File:     path,
			OldID:    m.OldID,
			NewID:    m.NewID,
			NameES:   m.NameES,
			NameEN:   m.NameEN,
		})
	}
	result.IDsReplaced += len(replaced)
	report.Replacements = len(replaced)

	if apply {
		if backups {
			bak, err := s.store.Backup(path, raw)
			if err != nil {
				report.Outcome = domain.OutcomeWriteFailed
				report.Reason = err.Error()
				return report
			}
			result.Backups = append(result.Backups, bak)
		}
		if err := s.store.Write(path, doc); err != nil {
			report.Outcome = domain.OutcomeWriteFailed
			report.Reason = err.Error()
			return report
		}
	} else if backups {
		// Keep dry-run reporting identical to an apply run.
		result.Backups = append(result.Backups, path+".bak")
	}

	result.FilesModified++
	report.Outcome = domain.OutcomeModified
	return report
}

func sortedChampions(detected map[string]bool) []string {
	names := make([]string, 0, len(detected))
	for name := range detected {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	return names
}
