package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FranderUC/lol-itemset-id-fixer/internal/i18n"
)

func TestPrinter_English(t *testing.T) {
	p := i18n.NewPrinter("en")

	assert.Equal(t, "LoL Item Set ID Fixer", p.T("report.title", nil))
	assert.Equal(t, "DRY-RUN", p.T("report.mode.dry_run", nil))
}

func TestPrinter_Spanish(t *testing.T) {
	p := i18n.NewPrinter("es")

	assert.Equal(t, "SIMULACIÓN", p.T("report.mode.dry_run", nil))
	assert.Equal(t, "APLICAR", p.T("report.mode.apply", nil))
}

func TestPrinter_TemplateData(t *testing.T) {
	p := i18n.NewPrinter("en")

	got := p.T("report.detected", map[string]any{"MapCode": "SR", "List": "Braum, Sona"})
	assert.Equal(t, "Detected champions (map=SR): Braum, Sona", got)
}

func TestPrinter_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	p := i18n.NewPrinter("fr")

	assert.Equal(t, "DRY-RUN", p.T("report.mode.dry_run", nil))
}

func TestPrinter_UnknownIDRendersAsID(t *testing.T) {
	p := i18n.NewPrinter("en")

	assert.Equal(t, "no.such.message", p.T("no.such.message", nil))
}

func TestPrinter_AllMessagesPresentInBothLanguages(t *testing.T) {
	ids := []string{
		"report.title",
		"report.mode.apply",
		"report.mode.dry_run",
		"report.changes_header",
		"report.no_changes",
		"report.detected",
		"report.warnings",
		"report.summary",
		"report.applied_notice",
		"report.dry_run_notice",
		"mappings.header",
		"mappings.columns",
		"history.header",
		"history.empty",
		"history.applied",
		"history.dry_run",
	}

	for _, lang := range i18n.Supported {
		p := i18n.NewPrinter(lang)
		for _, id := range ids {
			assert.NotEqual(t, id, p.T(id, map[string]any{
				"MapCode": "SR", "List": "x", "Scanned": 0, "Eligible": 0, "Modified": 0, "IDs": 0,
			}), "missing %s in %s", id, lang)
		}
	}
}
