// Package i18n localizes user-facing report text. The tool's audience spans
// the Spanish and English LoL communities, so every label ships in both
// languages via embedded locale files.
package i18n

import (
	"embed"
	"encoding/json"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Supported lists the language tags the tool ships locales for.
var Supported = []string{"en", "es"}

// Printer resolves message IDs for one language, falling back to English.
type Printer struct {
	loc *goi18n.Localizer
}

// NewPrinter builds a Printer for lang ("en", "es", or any BCP 47 tag; an
// unknown tag falls back to English).
func NewPrinter(lang string) *Printer {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	for _, name := range []string{"locales/en.json", "locales/es.json"} {
		// The files are embedded; a load failure is a programming error
		// caught by the package tests.
		_, _ = bundle.LoadMessageFileFS(localeFS, name)
	}
	return &Printer{loc: goi18n.NewLocalizer(bundle, lang, "en")}
}

// T resolves a message ID with optional template data. Unknown IDs render as
// the ID itself so a missing translation is visible, not fatal.
func (p *Printer) T(id string, data map[string]any) string {
	msg, err := p.loc.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}
