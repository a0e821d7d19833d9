// Package i18n maps dashboard text keys to display strings in the
// configured language.
package i18n

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
)

// Translator looks up display and log text for one language.
type Translator struct {
	tag   language.Tag
	table map[string]string
}

var supported = []language.Tag{
	language.SimplifiedChinese,
	language.TraditionalChinese,
	language.AmericanEnglish,
}

var tables = map[language.Tag]map[string]string{
	language.SimplifiedChinese:  zhCN,
	language.TraditionalChinese: zhTW,
	language.AmericanEnglish:    enUS,
}

var matcher = language.NewMatcher(supported)

// New returns a Translator for lang. Codes use either "zh_CN" or "zh-CN"
// form. An unknown code is an error; a known base with an unknown region
// falls back to the closest table.
func New(lang string) (*Translator, error) {
	tag, err := language.Parse(strings.ReplaceAll(lang, "_", "-"))
	if err != nil {
		return nil, fmt.Errorf("parsing language %q: %w", lang, err)
	}

	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return nil, fmt.Errorf("no text table for language %q", lang)
	}

	best := supported[idx]
	return &Translator{tag: best, table: tables[best]}, nil
}

// Language returns the BCP 47 tag of the selected table.
func (t *Translator) Language() string {
	return t.tag.String()
}

// Text returns the display string for key, rendered with the first style
// when one is given. Unknown keys render as the key itself.
func (t *Translator) Text(key string, style ...lipgloss.Style) string {
	s := t.Log(key)
	if len(style) > 0 {
		return style[0].Render(s)
	}
	return s
}

// Log returns the plain-text string for key, suitable for log files.
func (t *Translator) Log(key string) string {
	if s, ok := t.table[key]; ok {
		return s
	}
	return key
}
