// Package locale supplies the month label tables and UI strings consumed by the panels.
package locale

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-datepanel/internal/config"
	"github.com/tartampluch/go-datepanel/internal/engine"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Catalog holds every embedded translation.
type Catalog struct {
	bundle    *i18n.Bundle
	matcher   language.Matcher
	Languages []string
}

// Load parses the embedded locale files. Malformed files are logged and skipped.
func Load() (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrLocalesAccess, err)
	}

	var detected []string
	tags := []language.Tag{language.English}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}

		detected = append(detected, langCode)
		if tag, err := language.Parse(langCode); err == nil && tag != language.English {
			tags = append(tags, tag)
		}
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
		)
	}

	if len(detected) == 0 {
		return nil, errors.New(config.ErrLocalesAccess)
	}

	return &Catalog{
		bundle:    bundle,
		matcher:   language.NewMatcher(tags),
		Languages: detected,
	}, nil
}

// Match returns the best supported language for a user preference such as "fr-CA".
// Unknown or empty input resolves to the default language.
func (c *Catalog) Match(lang string) string {
	if lang == "" {
		return config.DefaultLanguage
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return config.DefaultLanguage
	}
	matched, _, confidence := c.matcher.Match(tag)
	if confidence == language.No {
		return config.DefaultLanguage
	}
	base, _ := matched.Base()
	return base.String()
}

// Localizer returns a translator for lang.
func (c *Catalog) Localizer(lang string) *Localizer {
	lang = c.Match(lang)
	return &Localizer{
		Lang: lang,
		loc:  i18n.NewLocalizer(c.bundle, lang),
	}
}

// Localizer translates keys for one language.
type Localizer struct {
	Lang string
	loc  *i18n.Localizer
}

// Msg translates key, returning the key itself when no translation exists.
func (l *Localizer) Msg(key string) string {
	return l.MsgWith(key, nil)
}

// MsgWith translates key with template data.
func (l *Localizer) MsgWith(key string, data map[string]any) string {
	if l == nil || l.loc == nil {
		return key
	}
	msg, err := l.loc.Localize(&i18n.LocalizeConfig{MessageID: key, TemplateData: data})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}

// MonthLabels returns the twelve month labels, January first. Missing entries
// fall back to the engine's English defaults.
func (l *Localizer) MonthLabels() []string {
	labels := make([]string, len(config.MonthKeys))
	for i, key := range config.MonthKeys {
		labels[i] = l.Msg(key)
		if labels[i] == key {
			labels[i] = engine.DefaultMonthLabels[i]
		}
	}
	return labels
}
