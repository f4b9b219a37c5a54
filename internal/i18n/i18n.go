// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/Xuanwo/go-locale"
	"github.com/vorlif/spreak"
	"github.com/vorlif/spreak/localize"
	"golang.org/x/text/language"
)

//go:embed locale/*
var locales embed.FS

// New returns a localizer for the given BCP 47 locale. An empty locale is detected
// from the environment.
func New(loc string) (*spreak.Localizer, error) {
	localeFS, err := fs.Sub(locales, "locale")
	if err != nil {
		return nil, fmt.Errorf("failed to load locales: %w", err)
	}

	tag := languageTag(loc)
	bundle, err := spreak.NewBundle(
		spreak.WithSourceLanguage(language.English),
		spreak.WithFallbackLanguage(language.English),
		spreak.WithDomainFs("", localeFS),
		spreak.WithLanguage(tag),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create i18n bundle: %w", err)
	}
	return spreak.NewLocalizer(bundle, tag), nil
}

// languageTag parses loc, falling back to the detected system locale and finally
// to English.
func languageTag(loc string) language.Tag {
	if loc != "" {
		return language.Make(loc)
	}
	tag, err := locale.Detect()
	if err != nil {
		return language.English
	}
	return tag
}

// Get translates msg with loc. A nil localizer returns the untranslated source text.
func Get(loc *spreak.Localizer, msg localize.MsgID) string {
	if loc == nil {
		return msg
	}
	return loc.Get(msg)
}
