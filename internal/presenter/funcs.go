// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"strings"
	"text/template"

	"github.com/mattn/go-runewidth"

	"github.com/wneessen/nmea-report/internal/i18n"
	"github.com/wneessen/nmea-report/internal/vartype"
)

func (p *Presenter) templateFuncMap() template.FuncMap {
	return template.FuncMap{
		"loc":  p.loc,
		"join": join,
		"pad":  pad,
		"lc":   strings.ToLower,
		"uc":   strings.ToUpper,
	}
}

func (p *Presenter) loc(val string) string {
	if raw, ok := i18nVars[strings.ToLower(val)]; ok {
		return i18n.Get(p.localizer, raw)
	}
	return val
}

// join renders a list of satellite IDs, or the placeholder if there are none.
func join(vals []string) string {
	if len(vals) == 0 {
		return vartype.Placeholder
	}
	return strings.Join(vals, ", ")
}

// pad fills val with spaces up to the given display width.
func pad(width int, val string) string {
	return runewidth.FillRight(val, width)
}
