// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import "github.com/vorlif/spreak/localize"

// i18nVars maps the keys usable with the "loc" template function to their messages.
var i18nVars = map[string]localize.MsgID{
	"date":               "Date",
	"time":               "Time",
	"latitude":           "Latitude",
	"longitude":          "Longitude",
	"speed":              "Speed",
	"course":             "Course",
	"altitude":           "Altitude",
	"geoid":              "Geoid sep.",
	"quality":            "Quality",
	"magvar":             "Mag. var.",
	"mode":               "Mode",
	"status":             "Status",
	"checksum":           "Checksum",
	"satellites in use":  "Satellites in use",
	"satellite ids":      "Satellite IDs",
	"satellites in view": "Satellites in view",
	"fix time":           "Fix time",
	"visible":            "Visible",
	"elevation":          "Elevation",
	"azimuth":            "Azimuth",
	"active":             "active",
	"inactive":           "inactive",
}

const (
	sectionSystem     localize.MsgID = "SYSTEM INFORMATION"
	sectionPosition   localize.MsgID = "DEVICE POSITION"
	sectionSatellites localize.MsgID = "SATELLITE DATA"
)
