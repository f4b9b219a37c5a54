// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/vorlif/spreak/localize"

	"github.com/wneessen/nmea-report/internal/i18n"
)

const (
	emptyRowWidth  = 80
	separatorWidth = 150
)

type column struct {
	title localize.MsgID
	width int
	value func(Report) string
}

var (
	systemColumns = []column{
		{"Date", 15, func(r Report) string { return r.Date }},
		{"Time", 15, func(r Report) string { return r.Time }},
		{"Mag. var.", 12, func(r Report) string { return r.MagneticVariation }},
		{"Geoid sep.", 12, func(r Report) string { return r.GeoidSeparation }},
		{"Mode", 20, func(r Report) string { return r.Mode }},
		{"Quality", 10, func(r Report) string { return r.FixQuality }},
		{"Checksum", 18, func(r Report) string { return r.Checksum }},
	}
	positionColumns = []column{
		{"Latitude", 15, func(r Report) string { return r.Latitude }},
		{"Longitude", 15, func(r Report) string { return r.Longitude }},
		{"Speed", 12, func(r Report) string { return r.Speed }},
		{"Course", 12, func(r Report) string { return r.Course }},
		{"Altitude", 12, func(r Report) string { return r.Altitude }},
		{"HDOP", 10, func(r Report) string { return r.HDOP }},
		{"VDOP", 10, func(r Report) string { return r.VDOP }},
		{"PDOP", 10, func(r Report) string { return r.PDOP }},
		{"Satellites in use", 18, func(r Report) string { return r.SatellitesInUse }},
		{"Satellite IDs", 30, func(r Report) string { return join(r.UsedSatellites) }},
		{"Status", 10, func(r Report) string { return r.Status }},
	}
)

// satelliteColumns lists one visible satellite per row, prefixed by the fix time and the
// number of visible satellites.
var satelliteColumns = []struct {
	title localize.MsgID
	width int
	value func(Report, SatelliteView) string
}{
	{"Fix time", 15, func(r Report, _ SatelliteView) string { return r.Time }},
	{"Visible", 22, func(r Report, _ SatelliteView) string { return strconv.Itoa(r.VisibleCount) }},
	{"ID", 6, func(_ Report, s SatelliteView) string { return s.ID }},
	{"Elevation", 10, func(_ Report, s SatelliteView) string { return s.Elevation }},
	{"Azimuth", 9, func(_ Report, s SatelliteView) string { return s.Azimuth }},
	{"SNR", 6, func(_ Report, s SatelliteView) string { return s.SNR }},
}

// renderTable writes the report as three fixed-width sections.
func (p *Presenter) renderTable(w io.Writer, report Report) error {
	buf := new(strings.Builder)

	p.writeSection(buf, sectionSystem, systemColumns, report)
	p.writeSection(buf, sectionPosition, positionColumns, report)

	p.writeTitle(buf, sectionSatellites)
	cells := make([]string, len(satelliteColumns))
	for i, col := range satelliteColumns {
		cells[i] = cell(p.tr(col.title), col.width)
	}
	writeRow(buf, cells)
	if len(report.VisibleSatellites) == 0 {
		writeRow(buf, []string{strings.Repeat("-", emptyRowWidth)})
	}
	for _, sat := range report.VisibleSatellites {
		for i, col := range satelliteColumns {
			cells[i] = cell(col.value(report, sat), col.width)
		}
		writeRow(buf, cells)
	}
	writeRow(buf, []string{strings.Repeat("=", separatorWidth)})

	if _, err := io.WriteString(w, buf.String()); err != nil {
		return fmt.Errorf("failed to write report table: %w", err)
	}
	return nil
}

func (p *Presenter) writeSection(buf *strings.Builder, title localize.MsgID, cols []column, report Report) {
	p.writeTitle(buf, title)
	header := make([]string, len(cols))
	values := make([]string, len(cols))
	for i, col := range cols {
		header[i] = cell(p.tr(col.title), col.width)
		values[i] = cell(col.value(report), col.width)
	}
	writeRow(buf, header)
	writeRow(buf, values)
}

func (p *Presenter) writeTitle(buf *strings.Builder, title localize.MsgID) {
	buf.WriteString("\n")
	buf.WriteString(p.tr(title))
	buf.WriteString(":\n")
}

func (p *Presenter) tr(msg localize.MsgID) string {
	return i18n.Get(p.localizer, msg)
}

// cell pads val to width. Values that do not fit keep a single trailing space so they
// never run into the next column.
func cell(val string, width int) string {
	if runewidth.StringWidth(val) >= width {
		return val + " "
	}
	return runewidth.FillRight(val, width)
}

func writeRow(buf *strings.Builder, cells []string) {
	buf.WriteString(strings.TrimRight(strings.Join(cells, ""), " "))
	buf.WriteString("\n")
}
