// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"encoding/json"
	"fmt"
	"io"
	"text/template"

	"github.com/vorlif/spreak"
	"gopkg.in/yaml.v3"

	"github.com/wneessen/nmea-report/internal/config"
	"github.com/wneessen/nmea-report/internal/decoder"
	"github.com/wneessen/nmea-report/internal/vartype"
)

// SatelliteView is a single visible satellite in a Report.
type SatelliteView struct {
	ID        string `json:"id" yaml:"id"`
	Elevation string `json:"elevation" yaml:"elevation"`
	Azimuth   string `json:"azimuth" yaml:"azimuth"`
	SNR       string `json:"snr" yaml:"snr"`
}

// Report is a snapshot of the fix state with every unset value replaced by a placeholder.
type Report struct {
	Date              string `json:"date" yaml:"date"`
	Time              string `json:"time" yaml:"time"`
	Latitude          string `json:"latitude" yaml:"latitude"`
	Longitude         string `json:"longitude" yaml:"longitude"`
	Speed             string `json:"speed" yaml:"speed"`
	Course            string `json:"course" yaml:"course"`
	Altitude          string `json:"altitude" yaml:"altitude"`
	GeoidSeparation   string `json:"geoid_separation" yaml:"geoid_separation"`
	FixQuality        string `json:"fix_quality" yaml:"fix_quality"`
	HDOP              string `json:"hdop" yaml:"hdop"`
	VDOP              string `json:"vdop" yaml:"vdop"`
	PDOP              string `json:"pdop" yaml:"pdop"`
	MagneticVariation string `json:"magnetic_variation" yaml:"magnetic_variation"`
	Mode              string `json:"mode" yaml:"mode"`
	Status            string `json:"status" yaml:"status"`
	Checksum          string `json:"checksum" yaml:"checksum"`

	SatellitesInUse string   `json:"satellites_in_use" yaml:"satellites_in_use"`
	UsedSatellites  []string `json:"used_satellites" yaml:"used_satellites"`

	SatellitesInView  string          `json:"satellites_in_view" yaml:"satellites_in_view"`
	VisibleCount      int             `json:"visible_count" yaml:"visible_count"`
	VisibleSatellites []SatelliteView `json:"visible_satellites" yaml:"visible_satellites"`
}

// Presenter renders fix state snapshots in the configured output format.
type Presenter struct {
	format    string
	localizer *spreak.Localizer
	template  *template.Template
}

// New returns a Presenter rendering in the output format of conf. Labels are translated
// with loc.
func New(conf *config.Config, loc *spreak.Localizer) (*Presenter, error) {
	pres := &Presenter{
		format:    conf.Output.Format,
		localizer: loc,
	}
	if pres.format == config.FormatTemplate {
		tpl, err := template.New("report").Funcs(pres.templateFuncMap()).Parse(conf.Output.Template)
		if err != nil {
			return nil, fmt.Errorf("failed to parse report template: %w", err)
		}
		pres.template = tpl
	}
	return pres, nil
}

// BuildReport takes a snapshot of st.
func (p *Presenter) BuildReport(st *decoder.FixState) Report {
	report := Report{
		Date:              st.Date.String(),
		Time:              st.Time.String(),
		Latitude:          st.Latitude.String(),
		Longitude:         st.Longitude.String(),
		Speed:             st.Speed.String(),
		Course:            st.Course.String(),
		Altitude:          st.Altitude.String(),
		GeoidSeparation:   st.GeoidSeparation.String(),
		FixQuality:        st.FixQuality.String(),
		HDOP:              st.HDOP.String(),
		VDOP:              st.VDOP.String(),
		PDOP:              st.PDOP.String(),
		MagneticVariation: st.MagneticVariation.String(),
		Mode:              st.Mode.String(),
		Status:            st.Status.String(),
		Checksum:          st.Checksum.String(),
		SatellitesInUse:   st.SatellitesInUse.String(),
		UsedSatellites:    append(make([]string, 0, len(st.UsedSatellites)), st.UsedSatellites...),
		SatellitesInView:  st.SatellitesInView.String(),
		VisibleCount:      len(st.VisibleSatellites),
		VisibleSatellites: make([]SatelliteView, 0, len(st.VisibleSatellites)),
	}
	for _, sat := range st.VisibleSatellites {
		report.VisibleSatellites = append(report.VisibleSatellites, SatelliteView{
			ID:        orPlaceholder(sat.ID),
			Elevation: orPlaceholder(sat.Elevation),
			Azimuth:   orPlaceholder(sat.Azimuth),
			SNR:       orPlaceholder(sat.SNR),
		})
	}
	return report
}

// Render writes the snapshot of st to w in the configured format.
func (p *Presenter) Render(w io.Writer, st *decoder.FixState) error {
	return p.RenderReport(w, p.BuildReport(st))
}

// RenderReport writes report to w in the configured format.
func (p *Presenter) RenderReport(w io.Writer, report Report) error {
	switch p.format {
	case config.FormatTemplate:
		if err := p.template.Execute(w, report); err != nil {
			return fmt.Errorf("failed to render report template: %w", err)
		}
		return nil
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report as JSON: %w", err)
		}
		return nil
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report as YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode report as YAML: %w", err)
		}
		_, err := io.WriteString(w, "---\n")
		return err
	default:
		return p.renderTable(w, report)
	}
}

func orPlaceholder(val string) string {
	if val == "" {
		return vartype.Placeholder
	}
	return val
}
